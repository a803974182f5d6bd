package main

import (
	"os"
	"testing"
	"time"

	"github.com/todo-backend/todo-contract-tests/framework"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsDefaults(t *testing.T) {
	os.Unsetenv("URL")
	os.Unsetenv("TIMEOUT")
	var p commandParams
	require.NoError(t, p.Read([]string{"todo-contract-tests"}))

	assert.Equal(t, "http://localhost:8000/todos", p.serviceURL)
	assert.Equal(t, time.Second*10, p.requestTimeout)
	assert.Equal(t, time.Second*10, p.startupTimeout)
	assert.False(t, p.filters.IsDefined())
	assert.False(t, p.debug)
}

func TestParamsURLFromEnvironment(t *testing.T) {
	os.Setenv("URL", "http://todo.example.com/todos")
	defer os.Unsetenv("URL")

	var p commandParams
	require.NoError(t, p.Read([]string{"todo-contract-tests"}))
	assert.Equal(t, "http://todo.example.com/todos", p.serviceURL)

	require.NoError(t, p.Read([]string{"todo-contract-tests", "--url", "http://other/todos"}))
	assert.Equal(t, "http://other/todos", p.serviceURL)
}

func TestParamsFiltersCanBeRepeated(t *testing.T) {
	var p commandParams
	require.NoError(t, p.Read([]string{"todo-contract-tests",
		"--run", "^create/", "--run", "^update/", "--skip", "PATCH", "--timeout", "2s", "--debug"}))

	assert.Equal(t, `"^create/" or "^update/"`, p.filters.MustMatch.String())
	assert.True(t, p.filters.AsFilter(framework.TestID{Path: []string{"update", "PUT"}}))
	assert.False(t, p.filters.AsFilter(framework.TestID{Path: []string{"update", "PATCH"}}))
	assert.Equal(t, time.Second*2, p.requestTimeout)
	assert.True(t, p.debug)
}

func TestParamsRejectInvalidRegex(t *testing.T) {
	var p commandParams
	assert.Error(t, p.Read([]string{"todo-contract-tests", "--run", "("}))
}

func TestParamsRunSelectsOnlyMatchingGroup(t *testing.T) {
	var p commandParams
	require.NoError(t, p.Read([]string{"todo-contract-tests", "--run", "^create/"}))

	assert.True(t, p.filters.AsFilter(framework.TestID{Path: []string{"create"}}))
	assert.True(t, p.filters.AsFilter(framework.TestID{Path: []string{"create", "creates the item"}}))
	assert.False(t, p.filters.AsFilter(framework.TestID{Path: []string{"delete"}}))
	assert.False(t, p.filters.AsFilter(framework.TestID{Path: []string{"delete", "deletes the item"}}))
}
