package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeID(path ...string) TestID {
	return TestID{Path: path}
}

func TestFilterWithNoPatternsAllowsEverything(t *testing.T) {
	var f RegexFilters
	assert.False(t, f.IsDefined())
	assert.True(t, f.AsFilter(makeID("create", "returns 201")))
}

func TestFilterMustMatch(t *testing.T) {
	var f RegexFilters
	require.NoError(t, f.MustMatch.Set("^update/"))

	assert.True(t, f.AsFilter(makeID("update")), "parent of a matching test should be allowed")
	assert.True(t, f.AsFilter(makeID("update", "PUT")))
	assert.False(t, f.AsFilter(makeID("create")))
	assert.False(t, f.AsFilter(makeID("create", "returns 201")))
	assert.False(t, f.AsFilter(makeID("delete", "deletes the item")))
}

func TestFilterMatchesEachLevelSeparately(t *testing.T) {
	var f RegexFilters
	require.NoError(t, f.MustMatch.Set("/PATCH"))

	assert.True(t, f.AsFilter(makeID("update")))
	assert.True(t, f.AsFilter(makeID("update", "PATCH sets completed")))
	assert.False(t, f.AsFilter(makeID("update", "PUT sets completed")))
	assert.False(t, f.AsFilter(makeID("create", "returns 201")))
}

func TestFilterTopLevelPatternSelectsWholeGroup(t *testing.T) {
	var f RegexFilters
	require.NoError(t, f.MustMatch.Set("date"))

	assert.True(t, f.AsFilter(makeID("update")))
	assert.True(t, f.AsFilter(makeID("update", "PUT sets completed")))
	assert.False(t, f.AsFilter(makeID("create")))
	assert.False(t, f.AsFilter(makeID("create", "returns 201")))
}

func TestFilterSlashInsideGroupIsNotALevelSeparator(t *testing.T) {
	var f RegexFilters
	require.NoError(t, f.MustMatch.Set(`^(create|update/PUT)$`))

	assert.True(t, f.AsFilter(makeID("create")))
	assert.False(t, f.AsFilter(makeID("update")))
	assert.Equal(t, []string{"a", "b[/]", `c\/d`}, splitLevels(`a/b[/]/c\/d`))
}

func TestFilterMustNotMatch(t *testing.T) {
	var f RegexFilters
	require.NoError(t, f.MustNotMatch.Set("delete"))
	require.NoError(t, f.MustNotMatch.Set("cross-origin"))

	assert.False(t, f.AsFilter(makeID("delete")))
	assert.False(t, f.AsFilter(makeID("cross-origin", "allows all origins")))
	assert.True(t, f.AsFilter(makeID("create")))
	assert.Equal(t, `"delete" or "cross-origin"`, f.MustNotMatch.String())
}

func TestInvalidRegex(t *testing.T) {
	var r RegexList
	err := r.Set("(")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid regex")
	assert.True(t, r.IsCumulative())
}
