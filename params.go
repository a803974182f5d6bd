package main

import (
	"time"

	"github.com/todo-backend/todo-contract-tests/framework"

	"gopkg.in/alecthomas/kingpin.v2"
)

const (
	defaultServiceURL     = "http://localhost:8000/todos"
	defaultRequestTimeout = "10s"
	defaultStartupTimeout = "10s"
)

type commandParams struct {
	serviceURL     string
	requestTimeout time.Duration
	startupTimeout time.Duration
	filters        framework.RegexFilters
	debug          bool
	debugAll       bool
	noColor        bool
}

func (c *commandParams) Read(args []string) error {
	app := kingpin.New("todo-contract-tests", "Contract tests for a Todo-Backend HTTP service.")
	app.Flag("url", "base URL of the Todo collection").
		Envar("URL").Default(defaultServiceURL).StringVar(&c.serviceURL)
	app.Flag("timeout", "maximum duration of each request").
		Envar("TIMEOUT").Default(defaultRequestTimeout).DurationVar(&c.requestTimeout)
	app.Flag("wait", "how long to wait for the service to start responding").
		Default(defaultStartupTimeout).DurationVar(&c.startupTimeout)
	app.Flag("run", "regex pattern(s) to select tests to run, one slash-separated element per level as in go test -run").SetValue(&c.filters.MustMatch)
	app.Flag("skip", "regex pattern(s) to select tests not to run").SetValue(&c.filters.MustNotMatch)
	app.Flag("debug", "enable debug logging for failed tests").BoolVar(&c.debug)
	app.Flag("debug-all", "enable debug logging for all tests").BoolVar(&c.debugAll)
	app.Flag("no-color", "disable colored output").BoolVar(&c.noColor)

	_, err := app.Parse(args[1:])
	return err
}
