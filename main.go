package main

import (
	"fmt"
	"os"

	"github.com/todo-backend/todo-contract-tests/framework"
	"github.com/todo-backend/todo-contract-tests/todotests"

	"github.com/fatih/color"
	"gopkg.in/alecthomas/kingpin.v2"
)

func main() {
	var params commandParams
	if err := params.Read(os.Args); err != nil {
		kingpin.Fatalf("%s, try --help", err)
	}
	if params.noColor {
		color.NoColor = true
	}

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = framework.NewConsoleLogger(os.Stdout, color.NoColor)
	}

	harness, err := framework.NewTestHarness(
		params.serviceURL,
		params.requestTimeout,
		params.startupTimeout,
		mainDebugLogger,
		os.Stdout,
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Service error: %s\n", err)
		os.Exit(1)
	}

	fmt.Println()
	framework.PrintFilterDescription(os.Stdout, params.filters)

	fmt.Println("Running test suite")

	testLogger := &ConsoleTestLogger{
		Out:                  os.Stdout,
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	results := todotests.RunTestSuite(harness, params.filters.AsFilter, testLogger)

	fmt.Println()
	framework.PrintResults(os.Stdout, results)
	if !results.OK() {
		os.Exit(1)
	}
}
