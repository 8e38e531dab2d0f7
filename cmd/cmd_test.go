package cmd_test

import (
	"errors"
	"testing"

	"github.com/apex/log"
	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"

	"github.com/heroku/cnb-shim/cmd"
	h "github.com/heroku/cnb-shim/testhelpers"
)

func TestCmd(t *testing.T) {
	spec.Run(t, "Cmd", testCmd, spec.Report(report.Terminal{}))
}

func testCmd(t *testing.T, when spec.G, it spec.S) {
	when("#EnvOrDefault", func() {
		it("returns the env value when set", func() {
			t.Setenv("CNB_SHIM_TEST_KEY", "from-env")
			h.AssertEq(t, cmd.EnvOrDefault("CNB_SHIM_TEST_KEY", "fallback"), "from-env")
		})

		it("returns the default when unset", func() {
			h.AssertEq(t, cmd.EnvOrDefault("CNB_SHIM_TEST_KEY", "fallback"), "fallback")
		})
	})

	when("#BoolEnv", func() {
		it("parses truthy values", func() {
			t.Setenv("CNB_SHIM_TEST_BOOL", "true")
			h.AssertEq(t, cmd.BoolEnv("CNB_SHIM_TEST_BOOL"), true)

			t.Setenv("CNB_SHIM_TEST_BOOL", "1")
			h.AssertEq(t, cmd.BoolEnv("CNB_SHIM_TEST_BOOL"), true)
		})

		it("is false when unset or unparsable", func() {
			h.AssertEq(t, cmd.BoolEnv("CNB_SHIM_TEST_BOOL"), false)

			t.Setenv("CNB_SHIM_TEST_BOOL", "banana")
			h.AssertEq(t, cmd.BoolEnv("CNB_SHIM_TEST_BOOL"), false)
		})
	})

	when("#SetLevel", func() {
		var logger *cmd.Logger

		it.Before(func() {
			logger = &cmd.Logger{Logger: &log.Logger{}}
		})

		it("accepts level names", func() {
			h.AssertNil(t, logger.SetLevel("debug"))
			h.AssertEq(t, logger.Logger.Level, log.DebugLevel)

			h.AssertNil(t, logger.SetLevel("warn"))
			h.AssertEq(t, logger.Logger.Level, log.WarnLevel)
		})

		it("fails with an invalid-args code on unknown levels", func() {
			err := logger.SetLevel("banana")
			h.AssertError(t, err, "failed to parse arguments: parse log level (banana)")

			failErr, ok := err.(*cmd.ErrorFail)
			if !ok {
				t.Fatalf("Expected an ErrorFail, got %T", err)
			}
			h.AssertEq(t, failErr.Code, cmd.CodeInvalidArgs)
		})
	})

	when("#FailErr", func() {
		it("formats the action and cause", func() {
			err := cmd.FailErr(errors.New("boom"), "run", "server")
			h.AssertEq(t, err.Error(), "failed to run server: boom")
			h.AssertEq(t, err.Code, cmd.CodeFailed)
		})

		it("keeps the code of a nested failure", func() {
			inner := cmd.FailErrCode(errors.New("boom"), 5, "inner step")
			outer := cmd.FailErr(inner, "outer step")
			h.AssertEq(t, outer.Code, 5)
		})

		it("formats an action-only failure", func() {
			err := cmd.FailCode(cmd.CodeInvalidArgs, "parse", "arguments")
			h.AssertEq(t, err.Error(), "failed to parse arguments")
		})
	})
}
