package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	shim "github.com/heroku/cnb-shim"
	"github.com/heroku/cnb-shim/cmd"
	"github.com/heroku/cnb-shim/server"
)

var (
	buildpackDir string
	logLevel     string
	noColor      bool
	port         int
	registryURL  string
	showVersion  bool
)

func init() {
	cmd.FlagBuildpackDir(&buildpackDir)
	cmd.FlagLogLevel(&logLevel)
	cmd.FlagNoColor(&noColor)
	cmd.FlagPort(&port)
	cmd.FlagRegistryURL(&registryURL)
	cmd.FlagVersion(&showVersion)
}

func main() {
	if err := cmd.ParseFlags(os.Args[1:]); err != nil {
		cmd.Exit(cmd.FailErrCode(err, cmd.CodeInvalidArgs, "parse arguments"))
	}
	if showVersion {
		cmd.ExitWithVersion()
	}
	cmd.DisableColor(noColor)
	if err := cmd.DefaultLogger.SetLevel(logLevel); err != nil {
		cmd.Exit(err)
	}

	if buildpackDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			cmd.Exit(cmd.FailErr(err, "determine working directory"))
		}
		buildpackDir = wd
	}

	shimmer := shim.NewShimmer(buildpackDir, registryURL, cmd.DefaultLogger)
	srv := server.New(fmt.Sprintf("0.0.0.0:%d", port), shimmer, cmd.DefaultLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.ListenAndServe(ctx); err != nil {
		cmd.Exit(cmd.FailErr(err, "run server"))
	}
}
