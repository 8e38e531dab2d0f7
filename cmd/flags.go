package cmd

import (
	"flag"
	"os"
	"strconv"

	shim "github.com/heroku/cnb-shim"
)

var (
	DefaultLogLevel    = "info"
	DefaultPort        = 3000
	DefaultRegistryURL = shim.DefaultRegistry
)

const (
	EnvBuildpackDir = "CNB_SHIM_BUILDPACK_DIR"
	EnvLogLevel     = "CNB_SHIM_LOG_LEVEL"
	EnvNoColor      = "CNB_SHIM_NO_COLOR" // defaults to false
	EnvPort         = "PORT"
	EnvRegistryURL  = "CNB_SHIM_REGISTRY_URL"
)

var flagSet = flag.NewFlagSet("cnb-shim", flag.ExitOnError)

func FlagBuildpackDir(dir *string) {
	flagSet.StringVar(dir, "buildpack-dir", os.Getenv(EnvBuildpackDir), "path to the shim entry point directory (defaults to the working directory)")
}

func FlagLogLevel(level *string) {
	flagSet.StringVar(level, "log-level", EnvOrDefault(EnvLogLevel, DefaultLogLevel), "logging level")
}

func FlagNoColor(skip *bool) {
	flagSet.BoolVar(skip, "no-color", BoolEnv(EnvNoColor), "disable color output")
}

func FlagPort(port *int) {
	flagSet.IntVar(port, "port", intEnvOrDefault(EnvPort, DefaultPort), "port to listen on")
}

func FlagRegistryURL(url *string) {
	flagSet.StringVar(url, "registry-url", EnvOrDefault(EnvRegistryURL, DefaultRegistryURL), "base URL of the legacy buildpack registry")
}

func FlagVersion(version *bool) {
	flagSet.BoolVar(version, "version", false, "show version")
}

func ParseFlags(args []string) error {
	return flagSet.Parse(args)
}

func BoolEnv(k string) bool {
	v := os.Getenv(k)
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false
	}
	return b
}

func EnvOrDefault(key string, defaultVal string) string {
	if envVal := os.Getenv(key); envVal != "" {
		return envVal
	}
	return defaultVal
}

func intEnvOrDefault(k string, defaultVal int) int {
	v := os.Getenv(k)
	d, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return d
}
