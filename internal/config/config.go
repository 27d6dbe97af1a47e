package config

import (
	"io"
	"io/ioutil"
	"os"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/kelseyhightower/envconfig"
	"github.com/pathkit/segpath/internal/segpath"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

const (
	// EnvLogLevel is the environment log level
	EnvLogLevel = "SEGPATH_LOG_LEVEL"
	// EnvPrefix prefixes every environment variable read by New
	EnvPrefix = "SEGPATH"
)

// Config is a struct that contains user inputs and our logger
type Config struct {
	Logger  hclog.Logger
	Version string
	// ConfigFile is the file that was consulted, whether or not it existed
	ConfigFile string

	// Separator is only meaningful when HasSeparator is set; otherwise paths
	// render with the platform separator
	Separator     string
	HasSeparator  bool
	BlockBreakout bool
	Kind          segpath.Kind
	Immutable     bool
	// Number of batch workers
	Workers         int
	RequiredVersion string
	NoColor         bool
}

// AddFlags adds the configuration flags shared by every command
func AddFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "Path to the configuration file")
	flags.String("separator", "", "Separator used to render paths (default: the platform separator)")
	flags.Bool("allow-breakout", false, "Keep '..' segments that climb above the start of a path")
	flags.String("kind", "", "Build paths as a plain 'path', a 'dir' or a 'file'")
	flags.Bool("immutable", false, "Operate on immutable path values")
	flags.String("workers", "", "Number of concurrent workers for batch processing, as a count or a percentage of CPUs such as 50% (default: number of CPUs)")
	flags.Bool("no-color", false, "Suppress color usage in the terminal")
	flags.CountP("verbosity", "v", "verbosity")
}

// New builds the effective configuration. Precedence is
// flags > env > config file > default.
func New(version string, flags *pflag.FlagSet) (*Config, error) {
	configFile := stringFlag(flags, "config")
	if configFile != "" {
		expanded, err := ExpandPath(configFile)
		if err != nil {
			return nil, err
		}
		configFile = expanded
	} else {
		configFile = DefaultConfigPath()
	}

	// The config file and its parents do not need to exist.
	partialConfig, err := ReadConfigFile(configFile)
	if err != nil && !os.IsNotExist(errors.Cause(err)) {
		return nil, err
	}

	if err := envconfig.Process(EnvPrefix, partialConfig); err != nil {
		return nil, errors.Wrap(err, "invalid environment variable")
	}

	if err := applyFlags(partialConfig, flags); err != nil {
		return nil, err
	}

	kind, ok := segpath.ParseKind(partialConfig.Kind)
	if !ok {
		return nil, errors.Errorf("invalid kind %q: expected path, dir or file", partialConfig.Kind)
	}

	workers := partialConfig.Workers
	if workers < 0 {
		return nil, errors.Errorf("invalid worker count %v", workers)
	}
	if workers == 0 {
		workers = runtimeNumCPU()
	}

	level, err := logLevel(os.Getenv(EnvLogLevel), countFlag(flags, "verbosity"))
	if err != nil {
		return nil, err
	}

	c := &Config{
		Logger:          newLogger(level, os.Stderr),
		Version:         version,
		ConfigFile:      configFile,
		BlockBreakout:   !partialConfig.AllowBreakout,
		Kind:            kind,
		Immutable:       partialConfig.Immutable,
		Workers:         workers,
		RequiredVersion: partialConfig.RequiredVersion,
		NoColor:         boolFlag(flags, "no-color"),
	}
	if partialConfig.Separator != nil && *partialConfig.Separator != "" {
		c.Separator = *partialConfig.Separator
		c.HasSeparator = true
	}

	if err := CheckVersionCompatibility(version, c.RequiredVersion); err != nil {
		return nil, err
	}

	c.Logger.Debug("loaded config", "file", configFile, "kind", kind, "blockBreakout", c.BlockBreakout, "workers", workers)
	return c, nil
}

func applyFlags(partialConfig *FileConfig, flags *pflag.FlagSet) error {
	if flags == nil {
		return nil
	}
	if flags.Changed("separator") {
		separator := stringFlag(flags, "separator")
		partialConfig.Separator = &separator
	}
	if flags.Changed("allow-breakout") {
		partialConfig.AllowBreakout = boolFlag(flags, "allow-breakout")
	}
	if flags.Changed("kind") {
		partialConfig.Kind = stringFlag(flags, "kind")
	}
	if flags.Changed("immutable") {
		partialConfig.Immutable = boolFlag(flags, "immutable")
	}
	if flags.Changed("workers") {
		workers, err := ParseWorkers(stringFlag(flags, "workers"))
		if err != nil {
			return err
		}
		partialConfig.Workers = workers
	}
	return nil
}

// logLevel picks the log level. SEGPATH_LOG_LEVEL sets a starting level and
// -v, -vv and -vvv may only lower it further.
func logLevel(env string, verbosity int) (hclog.Level, error) {
	level := hclog.NoLevel
	if env != "" {
		level = hclog.LevelFromString(env)
		if level == hclog.NoLevel {
			return level, errors.Errorf("%s value %q is not a valid log level", EnvLogLevel, env)
		}
	}

	var verbosityLevel hclog.Level
	switch {
	case verbosity == 1:
		verbosityLevel = hclog.Info
	case verbosity == 2:
		verbosityLevel = hclog.Debug
	case verbosity >= 3:
		verbosityLevel = hclog.Trace
	default:
		return level, nil
	}
	if level == hclog.NoLevel || level > verbosityLevel {
		level = verbosityLevel
	}
	return level, nil
}

func newLogger(level hclog.Level, output io.Writer) hclog.Logger {
	// Default output is nowhere unless we enable logging.
	color := hclog.ColorOff
	if level == hclog.NoLevel {
		output = ioutil.Discard
	} else {
		color = hclog.AutoColor
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "segpath",
		Level:  level,
		Color:  color,
		Output: output,
	})
}

func stringFlag(flags *pflag.FlagSet, name string) string {
	if flags == nil {
		return ""
	}
	value, _ := flags.GetString(name)
	return value
}

func boolFlag(flags *pflag.FlagSet, name string) bool {
	if flags == nil {
		return false
	}
	value, _ := flags.GetBool(name)
	return value
}

func countFlag(flags *pflag.FlagSet, name string) int {
	if flags == nil {
		return 0
	}
	value, _ := flags.GetCount(name)
	return value
}
