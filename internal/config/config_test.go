package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/pathkit/segpath/internal/segpath"
	"github.com/spf13/pflag"
	"gotest.tools/v3/assert"
	"gotest.tools/v3/fs"
)

const commentedConfig = `{
	// rendered with backslashes for the windows build
	"separator": "\\",
	"allowBreakout": true,
	"kind": "dir",
	/* leave headroom for the editor */
	"workers": 3
}`

func parseFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("segpath", pflag.ContinueOnError)
	AddFlags(flags)
	assert.NilError(t, flags.Parse(args))
	return flags
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		EnvLogLevel,
		"SEGPATH_SEPARATOR",
		"SEGPATH_ALLOW_BREAKOUT",
		"SEGPATH_KIND",
		"SEGPATH_IMMUTABLE",
		"SEGPATH_WORKERS",
		"SEGPATH_REQUIRED_VERSION",
	} {
		// Setenv restores the original value once the test is done
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func TestConfigFromFile(t *testing.T) {
	clearEnv(t)
	dir := fs.NewDir(t, "segpath-config", fs.WithFile("config.json", commentedConfig))

	c, err := New("1.0.0", parseFlags(t, "--config", dir.Join("config.json")))
	assert.NilError(t, err)
	assert.Equal(t, c.ConfigFile, dir.Join("config.json"))
	assert.Equal(t, c.Separator, `\`)
	assert.Assert(t, c.HasSeparator)
	assert.Assert(t, !c.BlockBreakout)
	assert.Equal(t, c.Kind, segpath.KindDir)
	assert.Equal(t, c.Workers, 3)
	assert.Assert(t, !c.Immutable)
}

func TestConfigPrecedence(t *testing.T) {
	clearEnv(t)
	dir := fs.NewDir(t, "segpath-config", fs.WithFile("config.json", commentedConfig))
	t.Setenv("SEGPATH_KIND", "file")
	t.Setenv("SEGPATH_ALLOW_BREAKOUT", "false")
	t.Setenv("SEGPATH_IMMUTABLE", "true")
	t.Setenv("SEGPATH_SEPARATOR", "/")

	c, err := New("1.0.0", parseFlags(t, "--config", dir.Join("config.json")))
	assert.NilError(t, err)
	assert.Equal(t, c.Kind, segpath.KindFile)
	assert.Assert(t, c.BlockBreakout)
	assert.Assert(t, c.Immutable)
	assert.Equal(t, c.Separator, "/")
	assert.Equal(t, c.Workers, 3)

	c, err = New("1.0.0", parseFlags(t,
		"--config", dir.Join("config.json"),
		"--kind", "path",
		"--allow-breakout",
		"--workers", "5",
		"--separator", "",
	))
	assert.NilError(t, err)
	assert.Equal(t, c.Kind, segpath.KindPath)
	assert.Assert(t, !c.BlockBreakout)
	assert.Equal(t, c.Workers, 5)
	assert.Assert(t, !c.HasSeparator)
}

func TestConfigDefaults(t *testing.T) {
	clearEnv(t)
	dir := fs.NewDir(t, "segpath-config", fs.WithFile("config.json", "{}"))

	c, err := New("1.0.0", parseFlags(t, "--config", dir.Join("config.json")))
	assert.NilError(t, err)
	missing, err := New("1.0.0", parseFlags(t, "--config", dir.Join("missing", "config.json")))
	assert.NilError(t, err)
	assert.DeepEqual(t, missing.ToFileConfig(), c.ToFileConfig())

	assert.Assert(t, c.BlockBreakout)
	assert.Assert(t, !c.HasSeparator)
	assert.Equal(t, c.Kind, segpath.KindPath)
	assert.Equal(t, c.Workers, runtime.NumCPU())
	assert.Assert(t, !c.NoColor)
}

func TestConfigErrors(t *testing.T) {
	clearEnv(t)
	dir := fs.NewDir(t, "segpath-config",
		fs.WithFile("bad-kind.json", `{"kind": "folder"}`),
		fs.WithFile("bad-workers.json", `{"workers": -1}`),
		fs.WithFile("bad-json.json", `{"kind": `),
		fs.WithFile("newer.json", `{"requiredVersion": ">= 2.0.0"}`),
		fs.WithFile("bad-constraint.json", `{"requiredVersion": "not a constraint"}`),
	)

	testCases := []struct {
		file     string
		expected string
	}{
		{"bad-kind.json", `invalid kind "folder"`},
		{"bad-workers.json", "invalid worker count -1"},
		{"bad-json.json", "parsing config file"},
		{"newer.json", "does not meet the '>= 2.0.0' constraint"},
		{"bad-constraint.json", "is not valid"},
	}
	for _, tc := range testCases {
		_, err := New("1.0.0", parseFlags(t, "--config", dir.Join(tc.file)))
		assert.ErrorContains(t, err, tc.expected, tc.file)
	}

	t.Setenv("SEGPATH_WORKERS", "many")
	_, err := New("1.0.0", parseFlags(t, "--config", filepath.Join(dir.Path(), "bad-kind.json")))
	assert.ErrorContains(t, err, "invalid environment variable")
}

func TestConfigInvalidLogLevel(t *testing.T) {
	clearEnv(t)
	dir := fs.NewDir(t, "segpath-config", fs.WithFile("config.json", "{}"))
	t.Setenv(EnvLogLevel, "loud")

	_, err := New("1.0.0", parseFlags(t, "--config", dir.Join("config.json")))
	assert.ErrorContains(t, err, `SEGPATH_LOG_LEVEL value "loud" is not a valid log level`)
}

func TestLogLevel(t *testing.T) {
	testCases := []struct {
		env       string
		verbosity int
		expected  hclog.Level
	}{
		{"", 0, hclog.NoLevel},
		{"", 1, hclog.Info},
		{"", 2, hclog.Debug},
		{"", 3, hclog.Trace},
		{"", 7, hclog.Trace},
		{"warn", 0, hclog.Warn},
		{"warn", 2, hclog.Debug},
		{"trace", 1, hclog.Trace},
	}
	for _, tc := range testCases {
		level, err := logLevel(tc.env, tc.verbosity)
		assert.NilError(t, err)
		assert.Equal(t, level, tc.expected, "env=%q verbosity=%v", tc.env, tc.verbosity)
	}
}

func TestCheckVersionCompatibility(t *testing.T) {
	assert.NilError(t, CheckVersionCompatibility("1.2.3", ""))
	assert.NilError(t, CheckVersionCompatibility("1.2.3", "^1.2"))
	assert.ErrorContains(t, CheckVersionCompatibility("1.2.3", ">= 1.3"), "does not meet")
	assert.ErrorContains(t, CheckVersionCompatibility("dev", "^1.2"), "cannot check")
}

func TestSearchConfigFile(t *testing.T) {
	configHome := fs.NewDir(t, "xdg", fs.WithDir("segpath", fs.WithFile("config.json", "{}")))
	home := fs.NewDir(t, "home", fs.WithFile(".segpath.json", "{}"))
	emptyHome := fs.NewDir(t, "empty")

	xdgPath := configHome.Join("segpath", "config.json")
	assert.Equal(t, searchConfigFile(configHome.Path(), home.Path()), xdgPath)

	missingXDG := filepath.Join(emptyHome.Path(), "config")
	assert.Equal(t, searchConfigFile(missingXDG, home.Path()), home.Join(".segpath.json"))
	assert.Equal(t, searchConfigFile(missingXDG, emptyHome.Path()), filepath.Join(missingXDG, "segpath", "config.json"))
	assert.Equal(t, searchConfigFile(missingXDG, ""), filepath.Join(missingXDG, "segpath", "config.json"))
}

func TestWriteConfigFile(t *testing.T) {
	clearEnv(t)
	dir := fs.NewDir(t, "segpath-config")
	path := dir.Join("nested", "config.json")

	c := &Config{
		Separator:     "::",
		HasSeparator:  true,
		BlockBreakout: false,
		Kind:          segpath.KindFile,
		Immutable:     true,
		Workers:       2,
	}
	assert.NilError(t, WriteConfigFile(path, c.ToFileConfig()))

	loaded, err := New("1.0.0", parseFlags(t, "--config", path))
	assert.NilError(t, err)
	assert.Equal(t, loaded.Separator, "::")
	assert.Assert(t, !loaded.BlockBreakout)
	assert.Equal(t, loaded.Kind, segpath.KindFile)
	assert.Assert(t, loaded.Immutable)
	assert.Equal(t, loaded.Workers, 2)
}
