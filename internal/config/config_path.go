package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

const (
	_configDirName  = "segpath"
	_configFileName = "config.json"
	// legacy location, checked when nothing exists under the XDG config home
	_dotfileName = ".segpath.json"
)

// DefaultConfigPath returns the config file to read when none is given on the
// command line. The path does not need to exist.
func DefaultConfigPath() string {
	home, err := homedir.Dir()
	if err != nil {
		home = ""
	}
	return searchConfigFile(xdg.ConfigHome, home)
}

// searchConfigFile prefers $XDG_CONFIG_HOME/segpath/config.json, falls back to
// ~/.segpath.json when only that exists, and otherwise returns the XDG path.
func searchConfigFile(configHome string, home string) string {
	xdgPath := filepath.Join(configHome, _configDirName, _configFileName)
	if fileExists(xdgPath) {
		return xdgPath
	}
	if home != "" {
		dotfile := filepath.Join(home, _dotfileName)
		if fileExists(dotfile) {
			return dotfile
		}
	}
	return xdgPath
}

// ExpandPath expands a leading ~ and makes path absolute
func ExpandPath(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", errors.Wrapf(err, "expanding %v", path)
	}
	absolute, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.Wrapf(err, "failed to construct absolute path for %v", path)
	}
	return absolute, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
