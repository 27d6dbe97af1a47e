package config

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/muhammadmuzzammil1998/jsonc"
	"github.com/pathkit/segpath/internal/segpath"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// FileConfig is the set of values that can be stored in a config file. The
// same fields are read from SEGPATH_* environment variables.
type FileConfig struct {
	// Separator renders paths; nil leaves the platform default
	Separator       *string `json:"separator,omitempty"`
	AllowBreakout   bool    `json:"allowBreakout,omitempty" split_words:"true"`
	Kind            string  `json:"kind,omitempty"`
	Immutable       bool    `json:"immutable,omitempty"`
	Workers         int     `json:"workers,omitempty"`
	RequiredVersion string  `json:"requiredVersion,omitempty" split_words:"true"`
}

// ReadConfigFile reads a config file at a path. The file may contain
// comments. A missing file returns an empty config along with an error
// satisfying os.IsNotExist once unwrapped with errors.Cause.
func ReadConfigFile(path string) (*FileConfig, error) {
	config := &FileConfig{}
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return config, errors.Wrapf(err, "reading config file %v", path)
	}

	fileViper := viper.New()
	fileViper.SetConfigType("json")
	if err := fileViper.ReadConfig(bytes.NewReader(jsonc.ToJSON(b))); err != nil {
		return config, errors.Wrapf(err, "parsing config file %v", path)
	}

	if fileViper.IsSet("separator") {
		separator := fileViper.GetString("separator")
		config.Separator = &separator
	}
	config.AllowBreakout = fileViper.GetBool("allowBreakout")
	config.Kind = fileViper.GetString("kind")
	config.Immutable = fileViper.GetBool("immutable")
	config.Workers = fileViper.GetInt("workers")
	config.RequiredVersion = fileViper.GetString("requiredVersion")
	return config, nil
}

// WriteConfigFile writes config as JSON, creating parent directories as needed
func WriteConfigFile(path string, config *FileConfig) error {
	jsonBytes, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding config")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, "creating directory for %v", path)
	}
	if err := ioutil.WriteFile(path, append(jsonBytes, '\n'), 0644); err != nil {
		return errors.Wrapf(err, "writing config file %v", path)
	}
	return nil
}

// ToFileConfig converts the effective configuration back to its stored form
func (c *Config) ToFileConfig() *FileConfig {
	fileConfig := &FileConfig{
		AllowBreakout:   !c.BlockBreakout,
		Immutable:       c.Immutable,
		Workers:         c.Workers,
		RequiredVersion: c.RequiredVersion,
	}
	if c.Kind != segpath.KindPath {
		fileConfig.Kind = c.Kind.String()
	}
	if c.HasSeparator {
		separator := c.Separator
		fileConfig.Separator = &separator
	}
	return fileConfig
}
