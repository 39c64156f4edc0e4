// Package config loads rubyedit settings from a rubyedit.env file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the runtime settings.
type Config struct {
	TabWidth   int    `mapstructure:"TAB_WIDTH"`
	EOLMode    string `mapstructure:"EOL_MODE"`
	TagsFiles  string `mapstructure:"TAGS_FILES"` // comma-separated paths
	SnippetDir string `mapstructure:"SNIPPET_DIR"`
}

// LoadConfig reads rubyedit.env from path, with environment variables
// taking precedence. A missing config file is not an error; defaults apply.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("rubyedit")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("TAB_WIDTH", 2)
	v.SetDefault("EOL_MODE", "lf")
	v.SetDefault("TAGS_FILES", "")
	v.SetDefault("SNIPPET_DIR", "")

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
		err = nil
	}

	err = v.Unmarshal(&config)
	if err != nil {
		return
	}

	if config.TabWidth < 1 {
		err = fmt.Errorf("TAB_WIDTH must be positive, got %d", config.TabWidth)
	}
	return
}

// TagsList splits the comma-separated TAGS_FILES setting into paths.
func (config *Config) TagsList() []string {
	var out []string
	for _, p := range strings.Split(config.TagsFiles, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
