package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// RuntimeFileName is the optional config file looked up in the working directory
const RuntimeFileName = "pixeldungeon"

// LoadRuntime overrides C from an optional config file and PD_* environment
// variables. An empty path searches the working directory; a missing file is
// not an error, a malformed one is.
func LoadRuntime(path string) error {
	v := viper.New()
	v.SetEnvPrefix("PD")
	v.AutomaticEnv()

	v.SetDefault("width", C.Width)
	v.SetDefault("height", C.Height)
	v.SetDefault("version", C.Version)
	v.SetDefault("debug", C.Debug)
	v.SetDefault("skip_fade", C.SkipFade)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(RuntimeFileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read runtime config: %w", err)
		}
	}

	width, height := v.GetInt("width"), v.GetInt("height")
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", width, height)
	}

	C.Width = width
	C.Height = height
	C.Version = v.GetString("version")
	C.Debug = v.GetBool("debug")
	C.SkipFade = v.GetBool("skip_fade")
	return nil
}
