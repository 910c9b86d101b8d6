package main

import (
	"fmt"
	"strings"

	"github.com/indigo-web/lite/config"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Settings are everything the binary may be configured with. Precedence: flags, then
// LITE_* environment variables, then the config file, then defaults.
type Settings struct {
	Host string `mapstructure:"host"`
	Port uint16 `mapstructure:"port"`
	Log  struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`
	NET struct {
		ReadBufferSize  int `mapstructure:"read_buffer_size"`
		WriteBufferSize int `mapstructure:"write_buffer_size"`
	} `mapstructure:"net"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("host", "localhost")
	v.SetDefault("port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("net.read_buffer_size", config.Default().NET.ReadBufferSize)
	v.SetDefault("net.write_buffer_size", config.Default().NET.WriteBufferSize)

	v.SetEnvPrefix("LITE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// loadSettings merges all the sources. An empty path means no config file.
func loadSettings(v *viper.Viper, flags *pflag.FlagSet, path string) (*Settings, error) {
	for key, flag := range map[string]string{
		"host":       "host",
		"port":       "port",
		"log.level":  "log-level",
		"log.format": "log-format",
	} {
		if f := flags.Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, err
			}
		}
	}

	if len(path) > 0 {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, err
	}

	return &s, nil
}

// Config converts the settings into the server config.
func (s *Settings) Config() *config.Config {
	cfg := config.Default()
	cfg.NET.ReadBufferSize = s.NET.ReadBufferSize
	cfg.NET.WriteBufferSize = s.NET.WriteBufferSize

	return config.Fill(cfg)
}
