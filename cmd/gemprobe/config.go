package main

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/go-viper/mapstructure/v2"
	"github.com/metalagman/gemprobe/internal/config"
	"github.com/spf13/viper"
)

func loadConfig() (config.Config, error) {
	path := viper.GetString("config")
	if path == "" {
		path = filepath.Join(".gemprobe", "config.json")
	}
	viper.SetConfigFile(path)
	viper.SetConfigType("json")
	if err := viper.ReadInConfig(); err != nil {
		// A missing config file means defaults.
		if errors.Is(err, fs.ErrNotExist) {
			var cfg config.Config
			cfg.ApplyDefaults()
			return cfg, nil
		}
		return config.Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := config.ValidateSettings(viper.AllSettings()); err != nil {
		return config.Config{}, err
	}
	var cfg config.Config
	decodeHook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
	))
	if err := viper.Unmarshal(&cfg, decodeHook); err != nil {
		return config.Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.ApplyDefaults()
	return cfg, nil
}
