package config

import "github.com/spf13/viper"

const defaultLogMaxSize = 10 // megabytes

var v = newViper()

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("log.max_size", defaultLogMaxSize)
	_ = v.BindEnv("development", "DEVELOPMENT")
	_ = v.BindEnv("log.file", "SWEEPER_LOG_FILE")
	_ = v.BindEnv("log.max_size", "SWEEPER_LOG_MAX_SIZE")
	return v
}
