package server

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Address      string        `envconfig:"ADDRESS" default:":8080"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"5s"`
}

func GetConfig() *Config {
	cfg := new(Config)
	if err := envconfig.Process("SERVER", cfg); err != nil {
		panic(err)
	}

	return cfg
}
