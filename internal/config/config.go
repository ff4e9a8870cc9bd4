package config

import (
	"fmt"
	"os"

	"github.com/go-yaml/yaml"
)

type Config struct {
	Server Server `yaml:"server"`
	Store  Store  `yaml:"store"`
}

type Server struct {
	ListenAddr string `yaml:"listenAddr"`
	// APIToken is the static bearer credential clients must present.
	// Empty disables the check (dev mode).
	APIToken      string `yaml:"apiToken"`
	EnableTrace   bool   `yaml:"enableTrace"`
	TraceEndpoint string `yaml:"traceEndpoint"`
}

type Store struct {
	Backend       string `yaml:"backend"` // redis, memcached, postgres, memory
	RedisAddr     string `yaml:"redisAddr"`
	RedisPassword string `yaml:"redisPassword"`
	RedisDB       int    `yaml:"redisDB"`
	MemcachedAddr string `yaml:"memcachedAddr"`
	PostgresDsn   string `yaml:"postgresDsn"`
}

func Load(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	err = yaml.NewDecoder(file).Decode(&config)
	if err != nil {
		return Config{}, err
	}

	if config.Server.ListenAddr == "" {
		config.Server.ListenAddr = ":8000"
	}
	if config.Store.Backend == "" {
		config.Store.Backend = "memory"
	}
	switch config.Store.Backend {
	case "redis", "memcached", "postgres", "memory":
	default:
		return Config{}, fmt.Errorf("unknown store backend: %s", config.Store.Backend)
	}

	return config, nil
}
