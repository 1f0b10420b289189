package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"go.yaml.in/yaml/v4"
)

const (
	DefaultPath = "healthping.yaml"

	TargetStdout = "stdout"
	TargetMemory = "memory"
	TargetRedis  = "redis"
)

type Config struct {
	Output OutputConfig `yaml:"output"`
	Server ServerConfig `yaml:"server"`
	Redis  RedisConfig  `yaml:"redis"`
}

type OutputConfig struct {
	Target  string `yaml:"target"`
	Element string `yaml:"element"`
}

type ServerConfig struct {
	Address string `yaml:"address"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Target:  TargetStdout,
			Element: "out",
		},
		Server: ServerConfig{
			Address: ":8080",
		},
		Redis: RedisConfig{
			Addr: "redis:6379",
		},
	}
}

// PathFromEnv returns HEALTHPING_CONFIG, or DefaultPath when unset.
func PathFromEnv() string {
	if p := os.Getenv("HEALTHPING_CONFIG"); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads the YAML file at path on top of Default, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("HEALTHPING_OUTPUT"); v != "" {
		c.Output.Target = v
	}
	if v := os.Getenv("HEALTHPING_ADDR"); v != "" {
		c.Server.Address = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Redis.DB = n
		}
	}
}

func (c *Config) Validate() error {
	switch c.Output.Target {
	case TargetStdout, TargetMemory, TargetRedis:
	default:
		return fmt.Errorf("config: unknown output target %q", c.Output.Target)
	}
	if c.Output.Element == "" {
		return fmt.Errorf("config: output element must not be empty")
	}
	if c.Server.Address == "" {
		return fmt.Errorf("config: server address must not be empty")
	}
	if c.Output.Target == TargetRedis && c.Redis.Addr == "" {
		return fmt.Errorf("config: redis output needs redis.addr")
	}
	if c.Redis.DB < 0 {
		return fmt.Errorf("config: redis.db must be >= 0")
	}
	return nil
}
