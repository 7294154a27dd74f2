package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"

	"github.com/nikmy/dbconn/internal/docstore"
	"github.com/nikmy/dbconn/internal/gateway"
	"github.com/nikmy/dbconn/internal/hosted"
	"github.com/nikmy/dbconn/pkg/environment"
	"github.com/nikmy/dbconn/pkg/errors"
)

// Environment variables with this prefix override the yaml file, nested
// keys separated by "_": DBCONN_MONGO_URI -> mongo.uri.
const envPrefix = "DBCONN_"

const defaultAddr = ":8080"

type Config struct {
	Environment environment.Env `yaml:"environment" koanf:"environment"`
	Mongo       docstore.Config `yaml:"mongo"       koanf:"mongo"`
	Supabase    hosted.Config   `yaml:"supabase"    koanf:"supabase"`
	Gateway     gateway.Config  `yaml:"gateway"     koanf:"gateway"`
}

func loadConfig(path string) (*Config, error) {
	var cfg Config
	cfg.Gateway.HTTP.Addr = defaultAddr

	err := loadYAML(path, &cfg)
	if err != nil {
		return nil, err
	}

	err = godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errors.WrapFail(err, "load .env")
	}

	k := koanf.New(".")
	err = k.Load(env.Provider(envPrefix, ".", envKey), nil)
	if err != nil {
		return nil, errors.WrapFail(err, "load environment variables")
	}

	err = k.Unmarshal("", &cfg)
	if err != nil {
		return nil, errors.WrapFail(err, "apply environment variables")
	}

	err = validator.New().Struct(&cfg)
	if err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &cfg, nil
}

func loadYAML(path string, cfg *Config) error {
	path, err := filepath.Abs(path)
	if err != nil {
		return errors.WrapFail(err, "build path to config")
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return errors.WrapFailf(err, "read %q", path)
	}

	err = yaml.Unmarshal(data, cfg)
	return errors.WrapFail(err, "parse yaml")
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return strings.ReplaceAll(s, "_", ".")
}
