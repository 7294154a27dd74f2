package docstore

import (
	"time"
)

type Config struct {
	URI      string        `yaml:"uri"      koanf:"uri"      validate:"omitempty,startswith=mongodb"`
	Database string        `yaml:"database" koanf:"database"`
	Timeout  time.Duration `yaml:"timeout"  koanf:"timeout"  validate:"gte=0"`

	Auth struct {
		Username string `yaml:"username" koanf:"username"`
		Password string `yaml:"password" koanf:"password"`
	} `yaml:"auth" koanf:"auth"`

	Pool struct {
		MinSize uint64 `yaml:"minSize" koanf:"minsize"`
		MaxSize uint64 `yaml:"maxSize" koanf:"maxsize" validate:"omitempty,gtefield=MinSize"`
	} `yaml:"pool" koanf:"pool"`
}

func (c Config) Enabled() bool {
	return c.URI != ""
}
