package gateway

import "time"

type Config struct {
	Proxy struct {
		Header  string   `yaml:"header"  koanf:"header"`
		Trusted []string `yaml:"trusted" koanf:"trusted"`
	} `yaml:"proxy" koanf:"proxy"`

	HTTP struct {
		Addr         string        `yaml:"addr"          koanf:"addr"         validate:"omitempty,hostname_port"`
		ReadTimeout  time.Duration `yaml:"read_timeout"  koanf:"readtimeout"`
		WriteTimeout time.Duration `yaml:"write_timeout" koanf:"writetimeout"`
		IdleTimeout  time.Duration `yaml:"idle_timeout"  koanf:"idletimeout"`
	} `yaml:"http" koanf:"http"`
}
