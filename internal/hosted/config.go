package hosted

type Config struct {
	URL    string `yaml:"url"    koanf:"url"    validate:"omitempty,url"`
	Key    string `yaml:"key"    koanf:"key"    validate:"required_with=URL"`
	Schema string `yaml:"schema" koanf:"schema"`
}

func (c Config) Enabled() bool {
	return c.URL != ""
}
