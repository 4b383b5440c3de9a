package config

import (
	"bytes"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	KeyServerPort = "server.port"
	KeyStorePath  = "store.path"
	KeyAdminToken = "admin.token"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Store  StoreConfig  `mapstructure:"store" validate:"required"`
	Admin  AdminConfig  `mapstructure:"admin"`
}

type ServerConfig struct {
	Port int `mapstructure:"port" validate:"required,min=1,max=65535"`
}

type StoreConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// AdminConfig gates the irreversible store reset. An empty token disables
// the reset route entirely.
type AdminConfig struct {
	Token string `mapstructure:"token"`
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# formulario-publicaciones configuration
server:
  port: 10000

store:
  path: "./data.csv"

admin:
  # Token required by the store reset endpoint; leave empty to disable it.
  token: ""
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyServerPort, 10000)
	v.SetDefault(KeyStorePath, "./data.csv")
	v.SetDefault(KeyAdminToken, "")
}
