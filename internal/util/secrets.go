package util

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Secrets struct {
	Port    int           `mapstructure:"port"`
	Db      DbSecrets     `mapstructure:"db"`
	Jwt     string        `mapstructure:"jwt"`
	Alpaca  AlpacaSecrets `mapstructure:"alpaca"`
	SES     SESSecrets    `mapstructure:"ses"`
	Redis   RedisSecrets  `mapstructure:"redis"`
	ChatGPT string        `mapstructure:"gpt"`
}

type DbSecrets struct {
	Host      string `mapstructure:"host"`
	User      string `mapstructure:"user"`
	Port      string `mapstructure:"port"`
	Password  string `mapstructure:"password"`
	Database  string `mapstructure:"database"`
	EnableSsl bool   `mapstructure:"enableSsl"`
}

type AlpacaSecrets struct {
	ApiKey    string `mapstructure:"apiKey"`
	ApiSecret string `mapstructure:"apiSecret"`
	Endpoint  string `mapstructure:"endpoint"`
}

type SESSecrets struct {
	Region    string `mapstructure:"region"`
	FromEmail string `mapstructure:"fromEmail"`
}

type RedisSecrets struct {
	Addr       string `mapstructure:"addr"`
	Password   string `mapstructure:"password"`
	DB         int    `mapstructure:"db"`
	TTLSeconds int    `mapstructure:"ttlSeconds"`
}

func (t DbSecrets) ToConnectionStr() string {
	x := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s",
		t.Host, t.Port, t.User, t.Password, t.Database)
	if !t.EnableSsl {
		x += " sslmode=disable"
	}
	return x
}

// ToURL is the form golang-migrate expects.
func (t DbSecrets) ToURL() string {
	sslMode := "require"
	if !t.EnableSsl {
		sslMode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		t.User, t.Password, t.Host, t.Port, t.Database, sslMode)
}

func secretsFile() string {
	if f := os.Getenv("FINORA_SECRETS_FILE"); f != "" {
		return f
	}
	switch strings.ToLower(os.Getenv("FINORA_ENV")) {
	case "dev":
		return "secrets-dev.json"
	case "test":
		return "secrets-test.json"
	}
	return "/go/src/app/secrets.json"
}

// LoadSecrets reads the secrets file for the current FINORA_ENV. Any key
// can be overridden with an env var, e.g. FINORA_DB_HOST.
func LoadSecrets() (*Secrets, error) {
	return LoadSecretsFromFile(secretsFile())
}

func LoadSecretsFromFile(path string) (*Secrets, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetEnvPrefix("FINORA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", 3009)
	v.SetDefault("redis.ttlSeconds", 300)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}

	secrets := Secrets{}
	if err := v.Unmarshal(&secrets); err != nil {
		return nil, fmt.Errorf("failed to parse secrets: %w", err)
	}

	return &secrets, nil
}
