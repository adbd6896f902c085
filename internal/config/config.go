package config

import (
	"errors"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	AllowedOrigins     string `env:"ALLOWED_ORIGINS" env-default:"*"`
	TableName          string `env:"TABLE_NAME"`
	StoreDriver        string `env:"STORE_DRIVER" env-default:"dynamodb"`
	RedisURL           string `env:"REDIS_URL" env-default:"localhost:6379"`
	AWSRegion          string `env:"AWS_REGION" env-default:"us-east-1"`
	AWSEndpoint        string `env:"AWS_ENDPOINT" env-default:""`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID" env-default:""`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" env-default:""`
	HTTPPort           int    `env:"HTTP_PORT" env-default:"8080"`
}

// New loads config from ./config/.env when present, otherwise from the
// process environment. TABLE_NAME is intentionally not required here:
// a missing table name is reported per request, not at startup.
func New() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig("./config/.env", &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err := cleanenv.ReadEnv(&cfg); err != nil {
				return nil, err
			}
			return &cfg, nil
		}
		return nil, err
	}
	return &cfg, nil
}
