package config

import "github.com/caarlos0/env/v11"

// Config is the Lambda environment shared by the entry points.
type Config struct {
	TableName   string `env:"TABLE_NAME"`
	IndexName   string `env:"INDEX_NAME_1" envDefault:"GS1"`
	TopicArn    string `env:"TOPIC_ARN"`
	AuthPoolUrl string `env:"AUTH_POOL_URL"`
}

func Load() (Config, error) {
	return env.ParseAs[Config]()
}
