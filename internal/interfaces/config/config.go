package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const DefaultFeedURL = "https://spitz-web.com/news/feed"

type Config struct {
	// TableName と TopicARN は実行ごとに検証する（未設定は ConfigurationError の結果になる）
	TableName string `envconfig:"TABLE_NAME"`
	TopicARN  string `envconfig:"TOPIC_ARN"`

	FeedURL  string `envconfig:"FEED_URL" default:"https://spitz-web.com/news/feed" validate:"required,url"`
	FeedName string `envconfig:"FEED_NAME" default:"スピッツ"`

	IdentityStrategy string `envconfig:"IDENTITY_STRATEGY" default:"timestamp" validate:"oneof=timestamp numeric_id"`
	OutputOrder      string `envconfig:"OUTPUT_ORDER" default:"newest_first" validate:"oneof=newest_first oldest_first"`

	DateStyle          string `envconfig:"DATE_STYLE" default:"fixed" validate:"oneof=fixed raw"`
	DateUTCOffsetHours int    `envconfig:"DATE_UTC_OFFSET_HOURS" default:"9" validate:"min=-12,max=14"`

	CheckpointBackend string `envconfig:"CHECKPOINT_BACKEND" default:"dynamodb" validate:"oneof=dynamodb sqlite postgres memory"`
	SQLitePath        string `envconfig:"SQLITE_PATH" default:"checkpoint.db"`
	DatabaseURL       string `envconfig:"DATABASE_URL" validate:"required_if=CheckpointBackend postgres"`

	Notifier    string `envconfig:"NOTIFIER" default:"sns" validate:"oneof=sns misskey console"`
	MisskeyHost string `envconfig:"MISSKEY_HOST" validate:"required_if=Notifier misskey"`
	AuthToken   string `envconfig:"AUTH_TOKEN" validate:"required_if=Notifier misskey"`
	LocalOnly   bool   `envconfig:"LOCAL_ONLY" default:"false"`

	// SAM Local 実行時のエンドポイント上書き
	SAMLocal       bool   `envconfig:"AWS_SAM_LOCAL" default:"false"`
	AWSEndpointURL string `envconfig:"AWS_ENDPOINT_URL"`

	FetchTimeout  int `envconfig:"FETCH_TIMEOUT" default:"30" validate:"gt=0"`
	FetchInterval int `envconfig:"FETCH_INTERVAL" default:"3600" validate:"gt=0"`
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the policy values. Missing TABLE_NAME / TOPIC_ARN are not
// checked here.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func (c *Config) GetFetchInterval() time.Duration {
	return time.Duration(c.FetchInterval) * time.Second
}

func (c *Config) GetFetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeout) * time.Second
}
