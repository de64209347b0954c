// server/config/config.go
package config

import (
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type MongoConfig struct {
	URI    string `mapstructure:"uri"`
	DBName string `mapstructure:"dbName"`
}

type S3Config struct {
	Bucket           string `mapstructure:"bucket"`
	Region           string `mapstructure:"region"`
	AccessKeyID      string `mapstructure:"accessKeyID"`
	SecretAccessKey  string `mapstructure:"secretAccessKey"`
	CloudFrontDomain string `mapstructure:"cloudFrontDomain"`
}

// SyncConfig holds the external attendance-sync webhook.
// An empty URL disables forwarding entirely.
type SyncConfig struct {
	WebhookURL string `mapstructure:"webhookURL"`
}

type AuthConfig struct {
	TokenSecret  string        `mapstructure:"tokenSecret"`
	TokenTTL     time.Duration `mapstructure:"tokenTTL"`
	RequireToken bool          `mapstructure:"requireToken"`
}

type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allowOrigins"`
}

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Mongo  MongoConfig  `mapstructure:"mongo"`
	S3     S3Config     `mapstructure:"s3"`
	Sync   SyncConfig   `mapstructure:"sync"`
	Auth   AuthConfig   `mapstructure:"auth"`
	CORS   CORSConfig   `mapstructure:"cors"`
}

// LoadConfig reads config.yaml from the given path and overrides it with
// environment variables. A missing file is not an error; the server can
// run on env vars alone.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()

	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("mongo.uri", "MONGO_URI")
	viper.BindEnv("mongo.dbName", "MONGO_DBNAME")
	viper.BindEnv("s3.bucket", "S3_BUCKET")
	viper.BindEnv("s3.region", "S3_REGION")
	viper.BindEnv("s3.accessKeyID", "S3_ACCESS_KEY_ID")
	viper.BindEnv("s3.secretAccessKey", "S3_SECRET_ACCESS_KEY")
	viper.BindEnv("s3.cloudFrontDomain", "S3_CLOUDFRONT_DOMAIN")
	viper.BindEnv("sync.webhookURL", "SYNC_WEBHOOK_URL")
	viper.BindEnv("auth.tokenSecret", "AUTH_TOKEN_SECRET")
	viper.BindEnv("auth.requireToken", "AUTH_REQUIRE_TOKEN")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("mongo.dbName", "hadirkoe")
	viper.SetDefault("auth.tokenTTL", time.Hour)

	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	err = viper.Unmarshal(&config)
	return
}
