package configs

import (
	"time"

	"github.com/caarlos0/env/v8"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Mongo struct {
	URI    string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	DBName string `env:"DB_NAME" envDefault:"vidtube"`
}

type Auth struct {
	AccessTokenSecret  string        `env:"ACCESS_TOKEN_SECRET,required,notEmpty"`
	AccessTokenExpiry  time.Duration `env:"ACCESS_TOKEN_EXPIRY" envDefault:"1h"`
	RefreshTokenSecret string        `env:"REFRESH_TOKEN_SECRET,required,notEmpty"`
	RefreshTokenExpiry time.Duration `env:"REFRESH_TOKEN_EXPIRY" envDefault:"240h"`
}

type ObjectStore struct {
	Region        string `env:"MEDIA_S3_REGION" envDefault:"us-east-1"`
	Bucket        string `env:"MEDIA_S3_BUCKET,required,notEmpty"`
	Endpoint      string `env:"MEDIA_S3_ENDPOINT"`
	PublicBaseURL string `env:"MEDIA_S3_PUBLIC_BASE_URL"`
}

type Config struct {
	Port       string `env:"PORT" envDefault:"8000"`
	CORSOrigin string `env:"CORS_ORIGIN" envDefault:"*"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`

	// Login/register attempts allowed per IP per minute.
	AuthRateLimit int `env:"AUTH_RATE_LIMIT" envDefault:"10"`

	Mongo
	Auth
	ObjectStore
}

// Load reads the .env file (values there win over the inherited environment,
// matching how the service is run in development) and parses the result.
func Load() (Config, error) {
	if err := godotenv.Overload(".env"); err != nil {
		log.Info().Msg("no .env file found, using system environment variables")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Pagination defaults for listing endpoints.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)
