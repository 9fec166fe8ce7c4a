package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Limits    LimitsConfig    `yaml:"limits"`
	Generator GeneratorConfig `yaml:"generator"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"ratelimit"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds authentication settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"stepspeak"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"720h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"10"`
}

// LimitsConfig holds exercise and paging parameters.
// Tier ceilings (word and daily session limits) are fixed in the domain.
type LimitsConfig struct {
	SessionSize   int `yaml:"session_size"    env:"LIMITS_SESSION_SIZE"    env-default:"5"`
	MaxDistractor int `yaml:"max_distractors" env:"LIMITS_MAX_DISTRACTORS" env-default:"3"`
	WordsPageSize int `yaml:"words_page_size" env:"LIMITS_WORDS_PAGE_SIZE" env-default:"10"`
}

// GeneratorConfig holds AI word-generation provider settings.
// An empty APIKey disables the provider: enrichment degrades to
// placeholders, prompt-based generation fails.
type GeneratorConfig struct {
	APIKey          string        `yaml:"api_key"          env:"GENERATOR_API_KEY"`
	BaseURL         string        `yaml:"base_url"         env:"GENERATOR_BASE_URL"         env-default:"https://api.gen-api.ru/api/v1/networks/o1-mini"`
	Model           string        `yaml:"model"            env:"GENERATOR_MODEL"            env-default:"o1-mini-2024-09-12"`
	EnrichTimeout   time.Duration `yaml:"enrich_timeout"   env:"GENERATOR_ENRICH_TIMEOUT"   env-default:"30s"`
	GenerateTimeout time.Duration `yaml:"generate_timeout" env:"GENERATOR_GENERATE_TIMEOUT" env-default:"45s"`
	MaxConcurrent   int           `yaml:"max_concurrent"   env:"GENERATOR_MAX_CONCURRENT"   env-default:"4"`
	DefaultCount    int           `yaml:"default_count"    env:"GENERATOR_DEFAULT_COUNT"    env-default:"15"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-User-Id,X-Auth-Token,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// RateLimitConfig holds per-IP rate limiting settings.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"RATELIMIT_ENABLED"          env-default:"false"`
	MaxPerMinute    int           `yaml:"max_per_minute"   env:"RATELIMIT_MAX_PER_MINUTE"   env-default:"120"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATELIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}
