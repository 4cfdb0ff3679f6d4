package config

import "time"

// Config is the root application configuration.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Store    StoreConfig    `yaml:"store"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Quiz     QuizConfig     `yaml:"quiz"`
	Server   ServerConfig   `yaml:"server"`
	CORS     CORSConfig     `yaml:"cors"`
}

// LogConfig holds logging settings. An empty File means stderr.
type LogConfig struct {
	Level  string `yaml:"level"  env:"CAPISCO_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"CAPISCO_LOG_FORMAT" env-default:"text"`
	File   string `yaml:"file"   env:"CAPISCO_LOG_FILE"`
}

// StoreConfig holds the SQLite event store location. An empty Path means
// the default data directory.
type StoreConfig struct {
	Path string `yaml:"path" env:"CAPISCO_DB"`
}

// PipelineConfig holds lesson generation settings.
type PipelineConfig struct {
	MinStepDelay       time.Duration `yaml:"min_step_delay"       env:"CAPISCO_MIN_STEP_DELAY"       env-default:"1s"`
	MaxStepDelay       time.Duration `yaml:"max_step_delay"       env:"CAPISCO_MAX_STEP_DELAY"       env-default:"3s"`
	MaxDurationSeconds int           `yaml:"max_duration_seconds" env:"CAPISCO_MAX_DURATION_SECONDS" env-default:"120"`
	SourceLanguage     string        `yaml:"source_language"      env:"CAPISCO_SOURCE_LANGUAGE"      env-default:"it"`
	TargetLanguage     string        `yaml:"target_language"      env:"CAPISCO_TARGET_LANGUAGE"      env-default:"en"`
}

// QuizConfig holds quiz engine settings.
type QuizConfig struct {
	MaxRecentTypes int    `yaml:"max_recent_types" env:"CAPISCO_MAX_RECENT_TYPES" env-default:"3"`
	DataDir        string `yaml:"data_dir"         env:"CAPISCO_QUIZ_DATA_DIR"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"CAPISCO_SERVER_HOST"             env-default:"127.0.0.1"`
	Port            int           `yaml:"port"             env:"CAPISCO_SERVER_PORT"             env-default:"8000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"CAPISCO_SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"CAPISCO_SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"CAPISCO_SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"CAPISCO_CORS_ALLOWED_ORIGINS" env-default:"*"`
	AllowedMethods string `yaml:"allowed_methods" env:"CAPISCO_CORS_ALLOWED_METHODS" env-default:"GET,POST,OPTIONS"`
	AllowedHeaders string `yaml:"allowed_headers" env:"CAPISCO_CORS_ALLOWED_HEADERS" env-default:"Content-Type"`
}
