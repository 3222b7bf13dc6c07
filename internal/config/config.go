package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Checker    CheckerConfig    `yaml:"checker"`
	Redis      RedisConfig      `yaml:"redis"`
	Batch      BatchConfig      `yaml:"batch"`
	Log        LogConfig        `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"HTTP_ADDR"            env-default:":8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"HTTP_READ_TIMEOUT"    env-default:"10s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT"   env-default:"30s"`
}

// DictionaryConfig points at the frequency word list.
type DictionaryConfig struct {
	Path string `yaml:"path" env:"DICTIONARY_PATH" env-default:"en_full.txt"`
}

// CheckerConfig controls the candidate filter.
type CheckerConfig struct {
	IgnoreShortWords   bool `yaml:"ignore_short_words"    env:"CHECKER_IGNORE_SHORT_WORDS"    env-default:"true"`
	IgnoreAllCapsWords bool `yaml:"ignore_all_caps_words" env:"CHECKER_IGNORE_ALL_CAPS_WORDS" env-default:"true"`
}

// RedisConfig holds the custom-dictionary store settings. An empty Addr
// disables the store; the checker then runs on the base dictionary only.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB" env-default:"0"`
}

// BatchConfig controls parallel document processing.
type BatchConfig struct {
	Workers int `yaml:"workers" env:"BATCH_WORKERS" env-default:"4"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
