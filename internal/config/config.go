package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"job-compass/internal/recommend"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Scoring  ScoringConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	DBHost         string
	DBPort         string
	DBName         string
	DBUser         string
	DBPassword     string
	DBSSLMode      string
	ConnectTimeout time.Duration
	PoolMaxConns   int32
}

// ScoringConfig is the externally tunable surface of the recommender: the
// blend weights, the tokenizer delimiter set and the default result count.
// Everything else (IDF formula, tie-break order, salary normalization) is
// fixed behavior.
type ScoringConfig struct {
	SkillWeight  float64
	SalaryWeight float64
	Delimiters   string
	DefaultLimit int
}

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")

	ErrInvalidScoringConfig = errors.New("invalid scoring configuration")
)

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE"),
	}
	if v := opt("DB_CONNECT_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid DB_CONNECT_TIMEOUT: %w", err)
		}
		cfg.Database.ConnectTimeout = d
	}
	if v := opt("DB_POOL_MAX_CONNS"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return Config{}, fmt.Errorf("invalid DB_POOL_MAX_CONNS: %w", err)
		}
		cfg.Database.PoolMaxConns = int32(n)
	}

	scoring, err := loadScoring(opt)
	if err != nil {
		return Config{}, err
	}
	cfg.Scoring = scoring

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

// loadScoring parses and validates the scoring knobs. Invalid weights fail
// here, before any scoring attempt, never silently clamped.
func loadScoring(opt func(string) string) (ScoringConfig, error) {
	sc := ScoringConfig{
		SkillWeight:  recommend.DefaultSkillWeight,
		SalaryWeight: recommend.DefaultSalaryWeight,
		Delimiters:   recommend.DefaultDelimiters,
		DefaultLimit: recommend.DefaultLimit,
	}

	if v := opt("SCORING_SKILL_WEIGHT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return ScoringConfig{}, fmt.Errorf("%w: SCORING_SKILL_WEIGHT: %v", ErrInvalidScoringConfig, err)
		}
		sc.SkillWeight = f
	}
	if v := opt("SCORING_SALARY_WEIGHT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return ScoringConfig{}, fmt.Errorf("%w: SCORING_SALARY_WEIGHT: %v", ErrInvalidScoringConfig, err)
		}
		sc.SalaryWeight = f
	}
	if v := opt("SCORING_DELIMITERS"); v != "" {
		sc.Delimiters = v
	}
	if v := opt("SCORING_DEFAULT_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return ScoringConfig{}, fmt.Errorf("%w: SCORING_DEFAULT_LIMIT must be a positive integer", ErrInvalidScoringConfig)
		}
		sc.DefaultLimit = n
	}

	if err := sc.Weights().Validate(); err != nil {
		return ScoringConfig{}, fmt.Errorf("%w: %v", ErrInvalidScoringConfig, err)
	}
	return sc, nil
}

func (sc ScoringConfig) Weights() recommend.Weights {
	return recommend.Weights{Skill: sc.SkillWeight, Salary: sc.SalaryWeight}
}
