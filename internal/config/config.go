package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/fightlab/fightdata-pipeline/internal/platform/logging"
	"github.com/fightlab/fightdata-pipeline/internal/resolve"
)

// Config stores runtime configuration for the pipeline binaries.
type Config struct {
	DBURL             string `validate:"required"`
	LogLevel          logging.Level
	Workers           int    `validate:"gte=1,lte=256"`
	ReportsDir        string `validate:"required"`
	UnresolvedLogPath string `validate:"required"`

	MatchAccept     int `validate:"gte=0,lte=100"`
	MatchMargin     int `validate:"gte=0,lte=100"`
	MatchFloor      int `validate:"gte=0,lte=100"`
	MatchPairCutoff int `validate:"gte=0,lte=100"`

	MinRefCoveragePct   float64 `validate:"gte=0,lte=100"`
	MinTypedCoveragePct float64 `validate:"gte=0,lte=100"`
	MinTableRows        int64   `validate:"gte=0"`
}

// MatchThresholds maps the configured fuzzy-match scores onto the
// resolver's threshold set.
func (c Config) MatchThresholds() resolve.Thresholds {
	return resolve.Thresholds{
		Accept:     c.MatchAccept,
		Margin:     c.MatchMargin,
		Floor:      c.MatchFloor,
		PairCutoff: c.MatchPairCutoff,
	}
}

func Load() (Config, error) {
	defaults := resolve.DefaultThresholds()

	workers, err := getEnvAsInt("WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse WORKERS: %w", err)
	}

	matchAccept, err := getEnvAsInt("MATCH_ACCEPT_SCORE", defaults.Accept)
	if err != nil {
		return Config{}, fmt.Errorf("parse MATCH_ACCEPT_SCORE: %w", err)
	}
	matchMargin, err := getEnvAsInt("MATCH_MARGIN", defaults.Margin)
	if err != nil {
		return Config{}, fmt.Errorf("parse MATCH_MARGIN: %w", err)
	}
	matchFloor, err := getEnvAsInt("MATCH_FLOOR_SCORE", defaults.Floor)
	if err != nil {
		return Config{}, fmt.Errorf("parse MATCH_FLOOR_SCORE: %w", err)
	}
	matchPairCutoff, err := getEnvAsInt("MATCH_PAIR_CUTOFF", defaults.PairCutoff)
	if err != nil {
		return Config{}, fmt.Errorf("parse MATCH_PAIR_CUTOFF: %w", err)
	}
	if matchFloor > matchAccept {
		return Config{}, fmt.Errorf("MATCH_FLOOR_SCORE (%d) must not exceed MATCH_ACCEPT_SCORE (%d)", matchFloor, matchAccept)
	}
	if matchPairCutoff > matchAccept {
		return Config{}, fmt.Errorf("MATCH_PAIR_CUTOFF (%d) must not exceed MATCH_ACCEPT_SCORE (%d)", matchPairCutoff, matchAccept)
	}

	minRefCoverage, err := getEnvAsFloat("MIN_REF_COVERAGE_PCT", 99.5)
	if err != nil {
		return Config{}, fmt.Errorf("parse MIN_REF_COVERAGE_PCT: %w", err)
	}
	minTypedCoverage, err := getEnvAsFloat("MIN_TYPED_COVERAGE_PCT", 99.0)
	if err != nil {
		return Config{}, fmt.Errorf("parse MIN_TYPED_COVERAGE_PCT: %w", err)
	}
	minTableRows, err := getEnvAsInt("MIN_TABLE_ROWS", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse MIN_TABLE_ROWS: %w", err)
	}

	cfg := Config{
		DBURL:             strings.TrimSpace(getEnv("DB_URL", "")),
		LogLevel:          logging.ParseLevel(getEnv("LOG_LEVEL", "info")),
		Workers:           workers,
		ReportsDir:        strings.TrimSpace(getEnv("REPORTS_DIR", "./reports")),
		UnresolvedLogPath: strings.TrimSpace(getEnv("UNRESOLVED_LOG_PATH", "./reports/unresolved.tsv")),

		MatchAccept:     matchAccept,
		MatchMargin:     matchMargin,
		MatchFloor:      matchFloor,
		MatchPairCutoff: matchPairCutoff,

		MinRefCoveragePct:   minRefCoverage,
		MinTypedCoveragePct: minTypedCoverage,
		MinTableRows:        int64(minTableRows),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsFloat(key string, fallback float64) (float64, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}

	return out, nil
}
