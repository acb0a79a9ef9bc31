package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Host              string
	Port              string
	ReadHeaderTimeout time.Duration
	LivenessEndpoint  string

	LogLevel      string
	LogFile       string
	LogMaxSizeMB  int
	LogMaxAgeDays int
	LogColor      bool

	BookingEmail string
	DraftTTL     time.Duration
	RatesFile    string
}

// Load reads the process environment after merging an optional .env file.
// Variables already set in the environment win over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	readHeaderTimeout, err := parseDur("APP_READ_HEADER_TIMEOUT", "20s")
	if err != nil {
		return Config{}, err
	}

	draftTTL, err := parseDur("DRAFT_TTL", "24h")
	if err != nil {
		return Config{}, err
	}

	maxSize, err := atoi("LOG_MAX_SIZE_MB", "100")
	if err != nil {
		return Config{}, err
	}

	maxAge, err := atoi("LOG_MAX_AGE_DAYS", "14")
	if err != nil {
		return Config{}, err
	}

	return Config{
		Host:              getenv("APP_HOST", "localhost"),
		Port:              getenv("APP_PORT", "8092"),
		ReadHeaderTimeout: readHeaderTimeout,
		LivenessEndpoint:  getenv("APP_LIVENESS_ENDPOINT", "/liveness"),
		LogLevel:          getenv("LOG_LEVEL", "info"),
		LogFile:           os.Getenv("LOG_FILE"),
		LogMaxSizeMB:      maxSize,
		LogMaxAgeDays:     maxAge,
		LogColor:          getenv("LOG_COLOR", "true") == "true",
		BookingEmail:      getenv("BOOKING_EMAIL", "diamondpodhajska@gmail.com"),
		DraftTTL:          draftTTL,
		RatesFile:         os.Getenv("RATES_FILE"),
	}, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}

func atoi(key, def string) (int, error) {
	s := getenv(key, def)

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid int for %s: %q", key, s)
	}

	return n, nil
}

func parseDur(key, def string) (time.Duration, error) {
	s := getenv(key, def)

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %q", key, s)
	}

	return d, nil
}
