package gsi

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by LoadConfig.
const (
	EnvURL      = "COORKIT_GSI_URL"
	EnvZone     = "COORKIT_GSI_ZONE"
	EnvInterval = "COORKIT_GSI_INTERVAL"
	EnvTimeout  = "COORKIT_GSI_TIMEOUT"
	EnvAttempts = "COORKIT_GSI_ATTEMPTS"
)

// DefaultURL is the GSI survey calculation host.
const DefaultURL = "http://vldb.gsi.go.jp"

// Config configures a Client.
type Config struct {
	// BaseURL is scheme and host of the service, without a trailing slash.
	BaseURL string
	// Zone is the plane rectangular coordinate system, 1 through 19.
	Zone int
	// RefFrame selects the geodetic reference frame; 2 is JGD2011.
	RefFrame int
	// Interval is the minimum spacing between requests. GSI refuses
	// clients polling faster than once a second.
	Interval time.Duration
	// Timeout bounds a single HTTP exchange.
	Timeout time.Duration
	// Attempts is the number of tries for a transient failure.
	Attempts int
}

// DefaultConfig returns the configuration used when nothing is overridden:
// zone 9, JGD2011, one request every 1.5 seconds.
func DefaultConfig() Config {
	return Config{
		BaseURL:  DefaultURL,
		Zone:     9,
		RefFrame: 2,
		Interval: 1500 * time.Millisecond,
		Timeout:  10 * time.Second,
		Attempts: 4,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.BaseURL == "":
		return errors.New("gsi: missing base URL")
	case c.Zone < 1 || c.Zone > 19:
		return fmt.Errorf("gsi: zone %d out of range [1, 19]", c.Zone)
	case c.Interval < 0:
		return fmt.Errorf("gsi: negative interval %s", c.Interval)
	case c.Attempts < 1:
		return fmt.Errorf("gsi: attempts must be at least 1, got %d", c.Attempts)
	}
	return nil
}

// LoadConfig starts from DefaultConfig and applies the COORKIT_GSI_*
// variables, taken from the process environment or, failing that, from the
// given dotenv files. With no files, ".env" is read if it exists.
func LoadConfig(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	dotenv := map[string]string{}
	for _, f := range files {
		vals, err := godotenv.Read(f)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, fmt.Errorf("gsi: read %s: %w", f, err)
		}
		for k, v := range vals {
			if _, ok := dotenv[k]; !ok {
				dotenv[k] = v
			}
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}

	cfg := DefaultConfig()
	if v, ok := lookup(EnvURL); ok {
		cfg.BaseURL = v
	}
	if v, ok := lookup(EnvZone); ok {
		zone, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("gsi: %s: %w", EnvZone, err)
		}
		cfg.Zone = zone
	}
	if v, ok := lookup(EnvInterval); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("gsi: %s: %w", EnvInterval, err)
		}
		cfg.Interval = d
	}
	if v, ok := lookup(EnvTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("gsi: %s: %w", EnvTimeout, err)
		}
		cfg.Timeout = d
	}
	if v, ok := lookup(EnvAttempts); ok {
		attempts, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("gsi: %s: %w", EnvAttempts, err)
		}
		cfg.Attempts = attempts
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
