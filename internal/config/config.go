// internal/config/config.go
//
// Environment loading and lookup helpers, grounded on the teacher's
// main.go (godotenv.Load + envStr/getEnv) and its JWT_SECRET/PORT style
// of reading process env for configuration. Centralized here so both
// the wordle and crossword CLIs share one loading path rather than each
// reimplementing os.Getenv plumbing.

package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Load reads a .env file if one is present in the working directory. A
// missing file is not an error — config may come entirely from real
// process environment variables (containers, CI), matching the
// teacher's "non-fatal if missing" comment in main.go.
func Load() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Str returns the value of env var k, or def if unset/empty.
func Str(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Int returns the integer value of env var k, or def if unset/empty/malformed.
func Int(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// Bool returns the boolean value of env var k, or def if unset/empty/malformed.
// Accepts anything strconv.ParseBool accepts ("1", "true", "TRUE", "0", "false", ...).
func Bool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
