// Package testutil provides shared configuration and helpers for the test
// suite.
//
// Environment Variables:
//
// Test run parameters can be customized via environment variables:
//   - LUHN_TEST_RANDOM_ITERATIONS: number of draws statistical tests perform (default: 1000)
//   - LUHN_TEST_DISTRIBUTION_TOLERANCE: allowed relative deviation from the expected digit frequency (default: 0.4)
//
// A .env file found in the current directory or any parent is loaded first,
// so local overrides do not need to be exported.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"
)

// Config holds the tunable parameters of the test suite.
type Config struct {
	// RandomIterations is the number of draws statistical tests perform.
	// Larger values tighten the distribution checks at the cost of runtime.
	RandomIterations int
	// DistributionTolerance is the allowed relative deviation from the
	// expected frequency in distribution tests.
	DistributionTolerance float64
}

// LoadConfig loads the test configuration from environment variables and .env file.
func LoadConfig() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		RandomIterations:      env.GetInt("LUHN_TEST_RANDOM_ITERATIONS", 1000),
		DistributionTolerance: env.GetFloat64("LUHN_TEST_DISTRIBUTION_TOLERANCE", 0.4),
	}
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	// Search for .env file recursively up the directory tree
	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// .env file found, load it
			_ = godotenv.Load(envPath)
			return
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}
}

// RequireDigitString fails the test unless s has exactly the given length and
// consists solely of ASCII decimal digits.
func RequireDigitString(t *testing.T, s string, length int) {
	t.Helper()

	require.Len(t, s, length)
	for i := 0; i < len(s); i++ {
		require.True(t, s[i] >= '0' && s[i] <= '9', "non-digit at index %d in %q", i, s)
	}
}
