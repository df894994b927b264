package luhn

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

// TestMain verifies that no test in this package leaks goroutines.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNewChecker(t *testing.T) {
	c := NewChecker()

	assert.NotNil(t, c)
	assert.IsType(t, &checker{}, c)
}

func TestPackageLevelFunctions(t *testing.T) {
	t.Run("Generate", func(t *testing.T) {
		result, err := Generate("7992739871", nil)

		require.NoError(t, err)
		assert.Equal(t, "79927398713", result)
	})

	t.Run("Generate_ChecksumOnly", func(t *testing.T) {
		result, err := Generate("7992739871", &GenerateOptions{ChecksumOnly: true})

		require.NoError(t, err)
		assert.Equal(t, "3", result)
	})

	t.Run("Validate", func(t *testing.T) {
		valid, err := Validate("79927398713")

		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("Random", func(t *testing.T) {
		value, err := Random("10")

		require.NoError(t, err)
		assert.Len(t, value, 10)
	})
}

func TestChecker_Purity(t *testing.T) {
	checker := NewChecker()

	// Same input and options always yield the same output.
	first, err := checker.Generate("4242424242424242", nil)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		result, err := checker.Generate("4242424242424242", nil)
		require.NoError(t, err)
		assert.Equal(t, first, result)

		checksum, err := checker.Generate("4242424242424242", &GenerateOptions{ChecksumOnly: true})
		require.NoError(t, err)
		assert.Equal(t, first[len(first)-1:], checksum)
	}
}

func TestChecker_ConcurrentUse(t *testing.T) {
	checker := NewChecker()

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			for j := 0; j < 200; j++ {
				result, err := checker.Generate("7992739871", nil)
				if err != nil {
					return err
				}
				if result != "79927398713" {
					return fmt.Errorf("unexpected generate result %q", result)
				}

				valid, err := checker.Validate(result)
				if err != nil {
					return err
				}
				if !valid {
					return fmt.Errorf("%q should pass validation", result)
				}

				value, err := checker.Random("10")
				if err != nil {
					return err
				}
				if len(value) != 10 {
					return fmt.Errorf("unexpected random length for %q", value)
				}
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
}
