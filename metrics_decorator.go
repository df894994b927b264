package luhn

import (
	"time"

	"github.com/allisson/go-luhn/metrics"
)

// checkerWithMetrics decorates Checker with metrics instrumentation.
type checkerWithMetrics struct {
	next    Checker
	metrics metrics.OperationMetrics
}

// NewCheckerWithMetrics wraps a Checker with metrics recording.
func NewCheckerWithMetrics(checker Checker, m metrics.OperationMetrics) Checker {
	return &checkerWithMetrics{
		next:    checker,
		metrics: m,
	}
}

// Generate records metrics for check digit generation.
func (c *checkerWithMetrics) Generate(digits string, opts *GenerateOptions) (string, error) {
	start := time.Now()
	result, err := c.next.Generate(digits, opts)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation("generate", status)
	c.metrics.RecordDuration("generate", time.Since(start), status)

	return result, err
}

// Validate records metrics for check digit validation.
func (c *checkerWithMetrics) Validate(candidate string) (bool, error) {
	start := time.Now()
	valid, err := c.next.Validate(candidate)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation("validate", status)
	c.metrics.RecordDuration("validate", time.Since(start), status)

	return valid, err
}

// Random records metrics for random number generation.
func (c *checkerWithMetrics) Random(lengthSpec string) (string, error) {
	start := time.Now()
	result, err := c.next.Random(lengthSpec)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation("random", status)
	c.metrics.RecordDuration("random", time.Since(start), status)

	return result, err
}
