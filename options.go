package luhn

// GenerateOptions configures Generate. The zero value is the default
// behavior.
type GenerateOptions struct {
	// ChecksumOnly makes Generate return only the computed check digit
	// instead of the input with the check digit appended.
	ChecksumOnly bool
}
