package luhn

// checkDigit calculates the Luhn check digit for a well-formed digit string.
// The input should NOT include the check digit position.
func checkDigit(digits string) int {
	sum := 0
	length := len(digits)

	// Process digits from right to left (excluding the check digit position)
	for i := 0; i < length; i++ {
		digit := int(digits[length-1-i] - '0')

		// Double every second digit from the right
		if i%2 == 0 {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}

		sum += digit
	}

	// The digit that makes the full sequence sum to 0 modulo 10
	return (10 - sum%10) % 10
}
