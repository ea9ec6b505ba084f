package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

// indianMobilePattern matches a ten digit Indian mobile number: the first
// digit must be 6-9.
var indianMobilePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

// ValidatePhone validates an Indian mobile number and normalizes it to
// +91XXXXXXXXXX form.
func ValidatePhone(phone string) (bool, string, error) {
	stripped := strings.ReplaceAll(phone, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	stripped = strings.ReplaceAll(stripped, "+", "")

	// Remove country code or trunk prefix if present
	if strings.HasPrefix(stripped, "91") && len(stripped) == 12 {
		stripped = stripped[2:]
	} else if strings.HasPrefix(stripped, "0") && len(stripped) == 11 {
		stripped = stripped[1:]
	}

	if !indianMobilePattern.MatchString(stripped) {
		return false, "", fmt.Errorf("invalid Indian mobile number")
	}

	return true, "+91" + stripped, nil
}

// GeneratePasscode returns a random fixed-length numeric code (ride OTPs,
// login OTPs). Always exactly n digits, zero padded.
func GeneratePasscode(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("passcode length must be positive")
	}

	max := big.NewInt(1)
	for i := 0; i < n; i++ {
		max.Mul(max, big.NewInt(10))
	}

	v, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate passcode: %w", err)
	}

	return fmt.Sprintf("%0*d", n, v), nil
}
