package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		wantValid bool
		wantPhone string
	}{
		{
			name:      "bare ten digit number",
			input:     "9876543210",
			wantValid: true,
			wantPhone: "+919876543210",
		},
		{
			name:      "with country code",
			input:     "+91 98765 43210",
			wantValid: true,
			wantPhone: "+919876543210",
		},
		{
			name:      "with trunk zero",
			input:     "09876543210",
			wantValid: true,
			wantPhone: "+919876543210",
		},
		{
			name:      "with dashes",
			input:     "98765-43210",
			wantValid: true,
			wantPhone: "+919876543210",
		},
		{
			name:      "too short",
			input:     "987654321",
			wantValid: false,
		},
		{
			name:      "invalid first digit",
			input:     "1234567890",
			wantValid: false,
		},
		{
			name:      "letters",
			input:     "98765abcde",
			wantValid: false,
		},
		{
			name:      "empty",
			input:     "",
			wantValid: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			valid, formatted, err := ValidatePhone(tc.input)
			if tc.wantValid {
				assert.NoError(t, err)
				assert.True(t, valid)
				assert.Equal(t, tc.wantPhone, formatted)
			} else {
				assert.Error(t, err)
				assert.False(t, valid)
			}
		})
	}
}

func TestGeneratePasscode(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := GeneratePasscode(4)
		assert.NoError(t, err)
		assert.Len(t, code, 4)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9')
		}
	}
}

func TestGeneratePasscodeInvalidLength(t *testing.T) {
	_, err := GeneratePasscode(0)
	assert.Error(t, err)
}
