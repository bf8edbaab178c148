package validation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCustomRules(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name  string
		value string
		tag   string
		valid bool
	}{
		{"currency code", "USDT", "currency_code", true},
		{"currency code with symbol", "$$", "currency_code", false},
		{"phone number", "+1 (555) 010-9999", "phone_number", true},
		{"phone number letters", "call me", "phone_number", false},
		{"wallet address", "0x71C7656EC7ab88b098defB751B7401B5f6d8976F", "wallet_address", true},
		{"wallet address too short", "abc", "wallet_address", false},
		{"decimal fits", "-9999999999999.99", "decimal_fits=15:2", true},
		{"decimal trailing zeros", "0.12340000", "decimal_fits=7:4", true},
		{"decimal overflow", "10000000000000", "decimal_fits=15:2", false},
		{"decimal excess scale", "0.12345", "decimal_fits=7:4", false},
		{"decimal not a number", "lots", "decimal_fits=15:2", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Var(tt.value, tt.tag)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	v := GetValidator()

	assert.Equal(t, "must be a valid email address", Describe(v.Var("nope", "email")))
	assert.Equal(t, "must be at most 3 characters", Describe(v.Var("abcd", "max=3")))
	assert.Equal(t, "must be a currency code", Describe(v.Var("?", "currency_code")))
	assert.Equal(t, "must have at most 3 digits before and 4 after the decimal point",
		Describe(v.Var("1000", DecimalTag(7, 4))))
	assert.Equal(t, "is invalid", Describe(assert.AnError))
}

func TestStruct_UsesJSONNames(t *testing.T) {
	type sessionRequest struct {
		RoqUserID string `json:"roq_user_id" validate:"required"`
	}

	err := GetValidator().Struct(sessionRequest{})
	assert.ErrorContains(t, err, "roq_user_id")
}

func TestDecimalFits(t *testing.T) {
	assert.True(t, DecimalFits(decimal.RequireFromString("999.9999"), 7, 4))
	assert.False(t, DecimalFits(decimal.RequireFromString("1000"), 7, 4))
	assert.False(t, DecimalFits(decimal.RequireFromString("1e18"), 15, 2))
	assert.True(t, DecimalFits(decimal.RequireFromString("-1.5"), 15, 2))
	assert.False(t, DecimalFits(decimal.RequireFromString("1.005"), 15, 2))
	assert.False(t, DecimalFits(decimal.Zero, 2, 3))
}
