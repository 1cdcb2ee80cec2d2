package server_test

import (
	"testing"

	"backoffice/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsValidCurrency(t *testing.T) {
	tests := []struct {
		name     string
		currency string
		want     bool
	}{
		{"USD", server.CurrencyUSD, true},
		{"EUR", server.CurrencyEUR, true},
		{"GBP", server.CurrencyGBP, true},
		{"TRY", server.CurrencyTRY, true},
		{"Invalid", "DOGE", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{Currency: tt.currency}
			assert.Equal(t, tt.want, c.IsValidCurrency())
		})
	}
}
