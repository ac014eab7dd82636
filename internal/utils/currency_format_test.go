package utils_test

import (
	"testing"

	"github.com/karunya-trust/donation_backend/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		want   string
	}{
		{"whole rupees", decimal.NewFromInt(50), "₹50.00"},
		{"paise preserved", decimal.NewFromFloat(75.5), "₹75.50"},
		{"thousands grouping", decimal.NewFromFloat(1234.56), "₹1,234.56"},
		{"lakh grouping", decimal.NewFromInt(150000), "₹1,50,000.00"},
		{"rounds beyond two places", decimal.NewFromFloat(12.345), "₹12.35"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.FormatAmount(tt.amount))
		})
	}
}

func TestFormatAmountDeterministic(t *testing.T) {
	amount := decimal.NewFromFloat(987.65)
	first := utils.FormatAmount(amount)
	second := utils.FormatAmount(amount)
	assert.Equal(t, first, second)
}

func TestFormatAmountPlain(t *testing.T) {
	assert.Equal(t, "150000.00", utils.FormatAmountPlain(decimal.NewFromInt(150000)))
	assert.Equal(t, "12.35", utils.FormatAmountPlain(decimal.NewFromFloat(12.345)))
}
