package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Santiagox01/VeterinariaFinal/internal/money"
)

func TestFormatPlain(t *testing.T) {
	type testCase struct {
		name  string
		cents int64
		want  string
	}

	tests := []testCase{
		{name: "Zero", cents: 0, want: "0"},
		{name: "Thousands", cents: 1500000, want: "15.000"},
		{name: "Millions", cents: 123456700, want: "1.234.567"},
		{name: "WithCents", cents: 2550050, want: "25.500,50"},
		{name: "SingleDigitCents", cents: 105, want: "1,05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, money.FormatPlain(tt.cents))
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "$ 15.000", money.Format(1500000))
	assert.Equal(t, "$ 25.500,50", money.Format(2550050))
}

func TestCode(t *testing.T) {
	assert.Equal(t, "COP", money.Code())
}
