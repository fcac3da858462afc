package loanmath

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"plain year", date(2025, time.January, 1), date(2026, time.January, 1), 365},
		{"leap year", date(2024, time.January, 1), date(2025, time.January, 1), 366},
		{"same day", date(2025, time.May, 10), date(2025, time.May, 10), 0},
		{"reversed is negative", date(2025, time.May, 10), date(2025, time.May, 9), -1},
		{"month span", date(2025, time.January, 31), date(2025, time.March, 1), 29},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysBetween(tt.start, tt.end))
		})
	}

	t.Run("time of day is ignored", func(t *testing.T) {
		start := time.Date(2025, time.January, 1, 23, 0, 0, 0, time.UTC)
		end := time.Date(2025, time.January, 2, 1, 0, 0, 0, time.UTC)
		assert.Equal(t, 1, DaysBetween(start, end))
	})
}

func TestYearFraction(t *testing.T) {
	start := date(2025, time.January, 31)
	end := date(2025, time.July, 31)
	actDays := decimal.NewFromInt(181)

	tests := []struct {
		name string
		conv DayCountConvention
		want Decimal
	}{
		{"30/360 US", Conv30360US, dec("0.5")},
		{"30E/360", Conv30360E, dec("0.5")},
		{"act/360", ConvAct360, actDays.Div(decimal.NewFromInt(360))},
		{"act/365F", ConvAct365F, actDays.Div(decimal.NewFromInt(365))},
		{"act/act ISDA non-leap", ConvActActISDA, actDays.Div(decimal.NewFromInt(365))},
		{"act/365.25", ConvAct365AFB, actDays.Div(decimal.NewFromFloat(365.25))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := YearFraction(start, end, tt.conv)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s want %s", got, tt.want)
		})
	}

	t.Run("act/act ISDA leap year denominator", func(t *testing.T) {
		got, err := YearFraction(date(2024, time.January, 1), date(2024, time.July, 1), ConvActActISDA)
		require.NoError(t, err)
		want := decimal.NewFromInt(182).Div(decimal.NewFromInt(366))
		assert.True(t, got.Equal(want), "got %s want %s", got, want)
	})

	t.Run("unknown convention", func(t *testing.T) {
		_, err := YearFraction(start, end, DayCountConvention("ACT/ACT_AFB"))
		require.ErrorIs(t, err, ErrUnsupportedConvention)
	})
}

func TestYearDays(t *testing.T) {
	assert.Equal(t, 366, YearDays(date(2024, time.March, 1)))
	assert.Equal(t, 365, YearDays(date(2025, time.March, 1)))
	assert.Equal(t, 365, YearDays(date(1900, time.March, 1)))
	assert.Equal(t, 366, YearDays(date(2000, time.March, 1)))
}
