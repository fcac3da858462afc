package loanmath

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	one         = decimal.NewFromInt(1)
	hundred     = decimal.NewFromInt(100)
	daysPerYear = decimal.NewFromInt(365)
)

// calcPrecision 中间计算精度，出参前不做任何舍入
const calcPrecision int32 = 28

// PeriodsPerYear 频率对应的每年期数。custom 按 365/间隔天数折算，
// one_time 视同一年一期。
func PeriodsPerYear(f Frequency, customDays int) (Decimal, error) {
	switch f {
	case FreqDaily:
		return decimal.NewFromInt(365), nil
	case FreqWeekly:
		return decimal.NewFromInt(52), nil
	case FreqBiweekly:
		return decimal.NewFromInt(26), nil
	case FreqMonthly:
		return decimal.NewFromInt(12), nil
	case FreqQuarterly:
		return decimal.NewFromInt(4), nil
	case FreqYearly, FreqOneTime:
		return one, nil
	case FreqCustom:
		if customDays <= 0 {
			return decimal.Zero, fmt.Errorf("%w: custom frequency requires a positive day interval", ErrInvalidInput)
		}
		return daysPerYear.Div(decimal.NewFromInt(int64(customDays))), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnsupportedFrequency, f)
	}
}

// PeriodicRate 年化百分比利率折算为每期利率（小数）
func PeriodicRate(annualRatePercent Decimal, f Frequency, customDays int) (Decimal, error) {
	n, err := PeriodsPerYear(f, customDays)
	if err != nil {
		return decimal.Zero, err
	}
	return annualRatePercent.Div(hundred).Div(n), nil
}
