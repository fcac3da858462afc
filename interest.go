package loanmath

import (
	"fmt"

	"time"

	"github.com/shopspring/decimal"
)

// SimpleInterest 单利：principal × rate/100 × days/365
func SimpleInterest(principal, annualRatePercent Decimal, days int) (Decimal, error) {
	if err := validateAccrual(principal, annualRatePercent, days); err != nil {
		return decimal.Zero, err
	}
	interest := principal.
		Mul(annualRatePercent).Div(hundred).
		Mul(decimal.NewFromInt(int64(days))).Div(daysPerYear)
	return Money(interest), nil
}

// CompoundInterest 复利：principal × (1 + r/n)^(n·t)，t = days/365，
// n 为频率对应的每年期数。中间计算全精度，出参保留 2 位小数。
func CompoundInterest(principal, annualRatePercent Decimal, days int, f Frequency, customDays int) (CompoundResult, error) {
	if err := validateAccrual(principal, annualRatePercent, days); err != nil {
		return CompoundResult{}, err
	}
	n, err := PeriodsPerYear(f, customDays)
	if err != nil {
		return CompoundResult{}, err
	}
	total, err := compoundGrow(principal, annualRatePercent, n, decimal.NewFromInt(int64(days)).Div(daysPerYear))
	if err != nil {
		return CompoundResult{}, err
	}
	return CompoundResult{
		TotalAmount:    Money(total),
		InterestAmount: Money(total.Sub(principal)),
	}, nil
}

// TotalAmountDue 整笔到期应还：按发放日到到期日的整天数计息。
// 计息方式为 none 或利率为 0 时只还本金。
func TotalAmountDue(terms LoanTerms) (AmountDue, error) {
	if err := terms.Validate(); err != nil {
		return AmountDue{}, err
	}
	if terms.IssueDate.IsZero() || terms.DueDate.IsZero() {
		return AmountDue{}, fmt.Errorf("%w: issue date and due date are required", ErrInvalidInput)
	}
	if terms.InterestType == InterestNone || terms.AnnualRatePercent.IsZero() {
		return AmountDue{TotalAmountDue: Money(terms.Principal), InterestAmount: decimal.Zero}, nil
	}
	days := DaysBetween(terms.IssueDate, terms.DueDate)
	switch terms.InterestType {
	case InterestSimple:
		interest, err := SimpleInterest(terms.Principal, terms.AnnualRatePercent, days)
		if err != nil {
			return AmountDue{}, err
		}
		return AmountDue{
			TotalAmountDue: Money(terms.Principal.Add(interest)),
			InterestAmount: interest,
		}, nil
	case InterestCompound:
		r, err := CompoundInterest(terms.Principal, terms.AnnualRatePercent, days, terms.CompoundingFrequency, terms.CustomDays)
		if err != nil {
			return AmountDue{}, err
		}
		return AmountDue{TotalAmountDue: r.TotalAmount, InterestAmount: r.InterestAmount}, nil
	default:
		return AmountDue{}, fmt.Errorf("%w: %q", ErrUnsupportedInterestType, terms.InterestType)
	}
}

// PeriodInterest 任意子区间上的利息，按 ACT/365F 计。end 不晚于 start 时为 0。
func PeriodInterest(principal, annualRatePercent Decimal, start, end time.Time, itype InterestType, f Frequency, customDays int) (Decimal, error) {
	return PeriodInterestWithConvention(principal, annualRatePercent, start, end, itype, f, customDays, ConvAct365F)
}

// PeriodInterestWithConvention 同 PeriodInterest，但按指定的计息天数惯例
// 折算年化区间，用于货币市场类的子期定价。
func PeriodInterestWithConvention(principal, annualRatePercent Decimal, start, end time.Time, itype InterestType, f Frequency, customDays int, conv DayCountConvention) (Decimal, error) {
	if DaysBetween(start, end) <= 0 {
		return decimal.Zero, nil
	}
	if err := validateAccrual(principal, annualRatePercent, 0); err != nil {
		return decimal.Zero, err
	}
	frac, err := YearFraction(start, end, conv)
	if err != nil {
		return decimal.Zero, err
	}
	switch itype {
	case InterestNone:
		return decimal.Zero, nil
	case InterestSimple:
		return Money(principal.Mul(annualRatePercent).Div(hundred).Mul(frac)), nil
	case InterestCompound:
		n, err := PeriodsPerYear(f, customDays)
		if err != nil {
			return decimal.Zero, err
		}
		total, err := compoundGrow(principal, annualRatePercent, n, frac)
		if err != nil {
			return decimal.Zero, err
		}
		return Money(total.Sub(principal)), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnsupportedInterestType, itype)
	}
}

// AccruedInterest 自上次计息日到 asOf 的应计利息。asOf 必须由调用方显式
// 传入，本包永远不取系统时钟。
func AccruedInterest(principal, annualRatePercent Decimal, lastCalc, asOf time.Time, itype InterestType, f Frequency, customDays int) (Decimal, error) {
	return PeriodInterest(principal, annualRatePercent, lastCalc, asOf, itype, f, customDays)
}

// compoundGrow principal × (1 + r/n)^(n·t)，全精度
func compoundGrow(principal, annualRatePercent, periodsPerYear, yearFraction Decimal) (Decimal, error) {
	r := annualRatePercent.Div(hundred)
	base := one.Add(r.Div(periodsPerYear))
	exponent := periodsPerYear.Mul(yearFraction)
	grown, err := base.PowWithPrecision(exponent, calcPrecision)
	if err != nil {
		return decimal.Zero, err
	}
	return principal.Mul(grown), nil
}

func validateAccrual(principal, annualRatePercent Decimal, days int) error {
	if principal.Sign() <= 0 {
		return fmt.Errorf("%w: principal must be positive", ErrInvalidInput)
	}
	if annualRatePercent.Sign() < 0 {
		return fmt.Errorf("%w: annual rate must not be negative", ErrInvalidInput)
	}
	if days < 0 {
		return fmt.Errorf("%w: days must not be negative", ErrInvalidInput)
	}
	return nil
}
