package loanmath

import (
	"fmt"

	"time"

	"github.com/shopspring/decimal"
)

// CalculateEMI 等额本息每期还款额：EMI = P·r·(1+r)^n / ((1+r)^n − 1)。
// 利率为 0 时退化为本金平分。
func CalculateEMI(principal, annualRatePercent Decimal, installments int, f Frequency, customDays int) (Decimal, error) {
	if principal.Sign() <= 0 {
		return decimal.Zero, fmt.Errorf("%w: principal must be positive", ErrInvalidInput)
	}
	if installments <= 0 {
		return decimal.Zero, fmt.Errorf("%w: installments must be positive", ErrInvalidInput)
	}
	if annualRatePercent.Sign() < 0 {
		return decimal.Zero, fmt.Errorf("%w: annual rate must not be negative", ErrInvalidInput)
	}
	r, err := PeriodicRate(annualRatePercent, f, customDays)
	if err != nil {
		return decimal.Zero, err
	}
	if r.IsZero() {
		return Money(principal.Div(decimal.NewFromInt(int64(installments)))), nil
	}
	return Money(annuityPayment(principal, int64(installments), r)), nil
}

func annuityPayment(principal Decimal, periods int64, rate Decimal) Decimal {
	base1r := rate.Add(one)
	base1rn := base1r.Pow(decimal.NewFromInt(periods))

	numerator := principal.Mul(base1rn).Mul(rate)
	denominator := base1rn.Sub(one)
	return numerator.Div(denominator)
}

// GenerateAmortizationSchedule 生成等额本息还款计划。
// 每期利息 = 期初余额 × 期利率，本金 = EMI − 利息；
// 末期吸收跨期舍入残差，保证期末余额精确为 0、
// 各期本金之和精确等于合同本金。
func GenerateAmortizationSchedule(terms LoanTerms) ([]AmortizationEntry, error) {
	if err := terms.Validate(); err != nil {
		return nil, err
	}
	if terms.Installments <= 0 {
		return nil, fmt.Errorf("%w: installments must be positive", ErrInvalidInput)
	}
	if terms.IssueDate.IsZero() {
		return nil, fmt.Errorf("%w: issue date is required", ErrInvalidInput)
	}
	if terms.PaymentFrequency == FreqOneTime && terms.Installments != 1 {
		return nil, fmt.Errorf("%w: one_time frequency allows a single installment only", ErrInvalidInput)
	}
	r, err := PeriodicRate(terms.AnnualRatePercent, terms.PaymentFrequency, terms.CustomDays)
	if err != nil {
		return nil, err
	}
	emi, err := CalculateEMI(terms.Principal, terms.AnnualRatePercent, terms.Installments, terms.PaymentFrequency, terms.CustomDays)
	if err != nil {
		return nil, err
	}

	schedule := make([]AmortizationEntry, 0, terms.Installments)
	balance := Money(terms.Principal)
	for i := 1; i <= terms.Installments; i++ {
		dueDate, err := dueDateFor(terms, i)
		if err != nil {
			return nil, err
		}
		interest := Money(balance.Mul(r))
		var principal, payment Decimal
		if i == terms.Installments {
			// 末期修正：剩余本金全部计入本期
			principal = balance
			payment = Money(principal.Add(interest))
			balance = decimal.Zero
		} else {
			principal = emi.Sub(interest)
			payment = emi
			balance = balance.Sub(principal)
		}
		schedule = append(schedule, AmortizationEntry{
			Number:    i,
			DueDate:   dueDate,
			Payment:   payment,
			Principal: principal,
			Interest:  interest,
			Balance:   balance,
		})
	}
	return schedule, nil
}

func dueDateFor(terms LoanTerms, period int) (time.Time, error) {
	if terms.PaymentFrequency == FreqOneTime {
		if terms.DueDate.IsZero() {
			return terms.IssueDate, fmt.Errorf("%w: one_time schedule requires a due date", ErrInvalidInput)
		}
		return Roll(terms.DueDate, terms.Roll, terms.Holiday), nil
	}
	d, err := NextDueDate(terms.IssueDate, period, terms.PaymentFrequency, terms.CustomDays)
	if err != nil {
		return d, err
	}
	return Roll(d, terms.Roll, terms.Holiday), nil
}

// PrincipalFromEMI 由期供反推可贷本金（EMI 公式的代数逆）。
// 利率为 0 时本金 = EMI × 期数，无利息。
func PrincipalFromEMI(emi Decimal, installments int, annualRatePercent Decimal, f Frequency, customDays int) (PrincipalResult, error) {
	if emi.Sign() <= 0 {
		return PrincipalResult{}, fmt.Errorf("%w: emi must be positive", ErrInvalidInput)
	}
	if installments <= 0 {
		return PrincipalResult{}, fmt.Errorf("%w: installments must be positive", ErrInvalidInput)
	}
	if annualRatePercent.Sign() < 0 {
		return PrincipalResult{}, fmt.Errorf("%w: annual rate must not be negative", ErrInvalidInput)
	}
	r, err := PeriodicRate(annualRatePercent, f, customDays)
	if err != nil {
		return PrincipalResult{}, err
	}
	n := decimal.NewFromInt(int64(installments))
	total := emi.Mul(n)
	if r.IsZero() {
		return PrincipalResult{
			Principal:     Money(total),
			TotalAmount:   Money(total),
			TotalInterest: decimal.Zero,
		}, nil
	}
	base1rn := r.Add(one).Pow(n)
	principal := emi.Mul(base1rn.Sub(one)).Div(r.Mul(base1rn))
	return PrincipalResult{
		Principal:     Money(principal),
		TotalAmount:   Money(total),
		TotalInterest: Money(total.Sub(principal)),
	}, nil
}
