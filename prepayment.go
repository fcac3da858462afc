package loanmath

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// NumberOfInstallments 求还清 principal 所需期数：
// n = log(EMI / (EMI − P·r)) / log(1+r)，向上取整。
// EMI 不超过每期利息时本金永远不减少，返回 ErrNeverAmortizes。
func NumberOfInstallments(principal, emi, annualRatePercent Decimal, f Frequency, customDays int) (int, error) {
	n, err := fractionalTenure(principal, emi, annualRatePercent, f, customDays)
	if err != nil {
		return 0, err
	}
	return int(n.Ceil().IntPart()), nil
}

// fractionalTenure 期数的精确解，不取整，供流水对比使用
func fractionalTenure(principal, emi, annualRatePercent Decimal, f Frequency, customDays int) (Decimal, error) {
	if principal.Sign() <= 0 {
		return decimal.Zero, fmt.Errorf("%w: principal must be positive", ErrInvalidInput)
	}
	if emi.Sign() <= 0 {
		return decimal.Zero, fmt.Errorf("%w: emi must be positive", ErrInvalidInput)
	}
	if annualRatePercent.Sign() < 0 {
		return decimal.Zero, fmt.Errorf("%w: annual rate must not be negative", ErrInvalidInput)
	}
	r, err := PeriodicRate(annualRatePercent, f, customDays)
	if err != nil {
		return decimal.Zero, err
	}
	if r.IsZero() {
		return principal.Div(emi), nil
	}
	periodInterest := principal.Mul(r)
	if emi.Cmp(periodInterest) <= 0 {
		return decimal.Zero, fmt.Errorf("%w: emi %s does not exceed periodic interest %s",
			ErrNeverAmortizes, emi.StringFixed(2), Money(periodInterest).StringFixed(2))
	}
	num, err := emi.Div(emi.Sub(periodInterest)).Ln(calcPrecision)
	if err != nil {
		return decimal.Zero, err
	}
	den, err := one.Add(r).Ln(calcPrecision)
	if err != nil {
		return decimal.Zero, err
	}
	return num.Div(den), nil
}

// PrepaymentEffect 测算一笔提前还款的影响。
//
// reduce_tenure 保持原 EMI，在减少后的本金上重解（更短的）期数；
// reduce_emi 保持剩余期数，在减少后的本金上重解（更小的）EMI。
// 节省利息按剩余还款流水之差计算：原流水按当前余额的精确期数折算，
// 新流水为修正后的还款流加上本次提前还款额。
//
// 提前还款额不小于当前余额时贷款直接结清，不再做任何测算，
// InterestSaved 报告余额与还款额之差（非正数即多付部分）。
func PrepaymentEffect(state PrepaymentState, amount Decimal, option PrepaymentOption) (PrepaymentResult, error) {
	if err := state.validate(); err != nil {
		return PrepaymentResult{}, err
	}
	if amount.Sign() <= 0 {
		return PrepaymentResult{}, fmt.Errorf("%w: prepayment amount must be positive", ErrInvalidInput)
	}

	newPrincipal := state.CurrentBalance.Sub(amount)
	if newPrincipal.Sign() <= 0 {
		return PrepaymentResult{
			NewPrincipal:  decimal.Zero,
			InterestSaved: Money(newPrincipal),
			Closed:        true,
		}, nil
	}

	emi, err := CalculateEMI(state.Principal, state.AnnualRatePercent, state.Installments, state.Frequency, state.CustomDays)
	if err != nil {
		return PrepaymentResult{}, err
	}
	remaining := state.Installments - state.Completed

	switch option {
	case PrepayReduceTenure:
		oldTenure, err := fractionalTenure(state.CurrentBalance, emi, state.AnnualRatePercent, state.Frequency, state.CustomDays)
		if err != nil {
			return PrepaymentResult{}, err
		}
		newTenure, err := fractionalTenure(newPrincipal, emi, state.AnnualRatePercent, state.Frequency, state.CustomDays)
		if err != nil {
			return PrepaymentResult{}, err
		}
		tenure := int(newTenure.Ceil().IntPart())
		saved := emi.Mul(oldTenure.Sub(newTenure)).Sub(amount)
		return PrepaymentResult{
			NewPrincipal:    Money(newPrincipal),
			NewEMI:          emi,
			NewTenure:       tenure,
			TenureReducedBy: remaining - tenure,
			InterestSaved:   Money(saved),
		}, nil
	case PrepayReduceEMI:
		if remaining <= 0 {
			return PrepaymentResult{}, fmt.Errorf("%w: no installments remaining", ErrInvalidInput)
		}
		newEMI, err := CalculateEMI(newPrincipal, state.AnnualRatePercent, remaining, state.Frequency, state.CustomDays)
		if err != nil {
			return PrepaymentResult{}, err
		}
		rem := decimal.NewFromInt(int64(remaining))
		saved := emi.Mul(rem).Sub(newEMI.Mul(rem).Add(amount))
		return PrepaymentResult{
			NewPrincipal:  Money(newPrincipal),
			NewEMI:        newEMI,
			NewTenure:     remaining,
			InterestSaved: Money(saved),
		}, nil
	default:
		return PrepaymentResult{}, fmt.Errorf("%w: %q", ErrUnsupportedOption, option)
	}
}

func (s PrepaymentState) validate() error {
	if s.Principal.Sign() <= 0 {
		return fmt.Errorf("%w: principal must be positive", ErrInvalidInput)
	}
	if s.AnnualRatePercent.Sign() < 0 {
		return fmt.Errorf("%w: annual rate must not be negative", ErrInvalidInput)
	}
	if s.Installments <= 0 {
		return fmt.Errorf("%w: installments must be positive", ErrInvalidInput)
	}
	if s.Completed < 0 || s.Completed >= s.Installments {
		return fmt.Errorf("%w: completed installments out of range", ErrInvalidInput)
	}
	if s.CurrentBalance.Sign() <= 0 {
		return fmt.Errorf("%w: current balance must be positive", ErrInvalidInput)
	}
	return nil
}
