package loanmath

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Decimal = decimal.Decimal

// InterestType 计息方式
type InterestType string

// Frequency 还款/复利频率
type Frequency string

// PrepaymentOption 提前还款策略
type PrepaymentOption string

type DayCountConvention string

type RollConvention string

// HolidayFunc reports whether a date is a non-business day. Callers supply
// their own calendar; Weekend is a ready-made default.
type HolidayFunc func(time.Time) bool

const (
	InterestNone     InterestType = "none"
	InterestSimple   InterestType = "simple"
	InterestCompound InterestType = "compound"
)

const (
	FreqDaily     Frequency = "daily"
	FreqWeekly    Frequency = "weekly"
	FreqBiweekly  Frequency = "biweekly"
	FreqMonthly   Frequency = "monthly"
	FreqQuarterly Frequency = "quarterly"
	FreqYearly    Frequency = "yearly"
	FreqOneTime   Frequency = "one_time"
	FreqCustom    Frequency = "custom" // requires a companion day interval
)

const (
	PrepayReduceTenure PrepaymentOption = "reduce_tenure" // keep the EMI, shorten the tenure
	PrepayReduceEMI    PrepaymentOption = "reduce_emi"    // keep the tenure, shrink the EMI
)

const (
	Conv30360US    DayCountConvention = "30/360_US"
	Conv30360E     DayCountConvention = "30E/360"
	ConvAct360     DayCountConvention = "ACT/360"
	ConvAct365F    DayCountConvention = "ACT/365F"
	ConvActActISDA DayCountConvention = "ACT/ACT_ISDA"
	ConvAct365AFB  DayCountConvention = "ACT/365.25"
)

const (
	Unadjusted RollConvention = "UNADJUSTED"         //严格按日历算时间
	Following  RollConvention = "FOLLOWING"          //如果是节假日，向后挪
	Preceding  RollConvention = "PRECEDING"          //如果是节假日，向前挪
	ModFollow  RollConvention = "MODIFIED_FOLLOWING" //如果是节假日，向后挪，但如果跨月就向前挪
)

// LoanTerms 一笔贷款的合同条款，纯值对象
type LoanTerms struct {
	Principal            Decimal
	AnnualRatePercent    Decimal // 年化利率，百分数（12 表示 12%）
	InterestType         InterestType
	CompoundingFrequency Frequency // required iff InterestType is compound
	IssueDate            time.Time
	DueDate              time.Time
	Installments         int // optional; required for schedule generation
	PaymentFrequency     Frequency
	CustomDays           int // companion interval for FreqCustom

	// Optional business-day adjustment for schedule due dates.
	Roll    RollConvention
	Holiday HolidayFunc
}

// Validate 基本校验，所有计算入口共用
func (t LoanTerms) Validate() error {
	if t.Principal.Sign() <= 0 {
		return fmt.Errorf("%w: principal must be positive", ErrInvalidInput)
	}
	if t.AnnualRatePercent.Sign() < 0 {
		return fmt.Errorf("%w: annual rate must not be negative", ErrInvalidInput)
	}
	switch t.InterestType {
	case InterestNone, InterestSimple:
	case InterestCompound:
		if _, err := PeriodsPerYear(t.CompoundingFrequency, t.CustomDays); err != nil {
			return fmt.Errorf("compounding frequency: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedInterestType, t.InterestType)
	}
	if !t.DueDate.IsZero() && !t.IssueDate.IsZero() && DaysBetween(t.IssueDate, t.DueDate) < 0 {
		return fmt.Errorf("%w: due date before issue date", ErrInvalidInput)
	}
	if t.Installments < 0 {
		return fmt.Errorf("%w: installments must be positive", ErrInvalidInput)
	}
	return nil
}

// AmortizationEntry 还款计划中的一期
type AmortizationEntry struct {
	Number    int // 期数，从 1 开始
	DueDate   time.Time
	Payment   Decimal // 本期应还总额
	Principal Decimal // 本期应还本金
	Interest  Decimal // 本期应还利息
	Balance   Decimal // 本期还款后剩余本金
}

// AmountDue 到期应还总额
type AmountDue struct {
	TotalAmountDue Decimal
	InterestAmount Decimal
}

// CompoundResult 复利计算结果
type CompoundResult struct {
	TotalAmount    Decimal
	InterestAmount Decimal
}

// PaymentAllocation 一笔还款在利息与本金之间的分配
type PaymentAllocation struct {
	Interest  Decimal
	Principal Decimal
}

// PrepaymentState 提前还款时点的贷款状态快照
type PrepaymentState struct {
	Principal         Decimal // 合同本金
	AnnualRatePercent Decimal
	Installments      int // 合同总期数
	Frequency         Frequency
	CustomDays        int
	CurrentBalance    Decimal // 当前剩余本金
	Completed         int // 已还期数
}

// PrepaymentResult 提前还款测算结果
type PrepaymentResult struct {
	NewPrincipal    Decimal
	NewEMI          Decimal
	NewTenure       int
	TenureReducedBy int
	InterestSaved   Decimal
	Closed          bool // 提前还款金额足以结清
}

// PrincipalResult 由期供反推的本金
type PrincipalResult struct {
	Principal     Decimal
	TotalAmount   Decimal
	TotalInterest Decimal
}

// Money 金额输出统一保留 2 位小数，四舍五入
func Money(d Decimal) Decimal {
	return d.Round(2)
}
