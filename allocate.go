package loanmath

import (
	"github.com/shopspring/decimal"
)

// AllocatePayment 把一笔到账金额按"先息后本"拆分：
// 利息部分 = min(payment, accruedInterest)，
// 本金部分 = 剩余金额，钳制到剩余本金。
// 超出"利息+本金"的多付部分不在此表达，由调用方处理。
// 纯算术，无错误分支，负数入参按 0 处理。
func AllocatePayment(payment, accruedInterest, outstandingPrincipal Decimal) PaymentAllocation {
	if payment.Sign() < 0 {
		payment = decimal.Zero
	}
	if accruedInterest.Sign() < 0 {
		accruedInterest = decimal.Zero
	}
	if outstandingPrincipal.Sign() < 0 {
		outstandingPrincipal = decimal.Zero
	}
	interest := decimal.Min(payment, accruedInterest)
	principal := decimal.Min(payment.Sub(interest), outstandingPrincipal)
	if principal.Sign() < 0 {
		principal = decimal.Zero
	}
	return PaymentAllocation{
		Interest:  Money(interest),
		Principal: Money(principal),
	}
}
