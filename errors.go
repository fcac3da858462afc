package loanmath

import (
	"errors"
)

var (
	// ErrInvalidInput 入参非法：非正本金、负利率、负时间跨度、非正期数等
	ErrInvalidInput = errors.New("invalid input")

	// ErrNeverAmortizes 期供不足以覆盖每期利息，本金永远还不完
	ErrNeverAmortizes = errors.New("emi too low to cover accruing interest, loan never amortizes")

	ErrUnsupportedFrequency    = errors.New("unsupported frequency")
	ErrUnsupportedInterestType = errors.New("unsupported interest type")
	ErrUnsupportedConvention   = errors.New("unsupported day count convention")
	ErrUnsupportedOption       = errors.New("unsupported prepayment option")
)
