package loanmath

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberOfInstallments(t *testing.T) {
	t.Run("recovers the sized tenure", func(t *testing.T) {
		n, err := NumberOfInstallments(dec("100000"), dec("8884.88"), dec("12"), FreqMonthly, 0)
		require.NoError(t, err)
		assert.Equal(t, 12, n)
	})

	t.Run("zero rate divides evenly", func(t *testing.T) {
		n, err := NumberOfInstallments(dec("1000"), dec("100"), decimal.Zero, FreqMonthly, 0)
		require.NoError(t, err)
		assert.Equal(t, 10, n)
	})

	t.Run("zero rate rounds up", func(t *testing.T) {
		n, err := NumberOfInstallments(dec("1000"), dec("150"), decimal.Zero, FreqMonthly, 0)
		require.NoError(t, err)
		assert.Equal(t, 7, n)
	})

	t.Run("emi equal to periodic interest never amortizes", func(t *testing.T) {
		// 100000 × 1% per month accrues exactly 1000
		_, err := NumberOfInstallments(dec("100000"), dec("1000"), dec("12"), FreqMonthly, 0)
		require.ErrorIs(t, err, ErrNeverAmortizes)
	})

	t.Run("emi below periodic interest never amortizes", func(t *testing.T) {
		_, err := NumberOfInstallments(dec("100000"), dec("999"), dec("12"), FreqMonthly, 0)
		require.ErrorIs(t, err, ErrNeverAmortizes)
	})

	t.Run("emi just above periodic interest amortizes", func(t *testing.T) {
		n, err := NumberOfInstallments(dec("100000"), dec("1100"), dec("12"), FreqMonthly, 0)
		require.NoError(t, err)
		assert.Greater(t, n, 0)
	})

	t.Run("invalid inputs", func(t *testing.T) {
		_, err := NumberOfInstallments(decimal.Zero, dec("100"), dec("12"), FreqMonthly, 0)
		require.ErrorIs(t, err, ErrInvalidInput)
		_, err = NumberOfInstallments(dec("1000"), decimal.Zero, dec("12"), FreqMonthly, 0)
		require.ErrorIs(t, err, ErrInvalidInput)
		_, err = NumberOfInstallments(dec("1000"), dec("100"), dec("-1"), FreqMonthly, 0)
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestPrepaymentEffect_ReduceTenure(t *testing.T) {
	state := PrepaymentState{
		Principal:         dec("100000"),
		AnnualRatePercent: dec("12"),
		Installments:      12,
		Frequency:         FreqMonthly,
		CurrentBalance:    dec("80000"),
		Completed:         3,
	}

	got, err := PrepaymentEffect(state, dec("20000"), PrepayReduceTenure)
	require.NoError(t, err)

	assert.False(t, got.Closed)
	assert.Equal(t, "60000.00", got.NewPrincipal.StringFixed(2))
	assert.Equal(t, "8884.88", got.NewEMI.StringFixed(2))
	assert.Less(t, got.NewTenure, 9)
	assert.Equal(t, 8, got.NewTenure)
	assert.Equal(t, 1, got.TenureReducedBy)
	assert.Positive(t, got.InterestSaved.Sign())
}

func TestPrepaymentEffect_ReduceEMI(t *testing.T) {
	// balance after 3 payments of a 100000 loan at 12% over 12 months
	state := PrepaymentState{
		Principal:         dec("100000"),
		AnnualRatePercent: dec("12"),
		Installments:      12,
		Frequency:         FreqMonthly,
		CurrentBalance:    dec("76108.03"),
		Completed:         3,
	}

	got, err := PrepaymentEffect(state, dec("20000"), PrepayReduceEMI)
	require.NoError(t, err)

	assert.False(t, got.Closed)
	assert.Equal(t, "56108.03", got.NewPrincipal.StringFixed(2))
	assert.True(t, got.NewEMI.LessThan(dec("8884.88")), "new emi %s", got.NewEMI)
	assert.Equal(t, 9, got.NewTenure)
	assert.Equal(t, 0, got.TenureReducedBy)
	assert.Positive(t, got.InterestSaved.Sign())
}

func TestPrepaymentEffect_FullClosure(t *testing.T) {
	state := PrepaymentState{
		Principal:         dec("100000"),
		AnnualRatePercent: dec("12"),
		Installments:      12,
		Frequency:         FreqMonthly,
		CurrentBalance:    dec("5000"),
		Completed:         11,
	}

	t.Run("overpayment closes the loan", func(t *testing.T) {
		got, err := PrepaymentEffect(state, dec("6000"), PrepayReduceTenure)
		require.NoError(t, err)
		assert.True(t, got.Closed)
		assert.True(t, got.NewPrincipal.IsZero())
		assert.Equal(t, "-1000.00", got.InterestSaved.StringFixed(2))
	})

	t.Run("exact payoff closes the loan", func(t *testing.T) {
		got, err := PrepaymentEffect(state, dec("5000"), PrepayReduceEMI)
		require.NoError(t, err)
		assert.True(t, got.Closed)
		assert.True(t, got.InterestSaved.IsZero())
	})
}

func TestPrepaymentEffect_Invalid(t *testing.T) {
	state := PrepaymentState{
		Principal:         dec("100000"),
		AnnualRatePercent: dec("12"),
		Installments:      12,
		Frequency:         FreqMonthly,
		CurrentBalance:    dec("80000"),
		Completed:         3,
	}

	t.Run("unknown option", func(t *testing.T) {
		_, err := PrepaymentEffect(state, dec("20000"), PrepaymentOption("skip_payment"))
		require.ErrorIs(t, err, ErrUnsupportedOption)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		_, err := PrepaymentEffect(state, decimal.Zero, PrepayReduceTenure)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("completed out of range", func(t *testing.T) {
		bad := state
		bad.Completed = 12
		_, err := PrepaymentEffect(bad, dec("20000"), PrepayReduceTenure)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("non-positive balance", func(t *testing.T) {
		bad := state
		bad.CurrentBalance = decimal.Zero
		_, err := PrepaymentEffect(bad, dec("20000"), PrepayReduceTenure)
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}
