package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecomrecon/internal/domain"
	"ecomrecon/internal/usecase"
)

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestRateTable_ToUSD(t *testing.T) {
	table := usecase.NewRateTable([]domain.DailyRate{
		{Date: day("2023-01-01"), Rate: dec("1500")},
		{Date: day("2023-01-02"), Rate: dec("95000")},
	})

	t.Run("LBP divides by the rate for the exact date", func(t *testing.T) {
		usd, err := table.ToUSD(dec("300000"), domain.CurrencyLBP, day("2023-01-01"))
		require.NoError(t, err)
		assert.True(t, usd.Equal(dec("200")), "got %s", usd)
	})

	t.Run("USD passes through unchanged", func(t *testing.T) {
		usd, err := table.ToUSD(dec("123.45"), domain.CurrencyUSD, day("2023-01-01"))
		require.NoError(t, err)
		assert.True(t, usd.Equal(dec("123.45")))
	})

	t.Run("missing date fails without fallback", func(t *testing.T) {
		_, err := table.ToUSD(dec("1000"), domain.CurrencyLBP, day("2023-01-03"))
		var missing *domain.MissingRateError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, day("2023-01-03"), missing.Date)
	})

	t.Run("adjacent dates do not fill in", func(t *testing.T) {
		// 2023-01-02 has a rate; 2023-01-03 must not inherit it.
		_, err := table.ToUSD(dec("1000"), domain.CurrencyLBP, day("2023-01-03"))
		require.Error(t, err)
	})
}

func TestConvertWithRate(t *testing.T) {
	t.Run("LBP uses the record's own rate", func(t *testing.T) {
		usd, err := usecase.ConvertWithRate(dec("150000"), domain.CurrencyLBP, dec("128.5"), day("2023-01-01"))
		require.NoError(t, err)
		assert.True(t, usd.Equal(dec("1167.315175")), "got %s", usd)
	})

	t.Run("USD ignores the rate", func(t *testing.T) {
		usd, err := usecase.ConvertWithRate(dec("1000"), domain.CurrencyUSD, dec("95000"), day("2023-01-01"))
		require.NoError(t, err)
		assert.True(t, usd.Equal(dec("1000")))
	})

	t.Run("LBP with a zero rate is a data-quality failure", func(t *testing.T) {
		_, err := usecase.ConvertWithRate(dec("1000"), domain.CurrencyLBP, dec("0"), day("2023-01-01"))
		var missing *domain.MissingRateError
		require.ErrorAs(t, err, &missing)
	})
}
