package popup

import (
	"context"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"max.ks1230/currconv/internal/config"
	"max.ks1230/currconv/internal/entity/currency"
	"max.ks1230/currconv/internal/model/customerr"
	"max.ks1230/currconv/internal/model/extract"
	"max.ks1230/currconv/internal/model/popup/mock"
	"max.ks1230/currconv/internal/model/rates"
)

var (
	now      = time.Unix(1_700_000_000, 0)
	hundred  = decimal.RequireFromString("100")
	style    = config.FontSizeConfig{Message: 14, Currencies: 16}
	snapshot = &currency.Snapshot{Rates: map[string]float64{"USD": 1, "EUR": 0.9, "CAD": 1.25}, Timestamp: now.Unix()}
)

func newTestService(ex extractor, policy ratesPolicy, calc calculator, cfg appConfig) *Service {
	s := NewService(ex, policy, calc, cfg)
	s.clock = func() time.Time { return now }
	return s
}

func Test_HandleSelection_ShouldConvertCode(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	ex := mock.NewExtractorMock(m)
	policy := mock.NewRatesPolicyMock(m)
	calc := mock.NewCalculatorMock(m)
	cfg := mock.NewAppConfigMock(m)

	ex.ExtractMock.Expect("100 USD").Return(extract.Result{Amount: hundred, Currencies: []string{"USD"}}, true)
	policy.GetRatesMock.Inspect(func(_ context.Context, at time.Time) {
		assert.Equal(m, now, at)
	}).Return(rates.Outcome{
		Snapshot: snapshot,
		Usage:    &currency.Usage{RequestsRemaining: 900, DaysRemaining: 10, Status: currency.StatusOK},
	})
	calc.FormatAmountMock.Expect(hundred).Return("100")
	calc.ConvertMock.Expect(hundred, "USD", snapshot, "EUR", int32(2)).Return("90.00", nil)
	cfg.FontSizeMock.Return(style).
		MaxCurrenciesMock.Return(5).
		TargetCurrencyMock.Return("EUR").
		DecimalsMock.Return(int32(2)).
		RatesUpdatedVisibleMock.Return(true).
		UsageVisibleMock.Return(true)

	popup, err := newTestService(ex, policy, calc, cfg).HandleSelection(context.Background(), "100 USD")

	assert.NoError(m, err)
	assert.Equal(m, Success, popup.Result)
	assert.Equal(m, []Line{{From: "100", FromCurrency: "USD", To: "90.00", ToCurrency: "EUR"}}, popup.Lines)
	if assert.NotNil(m, popup.LastUpdated) {
		assert.Equal(m, now.Unix(), popup.LastUpdated.Unix())
	}
	assert.Equal(m, "900 requests left.", popup.UsageText)
	assert.Empty(m, popup.ErrorMessage)
	assert.Equal(m, style, popup.Style)
}

func Test_HandleSelection_SymbolShouldProduceLinePerCandidate(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	ex := mock.NewExtractorMock(m)
	policy := mock.NewRatesPolicyMock(m)
	calc := mock.NewCalculatorMock(m)
	cfg := mock.NewAppConfigMock(m)

	ex.ExtractMock.Expect("$100").Return(extract.Result{Amount: hundred, Currencies: []string{"USD", "CAD"}}, true)
	policy.GetRatesMock.Return(rates.Outcome{Snapshot: snapshot})
	calc.FormatAmountMock.Return("100")
	calc.ConvertMock.When(hundred, "USD", snapshot, "EUR", int32(2)).Then("90.00", nil)
	calc.ConvertMock.When(hundred, "CAD", snapshot, "EUR", int32(2)).Then("72.00", nil)
	cfg.FontSizeMock.Return(style).
		MaxCurrenciesMock.Return(5).
		TargetCurrencyMock.Return("EUR").
		DecimalsMock.Return(int32(2)).
		RatesUpdatedVisibleMock.Return(false)

	popup, err := newTestService(ex, policy, calc, cfg).HandleSelection(context.Background(), "$100")

	assert.NoError(m, err)
	assert.Equal(m, Success, popup.Result)
	assert.Equal(m, []Line{
		{From: "100", FromCurrency: "USD", To: "90.00", ToCurrency: "EUR"},
		{From: "100", FromCurrency: "CAD", To: "72.00", ToCurrency: "EUR"},
	}, popup.Lines)
	assert.Nil(m, popup.LastUpdated)
	assert.Empty(m, popup.UsageText)
}

func Test_HandleSelection_ShouldTruncateToMaxCurrencies(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	ex := mock.NewExtractorMock(m)
	policy := mock.NewRatesPolicyMock(m)
	calc := mock.NewCalculatorMock(m)
	cfg := mock.NewAppConfigMock(m)

	ex.ExtractMock.Return(extract.Result{Amount: hundred, Currencies: []string{"USD", "CAD", "AUD"}}, true)
	policy.GetRatesMock.Return(rates.Outcome{Snapshot: snapshot})
	calc.FormatAmountMock.Return("100")
	calc.ConvertMock.Expect(hundred, "USD", snapshot, "EUR", int32(2)).Return("90.00", nil)
	cfg.FontSizeMock.Return(style).
		MaxCurrenciesMock.Return(1).
		TargetCurrencyMock.Return("EUR").
		DecimalsMock.Return(int32(2)).
		RatesUpdatedVisibleMock.Return(false)

	popup, err := newTestService(ex, policy, calc, cfg).HandleSelection(context.Background(), "$100")

	assert.NoError(m, err)
	assert.Equal(m, []Line{{From: "100", FromCurrency: "USD", To: "90.00", ToCurrency: "EUR"}}, popup.Lines)
	assert.Equal(m, uint64(1), calc.ConvertAfterCounter())
}

func Test_HandleSelection_MissingRateShouldSkipLine(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	ex := mock.NewExtractorMock(m)
	policy := mock.NewRatesPolicyMock(m)
	calc := mock.NewCalculatorMock(m)
	cfg := mock.NewAppConfigMock(m)

	ex.ExtractMock.Return(extract.Result{Amount: hundred, Currencies: []string{"USD", "CAD"}}, true)
	policy.GetRatesMock.Return(rates.Outcome{Snapshot: snapshot})
	calc.FormatAmountMock.Return("100")
	calc.ConvertMock.When(hundred, "USD", snapshot, "EUR", int32(2)).Then("90.00", nil)
	calc.ConvertMock.When(hundred, "CAD", snapshot, "EUR", int32(2)).Then("", errors.New("no rate for CAD"))
	cfg.FontSizeMock.Return(style).
		MaxCurrenciesMock.Return(5).
		TargetCurrencyMock.Return("EUR").
		DecimalsMock.Return(int32(2)).
		RatesUpdatedVisibleMock.Return(false)

	popup, err := newTestService(ex, policy, calc, cfg).HandleSelection(context.Background(), "$100")

	assert.NoError(m, err)
	assert.Equal(m, Success, popup.Result)
	assert.Equal(m, []Line{{From: "100", FromCurrency: "USD", To: "90.00", ToCurrency: "EUR"}}, popup.Lines)
	assert.Empty(m, popup.ErrorMessage)
}

func Test_HandleSelection_NoConvertibleCandidateShouldFail(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	ex := mock.NewExtractorMock(m)
	policy := mock.NewRatesPolicyMock(m)
	calc := mock.NewCalculatorMock(m)
	cfg := mock.NewAppConfigMock(m)

	ex.ExtractMock.Return(extract.Result{Amount: hundred, Currencies: []string{"USD", "CAD"}}, true)
	policy.GetRatesMock.Return(rates.Outcome{Snapshot: snapshot})
	calc.FormatAmountMock.Return("100")
	calc.ConvertMock.Return("", errors.New("no rate"))
	cfg.FontSizeMock.Return(style).
		MaxCurrenciesMock.Return(5).
		TargetCurrencyMock.Return("JPY").
		DecimalsMock.Return(int32(2)).
		RatesUpdatedVisibleMock.Return(true)

	popup, err := newTestService(ex, policy, calc, cfg).HandleSelection(context.Background(), "$100")

	assert.NoError(m, err)
	assert.Equal(m, Error, popup.Result)
	assert.Equal(m, "Something went wrong. Check the logs for more info.", popup.ErrorMessage)
	assert.Empty(m, popup.Lines)
	assert.Equal(m, uint64(2), calc.ConvertAfterCounter())
}

func Test_HandleSelection_ExhaustedQuotaWithCacheShouldWarn(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	ex := mock.NewExtractorMock(m)
	policy := mock.NewRatesPolicyMock(m)
	calc := mock.NewCalculatorMock(m)
	cfg := mock.NewAppConfigMock(m)

	ex.ExtractMock.Return(extract.Result{Amount: hundred, Currencies: []string{"USD"}}, true)
	policy.GetRatesMock.Return(rates.Outcome{
		Snapshot: snapshot,
		Usage:    &currency.Usage{RequestsRemaining: 0, DaysRemaining: 3, Status: currency.StatusOK},
		Err:      customerr.Quota(3),
	})
	calc.FormatAmountMock.Return("100")
	calc.ConvertMock.Return("90.00", nil)
	cfg.FontSizeMock.Return(style).
		MaxCurrenciesMock.Return(5).
		TargetCurrencyMock.Return("EUR").
		DecimalsMock.Return(int32(2)).
		RatesUpdatedVisibleMock.Return(true).
		UsageVisibleMock.Return(true)

	popup, err := newTestService(ex, policy, calc, cfg).HandleSelection(context.Background(), "100 USD")

	assert.NoError(m, err)
	assert.Equal(m, Warning, popup.Result)
	assert.Equal(m, "You hit the API access limit. Your quota will reset in 3 days.", popup.ErrorMessage)
	assert.Equal(m, []Line{{From: "100", FromCurrency: "USD", To: "90.00", ToCurrency: "EUR"}}, popup.Lines)
	assert.Equal(m, "0 requests left.", popup.UsageText)
	assert.NotNil(m, popup.LastUpdated)
}

func Test_HandleSelection_FailedRefreshWithCacheShouldWarn(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	ex := mock.NewExtractorMock(m)
	policy := mock.NewRatesPolicyMock(m)
	calc := mock.NewCalculatorMock(m)
	cfg := mock.NewAppConfigMock(m)

	ex.ExtractMock.Return(extract.Result{Amount: hundred, Currencies: []string{"USD"}}, true)
	policy.GetRatesMock.Return(rates.Outcome{
		Snapshot: snapshot,
		Err:      customerr.Wrap(customerr.NetworkFailure, context.DeadlineExceeded, "remote call"),
	})
	calc.FormatAmountMock.Return("100")
	calc.ConvertMock.Return("90.00", nil)
	cfg.FontSizeMock.Return(style).
		MaxCurrenciesMock.Return(5).
		TargetCurrencyMock.Return("EUR").
		DecimalsMock.Return(int32(2)).
		RatesUpdatedVisibleMock.Return(false)

	popup, err := newTestService(ex, policy, calc, cfg).HandleSelection(context.Background(), "100 USD")

	assert.NoError(m, err)
	assert.Equal(m, Warning, popup.Result)
	assert.Equal(m, "Could not reach the exchange rate service", popup.ErrorMessage)
	assert.Len(m, popup.Lines, 1)
}

func Test_HandleSelection_WithoutCacheShouldFail(t *testing.T) {
	tests := []struct {
		name        string
		outcome     rates.Outcome
		wantMessage string
	}{
		{
			name:        "rates error",
			outcome:     rates.Outcome{Err: customerr.New(customerr.InvalidCredential, "invalid_app_id")},
			wantMessage: "Invalid API key",
		},
		{
			name:        "nothing cached",
			outcome:     rates.Outcome{},
			wantMessage: "Something went wrong. Check the logs for more info.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := minimock.NewController(t)
			defer m.Finish()
			ex := mock.NewExtractorMock(m)
			policy := mock.NewRatesPolicyMock(m)
			calc := mock.NewCalculatorMock(m)
			cfg := mock.NewAppConfigMock(m)

			ex.ExtractMock.Return(extract.Result{Amount: hundred, Currencies: []string{"USD"}}, true)
			policy.GetRatesMock.Return(tt.outcome)
			cfg.FontSizeMock.Return(style)

			popup, err := newTestService(ex, policy, calc, cfg).HandleSelection(context.Background(), "100 USD")

			assert.NoError(m, err)
			assert.Equal(m, Error, popup.Result)
			assert.Equal(m, tt.wantMessage, popup.ErrorMessage)
			assert.Empty(m, popup.Lines)
			assert.Nil(m, popup.LastUpdated)
			assert.Equal(m, uint64(0), calc.ConvertBeforeCounter())
		})
	}
}

func Test_HandleSelection_NoCurrencyShouldFailExtraction(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	ex := mock.NewExtractorMock(m)
	policy := mock.NewRatesPolicyMock(m)
	calc := mock.NewCalculatorMock(m)
	cfg := mock.NewAppConfigMock(m)

	ex.ExtractMock.Expect("just some words").Return(extract.Result{}, false)

	_, err := newTestService(ex, policy, calc, cfg).HandleSelection(context.Background(), "just some words")

	assert.ErrorIs(m, err, customerr.ErrExtractionFailed)
	assert.Equal(m, uint64(0), policy.GetRatesBeforeCounter())
}

func Test_userMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: customerr.New(customerr.InvalidCredential, ""), want: "Invalid API key"},
		{err: customerr.New(customerr.MissingCredential, ""), want: "Missing API key"},
		{err: customerr.New(customerr.AccessRestricted, ""), want: "You hit the access limit"},
		{err: customerr.Quota(7), want: "You hit the API access limit. Your quota will reset in 7 days."},
		{err: customerr.New(customerr.NetworkFailure, ""), want: "Could not reach the exchange rate service"},
		{err: customerr.New(customerr.Remote, ""), want: "Something went wrong. Check the logs for more info."},
		{err: context.Canceled, want: "Something went wrong. Check the logs for more info."},
		{err: errNoConversion, want: "Something went wrong. Check the logs for more info."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, userMessage(tt.err))
	}
}

func Test_Render(t *testing.T) {
	updated := time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC)
	p := Popup{
		Result:       Warning,
		ErrorMessage: "You hit the access limit",
		Lines: []Line{
			{From: "100", FromCurrency: "USD", To: "90.00", ToCurrency: "EUR"},
			{From: "100", FromCurrency: "CAD", To: "72.00", ToCurrency: "EUR"},
		},
		LastUpdated: &updated,
		UsageText:   "5 requests left.",
	}

	got := Render(p, "2006. 01. 02. 15:04:05")

	assert.Equal(t, "You hit the access limit\n"+
		"100 USD = 90.00 EUR\n"+
		"100 CAD = 72.00 EUR\n"+
		"Updated: 2023. 11. 14. 22:13:20\n"+
		"5 requests left.", got)
}
