package popup

import (
	"context"
	"fmt"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"max.ks1230/currconv/internal/config"
	"max.ks1230/currconv/internal/entity/currency"
	"max.ks1230/currconv/internal/logger"
	"max.ks1230/currconv/internal/model/customerr"
	"max.ks1230/currconv/internal/model/extract"
	"max.ks1230/currconv/internal/model/rates"
)

type Result string

const (
	Success Result = "success"
	Warning Result = "warning"
	Error   Result = "error"
)

const (
	invalidKeyMessage     = "Invalid API key"
	missingKeyMessage     = "Missing API key"
	accessLimitMessage    = "You hit the access limit"
	quotaMessage          = "You hit the API access limit. Your quota will reset in %d days."
	networkFailureMessage = "Could not reach the exchange rate service"
	genericErrorMessage   = "Something went wrong. Check the logs for more info."
	usageMessage          = "%d requests left."
)

var errNoConversion = errors.New("no candidate currency could be converted")

//go:generate minimock -i extractor -o ./mock/extractor_mock.go -n ExtractorMock
type extractor interface {
	Extract(text string) (extract.Result, bool)
}

//go:generate minimock -i ratesPolicy -o ./mock/rates_policy_mock.go -n RatesPolicyMock
type ratesPolicy interface {
	GetRates(ctx context.Context, now time.Time) rates.Outcome
}

//go:generate minimock -i calculator -o ./mock/calculator_mock.go -n CalculatorMock
type calculator interface {
	Convert(amount decimal.Decimal, from string, rates *currency.Snapshot, to string, decimals int32) (string, error)
	FormatAmount(amount decimal.Decimal) string
}

//go:generate minimock -i appConfig -o ./mock/app_config_mock.go -n AppConfigMock
type appConfig interface {
	TargetCurrency() string
	Decimals() int32
	MaxCurrencies() int
	UsageVisible() bool
	RatesUpdatedVisible() bool
	FontSize() config.FontSizeConfig
}

type Line struct {
	From         string `json:"from"`
	FromCurrency string `json:"fromCurrency"`
	To           string `json:"to"`
	ToCurrency   string `json:"toCurrency"`
}

type Popup struct {
	Result       Result                `json:"result"`
	Lines        []Line                `json:"displayLines"`
	LastUpdated  *time.Time            `json:"lastUpdated,omitempty"`
	UsageText    string                `json:"usageText,omitempty"`
	ErrorMessage string                `json:"errorMessage,omitempty"`
	Style        config.FontSizeConfig `json:"style"`
}

type Service struct {
	extractor  extractor
	policy     ratesPolicy
	calculator calculator
	cfg        appConfig
	clock      func() time.Time
}

func NewService(extractor extractor, policy ratesPolicy, calculator calculator, cfg appConfig) *Service {
	return &Service{
		extractor:  extractor,
		policy:     policy,
		calculator: calculator,
		cfg:        cfg,
		clock:      time.Now,
	}
}

// HandleSelection converts the first amount found in text into the target
// currency. It returns customerr.ErrExtractionFailed when text holds none.
func (s *Service) HandleSelection(ctx context.Context, text string) (Popup, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "handleSelection")
	defer span.Finish()

	start := time.Now()
	found, ok := s.extractor.Extract(text)
	if !ok {
		return Popup{}, customerr.ErrExtractionFailed
	}
	span.SetTag("currencies", len(found.Currencies))

	outcome := s.policy.GetRates(ctx, s.clock())
	popup := s.build(found, outcome)

	observeResponse(time.Since(start), popup.Result)
	if popup.Result == Error {
		ext.Error.Set(span, true)
	}
	return popup, nil
}

func (s *Service) build(found extract.Result, outcome rates.Outcome) Popup {
	popup := Popup{
		Style: s.cfg.FontSize(),
		Lines: make([]Line, 0),
	}

	err := outcome.Err
	if outcome.Snapshot == nil && err == nil {
		err = customerr.New(customerr.NoCachedData, "no rates available")
	}
	if outcome.Snapshot != nil {
		popup.Lines = s.lines(found, outcome.Snapshot)
		if len(popup.Lines) == 0 && err == nil {
			err = errNoConversion
		}
		if s.cfg.RatesUpdatedVisible() {
			updated := outcome.Snapshot.FetchedAt()
			popup.LastUpdated = &updated
		}
	}
	if err != nil {
		logger.Error("popup has no clean result", zap.Error(err), zap.Bool("hasCache", outcome.Snapshot != nil))
		popup.ErrorMessage = userMessage(err)
	}

	switch {
	case len(popup.Lines) == 0:
		popup.Result = Error
	case err != nil:
		popup.Result = Warning
	default:
		popup.Result = Success
	}

	if outcome.Usage != nil && s.cfg.UsageVisible() {
		popup.UsageText = fmt.Sprintf(usageMessage, outcome.Usage.RequestsRemaining)
	}
	return popup
}

func (s *Service) lines(found extract.Result, snapshot *currency.Snapshot) []Line {
	candidates := found.Currencies
	if limit := s.cfg.MaxCurrencies(); limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}

	target := s.cfg.TargetCurrency()
	from := s.calculator.FormatAmount(found.Amount)
	res := make([]Line, 0, len(candidates))
	for _, code := range candidates {
		to, err := s.calculator.Convert(found.Amount, code, snapshot, target, s.cfg.Decimals())
		if err != nil {
			logger.Warn("cannot convert", zap.String("from", code), zap.String("to", target), zap.Error(err))
			continue
		}
		res = append(res, Line{
			From:         from,
			FromCurrency: code,
			To:           to,
			ToCurrency:   target,
		})
	}
	return res
}

func userMessage(err error) string {
	e, ok := customerr.As(err)
	if !ok {
		return genericErrorMessage
	}
	switch e.Kind {
	case customerr.InvalidCredential:
		return invalidKeyMessage
	case customerr.MissingCredential:
		return missingKeyMessage
	case customerr.AccessRestricted:
		return accessLimitMessage
	case customerr.QuotaExhausted:
		return fmt.Sprintf(quotaMessage, e.DaysRemaining)
	case customerr.NetworkFailure:
		return networkFailureMessage
	default:
		return genericErrorMessage
	}
}
