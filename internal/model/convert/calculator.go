package convert

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"max.ks1230/currconv/internal/entity/currency"
)

const (
	defaultLocale  = "en"
	groupSize      = 3
	fallbackGroup  = ","
	fallbackSymbol = "."
)

var ErrUnknownCurrency = errors.New("currency is missing from rates")

type Calculator struct {
	group string
	point string
}

// New returns a calculator formatting numbers for locale, "en" when empty
// or unparsable.
func New(locale string) *Calculator {
	tag, err := language.Parse(locale)
	if err != nil || locale == "" {
		tag = language.MustParse(defaultLocale)
	}
	group, point := separators(message.NewPrinter(tag))
	return &Calculator{group: group, point: point}
}

// separators reads the locale's grouping and decimal marks off a formatted
// sample. Locales whose sample does not use ASCII digits fall back to "," and ".".
func separators(printer *message.Printer) (group, point string) {
	sample := printer.Sprint(number.Decimal(1234567.5, number.Scale(1)))
	if !strings.HasPrefix(sample, "1") || !strings.HasSuffix(sample, "5") {
		return fallbackGroup, fallbackSymbol
	}
	body := sample[1 : len(sample)-1]
	thousands, millions := strings.Index(body, "234"), strings.Index(body, "567")
	if thousands < 0 || millions < thousands {
		return fallbackGroup, fallbackSymbol
	}
	return body[:thousands], body[millions+len("567"):]
}

// Convert routes amount through the pivot currency and formats the result
// with decimals fixed fraction digits.
func (c *Calculator) Convert(amount decimal.Decimal, from string, rates *currency.Snapshot, to string, decimals int32) (string, error) {
	value, err := Value(amount, from, rates, to)
	if err != nil {
		return "", err
	}
	if decimals < 0 {
		decimals = 0
	}
	return c.format(value, decimals), nil
}

// FormatAmount formats a source amount keeping its own fraction digits.
func (c *Calculator) FormatAmount(amount decimal.Decimal) string {
	var scale int32
	if exp := amount.Exponent(); exp < 0 {
		scale = -exp
	}
	return c.format(amount, scale)
}

// format rounds half away from zero and groups the integer digits, working
// on the decimal digits so no precision is lost.
func (c *Calculator) format(value decimal.Decimal, scale int32) string {
	digits := value.StringFixed(scale)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	integer, fraction, _ := strings.Cut(digits, ".")

	var b strings.Builder
	b.WriteString(sign)
	for i, d := range integer {
		if i > 0 && (len(integer)-i)%groupSize == 0 {
			b.WriteString(c.group)
		}
		b.WriteRune(d)
	}
	if fraction != "" {
		b.WriteString(c.point)
		b.WriteString(fraction)
	}
	return b.String()
}

// Value is the unrounded converted amount.
func Value(amount decimal.Decimal, from string, rates *currency.Snapshot, to string) (decimal.Decimal, error) {
	fromRate, err := rate(rates, from)
	if err != nil {
		return decimal.Zero, err
	}
	toRate, err := rate(rates, to)
	if err != nil {
		return decimal.Zero, err
	}
	if from == to {
		return amount, nil
	}

	inPivot := amount.Div(fromRate)
	return inPivot.Mul(toRate), nil
}

func rate(rates *currency.Snapshot, code string) (decimal.Decimal, error) {
	r, ok := rates.Rate(code)
	if !ok || r <= 0 {
		return decimal.Zero, errors.Wrap(ErrUnknownCurrency, fmt.Sprintf("rate for %s", code))
	}
	return decimal.NewFromFloat(r), nil
}
