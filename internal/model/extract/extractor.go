// Package extract finds a currency amount in free text.
package extract

import (
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"max.ks1230/currconv/internal/entity/currency"
	"max.ks1230/currconv/internal/logger"
)

const matchTimeout = 250 * time.Millisecond

const (
	numberPattern = `[0-9]{1,3}(?:[ \u00A0,][0-9]{3})+(?:\.[0-9]+)?|[0-9]+(?:\.[0-9]+)?`

	// a number must not continue an earlier number or word
	numberStart = `(?<![\p{L}\p{N}.,])`
	// nor run into another digit, decimal group or word
	numberEnd = `(?![\p{L}\p{N}]|[.,][0-9])`
	// a currency token must stand alone on its outer side
	tokenStart = `(?<![\p{L}\p{N}])`
	tokenEnd   = `(?![\p{L}\p{N}])`

	valueBefore    = "vb"
	currencyAfter  = "ca"
	currencyBefore = "cb"
	valueAfter     = "va"
)

var separators = strings.NewReplacer(" ", "", "\u00a0", "", ",", "")

type Result struct {
	Amount     decimal.Decimal
	Currencies []string
}

type Extractor struct {
	table   *currency.Table
	codes   *regexp2.Regexp
	symbols *regexp2.Regexp
}

// New compiles the code and symbol patterns for table.
func New(table *currency.Table) *Extractor {
	codes := alternation(table.Codes())
	symbols := alternation(table.Symbols())

	next := `(?i:` + codes + `)` + tokenEnd
	if symbols != "" {
		next += "|" + symbols
	}

	e := &Extractor{table: table}
	e.codes = compile(codes, next, regexp2.IgnoreCase)
	if symbols != "" {
		e.symbols = compile(symbols, next, regexp2.None)
	}
	return e
}

// Extract is a shorthand for New(table).Extract(text).
func Extract(text string, table *currency.Table) (Result, bool) {
	return New(table).Extract(text)
}

// Extract returns the first amount found in text together with its
// candidate currencies. Code matches win over symbol matches.
func (e *Extractor) Extract(text string) (Result, bool) {
	if strings.TrimSpace(text) == "" {
		return Result{}, false
	}

	if value, code, ok := e.match(e.codes, text); ok {
		code = strings.ToUpper(code)
		if !e.table.Known(code) {
			return Result{}, false
		}
		return e.result(value, []string{code})
	}

	if e.symbols == nil {
		return Result{}, false
	}
	value, symbol, ok := e.match(e.symbols, text)
	if !ok {
		return Result{}, false
	}
	candidates := make([]string, 0)
	for _, code := range e.table.CodesFor(symbol) {
		if e.table.Known(code) {
			candidates = append(candidates, code)
		}
	}
	return e.result(value, candidates)
}

func (e *Extractor) result(value string, candidates []string) (Result, bool) {
	if len(candidates) == 0 {
		return Result{}, false
	}
	amount, ok := parseAmount(value)
	if !ok {
		return Result{}, false
	}
	return Result{Amount: amount, Currencies: candidates}, true
}

func (e *Extractor) match(re *regexp2.Regexp, text string) (value, token string, ok bool) {
	m, err := re.FindStringMatch(text)
	if err != nil {
		logger.Warn("currency pattern match failed", zap.Error(err), zap.Int("textLen", len(text)))
		return "", "", false
	}
	if m == nil {
		return "", "", false
	}

	if v := m.GroupByName(valueBefore).String(); v != "" {
		return v, m.GroupByName(currencyAfter).String(), true
	}
	return m.GroupByName(valueAfter).String(), m.GroupByName(currencyBefore).String(), true
}

func parseAmount(literal string) (decimal.Decimal, bool) {
	literal = separators.Replace(literal)
	if literal == "" {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(literal)
	if err != nil || amount.IsZero() {
		return decimal.Zero, false
	}
	return amount, true
}

// compile builds "<number> <token>" or "<token> <number>". In the second
// form the number must not be followed by another currency token, which
// would own it instead.
func compile(tokens, next string, opts regexp2.RegexOptions) *regexp2.Regexp {
	number := "(?:" + numberPattern + ")"
	before := numberStart + named(valueBefore, number) + `\s*` + named(currencyAfter, tokens) + tokenEnd
	after := tokenStart + named(currencyBefore, tokens) + `\s*` + named(valueAfter, number) +
		numberEnd + `(?!\s*(?:` + next + `))`

	re := regexp2.MustCompile(before+"|"+after, opts)
	re.MatchTimeout = matchTimeout
	return re
}

func named(name, pattern string) string {
	return "(?<" + name + ">" + pattern + ")"
}

func alternation(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}
	escaped := make([]string, 0, len(tokens))
	for _, t := range tokens {
		escaped = append(escaped, regexp2.Escape(t))
	}
	return "(?:" + strings.Join(escaped, "|") + ")"
}
