package currency

import (
	"encoding/json"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Table maps currency symbols to candidate codes. It is immutable once built.
type Table struct {
	symbols map[string][]string
	codes   map[string]struct{}
}

// NewTable builds a table from symbol -> codes entries. Keys that are
// themselves codes (three ASCII letters) only register the code. extra
// codes, such as the conversion target, join the known-code set.
func NewTable(entries map[string][]string, extra ...string) *Table {
	t := &Table{
		symbols: make(map[string][]string),
		codes:   map[string]struct{}{Pivot: {}},
	}
	for _, c := range extra {
		if IsCode(c) {
			t.codes[strings.ToUpper(c)] = struct{}{}
		}
	}

	for key, list := range entries {
		valid := make([]string, 0, len(list))
		for _, c := range list {
			c = strings.ToUpper(strings.TrimSpace(c))
			if !IsCode(c) {
				continue
			}
			t.codes[c] = struct{}{}
			valid = append(valid, c)
		}
		if IsCode(key) {
			t.codes[strings.ToUpper(key)] = struct{}{}
			continue
		}
		if key != "" && len(valid) > 0 {
			t.symbols[key] = valid
		}
	}
	return t
}

// LoadTable reads the JSON symbol table. A value may be a single code or a
// list of codes.
func LoadTable(path string, extra ...string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading currencies file")
	}
	return ParseTable(raw, extra...)
}

func ParseTable(raw []byte, extra ...string) (*Table, error) {
	var parsed map[string]json.RawMessage
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, errors.Wrap(err, "parsing currencies")
	}

	entries := make(map[string][]string, len(parsed))
	for key, val := range parsed {
		var single string
		if err := json.Unmarshal(val, &single); err == nil {
			entries[key] = []string{single}
			continue
		}
		var list []string
		if err := json.Unmarshal(val, &list); err != nil {
			return nil, errors.Wrapf(err, "parsing currencies entry %q", key)
		}
		entries[key] = list
	}
	return NewTable(entries, extra...), nil
}

// Codes returns the known codes sorted.
func (t *Table) Codes() []string {
	res := make([]string, 0, len(t.codes))
	for c := range t.codes {
		res = append(res, c)
	}
	sort.Strings(res)
	return res
}

// Symbols returns symbols longest first, so a pattern tries "R$" before "$".
func (t *Table) Symbols() []string {
	res := make([]string, 0, len(t.symbols))
	for s := range t.symbols {
		res = append(res, s)
	}
	sort.Slice(res, func(i, j int) bool {
		if len(res[i]) != len(res[j]) {
			return len(res[i]) > len(res[j])
		}
		return res[i] < res[j]
	})
	return res
}

func (t *Table) Known(code string) bool {
	_, ok := t.codes[code]
	return ok
}

// CodesFor returns a copy of the codes a symbol maps to.
func (t *Table) CodesFor(symbol string) []string {
	list, ok := t.symbols[symbol]
	if !ok {
		return nil
	}
	return append([]string(nil), list...)
}

func IsCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if !(r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z') {
			return false
		}
	}
	return true
}
