package currency

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseTable_ShouldAcceptSingleCodesAndLists(t *testing.T) {
	table, err := ParseTable([]byte(`{"$": ["USD", "CAD", "AUD"], "€": "EUR", "HUF": "HUF", "?": ["bogus"]}`), "GBP")
	require.NoError(t, err)

	assert.Equal(t, []string{"AUD", "CAD", "EUR", "GBP", "HUF", "USD"}, table.Codes())
	assert.Equal(t, []string{"USD", "CAD", "AUD"}, table.CodesFor("$"))
	assert.Equal(t, []string{"EUR"}, table.CodesFor("€"))
	assert.Nil(t, table.CodesFor("HUF"))
	assert.Nil(t, table.CodesFor("?"))
	assert.True(t, table.Known("HUF"))
	assert.False(t, table.Known("BOG"))
}

func Test_Symbols_ShouldBeOrderedLongestFirst(t *testing.T) {
	table := NewTable(map[string][]string{
		"$":  {"USD"},
		"R$": {"BRL"},
		"kr": {"SEK", "NOK"},
	})

	assert.Equal(t, []string{"R$", "kr", "$"}, table.Symbols())
}

func Test_CodesFor_ShouldReturnCopy(t *testing.T) {
	table := NewTable(map[string][]string{"$": {"USD", "CAD"}})

	codes := table.CodesFor("$")
	codes[0] = "XXX"

	assert.Equal(t, []string{"USD", "CAD"}, table.CodesFor("$"))
}

func Test_LoadTable_ShouldReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "currencies.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"£": "GBP"}`), 0o600))

	table, err := LoadTable(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"GBP"}, table.CodesFor("£"))

	_, err = LoadTable(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func Test_Stale_ShouldRespectBoundary(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	const hours = 6

	tests := []struct {
		name     string
		snapshot *Snapshot
		stale    bool
	}{
		{name: "missing snapshot", snapshot: nil, stale: true},
		{name: "no timestamp", snapshot: &Snapshot{Rates: map[string]float64{"USD": 1}}, stale: true},
		{name: "one second past interval", snapshot: &Snapshot{Timestamp: now.Unix() - hours*3600 - 1}, stale: true},
		{name: "one second before interval", snapshot: &Snapshot{Timestamp: now.Unix() - hours*3600 + 1}, stale: false},
		{name: "just fetched", snapshot: &Snapshot{Timestamp: now.Unix()}, stale: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.stale, tt.snapshot.Stale(now, hours))
		})
	}
}

func Test_Exhausted(t *testing.T) {
	assert.True(t, Usage{RequestsRemaining: 0, Status: StatusOK}.Exhausted())
	assert.True(t, Usage{RequestsRemaining: 10, Status: StatusAccessRestricted}.Exhausted())
	assert.False(t, Usage{RequestsRemaining: 10, Status: StatusOK}.Exhausted())
}
