package oxr

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/currconv/internal/entity/currency"
	"max.ks1230/currconv/internal/model/customerr"
)

type testConfig struct {
	key     string
	url     string
	timeout time.Duration
}

func (c testConfig) ApiKey() string         { return c.key }
func (c testConfig) BaseURL() string        { return c.url }
func (c testConfig) Timeout() time.Duration { return c.timeout }

func newServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func Test_Usage_ShouldParseUsage(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/usage.json", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("app_id"))
		_, _ = w.Write([]byte(`{"status":200,"data":{"app_id":"secret","status":"active","usage":{"requests":10,"requests_quota":1000,"requests_remaining":990,"days_elapsed":3,"days_remaining":27}}}`))
	})

	client := New(testConfig{key: "secret\n", url: srv.URL + "/"})
	usage, err := client.Usage(context.Background())

	require.NoError(t, err)
	assert.Equal(t, currency.Usage{RequestsRemaining: 990, DaysRemaining: 27, Status: currency.StatusOK}, usage)
}

func Test_Usage_ShouldReportRestrictedStatus(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"status":"access_restricted","usage":{"requests_remaining":0,"days_remaining":5}}}`))
	})

	usage, err := New(testConfig{key: "k", url: srv.URL}).Usage(context.Background())

	require.NoError(t, err)
	assert.True(t, usage.Exhausted())
	assert.Equal(t, int64(5), usage.DaysRemaining)
}

func Test_GetRates_ShouldRequestCodes(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/latest.json", r.URL.Path)
		assert.Equal(t, "EUR,HUF,USD", r.URL.Query().Get("symbols"))
		_, _ = w.Write([]byte(`{"timestamp":1700000000,"base":"USD","rates":{"EUR":0.9,"HUF":360,"USD":1}}`))
	})

	snap, err := New(testConfig{key: "k", url: srv.URL}).GetRates(context.Background(), []string{"EUR", "HUF", "USD"})

	require.NoError(t, err)
	assert.Equal(t, int64(1700000000), snap.Timestamp)
	assert.Equal(t, map[string]float64{"EUR": 0.9, "HUF": 360, "USD": 1}, snap.Rates)
}

func Test_Client_ShouldClassifyApiErrors(t *testing.T) {
	tests := []struct {
		message string
		status  int
		kind    customerr.Kind
	}{
		{message: "invalid_app_id", status: http.StatusUnauthorized, kind: customerr.InvalidCredential},
		{message: "missing_app_id", status: http.StatusUnauthorized, kind: customerr.MissingCredential},
		{message: "access_restricted", status: http.StatusTooManyRequests, kind: customerr.AccessRestricted},
		{message: "not_allowed", status: http.StatusForbidden, kind: customerr.AccessRestricted},
		{message: "invalid_base", status: http.StatusBadRequest, kind: customerr.Remote},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			srv := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"error":true,"status":` + strconv.Itoa(tt.status) + `,"message":"` + tt.message + `","description":"details"}`))
			})
			client := New(testConfig{key: "k", url: srv.URL})

			_, err := client.Usage(context.Background())
			assert.Equal(t, tt.kind, customerr.KindOf(err))

			_, err = client.GetRates(context.Background(), []string{"USD"})
			assert.Equal(t, tt.kind, customerr.KindOf(err))
		})
	}
}

func Test_Client_ShouldFailWithoutKey(t *testing.T) {
	called := false
	srv := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		called = true
	})

	_, err := New(testConfig{key: "  ", url: srv.URL}).Usage(context.Background())

	assert.Equal(t, customerr.MissingCredential, customerr.KindOf(err))
	assert.False(t, called)
}

func Test_Client_ShouldReportTimeoutAsNetworkFailure(t *testing.T) {
	release := make(chan struct{})
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	client := New(testConfig{key: "k", url: srv.URL, timeout: time.Second})
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.GetRates(ctx, []string{"USD"})

	assert.Equal(t, customerr.NetworkFailure, customerr.KindOf(err))
}

func Test_Client_ShouldRejectMalformedBody(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	})

	_, err := New(testConfig{key: "k", url: srv.URL}).GetRates(context.Background(), []string{"USD"})

	assert.Equal(t, customerr.Remote, customerr.KindOf(err))
}
