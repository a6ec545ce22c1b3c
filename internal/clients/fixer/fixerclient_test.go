package fixer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type key string

func (k key) ApiKey() string {
	return string(k)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(key("secret"))
	require.NoError(t, err)
	c.url = srv.URL
	return c
}

func Test_OnSuccess_ShouldReturnRates(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.Header.Get("apikey"))
		assert.Equal(t, "EUR", r.URL.Query().Get("base"))
		assert.Equal(t, "USD,GBP", r.URL.Query().Get("symbols"))
		_, _ = w.Write([]byte(`{"success":true,"base":"EUR","rates":{"USD":1.08,"GBP":0.85}}`))
	})

	rates, err := c.GetRates(context.Background(), "EUR", []string{"USD", "GBP"})
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"USD": 1.08, "GBP": 0.85}, rates)
}

func Test_OnFixerFailure_ShouldReturnError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"error":{"code":101,"info":"invalid key"}}`))
	})

	_, err := c.GetRates(context.Background(), "EUR", []string{"USD"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid key")
}

func Test_OnHttpError_ShouldReturnError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := c.GetRates(context.Background(), "EUR", []string{"USD"})
	assert.Error(t, err)
}

func Test_OnMissingKey_ShouldRefuse(t *testing.T) {
	_, err := New(key(""))
	assert.Error(t, err)
}
