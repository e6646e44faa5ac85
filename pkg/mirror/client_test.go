package mirror

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTinybarAsHbar(t *testing.T) {
	tests := []struct {
		name     string
		tinybars int64
		want     string
	}{
		{"one hbar", 100000000, "1"},
		{"fraction", 123456789, "1.23456789"},
		{"thousands", 1000000000000, "10,000"},
		{"thousands with fraction", 123456789012345, "1,234,567.89012345"},
		{"zero", 0, "0"},
		{"sub hbar", 1000, "0.00001"},
		{"negative", -150000000, "-1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTinybarAsHbar(tt.tinybars))
		})
	}
}

func TestTinybarToHbar(t *testing.T) {
	assert.InDelta(t, 1.5, TinybarToHbar(150000000), 1e-9)
	assert.InDelta(t, 0, TinybarToHbar(0), 1e-9)
}

func TestGetAccountTinybars(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"balance":{"balance":42}}`))
	}))
	defer srv.Close()

	tinybars, err := NewClient(srv.URL, time.Second).GetAccountTinybars(context.Background(), "0.0.7")
	require.NoError(t, err)
	assert.Equal(t, int64(42), tinybars)
}

func TestGetAccountBalance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/accounts/0.0.1001", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"account":"0.0.1001","balance":{"balance":123456789012,"timestamp":"1700000000.000000000","tokens":[]}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/api/v1", time.Second)
	balance, err := client.GetAccountBalance(context.Background(), "0.0.1001")
	require.NoError(t, err)

	assert.Equal(t, &Balance{Balance: "1,234.56789012", Name: "HBAR", Symbol: "ℏ"}, balance)
}

func TestGetAccountBalance_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"_status":{"messages":[{"message":"Not found"}]}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.GetAccountBalance(context.Background(), "0.0.404")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestGetAccountBalance_MissingField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"account":"0.0.1001"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.GetAccountBalance(context.Background(), "0.0.1001")
	assert.Error(t, err)
}

func TestGetAccountBalance_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"balance":{"balance":1}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 50*time.Millisecond)
	_, err := client.GetAccountBalance(context.Background(), "0.0.1001")
	assert.Error(t, err)
}
