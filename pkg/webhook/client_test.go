package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPayload() QuotePayload {
	return QuotePayload{
		QuoteNumber:   "LZQ-001",
		ClientName:    "Jane Doe",
		ClientEmail:   "jane@x.com",
		ClientPhone:   "123",
		ClientAddress: "1 Main St",
		ValidityDays:  14,
		Terms:         "",
		Services: []ServiceLine{
			{Description: "Bricklaying", Unit: "m²", Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromInt(5)},
			{Description: "Plastering", Unit: "m²", Quantity: decimal.NewFromFloat(2.5), UnitPrice: decimal.NewFromFloat(4.2)},
		},
	}
}

func TestFlattenExactKeys(t *testing.T) {
	flat := Flatten(testPayload())

	want := map[string]string{
		"client_name":             "Jane Doe",
		"client_email":            "jane@x.com",
		"client_phone":            "123",
		"client_address":          "1 Main St",
		"validity_days":           "14",
		"terms":                   "",
		"quote_number":            "LZQ-001",
		"services[0].description": "Bricklaying",
		"services[0].unit":        "m²",
		"services[0].quantity":    "10",
		"services[0].unit_price":  "5",
		"services[1].description": "Plastering",
		"services[1].unit":        "m²",
		"services[1].quantity":    "2.5",
		"services[1].unit_price":  "4.2",
	}
	assert.Equal(t, want, flat)
}

func TestFlattenNoServices(t *testing.T) {
	payload := testPayload()
	payload.Services = nil

	flat := Flatten(payload)
	assert.Len(t, flat, 7)
	for key := range flat {
		assert.False(t, strings.HasPrefix(key, "services["), "unexpected key %q", key)
	}
}

func TestNewClientRequiresURL(t *testing.T) {
	_, err := NewClient("   ")
	require.Error(t, err)
}

func TestDeliverSuccess(t *testing.T) {
	var gotBody map[string]string
	var gotContentType, gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotUserAgent = r.Header.Get("User-Agent")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)

	outcome := client.Deliver(context.Background(), Flatten(testPayload()))

	assert.Equal(t, StateDelivered, outcome.State)
	assert.True(t, outcome.Delivered())
	assert.Empty(t, outcome.ErrorText())
	assert.Nil(t, outcome.StatusValue())
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "Quote-Generator/1.0", gotUserAgent)
	assert.Equal(t, "LZQ-001", gotBody["quote_number"])
	assert.Equal(t, "10", gotBody["services[0].quantity"])
}

func TestDeliverRejectedNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("workflow disabled"))
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)

	outcome := client.Deliver(context.Background(), Flatten(testPayload()))

	assert.Equal(t, StateRejected, outcome.State)
	assert.Equal(t, http.StatusBadGateway, outcome.StatusCode)
	assert.Equal(t, "workflow disabled", outcome.Body)
	assert.Equal(t, "Status: 502 Bad Gateway - workflow disabled", outcome.ErrorText())
	assert.Equal(t, http.StatusBadGateway, outcome.StatusValue())
}

func TestDeliverTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing is listening anymore

	client, err := NewClient(server.URL)
	require.NoError(t, err)

	outcome := client.Deliver(context.Background(), Flatten(testPayload()))

	assert.Equal(t, StateFailed, outcome.State)
	assert.NotEmpty(t, outcome.Reason)
	assert.Equal(t, outcome.Reason, outcome.ErrorText())
	assert.Equal(t, FailedStatusMarker, outcome.StatusValue())
}

func TestDeliverTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer func() {
		close(release)
		server.Close()
	}()

	client, err := NewClient(server.URL, WithTimeout(50*time.Millisecond))
	require.NoError(t, err)

	start := time.Now()
	outcome := client.Deliver(context.Background(), Flatten(testPayload()))

	assert.Equal(t, StateFailed, outcome.State)
	assert.Less(t, time.Since(start), 5*time.Second)
	assert.Equal(t, FailedStatusMarker, outcome.StatusValue())
}
