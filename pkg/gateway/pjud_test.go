package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andeslegal/cobranza/pkg/models"
	"github.com/andeslegal/cobranza/pkg/pjudmock"
)

func newMockClient(t *testing.T) (*PJUDClient, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(pjudmock.NewServer().Router())
	t.Cleanup(ts.Close)
	return NewPJUDClient(ts.URL, 5*time.Second), ts
}

var validCreds = models.Credentials{RUT: pjudmock.ValidRUT, Password: pjudmock.ValidPassword}

func TestPJUDClient_ExtractDemandList(t *testing.T) {
	client, _ := newMockClient(t)
	ctx := context.Background()

	records, err := client.ExtractDemandList(ctx, validCreds)
	require.NoError(t, err)
	assert.Len(t, records, 20)
	assert.Equal(t, "C-1000-2026", records[0].Rol)
}

func TestPJUDClient_ErrorTaxonomy(t *testing.T) {
	client, _ := newMockClient(t)
	ctx := context.Background()

	t.Run("bad credentials", func(t *testing.T) {
		_, err := client.ExtractDemandList(ctx, models.Credentials{RUT: "1-9", Password: "x"})
		assert.ErrorIs(t, err, ErrCredentialRejected)
	})

	t.Run("court outage", func(t *testing.T) {
		_, err := client.ExtractDemandList(ctx, models.Credentials{
			RUT: pjudmock.UnavailableRUT, Password: "anything",
		})
		assert.ErrorIs(t, err, ErrServerUnavailable)
	})

	t.Run("missing credentials short-circuit before any call", func(t *testing.T) {
		_, err := client.ExtractDemandList(ctx, models.Credentials{})
		assert.ErrorIs(t, err, ErrAuthenticationRequired)
	})

	t.Run("unknown index", func(t *testing.T) {
		err := client.DeleteDemand(ctx, validCreds, 999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPJUDClient_SendAndDeleteDemand(t *testing.T) {
	client, _ := newMockClient(t)
	ctx := context.Background()

	require.NoError(t, client.SendDemand(ctx, validCreds, 3))

	// The record is gone afterwards.
	err := client.DeleteDemand(ctx, validCreds, 3)
	assert.ErrorIs(t, err, ErrNotFound)

	records, err := client.ExtractDemandList(ctx, validCreds)
	require.NoError(t, err)
	assert.Len(t, records, 19)
}

func TestPJUDClient_GatewayTimeoutDistinguished(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGatewayTimeout)
		_, _ = w.Write([]byte(`{"status":504,"message":"upstream timeout"}`))
	}))
	defer ts.Close()

	client := NewPJUDClient(ts.URL, 5*time.Second)
	err := client.SendDemand(context.Background(), validCreds, 1)
	assert.ErrorIs(t, err, ErrGatewayTimeout)
	assert.NotErrorIs(t, err, ErrServerUnavailable)
}

func TestUserMessage(t *testing.T) {
	assert.Contains(t, UserMessage(ErrGatewayTimeout), "parcialmente")
	assert.Contains(t, UserMessage(ErrCredentialRejected), "Credenciales")
	assert.NotEmpty(t, UserMessage(assert.AnError))
}
