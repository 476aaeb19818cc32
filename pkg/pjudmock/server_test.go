package pjudmock

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, ts *httptest.Server, method, path string, body any) (int, envelope) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(method, ts.URL+path, bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestExtractDemandList(t *testing.T) {
	ts := httptest.NewServer(NewServer().Router())
	defer ts.Close()

	t.Run("valid credentials return the 20-record list", func(t *testing.T) {
		code, env := doJSON(t, ts, http.MethodPost, "/v1/extract/demand_list/",
			map[string]string{"rut": ValidRUT, "password": ValidPassword})

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, http.StatusOK, env.Status)

		var demands []Demand
		require.NoError(t, json.Unmarshal(env.Data, &demands))
		assert.Len(t, demands, 20)
	})

	t.Run("unavailable rut simulates a court outage", func(t *testing.T) {
		code, env := doJSON(t, ts, http.MethodPost, "/v1/extract/demand_list/",
			map[string]string{"rut": UnavailableRUT, "password": "whatever"})

		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, http.StatusInternalServerError, env.Status)
		assert.Equal(t, "PJUD no disponible", env.Message)
	})

	t.Run("anything else is rejected", func(t *testing.T) {
		code, env := doJSON(t, ts, http.MethodPost, "/v1/extract/demand_list/",
			map[string]string{"rut": "12.345.678-9", "password": "123"})

		assert.Equal(t, http.StatusUnauthorized, code)
		assert.Equal(t, http.StatusUnauthorized, env.Status)
	})

	t.Run("wrong password for valid rut is rejected", func(t *testing.T) {
		code, _ := doJSON(t, ts, http.MethodPost, "/v1/extract/demand_list/",
			map[string]string{"rut": ValidRUT, "password": "wrong"})
		assert.Equal(t, http.StatusUnauthorized, code)
	})
}

func TestRemoveDemand(t *testing.T) {
	srv := NewServer()
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	body := map[string]any{"rut": ValidRUT, "password": ValidPassword, "index": 5}

	// First deletion removes exactly the record whose index field is 5.
	code, env := doJSON(t, ts, http.MethodDelete, "/v1/send/demand/", body)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, http.StatusOK, env.Status)

	code, env = doJSON(t, ts, http.MethodPost, "/v1/extract/demand_list/",
		map[string]string{"rut": ValidRUT, "password": ValidPassword})
	require.Equal(t, http.StatusOK, code)
	var demands []Demand
	require.NoError(t, json.Unmarshal(env.Data, &demands))
	assert.Len(t, demands, 19)
	for _, d := range demands {
		assert.NotEqual(t, 5, d.Index)
	}

	// A second identical call finds nothing.
	code, env = doJSON(t, ts, http.MethodDelete, "/v1/send/demand/", body)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, http.StatusNotFound, env.Status)

	// POST behaves like DELETE.
	code, _ = doJSON(t, ts, http.MethodPost, "/v1/send/demand/",
		map[string]any{"rut": ValidRUT, "password": ValidPassword, "index": 7})
	assert.Equal(t, http.StatusOK, code)

	// Missing index is a bad request, not a credential failure.
	code, _ = doJSON(t, ts, http.MethodPost, "/v1/send/demand/",
		map[string]any{"rut": ValidRUT, "password": ValidPassword})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestReset(t *testing.T) {
	srv := NewServer()
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	_, _ = doJSON(t, ts, http.MethodDelete, "/v1/send/demand/",
		map[string]any{"rut": ValidRUT, "password": ValidPassword, "index": 0})

	srv.Reset()

	_, env := doJSON(t, ts, http.MethodPost, "/v1/extract/demand_list/",
		map[string]string{"rut": ValidRUT, "password": ValidPassword})
	var demands []Demand
	require.NoError(t, json.Unmarshal(env.Data, &demands))
	assert.Len(t, demands, 20)
}
