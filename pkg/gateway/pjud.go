package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/andeslegal/cobranza/pkg/models"
)

// DemandRecord is one demand as listed by the court e-filing system.
type DemandRecord struct {
	Index      int    `json:"index"`
	Rol        string `json:"rol"`
	Court      string `json:"court"`
	DebtorName string `json:"debtor_name"`
	Amount     int64  `json:"amount"`
	Status     string `json:"status"`
}

// pjudEnvelope is the standard response wrapper of the e-filing API.
type pjudEnvelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// credentialRequest is the body of credentialed e-filing calls.
type credentialRequest struct {
	RUT      string `json:"rut"`
	Password string `json:"password"`
	Index    *int   `json:"index,omitempty"`
}

// PJUDClient talks to the court e-filing API (or its mock).
type PJUDClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewPJUDClient creates a client for the e-filing API at baseURL.
func NewPJUDClient(baseURL string, timeout time.Duration) *PJUDClient {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &PJUDClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ExtractDemandList fetches the user's demand list from the court system.
func (c *PJUDClient) ExtractDemandList(ctx context.Context, creds models.Credentials) ([]DemandRecord, error) {
	env, err := c.do(ctx, http.MethodPost, "/v1/extract/demand_list/", credentialRequest{
		RUT:      creds.RUT,
		Password: creds.Password,
	})
	if err != nil {
		return nil, err
	}

	var records []DemandRecord
	if err := json.Unmarshal(env.Data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse demand list: %w", err)
	}
	return records, nil
}

// SendDemand submits the demand identified by index for dispatch.
func (c *PJUDClient) SendDemand(ctx context.Context, creds models.Credentials, index int) error {
	_, err := c.do(ctx, http.MethodPost, "/v1/send/demand/", credentialRequest{
		RUT:      creds.RUT,
		Password: creds.Password,
		Index:    &index,
	})
	return err
}

// DeleteDemand withdraws the demand identified by index.
func (c *PJUDClient) DeleteDemand(ctx context.Context, creds models.Credentials, index int) error {
	_, err := c.do(ctx, http.MethodDelete, "/v1/send/demand/", credentialRequest{
		RUT:      creds.RUT,
		Password: creds.Password,
		Index:    &index,
	})
	return err
}

// do executes one credentialed JSON call and maps non-2xx statuses to the
// taxonomy. Credentials are relayed only; never logged or stored.
func (c *PJUDClient) do(ctx context.Context, method, path string, body any) (*pjudEnvelope, error) {
	if v, ok := body.(credentialRequest); ok && (v.RUT == "" || v.Password == "") {
		return nil, ErrAuthenticationRequired
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach e-filing service: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var env pjudEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		// Non-JSON error bodies still map by HTTP status.
		if mErr := mapStatus(resp.StatusCode, string(raw)); mErr != nil {
			return nil, mErr
		}
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	// The envelope's status field mirrors the HTTP status; trust the
	// stricter of the two.
	code := resp.StatusCode
	if env.Status > code {
		code = env.Status
	}
	if mErr := mapStatus(code, env.Message); mErr != nil {
		return nil, mErr
	}
	return &env, nil
}
