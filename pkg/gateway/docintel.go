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

// DocIntelConfig configures the document-intelligence client.
type DocIntelConfig struct {
	BaseURL  string        `yaml:"base_url"`
	APIToken string        `yaml:"api_token"`
	Timeout  time.Duration `yaml:"timeout"`
}

// DocIntelClient talks to the document-intelligence service that backs the
// Extract and Analyze workflow stages.
type DocIntelClient struct {
	config     DocIntelConfig
	httpClient *http.Client
}

// NewDocIntelClient creates a client from config.
func NewDocIntelClient(cfg DocIntelConfig) *DocIntelClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &DocIntelClient{
		config:     cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// EvidenceFile is one uploaded document offered to the extraction service.
type EvidenceFile struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"data"`
}

// extractRequest is the body of an extraction call.
type extractRequest struct {
	Kind        models.DocKind `json:"kind"`
	ContextText string         `json:"context_text,omitempty"`
	Files       []EvidenceFile `json:"files"`
}

// analyzeRequest is the body of an analysis call.
type analyzeRequest struct {
	Kind      models.DocKind            `json:"kind"`
	Structure *models.DocumentStructure `json:"structure"`
}

// Extract turns evidence files plus free-text context into structured
// demand input.
func (c *DocIntelClient) Extract(ctx context.Context, kind models.DocKind, files []EvidenceFile, contextText string) (*models.DemandInput, error) {
	var input models.DemandInput
	err := c.post(ctx, "/v1/extract", extractRequest{
		Kind:        kind,
		ContextText: contextText,
		Files:       files,
	}, &input)
	if err != nil {
		return nil, err
	}
	return &input, nil
}

// Analyze reviews a generated document structure and returns findings.
func (c *DocIntelClient) Analyze(ctx context.Context, kind models.DocKind, structure *models.DocumentStructure) (*models.AnalysisResult, error) {
	var result models.AnalysisResult
	err := c.post(ctx, "/v1/analyze", analyzeRequest{Kind: kind, Structure: structure}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *DocIntelClient) post(ctx context.Context, path string, body, out any) error {
	if c.config.APIToken == "" {
		return ErrAuthenticationRequired
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.config.APIToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach document-intelligence service: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if mErr := mapStatus(resp.StatusCode, string(raw)); mErr != nil {
		return mErr
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
