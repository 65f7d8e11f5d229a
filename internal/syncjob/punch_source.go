package syncjob

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// PunchRecord is what the external punch clock provider reports for one
// employee-day. Found=false means the provider affirms it has no record at
// all, which is distinct from an empty punch list (a scheduled absence).
type PunchRecord struct {
	Found   bool     `json:"found"`
	Punches []string `json:"punches"`
}

//go:generate mockgen -source=punch_source.go -destination=mock/punch_source_mock.go -package=mock
type PunchSource interface {
	FetchPunches(ctx context.Context, employeeID, date string) (PunchRecord, error)
	Health(ctx context.Context) error
}

// HTTPPunchSource talks to the punch-clock provider's REST surface. The
// provider's own semantics are opaque here; failures surface as plain errors
// for the job manager to count.
type HTTPPunchSource struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPPunchSource(baseURL string) *HTTPPunchSource {
	return &HTTPPunchSource{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *HTTPPunchSource) FetchPunches(ctx context.Context, employeeID, date string) (PunchRecord, error) {
	url := fmt.Sprintf("%s/punches/%s/%s", s.baseURL, employeeID, date)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return PunchRecord{}, fmt.Errorf("punch source: create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return PunchRecord{}, fmt.Errorf("punch source: unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return PunchRecord{Found: false}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return PunchRecord{}, fmt.Errorf("punch source: returned %d", resp.StatusCode)
	}

	var record PunchRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return PunchRecord{}, fmt.Errorf("punch source: decode response: %w", err)
	}
	return record, nil
}

func (s *HTTPPunchSource) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("punch source: create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("punch source: unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("punch source: health returned %d", resp.StatusCode)
	}
	return nil
}
