package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/SabeeirSharrma/allthetorr/internal/model"
)

// DefaultFetchTimeout bounds a single fetch attempt. The timeout is the only
// cancellation mechanism; its expiry surfaces as a normal fetch error.
const DefaultFetchTimeout = 10 * time.Second

// Fetch failure taxonomy. Errors returned by Fetch wrap exactly one of these.
var (
	// ErrUnreachable covers network failures, timeouts, and non-success statuses
	ErrUnreachable = errors.New("uploads database unreachable")

	// ErrInvalidShape means the response did not decode to a JSON array
	ErrInvalidShape = errors.New("uploads document root is not a JSON array")
)

// Fetcher retrieves the uploads document over HTTP. One call is exactly one
// attempt; retry policy belongs to whoever asks for a refresh.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a fetcher with the given per-attempt timeout
func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch retrieves and decodes the uploads document at url. The response must
// be a JSON array; elements are accepted as records without further schema
// validation, so entries missing display fields flow through to the
// presentation layer untouched.
func (f *Fetcher) Fetch(ctx context.Context, url string) (model.Catalog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: unexpected status %s", ErrUnreachable, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrUnreachable, err)
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(body, &elements); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidShape, err)
	}

	records := make(model.Catalog, len(elements))
	for i, element := range elements {
		// Element-level decode problems leave a zero record in place rather
		// than failing the whole snapshot.
		_ = json.Unmarshal(element, &records[i])
	}
	return records, nil
}
