// Package store wraps the spreadsheet-backed REST API that owns the contact
// collection. It exposes the four operations the application uses: list,
// create, update, delete.
//
// The backing store follows the SheetDB conventions: create and update take
// a batch envelope ({"data": [record]}) even for single records, update and
// delete address rows as <collection>/id/<id>, and the store never assigns
// ids — callers compute them (see contact.NextID).
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Iron-Ham/sheetbook/internal/contact"
	sberrors "github.com/Iron-Ham/sheetbook/internal/errors"
	"github.com/Iron-Ham/sheetbook/internal/logging"
)

// defaultTimeout is the HTTP request timeout when none is configured.
const defaultTimeout = 30 * time.Second

// maxErrorBody caps how much of an error response body is kept for logs.
const maxErrorBody = 512

// Client defines the remote contact store operations.
type Client interface {
	// List fetches every contact in the collection, in sheet order.
	List(ctx context.Context) ([]contact.Contact, error)

	// Create appends a new contact. The caller must have assigned the id.
	Create(ctx context.Context, c contact.Contact) error

	// Update replaces the contact with the given id.
	Update(ctx context.Context, id string, c contact.Contact) error

	// Delete removes the contact with the given id.
	Delete(ctx context.Context, id string) error
}

// HTTPClient implements Client against a SheetDB-compatible endpoint.
type HTTPClient struct {
	collectionURL string
	httpClient    *http.Client
	logger        *logging.Logger
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *HTTPClient) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying http.Client entirely.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		c.httpClient = hc
	}
}

// WithLogger sets the diagnostic logger. Defaults to a no-op logger.
func WithLogger(logger *logging.Logger) Option {
	return func(c *HTTPClient) {
		c.logger = logger.With("component", "store")
	}
}

// New creates a client for the given collection URL.
func New(collectionURL string, opts ...Option) (*HTTPClient, error) {
	if collectionURL == "" {
		return nil, fmt.Errorf("collection URL must not be empty")
	}

	c := &HTTPClient{
		collectionURL: collectionURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logging.NopLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// envelope is the batch wrapper the store requires on every write, even for
// a single record.
type envelope struct {
	Data []contact.Contact `json:"data"`
}

// List fetches all contacts from the collection resource.
func (c *HTTPClient) List(ctx context.Context) ([]contact.Contact, error) {
	const op = "list contacts"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.collectionURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, sberrors.NewNetworkError(op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, sberrors.NewNetworkError(op, err)
	}

	if err := checkStatus(op, resp.StatusCode, body); err != nil {
		return nil, err
	}

	var contacts []contact.Contact
	if err := json.Unmarshal(body, &contacts); err != nil {
		return nil, fmt.Errorf("unmarshal contact list: %w", err)
	}

	c.logger.Debug("listed contacts", "count", len(contacts))
	return contacts, nil
}

// Create appends a new contact using the batch envelope.
func (c *HTTPClient) Create(ctx context.Context, record contact.Contact) error {
	const op = "create contact"

	if err := c.write(ctx, op, http.MethodPost, c.collectionURL, record); err != nil {
		return err
	}
	c.logger.Info("contact created", "id", record.ID)
	return nil
}

// Update replaces the contact addressed by id using the batch envelope.
func (c *HTTPClient) Update(ctx context.Context, id string, record contact.Contact) error {
	const op = "update contact"

	if err := c.write(ctx, op, http.MethodPut, c.rowURL(id), record); err != nil {
		return err
	}
	c.logger.Info("contact updated", "id", id)
	return nil
}

// Delete removes the contact addressed by id. No request body is sent.
func (c *HTTPClient) Delete(ctx context.Context, id string) error {
	const op = "delete contact"

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.rowURL(id), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return sberrors.NewNetworkError(op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(resp.Body)
	if err := checkStatus(op, resp.StatusCode, body); err != nil {
		return err
	}

	c.logger.Info("contact deleted", "id", id)
	return nil
}

// write sends a JSON-enveloped record with the given method.
func (c *HTTPClient) write(ctx context.Context, op, method, target string, record contact.Contact) error {
	payload, err := json.Marshal(envelope{Data: []contact.Contact{record}})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return sberrors.NewNetworkError(op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(resp.Body)
	return checkStatus(op, resp.StatusCode, body)
}

// rowURL returns the per-row resource URL for update and delete.
func (c *HTTPClient) rowURL(id string) string {
	return c.collectionURL + "/id/" + url.PathEscape(id)
}

// checkStatus converts a non-2xx response into a RemoteError.
func checkStatus(op string, statusCode int, body []byte) error {
	if statusCode >= 200 && statusCode < 300 {
		return nil
	}
	trimmed := string(body)
	if len(trimmed) > maxErrorBody {
		trimmed = trimmed[:maxErrorBody]
	}
	return sberrors.NewRemoteError(op, statusCode, trimmed)
}
