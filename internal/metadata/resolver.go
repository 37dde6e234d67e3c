package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/recircle/twin-ledger/internal/uri"
)

// Attribute is one trait entry in a metadata document
type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// Document is the off-chain metadata document a twin's URI points at. All
// fields are optional; the ledger stores only the URI and never interprets
// the document.
type Document struct {
	Name        string      `json:"name,omitempty"`
	Description string      `json:"description,omitempty"`
	Image       string      `json:"image,omitempty"`
	Materials   string      `json:"materials,omitempty"`
	Attributes  []Attribute `json:"attributes,omitempty"`
}

// Resolver defines the interface for resolving a metadata URI into a document
//
//go:generate mockgen -source=resolver.go -destination=../mocks/metadata_resolver.go -package=mocks
type Resolver interface {
	Resolve(ctx context.Context, uri string) (*Document, error)
}

// Config holds resolver configuration
type Config struct {
	HTTPTimeout    time.Duration
	MaxRetries     uint64
	MaxDocumentLen int64
	IPFSGateway    string
}

type httpResolver struct {
	client         *http.Client
	rewriter       *uri.Rewriter
	maxRetries     uint64
	maxDocumentLen int64
}

// NewHTTPResolver creates a resolver that fetches documents over HTTP(S)
func NewHTTPResolver(cfg Config) Resolver {
	timeout := cfg.HTTPTimeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	maxLen := cfg.MaxDocumentLen
	if maxLen == 0 {
		maxLen = 1 << 20
	}
	return &httpResolver{
		client:         &http.Client{Timeout: timeout},
		rewriter:       uri.NewRewriter(cfg.IPFSGateway),
		maxRetries:     cfg.MaxRetries,
		maxDocumentLen: maxLen,
	}
}

// Resolve fetches and decodes the document behind a URI. Server errors are
// retried with exponential backoff; client errors are not.
func (r *httpResolver) Resolve(ctx context.Context, rawURI string) (*Document, error) {
	fetchURL, err := r.rewriter.Rewrite(rawURI)
	if err != nil {
		return nil, err
	}

	var doc *Document

	operation := func() error {
		fetched, err := r.fetch(ctx, fetchURL)
		if err != nil {
			return err
		}
		doc = fetched
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), r.maxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}

	return doc, nil
}

func (r *httpResolver) fetch(ctx context.Context, fetchURL string) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fetchURL, nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("failed to build metadata request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch metadata: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("metadata server returned %d", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, backoff.Permanent(fmt.Errorf("metadata fetch returned %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, r.maxDocumentLen))
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata body: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, backoff.Permanent(fmt.Errorf("failed to decode metadata document: %w", err))
	}

	return &doc, nil
}
