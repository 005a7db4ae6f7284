package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"

	"xerosync/internal/config"
	"xerosync/internal/logger"
	"xerosync/internal/model"
)

const tenantHeader = "xero-tenant-id"

// AttachmentEndpoints lists the Xero document types that carry attachments.
var AttachmentEndpoints = []string{
	"Accounts",
	"BankTransactions",
	"BankTransfers",
	"Contacts",
	"CreditNotes",
	"Invoices",
	"ManualJournals",
	"PurchaseOrders",
	"Quotes",
	"Receipts",
	"RepeatingInvoices",
}

// ErrUnsupportedEndpoint is returned for attachment calls against a document
// type that has no attachments.
var ErrUnsupportedEndpoint = errors.New("endpoint does not support attachments")

// Client is a read-only Xero API gateway. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	tenantID   string
	log        *zap.Logger
	metrics    *Metrics
	tracer     trace.Tracer
	group      singleflight.Group
}

var _ model.Gateway = (*Client)(nil)

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the default authenticated, traced HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger used for per-call logging.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.log = logger.OrNop(l) }
}

// WithMetrics records every call on m.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// New builds a Client for the tenant in cfg. The default transport signs
// requests with the configured bearer token and records OpenTelemetry spans.
func New(cfg config.XeroConfig, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("xero base url is required")
	}
	if cfg.TenantID == "" {
		return nil, fmt.Errorf("xero tenant id is required")
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse xero base url: %w", err)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	c := &Client{
		baseURL:  base,
		tenantID: cfg.TenantID,
		log:      zap.NewNop(),
		tracer:   otel.Tracer("xerosync/internal/gateway"),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		if cfg.AccessToken == "" {
			return nil, fmt.Errorf("xero access token is required")
		}
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.AccessToken, TokenType: "Bearer"})
		c.httpClient = &http.Client{
			Timeout: cfg.Timeout,
			Transport: otelhttp.NewTransport(&oauth2.Transport{
				Source: src,
				Base:   http.DefaultTransport,
			}),
		}
	}
	return c, nil
}

// GetJournal fetches a single journal with its lines. Concurrent calls for
// the same journal share one request. A 404 yields an unsuccessful response
// rather than an error.
//
// The shared request ignores caller cancellation. Each caller returns as
// soon as its own ctx is done.
func (c *Client) GetJournal(ctx context.Context, journalID string) (model.JournalResponse, error) {
	shared := context.WithoutCancel(ctx)
	ch := c.group.DoChan(journalID, func() (any, error) {
		return c.get(shared, "get_journal", "Journals/"+url.PathEscape(journalID), nil)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			c.log.Debug("xero journal fetch shared", zap.String("journal_id", journalID))
		}
		return res.Val.(*Response), nil
	}
}

// GetJournals lists journals, optionally only those modified since the given
// time. Listed journals carry no lines and complete themselves through c.
func (c *Client) GetJournals(ctx context.Context, modifiedSince time.Time) (*Response, error) {
	header := http.Header{}
	if !modifiedSince.IsZero() {
		header.Set("If-Modified-Since", modifiedSince.UTC().Format("2006-01-02T15:04:05"))
	}
	return c.get(ctx, "get_journals", "Journals", header)
}

// GetAttachments lists the attachments of one document.
func (c *Client) GetAttachments(ctx context.Context, endpoint, guid string) (*Response, error) {
	if !slices.Contains(AttachmentEndpoints, endpoint) {
		return nil, fmt.Errorf("%s: %w", endpoint, ErrUnsupportedEndpoint)
	}
	path := endpoint + "/" + url.PathEscape(guid) + "/Attachments"
	return c.get(ctx, "get_attachments", path, nil)
}

// DownloadAttachment streams the content of a. The caller closes the reader.
func (c *Client) DownloadAttachment(ctx context.Context, a *model.Attachment) (io.ReadCloser, error) {
	const op = "download_attachment"
	start := time.Now()

	ctx, span := c.startSpan(ctx, op, a.URL)
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("xero %s: %w", op, err)
	}
	req.Header.Set(tenantHeader, c.tenantID)
	if a.MimeType != "" {
		req.Header.Set("Accept", a.MimeType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.fail(span, op, start, err)
		return nil, fmt.Errorf("xero %s: %w", op, err)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		defer resp.Body.Close()
		apiErr := parseAPIError(resp.StatusCode, resp.Body)
		c.fail(span, op, start, apiErr)
		return nil, apiErr
	}

	c.metrics.observe(op, "ok", start)
	return resp.Body, nil
}

func (c *Client) get(ctx context.Context, op, path string, header http.Header) (*Response, error) {
	start := time.Now()
	u := c.baseURL.ResolveReference(&url.URL{Path: path})

	ctx, span := c.startSpan(ctx, op, u.String())
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("xero %s: %w", op, err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/xml")
	req.Header.Set(tenantHeader, c.tenantID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.fail(span, op, start, err)
		return nil, fmt.Errorf("xero %s: %w", op, err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		c.metrics.observe(op, "not_found", start)
		c.log.Debug("xero resource not found", zap.String("operation", op), zap.String("path", path))
		return &Response{Status: http.StatusText(resp.StatusCode), StatusCode: resp.StatusCode}, nil
	case resp.StatusCode >= http.StatusMultipleChoices:
		apiErr := parseAPIError(resp.StatusCode, resp.Body)
		c.fail(span, op, start, apiErr)
		return nil, apiErr
	}

	out, err := ParseResponse(resp.Body, c)
	if err != nil {
		c.fail(span, op, start, err)
		return nil, fmt.Errorf("xero %s: decode response: %w", op, err)
	}
	out.StatusCode = resp.StatusCode

	outcome := "ok"
	if !out.Success() {
		outcome = "unsuccessful"
	}
	c.metrics.observe(op, outcome, start)
	c.log.Debug("xero call",
		zap.String("operation", op),
		zap.String("status", out.Status),
		zap.Int("journals", len(out.Journals)),
		zap.Int("attachments", len(out.Attachments)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return out, nil
}

func (c *Client) startSpan(ctx context.Context, op, target string) (context.Context, trace.Span) {
	return c.tracer.Start(ctx, "xero."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("url.full", target)),
	)
}

func (c *Client) fail(span trace.Span, op string, start time.Time, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	c.metrics.observe(op, "error", start)
	c.log.Warn("xero call failed", zap.String("operation", op), zap.Error(err))
}
