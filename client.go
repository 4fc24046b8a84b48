package fio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// DownloadURL is the base for statement and breakpoint requests.
	DownloadURL = "https://www.fio.cz/ib_api/rest/"

	// UploadURL receives order imports.
	UploadURL = DownloadURL + "import/"

	// RetryAfter is how long to back off when the bank reports
	// TemporaryUnavailable. Requests against the same token sent less than
	// 30 seconds apart trigger HTTP 409.
	RetryAfter = 30 * time.Second

	urlDateLayout = "2006-01-02"
)

// Transport executes exactly one HTTP exchange. *http.Client satisfies it.
// The transport owns timeout policy; the library imposes none.
type Transport interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the FIO REST API. It performs no retries; callers decide
// retry policy from the returned Error kind.
type Client struct {
	transport   Transport
	downloadURL string
	uploadURL   string
	logger      zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTransport replaces the default http.DefaultClient transport.
func WithTransport(transport Transport) Option {
	return func(c *Client) {
		c.transport = transport
	}
}

// WithBaseURL points the client at a different API root, e.g. a sandbox.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.downloadURL = base
		c.uploadURL = base + "import/"
	}
}

// WithLogger enables debug tracing of request/response exchanges.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a Client against the production FIO API.
func NewClient(opts ...Option) *Client {
	c := &Client{
		transport:   http.DefaultClient,
		downloadURL: DownloadURL,
		uploadURL:   UploadURL,
		logger:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetNewTransactions downloads all transactions posted since the last
// download (or the last explicitly set breakpoint).
func (c *Client) GetNewTransactions(ctx context.Context, token string) ([]*Transaction, error) {
	url := c.downloadURL + "last/" + token + "/transactions.json"

	body, err := c.download(ctx, url)
	if err != nil {
		return nil, err
	}
	return parseTransactions(body)
}

// GetTransactions downloads all transactions posted between from and to,
// inclusive. Only the calendar day of each bound is significant.
func (c *Client) GetTransactions(ctx context.Context, token string, from, to time.Time) ([]*Transaction, error) {
	fromDate := from.Format(urlDateLayout)
	toDate := to.Format(urlDateLayout)
	url := c.downloadURL + "periods/" + token + "/" + fromDate + "/" + toDate + "/transactions.json"

	body, err := c.download(ctx, url)
	if err != nil {
		return nil, err
	}
	return parseTransactions(body)
}

// SetBreakpointByID moves the download cursor to the movement id given, so
// the next GetNewTransactions returns everything after it.
func (c *Client) SetBreakpointByID(ctx context.Context, token, moveID string) error {
	url := c.downloadURL + "set-last-id/" + token + "/" + moveID + "/"

	_, err := c.download(ctx, url)
	return err
}

// SetBreakpointByDate moves the download cursor to the calendar day given.
func (c *Client) SetBreakpointByDate(ctx context.Context, token string, date time.Time) error {
	url := c.downloadURL + "set-last-date/" + token + "/" + date.Format(urlDateLayout) + "/"

	_, err := c.download(ctx, url)
	return err
}

// SendTransactionOrders builds the import XML for the orders and uploads it.
// A nil return means the bank answered "ok"; a Warning means the import was
// accepted but flagged, and individual orders may still have been executed.
func (c *Client) SendTransactionOrders(ctx context.Context, token, accountFrom string, orders []*TransactionOrder) error {
	payload, err := buildImportXML(accountFrom, orders)
	if err != nil {
		return err
	}
	return c.upload(ctx, token, payload)
}

func (c *Client) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, failure("building FIO API request", err)
	}
	return c.send(req)
}

// upload stages the payload in a transient file and posts it as multipart
// form data. The file is removed on every exit path.
func (c *Client) upload(ctx context.Context, token string, payload []byte) error {
	path := filepath.Join(os.TempDir(), "fio-orders-"+uuid.NewString()+".xml")
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return failure("staging order import payload", err)
	}
	defer os.Remove(path)

	body, contentType, err := buildUploadForm(token, path)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, body)
	if err != nil {
		return failure("building FIO API request", err)
	}
	req.Header.Set("Content-Type", contentType)

	responseBody, err := c.send(req)
	if err != nil {
		return err
	}
	return parseUploadStatus(responseBody)
}

func buildUploadForm(token, path string) (io.Reader, string, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	fields := []struct{ name, value string }{
		{"token", token},
		{"type", "xml"},
		{"lng", "cs"},
	}
	for _, field := range fields {
		if err := form.WriteField(field.name, field.value); err != nil {
			return nil, "", failure("encoding upload form", err)
		}
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filepath.Base(path)))
	header.Set("Content-Type", "text/xml")

	part, err := form.CreatePart(header)
	if err != nil {
		return nil, "", failure("encoding upload form", err)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, "", failure("reading staged order import payload", err)
	}
	defer file.Close()

	if _, err := io.Copy(part, file); err != nil {
		return nil, "", failure("encoding upload form", err)
	}
	if err := form.Close(); err != nil {
		return nil, "", failure("encoding upload form", err)
	}

	return &buf, form.FormDataContentType(), nil
}

// send executes one exchange and classifies the outcome. HTTP 409 is the
// bank's rate limit and is surfaced as TemporaryUnavailable; any other
// non-200 status is a Failure.
func (c *Client) send(req *http.Request) ([]byte, error) {
	resp, err := c.transport.Do(req)
	if err != nil {
		return nil, failure("HTTP request to FIO API failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, failure("reading FIO API response", err)
	}

	c.logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Int("status", resp.StatusCode).
		Msg("fio api exchange")

	switch {
	case resp.StatusCode == http.StatusConflict:
		return nil, &Error{
			Kind:       TemporaryUnavailable,
			Message:    "FIO API overheated, wait 30 seconds",
			StatusCode: resp.StatusCode,
			RetryAfter: RetryAfter,
		}
	case resp.StatusCode != http.StatusOK:
		return nil, &Error{
			Kind:       Failure,
			Message:    fmt.Sprintf("unexpected HTTP code %d from FIO API", resp.StatusCode),
			StatusCode: resp.StatusCode,
		}
	}

	return body, nil
}
