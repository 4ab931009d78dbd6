// ABOUTME: HTTP client for the Agenus product catalog API
// ABOUTME: Wraps auth and product calls with proper error handling for CLI usage

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Client is the API client for the Agenus catalog backend
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu             sync.RWMutex
	token          string
	onUnauthorized func()
}

// New creates a new API client with the given base URL
func New(baseURL string) *Client {
	return NewWithTimeout(baseURL, 10*time.Second)
}

// NewWithTimeout creates a new API client with a custom request timeout
func NewWithTimeout(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// SetToken sets the bearer credential attached to subsequent requests
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// ClearToken removes the bearer credential
func (c *Client) ClearToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
}

// Token returns the current bearer credential, if any
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// OnUnauthorized registers a hook invoked whenever any request receives a
// 401 response. This is the global session-invalidation trigger: it fires
// regardless of which feature issued the request.
func (c *Client) OnUnauthorized(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = fn
}

// User identifies the authenticated account
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginRequest carries credentials for POST /auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned by both login and session validation
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Thumbnail is the image attached to a product
type Thumbnail struct {
	ID           string `json:"id"`
	URL          string `json:"url"`
	Size         int64  `json:"size"`
	OriginalName string `json:"originalName"`
	MimeType     string `json:"mimeType"`
	Key          string `json:"key"`
	UserID       string `json:"userId"`
	ModuleID     string `json:"idModule"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// Product is the full catalog entry returned by GET /products/{id}
type Product struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      bool       `json:"status"`
	ThumbnailID string     `json:"idThumbnail"`
	CreatedAt   string     `json:"createdAt"`
	UpdatedAt   string     `json:"updatedAt"`
	Thumbnail   *Thumbnail `json:"thumbnail,omitempty"`
}

// ProductSummary is the list-page shape of a catalog entry
type ProductSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      bool   `json:"status"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ListMeta carries the server's pagination descriptors
type ListMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// ProductList is the response of GET /products
type ProductList struct {
	Data []ProductSummary `json:"data"`
	Meta ListMeta         `json:"meta"`
}

type productEnvelope struct {
	Data Product `json:"data"`
}

// WriteResult is the response of create/update/delete operations
type WriteResult struct {
	CodeIntern string `json:"codeIntern"`
	Message    string `json:"message"`
	ID         string `json:"id,omitempty"`
}

// Upload is a file attached to a multipart request
type Upload struct {
	Filename string
	Content  io.Reader
}

// CreateProductInput carries the multipart fields for POST /products
type CreateProductInput struct {
	Title       string
	Description string
	Thumbnail   *Upload
}

// UpdateProductInput carries the JSON body for PUT /products/{id}
type UpdateProductInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      bool   `json:"status"`
}

// ErrorResponse represents an API error payload
type ErrorResponse struct {
	CodeIntern string `json:"codeIntern,omitempty"`
	Message    string `json:"message,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Login calls POST /auth/login. No bearer token is required; a fresh one is
// returned on success.
func (c *Client) Login(ctx context.Context, creds LoginRequest) (*LoginResponse, error) {
	var out LoginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ValidateSession replays the stored token against POST /auth/session
func (c *Client) ValidateSession(ctx context.Context) (*LoginResponse, error) {
	var out LoginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/session", struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListProducts calls GET /products?page&pageSize
func (c *Client) ListProducts(ctx context.Context, page, pageSize int) (*ProductList, error) {
	path := fmt.Sprintf("/products?page=%d&pageSize=%d", page, pageSize)
	var out ProductList
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProduct calls GET /products/{id} and returns the full product
// including its thumbnail
func (c *Client) GetProduct(ctx context.Context, id string) (*Product, error) {
	var out productEnvelope
	if err := c.doJSON(ctx, http.MethodGet, "/products/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// CreateProduct calls POST /products with a multipart payload
func (c *Client) CreateProduct(ctx context.Context, input CreateProductInput) (*WriteResult, error) {
	fields := [][2]string{
		{"title", input.Title},
		{"description", input.Description},
	}
	var out WriteResult
	if err := c.doMultipart(ctx, http.MethodPost, "/products", fields, input.Thumbnail, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProduct calls PUT /products/{id}
func (c *Client) UpdateProduct(ctx context.Context, id string, input UpdateProductInput) (*WriteResult, error) {
	var out WriteResult
	if err := c.doJSON(ctx, http.MethodPut, "/products/"+id, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateThumbnail calls PATCH /products/thumbnail/{id} with the image only
func (c *Client) UpdateThumbnail(ctx context.Context, id string, thumbnail Upload) (*WriteResult, error) {
	var out WriteResult
	if err := c.doMultipart(ctx, http.MethodPatch, "/products/thumbnail/"+id, nil, &thumbnail, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProduct calls DELETE /products/{id}
func (c *Client) DeleteProduct(ctx context.Context, id string) (*WriteResult, error) {
	var out WriteResult
	if err := c.doJSON(ctx, http.MethodDelete, "/products/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// doJSON issues a request with an optional JSON body and decodes the response
func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(ctx, req, out)
}

// doMultipart issues a multipart/form-data request with text fields and an
// optional file part named "thumbnail"
func (c *Client) doMultipart(ctx context.Context, method, path string, fields [][2]string, file *Upload, out interface{}) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, field := range fields {
		if err := w.WriteField(field[0], field[1]); err != nil {
			return fmt.Errorf("failed to write field %s: %w", field[0], err)
		}
	}
	if file != nil {
		part, err := w.CreateFormFile("thumbnail", file.Filename)
		if err != nil {
			return fmt.Errorf("failed to create file part: %w", err)
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return fmt.Errorf("failed to read thumbnail: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	return c.do(ctx, req, out)
}

// do executes the request with auth headers and decodes the response
func (c *Client) do(ctx context.Context, req *http.Request, out interface{}) error {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.handleRequestError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.fireUnauthorized()
		return fmt.Errorf("authentication required")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.handleErrorResponse(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid response from backend: %w", err)
	}
	return nil
}

func (c *Client) fireUnauthorized() {
	c.mu.RLock()
	fn := c.onUnauthorized
	c.mu.RUnlock()
	if fn != nil {
		fn()
	}
}

// handleRequestError converts context errors to user-friendly messages
func (c *Client) handleRequestError(ctx context.Context, err error) error {
	if ctx.Err() == context.Canceled {
		return fmt.Errorf("request canceled")
	}
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("request timed out")
	}
	return fmt.Errorf("cannot connect to backend at %s: %w", c.baseURL, err)
}

// handleErrorResponse parses API error responses
func (c *Client) handleErrorResponse(resp *http.Response) error {
	var errResp ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
		return fmt.Errorf("backend returned status %d", resp.StatusCode)
	}
	msg := errResp.Message
	if msg == "" {
		msg = errResp.Error
	}
	if msg == "" {
		return fmt.Errorf("backend returned status %d", resp.StatusCode)
	}
	return fmt.Errorf("backend error: %s", msg)
}
