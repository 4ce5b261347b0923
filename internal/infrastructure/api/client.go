package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/yourusername/belle-tracker/internal/domain/entity"
)

// HeaderRequestID har bir so'rovga qo'shiladigan ID header
const HeaderRequestID = "X-Request-ID"

// Doer HTTP so'rov yuboruvchi (testlarda almashtiriladi)
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client dashboard backend uchun HTTP client
type Client struct {
	httpClient Doer
	paths      Paths
}

// NewClient yangi client yaratish. httpClient nil bo'lsa http.DefaultClient ishlatiladi.
func NewClient(baseURL string, httpClient Doer) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		paths:      NewPaths(baseURL),
	}
}

// Paths endpointlar
func (c *Client) Paths() Paths {
	return c.paths
}

// FetchProductInfo mahsulot ma'lumotini olish
func (c *Client) FetchProductInfo(ctx context.Context, productCode string) (*entity.ProductInfo, error) {
	resp, body, err := c.do(ctx, http.MethodGet, c.paths.Product(url.PathEscape(productCode)), nil, "")
	if err != nil {
		return nil, err
	}

	if isSuccess(resp.StatusCode) {
		var info entity.ProductInfo
		if err := json.Unmarshal(body, &info); err != nil {
			return nil, fmt.Errorf("failed to decode product info: %w", err)
		}
		return &info, nil
	}

	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusInternalServerError {
		var payload struct {
			Error *string `json:"error"`
		}
		if json.Unmarshal(body, &payload) == nil && payload.Error != nil {
			return nil, &ProductError{StatusCode: resp.StatusCode, Message: *payload.Error}
		}
	}

	return nil, &StatusError{StatusCode: resp.StatusCode, Body: body}
}

// ListTargets barcha targetlarni olish
func (c *Client) ListTargets(ctx context.Context) ([]entity.Target, error) {
	resp, body, err := c.do(ctx, http.MethodGet, c.paths.GetTargets, nil, "")
	if err != nil {
		return nil, err
	}
	if !isSuccess(resp.StatusCode) {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: body}
	}

	targets := []entity.Target{}
	if err := json.Unmarshal(body, &targets); err != nil {
		return nil, fmt.Errorf("failed to decode targets: %w", err)
	}
	// backend bo'sh ro'yxat uchun null yuboradi
	if targets == nil {
		targets = []entity.Target{}
	}
	return targets, nil
}

// AddTarget multipart form (colour, size, price) bilan target yaratish
func (c *Client) AddTarget(ctx context.Context, req entity.TargetRequest) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fields := [][2]string{
		{"colour", req.Colour},
		{"size", req.Size},
		{"price", strconv.FormatUint(uint64(req.Price), 10)},
	}
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return fmt.Errorf("failed to write form field %s: %w", f[0], err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close form: %w", err)
	}

	resp, body, err := c.do(ctx, http.MethodPost, c.paths.Add(url.PathEscape(req.ProductCode)), &buf, w.FormDataContentType())
	if err != nil {
		return err
	}
	if !isSuccess(resp.StatusCode) {
		return &StatusError{StatusCode: resp.StatusCode, Body: body}
	}
	return nil
}

// DeleteTarget targetni o'chirish
func (c *Client) DeleteTarget(ctx context.Context, id uint) error {
	resp, body, err := c.do(ctx, http.MethodDelete, c.paths.Delete(id), nil, "")
	if err != nil {
		return err
	}
	if !isSuccess(resp.StatusCode) {
		return &StatusError{StatusCode: resp.StatusCode, Body: body}
	}
	return nil
}

// do so'rov yuborib, javob tanasini to'liq o'qiydi.
// Transport xatoligi o'zgarishsiz qaytariladi.
func (c *Client) do(ctx context.Context, method, target string, body io.Reader, contentType string) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderRequestID, uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}
	return resp, data, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
