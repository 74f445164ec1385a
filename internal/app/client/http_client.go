package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"golang.org/x/exp/slog"

	"safetrip/internal/app/client/config"
)

// ErrUnreachable wraps transport failures so callers can fall back to the
// offline cache.
var ErrUnreachable = errors.New("server unreachable")

// APIError is an error envelope returned by the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.StatusCode)
}

type httpClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	token     string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) *httpClient {
	return &httpClient{
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				IdleConnTimeout:     90 * time.Second,
				MaxIdleConnsPerHost: 4,
			},
		},
		log:       log.With("component", "http_client"),
		baseURL:   cfg.BaseURL(),
		userAgent: "SafeTrip-CLI/1.0",
	}
}

func (h *httpClient) SetToken(token string) {
	h.token = token
}

func (h *httpClient) HealthCheck(ctx context.Context) error {
	return h.call(ctx, http.MethodGet, "/api/v1/health", nil, nil)
}

func (h *httpClient) Register(ctx context.Context, req RegisterRequest) (int, error) {
	var out struct {
		UserID int `json:"user_id"`
	}
	if err := h.call(ctx, http.MethodPost, "/api/register", req, &out); err != nil {
		return 0, err
	}
	return out.UserID, nil
}

func (h *httpClient) Login(ctx context.Context, email, password string) (Session, error) {
	var out struct {
		User  Session `json:"user"`
		Token string  `json:"token"`
	}
	body := map[string]string{"email": email, "password": password}
	if err := h.call(ctx, http.MethodPost, "/api/login", body, &out); err != nil {
		return Session{}, err
	}
	out.User.Token = out.Token
	return out.User, nil
}

func (h *httpClient) Logout(ctx context.Context) error {
	return h.call(ctx, http.MethodPost, "/api/logout", nil, nil)
}

func (h *httpClient) ListLostFound(ctx context.Context) ([]byte, error) {
	return h.raw(ctx, http.MethodGet, "/api/lost-found-items", nil)
}

func (h *httpClient) AddLostFound(ctx context.Context, item NewLostFoundItem) (LostFoundItem, error) {
	var out struct {
		Data LostFoundItem `json:"data"`
	}
	err := h.call(ctx, http.MethodPost, "/api/add-lost-found-item", item, &out)
	return out.Data, err
}

func (h *httpClient) UpdateLostFound(ctx context.Context, upd LostFoundUpdate) (LostFoundItem, error) {
	var out struct {
		Data LostFoundItem `json:"data"`
	}
	err := h.call(ctx, http.MethodPost, "/api/update-lost-found-item", upd, &out)
	return out.Data, err
}

func (h *httpClient) DeleteLostFound(ctx context.Context, reportID int) error {
	return h.call(ctx, http.MethodPost, "/api/delete-lost-found-item", map[string]int{"report_id": reportID}, nil)
}

func (h *httpClient) ListLovedOnes(ctx context.Context, userID int) ([]byte, error) {
	return h.raw(ctx, http.MethodGet, "/api/loved_ones/"+strconv.Itoa(userID), nil)
}

func (h *httpClient) AddLovedOne(ctx context.Context, userID int, name, email string) ([]byte, error) {
	return h.raw(ctx, http.MethodPost, "/api/loved_ones/"+strconv.Itoa(userID),
		map[string]string{"name": name, "email": email})
}

func (h *httpClient) SendSOS(ctx context.Context, userID int, lat, lng float64) (SOSResult, error) {
	var out SOSResult
	body := map[string]float64{"latitude": lat, "longitude": lng}
	err := h.call(ctx, http.MethodPost, "/api/send-sos-alert/"+strconv.Itoa(userID), body, &out)
	return out, err
}

func (h *httpClient) GenerateTrip(ctx context.Context, req TripRequest) ([]byte, error) {
	return h.raw(ctx, http.MethodPost, "/api/generate-trip", req)
}

func (h *httpClient) TransportRoutes(ctx context.Context, source, destination string) ([]byte, error) {
	return h.raw(ctx, http.MethodPost, "/api/transport-routes",
		map[string]string{"source": source, "destination": destination})
}

func (h *httpClient) Suggestions(ctx context.Context, req SuggestionsRequest) ([]byte, error) {
	return h.raw(ctx, http.MethodPost, "/api/travel-suggestions", req)
}

func (h *httpClient) Translate(ctx context.Context, text, from, to string) (Translation, error) {
	var out Translation
	body := map[string]string{"sourceText": text, "sourceLang": from, "targetLang": to}
	err := h.call(ctx, http.MethodPost, "/api/translate", body, &out)
	return out, err
}

func (h *httpClient) LocationAlerts(ctx context.Context, location string) ([]byte, error) {
	return h.raw(ctx, http.MethodGet, "/api/alerts/location?location="+url.QueryEscape(location), nil)
}

func (h *httpClient) ListExpenses(ctx context.Context) ([]byte, error) {
	return h.raw(ctx, http.MethodGet, "/api/expenses", nil)
}

func (h *httpClient) AddExpense(ctx context.Context, e NewExpense) (Expense, error) {
	var out struct {
		Expense Expense `json:"expense"`
	}
	err := h.call(ctx, http.MethodPost, "/api/expenses", e, &out)
	return out.Expense, err
}

func (h *httpClient) DeleteExpense(ctx context.Context, id int) error {
	return h.call(ctx, http.MethodDelete, "/api/expenses/"+strconv.Itoa(id), nil, nil)
}

func (h *httpClient) ExpenseSummary(ctx context.Context) ([]ExpenseSummary, error) {
	var out struct {
		Summaries []ExpenseSummary `json:"summaries"`
	}
	err := h.call(ctx, http.MethodGet, "/api/expenses/summary", nil, &out)
	return out.Summaries, err
}

// call sends body as JSON and decodes a success reply into result.
func (h *httpClient) call(ctx context.Context, method, path string, body, result any) error {
	data, err := h.raw(ctx, method, path, body)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(data, result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// raw returns the success body untouched so it can be cached as is.
func (h *httpClient) raw(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", h.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	h.log.Debug("sending request", "method", method, "url", req.URL.String())

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	h.log.Debug("received response", "status", resp.StatusCode, "bytes", len(data))

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var envelope struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &envelope) == nil && envelope.Message != "" {
			apiErr.Message = envelope.Message
		}
		return nil, apiErr
	}

	return data, nil
}
