package backendapi

import (
	"PocketFormsBot/internal/domain/errorz"
	"PocketFormsBot/internal/domain/repository"
	"PocketFormsBot/internal/domain/schema"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// callTimeout bounds every backend request so a call can never outlive the
// flow that issued it by more than this.
const callTimeout = 15 * time.Second

// Client talks to the forms backend. No authentication is attached to
// requests; the API does not use tokens.
type Client struct {
	http    *http.Client
	baseURL string
}

var _ repository.FormsBackend = (*Client)(nil)

func New(baseURL string) *Client {
	return &Client{
		http:    &http.Client{Timeout: 30 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) Login(ctx context.Context, email, password string) (schema.User, error) {
	body, err := c.postJSON(ctx, "/api/login", credentials{Email: email, Password: password})
	if err != nil {
		return schema.User{}, err
	}
	return schema.User{Email: email, Raw: body}, nil
}

func (c *Client) Signup(ctx context.Context, email, password string) error {
	_, err := c.postJSON(ctx, "/api/signup", credentials{Email: email, Password: password})
	return err
}

func (c *Client) CreateForm(ctx context.Context, draft schema.FormDraft, images repository.ImageSource) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	body, contentType, err := encodeDraft(ctx, draft, images)
	if err != nil {
		return fmt.Errorf("encode form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/forms", body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("create form: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("create form: status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) ListForms(ctx context.Context) ([]schema.FormSummary, error) {
	data, err := c.get(ctx, "/api/forms")
	if err != nil {
		return nil, err
	}
	return decodeSummaries(data)
}

func (c *Client) GetForm(ctx context.Context, formID string) (schema.FormRecord, error) {
	data, err := c.get(ctx, "/api/forms/"+formID)
	if err != nil {
		return schema.FormRecord{}, err
	}
	return decodeRecord(data)
}

func (c *Client) SubmitResponse(ctx context.Context, formID string, answers map[string]string) error {
	payload := struct {
		FormID    string            `json:"formId"`
		Responses map[string]string `json:"responses"`
	}{FormID: formID, Responses: answers}
	_, err := c.postJSON(ctx, "/api/responses", payload)
	return err
}

func (c *Client) postJSON(ctx context.Context, path string, payload any) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("post %s: read body: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if reason := errorReason(body); reason != "" {
			return nil, &errorz.AuthError{Reason: reason}
		}
		return nil, fmt.Errorf("post %s: status %d", path, resp.StatusCode)
	}
	return body, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errorz.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("get %s: status %d", path, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// errorReason pulls the reason out of the backend's {error: "..."} bodies.
func errorReason(body []byte) string {
	var e struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err != nil {
		return ""
	}
	return e.Error
}
