package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"careops-cli/internal/model"
)

// Client is a thin gateway to the CareOps backend: one method per backend
// operation, exactly one request per call. No retries, no caching, no
// response transformation beyond JSON decoding.
//
// Authenticated calls set an Authorization bearer header and also pass the
// token as a query parameter, which is where the backend actually reads it.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

type WorkspaceCreateRequest struct {
	Name         string `json:"name"`
	Address      string `json:"address,omitempty"`
	Timezone     string `json:"timezone"`
	ContactEmail string `json:"contact_email"`
}

type ContactCreateRequest struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type BookingCreateRequest struct {
	BookingType     string    `json:"booking_type"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	DurationMinutes int       `json:"duration_minutes"`
	Location        string    `json:"location,omitempty"`
	Notes           string    `json:"notes,omitempty"`
}

type MessageSendRequest struct {
	Content    string `json:"content"`
	SenderType string `json:"sender_type"`
	Channel    string `json:"channel"`
}

// SendReceipt is the backend's acknowledgement for a sent message.
type SendReceipt struct {
	Status    string `json:"status"`
	MessageID int    `json:"message_id"`
}

type statusReply struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*model.User, error) {
	var out model.User
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*model.Token, error) {
	body := map[string]string{"email": email, "password": password}
	var out model.Token
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, "", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) VerifySMS(ctx context.Context, email, code string) error {
	q := url.Values{"email": []string{email}}
	body := map[string]string{"code": code}
	return c.do(ctx, http.MethodPost, "/auth/verify-sms", q, "", body, &statusReply{})
}

func (c *Client) ResendSMS(ctx context.Context, email string) error {
	q := url.Values{"email": []string{email}}
	return c.do(ctx, http.MethodPost, "/auth/resend-sms", q, "", struct{}{}, &statusReply{})
}

func (c *Client) Me(ctx context.Context, token string) (*model.User, error) {
	var out model.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateWorkspace(ctx context.Context, token string, req WorkspaceCreateRequest) (*model.Workspace, error) {
	var out model.Workspace
	if err := c.do(ctx, http.MethodPost, "/workspace/create", nil, token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListWorkspaces(ctx context.Context, token string) ([]model.Workspace, error) {
	var out []model.Workspace
	if err := c.do(ctx, http.MethodGet, "/workspace/list", nil, token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetWorkspace(ctx context.Context, token string, workspaceID int) (*model.Workspace, error) {
	var out model.Workspace
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/workspace/%d", workspaceID), nil, token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ActivateWorkspace(ctx context.Context, token string, workspaceID int) error {
	path := fmt.Sprintf("/workspace/%d/activate", workspaceID)
	return c.do(ctx, http.MethodPost, path, nil, token, struct{}{}, nil)
}

func (c *Client) CreateContact(ctx context.Context, token string, workspaceID int, req ContactCreateRequest) (*model.Contact, error) {
	path := fmt.Sprintf("/contacts/%d/create", workspaceID)
	var out model.Contact
	if err := c.do(ctx, http.MethodPost, path, nil, token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListContacts(ctx context.Context, token string, workspaceID int) ([]model.Contact, error) {
	path := fmt.Sprintf("/contacts/%d/list", workspaceID)
	var out []model.Contact
	if err := c.do(ctx, http.MethodGet, path, nil, token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateBooking(ctx context.Context, token string, workspaceID, contactID int, req BookingCreateRequest) (*model.Booking, error) {
	path := fmt.Sprintf("/bookings/%d/%d/create", workspaceID, contactID)
	var out model.Booking
	if err := c.do(ctx, http.MethodPost, path, nil, token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListBookings(ctx context.Context, token string, workspaceID int) ([]model.Booking, error) {
	path := fmt.Sprintf("/bookings/%d/list", workspaceID)
	var out []model.Booking
	if err := c.do(ctx, http.MethodGet, path, nil, token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Dashboard(ctx context.Context, token string, workspaceID int) (*model.DashboardSnapshot, error) {
	path := fmt.Sprintf("/dashboard/%d", workspaceID)
	var out model.DashboardSnapshot
	if err := c.do(ctx, http.MethodGet, path, nil, token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListConversations(ctx context.Context, token string, workspaceID int) ([]model.Conversation, error) {
	path := fmt.Sprintf("/inbox/%d/conversations", workspaceID)
	var out []model.Conversation
	if err := c.do(ctx, http.MethodGet, path, nil, token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetConversation(ctx context.Context, token string, workspaceID, conversationID int) (*model.Conversation, error) {
	path := fmt.Sprintf("/inbox/%d/conversations/%d", workspaceID, conversationID)
	var out model.Conversation
	if err := c.do(ctx, http.MethodGet, path, nil, token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SendMessage(ctx context.Context, token string, workspaceID, conversationID int, req MessageSendRequest) (*SendReceipt, error) {
	path := fmt.Sprintf("/inbox/%d/conversations/%d/send", workspaceID, conversationID)
	var out SendReceipt
	if err := c.do(ctx, http.MethodPost, path, nil, token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, token string, body, out any) error {
	u := c.BaseURL + path
	if query == nil {
		query = url.Values{}
	}
	if token != "" {
		query.Set("token", token)
	}
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		return decodeError(resp.StatusCode, data)
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, out)
}

func decodeError(status int, data []byte) error {
	var payload struct {
		Detail string `json:"detail"`
	}
	_ = json.Unmarshal(data, &payload)
	return &APIError{StatusCode: status, Detail: strings.TrimSpace(payload.Detail)}
}
