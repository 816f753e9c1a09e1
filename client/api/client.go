package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"asset-system/client/session"
	"asset-system/internal/dto"
	"asset-system/internal/entities"
)

// Client is the HTTP implementation of the backend collection and auth
// contracts the stores and the session manager depend on.
type Client struct {
	endpoint   string
	httpClient *http.Client

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
}

func NewClient(endpoint string) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{},
	}
}

// envelope is the backend's response wrapper.
type envelope struct {
	Status  bool            `json:"status"`
	Body    json.RawMessage `json:"body,omitempty"`
	Message string          `json:"message"`
	Total   *uint64         `json:"total,omitempty"`
}

func (c *Client) token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

func (c *Client) setTokens(access, refresh string) {
	c.mu.Lock()
	c.accessToken = access
	c.refreshToken = refresh
	c.mu.Unlock()
}

// do issues the request and decodes the envelope body into out when the call
// succeeds. A failed call surfaces the backend-provided message.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, &buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest || !env.Status {
		if env.Message != "" {
			return fmt.Errorf("%s", env.Message)
		}
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}
	if out != nil && env.Body != nil {
		return json.Unmarshal(env.Body, out)
	}
	return nil
}

func identityFromProfile(p entities.Profile) *session.Identity {
	identity := &session.Identity{ID: p.ID, Email: p.Email}
	if p.FullName != nil {
		identity.FullName = *p.FullName
	}
	return identity
}

// --- auth contract ---

func (c *Client) SignIn(ctx context.Context, email, password string) (*session.Identity, error) {
	var out dto.LoginResponseDTO
	payload := dto.LoginDTO{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", payload, &out); err != nil {
		return nil, err
	}
	c.setTokens(out.Tokens.AccessToken, out.Tokens.RefreshToken)
	return identityFromProfile(out.User), nil
}

func (c *Client) SignUp(ctx context.Context, email, password, fullName string) (*session.Identity, error) {
	var out dto.LoginResponseDTO
	payload := dto.SignUpDTO{Email: email, Password: password, FullName: fullName}
	if err := c.do(ctx, http.MethodPost, "/api/auth/signup", payload, &out); err != nil {
		return nil, err
	}
	c.setTokens(out.Tokens.AccessToken, out.Tokens.RefreshToken)
	return identityFromProfile(out.User), nil
}

// SignOut discards the local tokens. Access tokens are stateless, so no
// backend call is needed.
func (c *Client) SignOut(ctx context.Context) error {
	c.setTokens("", "")
	return nil
}

func (c *Client) Refresh(ctx context.Context) error {
	c.mu.RLock()
	refresh := c.refreshToken
	c.mu.RUnlock()

	var out dto.TokenPairDTO
	payload := dto.RefreshDTO{RefreshToken: refresh}
	if err := c.do(ctx, http.MethodPost, "/api/auth/refresh", payload, &out); err != nil {
		return err
	}
	c.setTokens(out.AccessToken, out.RefreshToken)
	return nil
}

func (c *Client) Me(ctx context.Context) (*session.Identity, error) {
	var out entities.Profile
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return identityFromProfile(out), nil
}

// --- equipment collection ---

func (c *Client) ListEquipments(ctx context.Context) ([]entities.Equipment, error) {
	var out []entities.Equipment
	err := c.do(ctx, http.MethodGet, "/api/equipments", nil, &out)
	return out, err
}

func (c *Client) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	var out entities.Equipment
	if err := c.do(ctx, http.MethodPost, "/api/equipments", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateEquipment(ctx context.Context, id uuid.UUID, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	var out entities.Equipment
	if err := c.do(ctx, http.MethodPut, "/api/equipments/"+id.String(), payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteEquipment(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/equipments/"+id.String(), nil, nil)
}

// --- support-ticket collection ---

func (c *Client) ListSupportTickets(ctx context.Context) ([]entities.SupportTicket, error) {
	var out []entities.SupportTicket
	err := c.do(ctx, http.MethodGet, "/api/support-tickets", nil, &out)
	return out, err
}

func (c *Client) CreateSupportTicket(ctx context.Context, payload dto.CreateSupportTicketDTO) (*entities.SupportTicket, error) {
	var out entities.SupportTicket
	if err := c.do(ctx, http.MethodPost, "/api/support-tickets", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateSupportTicket(ctx context.Context, id uuid.UUID, payload dto.UpdateSupportTicketDTO) (*entities.SupportTicket, error) {
	var out entities.SupportTicket
	if err := c.do(ctx, http.MethodPut, "/api/support-tickets/"+id.String(), payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetTicketLogs(ctx context.Context, id uuid.UUID) ([]entities.ChangeLogEntry, error) {
	var out []entities.ChangeLogEntry
	err := c.do(ctx, http.MethodGet, "/api/support-tickets/"+id.String()+"/logs", nil, &out)
	return out, err
}

// --- maintenance collection ---

func (c *Client) ListMaintenances(ctx context.Context) ([]entities.Maintenance, error) {
	var out []entities.Maintenance
	err := c.do(ctx, http.MethodGet, "/api/maintenances", nil, &out)
	return out, err
}

func (c *Client) CreateMaintenance(ctx context.Context, payload dto.CreateMaintenanceDTO) (*entities.Maintenance, error) {
	var out entities.Maintenance
	if err := c.do(ctx, http.MethodPost, "/api/maintenances", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateMaintenance(ctx context.Context, id uuid.UUID, payload dto.UpdateMaintenanceDTO) (*entities.Maintenance, error) {
	var out entities.Maintenance
	if err := c.do(ctx, http.MethodPut, "/api/maintenances/"+id.String(), payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetMaintenanceLogs(ctx context.Context, id uuid.UUID) ([]entities.ChangeLogEntry, error) {
	var out []entities.ChangeLogEntry
	err := c.do(ctx, http.MethodGet, "/api/maintenances/"+id.String()+"/logs", nil, &out)
	return out, err
}

// --- admin-only ---

func (c *Client) ListUsers(ctx context.Context) ([]entities.Profile, error) {
	var out []entities.Profile
	err := c.do(ctx, http.MethodGet, "/api/users", nil, &out)
	return out, err
}
