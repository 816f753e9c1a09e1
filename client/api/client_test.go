package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asset-system/internal/dto"
	"asset-system/internal/entities"
	"asset-system/pkg/types"
	"asset-system/pkg/utils"
)

func writeEnvelope(t *testing.T, w http.ResponseWriter, code int, body any, total ...uint64) {
	t.Helper()
	resp := utils.HttpResponse{Status: code < http.StatusBadRequest, Body: body, Message: "ok"}
	if len(total) > 0 {
		resp.Total = &total[0]
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	require.NoError(t, json.NewEncoder(w).Encode(resp))
}

func TestClientSignInStoresToken(t *testing.T) {
	userID := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			var payload dto.LoginDTO
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "admin@admin.com", payload.Email)
			writeEnvelope(t, w, http.StatusOK, dto.LoginResponseDTO{
				Tokens: dto.TokenPairDTO{AccessToken: "access-token", RefreshToken: "refresh-token"},
				User:   entities.Profile{ID: userID, Email: payload.Email},
			})
		case "/api/equipments":
			assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))
			writeEnvelope(t, w, http.StatusOK, []entities.Equipment{}, 0)
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL)

	identity, err := c.SignIn(context.Background(), "admin@admin.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, userID, identity.ID)

	_, err = c.ListEquipments(context.Background())
	require.NoError(t, err)
}

func TestClientSurfacesBackendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := utils.HttpResponse{Status: false, Message: "Credenciais inválidas"}
		w.WriteHeader(http.StatusUnauthorized)
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.SignIn(context.Background(), "x@y.com", "bad")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Credenciais inválidas")
}

func TestClientCreateSupportTicketDecodesBody(t *testing.T) {
	ticketID := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/support-tickets", r.URL.Path)

		var payload dto.CreateSupportTicketDTO
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		writeEnvelope(t, w, http.StatusCreated, entities.SupportTicket{
			ID:       ticketID,
			Title:    payload.Title,
			Status:   entities.TicketStatusPending,
			Priority: entities.PriorityMedium,
			Category: payload.Category,
			BaseEntity: types.BaseEntity{
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	created, err := c.CreateSupportTicket(context.Background(), dto.CreateSupportTicketDTO{
		Title:    "Printer jam",
		Category: "Hardware",
	})

	require.NoError(t, err)
	assert.Equal(t, ticketID, created.ID)
	assert.Equal(t, entities.TicketStatusPending, created.Status)
}

func TestClientDeleteEquipmentPropagatesNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		resp := utils.HttpResponse{Status: false, Message: "record not found"}
		w.WriteHeader(http.StatusNotFound)
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.DeleteEquipment(context.Background(), uuid.New())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "record not found")
}

func TestClientSignOutClearsToken(t *testing.T) {
	c := NewClient("http://unused")
	c.setTokens("a", "r")

	require.NoError(t, c.SignOut(context.Background()))
	assert.Empty(t, c.token())
}
