package messaging

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	appordering "github.com/petalia/backend/internal/application/ordering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, "test-token", 5*time.Second, zap.NewNop()), server
}

func TestClient_SendText(t *testing.T) {
	t.Run("submits text and returns bridge result", func(t *testing.T) {
		var captured sendRequest
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/messages/text", r.URL.Path)
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

			json.NewEncoder(w).Encode(sendResponse{
				ID:        "msg-1",
				SessionID: "sess-1",
				Status:    "SENT",
			})
		})

		resp, err := client.SendText(context.Background(), "5511999990000@s.whatsapp.net", "Olá!")

		require.NoError(t, err)
		assert.Equal(t, "msg-1", resp.ID)
		assert.Equal(t, "sess-1", resp.SessionID)
		assert.Equal(t, "5511999990000@s.whatsapp.net", captured.To)
		assert.Equal(t, "Olá!", captured.Text)
	})

	t.Run("rejects response without message id", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(sendResponse{Status: "SENT"})
		})

		resp, err := client.SendText(context.Background(), "5511999990000@s.whatsapp.net", "Olá!")

		assert.Nil(t, resp)
		assert.Error(t, err)
	})

	t.Run("surfaces HTTP errors from the bridge", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		resp, err := client.SendText(context.Background(), "5511999990000@s.whatsapp.net", "Olá!")

		assert.Nil(t, resp)
		assert.ErrorContains(t, err, "HTTP 502")
	})
}

func TestClient_SendTemplate(t *testing.T) {
	t.Run("routes templates to the template endpoint", func(t *testing.T) {
		var captured sendRequest
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/messages/template", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

			json.NewEncoder(w).Encode(sendResponse{ID: "msg-2", Status: "QUEUED"})
		})

		resp, err := client.SendTemplate(context.Background(), "5511999990000@s.whatsapp.net",
			"novo_painel", map[string]string{"pedido": "PED-1001"})

		require.NoError(t, err)
		assert.Equal(t, "QUEUED", resp.Status)
		assert.Equal(t, "novo_painel", captured.Template)
		assert.Equal(t, "PED-1001", captured.Params["pedido"])
	})
}

func TestClient_CancelMessage(t *testing.T) {
	t.Run("deletes the queued message", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/messages/msg-1", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		})

		err := client.CancelMessage(context.Background(), "msg-1")

		assert.NoError(t, err)
	})
}

func TestClient_ListMessages(t *testing.T) {
	t.Run("lists session messages", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/sessions/sess-1/messages", r.URL.Path)
			json.NewEncoder(w).Encode([]sessionMessagePayload{
				{ID: "msg-1", Direction: "OUT", Text: "Olá!"},
				{ID: "msg-2", Direction: "IN", Text: "Oi, quero sim"},
			})
		})

		messages, err := client.ListMessages(context.Background(), "sess-1")

		require.NoError(t, err)
		require.Len(t, messages, 2)
		assert.Equal(t, "IN", messages[1].Direction)
	})
}

func TestNotifier_SendText(t *testing.T) {
	t.Run("maps bridge status to delivery status", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(sendResponse{ID: "msg-1", SessionID: "sess-1", Status: "DELIVERED"})
		})
		notifier := NewNotifier(client)

		result, err := notifier.SendText(context.Background(), "5511999990000@s.whatsapp.net", "Olá!")

		require.NoError(t, err)
		assert.Equal(t, appordering.DeliveryStatusDelivered, result.Status)
		assert.True(t, result.Status.Reached())
	})
}

func TestMessenger_ListSessions(t *testing.T) {
	t.Run("maps sessions for the conversion workflow", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/sessions", r.URL.Path)
			assert.Equal(t, "+5511988887777", r.URL.Query().Get("phone"))
			json.NewEncoder(w).Encode([]sessionPayload{{ID: "sess-1", Phone: "+5511988887777"}})
		})
		messenger := NewMessenger(client)

		sessions, err := messenger.ListSessions(context.Background(), "+5511988887777")

		require.NoError(t, err)
		require.Len(t, sessions, 1)
		assert.Equal(t, "sess-1", sessions[0].ID)
	})
}
