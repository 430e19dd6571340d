package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk-portal/internal/config"
	"github.com/spec-kit/helpdesk-portal/pkg/errs"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := NewClient(
		config.BackendConfig{BaseURL: server.URL, TimeoutSeconds: 5},
		config.RegisterConfig{MaxRetries: 3, RetryDelaySeconds: 0},
	)
	return client, server
}

func TestUnauthorizedBecomesAuthExpired(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := client.ListTickets(context.Background(), "stale-token", true)
	require.Error(t, err)
	assert.True(t, errs.IsAuthExpired(err))

	var apiErr *errs.APIError
	assert.NotErrorAs(t, err, &apiErr)
}

func TestFailureMessageFromBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message": "subcategory does not exist"}`))
	}))

	_, err := client.GetTicketDetails(context.Background(), "token", "t-1")
	var apiErr *errs.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "subcategory does not exist", apiErr.Message)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
}

func TestFailureWithoutBodyFallsBackToStatusText(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := client.GetTicketDetails(context.Background(), "token", "missing")
	var apiErr *errs.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Not Found", apiErr.Message)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"status": "success", "tickets": []}`))
	}))

	_, err := client.ListTickets(context.Background(), "my-token", true)
	require.NoError(t, err)
	assert.Equal(t, "Bearer my-token", gotAuth)
}

func TestListTicketsAsUserFlag(t *testing.T) {
	var gotAsUser string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAsUser = r.URL.Query().Get("as_user")
		_, _ = w.Write([]byte(`{"status": "success", "tickets": []}`))
	}))

	_, err := client.ListTickets(context.Background(), "token", true)
	require.NoError(t, err)
	assert.Equal(t, "true", gotAsUser)

	_, err = client.ListTickets(context.Background(), "token", false)
	require.NoError(t, err)
	assert.Equal(t, "false", gotAsUser)
}

func TestCreateTicketSendsMultipartFields(t *testing.T) {
	var fields map[string]string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		fields = map[string]string{
			"title":           r.FormValue("title"),
			"subcategory_id":  r.FormValue("subcategory_id"),
			"initial_message": r.FormValue("initial_message"),
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "success",
			"ticket": map[string]any{
				"id":    "t-1",
				"title": r.FormValue("title"),
				"subcategory": map[string]any{
					"id":   r.FormValue("subcategory_id"),
					"name": "email",
				},
				"ticket_status":     "OPEN",
				"resolution_status": "UNRESOLVED",
			},
		})
	}))

	ticket, err := client.CreateTicket(context.Background(), "token", CreateTicketInput{
		Title:          "Cannot log in",
		SubcategoryID:  "sub-9",
		InitialMessage: "It says invalid credentials.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Cannot log in", ticket.Title)
	assert.Equal(t, "sub-9", ticket.Subcategory.ID)
	assert.Equal(t, map[string]string{
		"title":           "Cannot log in",
		"subcategory_id":  "sub-9",
		"initial_message": "It says invalid credentials.",
	}, fields)
}

func TestCreateTicketValidatesInput(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("backend must not be called")
	}))

	_, err := client.CreateTicket(context.Background(), "token", CreateTicketInput{Title: "no subcategory"})
	var valErr *errs.ValidationError
	assert.ErrorAs(t, err, &valErr)
}

func TestUpdateTicketStatusRequiresAFlag(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("backend must not be called")
	}))

	err := client.UpdateTicketStatus(context.Background(), "token", "t-1", nil, nil)
	var valErr *errs.ValidationError
	assert.ErrorAs(t, err, &valErr)
}

func TestUpdateTicketStatusSendsFlags(t *testing.T) {
	var fields map[string]string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		fields = map[string]string{}
		for key := range r.MultipartForm.Value {
			fields[key] = r.FormValue(key)
		}
		_, _ = w.Write([]byte(`{"status": "success"}`))
	}))

	open := false
	require.NoError(t, client.UpdateTicketStatus(context.Background(), "token", "t-1", &open, nil))
	assert.Equal(t, map[string]string{"open": "false"}, fields)

	resolved := true
	require.NoError(t, client.UpdateTicketStatus(context.Background(), "token", "t-1", nil, &resolved))
	assert.Equal(t, map[string]string{"resolved": "true"}, fields)
}

func TestUpdateTicketFieldRejectsUnknownField(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("backend must not be called")
	}))

	err := client.UpdateTicketField(context.Background(), "token", "t-1", TicketField("priority"), "high")
	var valErr *errs.ValidationError
	assert.ErrorAs(t, err, &valErr)
}

func TestCreateStaffRequiresExactlyOneIdentifier(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("backend must not be called")
	}))

	_, err := client.CreateStaff(context.Background(), "token", CreateStaffInput{})
	var valErr *errs.ValidationError
	assert.ErrorAs(t, err, &valErr)

	_, err = client.CreateStaff(context.Background(), "token", CreateStaffInput{
		Email:  "staff@example.com",
		UserID: "user-1",
	})
	assert.ErrorAs(t, err, &valErr)
}

func TestRoundTripCreateAndFetch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/me/create", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "success",
			"ticket": map[string]any{"id": "t-42", "title": r.FormValue("title"), "ticket_status": "OPEN", "resolution_status": "UNRESOLVED"},
		})
	})
	mux.HandleFunc("/tickets/t-42", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "success",
			"ticket": map[string]any{
				"id":    "t-42",
				"title": "Broken projector",
				"subcategory": map[string]any{
					"id":       "sub-3",
					"name":     "hardware",
					"category": map[string]any{"id": "cat-1", "name": "facilities"},
				},
				"ticket_status":     "OPEN",
				"resolution_status": "UNRESOLVED",
			},
		})
	})
	mux.HandleFunc("/tickets/t-42/messages", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "success",
			"messages": []map[string]any{
				{"id": "m-1", "type": "USER", "content": "The projector in AB-1 is dead.", "author": map[string]any{"id": "user-1", "name": "Ada"}},
			},
		})
	})
	client, _ := newTestClient(t, mux)

	ctx := context.Background()
	ticket, err := client.CreateTicket(ctx, "token", CreateTicketInput{
		Title:          "Broken projector",
		SubcategoryID:  "sub-3",
		InitialMessage: "The projector in AB-1 is dead.",
	})
	require.NoError(t, err)
	assert.Equal(t, "t-42", ticket.ID)

	details, err := client.GetTicketDetails(ctx, "token", ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, "Broken projector", details.Title)
	assert.Equal(t, "sub-3", details.Subcategory.ID)
	assert.True(t, details.Consistent())

	messages, err := client.GetTicketMessages(ctx, "token", ticket.ID)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "The projector in AB-1 is dead.", messages[0].Content)
}
