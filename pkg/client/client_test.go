package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arnavshah/shift-board-api/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth_Online(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.Write([]byte(`{"ok":true,"name":"shift-board"}`))
	}))
	defer srv.Close()

	status, resp := New(srv.URL).Health(context.Background())
	assert.Equal(t, Online, status)
	assert.Equal(t, "shift-board", resp.Name)
}

func TestHealth_OfflineOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	status, _ := New(srv.URL).Health(context.Background())
	assert.Equal(t, Offline, status)
}

func TestHealth_OfflineOnConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	status, _ := New(url).Health(context.Background())
	assert.Equal(t, Offline, status)
}

func TestHealth_OfflineOnCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	status, _ := New(srv.URL).Health(ctx)
	assert.Equal(t, Offline, status)
}

func TestSetStatus_SendsBodyAndToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/requests/req-1/status", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Write([]byte(`{"id":"req-1","status":"approved"}`))
	}))
	defer srv.Close()

	c := New(srv.URL + "/")
	c.Token = "tok"
	req, err := c.SetStatus(context.Background(), "req-1", models.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, req.Status)
}

func TestPublish_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"coverage does not meet every slot minimum"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Publish(context.Background())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "coverage")
}
