package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasAccess_UnsetURLDenies(t *testing.T) {
	log, hook := test.NewNullLogger()
	client := NewClient("", log)

	assert.False(t, client.HasAccess(context.Background(), "test-token"))
	require.NotNil(t, hook.LastEntry())
	assert.Contains(t, hook.LastEntry().Message, "AUTH_SERVICE_URL")
}

func TestHasAccess_GrantedOn200(t *testing.T) {
	var received accessCheckRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	log, _ := test.NewNullLogger()
	client := NewClient(server.URL, log)

	assert.True(t, client.HasAccess(context.Background(), "test-token"))
	assert.Equal(t, "test-token", received.Token)
	assert.Equal(t, "createSmtpServer", received.RightName)
}

func TestHasAccess_DeniedOn403(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	log, _ := test.NewNullLogger()
	client := NewClient(server.URL, log)

	assert.False(t, client.HasAccess(context.Background(), "test-token"))
}

func TestHasAccess_DeniedOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	log, hook := test.NewNullLogger()
	client := NewClient(server.URL, log)

	assert.False(t, client.HasAccess(context.Background(), "test-token"))
	require.NotNil(t, hook.LastEntry())
	assert.Contains(t, hook.LastEntry().Message, "Unexpected status 500")
}

func TestHasAccess_DeniedOnUnreachableService(t *testing.T) {
	log, _ := test.NewNullLogger()
	client := NewClient("http://127.0.0.1:1", log)

	assert.False(t, client.HasAccess(context.Background(), "test-token"))
}
