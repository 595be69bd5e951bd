package ollama_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeltikHD/chameleon-vitae/internal/adapters/secondary/ollama"
)

func newTestServer(t *testing.T, reply string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/tags":
			w.WriteHeader(http.StatusOK)
		case "/api/chat":
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"message": map[string]string{"content": reply},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestEnhanceBulletReturnsTrimmedContent(t *testing.T) {
	server := newTestServer(t, "  Managed a Kafka platform at scale.  \n")
	defer server.Close()

	client := ollama.New(ollama.Config{BaseURL: server.URL, Model: "llama3.2:3b", MaxRetries: 1, Timeout: 5 * time.Second})

	text, err := client.EnhanceBullet(context.Background(), "Managed a messaging platform.", "Platform Engineer", []string{"kafka"})

	require.NoError(t, err)
	assert.Equal(t, "Managed a Kafka platform at scale.", text)
}

func TestGenerateSummaryReturnsContent(t *testing.T) {
	server := newTestServer(t, "Experienced platform engineer specializing in Kafka.")
	defer server.Close()

	client := ollama.New(ollama.Config{BaseURL: server.URL, MaxRetries: 1, Timeout: 5 * time.Second})

	summary, err := client.GenerateSummary(context.Background(), []string{"Built systems"}, []string{"Kafka"}, "Platform Engineer", []string{"kafka"})

	require.NoError(t, err)
	assert.Equal(t, "Experienced platform engineer specializing in Kafka.", summary)
}

func TestAvailableFalseWhenUnreachable(t *testing.T) {
	client := ollama.New(ollama.Config{BaseURL: "http://127.0.0.1:1", Timeout: time.Second})

	assert.False(t, client.Available(context.Background()))
}

func TestEnhanceBulletReturnsEmptyWhenUnavailable(t *testing.T) {
	client := ollama.New(ollama.Config{BaseURL: "http://127.0.0.1:1", Timeout: time.Second})

	text, err := client.EnhanceBullet(context.Background(), "Did work.", "Engineer", nil)

	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestNewAppliesDefaults(t *testing.T) {
	client := ollama.New(ollama.Config{})
	require.NotNil(t, client)
	assert.NoError(t, client.Close())
}
