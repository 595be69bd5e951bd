package http

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SeltikHD/chameleon-vitae/internal/core/domain/tailor"
	"github.com/SeltikHD/chameleon-vitae/internal/core/orchestrator"
	"github.com/SeltikHD/chameleon-vitae/internal/core/ports"
)

type fakeTailorGateway struct {
	variants map[string]ports.TailoringVariant
}

func newFakeTailorGateway() *fakeTailorGateway {
	return &fakeTailorGateway{variants: make(map[string]ports.TailoringVariant)}
}

func (g *fakeTailorGateway) SaveVariant(ctx context.Context, v ports.TailoringVariant) (string, error) {
	g.variants[v.ID] = v
	return v.ID, nil
}

func (g *fakeTailorGateway) GetVariant(ctx context.Context, id string) (*ports.TailoringVariant, error) {
	v, ok := g.variants[id]
	if !ok {
		return nil, tailor.ErrVariantNotFound
	}
	return &v, nil
}

func (g *fakeTailorGateway) ListVariants(ctx context.Context, userID string) ([]ports.TailoringVariant, error) {
	var out []ports.TailoringVariant
	for _, v := range g.variants {
		if v.UserID == userID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (g *fakeTailorGateway) DeleteVariant(ctx context.Context, id string) error {
	delete(g.variants, id)
	return nil
}

type fakeTailorStorage struct {
	files map[string]string
}

func (s *fakeTailorStorage) Upload(ctx context.Context, req ports.UploadRequest) (*ports.UploadResult, error) {
	return &ports.UploadResult{Key: req.Key}, nil
}

func (s *fakeTailorStorage) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	content, ok := s.files[key]
	if !ok {
		return nil, tailor.ErrVariantNotFound
	}
	return io.NopCloser(strings.NewReader(content)), nil
}

func (s *fakeTailorStorage) Delete(ctx context.Context, key string) error { return nil }
func (s *fakeTailorStorage) GetURL(ctx context.Context, key string) (string, error) {
	return "file://" + key, nil
}
func (s *fakeTailorStorage) Close() error { return nil }

func TestTailorHandlerStartRequiresAuthentication(t *testing.T) {
	orch := orchestrator.New(nil, nil, nil, nil, nil, 2026)
	handler := NewTailorHandler(orch, nil, nil)

	req := newJSONRequest(t, http.MethodPost, "/v1/generate/start", StartGenerationRequest{JobTitle: "Engineer"})
	rr := executeRequest(t, req, handler.Start)

	assertStatusCode(t, http.StatusUnauthorized, rr)
}

func TestTailorHandlerStartRejectsInvalidRequest(t *testing.T) {
	orch := orchestrator.New(nil, nil, nil, nil, nil, 2026)
	handler := NewTailorHandler(orch, nil, nil)

	req := newJSONRequest(t, http.MethodPost, "/v1/generate/start", StartGenerationRequest{})
	req = req.WithContext(setupTestContext("user-1", "fb-1", "user@example.com"))

	rr := executeRequest(t, req, handler.Start)

	assertStatusCode(t, http.StatusBadRequest, rr)
}

func TestTailorHandlerStartQueuesTask(t *testing.T) {
	orch := orchestrator.New(nil, nil, nil, newFakeTailorStorage(t), newFakeTailorGateway(), 2026)
	handler := NewTailorHandler(orch, newFakeTailorGateway(), newFakeTailorStorage(t))

	body := StartGenerationRequest{
		ResumeSource:   sampleTailorResume,
		JobTitle:       "Platform Engineer",
		JobDescription: "Looking for Kafka and Kubernetes experience.",
	}
	req := newJSONRequest(t, http.MethodPost, "/v1/generate/start", body)
	req = req.WithContext(setupTestContext("user-1", "fb-1", "user@example.com"))

	rr := executeRequest(t, req, handler.Start)

	assertStatusCode(t, http.StatusAccepted, rr)

	var resp StartGenerationResponse
	parseJSONResponse(t, rr, &resp)
	assert.NotEmpty(t, resp.TaskID)
}

func TestTailorHandlerStatusReturnsNotFoundForUnknownTask(t *testing.T) {
	orch := orchestrator.New(nil, nil, nil, nil, nil, 2026)
	handler := NewTailorHandler(orch, nil, nil)

	req := newRequestWithChiContext(t, http.MethodGet, "/v1/generate/status/does-not-exist", map[string]string{"taskID": "does-not-exist"}, nil)
	req = req.WithContext(setupTestContext("user-1", "fb-1", "user@example.com"))

	rr := executeRequest(t, req, handler.Status)

	assertStatusCode(t, http.StatusNotFound, rr)
}

func TestTailorHandlerGetVariantEnforcesOwnership(t *testing.T) {
	gateway := newFakeTailorGateway()
	_, _ = gateway.SaveVariant(context.Background(), ports.TailoringVariant{ID: "v1", UserID: "owner"})

	orch := orchestrator.New(nil, nil, nil, nil, nil, 2026)
	handler := NewTailorHandler(orch, gateway, nil)

	req := newRequestWithChiContext(t, http.MethodGet, "/v1/variants/v1", map[string]string{"variantID": "v1"}, nil)
	req = req.WithContext(setupTestContext("someone-else", "fb-2", "other@example.com"))

	rr := executeRequest(t, req, handler.Get)

	assertStatusCode(t, http.StatusNotFound, rr)
}

func TestTailorHandlerGetVariantReturnsOwnedVariant(t *testing.T) {
	gateway := newFakeTailorGateway()
	_, _ = gateway.SaveVariant(context.Background(), ports.TailoringVariant{
		ID: "v1", UserID: "owner", JobTitle: "Platform Engineer", OutputFilename: "v1.tex",
	})

	orch := orchestrator.New(nil, nil, nil, nil, nil, 2026)
	handler := NewTailorHandler(orch, gateway, nil)

	req := newRequestWithChiContext(t, http.MethodGet, "/v1/variants/v1", map[string]string{"variantID": "v1"}, nil)
	req = req.WithContext(setupTestContext("owner", "fb-1", "owner@example.com"))

	rr := executeRequest(t, req, handler.Get)

	assertStatusCode(t, http.StatusOK, rr)
	var resp VariantResponse
	parseJSONResponse(t, rr, &resp)
	assert.Equal(t, "v1", resp.ID)
	assert.Equal(t, "Platform Engineer", resp.JobTitle)
}

func TestTailorHandlerListReturnsEmptyWhenGatewayNil(t *testing.T) {
	orch := orchestrator.New(nil, nil, nil, nil, nil, 2026)
	handler := NewTailorHandler(orch, nil, nil)

	req := newJSONRequest(t, http.MethodGet, "/v1/variants", nil)
	req = req.WithContext(setupTestContext("user-1", "fb-1", "user@example.com"))

	rr := executeRequest(t, req, handler.List)

	assertStatusCode(t, http.StatusOK, rr)
	var resp ListVariantsResponse
	parseJSONResponse(t, rr, &resp)
	assert.Empty(t, resp.Data)
}

const sampleTailorResume = `
\section{Experience}
\resumeSubheading{Engineer}{2020 -- Present}{Acme}{Remote}
\resumeItem{Built a Kafka platform serving 2B events per day.}
`

func newFakeTailorStorage(t *testing.T) *fakeTailorStorage {
	t.Helper()
	return &fakeTailorStorage{files: make(map[string]string)}
}
