package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apexshade/playbook/internal/api/handlers"
	"github.com/apexshade/playbook/internal/api/routes"
	"github.com/apexshade/playbook/internal/models"
	"github.com/apexshade/playbook/internal/services"
	"github.com/apexshade/playbook/internal/utils"
	"github.com/sirupsen/logrus"
)

const (
	testAdminPassword = "let-me-in"
	testJWTSecret     = "test-jwt-secret"
)

type memRepo struct {
	mu   sync.Mutex
	rows []models.Interaction
}

func (m *memRepo) Create(_ context.Context, in *models.Interaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = append(m.rows, *in)
	return nil
}

func (m *memRepo) ListByStatus(_ context.Context, status string) ([]models.Interaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Interaction
	for i := len(m.rows) - 1; i >= 0; i-- {
		if m.rows[i].Status == status {
			out = append(out, m.rows[i])
		}
	}
	return out, nil
}

func (m *memRepo) Approve(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].InteractionID == id {
			m.rows[i].Status = models.StatusApproved
			return nil
		}
	}
	return utils.ErrNotFound
}

func (m *memRepo) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].InteractionID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return utils.ErrNotFound
}

type scriptedProvider struct{ script string }

func (p *scriptedProvider) Generate(_ context.Context, _, _ string) (string, error) {
	return p.script, nil
}
func (p *scriptedProvider) Close() error { return nil }

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := &memRepo{}
	knowledge := services.NewKnowledgeService(repo, nil, time.Minute, 50, logrus.New())
	svc := services.NewInteractionService(repo, knowledge, &scriptedProvider{script: "Script A"}, 5*time.Second)

	r := gin.New()
	routes.RegisterRoutes(r, routes.Deps{
		Simulator:      handlers.NewSimulatorHandler(svc),
		Library:        handlers.NewLibraryHandler(svc),
		Admin:          handlers.NewAdminHandler(svc, testAdminPassword, testJWTSecret, time.Hour),
		AdminJWTSecret: testJWTSecret,
	})
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func adminToken(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/admin/login", "", gin.H{"password": testAdminPassword})
	require.Equal(t, http.StatusOK, w.Code)
	var resp handlers.AdminLoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestCatalog(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/catalog", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp handlers.CatalogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Mentors, 4)
	assert.Len(t, resp.Scenarios, 5)
}

func TestSimulateValidation(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/simulate", "", gin.H{"mentor": "Chris Voss"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/simulate", "", gin.H{
		"mentor": "Jordan Belfort", "scenario_type": "Price Shock", "objection": "too expensive",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminLoginRejectsWrongPassword(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/admin/login", "", gin.H{"password": "let-me-im"})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Near misses get the same generic message as anything else.
	var resp handlers.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid credentials", resp.Message)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/admin/pending", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/admin/pending", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestModerationFlow(t *testing.T) {
	r := newTestRouter(t)
	token := adminToken(t, r)

	// Rep submits an objection; the script comes back pending.
	w := doJSON(t, r, http.MethodPost, "/simulate", "", gin.H{
		"mentor": "Chris Voss", "scenario_type": "Price Shock", "objection": "It's too expensive",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var sim handlers.SimulateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sim))
	assert.Equal(t, "Script A", sim.Script)
	assert.Equal(t, models.StatusPending, sim.Status)

	// Library is still empty, queue has the record.
	w = doJSON(t, r, http.MethodGet, "/library", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"groups":[]}`, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/admin/pending", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), sim.InteractionID)

	// Approve publishes it.
	w = doJSON(t, r, http.MethodPost, "/admin/interactions/"+sim.InteractionID+"/approve", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/library", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var lib struct {
		Groups []handlers.LibraryGroup `json:"groups"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lib))
	require.Len(t, lib.Groups, 1)
	assert.Equal(t, "Price Shock", lib.Groups[0].ScenarioType)
	require.Len(t, lib.Groups[0].Entries, 1)
	assert.Equal(t, "Script A", lib.Groups[0].Entries[0].Script)

	w = doJSON(t, r, http.MethodGet, "/admin/pending", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), sim.InteractionID)
}

func TestRejectFlow(t *testing.T) {
	r := newTestRouter(t)
	token := adminToken(t, r)

	w := doJSON(t, r, http.MethodPost, "/simulate", "", gin.H{
		"mentor": "Zig Ziglar", "scenario_type": "Ghosting", "objection": "no reply for two weeks",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var sim handlers.SimulateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sim))

	w = doJSON(t, r, http.MethodDelete, "/admin/interactions/"+sim.InteractionID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Gone from both surfaces; a repeat reject is the benign race case.
	w = doJSON(t, r, http.MethodGet, "/admin/pending", token, nil)
	assert.NotContains(t, w.Body.String(), sim.InteractionID)
	w = doJSON(t, r, http.MethodGet, "/library", "", nil)
	assert.NotContains(t, w.Body.String(), sim.InteractionID)

	w = doJSON(t, r, http.MethodDelete, "/admin/interactions/"+sim.InteractionID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
