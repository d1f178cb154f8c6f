package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/apexshade/playbook/internal/models"
	"github.com/apexshade/playbook/internal/services"
)

type LibraryHandler struct {
	svc services.InteractionService
}

func NewLibraryHandler(svc services.InteractionService) *LibraryHandler {
	return &LibraryHandler{svc: svc}
}

type LibraryEntry struct {
	InteractionID string `json:"interaction_id"`
	Mentor        string `json:"mentor"`
	Objection     string `json:"objection"`
	Script        string `json:"script"`
	CreatedAt     string `json:"created_at"`
}

type LibraryGroup struct {
	ScenarioType string         `json:"scenario_type"`
	Entries      []LibraryEntry `json:"entries"`
}

// List returns the approved playbook grouped by scenario, in the fixed
// scenario order. Scenarios with no approved scripts are omitted.
func (h *LibraryHandler) List(c *gin.Context) {
	rows, err := h.svc.ListApproved(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	byScenario := make(map[string][]LibraryEntry, len(models.Scenarios))
	for _, in := range rows {
		byScenario[in.ScenarioType] = append(byScenario[in.ScenarioType], LibraryEntry{
			InteractionID: in.InteractionID,
			Mentor:        in.Mentor,
			Objection:     in.ObjectionText,
			Script:        in.ScriptText,
			CreatedAt:     in.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	groups := make([]LibraryGroup, 0, len(byScenario))
	for _, scenario := range models.Scenarios {
		if entries, ok := byScenario[scenario]; ok {
			groups = append(groups, LibraryGroup{ScenarioType: scenario, Entries: entries})
		}
	}

	c.JSON(http.StatusOK, gin.H{"groups": groups})
}
