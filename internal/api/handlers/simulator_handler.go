package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/apexshade/playbook/internal/models"
	"github.com/apexshade/playbook/internal/services"
	"github.com/apexshade/playbook/internal/utils"
)

type SimulatorHandler struct {
	svc services.InteractionService
}

func NewSimulatorHandler(svc services.InteractionService) *SimulatorHandler {
	return &SimulatorHandler{svc: svc}
}

type SimulateRequest struct {
	Mentor       string `json:"mentor" binding:"required"`
	ScenarioType string `json:"scenario_type" binding:"required"`
	Objection    string `json:"objection" binding:"required"`
}

type SimulateResponse struct {
	InteractionID string `json:"interaction_id"`
	Mentor        string `json:"mentor"`
	ScenarioType  string `json:"scenario_type"`
	Objection     string `json:"objection"`
	Script        string `json:"script"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
}

// Simulate generates a rebuttal script and queues it for moderation.
func (h *SimulatorHandler) Simulate(c *gin.Context) {
	var req SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "SimulatorHandler.Simulate", "invalid request body", err))
		return
	}

	in, err := h.svc.Submit(c.Request.Context(), req.Mentor, req.ScenarioType, req.Objection)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, SimulateResponse{
		InteractionID: in.InteractionID,
		Mentor:        in.Mentor,
		ScenarioType:  in.ScenarioType,
		Objection:     in.ObjectionText,
		Script:        in.ScriptText,
		Status:        in.Status,
		CreatedAt:     in.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

type CatalogResponse struct {
	Mentors   []models.MentorProfile `json:"mentors"`
	Scenarios []string               `json:"scenarios"`
}

// Catalog serves the fixed mentor and scenario sets for the simulator UI.
func (h *SimulatorHandler) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, CatalogResponse{
		Mentors:   models.Mentors,
		Scenarios: models.Scenarios,
	})
}
