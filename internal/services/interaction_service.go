package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/apexshade/playbook/internal/models"
	"github.com/apexshade/playbook/internal/prompt"
	"github.com/apexshade/playbook/internal/providers/llm"
	mongorepo "github.com/apexshade/playbook/internal/repositories/mongo"
	"github.com/apexshade/playbook/internal/utils"

	"github.com/google/uuid"
)

type InteractionService interface {
	Submit(ctx context.Context, mentor, scenarioType, objection string) (*models.Interaction, error)
	Approve(ctx context.Context, interactionID string) error
	Reject(ctx context.Context, interactionID string) error
	ListPending(ctx context.Context) ([]models.Interaction, error)
	ListApproved(ctx context.Context) ([]models.Interaction, error)
}

type interactionService struct {
	interactions    mongorepo.InteractionRepository
	knowledge       KnowledgeService
	provider        llm.Provider
	generateTimeout time.Duration
}

func NewInteractionService(interactions mongorepo.InteractionRepository, knowledge KnowledgeService, provider llm.Provider, generateTimeout time.Duration) InteractionService {
	if generateTimeout <= 0 {
		generateTimeout = 60 * time.Second
	}
	return &interactionService{
		interactions:    interactions,
		knowledge:       knowledge,
		provider:        provider,
		generateTimeout: generateTimeout,
	}
}

// Submit runs the full generation flow: retrieve the approved corpus,
// compose the prompt, call the provider, and only then persist the result
// as pending. A provider failure leaves nothing in the store.
func (s *interactionService) Submit(ctx context.Context, mentor, scenarioType, objection string) (*models.Interaction, error) {
	const op = "InteractionService.Submit"

	objection = strings.TrimSpace(objection)
	if objection == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "objection is required", nil)
	}
	if !models.ValidMentor(mentor) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "unknown mentor", nil)
	}
	if !models.ValidScenario(scenarioType) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "unknown scenario type", nil)
	}

	corpus, err := s.knowledge.BuildCorpus(ctx)
	if err != nil {
		return nil, err
	}

	genCtx, cancel := context.WithTimeout(ctx, s.generateTimeout)
	defer cancel()

	script, err := s.provider.Generate(genCtx,
		prompt.SystemInstruction(mentor, corpus),
		prompt.UserMessage(objection),
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, utils.E(utils.CodeTimeout, op, "generation timed out", err)
		}
		return nil, utils.E(utils.CodeProvider, op, "generation failed", err)
	}

	in := &models.Interaction{
		InteractionID: uuid.NewString(),
		Mentor:        mentor,
		ScenarioType:  scenarioType,
		ObjectionText: objection,
		ScriptText:    script,
		Provenance:    models.ProvenanceGenerated,
		Status:        models.StatusPending,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.interactions.Create(ctx, in); err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "failed to save interaction", err)
	}
	return in, nil
}

// Approve moves a pending interaction into the library and the retrieval
// corpus. Approving twice is a no-op success; a record deleted by a
// concurrent moderator reports NOT_FOUND.
func (s *interactionService) Approve(ctx context.Context, interactionID string) error {
	const op = "InteractionService.Approve"

	if interactionID == "" {
		return utils.E(utils.CodeInvalidArgument, op, "interaction_id is required", nil)
	}
	if err := s.interactions.Approve(ctx, interactionID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "interaction not found", err)
		}
		return utils.E(utils.CodeUnavailable, op, "failed to approve interaction", err)
	}
	s.knowledge.Invalidate(ctx)
	return nil
}

// Reject removes the record permanently. There is no soft delete.
func (s *interactionService) Reject(ctx context.Context, interactionID string) error {
	const op = "InteractionService.Reject"

	if interactionID == "" {
		return utils.E(utils.CodeInvalidArgument, op, "interaction_id is required", nil)
	}
	if err := s.interactions.Delete(ctx, interactionID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "interaction not found", err)
		}
		return utils.E(utils.CodeUnavailable, op, "failed to delete interaction", err)
	}
	s.knowledge.Invalidate(ctx)
	return nil
}

func (s *interactionService) ListPending(ctx context.Context) ([]models.Interaction, error) {
	const op = "InteractionService.ListPending"

	rows, err := s.interactions.ListByStatus(ctx, models.StatusPending)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "failed to list pending interactions", err)
	}
	return rows, nil
}

func (s *interactionService) ListApproved(ctx context.Context) ([]models.Interaction, error) {
	const op = "InteractionService.ListApproved"

	rows, err := s.interactions.ListByStatus(ctx, models.StatusApproved)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "failed to list approved interactions", err)
	}
	return rows, nil
}
