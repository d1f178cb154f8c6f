package services

import (
	"context"
	"strings"
	"time"

	"github.com/apexshade/playbook/internal/cache"
	"github.com/apexshade/playbook/internal/models"
	"github.com/apexshade/playbook/internal/prompt"
	mongorepo "github.com/apexshade/playbook/internal/repositories/mongo"
	"github.com/apexshade/playbook/internal/utils"

	"github.com/sirupsen/logrus"
)

const corpusCacheKey = "playbook:corpus:v1"

type KnowledgeService interface {
	// BuildCorpus renders the approved exemplars into few-shot context.
	// Zero approved records yields the empty string, not an error.
	BuildCorpus(ctx context.Context) (string, error)
	// Invalidate drops the cached corpus after a moderation decision.
	Invalidate(ctx context.Context)
}

type knowledgeService struct {
	interactions mongorepo.InteractionRepository
	cache        cache.Cache // nil disables caching
	cacheTTL     time.Duration
	maxEntries   int
	log          *logrus.Logger
}

func NewKnowledgeService(interactions mongorepo.InteractionRepository, c cache.Cache, ttl time.Duration, maxEntries int, log *logrus.Logger) KnowledgeService {
	if maxEntries <= 0 {
		maxEntries = 50
	}
	return &knowledgeService{
		interactions: interactions,
		cache:        c,
		cacheTTL:     ttl,
		maxEntries:   maxEntries,
		log:          log,
	}
}

func (s *knowledgeService) BuildCorpus(ctx context.Context) (string, error) {
	const op = "KnowledgeService.BuildCorpus"

	if s.cache != nil {
		if v, hit, err := s.cache.GetString(ctx, corpusCacheKey); err != nil {
			s.log.WithError(err).Warn("corpus cache read failed; falling back to store")
		} else if hit {
			return v, nil
		}
	}

	approved, err := s.interactions.ListByStatus(ctx, models.StatusApproved)
	if err != nil {
		return "", utils.E(utils.CodeUnavailable, op, "failed to load approved interactions", err)
	}

	// Newest first from the repo; cap to keep the prompt bounded as the
	// approved set grows.
	if len(approved) > s.maxEntries {
		approved = approved[:s.maxEntries]
	}

	var b strings.Builder
	for _, in := range approved {
		b.WriteString(prompt.RenderExemplar(in.ObjectionText, in.ScriptText))
	}
	corpus := b.String()

	if s.cache != nil {
		if err := s.cache.SetString(ctx, corpusCacheKey, corpus, s.cacheTTL); err != nil {
			s.log.WithError(err).Warn("corpus cache write failed")
		}
	}
	return corpus, nil
}

func (s *knowledgeService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, corpusCacheKey); err != nil {
		s.log.WithError(err).Warn("corpus cache invalidation failed")
	}
}
