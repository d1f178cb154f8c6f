package mongo

import (
	"context"
	"time"

	"github.com/apexshade/playbook/internal/models"
	"github.com/apexshade/playbook/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type InteractionRepository interface {
	Create(ctx context.Context, in *models.Interaction) error
	ListByStatus(ctx context.Context, status string) ([]models.Interaction, error)
	Approve(ctx context.Context, interactionID string) error
	Delete(ctx context.Context, interactionID string) error
}

type interactionRepo struct {
	col *mongo.Collection
}

func NewInteractionRepo(db *mongo.Database) InteractionRepository {
	return &interactionRepo{col: db.Collection("interactions")}
}

func (r *interactionRepo) Create(ctx context.Context, in *models.Interaction) error {
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, in)
	return err
}

func (r *interactionRepo) ListByStatus(ctx context.Context, status string) ([]models.Interaction, error) {
	cur, err := r.col.Find(ctx,
		bson.M{"status": status},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Interaction
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Approve flips status to approved. Matching on the id alone makes a
// repeat approve a no-op success; a concurrently deleted record matches
// nothing and reports ErrNotFound instead of being resurrected.
func (r *interactionRepo) Approve(ctx context.Context, interactionID string) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"interaction_id": interactionID},
		bson.M{"$set": bson.M{"status": models.StatusApproved}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *interactionRepo) Delete(ctx context.Context, interactionID string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"interaction_id": interactionID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}
