package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
)

const ProvenanceGenerated = "generated"

// Interaction is one objection/script pair plus its moderation status.
// Content fields are immutable after creation; moderation only flips the
// status or removes the document.
type Interaction struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	InteractionID string             `bson:"interaction_id" json:"interaction_id"` // uuid v4

	Mentor        string `bson:"mentor" json:"mentor"`
	ScenarioType  string `bson:"scenario_type" json:"scenario_type"`
	ObjectionText string `bson:"objection_text" json:"objection_text"`
	ScriptText    string `bson:"script_text" json:"script_text"`
	Provenance    string `bson:"provenance" json:"provenance"` // generated
	Status        string `bson:"status" json:"status"`         // pending|approved

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
