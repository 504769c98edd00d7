package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AlertModel is one notification in a user's alert box. ReceiverID 0 means a
// broadcast visible to admins.
type AlertModel struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ReceiverID uint64             `bson:"receiver_id" json:"receiverId"`
	AlertType  string             `bson:"alert_type" json:"alertType"` // ACCIDENT_SPIKE, FACILITY_FAULT, SUGGESTION_UPDATE, SYSTEM
	Title      string             `bson:"title" json:"title"`
	Message    string             `bson:"message" json:"message"`
	Severity   string             `bson:"severity" json:"severity"` // LOW, MEDIUM, HIGH, CRITICAL
	Sido       string             `bson:"sido,omitempty" json:"sido"`
	Sigungu    string             `bson:"sigungu,omitempty" json:"sigungu"`
	TargetID   uint64             `bson:"target_id" json:"targetId"`
	IsRead     bool               `bson:"is_read" json:"isRead"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
	ReadAt     *time.Time         `bson:"read_at,omitempty" json:"readAt"`
}
