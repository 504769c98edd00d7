package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AlertRepo interface {
	CreateAlert(ctx context.Context, alert *AlertModel) error
	GetAlertList(ctx context.Context, receiverID uint64, limit, offset int64) ([]*AlertModel, error)
	MarkAsRead(ctx context.Context, receiverID uint64, alertID string) error
	MarkAllAsRead(ctx context.Context, receiverID uint64) error
	GetUnreadCount(ctx context.Context, receiverID uint64) (int64, error)
}

type alertRepoImpl struct {
	col *mongo.Collection
}

func NewAlertRepo(db *mongo.Database) AlertRepo {
	return &alertRepoImpl{
		col: db.Collection("alert_notifications"),
	}
}

func (s *alertRepoImpl) CreateAlert(ctx context.Context, alert *AlertModel) error {
	_, err := s.col.InsertOne(ctx, alert)
	return err
}

func (s *alertRepoImpl) GetAlertList(ctx context.Context, receiverID uint64, limit, offset int64) ([]*AlertModel, error) {
	filter := bson.M{"receiver_id": receiverID}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var list []*AlertModel
	if err = cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *alertRepoImpl) MarkAsRead(ctx context.Context, receiverID uint64, alertID string) error {
	objectID, err := primitive.ObjectIDFromHex(alertID)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	now := time.Now()
	filter := bson.M{"_id": objectID, "receiver_id": receiverID}
	update := bson.M{"$set": bson.M{"is_read": true, "read_at": now}}
	result, err := s.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (s *alertRepoImpl) MarkAllAsRead(ctx context.Context, receiverID uint64) error {
	now := time.Now()
	filter := bson.M{"receiver_id": receiverID, "is_read": false}
	update := bson.M{"$set": bson.M{"is_read": true, "read_at": now}}
	_, err := s.col.UpdateMany(ctx, filter, update)
	return err
}

func (s *alertRepoImpl) GetUnreadCount(ctx context.Context, receiverID uint64) (int64, error) {
	filter := bson.M{"receiver_id": receiverID, "is_read": false}
	return s.col.CountDocuments(ctx, filter)
}
