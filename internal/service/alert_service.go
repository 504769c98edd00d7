package service

import (
	"PedGuard/internal/api/dto"
	"PedGuard/internal/pkg/consts"
	"PedGuard/internal/pkg/mongo"
	"context"
	"errors"
	"time"

	mongodrv "go.mongodb.org/mongo-driver/mongo"
)

type AlertService interface {
	CreateAlert(ctx context.Context, req *dto.AlertCreateDTO) error
	GetAlerts(ctx context.Context, userID uint64, page, pageSize int) ([]*dto.AlertDTO, error)
	MarkRead(ctx context.Context, userID uint64, alertID string) error
	MarkAllRead(ctx context.Context, userID uint64) error
	GetUnreadCount(ctx context.Context, userID uint64) (int64, error)
}

type alertServiceImpl struct {
	alertRepo mongo.AlertRepo
}

func NewAlertService(alertRepo mongo.AlertRepo) AlertService {
	return &alertServiceImpl{alertRepo: alertRepo}
}

func (s *alertServiceImpl) CreateAlert(ctx context.Context, req *dto.AlertCreateDTO) error {
	severity := req.Severity
	if severity == "" {
		severity = "MEDIUM"
	}
	return s.alertRepo.CreateAlert(ctx, &mongo.AlertModel{
		ReceiverID: req.UserID,
		AlertType:  req.AlertType,
		Title:      req.Title,
		Message:    req.Message,
		Severity:   severity,
		Sido:       req.Sido,
		Sigungu:    req.Sigungu,
		CreatedAt:  time.Now(),
	})
}

func (s *alertServiceImpl) GetAlerts(ctx context.Context, userID uint64, page, pageSize int) ([]*dto.AlertDTO, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = consts.DefaultPageSize
	}
	if pageSize > consts.MaxPageSize {
		pageSize = consts.MaxPageSize
	}

	alerts, err := s.alertRepo.GetAlertList(ctx, userID, int64(pageSize), int64((page-1)*pageSize))
	if err != nil {
		return nil, err
	}

	result := make([]*dto.AlertDTO, 0, len(alerts))
	for _, alert := range alerts {
		item := &dto.AlertDTO{
			ID:        alert.ID.Hex(),
			AlertType: alert.AlertType,
			Title:     alert.Title,
			Message:   alert.Message,
			Severity:  alert.Severity,
			Sido:      alert.Sido,
			Sigungu:   alert.Sigungu,
			IsRead:    alert.IsRead,
			CreatedAt: alert.CreatedAt.Format(time.RFC3339),
		}
		if alert.ReadAt != nil {
			item.ReadAt = alert.ReadAt.Format(time.RFC3339)
		}
		result = append(result, item)
	}
	return result, nil
}

func (s *alertServiceImpl) MarkRead(ctx context.Context, userID uint64, alertID string) error {
	err := s.alertRepo.MarkAsRead(ctx, userID, alertID)
	if errors.Is(err, mongodrv.ErrNoDocuments) {
		return ErrAlertNotFound
	}
	return err
}

func (s *alertServiceImpl) MarkAllRead(ctx context.Context, userID uint64) error {
	return s.alertRepo.MarkAllAsRead(ctx, userID)
}

func (s *alertServiceImpl) GetUnreadCount(ctx context.Context, userID uint64) (int64, error) {
	return s.alertRepo.GetUnreadCount(ctx, userID)
}
