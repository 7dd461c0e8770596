package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"recruittrack/internal/logger"
	"recruittrack/internal/models"
	"recruittrack/internal/repositories"
	"recruittrack/internal/services/dto"
	"recruittrack/pkg/apperrors"
)

type NotificationService interface {
	ListNotifications(userID string, criteria repositories.NotificationCriteria) (*dto.NotificationListResponse, error)
	UnreadCount(userID string) (int64, error)
	MarkAsRead(userID, notificationID string) error
	MarkAllAsRead(userID string) error
	DeleteNotification(userID, notificationID string) error
	ClearNotifications(userID string) error

	// NotifyNewRecruit tells a recruiter a new intake landed on them.
	// Notification failures are logged, never surfaced to the submitter.
	NotifyNewRecruit(ctx context.Context, recruiterID string, recruit *models.Recruit)

	// NotifyShipperAlert raises the heads-up for a recruit shipping
	// within the alert window. Duplicate alerts for the same recruit and
	// ship date are suppressed for a day.
	NotifyShipperAlert(ctx context.Context, recruiterID string, recruit *models.Recruit, daysUntil int)
}

type NotificationServiceImpl struct {
	notifRepo repositories.NotificationRepository
}

func NewNotificationService(notifRepo repositories.NotificationRepository) NotificationService {
	return &NotificationServiceImpl{notifRepo: notifRepo}
}

func (s *NotificationServiceImpl) ListNotifications(userID string, criteria repositories.NotificationCriteria) (*dto.NotificationListResponse, error) {
	notifications, total, err := s.notifRepo.FindUserNotifications(userID, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	unread, err := s.notifRepo.GetUnreadCount(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.NotificationListResponse{
		Notifications: make([]dto.NotificationResponse, 0, len(notifications)),
		Total:         total,
		UnreadCount:   unread,
	}
	for i := range notifications {
		resp.Notifications = append(resp.Notifications, toNotificationResponse(&notifications[i]))
	}
	return resp, nil
}

func (s *NotificationServiceImpl) UnreadCount(userID string) (int64, error) {
	count, err := s.notifRepo.GetUnreadCount(userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}

func (s *NotificationServiceImpl) MarkAsRead(userID, notificationID string) error {
	err := s.notifRepo.MarkAsRead(userID, notificationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *NotificationServiceImpl) MarkAllAsRead(userID string) error {
	if err := s.notifRepo.MarkAllAsRead(userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *NotificationServiceImpl) DeleteNotification(userID, notificationID string) error {
	err := s.notifRepo.DeleteNotification(userID, notificationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *NotificationServiceImpl) ClearNotifications(userID string) error {
	if err := s.notifRepo.DeleteUserNotifications(userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *NotificationServiceImpl) NotifyNewRecruit(ctx context.Context, recruiterID string, recruit *models.Recruit) {
	data, _ := json.Marshal(map[string]string{"recruit_id": recruit.ID})

	notification := &models.Notification{
		UserID:  recruiterID,
		Type:    models.NotificationTypeNewRecruit,
		Title:   "New recruit submission",
		Message: fmt.Sprintf("%s %s submitted an application", recruit.FirstName, recruit.LastName),
		Link:    "/recruits/" + recruit.ID,
		Data:    datatypes.JSON(data),
	}
	if err := s.notifRepo.CreateNotification(notification); err != nil {
		logger.CtxWithError(ctx, "failed to create new-recruit notification", err,
			"recruiter_id", recruiterID, "recruit_id", recruit.ID)
	}
}

func (s *NotificationServiceImpl) NotifyShipperAlert(ctx context.Context, recruiterID string, recruit *models.Recruit, daysUntil int) {
	data, _ := json.Marshal(map[string]string{
		"recruit_id": recruit.ID,
		"ship_date":  recruit.ShipDate.Format("2006-01-02"),
	})

	recent, err := s.notifRepo.HasRecentNotification(
		recruiterID, models.NotificationTypeShipperAlert, data, time.Now().Add(-24*time.Hour))
	if err != nil {
		logger.CtxWithError(ctx, "shipper alert dedup check failed", err, "recruit_id", recruit.ID)
		return
	}
	if recent {
		return
	}

	notification := &models.Notification{
		UserID: recruiterID,
		Type:   models.NotificationTypeShipperAlert,
		Title:  "Upcoming shipper",
		Message: fmt.Sprintf("%s %s ships in %d day(s) on %s",
			recruit.FirstName, recruit.LastName, daysUntil, recruit.ShipDate.Format("Jan 2, 2006")),
		Link: "/recruits/" + recruit.ID,
		Data: datatypes.JSON(data),
	}
	if err := s.notifRepo.CreateNotification(notification); err != nil {
		logger.CtxWithError(ctx, "failed to create shipper alert", err,
			"recruiter_id", recruiterID, "recruit_id", recruit.ID)
	}
}

func toNotificationResponse(n *models.Notification) dto.NotificationResponse {
	resp := dto.NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Link:      n.Link,
		IsRead:    n.IsRead,
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
	if len(n.Data) > 0 {
		var data map[string]interface{}
		if err := json.Unmarshal(n.Data, &data); err == nil {
			resp.Data = data
		}
	}
	return resp
}
