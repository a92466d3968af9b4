package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Social-Blog/domain"
	"github.com/Guyuepp/Go-Social-Blog/internal/repository"
	"github.com/Guyuepp/Go-Social-Blog/internal/repository/mysql/model"
)

type notificationRepository struct {
	DB *gorm.DB
}

var _ domain.NotificationRepository = (*notificationRepository)(nil)

func NewNotificationRepository(db *gorm.DB) *notificationRepository {
	return &notificationRepository{db}
}

func (m *notificationRepository) Store(ctx context.Context, n *domain.Notification) error {
	notificationModel := model.NewNotificationFromDomain(n)
	result := m.DB.WithContext(ctx).Create(notificationModel)
	if result.Error != nil {
		return result.Error
	}
	n.ID = notificationModel.ID
	n.CreatedAt = notificationModel.CreatedAt
	return nil
}

func (m *notificationRepository) GetByID(ctx context.Context, id int64) (domain.Notification, error) {
	var notification model.Notification
	err := m.DB.WithContext(ctx).First(&notification, "id = ?", id).Error
	if err != nil {
		return domain.Notification{}, domain.ErrNotFound
	}
	return notification.ToDomain(), nil
}

func (m *notificationRepository) MarkRead(ctx context.Context, id int64) error {
	result := m.DB.WithContext(ctx).Model(&model.Notification{}).
		Where("id = ?", id).
		Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *notificationRepository) MarkAllRead(ctx context.Context, userID int64) error {
	// Zero matched rows is fine: nothing was unread.
	return m.DB.WithContext(ctx).Model(&model.Notification{}).
		Where("recipient_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).
		Error
}

func (m *notificationRepository) CountUnread(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := m.DB.WithContext(ctx).Model(&model.Notification{}).
		Where("recipient_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

func (m *notificationRepository) FetchByRecipient(ctx context.Context, userID int64, p domain.Pageable) ([]domain.Notification, error) {
	repository.PageVerify(&p)
	var notifications []model.Notification
	err := m.DB.WithContext(ctx).
		Where("recipient_id = ?", userID).
		Order("created_at DESC, id DESC").
		Offset(p.Offset()).
		Limit(p.Size).
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Notification, len(notifications))
	for i := range notifications {
		res[i] = notifications[i].ToDomain()
	}
	return res, nil
}
