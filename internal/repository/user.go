package repository

import (
	"context"

	"beauty-parlour-api/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id uint) (*model.User, error)
	// ActivateSubscription overwrites the user's subscription window and
	// appends one payment record in a single transaction. Contact fields
	// are overwritten only when non-empty.
	ActivateSubscription(ctx context.Context, userID uint, sub model.Subscription, record *model.PaymentRecord, contact map[string]interface{}) error
	GetPaymentHistory(ctx context.Context, userID uint) ([]model.PaymentRecord, error)
}

type userRepoImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepoImpl{
		db: db,
	}
}

func (r *userRepoImpl) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepoImpl) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error

	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepoImpl) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		First(&user, id).Error

	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepoImpl) ActivateSubscription(ctx context.Context, userID uint, sub model.Subscription, record *model.PaymentRecord, contact map[string]interface{}) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"subscription_type":       sub.Type,
			"subscription_start_date": sub.StartDate,
			"subscription_end_date":   sub.EndDate,
			"subscription_is_active":  sub.IsActive,
		}
		for column, value := range contact {
			updates[column] = value
		}

		result := tx.Model(&model.User{}).
			Where("id = ?", userID).
			Updates(updates)

		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Create(record).Error
	})
}

func (r *userRepoImpl) GetPaymentHistory(ctx context.Context, userID uint) ([]model.PaymentRecord, error) {
	var records []model.PaymentRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&records).Error

	if err != nil {
		return nil, err
	}

	return records, nil
}
