package repository

import (
	"context"

	"beauty-parlour-api/internal/model"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *model.Appointment) error
	ListNewestFirst(ctx context.Context) ([]*model.Appointment, error)
}

type appointmentRepoImpl struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepoImpl{
		db: db,
	}
}

func (r *appointmentRepoImpl) Create(ctx context.Context, appointment *model.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepoImpl) ListNewestFirst(ctx context.Context) ([]*model.Appointment, error) {
	var appointments []*model.Appointment
	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Find(&appointments).Error

	if err != nil {
		return nil, err
	}

	return appointments, nil
}
