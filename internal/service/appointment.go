package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"beauty-parlour-api/internal/dto"
	"beauty-parlour-api/internal/email"
	"beauty-parlour-api/internal/model"
	"beauty-parlour-api/internal/repository"
)

var ErrInvalidAppointment = errors.New("invalid appointment request")

type AppointmentService interface {
	Create(ctx context.Context, req *dto.AppointmentRequest) (*model.Appointment, error)
	List(ctx context.Context) ([]*model.Appointment, error)
}

type appointmentServiceImpl struct {
	appointmentRepo repository.AppointmentRepository
	mailer          email.Mailer
	ownerEmail      string
}

func NewAppointmentService(
	appointmentRepo repository.AppointmentRepository,
	mailer email.Mailer,
	ownerEmail string,
) AppointmentService {
	return &appointmentServiceImpl{
		appointmentRepo: appointmentRepo,
		mailer:          mailer,
		ownerEmail:      ownerEmail,
	}
}

func validServiceType(serviceType string) bool {
	switch serviceType {
	case model.ServiceBridal, model.ServiceParty, model.ServiceNormal:
		return true
	}
	return false
}

func (s *appointmentServiceImpl) Create(ctx context.Context, req *dto.AppointmentRequest) (*model.Appointment, error) {
	if len(req.Name) < 2 {
		return nil, fmt.Errorf("%w: name must be at least 2 characters", ErrInvalidAppointment)
	}
	if len(req.Phone) < 10 {
		return nil, fmt.Errorf("%w: phone number must be at least 10 digits", ErrInvalidAppointment)
	}
	if !validServiceType(req.ServiceType) {
		return nil, fmt.Errorf("%w: invalid service type", ErrInvalidAppointment)
	}

	var preferredDate *time.Time
	if req.PreferredDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.PreferredDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid preferred date", ErrInvalidAppointment)
		}
		preferredDate = &parsed
	}

	appointment := &model.Appointment{
		Name:          req.Name,
		Phone:         req.Phone,
		Email:         req.Email,
		ServiceType:   req.ServiceType,
		Details:       req.Details,
		PreferredDate: preferredDate,
		Status:        model.AppointmentPending,
	}

	if err := s.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	s.notifyOwner(appointment)

	return appointment, nil
}

func (s *appointmentServiceImpl) List(ctx context.Context) ([]*model.Appointment, error) {
	return s.appointmentRepo.ListNewestFirst(ctx)
}

func (s *appointmentServiceImpl) notifyOwner(a *model.Appointment) {
	if s.ownerEmail == "" {
		return
	}

	preferred := "Not specified"
	if a.PreferredDate != nil {
		preferred = a.PreferredDate.Format("02 Jan 2006")
	}

	subject := fmt.Sprintf("New Appointment Request - %s", a.ServiceType)
	body := fmt.Sprintf(`
		<h2>New Appointment Request</h2>
		<p><strong>Name:</strong> %s</p>
		<p><strong>Phone:</strong> %s</p>
		<p><strong>Email:</strong> %s</p>
		<p><strong>Service Type:</strong> %s</p>
		<p><strong>Details:</strong> %s</p>
		<p><strong>Preferred Date:</strong> %s</p>
	`, a.Name, a.Phone, orDefault(a.Email, "Not provided"), a.ServiceType,
		orDefault(a.Details, "No additional details"), preferred)

	if err := s.mailer.Send(s.ownerEmail, subject, body); err != nil {
		log.Printf("appointment notification failed: %v", err)
	}
}
