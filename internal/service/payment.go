package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"beauty-parlour-api/internal/client"
	"beauty-parlour-api/internal/config"
	"beauty-parlour-api/internal/dto"
	"beauty-parlour-api/internal/email"
	"beauty-parlour-api/internal/model"
	"beauty-parlour-api/internal/plan"
	"beauty-parlour-api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrInvalidSignature = errors.New("invalid payment signature")

type PaymentService interface {
	CreateOrder(ctx context.Context, planID string) (*dto.CreateOrderResponse, error)
	VerifyPayment(ctx context.Context, userID uint, req *dto.VerifyPaymentRequest) (*model.Subscription, error)
}

type paymentServiceImpl struct {
	razorpayClient client.RazorpayClient
	userRepo       repository.UserRepository
	mailer         email.Mailer
	keySecret      string
	ownerEmail     string
	now            func() time.Time
}

func NewPaymentService(
	razorpayClient client.RazorpayClient,
	userRepo repository.UserRepository,
	mailer email.Mailer,
	cfg *config.Config,
) PaymentService {
	return &paymentServiceImpl{
		razorpayClient: razorpayClient,
		userRepo:       userRepo,
		mailer:         mailer,
		keySecret:      cfg.Razorpay.KeySecret,
		ownerEmail:     cfg.OwnerEmail,
		now:            time.Now,
	}
}

func (s *paymentServiceImpl) CreateOrder(ctx context.Context, planID string) (*dto.CreateOrderResponse, error) {
	p, ok := plan.Lookup(planID)
	if !ok {
		return nil, plan.ErrInvalidPlan
	}

	receipt := "rcpt_" + uuid.NewString()
	result, err := s.razorpayClient.CreateOrder(ctx, p.PaisePrice(), "INR", receipt)
	if err != nil {
		return nil, fmt.Errorf("gateway create order: %w", err)
	}

	return &dto.CreateOrderResponse{
		OrderID:  result.OrderID,
		Amount:   result.Amount,
		Currency: result.Currency,
		KeyID:    s.razorpayClient.KeyID(),
	}, nil
}

// VerifyPayment is the only write path for a user's subscription. The
// signature check must pass before any state is touched; the subscription
// overwrite and the payment-history append go through one transaction so a
// failure leaves the ledger exactly as it was.
func (s *paymentServiceImpl) VerifyPayment(ctx context.Context, userID uint, req *dto.VerifyPaymentRequest) (*model.Subscription, error) {
	p, ok := plan.Lookup(req.Plan)
	if !ok {
		return nil, plan.ErrInvalidPlan
	}

	if !client.VerifyPaymentSignature(req.OrderID, req.PaymentID, req.Signature, s.keySecret) {
		// Audit trail for fraud review; never log the secret or the
		// expected signature.
		log.Printf("payment signature mismatch: user=%d order=%s payment=%s", userID, req.OrderID, req.PaymentID)
		return nil, ErrInvalidSignature
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	start, end := p.Window(now)
	sub := model.Subscription{
		Type:      p.ID,
		StartDate: &start,
		EndDate:   &end,
		IsActive:  true,
	}
	record := &model.PaymentRecord{
		UserID:    user.ID,
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Amount:    p.Price,
		Plan:      p.ID,
		Date:      now,
		Status:    "completed",
	}

	contact := map[string]interface{}{}
	if req.UserDetails != nil {
		if req.UserDetails.Phone != "" {
			contact["phone"] = req.UserDetails.Phone
			user.Phone = req.UserDetails.Phone
		}
		if req.UserDetails.Address != "" {
			contact["address"] = req.UserDetails.Address
			user.Address = req.UserDetails.Address
		}
	}

	if err := s.userRepo.ActivateSubscription(ctx, user.ID, sub, record, contact); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		// The gateway already captured this payment; keep enough detail
		// to reconcile it by hand.
		log.Printf("subscription activation failed after captured payment: user=%d order=%s payment=%s plan=%s: %v",
			user.ID, req.OrderID, req.PaymentID, p.ID, err)
		return nil, fmt.Errorf("activate subscription: %w", err)
	}

	s.notifyOwner(user, p, req.PaymentID, start, end)

	return &sub, nil
}

func (s *paymentServiceImpl) notifyOwner(user *model.User, p plan.Plan, paymentID string, start, end time.Time) {
	if s.ownerEmail == "" {
		return
	}

	subject := fmt.Sprintf("New Course Enrollment - %s", p.ID)
	body := fmt.Sprintf(`
		<h2>New Course Enrollment</h2>
		<p><strong>Student Name:</strong> %s</p>
		<p><strong>Email:</strong> %s</p>
		<p><strong>Phone:</strong> %s</p>
		<p><strong>Address:</strong> %s</p>
		<p><strong>Plan:</strong> %s</p>
		<p><strong>Amount Paid:</strong> Rs. %d</p>
		<p><strong>Payment ID:</strong> %s</p>
		<p><strong>Start Date:</strong> %s</p>
		<p><strong>End Date:</strong> %s</p>
	`, user.Name, user.Email, orDefault(user.Phone, "Not provided"), orDefault(user.Address, "Not provided"),
		p.ID, p.Price, paymentID, start.Format("02 Jan 2006"), end.Format("02 Jan 2006"))

	if err := s.mailer.Send(s.ownerEmail, subject, body); err != nil {
		log.Printf("enrollment notification failed: %v", err)
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
