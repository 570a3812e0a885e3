package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"beauty-parlour-api/internal/client"
	"beauty-parlour-api/internal/dto"
	"beauty-parlour-api/internal/model"
	"beauty-parlour-api/internal/plan"

	"gorm.io/gorm"
)

const testSecret = "test-key-secret"

type fakeUserRepo struct {
	users   map[uint]*model.User
	history []model.PaymentRecord
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[uint]*model.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uint) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) ActivateSubscription(ctx context.Context, userID uint, sub model.Subscription, record *model.PaymentRecord, contact map[string]interface{}) error {
	u, ok := r.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Subscription = sub
	if phone, ok := contact["phone"].(string); ok {
		u.Phone = phone
	}
	if address, ok := contact["address"].(string); ok {
		u.Address = address
	}
	r.history = append(r.history, *record)
	return nil
}

func (r *fakeUserRepo) GetPaymentHistory(ctx context.Context, userID uint) ([]model.PaymentRecord, error) {
	var records []model.PaymentRecord
	for _, rec := range r.history {
		if rec.UserID == userID {
			records = append(records, rec)
		}
	}
	return records, nil
}

type fakeGateway struct {
	orders int
}

func (g *fakeGateway) CreateOrder(ctx context.Context, amountPaise int, currency, receipt string) (*client.CreateOrderResult, error) {
	g.orders++
	return &client.CreateOrderResult{
		OrderID:  "order_test_1",
		Amount:   amountPaise,
		Currency: currency,
	}, nil
}

func (g *fakeGateway) KeyID() string { return "rzp_test_key" }

type fakeMailer struct {
	sent []string
}

func (m *fakeMailer) Send(to, subject, body string) error {
	m.sent = append(m.sent, subject)
	return nil
}

func newTestPaymentService(repo *fakeUserRepo, gateway *fakeGateway, now time.Time) (*paymentServiceImpl, *fakeMailer) {
	mailer := &fakeMailer{}
	return &paymentServiceImpl{
		razorpayClient: gateway,
		userRepo:       repo,
		mailer:         mailer,
		keySecret:      testSecret,
		ownerEmail:     "owner@example.com",
		now:            func() time.Time { return now },
	}, mailer
}

func verifyRequest(planID string) *dto.VerifyPaymentRequest {
	return &dto.VerifyPaymentRequest{
		OrderID:   "order_test_1",
		PaymentID: "pay_test_1",
		Signature: client.SignPayment("order_test_1", "pay_test_1", testSecret),
		Plan:      planID,
	}
}

func TestCreateOrderConvertsToPaise(t *testing.T) {
	gateway := &fakeGateway{}
	svc, _ := newTestPaymentService(newFakeUserRepo(), gateway, time.Now())

	resp, err := svc.CreateOrder(context.Background(), "3months")
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if resp.Amount != 200000 {
		t.Errorf("expected 200000 paise, got %d", resp.Amount)
	}
	if resp.Currency != "INR" {
		t.Errorf("expected INR, got %s", resp.Currency)
	}
	if resp.KeyID != "rzp_test_key" {
		t.Errorf("expected gateway key id in response, got %s", resp.KeyID)
	}
}

func TestCreateOrderRejectsInvalidPlan(t *testing.T) {
	gateway := &fakeGateway{}
	svc, _ := newTestPaymentService(newFakeUserRepo(), gateway, time.Now())

	_, err := svc.CreateOrder(context.Background(), "2months")
	if !errors.Is(err, plan.ErrInvalidPlan) {
		t.Fatalf("expected ErrInvalidPlan, got %v", err)
	}
	if gateway.orders != 0 {
		t.Error("gateway order created for invalid plan")
	}
}

func TestVerifyPaymentActivatesSubscription(t *testing.T) {
	now := time.Date(2025, time.April, 10, 9, 0, 0, 0, time.UTC)
	user := &model.User{ID: 1, Name: "Asha", Email: "asha@example.com"}
	repo := newFakeUserRepo(user)
	svc, mailer := newTestPaymentService(repo, &fakeGateway{}, now)

	sub, err := svc.VerifyPayment(context.Background(), 1, verifyRequest("3months"))
	if err != nil {
		t.Fatalf("verify payment: %v", err)
	}

	if sub.Type != "3months" || !sub.IsActive {
		t.Errorf("unexpected subscription: %+v", sub)
	}
	if !sub.StartDate.Equal(now) {
		t.Errorf("start date %v, want %v", sub.StartDate, now)
	}
	if want := plan.AddMonths(now, 3); !sub.EndDate.Equal(want) {
		t.Errorf("end date %v, want %v", sub.EndDate, want)
	}
	if !sub.ActiveAt(*sub.StartDate) {
		t.Error("subscription not active at start date")
	}
	if !sub.ActiveAt(*sub.EndDate) {
		t.Error("subscription not active at end date")
	}
	if sub.ActiveAt(sub.EndDate.AddDate(0, 0, 1)) {
		t.Error("subscription still active one day past end date")
	}

	if len(repo.history) != 1 {
		t.Fatalf("expected 1 payment record, got %d", len(repo.history))
	}
	rec := repo.history[0]
	if rec.OrderID != "order_test_1" || rec.PaymentID != "pay_test_1" {
		t.Errorf("unexpected record ids: %+v", rec)
	}
	if rec.Amount != 2000 {
		t.Errorf("expected amount 2000 rupees, got %d", rec.Amount)
	}
	if rec.Status != "completed" {
		t.Errorf("expected status completed, got %s", rec.Status)
	}
	if !rec.Date.Equal(now) {
		t.Errorf("record date %v, want %v", rec.Date, now)
	}

	if len(mailer.sent) != 1 {
		t.Errorf("expected 1 owner notification, got %d", len(mailer.sent))
	}
}

func TestVerifyPaymentRejectsBadSignature(t *testing.T) {
	user := &model.User{ID: 1, Email: "asha@example.com"}
	repo := newFakeUserRepo(user)
	svc, _ := newTestPaymentService(repo, &fakeGateway{}, time.Now())

	req := verifyRequest("3months")
	req.Signature = "deadbeef" + req.Signature[8:]

	_, err := svc.VerifyPayment(context.Background(), 1, req)
	if !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
	if user.Subscription.IsActive {
		t.Error("subscription mutated on signature mismatch")
	}
	if len(repo.history) != 0 {
		t.Error("payment history mutated on signature mismatch")
	}
}

func TestVerifyPaymentRejectsInvalidPlanWithoutMutation(t *testing.T) {
	end := time.Now().Add(24 * time.Hour)
	user := &model.User{ID: 1, Subscription: model.Subscription{Type: "3months", EndDate: &end, IsActive: true}}
	repo := newFakeUserRepo(user)
	svc, _ := newTestPaymentService(repo, &fakeGateway{}, time.Now())

	_, err := svc.VerifyPayment(context.Background(), 1, verifyRequest("2months"))
	if !errors.Is(err, plan.ErrInvalidPlan) {
		t.Fatalf("expected ErrInvalidPlan, got %v", err)
	}
	if user.Subscription.Type != "3months" || !user.Subscription.IsActive {
		t.Error("existing subscription changed by invalid plan")
	}
	if len(repo.history) != 0 {
		t.Error("payment history changed by invalid plan")
	}
}

func TestVerifyPaymentUnknownUser(t *testing.T) {
	svc, _ := newTestPaymentService(newFakeUserRepo(), &fakeGateway{}, time.Now())

	_, err := svc.VerifyPayment(context.Background(), 42, verifyRequest("3months"))
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record-not-found, got %v", err)
	}
}

func TestRepurchaseReplacesWindow(t *testing.T) {
	t1 := time.Date(2025, time.January, 10, 12, 0, 0, 0, time.UTC)
	t2 := t1.AddDate(0, 1, 0)
	user := &model.User{ID: 1, Email: "asha@example.com"}
	repo := newFakeUserRepo(user)

	svc, _ := newTestPaymentService(repo, &fakeGateway{}, t1)
	if _, err := svc.VerifyPayment(context.Background(), 1, verifyRequest("3months")); err != nil {
		t.Fatalf("first purchase: %v", err)
	}

	svc.now = func() time.Time { return t2 }
	sub, err := svc.VerifyPayment(context.Background(), 1, verifyRequest("1year"))
	if err != nil {
		t.Fatalf("second purchase: %v", err)
	}

	// Full replace: the unexpired first window is discarded, not extended.
	if sub.Type != "1year" {
		t.Errorf("expected plan 1year, got %s", sub.Type)
	}
	if !sub.StartDate.Equal(t2) {
		t.Errorf("start date %v, want %v", sub.StartDate, t2)
	}
	if want := plan.AddMonths(t2, 12); !sub.EndDate.Equal(want) {
		t.Errorf("end date %v, want %v", sub.EndDate, want)
	}

	if len(repo.history) != 2 {
		t.Fatalf("expected 2 payment records, got %d", len(repo.history))
	}
	if repo.history[0].Plan != "3months" || repo.history[1].Plan != "1year" {
		t.Errorf("history plans out of order: [%s, %s]", repo.history[0].Plan, repo.history[1].Plan)
	}
}

func TestVerifyPaymentOverwritesContactDetails(t *testing.T) {
	user := &model.User{ID: 1, Phone: "0000000000", Address: "Old Street"}
	repo := newFakeUserRepo(user)
	svc, _ := newTestPaymentService(repo, &fakeGateway{}, time.Now())

	req := verifyRequest("6months")
	req.UserDetails = &dto.ContactDetails{Phone: "9876543210"}

	if _, err := svc.VerifyPayment(context.Background(), 1, req); err != nil {
		t.Fatalf("verify payment: %v", err)
	}
	if user.Phone != "9876543210" {
		t.Errorf("phone not overwritten: %s", user.Phone)
	}
	if user.Address != "Old Street" {
		t.Errorf("empty address should not overwrite, got %q", user.Address)
	}
}
