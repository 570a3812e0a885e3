package dto

import "beauty-parlour-api/internal/model"

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

type CreateOrderRequest struct {
	Plan string `json:"plan"`
}

type CreateOrderResponse struct {
	OrderID  string `json:"orderId"`
	Amount   int    `json:"amount"` // paise
	Currency string `json:"currency"`
	KeyID    string `json:"keyId"`
}

// VerifyPaymentRequest carries the gateway round-trip values the checkout
// widget hands back to the browser. Field names follow the gateway's.
type VerifyPaymentRequest struct {
	OrderID     string          `json:"razorpay_order_id"`
	PaymentID   string          `json:"razorpay_payment_id"`
	Signature   string          `json:"razorpay_signature"`
	Plan        string          `json:"plan"`
	UserDetails *ContactDetails `json:"userDetails,omitempty"`
}

type ContactDetails struct {
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type VerifyPaymentResponse struct {
	Message      string             `json:"message"`
	Subscription model.Subscription `json:"subscription"`
}

type AppointmentRequest struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	ServiceType   string `json:"serviceType"`
	Details       string `json:"details"`
	PreferredDate string `json:"preferredDate"` // RFC 3339, optional
}

type CreateContentRequest struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Category    string `json:"category"`
}

type CourseInfoResponse struct {
	Subscription   model.Subscription    `json:"subscription"`
	PaymentHistory []model.PaymentRecord `json:"paymentHistory"`
}
