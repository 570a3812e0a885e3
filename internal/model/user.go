package model

import "time"

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:128;not null" json:"name"`
	Email    string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password string `gorm:"size:128;not null" json:"-"` // bcrypt hash
	Phone    string `gorm:"size:32" json:"phone,omitempty"`
	Address  string `gorm:"size:512" json:"address,omitempty"`

	Subscription Subscription `gorm:"embedded;embeddedPrefix:subscription_" json:"subscription"`

	PaymentHistory []PaymentRecord `gorm:"foreignKey:UserID" json:"paymentHistory,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Subscription struct {
	Type      string     `gorm:"size:16" json:"type,omitempty"` // 3months, 6months, 1year
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	IsActive  bool       `json:"isActive"`
}

// ActiveAt reports whether the subscription grants access at the given
// instant. IsActive alone only records that a payment once activated the
// subscription; the window must be re-checked on every read since nothing
// flips the flag back when it lapses.
func (s Subscription) ActiveAt(now time.Time) bool {
	return s.IsActive && s.EndDate != nil && !now.After(*s.EndDate)
}

// PaymentRecord is append-only: one row per verified payment, never
// mutated or deleted.
type PaymentRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"-"`
	OrderID   string    `gorm:"size:64;not null" json:"orderId"`
	PaymentID string    `gorm:"size:64;not null" json:"paymentId"`
	Amount    int       `gorm:"not null" json:"amount"` // rupees
	Plan      string    `gorm:"size:16;not null" json:"plan"`
	Date      time.Time `json:"date"`
	Status    string    `gorm:"size:32;not null" json:"status"`
	CreatedAt time.Time `json:"-"`
}
