package model

import "time"

const (
	ServiceBridal = "bridal"
	ServiceParty  = "party"
	ServiceNormal = "normal"
)

const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

type Appointment struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Name          string     `gorm:"size:128;not null" json:"name"`
	Phone         string     `gorm:"size:32;not null" json:"phone"`
	Email         string     `gorm:"size:255" json:"email,omitempty"`
	ServiceType   string     `gorm:"size:16;index;not null" json:"serviceType"` // bridal, party, normal
	Details       string     `gorm:"size:1024" json:"details,omitempty"`
	PreferredDate *time.Time `json:"preferredDate,omitempty"`
	Status        string     `gorm:"size:16;index;not null" json:"status"`
	Notes         string     `gorm:"size:1024" json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}
