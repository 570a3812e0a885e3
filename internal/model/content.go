package model

import "time"

const (
	ContentTypeBook     = "book"
	ContentTypeTutorial = "tutorial"
)

type Content struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Type        string    `gorm:"size:16;index;not null" json:"type"` // book, tutorial
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"size:1024" json:"description,omitempty"`
	Link        string    `gorm:"size:1024;not null" json:"link"`
	Category    string    `gorm:"size:64" json:"category,omitempty"`
	IsActive    bool      `gorm:"default:true" json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
