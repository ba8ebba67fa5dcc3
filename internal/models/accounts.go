package models

import "time"

// User mirrors the identity provider's subject: the provider owns the
// id, we keep a local row for joins.
type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Email string `gorm:"uniqueIndex;not null" json:"email"`
	Name  string `json:"name"`
	Role  string `gorm:"default:'EMPLOYER'" json:"role"`
}

// Business is the organization posting jobs.
type Business struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name        string `gorm:"not null" json:"name"`
	Address     string `json:"address"`
	Description string `gorm:"type:text" json:"description"`
	Logo        string `json:"logo"`
	IsComplete  bool   `json:"is_complete"`
}

// Employer links a user to the business they represent.
type Employer struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID     string `gorm:"uniqueIndex;not null" json:"user_id"`
	BusinessID string `gorm:"index" json:"business_id"`
	Role       string `json:"role"`
	Department string `json:"department"`

	Business Business `json:"business,omitempty"`
}
