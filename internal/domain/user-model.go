package domain

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`
	// phone is the login identity: unique, immutable after creation
	Phone    string `gorm:"type:varchar(11);uniqueIndex;not null" json:"phone"`
	Username string `gorm:"type:varchar(50);not null" json:"username"`
	Avatar   string `gorm:"type:varchar(255)" json:"avatar,omitempty"`
	Bio      string `gorm:"type:text" json:"bio,omitempty"`
	IsActive bool   `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
