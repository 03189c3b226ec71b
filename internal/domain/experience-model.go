package domain

import "time"

type Experience struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Company  string `gorm:"type:varchar(100);not null;index" json:"company"`
	Position string `gorm:"type:varchar(100);not null;index" json:"position"`
	Summary  string `gorm:"type:text;not null" json:"summary"`
	Content  string `gorm:"type:text;not null" json:"content"`
	// 0.0 - 5.0
	Difficulty float64 `gorm:"not null;default:0" json:"difficulty"`
	// JSON-encoded list of strings
	Tags      string    `gorm:"type:text" json:"-"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
