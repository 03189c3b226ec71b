package dto

import "time"

type ExperienceCreate struct {
	Company    string   `json:"company"`
	Position   string   `json:"position"`
	Summary    string   `json:"summary"`
	Content    string   `json:"content"`
	Difficulty float64  `json:"difficulty"`
	Tags       []string `json:"tags,omitempty"`
}

type ExperienceUpdate struct {
	Company    *string  `json:"company,omitempty"`
	Position   *string  `json:"position,omitempty"`
	Summary    *string  `json:"summary,omitempty"`
	Content    *string  `json:"content,omitempty"`
	Difficulty *float64 `json:"difficulty,omitempty"`
	Tags       []string `json:"tags,omitempty"`
}

type ExperienceQuery struct {
	Skip     int
	Limit    int
	Company  string
	Position string
	Tags     []string
}

type ExperienceResponse struct {
	ID         uint      `json:"id"`
	Company    string    `json:"company"`
	Position   string    `json:"position"`
	Summary    string    `json:"summary"`
	Content    string    `json:"content"`
	Difficulty float64   `json:"difficulty"`
	Tags       []string  `json:"tags"`
	UserID     uint      `json:"user_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
