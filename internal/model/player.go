package model

import "time"

type Player struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email,omitempty"`
	PasswordHash string     `json:"-"`
	Prestige     float64    `json:"prestige"`
	IsBanned     bool       `json:"is_banned"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// LeaderboardEntry is one public ranking row.
type LeaderboardEntry struct {
	Username string  `json:"username"`
	Prestige float64 `json:"prestige"`
	Rank     string  `json:"rank"`
}
