package models

import "time"

// Card is the database representation of a business card.
type Card struct {
	CardID    int64     `json:"cardID" db:"card_id"`
	UserID    int64     `json:"userID" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	Active    bool      `json:"active" db:"active"`
	Designed  bool      `json:"designed" db:"designed"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// CardURL is the database representation of a card's shareable slug.
type CardURL struct {
	CardURLID int64  `json:"cardURLID" db:"card_url_id"`
	CardID    int64  `json:"cardID" db:"card_id"`
	UserID    int64  `json:"userID" db:"user_id"`
	URL       string `json:"url" db:"url"`
}
