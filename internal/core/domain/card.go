package domain

import "time"

// Card is a physical/digital business card owned by a user. A card carries
// any number of profiles, at most one of which is active at a time.
type Card struct {
	CardID    int64
	UserID    int64
	Name      string
	Active    bool
	Designed  bool
	CreatedAt time.Time
}

// CardURL is the unique shareable slug minted for a card.
type CardURL struct {
	CardURLID int64
	CardID    int64
	UserID    int64
	URL       string
}
