package domain

import "time"

// CardProfile is one presentation variant of a card. Exactly one profile per
// card is active; activating a profile deactivates its siblings.
type CardProfile struct {
	CardProfileID int64
	CardID        int64
	Name          string
	Active        bool
	Title         string
	FirstName     string
	LastName      string
	Image         string
	Birthday      *time.Time
	Phone         string
	Email         string
	Website       string
	Website2      string
}

// Address is the at-most-one postal address attached to a profile.
type Address struct {
	AddressID     int64
	CardProfileID int64
	Country       string
	Street        string
	PostalCode    string
	State         string
	City          string
}

// WorkInfo is the at-most-one employment record attached to a profile.
type WorkInfo struct {
	WorkInfoID    int64
	CardProfileID int64
	Company       string
	Position      string
	WorkPhone     string
	WorkEmail     string
}

// SocialMedia is the at-most-one set of social links attached to a profile.
type SocialMedia struct {
	SocialMediaID int64
	CardProfileID int64
	FacebookLink  string
	LinkedinLink  string
	SnapLink      string
	InstagramLink string
}
