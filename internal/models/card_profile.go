package models

import "time"

// CardProfile is the database representation of one card variant.
type CardProfile struct {
	CardProfileID int64      `json:"cardProfileID" db:"card_profile_id"`
	CardID        int64      `json:"cardID" db:"card_id"`
	Name          string     `json:"name" db:"name"`
	Active        bool       `json:"active" db:"active"`
	Title         string     `json:"title" db:"title"`
	FirstName     string     `json:"firstName" db:"first_name"`
	LastName      string     `json:"lastName" db:"last_name"`
	Image         string     `json:"image" db:"image"`
	Birthday      *time.Time `json:"birthday,omitempty" db:"birthday"`
	Phone         string     `json:"phone" db:"phone"`
	Email         string     `json:"email" db:"email"`
	Website       string     `json:"website" db:"website"`
	Website2      string     `json:"website2" db:"website2"`
}

// Address has a unique constraint on card_profile_id, so at most one row per profile.
type Address struct {
	AddressID     int64  `json:"addressID" db:"address_id"`
	CardProfileID int64  `json:"cardProfileID" db:"card_profile_id"`
	Country       string `json:"country" db:"country"`
	Street        string `json:"street" db:"street"`
	PostalCode    string `json:"postalCode" db:"postal_code"`
	State         string `json:"state" db:"state"`
	City          string `json:"city" db:"city"`
}

// WorkInfo has a unique constraint on card_profile_id, so at most one row per profile.
type WorkInfo struct {
	WorkInfoID    int64  `json:"workInfoID" db:"work_info_id"`
	CardProfileID int64  `json:"cardProfileID" db:"card_profile_id"`
	Company       string `json:"company" db:"company"`
	Position      string `json:"position" db:"position"`
	WorkPhone     string `json:"workPhone" db:"work_phone"`
	WorkEmail     string `json:"workEmail" db:"work_email"`
}

// SocialMedia has a unique constraint on card_profile_id, so at most one row per profile.
type SocialMedia struct {
	SocialMediaID int64  `json:"socialMediaID" db:"social_media_id"`
	CardProfileID int64  `json:"cardProfileID" db:"card_profile_id"`
	FacebookLink  string `json:"facebookLink" db:"facebook_link"`
	LinkedinLink  string `json:"linkedinLink" db:"linkedin_link"`
	SnapLink      string `json:"snapLink" db:"snap_link"`
	InstagramLink string `json:"instagramLink" db:"instagram_link"`
}
