package dto

import (
	"time"

	"github.com/techhype/cardlink_backend/internal/core/domain"
)

// CardProfileRequest creates or updates a profile's presentational fields.
type CardProfileRequest struct {
	Name      string     `json:"name" binding:"required"`
	Title     string     `json:"title"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Image     string     `json:"image"`
	Birthday  *time.Time `json:"birthday"`
	Phone     string     `json:"phone"`
	Email     string     `json:"email" binding:"omitempty,email"`
	Website   string     `json:"website"`
	Website2  string     `json:"website2"`
}

// AddressRequest upserts the profile's single address.
type AddressRequest struct {
	Country    string `json:"country"`
	Street     string `json:"street"`
	PostalCode string `json:"postalCode"`
	State      string `json:"state"`
	City       string `json:"city"`
}

// WorkInfoRequest upserts the profile's single work record.
type WorkInfoRequest struct {
	Company   string `json:"company"`
	Position  string `json:"position"`
	WorkPhone string `json:"workPhone"`
	WorkEmail string `json:"workEmail" binding:"omitempty,email"`
}

// SocialMediaRequest upserts the profile's single set of social links.
type SocialMediaRequest struct {
	FacebookLink  string `json:"facebookLink"`
	LinkedinLink  string `json:"linkedinLink"`
	SnapLink      string `json:"snapLink"`
	InstagramLink string `json:"instagramLink"`
}

// CardProfileResponse is the public projection of a profile.
type CardProfileResponse struct {
	ID        int64      `json:"id"`
	CardID    int64      `json:"cardID"`
	Name      string     `json:"name"`
	Active    bool       `json:"active"`
	Title     string     `json:"title,omitempty"`
	FirstName string     `json:"firstName,omitempty"`
	LastName  string     `json:"lastName,omitempty"`
	Image     string     `json:"image,omitempty"`
	Birthday  *time.Time `json:"birthday,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	Email     string     `json:"email,omitempty"`
	Website   string     `json:"website,omitempty"`
	Website2  string     `json:"website2,omitempty"`
}

// CardProfileDetail bundles a profile with its optional sub-records.
type CardProfileDetail struct {
	Profile     domain.CardProfile
	Address     *domain.Address
	WorkInfo    *domain.WorkInfo
	SocialMedia *domain.SocialMedia
}

// AddressResponse is the wire shape of a profile address.
type AddressResponse struct {
	Country    string `json:"country,omitempty"`
	Street     string `json:"street,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	State      string `json:"state,omitempty"`
	City       string `json:"city,omitempty"`
}

// WorkInfoResponse is the wire shape of a profile work record.
type WorkInfoResponse struct {
	Company   string `json:"company,omitempty"`
	Position  string `json:"position,omitempty"`
	WorkPhone string `json:"workPhone,omitempty"`
	WorkEmail string `json:"workEmail,omitempty"`
}

// SocialMediaResponse is the wire shape of a profile's social links.
type SocialMediaResponse struct {
	FacebookLink  string `json:"facebookLink,omitempty"`
	LinkedinLink  string `json:"linkedinLink,omitempty"`
	SnapLink      string `json:"snapLink,omitempty"`
	InstagramLink string `json:"instagramLink,omitempty"`
}

// CardProfileDetailResponse is the wire shape of a profile with sub-records.
type CardProfileDetailResponse struct {
	CardProfileResponse
	Address     *AddressResponse     `json:"address,omitempty"`
	WorkInfo    *WorkInfoResponse    `json:"workInfo,omitempty"`
	SocialMedia *SocialMediaResponse `json:"socialMedia,omitempty"`
}

// ToCardProfileResponse converts a domain CardProfile to its projection.
func ToCardProfileResponse(p *domain.CardProfile) CardProfileResponse {
	return CardProfileResponse{
		ID:        p.CardProfileID,
		CardID:    p.CardID,
		Name:      p.Name,
		Active:    p.Active,
		Title:     p.Title,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Image:     p.Image,
		Birthday:  p.Birthday,
		Phone:     p.Phone,
		Email:     p.Email,
		Website:   p.Website,
		Website2:  p.Website2,
	}
}

// ToCardProfileListResponse converts a slice of profiles.
func ToCardProfileListResponse(ps []domain.CardProfile) []CardProfileResponse {
	out := make([]CardProfileResponse, len(ps))
	for i := range ps {
		out[i] = ToCardProfileResponse(&ps[i])
	}
	return out
}

// ToCardProfileDetailResponse converts a detail bundle to its wire shape.
func ToCardProfileDetailResponse(d *CardProfileDetail) CardProfileDetailResponse {
	resp := CardProfileDetailResponse{
		CardProfileResponse: ToCardProfileResponse(&d.Profile),
	}
	if d.Address != nil {
		resp.Address = &AddressResponse{
			Country:    d.Address.Country,
			Street:     d.Address.Street,
			PostalCode: d.Address.PostalCode,
			State:      d.Address.State,
			City:       d.Address.City,
		}
	}
	if d.WorkInfo != nil {
		resp.WorkInfo = &WorkInfoResponse{
			Company:   d.WorkInfo.Company,
			Position:  d.WorkInfo.Position,
			WorkPhone: d.WorkInfo.WorkPhone,
			WorkEmail: d.WorkInfo.WorkEmail,
		}
	}
	if d.SocialMedia != nil {
		resp.SocialMedia = &SocialMediaResponse{
			FacebookLink:  d.SocialMedia.FacebookLink,
			LinkedinLink:  d.SocialMedia.LinkedinLink,
			SnapLink:      d.SocialMedia.SnapLink,
			InstagramLink: d.SocialMedia.InstagramLink,
		}
	}
	return resp
}
