package mapping

import (
	"github.com/techhype/cardlink_backend/internal/core/domain"
	"github.com/techhype/cardlink_backend/internal/models"
)

// ToModelCardProfile converts a domain CardProfile to its model
func ToModelCardProfile(d domain.CardProfile) models.CardProfile {
	return models.CardProfile{
		CardProfileID: d.CardProfileID,
		CardID:        d.CardID,
		Name:          d.Name,
		Active:        d.Active,
		Title:         d.Title,
		FirstName:     d.FirstName,
		LastName:      d.LastName,
		Image:         d.Image,
		Birthday:      d.Birthday,
		Phone:         d.Phone,
		Email:         d.Email,
		Website:       d.Website,
		Website2:      d.Website2,
	}
}

// ToDomainCardProfile converts a model CardProfile to its domain form
func ToDomainCardProfile(m models.CardProfile) domain.CardProfile {
	return domain.CardProfile{
		CardProfileID: m.CardProfileID,
		CardID:        m.CardID,
		Name:          m.Name,
		Active:        m.Active,
		Title:         m.Title,
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		Image:         m.Image,
		Birthday:      m.Birthday,
		Phone:         m.Phone,
		Email:         m.Email,
		Website:       m.Website,
		Website2:      m.Website2,
	}
}

// ToDomainCardProfileSlice converts a slice of model CardProfiles to domain form
func ToDomainCardProfileSlice(ms []models.CardProfile) []domain.CardProfile {
	ds := make([]domain.CardProfile, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCardProfile(m)
	}
	return ds
}

// ToDomainAddress converts a model Address to its domain form
func ToDomainAddress(m models.Address) domain.Address {
	return domain.Address{
		AddressID:     m.AddressID,
		CardProfileID: m.CardProfileID,
		Country:       m.Country,
		Street:        m.Street,
		PostalCode:    m.PostalCode,
		State:         m.State,
		City:          m.City,
	}
}

// ToDomainWorkInfo converts a model WorkInfo to its domain form
func ToDomainWorkInfo(m models.WorkInfo) domain.WorkInfo {
	return domain.WorkInfo{
		WorkInfoID:    m.WorkInfoID,
		CardProfileID: m.CardProfileID,
		Company:       m.Company,
		Position:      m.Position,
		WorkPhone:     m.WorkPhone,
		WorkEmail:     m.WorkEmail,
	}
}

// ToDomainSocialMedia converts a model SocialMedia to its domain form
func ToDomainSocialMedia(m models.SocialMedia) domain.SocialMedia {
	return domain.SocialMedia{
		SocialMediaID: m.SocialMediaID,
		CardProfileID: m.CardProfileID,
		FacebookLink:  m.FacebookLink,
		LinkedinLink:  m.LinkedinLink,
		SnapLink:      m.SnapLink,
		InstagramLink: m.InstagramLink,
	}
}
