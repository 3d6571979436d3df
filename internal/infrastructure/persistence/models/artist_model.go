package models

import (
	"time"

	"github.com/deividmarreiro/fyyur/internal/domain/artists"
)

// ArtistModel is the GORM database model for artists (infrastructure concern)
type ArtistModel struct {
	ID                 string    `gorm:"primaryKey;type:uuid"`
	Name               string    `gorm:"not null;type:varchar(255);index"`
	Genres             []string  `gorm:"not null;serializer:json"`
	City               string    `gorm:"type:varchar(120);index"`
	State              string    `gorm:"type:varchar(120);index"`
	Phone              string    `gorm:"type:varchar(120)"`
	Website            string    `gorm:"type:varchar(120)"`
	ImageLink          string    `gorm:"type:varchar(500)"`
	FacebookLink       string    `gorm:"type:varchar(120)"`
	SeekingVenue       bool      `gorm:"not null;default:false"`
	SeekingDescription string    `gorm:"type:varchar(500)"`
	CreatedAt          time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ArtistModel) TableName() string {
	return "artists"
}

// ToDomain converts GORM model to domain entity
func (m *ArtistModel) ToDomain() *artists.Artist {
	return &artists.Artist{
		ID:                 m.ID,
		Name:               m.Name,
		Genres:             m.Genres,
		City:               m.City,
		State:              m.State,
		Phone:              m.Phone,
		Website:            m.Website,
		ImageLink:          m.ImageLink,
		FacebookLink:       m.FacebookLink,
		SeekingVenue:       m.SeekingVenue,
		SeekingDescription: m.SeekingDescription,
		CreatedAt:          m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ArtistModel) FromDomain(a *artists.Artist) {
	m.ID = a.ID
	m.Name = a.Name
	m.Genres = a.Genres
	m.City = a.City
	m.State = a.State
	m.Phone = a.Phone
	m.Website = a.Website
	m.ImageLink = a.ImageLink
	m.FacebookLink = a.FacebookLink
	m.SeekingVenue = a.SeekingVenue
	m.SeekingDescription = a.SeekingDescription
	m.CreatedAt = a.CreatedAt
}
