package models

import (
	"time"

	"github.com/deividmarreiro/fyyur/internal/domain/shows"
)

// ShowModel is the GORM database model for shows (infrastructure concern)
type ShowModel struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	ArtistID  string    `gorm:"not null;type:uuid;index"`
	VenueID   string    `gorm:"not null;type:uuid;index"`
	StartTime time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ShowModel) TableName() string {
	return "shows"
}

// ToDomain converts GORM model to domain entity
func (m *ShowModel) ToDomain() *shows.Show {
	return &shows.Show{
		ID:        m.ID,
		ArtistID:  m.ArtistID,
		VenueID:   m.VenueID,
		StartTime: m.StartTime,
		CreatedAt: m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ShowModel) FromDomain(s *shows.Show) {
	m.ID = s.ID
	m.ArtistID = s.ArtistID
	m.VenueID = s.VenueID
	m.StartTime = s.StartTime
	m.CreatedAt = s.CreatedAt
}
