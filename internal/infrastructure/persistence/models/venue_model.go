package models

import (
	"time"

	"github.com/deividmarreiro/fyyur/internal/domain/venues"
)

// VenueModel is the GORM database model for venues (infrastructure concern)
type VenueModel struct {
	ID                 string    `gorm:"primaryKey;type:uuid"`
	Name               string    `gorm:"not null;type:varchar(255);index"`
	Genres             []string  `gorm:"not null;serializer:json"`
	Address            string    `gorm:"not null;type:varchar(120)"`
	City               string    `gorm:"not null;type:varchar(120);index"`
	State              string    `gorm:"not null;type:varchar(120);index"`
	Phone              string    `gorm:"not null;type:varchar(120)"`
	Website            string    `gorm:"type:varchar(120)"`
	SeekingTalent      bool      `gorm:"not null;default:false"`
	SeekingDescription string    `gorm:"type:varchar(500)"`
	ImageLink          string    `gorm:"type:varchar(500)"`
	FacebookLink       string    `gorm:"type:varchar(120)"`
	CreatedAt          time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (VenueModel) TableName() string {
	return "venues"
}

// ToDomain converts GORM model to domain entity
func (m *VenueModel) ToDomain() *venues.Venue {
	return &venues.Venue{
		ID:                 m.ID,
		Name:               m.Name,
		Genres:             m.Genres,
		Address:            m.Address,
		City:               m.City,
		State:              m.State,
		Phone:              m.Phone,
		Website:            m.Website,
		SeekingTalent:      m.SeekingTalent,
		SeekingDescription: m.SeekingDescription,
		ImageLink:          m.ImageLink,
		FacebookLink:       m.FacebookLink,
		CreatedAt:          m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *VenueModel) FromDomain(v *venues.Venue) {
	m.ID = v.ID
	m.Name = v.Name
	m.Genres = v.Genres
	m.Address = v.Address
	m.City = v.City
	m.State = v.State
	m.Phone = v.Phone
	m.Website = v.Website
	m.SeekingTalent = v.SeekingTalent
	m.SeekingDescription = v.SeekingDescription
	m.ImageLink = v.ImageLink
	m.FacebookLink = v.FacebookLink
	m.CreatedAt = v.CreatedAt
}
