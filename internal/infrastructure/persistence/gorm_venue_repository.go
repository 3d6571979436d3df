package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/deividmarreiro/fyyur/internal/domain/venues"
	"github.com/deividmarreiro/fyyur/internal/infrastructure/persistence/models"
	"github.com/deividmarreiro/fyyur/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormVenueRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormVenueRepository creates a new GORM-based VenueRepository implementation
func NewGormVenueRepository(db *gorm.DB, logger logger.Logger) (venues.VenueRepository, error) {
	return &gormVenueRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormVenueRepository) Create(ctx context.Context, venue *venues.Venue) error {
	// Validate domain entity (business rules)
	if err := venue.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	// Convert to GORM model
	model := &models.VenueModel{}
	model.FromDomain(venue)

	// Persist to database
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create venue: %w", err)
	}

	r.logger.Info("Created venue with id ", venue.ID)
	return nil
}

func (r *gormVenueRepository) List(ctx context.Context, query *venues.VenueQuery) ([]*venues.Venue, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.VenueModel
	dbQuery := r.db.WithContext(ctx).Model(&models.VenueModel{})

	// Apply filters
	if query.Name != "" {
		dbQuery = dbQuery.Where("name LIKE ?", "%"+query.Name+"%")
	}
	if query.City != "" {
		dbQuery = dbQuery.Where("city = ?", query.City)
	}
	if query.State != "" {
		dbQuery = dbQuery.Where("state = ?", query.State)
	}

	// Sorting
	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	// Pagination
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch venues: %w", err)
	}

	// Convert to domain models
	domainList := make([]*venues.Venue, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormVenueRepository) GetByID(ctx context.Context, venueID string) (*venues.Venue, error) {
	var model models.VenueModel
	if err := r.db.WithContext(ctx).Where("id = ?", venueID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("venue with ID %s not found", venueID)
		}
		return nil, fmt.Errorf("failed to fetch venue: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormVenueRepository) SearchByName(ctx context.Context, term string) ([]*venues.Venue, error) {
	var modelList []*models.VenueModel

	// Case-insensitive substring match, portable across postgres and sqlite
	pattern := "%" + strings.ToLower(term) + "%"
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", pattern).
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to search venues: %w", err)
	}

	domainList := make([]*venues.Venue, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormVenueRepository) UpdateByID(ctx context.Context, venue *venues.Venue) error {
	if err := venue.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.VenueModel{}
	model.FromDomain(venue)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update venue: %w", err)
	}

	r.logger.Info("Updated venue with id ", venue.ID)
	return nil
}

func (r *gormVenueRepository) DeleteByID(ctx context.Context, venueID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", venueID).Delete(&models.VenueModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete venue: %w", err)
	}

	r.logger.Info("Deleted venue with id ", venueID)
	return nil
}
