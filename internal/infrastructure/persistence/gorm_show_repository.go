package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/deividmarreiro/fyyur/internal/domain/shows"
	"github.com/deividmarreiro/fyyur/internal/infrastructure/persistence/models"
	"github.com/deividmarreiro/fyyur/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormShowRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormShowRepository creates a new GORM-based ShowRepository implementation
func NewGormShowRepository(db *gorm.DB, logger logger.Logger) (shows.ShowRepository, error) {
	return &gormShowRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormShowRepository) Create(ctx context.Context, show *shows.Show) error {
	if err := show.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ShowModel{}
	model.FromDomain(show)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create show: %w", err)
	}

	r.logger.Info("Created show with id ", show.ID)
	return nil
}

func (r *gormShowRepository) List(ctx context.Context, query *shows.ShowQuery) ([]*shows.Show, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.ShowModel
	dbQuery := r.db.WithContext(ctx).Model(&models.ShowModel{})

	if query.ArtistID != "" {
		dbQuery = dbQuery.Where("artist_id = ?", query.ArtistID)
	}
	if query.VenueID != "" {
		dbQuery = dbQuery.Where("venue_id = ?", query.VenueID)
	}
	if !query.StartsAfter.IsZero() {
		dbQuery = dbQuery.Where("start_time > ?", query.StartsAfter)
	}
	if !query.StartsBefore.IsZero() {
		dbQuery = dbQuery.Where("start_time <= ?", query.StartsBefore)
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch shows: %w", err)
	}

	domainList := make([]*shows.Show, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormShowRepository) GetByID(ctx context.Context, showID string) (*shows.Show, error) {
	var model models.ShowModel
	if err := r.db.WithContext(ctx).Where("id = ?", showID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("show with ID %s not found", showID)
		}
		return nil, fmt.Errorf("failed to fetch show: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormShowRepository) DeleteByID(ctx context.Context, showID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", showID).Delete(&models.ShowModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete show: %w", err)
	}

	r.logger.Info("Deleted show with id ", showID)
	return nil
}

func (r *gormShowRepository) DeleteByVenueID(ctx context.Context, venueID string) error {
	if err := r.db.WithContext(ctx).Where("venue_id = ?", venueID).Delete(&models.ShowModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete shows for venue: %w", err)
	}

	r.logger.Info("Deleted shows for venue with id ", venueID)
	return nil
}

func (r *gormShowRepository) DeleteByArtistID(ctx context.Context, artistID string) error {
	if err := r.db.WithContext(ctx).Where("artist_id = ?", artistID).Delete(&models.ShowModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete shows for artist: %w", err)
	}

	r.logger.Info("Deleted shows for artist with id ", artistID)
	return nil
}
