package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/deividmarreiro/fyyur/internal/domain/artists"
	"github.com/deividmarreiro/fyyur/internal/infrastructure/persistence/models"
	"github.com/deividmarreiro/fyyur/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormArtistRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormArtistRepository creates a new GORM-based ArtistRepository implementation
func NewGormArtistRepository(db *gorm.DB, logger logger.Logger) (artists.ArtistRepository, error) {
	return &gormArtistRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormArtistRepository) Create(ctx context.Context, artist *artists.Artist) error {
	if err := artist.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ArtistModel{}
	model.FromDomain(artist)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create artist: %w", err)
	}

	r.logger.Info("Created artist with id ", artist.ID)
	return nil
}

func (r *gormArtistRepository) List(ctx context.Context, query *artists.ArtistQuery) ([]*artists.Artist, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.ArtistModel
	dbQuery := r.db.WithContext(ctx).Model(&models.ArtistModel{})

	if query.Name != "" {
		dbQuery = dbQuery.Where("name LIKE ?", "%"+query.Name+"%")
	}
	if query.City != "" {
		dbQuery = dbQuery.Where("city = ?", query.City)
	}
	if query.State != "" {
		dbQuery = dbQuery.Where("state = ?", query.State)
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
		return nil, fmt.Errorf("failed to fetch artists: %w", err)
	}

	domainList := make([]*artists.Artist, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormArtistRepository) GetByID(ctx context.Context, artistID string) (*artists.Artist, error) {
	var model models.ArtistModel
	if err := r.db.WithContext(ctx).Where("id = ?", artistID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("artist with ID %s not found", artistID)
		}
		return nil, fmt.Errorf("failed to fetch artist: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormArtistRepository) SearchByName(ctx context.Context, term string) ([]*artists.Artist, error) {
	var modelList []*models.ArtistModel

	pattern := "%" + strings.ToLower(term) + "%"
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", pattern).
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to search artists: %w", err)
	}

	domainList := make([]*artists.Artist, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormArtistRepository) UpdateByID(ctx context.Context, artist *artists.Artist) error {
	if err := artist.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ArtistModel{}
	model.FromDomain(artist)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update artist: %w", err)
	}

	r.logger.Info("Updated artist with id ", artist.ID)
	return nil
}

func (r *gormArtistRepository) DeleteByID(ctx context.Context, artistID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", artistID).Delete(&models.ArtistModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete artist: %w", err)
	}

	r.logger.Info("Deleted artist with id ", artistID)
	return nil
}
