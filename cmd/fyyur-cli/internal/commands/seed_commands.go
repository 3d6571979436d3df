package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/deividmarreiro/fyyur/internal/app"
	"github.com/deividmarreiro/fyyur/internal/domain/artists"
	"github.com/deividmarreiro/fyyur/internal/domain/shows"
	"github.com/deividmarreiro/fyyur/internal/domain/venues"
	"github.com/deividmarreiro/fyyur/internal/infrastructure/persistence"
	"github.com/deividmarreiro/fyyur/internal/pkg/logger"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// seedVenue is a venue fixture entry in the seed file.
type seedVenue struct {
	Name               string   `yaml:"name"`
	Genres             []string `yaml:"genres"`
	Address            string   `yaml:"address"`
	City               string   `yaml:"city"`
	State              string   `yaml:"state"`
	Phone              string   `yaml:"phone"`
	Website            string   `yaml:"website_link"`
	SeekingTalent      bool     `yaml:"seeking_talent"`
	SeekingDescription string   `yaml:"seeking_description"`
	ImageLink          string   `yaml:"image_link"`
	FacebookLink       string   `yaml:"facebook_link"`
}

// seedArtist is an artist fixture entry in the seed file.
type seedArtist struct {
	Name               string   `yaml:"name"`
	Genres             []string `yaml:"genres"`
	City               string   `yaml:"city"`
	State              string   `yaml:"state"`
	Phone              string   `yaml:"phone"`
	Website            string   `yaml:"website_link"`
	ImageLink          string   `yaml:"image_link"`
	FacebookLink       string   `yaml:"facebook_link"`
	SeekingVenue       bool     `yaml:"seeking_venue"`
	SeekingDescription string   `yaml:"seeking_description"`
}

// seedShow references its artist and venue fixtures by name.
type seedShow struct {
	Artist    string    `yaml:"artist"`
	Venue     string    `yaml:"venue"`
	StartTime time.Time `yaml:"start_time"`
}

// seedFile is the root document of a YAML fixture file.
type seedFile struct {
	Venues  []seedVenue  `yaml:"venues"`
	Artists []seedArtist `yaml:"artists"`
	Shows   []seedShow   `yaml:"shows"`
}

// SeedCommandHandler encapsulates logic for seeding the database via CLI.
type SeedCommandHandler struct {
	logger logger.Logger
}

// NewSeedCommandHandler initializes and returns a SeedCommandHandler instance with
// a configured logger.
func NewSeedCommandHandler() (*SeedCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &SeedCommandHandler{
		logger: loggerInstance,
	}, nil
}

// SeedCmd loads a YAML fixture file and inserts its venues, artists and shows
func (commandHandler *SeedCommandHandler) SeedCmd(cmd *cobra.Command, _ []string) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		commandHandler.logger.Error("invalid config flag ", err)
		return
	}
	seedPath, err := cmd.Flags().GetString("file")
	if err != nil {
		commandHandler.logger.Error("invalid file flag ", err)
		return
	}

	fixtures, err := loadSeedFile(seedPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	db, _, err := openDatabase(configPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer func() {
		if err := persistence.CloseDB(db); err != nil {
			commandHandler.logger.Warn("failed to close database connection: ", err)
		}
	}()

	if err := persistence.MigrateSchema(db); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := commandHandler.insertFixtures(cmd.Context(), db, fixtures); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Seeded ", len(fixtures.Venues), " venues, ",
		len(fixtures.Artists), " artists and ", len(fixtures.Shows), " shows")
}

func loadSeedFile(path string) (*seedFile, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var fixtures seedFile
	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	return &fixtures, nil
}

func (commandHandler *SeedCommandHandler) insertFixtures(ctx context.Context, db *gorm.DB, fixtures *seedFile) error {
	venueRepo, err := persistence.NewGormVenueRepository(db, commandHandler.logger)
	if err != nil {
		return fmt.Errorf("failed to create venue repository: %w", err)
	}
	artistRepo, err := persistence.NewGormArtistRepository(db, commandHandler.logger)
	if err != nil {
		return fmt.Errorf("failed to create artist repository: %w", err)
	}
	showRepo, err := persistence.NewGormShowRepository(db, commandHandler.logger)
	if err != nil {
		return fmt.Errorf("failed to create show repository: %w", err)
	}

	venueService, err := app.NewVenueService(venueRepo, artistRepo, showRepo, commandHandler.logger)
	if err != nil {
		return fmt.Errorf("failed to create venue service: %w", err)
	}
	artistService, err := app.NewArtistService(artistRepo, venueRepo, showRepo, commandHandler.logger)
	if err != nil {
		return fmt.Errorf("failed to create artist service: %w", err)
	}
	showService, err := app.NewShowService(showRepo, artistRepo, venueRepo, commandHandler.logger)
	if err != nil {
		return fmt.Errorf("failed to create show service: %w", err)
	}

	venueIDs := make(map[string]string, len(fixtures.Venues))
	for _, fixture := range fixtures.Venues {
		venue, err := venueService.Create(ctx, &venues.Venue{
			Name:               fixture.Name,
			Genres:             fixture.Genres,
			Address:            fixture.Address,
			City:               fixture.City,
			State:              fixture.State,
			Phone:              fixture.Phone,
			Website:            fixture.Website,
			SeekingTalent:      fixture.SeekingTalent,
			SeekingDescription: fixture.SeekingDescription,
			ImageLink:          fixture.ImageLink,
			FacebookLink:       fixture.FacebookLink,
		})
		if err != nil {
			return fmt.Errorf("failed to seed venue %q: %w", fixture.Name, err)
		}
		venueIDs[fixture.Name] = venue.ID
	}

	artistIDs := make(map[string]string, len(fixtures.Artists))
	for _, fixture := range fixtures.Artists {
		artist, err := artistService.Create(ctx, &artists.Artist{
			Name:               fixture.Name,
			Genres:             fixture.Genres,
			City:               fixture.City,
			State:              fixture.State,
			Phone:              fixture.Phone,
			Website:            fixture.Website,
			ImageLink:          fixture.ImageLink,
			FacebookLink:       fixture.FacebookLink,
			SeekingVenue:       fixture.SeekingVenue,
			SeekingDescription: fixture.SeekingDescription,
		})
		if err != nil {
			return fmt.Errorf("failed to seed artist %q: %w", fixture.Name, err)
		}
		artistIDs[fixture.Name] = artist.ID
	}

	for _, fixture := range fixtures.Shows {
		artistID, ok := artistIDs[fixture.Artist]
		if !ok {
			return fmt.Errorf("show references unknown artist %q", fixture.Artist)
		}
		venueID, ok := venueIDs[fixture.Venue]
		if !ok {
			return fmt.Errorf("show references unknown venue %q", fixture.Venue)
		}

		if _, err := showService.Create(ctx, &shows.Show{
			ArtistID:  artistID,
			VenueID:   venueID,
			StartTime: fixture.StartTime,
		}); err != nil {
			return fmt.Errorf("failed to seed show at %q: %w", fixture.Venue, err)
		}
	}

	return nil
}

// InitSeedCommands registers seed-related commands
func InitSeedCommands(rootCmd *cobra.Command) error {
	handler, err := NewSeedCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create seed command handler %w", err)
	}

	var seedCmd = &cobra.Command{
		Use:   "seed",
		Short: "Seed the database from a YAML fixture file",
		Run:   handler.SeedCmd,
	}
	seedCmd.Flags().StringP("config", "", "configs/rest-app.yaml", "Path to the application config file")
	seedCmd.Flags().StringP("file", "", "configs/seed.yaml", "Path to the YAML fixture file")
	rootCmd.AddCommand(seedCmd)

	return nil
}
