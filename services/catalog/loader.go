package catalog

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	seed "Ludex/constants/seed"
	"Ludex/models"
)

// ErrMissingSentinel reports that the "Unknown" fallback rows were not
// created before loading. Initialization guarantees them; hitting this
// means the database was never initialized.
var ErrMissingSentinel = errors.New(`sentinel row "Unknown" is missing`)

// Loader bulk-loads denormalized catalog records into the normalized
// tables. One Load call is one transaction: either every row of the batch
// lands, or none does.
type Loader struct {
	db  *gorm.DB
	log zerolog.Logger
}

// NewLoader creates a Loader over an open connection.
func NewLoader(db *gorm.DB, log zerolog.Logger) *Loader {
	return &Loader{db: db, log: log}
}

// Load inserts one Game and one Sale per record, plus one GamePlatform for
// every record whose platform label resolves. Genre and publisher labels
// that stay unresolved (blank labels, since the synchronizer creates every
// non-blank one) fall back to the "Unknown" sentinel rows. Returns the
// number of games inserted.
func (l *Loader) Load(records []GameRecord) (int, error) {
	if len(records) == 0 {
		l.log.Warn().Msg("empty dataset, nothing to load")
		return 0, nil
	}

	var inserted int
	err := l.db.Transaction(func(tx *gorm.DB) error {
		genres, err := SyncReferences(tx, column(records, func(r GameRecord) string { return r.Genre }),
			func(name string) models.Genre { return models.Genre{Name: name} })
		if err != nil {
			return fmt.Errorf("synchronizing genres: %w", err)
		}
		publishers, err := SyncReferences(tx, column(records, func(r GameRecord) string { return r.Publisher }),
			func(name string) models.Publisher { return models.Publisher{Name: name} })
		if err != nil {
			return fmt.Errorf("synchronizing publishers: %w", err)
		}
		platforms, err := SyncReferences(tx, column(records, func(r GameRecord) string { return r.Platform }),
			func(name string) models.Platform { return models.Platform{Name: name} })
		if err != nil {
			return fmt.Errorf("synchronizing platforms: %w", err)
		}

		unknownGenre, ok := genres[seed.UnknownName]
		if !ok {
			return fmt.Errorf("genres: %w", ErrMissingSentinel)
		}
		unknownPublisher, ok := publishers[seed.UnknownName]
		if !ok {
			return fmt.Errorf("publishers: %w", ErrMissingSentinel)
		}

		games := make([]models.Game, len(records))
		for i, rec := range records {
			genre, ok := genres[rec.Genre]
			if !ok {
				genre = unknownGenre
			}
			publisher, ok := publishers[rec.Publisher]
			if !ok {
				publisher = unknownPublisher
			}
			games[i] = models.Game{
				Name:        rec.Name,
				Rank:        rec.Rank,
				GenreID:     genre.ID,
				PublisherID: publisher.ID,
			}
		}
		if err := tx.Create(&games).Error; err != nil {
			return fmt.Errorf("inserting games: %w", err)
		}

		var links []models.GamePlatform
		sales := make([]models.Sale, len(records))
		for i, rec := range records {
			if platform, ok := platforms[rec.Platform]; ok {
				links = append(links, models.GamePlatform{
					GameID:      games[i].ID,
					PlatformID:  platform.ID,
					ReleaseYear: rec.Year,
				})
			}
			sales[i] = models.Sale{
				GameID:       games[i].ID,
				NorthAmerica: rec.NASales,
				Europe:       rec.EUSales,
				Japan:        rec.JPSales,
				Other:        rec.OtherSales,
				Total:        rec.GlobalSales,
			}
		}
		if len(links) > 0 {
			if err := tx.Create(&links).Error; err != nil {
				return fmt.Errorf("inserting platform links: %w", err)
			}
		}
		if err := tx.Create(&sales).Error; err != nil {
			return fmt.Errorf("inserting sales: %w", err)
		}

		inserted = len(games)
		return nil
	})
	if err != nil {
		l.log.Error().Err(err).Msg("catalog load failed, transaction rolled back")
		return 0, fmt.Errorf("loading catalog: %w", err)
	}

	l.log.Info().Int("games", inserted).Msg("games inserted")
	return inserted, nil
}

func column(records []GameRecord, pick func(GameRecord) string) []string {
	values := make([]string, 0, len(records))
	for _, r := range records {
		values = append(values, pick(r))
	}
	return values
}
