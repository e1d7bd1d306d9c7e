// Package seeder generates synthetic user accounts linked to random games.
// Only consenting candidates are ever stored, credentials are stored as
// one-way digests, and the expiry date bounds how long the account data is
// retained.
package seeder

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	seed "Ludex/constants/seed"
	"Ludex/models"
	"Ludex/utils"
)

// Options controls one generation batch. ConsentRate is the probability in
// [0, 1] that a candidate consents; candidates that refuse leave no row.
type Options struct {
	Count       int
	MinGames    int
	MaxGames    int
	ConsentRate float64
}

// DefaultOptions returns the seeding defaults.
func DefaultOptions() Options {
	return Options{
		Count:       seed.DefaultUserCount,
		MinGames:    seed.DefaultMinGamesPerUser,
		MaxGames:    seed.DefaultMaxGamesPerUser,
		ConsentRate: seed.DefaultConsentRate,
	}
}

// Seeder generates synthetic users with their game associations.
type Seeder struct {
	db    *gorm.DB
	log   zerolog.Logger
	faker *gofakeit.Faker
	rand  *rand.Rand
}

// New creates a Seeder with time-seeded randomness.
func New(db *gorm.DB, log zerolog.Logger) *Seeder {
	return NewSeeded(db, log, time.Now().UnixNano())
}

// NewSeeded creates a Seeder with pinned randomness, for deterministic
// runs.
func NewSeeded(db *gorm.DB, log zerolog.Logger, source int64) *Seeder {
	return &Seeder{
		db:    db,
		log:   log,
		faker: gofakeit.New(uint64(source)),
		rand:  rand.New(rand.NewSource(source)),
	}
}

// Generate runs one batch of up to opts.Count candidates in a single
// transaction. Each consenting candidate becomes a User (inserted
// immediately to obtain its identifier) linked to a random sample of
// distinct existing games; a pair that already exists is skipped silently.
// Without any game in store the whole call is a warn-logged no-op. Any
// persistence failure rolls the entire batch back and returns an empty
// result with the error.
func (s *Seeder) Generate(opts Options) ([]models.User, error) {
	var users []models.User
	var linkCount int

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var games []models.Game
		if err := tx.Find(&games).Error; err != nil {
			return fmt.Errorf("reading games: %w", err)
		}
		if len(games) == 0 {
			s.log.Warn().Msg("no games in store, skipping synthetic user generation")
			return nil
		}

		seenPseudos := make(map[string]bool, opts.Count)
		seenMails := make(map[string]bool, opts.Count)

		for i := 0; i < opts.Count; i++ {
			if s.rand.Float64() >= opts.ConsentRate {
				continue
			}

			user, err := s.newUser(seenPseudos, seenMails)
			if err != nil {
				return err
			}
			if err := tx.Create(user).Error; err != nil {
				return fmt.Errorf("inserting user: %w", err)
			}

			k := s.gamesPerUser(opts, len(games))
			for _, idx := range s.rand.Perm(len(games))[:k] {
				game := games[idx]

				// Cannot trigger for a freshly created user, but keeps the
				// generator safe against a pre-populated association table.
				var count int64
				if err := tx.Model(&models.GameUser{}).
					Where("user_id = ? AND game_id = ?", user.ID, game.ID).
					Count(&count).Error; err != nil {
					return fmt.Errorf("checking existing association: %w", err)
				}
				if count > 0 {
					continue
				}

				link := models.GameUser{UserID: user.ID, GameID: game.ID}
				if err := tx.Create(&link).Error; err != nil {
					return fmt.Errorf("inserting association: %w", err)
				}
				linkCount++
			}

			users = append(users, *user)
		}
		return nil
	})
	if err != nil {
		s.log.Error().Err(err).Msg("synthetic user generation failed, batch rolled back")
		return nil, fmt.Errorf("generating users: %w", err)
	}

	if len(users) > 0 {
		s.log.Info().Int("users", len(users)).Int("links", linkCount).Msg("synthetic users inserted")
	}
	return users, nil
}

func (s *Seeder) newUser(seenPseudos, seenMails map[string]bool) (*models.User, error) {
	digest, err := utils.HashPassword(s.faker.Password(true, true, true, true, false, 16))
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	return &models.User{
		Pseudo:   s.uniquePseudo(seenPseudos),
		Password: digest,
		Mail:     utils.HashEmail(s.uniqueMail(seenMails)),
		Consent:  true,
		Expiry:   s.expiry(),
	}, nil
}

// expiry draws a retention deadline uniformly within the next five years.
func (s *Seeder) expiry() datatypes.Date {
	days := 1 + s.rand.Intn(seed.MaxRetentionYears*365)
	return datatypes.Date(time.Now().AddDate(0, 0, days))
}

// gamesPerUser draws the association count, clamped to the catalog size.
func (s *Seeder) gamesPerUser(opts Options, totalGames int) int {
	upper := opts.MaxGames
	if upper > totalGames {
		upper = totalGames
	}
	lower := opts.MinGames
	if lower < 0 {
		lower = 0
	}
	if lower > upper {
		lower = upper
	}
	if upper <= 0 {
		return 0
	}
	return lower + s.rand.Intn(upper-lower+1)
}

// uniquePseudo returns a 20-characters-max username unseen in this batch.
// Collisions get a numeric salt; the unique index catches anything that
// still slips through against previously stored users.
func (s *Seeder) uniquePseudo(seen map[string]bool) string {
	for {
		p := s.faker.Username()
		if len(p) > 20 {
			p = p[:20]
		}
		if seen[p] {
			p = fmt.Sprintf("%.14s%05d", p, s.rand.Intn(100000))
		}
		if !seen[p] {
			seen[p] = true
			return p
		}
	}
}

func (s *Seeder) uniqueMail(seen map[string]bool) string {
	for {
		m := s.faker.Email()
		if seen[m] {
			m = fmt.Sprintf("%d.%s", s.rand.Intn(100000), m)
		}
		if !seen[m] {
			seen[m] = true
			return m
		}
	}
}
