package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"Ludex/config"
	"Ludex/models"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.ConnectGORM(":memory:", false)
	require.NoError(t, err)
	require.NoError(t, config.MigrateDatabase(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func newUser(pseudo, mail string) models.User {
	return models.User{
		Pseudo:   pseudo,
		Password: "$2a$10$0123456789012345678901234567890123456789012345678901y",
		Mail:     mail,
		Consent:  true,
		Expiry:   datatypes.Date(time.Now().AddDate(1, 0, 0)),
	}
}

// seedCatalog creates one publisher, one genre, one platform and two games
// with their sales.
func seedCatalog(t *testing.T, db *gorm.DB) (models.Publisher, models.Genre, models.Platform, []models.Game) {
	t.Helper()

	publisher := models.Publisher{Name: "Nintendo"}
	require.NoError(t, db.Create(&publisher).Error)
	genre := models.Genre{Name: "Platformer"}
	require.NoError(t, db.Create(&genre).Error)
	platform := models.Platform{Name: "Wii"}
	require.NoError(t, db.Create(&platform).Error)

	games := []models.Game{
		{Name: "Super Mario Galaxy", Rank: 1, PublisherID: publisher.ID, GenreID: genre.ID},
		{Name: "Donkey Kong Country", Rank: 2, PublisherID: publisher.ID, GenreID: genre.ID},
	}
	require.NoError(t, db.Create(&games).Error)

	for _, g := range games {
		require.NoError(t, db.Create(&models.Sale{GameID: g.ID, Total: 10}).Error)
	}

	return publisher, genre, platform, games
}

func count[T any](t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var model T
	var n int64
	require.NoError(t, db.Model(&model).Count(&n).Error)
	return n
}

func TestUniqueConstraints(t *testing.T) {
	db := setupDB(t)

	require.NoError(t, db.Create(&models.Genre{Name: "RPG"}).Error)
	assert.Error(t, db.Create(&models.Genre{Name: "RPG"}).Error)

	u := newUser("player_one", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	require.NoError(t, db.Create(&u).Error)
	dup := newUser("player_one", "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
	assert.Error(t, db.Create(&dup).Error, "pseudo must be unique")
}

func TestDuplicateAssociationRejected(t *testing.T) {
	db := setupDB(t)
	_, _, platform, games := seedCatalog(t, db)

	u := newUser("collector", "cccccccccccccccccccccccccccccccccccccccccccccccccccccccccccccccc")
	require.NoError(t, db.Create(&u).Error)

	link := models.GameUser{UserID: u.ID, GameID: games[0].ID}
	require.NoError(t, db.Create(&link).Error)
	assert.Error(t, db.Create(&models.GameUser{UserID: u.ID, GameID: games[0].ID}).Error)

	// First link intact
	assert.EqualValues(t, 1, count[models.GameUser](t, db))

	pLink := models.GamePlatform{GameID: games[0].ID, PlatformID: platform.ID}
	require.NoError(t, db.Create(&pLink).Error)
	assert.Error(t, db.Create(&models.GamePlatform{GameID: games[0].ID, PlatformID: platform.ID}).Error)
}

// The cascade tags live on the parent side of each relation because GORM
// builds the foreign key from there; a child-side tag is silently dropped.
// Check the migrated DDL so a tag moving back never goes unnoticed.
func TestMigratedSchemaDeclaresCascades(t *testing.T) {
	db := setupDB(t)

	for _, table := range []string{"games", "sales", "games_users", "games_platforms"} {
		var ddl string
		require.NoError(t, db.Raw(
			"SELECT sql FROM sqlite_master WHERE type = 'table' AND name = ?", table).
			Scan(&ddl).Error)
		assert.Contains(t, ddl, "ON DELETE CASCADE", "table %s", table)
	}
}

func TestPublisherDeleteCascades(t *testing.T) {
	db := setupDB(t)
	publisher, _, platform, games := seedCatalog(t, db)

	u := newUser("cascade_victim", "dddddddddddddddddddddddddddddddddddddddddddddddddddddddddddddddd")
	require.NoError(t, db.Create(&u).Error)
	require.NoError(t, db.Create(&models.GameUser{UserID: u.ID, GameID: games[0].ID}).Error)
	require.NoError(t, db.Create(&models.GamePlatform{GameID: games[0].ID, PlatformID: platform.ID}).Error)

	require.NoError(t, db.Delete(&models.Publisher{}, publisher.ID).Error)

	// Games referencing the publisher go away with their sales and links
	assert.EqualValues(t, 0, count[models.Game](t, db))
	assert.EqualValues(t, 0, count[models.Sale](t, db))
	assert.EqualValues(t, 0, count[models.GameUser](t, db))
	assert.EqualValues(t, 0, count[models.GamePlatform](t, db))

	// The user itself survives
	assert.EqualValues(t, 1, count[models.User](t, db))
}

func TestUserDeleteCascadesOnlyLinks(t *testing.T) {
	db := setupDB(t)
	_, _, _, games := seedCatalog(t, db)

	u := newUser("departing", "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee")
	require.NoError(t, db.Create(&u).Error)
	require.NoError(t, db.Create(&models.GameUser{UserID: u.ID, GameID: games[0].ID}).Error)
	require.NoError(t, db.Create(&models.GameUser{UserID: u.ID, GameID: games[1].ID}).Error)

	require.NoError(t, db.Delete(&models.User{}, u.ID).Error)

	assert.EqualValues(t, 0, count[models.GameUser](t, db))
	// Referenced games and sales stay
	assert.EqualValues(t, 2, count[models.Game](t, db))
	assert.EqualValues(t, 2, count[models.Sale](t, db))
}

func TestGameDeleteCascades(t *testing.T) {
	db := setupDB(t)
	_, _, platform, games := seedCatalog(t, db)
	require.NoError(t, db.Create(&models.GamePlatform{GameID: games[0].ID, PlatformID: platform.ID}).Error)

	require.NoError(t, db.Delete(&models.Game{}, games[0].ID).Error)

	assert.EqualValues(t, 1, count[models.Game](t, db))
	assert.EqualValues(t, 1, count[models.Sale](t, db))
	assert.EqualValues(t, 0, count[models.GamePlatform](t, db))
	// Reference tables untouched
	assert.EqualValues(t, 1, count[models.Platform](t, db))
}
