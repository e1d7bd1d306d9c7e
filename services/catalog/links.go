package catalog

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"Ludex/models"
)

// ErrAlreadyLinked reports an attempt to create an association pair that
// already exists. The first link stays untouched.
var ErrAlreadyLinked = errors.New("association already exists")

// LinkGameToUser associates a game with a user. Both ends are verified
// before anything is staged, so a dangling reference never reaches the
// store, and a duplicate pair is rejected with ErrAlreadyLinked.
func LinkGameToUser(db *gorm.DB, log zerolog.Logger, userID, gameID uint) (*models.GameUser, error) {
	var link models.GameUser
	err := db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("user %d not found", userID)
			}
			return err
		}

		var game models.Game
		if err := tx.First(&game, gameID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("game %d not found", gameID)
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.GameUser{}).
			Where("user_id = ? AND game_id = ?", userID, gameID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: game %q and user %q", ErrAlreadyLinked, game.Name, user.Pseudo)
		}

		link = models.GameUser{UserID: userID, GameID: gameID}
		return tx.Create(&link).Error
	})
	if err != nil {
		log.Error().Err(err).Msg("game-user association failed")
		return nil, fmt.Errorf("linking game to user: %w", err)
	}
	return &link, nil
}

// LinkGameToPlatform associates a game with a platform, optionally carrying
// the release year. Same contract as LinkGameToUser.
func LinkGameToPlatform(db *gorm.DB, log zerolog.Logger, gameID, platformID uint, releaseYear *int16) (*models.GamePlatform, error) {
	var link models.GamePlatform
	err := db.Transaction(func(tx *gorm.DB) error {
		var game models.Game
		if err := tx.First(&game, gameID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("game %d not found", gameID)
			}
			return err
		}

		var platform models.Platform
		if err := tx.First(&platform, platformID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("platform %d not found", platformID)
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.GamePlatform{}).
			Where("game_id = ? AND platform_id = ?", gameID, platformID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: game %q and platform %q", ErrAlreadyLinked, game.Name, platform.Name)
		}

		link = models.GamePlatform{GameID: gameID, PlatformID: platformID, ReleaseYear: releaseYear}
		return tx.Create(&link).Error
	})
	if err != nil {
		log.Error().Err(err).Msg("game-platform association failed")
		return nil, fmt.Errorf("linking game to platform: %w", err)
	}
	return &link, nil
}
