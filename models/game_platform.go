package models

/*
 * 'GamePlatform' is the association table linking a game to the platforms
 * it was released on, with the release year when the source dataset knows
 * it. The composite primary key forbids duplicate (game, platform) pairs.
 */
type GamePlatform struct {
	// NOTE: composite primary key definition
	GameID      uint   `gorm:"primaryKey"`
	PlatformID  uint   `gorm:"primaryKey"`
	ReleaseYear *int16 `gorm:"type:smallint"`

	Game     Game     `gorm:"foreignKey:GameID"`
	Platform Platform `gorm:"foreignKey:PlatformID"`
}

func (GamePlatform) TableName() string { return "games_platforms" }
