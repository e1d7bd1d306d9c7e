package models

/*
 * 'GameUser' is the association table linking a user to the games it owns
 * or plays. The composite primary key forbids duplicate (user, game) pairs.
 */
type GameUser struct {
	// NOTE: composite primary key definition
	UserID uint `gorm:"primaryKey"`
	GameID uint `gorm:"primaryKey"`

	User User `gorm:"foreignKey:UserID"`
	Game Game `gorm:"foreignKey:GameID"`
}

func (GameUser) TableName() string { return "games_users" }
