package models

/*
 * 'Game' represents one video game of the catalog. It references Genre and
 * Publisher (both mandatory; unresolved labels are linked to the "Unknown"
 * sentinel rows instead of staying null) and owns one Sale plus the
 * association rows towards users and platforms.
 */
type Game struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null"`
	Rank        int    `gorm:"not null"` // external popularity ordinal, not unique
	PublisherID uint   `gorm:"not null;index"`
	GenreID     uint   `gorm:"not null;index"`

	// GORM reads the ON DELETE action from the parent side of a relation,
	// so the cascade tags live on Publisher.Games and Genre.Games, not here.
	Publisher Publisher `gorm:"foreignKey:PublisherID"`
	Genre     Genre     `gorm:"foreignKey:GenreID"`

	Sale          *Sale          `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
	UserLinks     []GameUser     `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
	PlatformLinks []GamePlatform `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
}
