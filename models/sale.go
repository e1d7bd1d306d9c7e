package models

/*
 * 'Sale' holds the regional sale figures of a single game (one row per
 * game). Total comes straight from the source dataset and is not recomputed
 * from the regional columns.
 */
type Sale struct {
	ID           uint    `gorm:"primaryKey"`
	NorthAmerica float64 `gorm:"not null"`
	Europe       float64 `gorm:"not null"`
	Japan        float64 `gorm:"not null"`
	Other        float64 `gorm:"not null"`
	Total        float64 `gorm:"not null"`
	GameID       uint    `gorm:"not null;uniqueIndex"`

	Game Game `gorm:"foreignKey:GameID"`
}
