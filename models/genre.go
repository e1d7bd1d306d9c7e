package models

/*
 * 'Genre' is a reference table of game genres (ex: RPG, FPS). Rows are
 * created once by the reference synchronizer and never renamed afterwards.
 * A sentinel row named "Unknown" is guaranteed to exist before any catalog
 * load runs.
 */
type Genre struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:20;not null;uniqueIndex"`

	// NOTE: deleting a Genre cascades onto its games. That behavior is
	// inherited from the historical schema and kept on purpose.
	Games []Game `gorm:"foreignKey:GenreID;constraint:OnDelete:CASCADE"`
}

func (g Genre) ReferenceName() string { return g.Name }
