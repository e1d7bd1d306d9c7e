package models

/*
 * 'Publisher' is a reference table of game publishers. Like Genre it grows
 * through the reference synchronizer only and carries an "Unknown" sentinel
 * row used as fallback for unresolved labels.
 */
type Publisher struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:100;not null;uniqueIndex"`

	// NOTE: deleting a Publisher cascades onto its games. That behavior is
	// inherited from the historical schema and kept on purpose.
	Games []Game `gorm:"foreignKey:PublisherID;constraint:OnDelete:CASCADE"`
}

func (p Publisher) ReferenceName() string { return p.Name }
