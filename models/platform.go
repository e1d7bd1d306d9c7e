package models

/*
 * 'Platform' is a reference table of gaming platforms (ex: PC, PS5, Xbox).
 * There is no sentinel row: a catalog row whose platform cannot be resolved
 * simply gets no GamePlatform association.
 */
type Platform struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:30;not null;uniqueIndex"`

	GameLinks []GamePlatform `gorm:"foreignKey:PlatformID;constraint:OnDelete:CASCADE"`
}

func (p Platform) ReferenceName() string { return p.Name }
