package models

import (
	"gorm.io/datatypes"
)

/*
 * 'User' represents a platform account. Raw secrets are never stored:
 * Password holds a bcrypt digest and Mail a SHA-256 digest of the
 * normalized address, so uniqueness can still be checked. Expiry gates
 * how long the account data is retained.
 */
type User struct {
	ID       uint           `gorm:"primaryKey"`
	Pseudo   string         `gorm:"size:20;not null;uniqueIndex"`
	Password string         `gorm:"type:char(60);not null"`
	Mail     string         `gorm:"type:char(64);not null;uniqueIndex"`
	Consent  bool           `gorm:"not null"`
	Expiry   datatypes.Date `gorm:"not null"`

	// Deleting a user removes its association rows, never the games behind them.
	GameLinks []GameUser `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
