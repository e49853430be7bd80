package entities

import "time"

// Credential is a user's login record in the shared users database.
// The plaintext username is never stored; lookups recompute the SHA-256
// hash of the supplied username. Salt is empty for argon2 records since
// the PHC-encoded hash embeds its own salt.
type Credential struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UsernameHash string    `gorm:"uniqueIndex;size:64" json:"username_hash"`
	PasswordHash string    `gorm:"type:text" json:"-"`
	Salt         string    `gorm:"size:64" json:"-"`
	Algo         string    `gorm:"size:16" json:"algo"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Credential) TableName() string {
	return "users"
}
