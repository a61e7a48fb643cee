package entity

import "time"

// User is the credential record for an account.
type User struct {
	ID int64
	// Username is the unique login identifier, stored lowercase.
	Username string
	// Password is the bcrypt hash of the login password.
	Password string
	// TOTPSecret is the AES-GCM ciphertext of the base32 TOTP seed.
	TOTPSecret []byte
	Status     UserStatus
	CreatedAt  time.Time
	// ConfirmedAt is set when the enrollment code check succeeds.
	ConfirmedAt *time.Time
}
