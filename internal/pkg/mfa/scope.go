package mfa

// Purpose identifies the encryption purpose.
type Purpose string

// PurposeOTPSeed scopes encryption to TOTP seeds.
const PurposeOTPSeed Purpose = "otp_seed"

// Scope binds encryption to account-specific identifiers.
// This is used as AAD (Additional Authenticated Data) in AES-GCM.
type Scope struct {
	// UserID is the user identifier for scoping.
	UserID int64
	// Purpose is the encryption purpose.
	Purpose Purpose
}
