package hash

// Hash defines the contract for one-way hashing of secrets.
//
// Verify must be safe against timing attacks; a mismatch is a normal false
// result, never an error.
type Hash interface {
	// Hash returns the hashed representation of plaintext.
	Hash(plaintext string) ([]byte, error)
	// Verify reports whether plaintext matches the hashed value.
	Verify(hashed, plaintext string) bool
}
