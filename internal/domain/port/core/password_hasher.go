package core

// PasswordHasher turns plaintext passwords into one-way hashes and checks them
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}
