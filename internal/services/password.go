package services

import "golang.org/x/crypto/bcrypt"

// Hasher wraps bcrypt. The hash output is self-describing: algorithm,
// cost and a random per-call salt are embedded, so Verify needs nothing
// beyond the stored string.
type Hasher struct {
	Cost int
}

func NewHasher() Hasher { return Hasher{Cost: 12} }

func (h Hasher) Hash(plain string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = 12
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plain matches the stored hash. Malformed input
// is treated as a mismatch, never an error.
func (h Hasher) Verify(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
