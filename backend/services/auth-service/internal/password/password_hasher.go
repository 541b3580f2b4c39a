package password

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

const (
	// MinLength is the shortest accepted password in characters.
	MinLength = 8
	// MaxBytes is the bcrypt input limit.
	MaxBytes = 72
)

var (
	// ErrTooShort is returned for passwords below MinLength.
	ErrTooShort = errors.New("password: too short")
	// ErrTooLong is returned for passwords above MaxBytes.
	ErrTooLong = errors.New("password: too long")
)

// Hasher hashes and verifies consumer passwords.
type Hasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// BcryptHasher implements Hasher using bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a bcrypt-backed Hasher. Out of range costs
// fall back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Validate reports whether password fits the length limits.
func Validate(password string) error {
	switch {
	case utf8.RuneCountInString(password) < MinLength:
		return fmt.Errorf("%w: need at least %d characters", ErrTooShort, MinLength)
	case len(password) > MaxBytes:
		return fmt.Errorf("%w: at most %d bytes", ErrTooLong, MaxBytes)
	}
	return nil
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	if err := Validate(password); err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("password: hash: %w", err)
	}
	return string(hash), nil
}

func (h *BcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
