// Package password hashes and checks account passwords with bcrypt.
package password

import (
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmpty    = errors.New("password is empty")
	ErrMismatch = errors.New("password does not match")
)

const Cost = bcrypt.DefaultCost

var unknownAccountHash = sync.OnceValue(func() []byte {
	h, _ := bcrypt.GenerateFromPassword([]byte("no-such-account"), Cost)
	return h
})

func Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmpty
	}
	h, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func Verify(hash, plain string) error {
	if hash == "" || plain == "" {
		return ErrEmpty
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}

// VerifyUnknown spends one comparison for an email that matched no account,
// so unknown and existing emails answer in similar time.
func VerifyUnknown(plain string) {
	_ = bcrypt.CompareHashAndPassword(unknownAccountHash(), []byte(plain))
}
