// Package kvstore is a small durable key-value store for local state.
package kvstore

import (
	"errors"
	"fmt"
	"regexp"
)

var ErrInvalidKey = errors.New("invalid key")

var keyRe = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,128}$`)

type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

func validateKey(key string) error {
	if !keyRe.MatchString(key) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	return nil
}
