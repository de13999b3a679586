// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/scrypt"
)

const (
	// defaultPBKDF2Iterations is used for "pbkdf2:<hash>" without an
	// explicit iteration count.
	defaultPBKDF2Iterations = 600000
	// scryptKeyLen matches the digest length written by Werkzeug.
	scryptKeyLen = 64
)

// ErrEmptyPassword is returned by Hash for an empty password.
var ErrEmptyPassword = errors.New("empty password")

// passwordHasher is the private implementation of [PasswordHasher].
type passwordHasher struct {
	cost int
}

// NewPasswordHasher constructs a [PasswordHasher] with bcrypt.DefaultCost.
func NewPasswordHasher() PasswordHasher {
	return &passwordHasher{cost: bcrypt.DefaultCost}
}

// Hash implements [PasswordHasher].
func (p *passwordHasher) Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), p.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}

	return string(hashed), nil
}

// Compare implements [PasswordHasher].
func (p *passwordHasher) Compare(hashed, plain string) bool {
	switch {
	case hashed == "" || plain == "":
		return false
	case strings.HasPrefix(hashed, "$2"):
		return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
	case strings.HasPrefix(hashed, "pbkdf2:"), strings.HasPrefix(hashed, "scrypt:"):
		ok, err := compareWerkzeug(hashed, plain)
		return err == nil && ok
	default:
		return false
	}
}

// compareWerkzeug verifies "method$salt$hexdigest" hashes.
func compareWerkzeug(hashed, plain string) (bool, error) {
	parts := strings.SplitN(hashed, "$", 3)
	if len(parts) != 3 {
		return false, errors.New("malformed hash")
	}
	method, salt, digestHex := parts[0], parts[1], parts[2]

	want, err := hex.DecodeString(digestHex)
	if err != nil {
		return false, fmt.Errorf("malformed digest: %w", err)
	}

	got, err := deriveWerkzeug(method, salt, plain, len(want))
	if err != nil {
		return false, err
	}

	return subtle.ConstantTimeCompare(got, want) == 1, nil
}

func deriveWerkzeug(method, salt, plain string, keyLen int) ([]byte, error) {
	args := strings.Split(method, ":")

	switch args[0] {
	case "pbkdf2":
		hashName := "sha256"
		iterations := defaultPBKDF2Iterations
		if len(args) > 1 {
			hashName = args[1]
		}
		if len(args) > 2 {
			n, err := strconv.Atoi(args[2])
			if err != nil || n <= 0 {
				return nil, errors.New("malformed pbkdf2 iterations")
			}
			iterations = n
		}

		h, err := hashFunc(hashName)
		if err != nil {
			return nil, err
		}
		return pbkdf2.Key([]byte(plain), []byte(salt), iterations, keyLen, h), nil

	case "scrypt":
		n, r, par := 1<<15, 8, 1
		if len(args) == 4 {
			var errN, errR, errP error
			n, errN = strconv.Atoi(args[1])
			r, errR = strconv.Atoi(args[2])
			par, errP = strconv.Atoi(args[3])
			if errN != nil || errR != nil || errP != nil {
				return nil, errors.New("malformed scrypt parameters")
			}
		} else if len(args) != 1 {
			return nil, errors.New("malformed scrypt parameters")
		}
		if keyLen == 0 {
			keyLen = scryptKeyLen
		}
		return scrypt.Key([]byte(plain), []byte(salt), n, r, par, keyLen)

	default:
		return nil, fmt.Errorf("unsupported hash method %q", args[0])
	}
}

func hashFunc(name string) (func() hash.Hash, error) {
	switch name {
	case "sha1":
		return sha1.New, nil
	case "sha256":
		return sha256.New, nil
	case "sha512":
		return sha512.New, nil
	default:
		return nil, fmt.Errorf("unsupported pbkdf2 hash %q", name)
	}
}
