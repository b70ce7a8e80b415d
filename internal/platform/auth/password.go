package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters (OWASP recommended)
const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024
	argon2Threads = 4
	argon2KeyLen  = 32
	saltLen       = 16
)

// Credentials is the admin login loaded from an auth file ("user:hash").
type Credentials struct {
	User string
	Hash string
}

// HashPassword encodes password as $argon2id$v=19$m=..,t=..,p=..$salt$hash.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("hash password: generate salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argon2Memory, argon2Time, argon2Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// VerifyPassword checks password against an encoded Argon2id hash in constant time.
func VerifyPassword(password, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 {
		return false, errors.New("verify password: invalid hash format")
	}
	if parts[1] != "argon2id" {
		return false, errors.New("verify password: not an argon2id hash")
	}

	var memory, iterations uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &threads); err != nil {
		return false, fmt.Errorf("verify password: parse parameters: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("verify password: decode salt: %w", err)
	}

	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, fmt.Errorf("verify password: decode hash: %w", err)
	}

	got := argon2.IDKey([]byte(password), salt, iterations, memory, threads, uint32(len(want)))

	return subtle.ConstantTimeCompare(want, got) == 1, nil
}

// Check compares a basic-auth pair against the loaded credentials.
func (c *Credentials) Check(user, password string) (bool, error) {
	userMatch := subtle.ConstantTimeCompare([]byte(user), []byte(c.User)) == 1
	if !userMatch {
		return false, nil
	}
	return VerifyPassword(password, c.Hash)
}

// LoadFile reads "user:hash" from path. A missing file yields (nil, nil),
// which callers treat as auth disabled.
func LoadFile(path string) (*Credentials, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("load auth file %q: %w", path, err)
	}

	user, hash, ok := strings.Cut(strings.TrimSpace(string(data)), ":")
	if !ok || user == "" || hash == "" {
		return nil, fmt.Errorf("load auth file %q: invalid format (expected user:hash)", path)
	}

	return &Credentials{User: user, Hash: hash}, nil
}

// WriteFile stores user and a fresh hash of password at path with mode 0600.
func WriteFile(path, user, password string) error {
	if strings.TrimSpace(user) == "" || strings.Contains(user, ":") {
		return errors.New("write auth file: user must be non-empty and must not contain ':'")
	}

	hash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("write auth file: %w", err)
	}

	if err := os.WriteFile(path, []byte(user+":"+hash+"\n"), 0o600); err != nil {
		return fmt.Errorf("write auth file %q: %w", path, err)
	}

	return nil
}
