package auth

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"), hash)

	again, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again, "salts must differ")

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
		wantErr  bool
	}{
		{name: "correct password", password: "correct horse", hash: hash, want: true},
		{name: "wrong password", password: "battery staple", hash: hash, want: false},
		{name: "invalid format", password: "x", hash: "invalid", wantErr: true},
		{name: "wrong algorithm", password: "x", hash: "$bcrypt$v=1$m=65536,t=1,p=4$salt$hash", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := VerifyPassword(tt.password, tt.hash)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth.secret")

	require.NoError(t, WriteFile(path, "admin", "s3cret"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	creds, err := LoadFile(path)
	require.NoError(t, err)
	require.NotNil(t, creds)
	assert.Equal(t, "admin", creds.User)

	ok, err := creds.Check("admin", "s3cret")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = creds.Check("root", "s3cret")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadFileMissingDisablesAuth(t *testing.T) {
	creds, err := LoadFile(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Nil(t, creds)

	creds, err = LoadFile("")
	require.NoError(t, err)
	assert.Nil(t, creds)
}

func TestLoadFileRejectsBadFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth.secret")
	require.NoError(t, os.WriteFile(path, []byte("no-separator\n"), 0o600))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestWriteFileRejectsColonInUser(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "auth.secret"), "a:b", "pw")
	assert.Error(t, err)
}
