package server

import (
	"crypto/ed25519"
	"crypto/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gossh "golang.org/x/crypto/ssh"
)

func newTestKey(t *testing.T) gossh.PublicKey {
	t.Helper()
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	key, err := gossh.NewPublicKey(pub)
	require.NoError(t, err)
	return key
}

func TestIsKeyAuthorized(t *testing.T) {
	allowed := newTestKey(t)
	other := newTestKey(t)

	path := filepath.Join(t.TempDir(), "authorized_keys")
	content := strings.Join([]string{
		"# operators",
		"",
		"not a key",
		strings.TrimSpace(string(gossh.MarshalAuthorizedKey(allowed))) + " ops@example",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	assert.True(t, isKeyAuthorized(allowed, path))
	assert.False(t, isKeyAuthorized(other, path))
}

func TestIsKeyAuthorized_MissingFile(t *testing.T) {
	assert.False(t, isKeyAuthorized(newTestKey(t), filepath.Join(t.TempDir(), "missing")))
}

func TestGetKeyFingerprint(t *testing.T) {
	fp := getKeyFingerprint(newTestKey(t))

	assert.True(t, strings.HasPrefix(fp, "SHA256:"))
}
