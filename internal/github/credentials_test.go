package github

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAppKey(t *testing.T) []byte {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})
}

func TestTokenProvider(t *testing.T) {
	_, err := TokenProvider{Token: "  "}.HTTPClient(t.Context(), "")
	assert.ErrorIs(t, err, ErrNoCredential)

	client, err := TokenProvider{Token: "ghp_test"}.HTTPClient(t.Context(), "123")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestAppProvider_Installation(t *testing.T) {
	p := &AppProvider{AppID: 1, PrivateKey: testAppKey(t)}

	_, err := p.HTTPClient(t.Context(), "")
	assert.ErrorIs(t, err, ErrNoCredential)

	_, err = p.HTTPClient(t.Context(), "not-a-number")
	assert.ErrorContains(t, err, `invalid installation ID "not-a-number"`)

	p.DefaultInstallationID = "42"
	first, err := p.HTTPClient(t.Context(), "")
	require.NoError(t, err)
	second, err := p.HTTPClient(t.Context(), "42")
	require.NoError(t, err)
	other, err := p.HTTPClient(t.Context(), "43")
	require.NoError(t, err)

	assert.Same(t, first.Transport, second.Transport)
	assert.NotSame(t, first.Transport, other.Transport)
	assert.Len(t, p.transports, 2)
}

func TestAppProvider_BadKey(t *testing.T) {
	p := &AppProvider{AppID: 1, PrivateKey: []byte("not a key"), DefaultInstallationID: "42"}

	_, err := p.HTTPClient(t.Context(), "")

	assert.ErrorContains(t, err, "creating installation transport")
}

func TestConnector(t *testing.T) {
	_, err := NewConnector(nil, "").Connect(t.Context(), "42")
	assert.ErrorIs(t, err, ErrNoCredential)

	_, err = NewConnector(TokenProvider{}, "").Connect(t.Context(), "42")
	assert.ErrorIs(t, err, ErrNoCredential)

	client, err := NewConnector(TokenProvider{Token: "ghp_test"}, "https://ghe.example.com/api/v3/").Connect(t.Context(), "")
	require.NoError(t, err)
	assert.NotNil(t, client)
}
