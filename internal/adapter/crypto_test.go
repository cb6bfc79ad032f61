package adapter_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-hotwallet/internal/adapter"
)

func generateKey(t *testing.T) (*rsa.PrivateKey, string, string) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	pkcs1 := string(pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)}))

	der, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)
	pkcs8 := string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}))

	return key, pkcs1, pkcs8
}

func encrypt(t *testing.T, key *rsa.PrivateKey, plain string) string {
	t.Helper()
	raw, err := rsa.EncryptPKCS1v15(rand.Reader, &key.PublicKey, []byte(plain))
	require.NoError(t, err)
	return base64.StdEncoding.EncodeToString(raw)
}

func TestRSADecrypter_Decrypt(t *testing.T) {
	key, pkcs1, pkcs8 := generateKey(t)
	ciphertext := encrypt(t, key, "correct horse battery staple")
	decrypter := adapter.NewRSADecrypter()

	plain, err := decrypter.Decrypt(ciphertext, pkcs1)
	require.NoError(t, err)
	assert.Equal(t, "correct horse battery staple", plain)

	plain, err = decrypter.Decrypt(ciphertext, pkcs8)
	require.NoError(t, err)
	assert.Equal(t, "correct horse battery staple", plain)
}

func TestRSADecrypter_DecryptFailures(t *testing.T) {
	key, pkcs1, _ := generateKey(t)
	_, otherKey, _ := generateKey(t)
	decrypter := adapter.NewRSADecrypter()

	_, err := decrypter.Decrypt(encrypt(t, key, "secret"), otherKey)
	assert.Error(t, err)

	_, err = decrypter.Decrypt("not base64!", pkcs1)
	assert.Error(t, err)

	_, err = decrypter.Decrypt(encrypt(t, key, "secret"), "not a pem")
	assert.Error(t, err)
}
