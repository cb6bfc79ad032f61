package adapter

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"
)

// Decrypter decrypts operator-submitted secrets with a project's private key
//
//go:generate mockgen -source=crypto.go -destination=../mocks/crypto.go -package=mocks -mock_names=Decrypter=MockDecrypter
type Decrypter interface {
	// Decrypt decodes a base64 ciphertext and decrypts it with the PEM encoded RSA private key
	Decrypt(ciphertext string, privateKeyPEM string) (string, error)
}

// RSADecrypter implements Decrypter with RSA PKCS#1 v1.5
type RSADecrypter struct{}

// NewRSADecrypter creates a new RSA decrypter
func NewRSADecrypter() Decrypter {
	return &RSADecrypter{}
}

func (d *RSADecrypter) Decrypt(ciphertext string, privateKeyPEM string) (string, error) {
	key, err := parseRSAPrivateKey(privateKeyPEM)
	if err != nil {
		return "", err
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(ciphertext))
	if err != nil {
		return "", fmt.Errorf("failed to decode ciphertext: %w", err)
	}

	plain, err := rsa.DecryptPKCS1v15(rand.Reader, key, raw)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt: %w", err)
	}

	return string(plain), nil
}

func parseRSAPrivateKey(privateKeyPEM string) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode([]byte(privateKeyPEM))
	if block == nil {
		return nil, errors.New("invalid private key PEM")
	}

	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.New("private key is not RSA")
	}
	return key, nil
}
