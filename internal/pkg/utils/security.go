package utils

import (
	"clinic-portal/internal/pkg/constvars"
	"clinic-portal/internal/pkg/exceptions"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/nacl/secretbox"
)

const sealNonceSize = 24

// BuildBasicAuthToken returns base64(username:password), without the scheme prefix.
func BuildBasicAuthToken(username, password string) string {
	return base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
}

func BuildBasicAuthHeader(token string) string {
	return constvars.AuthSchemeBasic + " " + token
}

// TokenSealer encrypts basic auth tokens before they reach the session store.
type TokenSealer struct {
	key [32]byte
}

func NewTokenSealer(secret string) (*TokenSealer, error) {
	if len(secret) < constvars.MinSessionSecretLength {
		return nil, errors.New("token sealing secret must be at least 32 bytes long")
	}

	sealer := new(TokenSealer)
	reader := hkdf.New(sha256.New, []byte(secret), nil, []byte(constvars.SessionTokenKeyContext))
	if _, err := io.ReadFull(reader, sealer.key[:]); err != nil {
		return nil, err
	}
	return sealer, nil
}

func (s *TokenSealer) Seal(token string) (string, error) {
	var nonce [sealNonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", exceptions.ErrSealToken(err)
	}

	sealed := secretbox.Seal(nonce[:], []byte(token), &nonce, &s.key)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

func (s *TokenSealer) Open(sealed string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(sealed)
	if err != nil {
		return "", exceptions.ErrOpenToken(err)
	}
	if len(raw) < sealNonceSize+secretbox.Overhead {
		return "", exceptions.ErrOpenToken(errors.New("sealed token too short"))
	}

	var nonce [sealNonceSize]byte
	copy(nonce[:], raw[:sealNonceSize])
	token, ok := secretbox.Open(nil, raw[sealNonceSize:], &nonce, &s.key)
	if !ok {
		return "", exceptions.ErrOpenToken(errors.New("sealed token failed authentication"))
	}
	return string(token), nil
}
