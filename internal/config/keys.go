package config

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"log/slog"
	"os"
)

// loadJWTKeys reads base64 PEM keys from JWT_PRIVATE_KEY and JWT_PUBLIC_KEY.
// Outside production a fresh pair is generated when they are missing, which
// invalidates issued tokens on every restart.
func (c *Config) loadJWTKeys() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKeyB64 := os.Getenv("JWT_PRIVATE_KEY")
	publicKeyB64 := os.Getenv("JWT_PUBLIC_KEY")

	if privateKeyB64 != "" && publicKeyB64 != "" {
		return DecodeKeyPair(privateKeyB64, publicKeyB64)
	}

	if c.IsProduction() {
		return nil, nil, errors.New("JWT_PRIVATE_KEY and JWT_PUBLIC_KEY must be set in production")
	}

	slog.Info("generating ephemeral RSA keypair for JWT signing", "environment", c.Server.Environment)
	return GenerateRSAKeyPair()
}

// DecodeKeyPair parses a base64-encoded PEM private/public key pair.
func DecodeKeyPair(privateKeyB64, publicKeyB64 string) (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKeyBytes, err := base64.StdEncoding.DecodeString(privateKeyB64)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode JWT_PRIVATE_KEY: %w", err)
	}

	publicKeyBytes, err := base64.StdEncoding.DecodeString(publicKeyB64)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode JWT_PUBLIC_KEY: %w", err)
	}

	privateKey, err := parseRSAPrivateKey(privateKeyBytes)
	if err != nil {
		return nil, nil, err
	}

	publicKey, err := parseRSAPublicKey(publicKeyBytes)
	if err != nil {
		return nil, nil, err
	}

	if privateKey.PublicKey.N.Cmp(publicKey.N) != 0 {
		return nil, nil, errors.New("JWT public key does not match private key")
	}

	return privateKey, publicKey, nil
}

// GenerateRSAKeyPair generates a new 2048-bit RSA key pair.
func GenerateRSAKeyPair() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA key pair: %w", err)
	}
	return privateKey, &privateKey.PublicKey, nil
}

// EncodeKeyPair is the inverse of DecodeKeyPair. finctl uses it to print keys
// for JWT_PRIVATE_KEY and JWT_PUBLIC_KEY.
func EncodeKeyPair(privateKey *rsa.PrivateKey) (string, string, error) {
	privatePEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(privateKey),
	})

	publicDER, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal public key: %w", err)
	}
	publicPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: publicDER})

	return base64.StdEncoding.EncodeToString(privatePEM), base64.StdEncoding.EncodeToString(publicPEM), nil
}

func parseRSAPrivateKey(pemData []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the private key")
	}

	if privateKey, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return privateKey, nil
	}

	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	privateKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.New("not an RSA private key")
	}
	return privateKey, nil
}

func parseRSAPublicKey(pemData []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the public key")
	}

	publicKey, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	rsaPublicKey, ok := publicKey.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("not an RSA public key")
	}
	return rsaPublicKey, nil
}
