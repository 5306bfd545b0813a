package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const devKeyBits = 2048

// LoadRSAPrivateKeyFromPEM decodes a PEM block and returns an RSA private key.
// Both PKCS1 and PKCS8 encodings are accepted.
func LoadRSAPrivateKeyFromPEM(pemBytes []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, errors.New("failed to decode PEM block")
	}
	key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err != nil {
		key2, err2 := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err2 != nil {
			return nil, err
		}
		var ok bool
		key, ok = key2.(*rsa.PrivateKey)
		if !ok {
			return nil, errors.New("PEM is not an RSA private key")
		}
	}
	return key, nil
}

// EnsureKeyPair loads the private key at privatePath. When the file is absent
// and generate is true, a fresh 2048-bit keypair is generated and both halves
// are persisted before first use; with generate false a missing key is fatal
// so the process fails fast at startup.
func EnsureKeyPair(privatePath, publicPath string, generate bool) (*rsa.PrivateKey, error) {
	pemBytes, err := os.ReadFile(privatePath)
	if err == nil {
		return LoadRSAPrivateKeyFromPEM(pemBytes)
	}
	if !os.IsNotExist(err) {
		return nil, err
	}
	if !generate {
		return nil, fmt.Errorf("private key %s not found", privatePath)
	}
	key, err := rsa.GenerateKey(rand.Reader, devKeyBits)
	if err != nil {
		return nil, err
	}
	if err := writeKeyPair(key, privatePath, publicPath); err != nil {
		return nil, err
	}
	return key, nil
}

func writeKeyPair(key *rsa.PrivateKey, privatePath, publicPath string) error {
	for _, p := range []string{privatePath, publicPath} {
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return err
		}
	}
	privPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
	if err := os.WriteFile(privatePath, privPEM, 0o600); err != nil {
		return err
	}
	pubBytes, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return err
	}
	pubPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: pubBytes,
	})
	return os.WriteFile(publicPath, pubPEM, 0o644)
}
