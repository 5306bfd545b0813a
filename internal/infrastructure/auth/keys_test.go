package auth

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureKeyPair_MissingWithoutGenerate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := EnsureKeyPair(filepath.Join(dir, "priv.pem"), filepath.Join(dir, "pub.pem"), false)
	if err == nil {
		t.Fatal("expected error for missing key without generation")
	}
}

func TestEnsureKeyPair_GeneratesAndReloads(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	privPath := filepath.Join(dir, "certs", "priv.pem")
	pubPath := filepath.Join(dir, "certs", "pub.pem")

	key, err := EnsureKeyPair(privPath, pubPath, true)
	if err != nil {
		t.Fatalf("EnsureKeyPair error: %v", err)
	}
	if key.N.BitLen() < 2048 {
		t.Errorf("key size = %d bits, want >= 2048", key.N.BitLen())
	}
	for _, p := range []string{privPath, pubPath} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("expected %s to exist: %v", p, err)
		}
	}

	// Second call must load the persisted key, not generate a new one.
	reloaded, err := EnsureKeyPair(privPath, pubPath, true)
	if err != nil {
		t.Fatalf("reload error: %v", err)
	}
	if reloaded.N.Cmp(key.N) != 0 {
		t.Error("reloaded key differs from generated key")
	}
}

func TestLoadRSAPrivateKeyFromPEM_Garbage(t *testing.T) {
	t.Parallel()

	if _, err := LoadRSAPrivateKeyFromPEM([]byte("not a pem")); err == nil {
		t.Fatal("expected error for garbage input")
	}
}
