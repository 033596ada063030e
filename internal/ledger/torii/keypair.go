package torii

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
)

// LoadKeyPair reads the hex-encoded ed25519 keypair from <name>.priv and
// <name>.pub and verifies that the two halves belong together. The private
// file holds the 32-byte seed.
func LoadKeyPair(name string) (ed25519.PrivateKey, error) {
	privHex, err := os.ReadFile(name + ".priv")
	if err != nil {
		return nil, fmt.Errorf("read private key: %w", err)
	}
	pubHex, err := os.ReadFile(name + ".pub")
	if err != nil {
		return nil, fmt.Errorf("read public key: %w", err)
	}

	seed, err := hex.DecodeString(strings.TrimSpace(string(privHex)))
	if err != nil {
		return nil, fmt.Errorf("decode private key: %w", err)
	}
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("private key is %d bytes, want %d", len(seed), ed25519.SeedSize)
	}

	pub, err := hex.DecodeString(strings.TrimSpace(string(pubHex)))
	if err != nil {
		return nil, fmt.Errorf("decode public key: %w", err)
	}

	key := ed25519.NewKeyFromSeed(seed)
	if !bytes.Equal(key.Public().(ed25519.PublicKey), pub) {
		return nil, fmt.Errorf("public key %s.pub does not match the private key", name)
	}
	return key, nil
}
