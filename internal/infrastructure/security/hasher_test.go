package security

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("pw123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "pw123" || hash == "" {
		t.Fatalf("expected hashed output, got %q", hash)
	}
	if !h.Verify("pw123", hash) {
		t.Fatalf("expected hash to verify against original password")
	}
}

func TestBcryptHasher_Mismatch(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("correct")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if h.Verify("wrong", hash) {
		t.Fatalf("expected mismatch to verify false")
	}
}

func TestBcryptHasher_SaltedOutput(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	h1, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	h2, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("expected distinct hashes for the same password (fresh salt per call)")
	}
	if !h.Verify("same-password", h1) || !h.Verify("same-password", h2) {
		t.Fatalf("both hashes should verify")
	}
}

func TestBcryptHasher_GarbageHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	if h.Verify("anything", "not-a-bcrypt-hash") {
		t.Fatalf("expected malformed hash to verify false")
	}
}

func TestNewBcryptHasher_CostClamp(t *testing.T) {
	h := NewBcryptHasher(999)
	if h.cost != bcrypt.DefaultCost {
		t.Fatalf("expected out-of-range cost to fall back to default, got %d", h.cost)
	}
}
