package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndVerify(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("p1")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if hash == "p1" {
		t.Fatal("hash must not equal plaintext")
	}
	if !h.Verify("p1", hash) {
		t.Fatal("Verify must accept the original plaintext")
	}
	if h.Verify("p2", hash) {
		t.Fatal("Verify must reject a different plaintext")
	}
}

func TestHasher_SaltedHashesDiffer(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	h1, err := h.Hash("same")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	h2, err := h.Hash("same")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if h1 == h2 {
		t.Fatal("two hashes of the same plaintext must differ (salt)")
	}
	if !h.Verify("same", h1) || !h.Verify("same", h2) {
		t.Fatal("both salted hashes must verify against the original plaintext")
	}
}

func TestNewHasher_OutOfRangeCostFallsBack(t *testing.T) {
	t.Parallel()

	h := NewHasher(99)
	if h.cost != bcrypt.DefaultCost {
		t.Fatalf("cost = %d, want bcrypt.DefaultCost", h.cost)
	}
}
