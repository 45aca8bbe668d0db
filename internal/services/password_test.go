package services_test

import (
	"strings"
	"testing"

	"membergate/internal/services"
)

func TestHashRoundTrip(t *testing.T) {
	h := services.NewHasher()
	hash, err := h.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !h.Verify(hash, "correct horse battery staple") {
		t.Fatal("verify rejected the original password")
	}
	if h.Verify(hash, "wrong password") {
		t.Fatal("verify accepted a different password")
	}
}

func TestHashIsSaltedAndSelfDescribing(t *testing.T) {
	h := services.NewHasher()
	h1, err := h.Hash("pw1")
	if err != nil {
		t.Fatal(err)
	}
	h2, err := h.Hash("pw1")
	if err != nil {
		t.Fatal(err)
	}
	if h1 == h2 {
		t.Fatal("two hashes of the same password are identical; salt missing")
	}
	if strings.Contains(h1, "pw1") {
		t.Fatal("hash contains the plaintext")
	}
	if !strings.HasPrefix(h1, "$2") {
		t.Fatalf("unexpected hash format: %s", h1)
	}
	// Verify works from the stored string alone
	if !h.Verify(h1, "pw1") || !h.Verify(h2, "pw1") {
		t.Fatal("verify failed on self-describing hash")
	}
}

func TestVerifyMalformedHashIsFalse(t *testing.T) {
	h := services.NewHasher()
	for _, bad := range []string{"", "not-a-hash", "$2y$zz$garbage"} {
		if h.Verify(bad, "anything") {
			t.Fatalf("verify accepted malformed hash %q", bad)
		}
	}
}
