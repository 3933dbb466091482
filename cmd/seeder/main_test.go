package main

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordUsesConfiguredCost(t *testing.T) {
	hash, err := hashPassword("loja-social-dev")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("not a bcrypt hash: %v", err)
	}
	if cost != hashCost {
		t.Errorf("expected cost %d, got %d", hashCost, cost)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("loja-social-dev")); err != nil {
		t.Errorf("hash does not verify the password: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("errada")); err == nil {
		t.Error("hash verified a wrong password")
	}
}
