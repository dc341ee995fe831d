package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestIssueAndParse(t *testing.T) {
	tok, err := Issue("alice@example.com", "alice", "patient", "secret")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := Parse(tok, "secret")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Email != "alice@example.com" {
		t.Errorf("email = %q, want alice@example.com", claims.Email)
	}
	if claims.Username != "alice" {
		t.Errorf("username = %q, want alice", claims.Username)
	}
	if claims.Role != "patient" {
		t.Errorf("role = %q, want patient", claims.Role)
	}
	if claims.ID == "" {
		t.Error("empty token id")
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	tok, err := Issue("alice@example.com", "alice", "patient", "secret")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := Parse(tok, "other-secret"); err == nil {
		t.Fatal("expected parse error with wrong secret")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := Parse("not-a-token", "secret"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestRevocations(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	rev := NewRevocations(rdb)
	ctx := context.Background()

	gone, err := rev.IsRevoked(ctx, "jti-1")
	if err != nil {
		t.Fatalf("is revoked: %v", err)
	}
	if gone {
		t.Fatal("fresh token id reported revoked")
	}

	if err := rev.Revoke(ctx, "jti-1", time.Hour); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	gone, err = rev.IsRevoked(ctx, "jti-1")
	if err != nil {
		t.Fatalf("is revoked: %v", err)
	}
	if !gone {
		t.Fatal("revoked token id not reported revoked")
	}

	// entries expire with the token
	mr.FastForward(2 * time.Hour)
	gone, err = rev.IsRevoked(ctx, "jti-1")
	if err != nil {
		t.Fatalf("is revoked: %v", err)
	}
	if gone {
		t.Fatal("revocation outlived its TTL")
	}
}

func TestRevokeExpiredTokenIsNoop(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	rev := NewRevocations(rdb)

	// a token already past its expiry needs no tracking
	if err := rev.Revoke(context.Background(), "jti-2", -time.Minute); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if mr.Exists("session:revoked:jti-2") {
		t.Fatal("expired token stored in the revocation list")
	}
}
