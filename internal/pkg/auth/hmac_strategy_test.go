package auth

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func encodeRaw(raw string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func TestNewHMACStrategy_Defaults(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})
	if string(strategy.secret) != "secret" {
		t.Fatalf("unexpected secret: %q", string(strategy.secret))
	}
	if strategy.opts.TTL != defaultTTL {
		t.Fatalf("unexpected ttl: %s", strategy.opts.TTL)
	}
	if strategy.opts.Issuer != defaultIssuer {
		t.Fatalf("unexpected issuer: %s", strategy.opts.Issuer)
	}
}

func TestHMACStrategy_IssueAndParse(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{TTL: time.Minute})
	token, err := strategy.IssueToken(42)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if strings.ContainsAny(token, "+/=") {
		t.Fatalf("expected cookie-safe token, got %q", token)
	}
	userID, err := strategy.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if userID != 42 {
		t.Fatalf("unexpected user id: %d", userID)
	}
}

func TestHMACStrategy_RejectsMalformedTokens(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})
	future := time.Now().Add(time.Minute).Unix()

	signed := func(payload string) string {
		return encodeRaw(payload + "." + strategy.sign(payload))
	}

	cases := map[string]string{
		"not base64":     "***",
		"too few parts":  encodeRaw("gymkeeper.1"),
		"bad user id":    signed(fmt.Sprintf("gymkeeper.abc.%d", future)),
		"zero user id":   signed(fmt.Sprintf("gymkeeper.0.%d", future)),
		"bad expiry":     signed("gymkeeper.10.soon"),
		"foreign issuer": signed(fmt.Sprintf("other.10.%d", future)),
		"expired":        signed(fmt.Sprintf("gymkeeper.10.%d", time.Now().Add(-time.Minute).Unix())),
	}

	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := strategy.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestHMACStrategy_RejectsTamperedSignature(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{TTL: time.Minute})
	token, err := strategy.IssueToken(7)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		t.Fatalf("decode token: %v", err)
	}
	parts := strings.Split(string(raw), ".")
	parts[3] = "tampered"
	if _, err := strategy.ParseToken(encodeRaw(strings.Join(parts, "."))); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}

	other := NewHMACStrategy("another-secret", Options{TTL: time.Minute})
	if _, err := other.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for foreign secret, got %v", err)
	}
}

func TestHMACStrategy_ExpiresAfterTTL(t *testing.T) {
	issuedAt := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)
	issuer := NewHMACStrategy("secret", Options{TTL: time.Hour, Now: fixedNow(issuedAt)})
	token, err := issuer.IssueToken(5)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	later := NewHMACStrategy("secret", Options{TTL: time.Hour, Now: fixedNow(issuedAt.Add(2 * time.Hour))})
	if _, err := later.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected expired token to be rejected, got %v", err)
	}
}

func TestHMACStrategy_Name(t *testing.T) {
	if name := NewHMACStrategy("secret", Options{}).Name(); name != "hmac" {
		t.Fatalf("unexpected name: %s", name)
	}
}
