package security

import (
	"testing"
	"time"
)

func TestPlayerTokenRoundTrip(t *testing.T) {
	secret := "test-secret"
	playerID := NewPlayerID()

	token, err := SignPlayerToken(secret, playerID, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	parsed, err := ParsePlayerToken(secret, token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed != playerID {
		t.Errorf("parsed id %q, want %q", parsed, playerID)
	}
}

func TestPlayerTokenWrongSecret(t *testing.T) {
	token, err := SignPlayerToken("secret-a", NewPlayerID(), time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ParsePlayerToken("secret-b", token); err == nil {
		t.Error("token accepted under the wrong secret")
	}
}

func TestPlayerTokenExpired(t *testing.T) {
	token, err := SignPlayerToken("secret", NewPlayerID(), -time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ParsePlayerToken("secret", token); err == nil {
		t.Error("expired token accepted")
	}
}

func TestPlayerTokenGarbage(t *testing.T) {
	if _, err := ParsePlayerToken("secret", "not.a.token"); err == nil {
		t.Error("garbage accepted as a token")
	}
}

func TestNewPlayerIDUnique(t *testing.T) {
	if NewPlayerID() == NewPlayerID() {
		t.Error("player ids collide")
	}
}
