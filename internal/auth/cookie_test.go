// ABOUTME: Tests for signed session cookie encoding
// ABOUTME: Covers round-trip, tampering, wrong secret, and expiry

package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestCookieCodec_RoundTrip(t *testing.T) {
	codec := NewCookieCodec(testSecret, time.Hour)

	value, err := codec.Encode("session-abc")
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	sessionID, err := codec.Decode(value)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if sessionID != "session-abc" {
		t.Errorf("expected session-abc, got %q", sessionID)
	}
}

func TestCookieCodec_WrongSecret(t *testing.T) {
	codec := NewCookieCodec(testSecret, time.Hour)
	other := NewCookieCodec([]byte("another-secret-another-secret-00"), time.Hour)

	value, err := codec.Encode("session-abc")
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	_, err = other.Decode(value)
	if !errors.Is(err, ErrInvalidCookie) {
		t.Errorf("expected ErrInvalidCookie, got %v", err)
	}
}

func TestCookieCodec_Tampered(t *testing.T) {
	codec := NewCookieCodec(testSecret, time.Hour)

	value, err := codec.Encode("session-abc")
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	_, err = codec.Decode(value + "x")
	if !errors.Is(err, ErrInvalidCookie) {
		t.Errorf("expected ErrInvalidCookie, got %v", err)
	}

	_, err = codec.Decode("garbage")
	if !errors.Is(err, ErrInvalidCookie) {
		t.Errorf("expected ErrInvalidCookie for garbage, got %v", err)
	}
}

func TestCookieCodec_Expired(t *testing.T) {
	codec := NewCookieCodec(testSecret, -time.Minute)

	value, err := codec.Encode("session-abc")
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	_, err = codec.Decode(value)
	if !errors.Is(err, ErrExpiredCookie) {
		t.Errorf("expected ErrExpiredCookie, got %v", err)
	}
}

func TestCookieSettings_SetAndClear(t *testing.T) {
	settings := CookieSettings{Secure: true, SameSite: http.SameSiteNoneMode, TTL: time.Hour}

	rec := httptest.NewRecorder()
	settings.Set(rec, "token-value")

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	c := cookies[0]
	if c.Name != CookieName {
		t.Errorf("cookie name: got %q, want %q", c.Name, CookieName)
	}
	if c.Value != "token-value" {
		t.Errorf("cookie value: got %q", c.Value)
	}
	if !c.HttpOnly || !c.Secure {
		t.Error("cookie should be HttpOnly and Secure")
	}
	if c.MaxAge != 3600 {
		t.Errorf("cookie MaxAge: got %d, want 3600", c.MaxAge)
	}

	rec = httptest.NewRecorder()
	settings.Clear(rec)
	cookies = rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	if cookies[0].MaxAge >= 0 {
		t.Errorf("clearing cookie should set negative MaxAge, got %d", cookies[0].MaxAge)
	}
}
