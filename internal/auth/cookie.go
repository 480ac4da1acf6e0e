// ABOUTME: Signed session cookie encoding and HTTP cookie management
// ABOUTME: Wraps the opaque session ID in an HS256 JWT so tampering is detectable

package auth

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the session cookie the browser carries.
const CookieName = "hatchboard_session"

// Cookie errors
var (
	ErrInvalidCookie = errors.New("invalid session cookie")
	ErrExpiredCookie = errors.New("session cookie expired")
)

// CookieCodec signs and verifies session cookie values. The value is a
// compact JWT whose "sub" claim is the server-side session ID; the
// signature stops clients from forging or swapping IDs.
type CookieCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewCookieCodec creates a codec signing with the given secret. Cookies
// expire after ttl, matching the server-side session TTL.
func NewCookieCodec(secret []byte, ttl time.Duration) *CookieCodec {
	return &CookieCodec{secret: secret, ttl: ttl}
}

// Encode wraps a session ID in a signed token.
func (c *CookieCodec) Encode(sessionID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": sessionID,
		"iat": now.Unix(),
		"exp": now.Add(c.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Decode verifies a cookie value and extracts the session ID.
func (c *CookieCodec) Decode(value string) (string, error) {
	token, err := jwt.Parse(value, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredCookie
		}
		return "", fmt.Errorf("%w: %v", ErrInvalidCookie, err)
	}
	if !token.Valid {
		return "", ErrInvalidCookie
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidCookie
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrInvalidCookie
	}
	return sub, nil
}

// CookieSettings controls the browser-facing cookie attributes.
type CookieSettings struct {
	Secure   bool
	SameSite http.SameSite
	TTL      time.Duration
}

// Set writes the session cookie on the response.
func (s CookieSettings) Set(w http.ResponseWriter, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(s.TTL.Seconds()),
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: s.SameSite,
	})
}

// Clear expires the session cookie on the response.
func (s CookieSettings) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: s.SameSite,
	})
}
