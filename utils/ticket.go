package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TicketSubject marks tokens that prove ownership of an email address.
const TicketSubject = "email-verification"

// IssueVerificationTicket signs a short-lived HS256 token stating that email
// passed code verification.
func IssueVerificationTicket(email string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   TicketSubject,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// TicketEmail extracts the verified email from ticket claims.
func TicketEmail(claims jwt.MapClaims) (string, error) {
	if sub, _ := claims["sub"].(string); sub != TicketSubject {
		return "", errors.New("not a verification ticket")
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", fmt.Errorf("no email found in claims")
	}
	return email, nil
}
