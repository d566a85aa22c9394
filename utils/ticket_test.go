package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerificationTicket_RoundTrip(t *testing.T) {
	secret := []byte("s3cret")
	signed, err := IssueVerificationTicket("ann@x.com", secret, time.Minute)
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(*jwt.Token) (interface{}, error) { return secret, nil })
	require.NoError(t, err)
	require.True(t, token.Valid)

	email, err := TicketEmail(token.Claims.(jwt.MapClaims))
	require.NoError(t, err)
	assert.Equal(t, "ann@x.com", email)
}

func TestVerificationTicket_Expired(t *testing.T) {
	secret := []byte("s3cret")
	signed, err := IssueVerificationTicket("ann@x.com", secret, -time.Minute)
	require.NoError(t, err)

	_, err = jwt.Parse(signed, func(*jwt.Token) (interface{}, error) { return secret, nil })
	assert.Error(t, err)
}

func TestTicketEmail_RejectsOtherTokens(t *testing.T) {
	_, err := TicketEmail(jwt.MapClaims{"id": 1, "email": "ann@x.com"})
	assert.Error(t, err)

	_, err = TicketEmail(jwt.MapClaims{"sub": TicketSubject})
	assert.Error(t, err)
}
