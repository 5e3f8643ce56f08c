package token

import (
	"crypto/rand"
	"encoding/base64"
	"log"
	"math"
	"testing"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSecret() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatalf("Error generating random bytes: %v", err)
	}
	return base64.URLEncoding.EncodeToString(bytes)
}

func TestJwtService(t *testing.T) {
	svc := NewJwtService(newSecret(), "testIssuer")

	t.Run("Generate and Decode valid token", func(t *testing.T) {
		token, err := svc.Generate(map[string]interface{}{"width": 3}, 5*time.Minute)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := svc.Decode(token)
		assert.NoError(t, err)
		assert.Equal(t, float64(3), claims["width"])
		assert.Equal(t, "testIssuer", claims["iss"])
	})

	t.Run("Decode invalid token", func(t *testing.T) {
		_, err := svc.Decode("invalidTokenString")
		assert.Error(t, err)
	})

	t.Run("Decode expired token", func(t *testing.T) {
		token, err := svc.Generate(map[string]interface{}{}, -time.Minute)
		assert.NoError(t, err)

		_, err = svc.Decode(token)
		assert.Error(t, err)
	})

	t.Run("Decode token from another issuer", func(t *testing.T) {
		other := NewJwtService(svc.secretKey, "otherIssuer")
		token, err := other.Generate(map[string]interface{}{}, time.Minute)
		assert.NoError(t, err)

		_, err = svc.Decode(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Decode token signed with another secret", func(t *testing.T) {
		other := NewJwtService(newSecret(), "testIssuer")
		token, err := other.Generate(map[string]interface{}{}, time.Minute)
		assert.NoError(t, err)

		_, err = svc.Decode(token)
		assert.Error(t, err)
	})
}

func TestJwtService_Tickets(t *testing.T) {
	svc := NewJwtService(newSecret(), "testIssuer")

	t.Run("Issue and Parse keep every field", func(t *testing.T) {
		ticket := dmn.Ticket{
			MazeID: uuid.New(),
			Width:  17,
			Height: 4,
			Seed:   math.MaxInt64 - 7,
		}

		token, err := svc.Issue(ticket, time.Minute)
		require.NoError(t, err)

		parsed, err := svc.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, ticket, *parsed)
	})

	t.Run("Parse rejects missing claims", func(t *testing.T) {
		token, err := svc.Generate(map[string]interface{}{"mazeID": uuid.NewString()}, time.Minute)
		require.NoError(t, err)

		_, err = svc.Parse(token)
		assert.ErrorIs(t, err, ErrMalformedClaim)
	})

	t.Run("Parse rejects a non-numeric seed", func(t *testing.T) {
		token, err := svc.Generate(map[string]interface{}{
			"mazeID": uuid.NewString(),
			"width":  2,
			"height": 2,
			"seed":   "abc",
		}, time.Minute)
		require.NoError(t, err)

		_, err = svc.Parse(token)
		assert.ErrorIs(t, err, ErrMalformedClaim)
	})
}
