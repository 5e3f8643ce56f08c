package token

import (
	"errors"
	"strconv"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
)

const (
	mazeIDClaim = "mazeID"
	widthClaim  = "width"
	heightClaim = "height"
	seedClaim   = "seed" // Stored as a string; JSON numbers lose int64 precision.
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrMalformedClaim = errors.New("malformed ticket claim")
)

var _ i.Ticketer = &JwtService{}

// JwtService signs maze tickets as HS256 JWTs.
type JwtService struct {
	secretKey string
	issuer    string
}

// NewJwtService creates a new JWT Service with the provided configuration.
func NewJwtService(secretKey, issuer string) *JwtService {
	return &JwtService{
		secretKey: secretKey,
		issuer:    issuer,
	}
}

// Issue implements i.Ticketer.
func (s *JwtService) Issue(t dmn.Ticket, ttl time.Duration) (string, error) {
	return s.Generate(map[string]interface{}{
		mazeIDClaim: t.MazeID.String(),
		widthClaim:  t.Width,
		heightClaim: t.Height,
		seedClaim:   strconv.FormatInt(t.Seed, 10),
	}, ttl)
}

// Parse implements i.Ticketer.
func (s *JwtService) Parse(token string) (*dmn.Ticket, error) {
	claims, err := s.Decode(token)
	if err != nil {
		return nil, err
	}

	rawID, _ := claims[mazeIDClaim].(string)
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, ErrMalformedClaim
	}

	width, okWidth := claims[widthClaim].(float64)
	height, okHeight := claims[heightClaim].(float64)
	if !okWidth || !okHeight {
		return nil, ErrMalformedClaim
	}

	rawSeed, _ := claims[seedClaim].(string)
	seed, err := strconv.ParseInt(rawSeed, 10, 64)
	if err != nil {
		return nil, ErrMalformedClaim
	}

	return &dmn.Ticket{
		MazeID: id,
		Width:  int(width),
		Height: int(height),
		Seed:   seed,
	}, nil
}

// Generate creates a JWT for the given claims.
func (s *JwtService) Generate(claims map[string]interface{}, expTime time.Duration) (string, error) {
	jwtClaims := jwt.MapClaims{
		"exp": time.Now().UTC().Add(expTime).Unix(),
		"iss": s.issuer,
	}
	for key, val := range claims {
		jwtClaims[key] = val
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtClaims)
	return token.SignedString([]byte(s.secretKey))
}

// Decode parses and validates a JWT, returning the claims if valid.
func (s *JwtService) Decode(tokenString string) (map[string]interface{}, error) {
	token, err := jwt.Parse(tokenString, s.getSigningKey)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid || !claims.VerifyIssuer(s.issuer, true) {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// getSigningKey returns the signing key for token validation.
func (s *JwtService) getSigningKey(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.New("unexpected signing method")
	}
	return []byte(s.secretKey), nil
}
