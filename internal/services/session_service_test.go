package services

import (
	"crypto/rsa"
	"testing"
	"time"

	"dipadubank/internal/config"
	"dipadubank/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
)

// SessionServiceTestSuite defines the test suite for SessionService
type SessionServiceTestSuite struct {
	suite.Suite
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	service    SessionServiceInterface
	issuer     string
	identity   models.Identity
}

func (s *SessionServiceTestSuite) SetupTest() {
	var err error
	s.privateKey, s.publicKey, err = config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	s.issuer = "test-issuer"
	s.service = NewSessionService(&config.JWTConfig{
		PrivateKey:           s.privateKey,
		PublicKey:            s.publicKey,
		Issuer:               s.issuer,
		SessionTokenDuration: time.Hour,
	})
	s.identity = models.Identity{RoqUserID: "roq-42", TenantID: "tenant-9", Roles: []string{"Owner"}}
}

func TestSessionServiceSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}

func (s *SessionServiceTestSuite) TestIssueAndParse() {
	token, expiresAt, err := s.service.IssueToken(s.identity)
	s.Require().NoError(err)
	s.NotEmpty(token)
	s.True(expiresAt.After(time.Now()))
	s.True(expiresAt.Before(time.Now().Add(2 * time.Hour)))

	claims, err := s.service.ParseToken(token)
	s.Require().NoError(err)
	s.Equal(s.identity, claims.Identity())
	s.Equal(s.issuer, claims.Issuer)
	s.NotEmpty(claims.ID)
}

func (s *SessionServiceTestSuite) TestIssueToken_RequiresUser() {
	_, _, err := s.service.IssueToken(models.Identity{TenantID: "tenant-9"})
	s.ErrorIs(err, ErrMissingIdentity)
}

func (s *SessionServiceTestSuite) TestParseToken_Empty() {
	_, err := s.service.ParseToken("")
	s.ErrorIs(err, ErrEmptyToken)
}

func (s *SessionServiceTestSuite) TestParseToken_Malformed() {
	_, err := s.service.ParseToken("not.a.token")
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *SessionServiceTestSuite) TestParseToken_Expired() {
	expired := NewSessionService(&config.JWTConfig{
		PrivateKey:           s.privateKey,
		PublicKey:            s.publicKey,
		Issuer:               s.issuer,
		SessionTokenDuration: -time.Minute,
	})
	token, _, err := expired.IssueToken(s.identity)
	s.Require().NoError(err)

	_, err = s.service.ParseToken(token)
	s.ErrorIs(err, ErrExpiredToken)
}

func (s *SessionServiceTestSuite) TestParseToken_WrongIssuer() {
	other := NewSessionService(&config.JWTConfig{
		PrivateKey:           s.privateKey,
		PublicKey:            s.publicKey,
		Issuer:               "someone-else",
		SessionTokenDuration: time.Hour,
	})
	token, _, err := other.IssueToken(s.identity)
	s.Require().NoError(err)

	_, err = s.service.ParseToken(token)
	s.ErrorIs(err, ErrInvalidIssuer)
}

func (s *SessionServiceTestSuite) TestParseToken_WrongKey() {
	otherKey, otherPub, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)
	other := NewSessionService(&config.JWTConfig{
		PrivateKey:           otherKey,
		PublicKey:            otherPub,
		Issuer:               s.issuer,
		SessionTokenDuration: time.Hour,
	})
	token, _, err := other.IssueToken(s.identity)
	s.Require().NoError(err)

	_, err = s.service.ParseToken(token)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *SessionServiceTestSuite) TestParseToken_RejectsHMAC() {
	claims := models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		RoqUserID: "roq-42",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	s.Require().NoError(err)

	_, err = s.service.ParseToken(token)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *SessionServiceTestSuite) TestExtractTokenFromHeader() {
	token, err := s.service.ExtractTokenFromHeader("Bearer abc.def.ghi")
	s.NoError(err)
	s.Equal("abc.def.ghi", token)

	_, err = s.service.ExtractTokenFromHeader("Basic dXNlcjpwYXNz")
	s.ErrorIs(err, ErrInvalidAuthHeader)

	_, err = s.service.ExtractTokenFromHeader("Bearer   ")
	s.ErrorIs(err, ErrInvalidAuthHeader)
}
