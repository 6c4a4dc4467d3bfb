package service

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"inventory_management/internal/models"
	"inventory_management/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Credential limits.
const (
	minUsernameLen = 3
	maxUsernameLen = 50
	minPasswordLen = 6
	maxPasswordLen = 100
)

// AuthService handles registration, credential checks and tokens.
type AuthService struct {
	users      repository.Users
	signingKey []byte
	tokenTTL   time.Duration
	now        func() time.Time
}

func NewAuthService(users repository.Users, signingKey string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:      users,
		signingKey: []byte(signingKey),
		tokenTTL:   tokenTTL,
		now:        time.Now,
	}
}

// SignUp hashes password and creates a new user.
func (s *AuthService) SignUp(ctx context.Context, username, password string) (int64, error) {
	if err := validateCredentials(username, password); err != nil {
		return 0, err
	}
	hash, err := HashPassword(password)
	if err != nil {
		return 0, err
	}

	u := &models.User{
		Username:       username,
		HashedPassword: hash,
		CreatedAt:      s.now().UTC(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return 0, ErrUsernameTaken
		}
		return 0, fmt.Errorf("sign up %q: %w", username, err)
	}
	return u.ID, nil
}

// Authenticate returns the user when the password matches. Unknown users and
// wrong passwords both yield ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("authenticate %q: %w", username, err)
	}
	if !VerifyPassword(u.HashedPassword, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// GenerateToken validates credentials and returns a signed JWT.
func (s *AuthService) GenerateToken(ctx context.Context, username, password string) (string, error) {
	u, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}
	return s.IssueToken(u.Username, s.tokenTTL)
}

// IssueToken signs a token for username that expires ttl from now.
func (s *AuthService) IssueToken(username string, ttl time.Duration) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   username,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ResolveToken verifies the token and loads the user it was issued to.
func (s *AuthService) ResolveToken(ctx context.Context, accessToken string) (*models.User, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(accessToken, &claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	},
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	u, err := s.users.GetByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: user %q no longer exists", ErrInvalidToken, claims.Subject)
		}
		return nil, fmt.Errorf("resolve token user %q: %w", claims.Subject, err)
	}
	return u, nil
}

// bcryptInput reduces password to a fixed 44-byte key so bcrypt's 72-byte
// input limit never truncates or rejects a long password.
func bcryptInput(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}

// HashPassword returns a salted bcrypt hash.
func HashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", invalid("password", "must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword(bcryptInput(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches hash.
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), bcryptInput(password)) == nil
}

func validateCredentials(username, password string) error {
	if n := utf8.RuneCountInString(username); n < minUsernameLen || n > maxUsernameLen {
		return invalid("username", "length must be between %d and %d", minUsernameLen, maxUsernameLen)
	}
	if n := utf8.RuneCountInString(password); n < minPasswordLen || n > maxPasswordLen {
		return invalid("password", "length must be between %d and %d", minPasswordLen, maxPasswordLen)
	}
	return nil
}
