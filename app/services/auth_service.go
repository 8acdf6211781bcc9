package services

import (
	"fmt"
	"strconv"
	"time"

	"inkwell/app/models"
	"inkwell/app/repositories"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// DefaultTokenTTL is how long issued tokens stay valid. There is
// no refresh or revocation; logout is client-side only.
const DefaultTokenTTL = 30 * 24 * time.Hour

// AuthService validates credentials and issues bearer tokens.
type AuthService struct {
	users    repositories.UserRepository
	secret   []byte
	tokenTTL time.Duration
}

// NewAuthService creates a new AuthService signing tokens with the
// given secret.
func NewAuthService(users repositories.UserRepository, secret []byte) *AuthService {
	return &AuthService{
		users:    users,
		secret:   secret,
		tokenTTL: DefaultTokenTTL,
	}
}

// Signup registers a new user and returns it with a fresh token.
// Uniqueness is enforced by the credential store; the email
// conflict is reported before the username conflict.
func (s *AuthService) Signup(username, email, password string) (*models.User, string, error) {
	user := &models.User{
		Username: username,
		Email:    email,
		Password: password,
	}
	user.BeforeCreate()
	if err := user.Validate(); err != nil {
		return nil, "", fmt.Errorf("invalid user: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %v", err)
	}
	user.Password = string(hashed)

	if err := s.users.Create(user); err != nil {
		return nil, "", err
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	user.Sanitize()
	return user, token, nil
}

// Login verifies the email/password pair and returns the user with
// a fresh token. Unknown email and wrong password are not
// distinguished.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	user.Sanitize()
	return user, token, nil
}

// IssueToken signs a token over the user identifier only.
func (s *AuthService) IssueToken(userID int) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.Itoa(userID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %v", err)
	}
	return signed, nil
}

// VerifyToken recovers the user identifier from a bearer token.
func (s *AuthService) VerifyToken(tokenStr string) (int, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	userID, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return userID, nil
}
