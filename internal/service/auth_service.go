package service

import (
	"context"
	"errors"
	"time"

	"fitcoach/coach-app/internal/domain"
	"fitcoach/coach-app/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// --- Error Definitions ---
var (
	ErrCoachAlreadyExists   = errors.New("coach with this email already exists")
	ErrAuthenticationFailed = errors.New("authentication failed: invalid email or password")
	ErrHashingFailed        = errors.New("failed to hash password")
	ErrTokenGeneration      = errors.New("failed to generate authentication token")
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.Coach, error)
	Login(ctx context.Context, email, password string) (token string, coach *domain.Coach, err error)
}

// authService implements the AuthService interface.
type authService struct {
	coachRepo     repository.CoachRepository
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewAuthService creates a new instance of authService.
func NewAuthService(coachRepo repository.CoachRepository, jwtSecret string, jwtExpiration time.Duration) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty")
	}
	if jwtExpiration <= 0 {
		jwtExpiration = time.Hour
	}
	return &authService{
		coachRepo:     coachRepo,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// Register creates a new coach account.
func (s *authService) Register(ctx context.Context, name, email, password string) (*domain.Coach, error) {
	if name == "" || email == "" || password == "" {
		return nil, errors.New("name, email and password cannot be empty")
	}

	_, err := s.coachRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, ErrCoachAlreadyExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrHashingFailed
	}

	coach := &domain.Coach{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	coachID, err := s.coachRepo.Create(ctx, coach)
	if err != nil {
		return nil, err
	}
	coach.ID = coachID
	return coach, nil
}

// Login checks the credentials and returns a signed JWT on success.
func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.Coach, error) {
	if email == "" || password == "" {
		return "", nil, ErrAuthenticationFailed
	}

	coach, err := s.coachRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrAuthenticationFailed
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(coach.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrAuthenticationFailed
	}

	token, err := s.generateJWT(coach)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}
	return token, coach, nil
}

func (s *authService) generateJWT(coach *domain.Coach) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"uid": coach.ID.Hex(),
		"iat": now.Unix(),
		"exp": now.Add(s.jwtExpiration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
