package services

import (
	"errors"
	"strings"
	"time"

	"backend/entity"
	"backend/repository"
	"backend/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService signs operators in to a terminal.
type AuthService struct {
	operatorRepo *repository.OperatorRepository
	jwtSecret    string
	jwtTTL       time.Duration
}

func NewAuthService(repo *repository.OperatorRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		operatorRepo: repo,
		jwtSecret:    secret,
		jwtTTL:       ttl,
	}
}

// Login checks credentials and issues a JWT.
func (s *AuthService) Login(email, password string) (string, *entity.Operator, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	op, err := s.operatorRepo.FindByEmail(email)
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(op.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(op.ID, op.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}

	return token, op, nil
}

func (s *AuthService) Profile(operatorID uint) (*entity.Operator, error) {
	return s.operatorRepo.FindByID(operatorID)
}
