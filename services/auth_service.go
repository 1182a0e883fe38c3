package services

import (
	"errors"
	"strings"
	"time"

	"github.com/sho11hei12-1998/Phone-Navi-App/repository"
	"github.com/sho11hei12-1998/Phone-Navi-App/utils"
	"golang.org/x/crypto/bcrypt"
)

// 管理者ログインを担うサービス
type AuthService struct {
	adminRepo *repository.AdminRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(adminRepo *repository.AdminRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		adminRepo: adminRepo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// Login は管理者を認証して JWT を発行する
func (s *AuthService) Login(email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	admin, err := s.adminRepo.FindByEmail(email)
	if err != nil {
		return "", errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(admin.ID, "admin", s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", errors.New("cannot generate token")
	}
	return token, nil
}
