package auth

import (
	"Leafia-Backend/domain"
	"Leafia-Backend/entities"
	"Leafia-Backend/internal/utils/mailing"
	"Leafia-Backend/pkg/jwt"
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	AuthService interface {
		Signup(ctx context.Context, req domain.SignupRequest) (domain.AuthResponse, error)
		Signin(ctx context.Context, req domain.SigninRequest) (domain.AuthResponse, error)
	}

	authService struct {
		authRepository AuthRepository
		jwtService     jwt.JWTService
	}
)

func NewAuthService(authRepository AuthRepository, jwtService jwt.JWTService) AuthService {
	return &authService{
		authRepository: authRepository,
		jwtService:     jwtService,
	}
}

func (s *authService) Signup(ctx context.Context, req domain.SignupRequest) (domain.AuthResponse, error) {
	if _, err := s.authRepository.GetAdminByEmail(ctx, req.Email); err == nil {
		return domain.AuthResponse{}, domain.ErrEmailAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.AuthResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.AuthResponse{}, err
	}

	admin := &entities.Admin{
		ID:           uuid.New(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
	}

	if err := s.authRepository.CreateAdmin(ctx, admin); err != nil {
		// a concurrent signup can slip past the lookup above; the unique
		// index still answers like any other duplicate
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.AuthResponse{}, domain.ErrEmailAlreadyRegistered
		}
		return domain.AuthResponse{}, err
	}

	if mailing.Configured() {
		go func(email, name string) {
			body := fmt.Sprintf("<p>Hi %s, your admin account is ready.</p>", name)
			if err := mailing.SendMail(email, "Welcome to Leafia", body); err != nil {
				log.Printf("Error sending welcome mail to %s: %v", email, err)
			}
		}(admin.Email, admin.Name)
	}

	return domain.AuthResponse{
		Message: domain.MessageSuccessSignup,
		Token:   s.jwtService.GenerateTokenAdmin(admin.ID.String()),
	}, nil
}

func (s *authService) Signin(ctx context.Context, req domain.SigninRequest) (domain.AuthResponse, error) {
	admin, err := s.authRepository.GetAdminByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AuthResponse{}, domain.ErrInvalidCredentials
		}
		return domain.AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return domain.AuthResponse{}, domain.ErrInvalidCredentials
	}

	return domain.AuthResponse{
		Message: domain.MessageSuccessSignin,
		Token:   s.jwtService.GenerateTokenAdmin(admin.ID.String()),
	}, nil
}
