package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"StyleMate-Server/domain"
	"StyleMate-Server/entities"
	"StyleMate-Server/internal/utils/mailing"
	"StyleMate-Server/pkg/jwt"

	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
		UpdateUser(ctx context.Context, userID string, req domain.UpdateUserRequest) (domain.UserResponse, error)
		SendVerificationEmail(ctx context.Context, req domain.SendVerifyEmailRequest) error
		VerifyEmail(ctx context.Context, token string) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error) {
	exists, err := s.userRepository.CheckEmailExists(ctx, req.Email)
	if err != nil {
		return domain.UserResponse{}, err
	}
	if exists {
		return domain.UserResponse{}, domain.ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.UserResponse{}, err
	}

	user := entities.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     domain.RoleUser,
	}
	if err := s.userRepository.CreateUser(ctx, &user); err != nil {
		return domain.UserResponse{}, err
	}

	if err := s.sendVerification(user.Email); err != nil {
		// Registration already committed, the user can request another mail.
		log.Warnf("failed sending verification email to %s: %v", user.Email, err)
	}

	return toUserResponse(&user), nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrWrongCredentials
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrWrongCredentials
	}
	if !user.IsVerified {
		return domain.LoginResponse{}, domain.ErrUserNotVerified
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)
	return domain.LoginResponse{
		Token: token,
		User:  toUserResponse(user),
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req domain.UpdateUserRequest) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Latitude != 0 {
		user.Latitude = req.Latitude
	}
	if req.Longitude != 0 {
		user.Longitude = req.Longitude
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) SendVerificationEmail(ctx context.Context, req domain.SendVerifyEmailRequest) error {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	if user.IsVerified {
		return nil
	}
	return s.sendVerification(user.Email)
}

func (s *userService) VerifyEmail(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateTokenVerifyEmail(token)
	if err != nil {
		return err
	}
	email, ok := claims["email"].(string)
	if !ok {
		return domain.ErrTokenInvalid
	}

	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	user.IsVerified = true
	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) sendVerification(email string) error {
	token, err := s.jwtService.GenerateTokenVerifyEmail(
		map[string]any{"email": email},
		24*time.Hour,
	)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/api/v1/users/verify?token=%s", mailing.LoadMailConfig().AppURL, token)
	body := fmt.Sprintf(
		"<p>Welcome to StyleMate!</p><p>Please verify your email by clicking <a href=%q>here</a>. The link expires in 24 hours.</p>",
		link,
	)
	return mailing.SendMail(email, "Verify your StyleMate account", body)
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:           user.ID.String(),
		Name:         user.Name,
		Email:        user.Email,
		Role:         user.Role,
		IsVerified:   user.IsVerified,
		IsPremium:    user.IsPremium,
		PremiumUntil: user.PremiumUntil,
		Latitude:     user.Latitude,
		Longitude:    user.Longitude,
	}
}
