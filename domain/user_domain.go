package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister        = "user registered successfully"
	MessageSuccessLogin           = "login success"
	MessageSuccessGetMe           = "success get user detail"
	MessageSuccessUpdateUser      = "user updated successfully"
	MessageSuccessVerifyEmail     = "email verified successfully"
	MessageSuccessSendVerifyEmail = "verification email sent"

	MessageFailedRegister        = "failed to register user"
	MessageFailedLogin           = "failed to login"
	MessageFailedGetMe           = "failed to get user detail"
	MessageFailedUpdateUser      = "failed to update user"
	MessageFailedVerifyEmail     = "failed to verify email"
	MessageFailedSendVerifyEmail = "failed to send verification email"

	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrWrongCredentials   = errors.New("wrong email or password")
	ErrUserNotVerified    = errors.New("user email not verified")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}

	UpdateUserRequest struct {
		Name      string  `json:"name" validate:"omitempty"`
		Latitude  float64 `json:"latitude" validate:"omitempty,latitude"`
		Longitude float64 `json:"longitude" validate:"omitempty,longitude"`
	}

	SendVerifyEmailRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	UserResponse struct {
		ID           string     `json:"id"`
		Name         string     `json:"name"`
		Email        string     `json:"email"`
		Role         string     `json:"role"`
		IsVerified   bool       `json:"is_verified"`
		IsPremium    bool       `json:"is_premium"`
		PremiumUntil *time.Time `json:"premium_until,omitempty"`
		Latitude     float64    `json:"latitude"`
		Longitude    float64    `json:"longitude"`
	}
)
