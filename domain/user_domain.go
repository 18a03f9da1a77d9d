package domain

import "errors"

var (
	MessageSuccessRegister = "account created successfully"
	MessageSuccessLogin    = "signed in successfully"
	MessageSuccessGetMe    = "account retrieved successfully"

	MessageFailedRegister = "failed to create account"
	MessageFailedLogin    = "failed to sign in"
	MessageFailedGetMe    = "failed to retrieve account"

	ErrUserNotFound       = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrCredentialsInvalid = errors.New("invalid email or password")
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
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	UserResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}
)
