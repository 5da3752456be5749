package domain

import "errors"

var (
	MessageSuccessSignup = "Admin created successfully"
	MessageSuccessSignin = "Admin login successful"

	MessageFailedSignup = "failed to create admin"
	MessageFailedSignin = "failed to signin"

	ErrEmailAlreadyRegistered = errors.New("admin with same email already exists")
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so signin does not reveal which accounts exist.
	ErrInvalidCredentials = errors.New("please check your login details and try again")
)

type (
	SignupRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Name     string `json:"name" validate:"required"`
		Password string `json:"password" validate:"required,min=8"`
	}

	SigninRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	AuthResponse struct {
		Message string `json:"message"`
		Token   string `json:"token"`
	}
)
