package models

import "strings"

// RegisterCitizenRequest is the payload for citizen self-registration.
type RegisterCitizenRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"`
	Mobile    string `json:"mobile" validate:"required"`
	Ward      string `json:"ward" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Address   string `json:"address" validate:"required"`
	Password  string `json:"password" validate:"required,min=6"`
}

// LoginRequest carries login credentials. For citizens the username is
// the registered mobile number.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse tells the client where to navigate after a successful login.
type LoginResponse struct {
	Message  string `json:"message"`
	Redirect string `json:"redirect"`
}

// Profile is the owner-facing view of a citizen record.
type Profile struct {
	FullName string `json:"fullName"`
	Mobile   string `json:"mobile"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Ward     string `json:"ward"`
}

// UpdateProfileRequest updates the owner-editable profile fields. The
// full name is split into first and last name on a space boundary.
type UpdateProfileRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Ward     string `json:"ward"`
	Address  string `json:"address"`
}

// SplitName returns the first name and the remainder as last name.
func (r UpdateProfileRequest) SplitName() (string, string) {
	parts := strings.Fields(strings.TrimSpace(r.FullName))
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// ChangePasswordRequest replaces the caller's password.
type ChangePasswordRequest struct {
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}
