package dto

import (
	"time"
)

// UserInfo is the public shape of an authenticated account
type UserInfo struct {
	UserID    string    `json:"user_id" description:"Account identifier"`
	Email     string    `json:"email" description:"Account email address"`
	Name      string    `json:"name" description:"Display name"`
	Role      string    `json:"role" description:"Coarse account role"`
	CreatedAt time.Time `json:"created_at,omitempty" description:"Account creation time"`
}

// LoginResponse is the body returned after a successful login
type LoginResponse struct {
	User  UserInfo `json:"user"`
	Token string   `json:"token" description:"Bearer token, also set as staffhub_auth_token cookie"`
}

// LoginOutput represents the output for credentials login
type LoginOutput struct {
	SetCookie string        `header:"Set-Cookie" doc:"Authentication cookie"`
	Body      LoginResponse `json:"body"`
}

// LogoutResponse is the body returned after logout
type LogoutResponse struct {
	Message string `json:"message"`
}

// LogoutOutput represents the output for logout
type LogoutOutput struct {
	SetCookie string         `header:"Set-Cookie" doc:"Clear authentication cookie"`
	Body      LogoutResponse `json:"body"`
}

// MeResponse is the body returned for the current user, including the
// effective permission snapshot the frontend renders menus from
type MeResponse struct {
	User          UserInfo        `json:"user"`
	Flags         map[string]bool `json:"permissions" description:"Account-level permission flags"`
	PermissionIDs []string        `json:"permission_ids" description:"Deduplicated ids of granted permission documents"`
	Groups        []string        `json:"groups" description:"Names of permission groups the user belongs to"`
}

// MeOutput represents the output for the current-user profile
type MeOutput struct {
	Body MeResponse `json:"body"`
}

// ChangePasswordOutput represents the output for a password change
type ChangePasswordOutput struct {
	Body LogoutResponse `json:"body"`
}
