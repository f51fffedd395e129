package dto

// LoginInput represents the credentials login request
type LoginInput struct {
	Body struct {
		Email    string `json:"email" format:"email" required:"true" description:"Account email address"`
		Password string `json:"password" minLength:"1" required:"true" description:"Account password"`
	}
}

// LogoutInput represents the logout request
type LogoutInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
}

// MeInput represents the current-user profile request
type MeInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
}

// ChangePasswordInput represents a password change for the current user
type ChangePasswordInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	Body          struct {
		CurrentPassword string `json:"current_password" minLength:"1" required:"true" description:"Current password"`
		NewPassword     string `json:"new_password" minLength:"8" maxLength:"128" required:"true" description:"New password"`
	}
}
