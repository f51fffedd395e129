package dto

// ListUsersInput lists all accounts
type ListUsersInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
}

// CreateUserInput registers a new account
type CreateUserInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	Body          struct {
		Email    string `json:"email" format:"email" required:"true" description:"Unique account email"`
		Name     string `json:"name" minLength:"1" maxLength:"200" required:"true" description:"Display name"`
		Password string `json:"password" minLength:"8" maxLength:"128" required:"true" description:"Initial password"`
		Role     string `json:"role" enum:"admin,employee,viewer,user,hr,finance" default:"employee" description:"Coarse account role"`
	}
}

// GetUserInput fetches one account
type GetUserInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	UserID        string `path:"user_id" required:"true" description:"User document id"`
}

// UpdateUserInput partially updates an account profile
type UpdateUserInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	UserID        string `path:"user_id" required:"true" description:"User document id"`
	Body          struct {
		Name   *string `json:"name,omitempty" maxLength:"200" description:"New display name"`
		Role   *string `json:"role,omitempty" enum:"admin,employee,viewer,user,hr,finance" description:"New role"`
		Active *bool   `json:"active,omitempty" description:"Enable or disable the account"`
	}
}

// DeleteUserInput removes an account
type DeleteUserInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	UserID        string `path:"user_id" required:"true" description:"User document id"`
}

// UpdateUserPermissionsInput updates flags and direct grants
type UpdateUserPermissionsInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	UserID        string `path:"user_id" required:"true" description:"User document id"`
	Body          struct {
		Permissions       map[string]bool `json:"permissions,omitempty" description:"Flag updates, merged key by key; unknown keys are rejected"`
		DirectPermissions []string        `json:"direct_permissions,omitempty" description:"Full replacement set of direct permission ids; omit to keep current"`
	}
}

// GetUserPermissionsInput fetches the effective permission set
type GetUserPermissionsInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	UserID        string `path:"user_id" required:"true" description:"User document id"`
}
