package dto

// ListPermissionsInput lists the permission registry
type ListPermissionsInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
}

// CreatePermissionInput registers a new permission
type CreatePermissionInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	Body          struct {
		Key         string `json:"key" minLength:"1" maxLength:"100" required:"true" description:"Unique permission key, e.g. employees.view"`
		Label       string `json:"label" minLength:"1" maxLength:"100" required:"true" description:"Human readable label"`
		Description string `json:"description" maxLength:"500" description:"What this permission allows"`
		Category    string `json:"category" enum:"view,create,edit,delete,manage,admin" required:"true" description:"Permission category"`
	}
}

// GetPermissionInput fetches a single registry entry
type GetPermissionInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	PermissionID  string `path:"permission_id" required:"true" description:"Permission document id"`
}

// DeletePermissionInput removes a registry entry
type DeletePermissionInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	PermissionID  string `path:"permission_id" required:"true" description:"Permission document id"`
}

// ListGroupsInput lists all permission groups
type ListGroupsInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
}

// CreateGroupInput creates a permission group
type CreateGroupInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	Body          struct {
		Name        string   `json:"name" minLength:"1" maxLength:"100" required:"true" description:"Unique group name"`
		Description string   `json:"description" maxLength:"500" description:"Group description"`
		Permissions []string `json:"permissions" description:"Permission document ids granted to members"`
	}
}

// GetGroupInput fetches one group with members and permissions resolved
type GetGroupInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	GroupID       string `path:"group_id" required:"true" description:"Group document id"`
}

// UpdateGroupInput partially updates a group
type UpdateGroupInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	GroupID       string `path:"group_id" required:"true" description:"Group document id"`
	Body          struct {
		Name        *string  `json:"name,omitempty" maxLength:"100" description:"New group name"`
		Description *string  `json:"description,omitempty" maxLength:"500" description:"New description"`
		Permissions []string `json:"permissions,omitempty" description:"Full replacement permission id set"`
	}
}

// DeleteGroupInput deletes a group and detaches all members
type DeleteGroupInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	GroupID       string `path:"group_id" required:"true" description:"Group document id"`
}

// AddMemberInput adds a user to a group
type AddMemberInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	GroupID       string `path:"group_id" required:"true" description:"Group document id"`
	Body          struct {
		UserID string `json:"user_id" required:"true" description:"User document id"`
	}
}

// RemoveMemberInput removes a user from a group
type RemoveMemberInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	GroupID       string `path:"group_id" required:"true" description:"Group document id"`
	UserID        string `path:"user_id" required:"true" description:"User document id"`
}
