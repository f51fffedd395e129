package permissions

// IsGranted decides whether the principal holds the requested permission key.
// The admin role is a full bypass. Otherwise a key is granted when the
// principal's boolean flag for it is set, when any joined group carries a
// permission whose key (or raw hex id, for callers still passing ids)
// matches, or when it appears among the direct grants. Pure function of the
// loaded principal state, no side effects.
func IsGranted(p *Principal, key string) bool {
	if p == nil {
		return false
	}

	if p.Role == RoleAdmin {
		return true
	}

	if p.Flags[key] {
		return true
	}

	for _, group := range p.Groups {
		for _, perm := range group.Permissions {
			if perm.Key == key || perm.ID == key {
				return true
			}
		}
	}

	for _, perm := range p.Direct {
		if perm.Key == key || perm.ID == key {
			return true
		}
	}

	return false
}

// IsGrantedAny reports whether at least one of the keys is granted,
// short-circuiting on the first match.
func IsGrantedAny(p *Principal, keys []string) bool {
	for _, key := range keys {
		if IsGranted(p, key) {
			return true
		}
	}
	return false
}

// HasRole reports whether the principal's role is among the given roles.
// This is the coarse gate: no permission keys are consulted.
func HasRole(p *Principal, roles ...Role) bool {
	if p == nil {
		return false
	}
	for _, role := range roles {
		if p.Role == role {
			return true
		}
	}
	return false
}

// EffectivePermissions computes the aggregate permission state for display:
// the raw flag map plus the deduplicated union of permission ids reachable
// through groups and direct grants. The admin bypass governs access checks
// only and injects nothing here.
func EffectivePermissions(p *Principal) EffectiveSet {
	set := EffectiveSet{
		Flags:         map[string]bool{},
		PermissionIDs: []string{},
	}
	if p == nil {
		return set
	}

	for name, value := range p.Flags {
		set.Flags[name] = value
	}

	seen := make(map[string]struct{})
	collect := func(perms []Permission) {
		for _, perm := range perms {
			id := perm.ID
			if id == "" {
				id = perm.Key
			}
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			set.PermissionIDs = append(set.PermissionIDs, id)
		}
	}

	for _, group := range p.Groups {
		collect(group.Permissions)
	}
	collect(p.Direct)

	return set
}
