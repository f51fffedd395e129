package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func principalWith(role Role, flags map[string]bool) *Principal {
	return &Principal{
		UserID: "u1",
		Role:   role,
		Flags:  flags,
	}
}

func TestIsGranted_AdminBypass(t *testing.T) {
	admin := principalWith(RoleAdmin, nil)

	// Admin is granted everything, including keys no registry entry exists for
	keys := []string{KeyEmployeesView, KeyGroupsManage, "made.up.key", ""}
	for _, key := range keys {
		if !IsGranted(admin, key) {
			t.Errorf("IsGranted(admin, %q) = false, want true", key)
		}
	}
}

func TestIsGranted_FlagSource(t *testing.T) {
	p := principalWith(RoleEmployee, map[string]bool{"viewEmployees": true})

	assert.True(t, IsGranted(p, "viewEmployees"))
	assert.False(t, IsGranted(p, "editEmployee"))
}

func TestIsGranted_GroupSource(t *testing.T) {
	p := principalWith(RoleEmployee, nil)
	p.Groups = []GroupGrant{
		{
			ID:   "507f1f77bcf86cd799439011",
			Name: "support",
			Permissions: []Permission{
				{ID: "64b000000000000000000001", Key: KeyChatSend},
			},
		},
	}

	assert.True(t, IsGranted(p, KeyChatSend))
	// Backward-compatible callers may pass the raw permission id
	assert.True(t, IsGranted(p, "64b000000000000000000001"))
	assert.False(t, IsGranted(p, KeyEmployeesDelete))
}

func TestIsGranted_DirectSource(t *testing.T) {
	p := principalWith(RoleViewer, nil)
	p.Direct = []Permission{{ID: "64b000000000000000000002", Key: KeyEmployeesExport}}

	assert.True(t, IsGranted(p, KeyEmployeesExport))
	assert.False(t, IsGranted(p, KeyEmployeesEdit))
}

func TestIsGranted_NoOtherPathToTrue(t *testing.T) {
	// A non-admin principal with empty state is denied everything
	p := principalWith(RoleUser, map[string]bool{})
	for key := range KnownFlags {
		if IsGranted(p, key) {
			t.Errorf("empty principal granted %q", key)
		}
	}
	assert.False(t, IsGranted(nil, KeyEmployeesView))
}

func TestIsGrantedAny(t *testing.T) {
	p := principalWith(RoleEmployee, map[string]bool{"b": true})

	assert.True(t, IsGrantedAny(p, []string{"a", "b"}))
	assert.True(t, IsGrantedAny(p, []string{"b", "a"}))
	assert.False(t, IsGrantedAny(p, []string{"a", "c"}))
	assert.False(t, IsGrantedAny(p, nil))
}

func TestHasRole(t *testing.T) {
	p := principalWith(RoleHR, nil)

	assert.True(t, HasRole(p, RoleHR))
	assert.True(t, HasRole(p, RoleAdmin, RoleHR))
	assert.False(t, HasRole(p, RoleFinance))
	assert.False(t, HasRole(nil, RoleHR))
}

func TestEffectivePermissions_Union(t *testing.T) {
	p := principalWith(RoleEmployee, map[string]bool{"viewEmployees": true, "manageUsers": false})
	p.Groups = []GroupGrant{
		{ID: "g1", Name: "hr", Permissions: []Permission{
			{ID: "p1", Key: KeyEmployeesView},
			{ID: "p2", Key: KeyVacationsManage},
		}},
		{ID: "g2", Name: "files", Permissions: []Permission{
			{ID: "p2", Key: KeyVacationsManage}, // shared with g1
			{ID: "p3", Key: KeyFilesManage},
		}},
	}
	p.Direct = []Permission{
		{ID: "p3", Key: KeyFilesManage}, // already via g2
		{ID: "p4", Key: KeyAuditView},
	}

	set := EffectivePermissions(p)

	assert.Equal(t, map[string]bool{"viewEmployees": true, "manageUsers": false}, set.Flags)
	assert.ElementsMatch(t, []string{"p1", "p2", "p3", "p4"}, set.PermissionIDs)
}

func TestEffectivePermissions_AdminInjectsNothing(t *testing.T) {
	admin := principalWith(RoleAdmin, map[string]bool{"viewEmployees": true})

	set := EffectivePermissions(admin)

	// Role override governs access, not the displayed set
	assert.Equal(t, map[string]bool{"viewEmployees": true}, set.Flags)
	assert.Empty(t, set.PermissionIDs)
}

func TestEffectivePermissions_NilPrincipal(t *testing.T) {
	set := EffectivePermissions(nil)
	assert.NotNil(t, set.Flags)
	assert.NotNil(t, set.PermissionIDs)
	assert.Empty(t, set.PermissionIDs)
}
