package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFlags(t *testing.T) {
	tests := []struct {
		name    string
		flags   map[string]bool
		wantErr bool
	}{
		{
			name:  "known flags accepted",
			flags: map[string]bool{"viewEmployees": true, "manageUsers": false},
		},
		{
			name:    "unknown flag rejected",
			flags:   map[string]bool{"viewEmployees": true, "isAdmin": true},
			wantErr: true,
		},
		{
			name:  "empty update accepted",
			flags: map[string]bool{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFlags(tt.flags)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown permission flags")
				assert.True(t, IsUnknownFlagError(err))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestMergeFlags_KeyLocal(t *testing.T) {
	current := map[string]bool{"a": false, "b": true}

	merged, changes := MergeFlags(current, map[string]bool{"a": true})

	assert.Equal(t, map[string]bool{"a": true, "b": true}, merged)
	require.Len(t, changes, 1)
	assert.Equal(t, FlagChange{Name: "a", OldValue: false, NewValue: true}, changes[0])

	// Inputs are not mutated
	assert.Equal(t, map[string]bool{"a": false, "b": true}, current)
}

func TestMergeFlags_NoChangeNoDiff(t *testing.T) {
	current := map[string]bool{"a": true}

	merged, changes := MergeFlags(current, map[string]bool{"a": true})

	assert.Equal(t, current, merged)
	assert.Empty(t, changes)
}

func TestMergeFlags_NewKeyDiffsFromFalse(t *testing.T) {
	merged, changes := MergeFlags(nil, map[string]bool{"viewReports": true})

	assert.Equal(t, map[string]bool{"viewReports": true}, merged)
	require.Len(t, changes, 1)
	assert.False(t, changes[0].OldValue)
	assert.True(t, changes[0].NewValue)
}

func TestDefaultRegistry_UniqueKeys(t *testing.T) {
	seen := make(map[string]struct{})
	for _, perm := range DefaultRegistry {
		if _, dup := seen[perm.Key]; dup {
			t.Errorf("duplicate registry key %q", perm.Key)
		}
		seen[perm.Key] = struct{}{}

		if perm.Label == "" || perm.Category == "" {
			t.Errorf("registry entry %q missing label or category", perm.Key)
		}
	}
}
