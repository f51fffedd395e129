package permissions

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// KnownFlags is the fixed schema of legacy boolean-flag permission keys a
// user record may carry. Flag updates naming any other key are rejected
// before the merge instead of being spread into the stored map.
var KnownFlags = map[string]Category{
	"viewEmployees":   CategoryView,
	"createEmployee":  CategoryCreate,
	"editEmployee":    CategoryEdit,
	"deleteEmployee":  CategoryDelete,
	"viewIncidents":   CategoryView,
	"createIncident":  CategoryCreate,
	"editIncident":    CategoryEdit,
	"deleteIncident":  CategoryDelete,
	"viewVacations":   CategoryView,
	"manageVacations": CategoryManage,
	"viewCirculars":   CategoryView,
	"manageCirculars": CategoryManage,
	"viewFiles":       CategoryView,
	"manageFiles":     CategoryManage,
	"viewReports":     CategoryView,
	"exportReports":   CategoryManage,
	"manageUsers":     CategoryAdmin,
	"manageGroups":    CategoryAdmin,
}

// IsKnownFlag reports whether name belongs to the flag schema.
func IsKnownFlag(name string) bool {
	_, ok := KnownFlags[name]
	return ok
}

// UnknownFlagsError names the flag keys that fall outside the schema.
type UnknownFlagsError struct {
	Names []string
}

func (e *UnknownFlagsError) Error() string {
	return fmt.Sprintf("unknown permission flags: %s", strings.Join(e.Names, ", "))
}

// IsUnknownFlagError reports whether err is a flag schema violation.
func IsUnknownFlagError(err error) bool {
	var target *UnknownFlagsError
	return errors.As(err, &target)
}

// ValidateFlags rejects any flag update containing keys outside the schema.
func ValidateFlags(flags map[string]bool) error {
	var unknown []string
	for name := range flags {
		if !IsKnownFlag(name) {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return &UnknownFlagsError{Names: unknown}
	}
	return nil
}

// MergeFlags applies updates onto current key by key, leaving keys absent
// from updates untouched, and returns the merged map together with the list
// of flags whose value actually changed. Neither input map is mutated.
func MergeFlags(current, updates map[string]bool) (map[string]bool, []FlagChange) {
	merged := make(map[string]bool, len(current)+len(updates))
	for name, value := range current {
		merged[name] = value
	}

	var changes []FlagChange
	names := make([]string, 0, len(updates))
	for name := range updates {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		newValue := updates[name]
		oldValue := merged[name]
		if oldValue != newValue {
			changes = append(changes, FlagChange{
				Name:     name,
				OldValue: oldValue,
				NewValue: newValue,
			})
		}
		merged[name] = newValue
	}

	return merged, changes
}
