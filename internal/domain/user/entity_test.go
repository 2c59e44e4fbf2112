package user

import "testing"

func TestIsValidRole(t *testing.T) {
	for _, role := range []string{"admin", "hr", "manager", "employee"} {
		if !IsValidRole(role) {
			t.Errorf("IsValidRole(%q) = false, want true", role)
		}
	}
	for _, role := range []string{"Admin", "superuser", ""} {
		if IsValidRole(role) {
			t.Errorf("IsValidRole(%q) = true, want false", role)
		}
	}
}

func TestIsElevated(t *testing.T) {
	cases := map[Role]bool{
		RoleAdmin:    true,
		RoleHR:       true,
		RoleManager:  false,
		RoleEmployee: false,
	}
	for role, want := range cases {
		if got := IsElevated(role); got != want {
			t.Errorf("IsElevated(%s) = %v, want %v", role, got, want)
		}
	}
}

func TestIsManagerial(t *testing.T) {
	cases := map[Role]bool{
		RoleAdmin:    true,
		RoleHR:       true,
		RoleManager:  true,
		RoleEmployee: false,
	}
	for role, want := range cases {
		if got := IsManagerial(role); got != want {
			t.Errorf("IsManagerial(%s) = %v, want %v", role, got, want)
		}
	}
}
