package domain

import "testing"

func TestRoleAllows(t *testing.T) {
	cases := []struct {
		name     string
		role     string
		required string
		want     bool
	}{
		{"user satisfies user", RoleUser, RoleUser, true},
		{"user denied admin", RoleUser, RoleAdmin, false},
		{"admin satisfies admin", RoleAdmin, RoleAdmin, true},
		{"admin satisfies user", RoleAdmin, RoleUser, true},
		{"empty role denied", "", RoleUser, false},
		{"unknown role denied", "guest", RoleUser, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RoleAllows(tc.role, tc.required); got != tc.want {
				t.Fatalf("RoleAllows(%q, %q) = %v, want %v", tc.role, tc.required, got, tc.want)
			}
		})
	}
}

func TestPrincipalOwns(t *testing.T) {
	cases := []struct {
		name  string
		p     Principal
		owner string
		want  bool
	}{
		{"owner matches", Principal{Email: "a@x.com", Role: RoleUser}, "a@x.com", true},
		{"owner mismatch", Principal{Email: "b@x.com", Role: RoleUser}, "a@x.com", false},
		{"admin bypasses", Principal{Email: "root@x.com", Role: RoleAdmin}, "a@x.com", true},
		{"empty owner denied for user", Principal{Email: "a@x.com", Role: RoleUser}, "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.Owns(tc.owner); got != tc.want {
				t.Fatalf("Owns(%q) = %v, want %v", tc.owner, got, tc.want)
			}
		})
	}
}
