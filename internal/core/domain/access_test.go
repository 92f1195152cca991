package domain

import "testing"

func TestAccess(t *testing.T) {
	cases := []struct {
		name    string
		p       Principal
		ownerID string
		want    Grant
	}{
		{"admin on own record", Principal{ID: "a1", Role: RoleAdmin}, "a1", GrantAdmin},
		{"admin on foreign record", Principal{ID: "a1", Role: RoleAdmin}, "u2", GrantAdmin},
		{"owner", Principal{ID: "u1", Role: RoleUser}, "u1", GrantOwner},
		{"stranger", Principal{ID: "u1", Role: RoleUser}, "u2", GrantNone},
		{"empty principal id never matches", Principal{ID: "", Role: RoleUser}, "", GrantNone},
		{"unknown role", Principal{ID: "u1", Role: "superuser"}, "u1", GrantNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Access(tc.p, tc.ownerID); got != tc.want {
				t.Fatalf("Access() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestGrant_Allowed(t *testing.T) {
	if GrantNone.Allowed() {
		t.Fatal("GrantNone must not be allowed")
	}
	if !GrantOwner.Allowed() || !GrantAdmin.Allowed() {
		t.Fatal("owner and admin grants must be allowed")
	}
}
