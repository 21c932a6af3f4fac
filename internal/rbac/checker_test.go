package rbac_test

import (
	"testing"

	"github.com/examhall/examhall/internal/rbac"
)

func TestDefaultPolicy(t *testing.T) {
	c := rbac.NewChecker(nil)

	cases := []struct {
		role, perm string
		want       bool
	}{
		{"student", "exam:start", true},
		{"student", "exam:submit", true},
		{"student", "results:view-own", true},
		{"student", "results:view-all", false},
		{"student", "students:delete", false},
		{"admin", "results:view-all", true},
		{"admin", "students:delete", true},
		{"admin", "questions:seed", true},
		{"admin", "exam:start", false},
		{"", "exam:start", false},
		{"ghost", "exam:start", false},
	}
	for _, tc := range cases {
		if got := c.Has(tc.role, tc.perm); got != tc.want {
			t.Errorf("Has(%q, %q) = %v, want %v", tc.role, tc.perm, got, tc.want)
		}
	}
}

func TestAny(t *testing.T) {
	c := rbac.NewChecker(nil)
	if !c.Any("admin", "results:view-own", "results:view-all") {
		t.Error("admin should match results:view-all")
	}
	if c.Any("student", "students:list", "students:delete") {
		t.Error("student should not match any students:* perm")
	}
}
