package rbac

import (
	"testing"

	"slipdesk/infrastructure/cache"
)

func newTestCache() *cache.RbacRolesCache {
	c := cache.NewRbacRolesCache()
	r := New(c)
	r.Add(RoleStaff, "MANIFEST_SCAN", "POST", "/desk/manifest/scan")
	return c
}

func TestMatchPathWildcardSegments(t *testing.T) {
	cases := []struct {
		pattern string
		path    string
		ok      bool
	}{
		{pattern: "/desk/orders/*/update", path: "/desk/orders/9d1f/update", ok: true},
		{pattern: "/desk/orders/*/note", path: "/desk/orders/9d1f/note", ok: true},
		{pattern: "/desk/orders/*", path: "/desk/orders/9d1f", ok: true},
		{pattern: "/desk/admin/users", path: "/desk/admin/users", ok: true},
		{pattern: "/desk/admin/users", path: "/desk/admin/users/1", ok: false},
		{pattern: "/desk/orders/*/update", path: "/desk/orders/9d1f/delete", ok: false},
	}

	for _, tc := range cases {
		if got := matchPath(tc.pattern, tc.path); got != tc.ok {
			t.Fatalf("pattern=%s path=%s expected=%v got=%v", tc.pattern, tc.path, tc.ok, got)
		}
	}
}

func TestValidateResourceAccessChecksMethod(t *testing.T) {
	cache := newTestCache()
	resources := cache.GetRolesAndResources([]string{RoleStaff})

	if !ValidateResourceAccess(resources, "/desk/manifest/scan", "POST") {
		t.Fatalf("expected staff scan POST to be allowed")
	}
	if ValidateResourceAccess(resources, "/desk/manifest/scan", "GET") {
		t.Fatalf("expected GET on a POST-only resource to be denied")
	}
	if ValidateResourceAccess(resources, "/desk/settings", "GET") {
		t.Fatalf("expected staff to be denied an unregistered route")
	}
}
