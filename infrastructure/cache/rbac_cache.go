package cache

import (
	"sort"
	"sync"
)

// Resource is one registered desk route: its permission code plus the
// method and path pattern the middleware matches against.
type Resource struct {
	UserResourceCode string
	Path             string
	Method           string
	Role             string
}

// RbacRolesCache is the in-memory role-to-resource table built from route
// registration at startup. Reads vastly outnumber writes.
type RbacRolesCache struct {
	mu        sync.RWMutex
	resources map[string][]Resource
	allRoutes map[string]struct{}
}

func NewRbacRolesCache() *RbacRolesCache {
	return &RbacRolesCache{
		resources: make(map[string][]Resource),
		allRoutes: make(map[string]struct{}),
	}
}

// Add registers a resource under role and records its permission code in
// the full route set.
func (c *RbacRolesCache) Add(role string, r Resource) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resources[role] = append(c.resources[role], r)
	c.allRoutes[r.UserResourceCode] = struct{}{}
}

// GetRolesAndResources returns the union of resources granted to roles.
func (c *RbacRolesCache) GetRolesAndResources(roles []string) []Resource {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Resource, 0)
	for _, role := range roles {
		out = append(out, c.resources[role]...)
	}
	return out
}

// GetAllRouteNames returns every registered permission code. Admin access
// checks treat membership in this set as a grant.
func (c *RbacRolesCache) GetAllRouteNames() map[string]int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]int, len(c.allRoutes))
	for route := range c.allRoutes {
		out[route] = 1
	}
	return out
}

// RouteNamesSorted lists permission codes in stable order for display.
func (c *RbacRolesCache) RouteNamesSorted() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.allRoutes))
	for name := range c.allRoutes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
