package client

import "drivehub/models"

// Navigation targets used by the role guard.
const (
	RouteLogin          = "/login"
	RouteHome           = "/"
	RouteOwnerDashboard = "/owner/dashboard"
	RouteAdminDashboard = "/admin/dashboard"
)

// GuardResult is the outcome of a role check: either the view may render, or
// the actor must be redirected.
type GuardResult struct {
	Allowed        bool
	RedirectTarget string
}

// roleHome returns the landing view for a role.
func roleHome(role string) string {
	switch role {
	case models.RoleOwner:
		return RouteOwnerDashboard
	case models.RoleAdmin:
		return RouteAdminDashboard
	case models.RoleCustomer:
		return RouteHome
	default:
		return RouteHome
	}
}

// RequireRole gates a view. With no session the actor goes to login; with a
// session whose role is not allowed, to that role's own home. Views call this
// before fetching any protected data.
func RequireRole(store *Store, allowedRoles ...string) GuardResult {
	sess := store.Current()
	if sess == nil {
		return GuardResult{Allowed: false, RedirectTarget: RouteLogin}
	}
	for _, role := range allowedRoles {
		if sess.Role == role {
			return GuardResult{Allowed: true}
		}
	}
	return GuardResult{Allowed: false, RedirectTarget: roleHome(sess.Role)}
}
