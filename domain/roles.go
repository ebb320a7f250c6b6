package domain

// Role is the typed account role
type Role string

const (
	RoleUser       Role = "USER"
	RoleSeller     Role = "SELLER"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPERADMIN"
	RoleCEO        Role = "CEO"
)

// AllRoles lists every role the platform knows about
var AllRoles = []Role{RoleUser, RoleSeller, RoleAdmin, RoleSuperAdmin, RoleCEO}

// ParseRole converts a raw string into a Role, reporting whether it is known
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	for _, known := range AllRoles {
		if r == known {
			return r, true
		}
	}
	return "", false
}

func (r Role) String() string { return string(r) }

// Privileged reports whether the role is a global one, created only through
// the admin-creation operation and never tied to a region.
func (r Role) Privileged() bool {
	return r == RoleAdmin || r == RoleSuperAdmin || r == RoleCEO
}

// RegistrationAllowed reports whether the role may be chosen at self-service
// registration time.
func (r Role) RegistrationAllowed() bool {
	return r == RoleUser || r == RoleSeller
}
