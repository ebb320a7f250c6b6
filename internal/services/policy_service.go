package services

import (
	"github.com/casbin/casbin/v2"

	"github.com/ibroximov13/FindCourse/domain"
)

// CasbinEnforcerWrapper wraps the real Casbin enforcer to implement our interface
type CasbinEnforcerWrapper struct {
	enforcer *casbin.Enforcer
}

// NewCasbinEnforcerWrapper creates a wrapper for the real Casbin enforcer
func NewCasbinEnforcerWrapper(enforcer *casbin.Enforcer) domain.CasbinEnforcer {
	return &CasbinEnforcerWrapper{enforcer: enforcer}
}

func (w *CasbinEnforcerWrapper) AddPolicy(params ...interface{}) (bool, error) {
	return w.enforcer.AddPolicy(params...)
}

func (w *CasbinEnforcerWrapper) RemovePolicy(params ...interface{}) (bool, error) {
	return w.enforcer.RemovePolicy(params...)
}

func (w *CasbinEnforcerWrapper) Enforce(rvals ...interface{}) (bool, error) {
	return w.enforcer.Enforce(rvals...)
}

func (w *CasbinEnforcerWrapper) GetPolicy() ([][]string, error) {
	return w.enforcer.GetPolicy()
}

func (w *CasbinEnforcerWrapper) SavePolicy() error {
	return w.enforcer.SavePolicy()
}

// PolicyServiceImpl implements domain.PolicyService using Casbin
type PolicyServiceImpl struct {
	enforcer domain.CasbinEnforcer
}

// NewPolicyService creates a new policy service
func NewPolicyService(enforcer *casbin.Enforcer) domain.PolicyService {
	return &PolicyServiceImpl{
		enforcer: NewCasbinEnforcerWrapper(enforcer),
	}
}

// NewPolicyServiceWithEnforcer creates a new policy service with a CasbinEnforcer interface (for testing)
func NewPolicyServiceWithEnforcer(enforcer domain.CasbinEnforcer) domain.PolicyService {
	return &PolicyServiceImpl{
		enforcer: enforcer,
	}
}

// AddPolicy implements domain.PolicyService
func (p *PolicyServiceImpl) AddPolicy(role domain.Role, resource, action string) error {
	_, err := p.enforcer.AddPolicy(role.String(), resource, action)
	if err != nil {
		return err
	}
	return p.enforcer.SavePolicy()
}

// RemovePolicy implements domain.PolicyService
func (p *PolicyServiceImpl) RemovePolicy(role domain.Role, resource, action string) error {
	_, err := p.enforcer.RemovePolicy(role.String(), resource, action)
	if err != nil {
		return err
	}
	return p.enforcer.SavePolicy()
}

// CheckPermission implements domain.PolicyService
func (p *PolicyServiceImpl) CheckPermission(role domain.Role, resource, action string) (bool, error) {
	return p.enforcer.Enforce(role.String(), resource, action)
}

// GetPolicies implements domain.PolicyService
func (p *PolicyServiceImpl) GetPolicies() [][]string {
	policies, _ := p.enforcer.GetPolicy()
	return policies
}

// RoutePolicy is one row of the declarative capability table: which roles
// may call a route. Paths use gin-style params, matched with keyMatch2.
type RoutePolicy struct {
	Method string
	Path   string
	Roles  []domain.Role
}

// RoutePolicies is the single source of truth for role-gated routes. The
// middleware consults Casbin, and Casbin is seeded from this table.
var RoutePolicies = []RoutePolicy{
	{Method: "POST", Path: "/users/createAdminOrSuperAdmin", Roles: []domain.Role{domain.RoleAdmin}},
	{Method: "GET", Path: "/users", Roles: []domain.Role{domain.RoleAdmin, domain.RoleSuperAdmin, domain.RoleCEO}},
	{Method: "PATCH", Path: "/users/:id", Roles: []domain.Role{domain.RoleAdmin, domain.RoleSuperAdmin}},
	{Method: "DELETE", Path: "/users/:id", Roles: []domain.Role{domain.RoleAdmin}},
	{Method: "GET", Path: "/users/me", Roles: domain.AllRoles},
	{Method: "PATCH", Path: "/users/me", Roles: domain.AllRoles},
	{Method: "POST", Path: "/users/me/reset-password/send-otp", Roles: domain.AllRoles},
	{Method: "POST", Path: "/users/me/reset-password", Roles: domain.AllRoles},
	{Method: "GET", Path: "/sessions", Roles: []domain.Role{domain.RoleAdmin}},
	{Method: "GET", Path: "/sessions/me", Roles: domain.AllRoles},
	{Method: "GET", Path: "/sessions/:id", Roles: []domain.Role{domain.RoleAdmin}},
	{Method: "DELETE", Path: "/sessions/:id", Roles: []domain.Role{domain.RoleAdmin}},
	{Method: "POST", Path: "/regions", Roles: []domain.Role{domain.RoleAdmin}},
	{Method: "PATCH", Path: "/regions/:id", Roles: []domain.Role{domain.RoleAdmin}},
	{Method: "DELETE", Path: "/regions/:id", Roles: []domain.Role{domain.RoleAdmin}},
	{Method: "GET", Path: "/admin/policies", Roles: []domain.Role{domain.RoleAdmin}},
	{Method: "POST", Path: "/admin/policies", Roles: []domain.Role{domain.RoleAdmin}},
	{Method: "DELETE", Path: "/admin/policies", Roles: []domain.Role{domain.RoleAdmin}},
}

// SyncRoutePolicies seeds the enforcer with the capability table. AddPolicy
// is a no-op for rows that already exist, so boot is idempotent.
func SyncRoutePolicies(policySvc domain.PolicyService) error {
	for _, rp := range RoutePolicies {
		for _, role := range rp.Roles {
			if err := policySvc.AddPolicy(role, rp.Path, rp.Method); err != nil {
				return err
			}
		}
	}
	return nil
}
