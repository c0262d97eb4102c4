package identity

// Role names carried in token claims and stored on principals.
const (
	RoleAdmin             = "admin"
	RoleBasetypeAdmin     = "basetype_admin"
	RoleHRAdmin           = "hr_admin"
	RoleOrganizationAdmin = "organization_admin"
	RoleOrganizationUser  = "organization_user"
	RolePersonUser        = "person_user"
)

var knownRoles = map[string]struct{}{
	RoleAdmin:             {},
	RoleBasetypeAdmin:     {},
	RoleHRAdmin:           {},
	RoleOrganizationAdmin: {},
	RoleOrganizationUser:  {},
	RolePersonUser:        {},
}

// IsValidRole reports whether name is a recognized role.
func IsValidRole(name string) bool {
	_, ok := knownRoles[name]
	return ok
}
