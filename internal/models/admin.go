package models

// Role is the admin role vocabulary, ordered from least to most privileged.
type Role string

const (
	RoleViewer     Role = "viewer"
	RoleEditor     Role = "editor"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

// roleOrder gives each role its position in the hierarchy for AtLeast checks.
var roleOrder = map[Role]int{
	RoleViewer:     0,
	RoleEditor:     1,
	RoleAdmin:      2,
	RoleSuperAdmin: 3,
}

// ParseRole validates a role string. Unrecognized values downgrade to viewer
// rather than failing, so a typo in the directory config never locks parsing.
func ParseRole(s string) Role {
	r := Role(s)
	if _, ok := roleOrder[r]; !ok {
		return RoleViewer
	}
	return r
}

// AtLeast reports whether the role sits at or above required in the hierarchy.
func (r Role) AtLeast(required Role) bool {
	return roleOrder[r] >= roleOrder[required]
}

// Permission names a resource category an admin action can be gated on.
type Permission string

const (
	PermRegistrations Permission = "registrations"
	PermNewsletter    Permission = "newsletter"
	PermPitches       Permission = "pitches"
	PermSpeakers      Permission = "speakers"
	PermSchedule      Permission = "schedule"
	PermSponsors      Permission = "sponsors"
	PermUsers         Permission = "users"
)

// AllPermissions is the closed set of permission categories.
var AllPermissions = []Permission{
	PermRegistrations,
	PermNewsletter,
	PermPitches,
	PermSpeakers,
	PermSchedule,
	PermSponsors,
	PermUsers,
}

// AdminUser is the full admin record, credential material included.
// It is derived from configuration and never persisted or user-editable.
type AdminUser struct {
	Email       string       `json:"email"`
	Role        Role         `json:"role"`
	Name        string       `json:"name"`
	Permissions []Permission `json:"permissions"`
	Question    string       `json:"-"`
	Answer      string       `json:"-"`
	PIN         string       `json:"-"`
}

// PublicAdminUser is the credential-free view returned to clients.
type PublicAdminUser struct {
	Email       string       `json:"email"`
	Role        Role         `json:"role"`
	Name        string       `json:"name"`
	Permissions []Permission `json:"permissions"`
}

// Public strips credential material from an AdminUser.
func (u *AdminUser) Public() *PublicAdminUser {
	return &PublicAdminUser{
		Email:       u.Email,
		Role:        u.Role,
		Name:        u.Name,
		Permissions: u.Permissions,
	}
}
