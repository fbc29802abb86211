// Package directory holds the in-memory registry of authorized admins,
// parsed once from configuration input and cached for the life of the process.
package directory

import (
	"strings"
	"sync"

	"github.com/techdayconf/techday-backend/internal/models"
	"golang.org/x/exp/slog"
)

// EntrySeparator splits directory entries; FieldSeparator splits the six
// fields within an entry (email|role|name|question|answer|pin).
const (
	EntrySeparator = ";;"
	FieldSeparator = "|"
)

// rolePermissions is the static role → permission-set table. Superadmin is
// not listed: it is granted every permission explicitly wherever permissions
// are evaluated.
var rolePermissions = map[models.Role][]models.Permission{
	models.RoleAdmin: {
		models.PermRegistrations,
		models.PermNewsletter,
		models.PermPitches,
		models.PermSpeakers,
		models.PermSchedule,
		models.PermSponsors,
	},
	models.RoleEditor: {
		models.PermSpeakers,
		models.PermSchedule,
		models.PermSponsors,
	},
	models.RoleViewer: {},
}

// Directory exposes the set of authorized admins and their derived
// permissions. It parses its raw config string lazily on first use and
// caches the result until Invalidate is called.
type Directory struct {
	raw string

	mu     sync.RWMutex
	admins map[string]*models.AdminUser // keyed by lowercased email
	loaded bool
}

// New creates a Directory over the raw config string. Parsing is deferred
// until the first lookup.
func New(raw string) *Directory {
	return &Directory{raw: raw}
}

// load parses the raw string if it has not been parsed yet.
func (d *Directory) load() {
	d.mu.RLock()
	loaded := d.loaded
	d.mu.RUnlock()
	if loaded {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.loaded {
		return
	}

	d.admins = make(map[string]*models.AdminUser)
	for _, entry := range strings.Split(d.raw, EntrySeparator) {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		fields := strings.Split(entry, FieldSeparator)
		if len(fields) < 6 {
			slog.Warn("Dropping malformed admin directory entry", "fields", len(fields))
			continue
		}
		email := strings.ToLower(strings.TrimSpace(fields[0]))
		if email == "" {
			slog.Warn("Dropping admin directory entry with empty email")
			continue
		}
		role := models.ParseRole(strings.TrimSpace(fields[1]))
		perms := rolePermissions[role]
		d.admins[email] = &models.AdminUser{
			Email:       email,
			Role:        role,
			Name:        strings.TrimSpace(fields[2]),
			Permissions: perms,
			Question:    strings.TrimSpace(fields[3]),
			Answer:      strings.ToLower(strings.TrimSpace(fields[4])),
			PIN:         strings.TrimSpace(fields[5]),
		}
	}
	d.loaded = true
	slog.Info("Admin directory loaded", "admins", len(d.admins))
}

// Invalidate clears the parsed cache so the next lookup re-parses.
// Intended for configuration reloads and tests.
func (d *Directory) Invalidate() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.admins = nil
	d.loaded = false
}

// Count returns the number of configured admins.
func (d *Directory) Count() int {
	d.load()
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.admins)
}

// IsApprovedAdmin reports whether email belongs to a configured admin.
func (d *Directory) IsApprovedAdmin(email string) bool {
	return d.GetAdminByEmail(email) != nil
}

// GetAdminByEmail returns the full admin record, credential material
// included. Server-side use only. Returns nil when unknown.
func (d *Directory) GetAdminByEmail(email string) *models.AdminUser {
	d.load()
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.admins[strings.ToLower(strings.TrimSpace(email))]
}

// GetPublicAdminByEmail returns the credential-free view of an admin, or nil.
func (d *Directory) GetPublicAdminByEmail(email string) *models.PublicAdminUser {
	admin := d.GetAdminByEmail(email)
	if admin == nil {
		return nil
	}
	return admin.Public()
}

// HasPermission reports whether the admin holds the given permission.
// Superadmins hold every permission regardless of the role table.
func (d *Directory) HasPermission(email string, perm models.Permission) bool {
	admin := d.GetAdminByEmail(email)
	if admin == nil {
		return false
	}
	if admin.Role == models.RoleSuperAdmin {
		return true
	}
	for _, p := range admin.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}

// HasRole reports whether the admin's role sits at or above required.
func (d *Directory) HasRole(email string, required models.Role) bool {
	admin := d.GetAdminByEmail(email)
	if admin == nil {
		return false
	}
	return admin.Role.AtLeast(required)
}
