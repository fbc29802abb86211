package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techdayconf/techday-backend/internal/models"
)

const testDirectory = "ada@example.com|superadmin|Ada Lovelace|First pet?|rex|1234" +
	";;grace@example.com|editor|Grace Hopper|Favourite ship?|constitution|9999" +
	";;broken-entry-missing-fields|viewer" +
	";;mallory@example.com|overlord|Mallory|Question?|answer|0000" +
	";;  VIEW@Example.COM |viewer|Viewer|Q?|a|1111"

func newTestDirectory() *Directory {
	return New(testDirectory)
}

func TestParseDropsMalformedEntries(t *testing.T) {
	dir := newTestDirectory()
	// five entries, one malformed
	assert.Equal(t, 4, dir.Count())
}

func TestUnknownRoleDowngradesToViewer(t *testing.T) {
	dir := newTestDirectory()
	admin := dir.GetAdminByEmail("mallory@example.com")
	require.NotNil(t, admin)
	assert.Equal(t, models.RoleViewer, admin.Role)
}

func TestEmailLookupIsCaseInsensitive(t *testing.T) {
	dir := newTestDirectory()
	assert.True(t, dir.IsApprovedAdmin("ADA@EXAMPLE.COM"))
	assert.True(t, dir.IsApprovedAdmin("  view@example.com  "))
	assert.False(t, dir.IsApprovedAdmin("nobody@example.com"))
}

func TestAnswerStoredLowercased(t *testing.T) {
	dir := New("bob@example.com|admin|Bob|Q?|ReX|22")
	admin := dir.GetAdminByEmail("bob@example.com")
	require.NotNil(t, admin)
	assert.Equal(t, "rex", admin.Answer)
}

func TestPublicAdminOmitsCredentials(t *testing.T) {
	dir := newTestDirectory()
	pub := dir.GetPublicAdminByEmail("grace@example.com")
	require.NotNil(t, pub)
	assert.Equal(t, "grace@example.com", pub.Email)
	assert.Equal(t, models.RoleEditor, pub.Role)
	assert.Nil(t, dir.GetPublicAdminByEmail("nobody@example.com"))
}

func TestSuperadminHasEveryPermission(t *testing.T) {
	dir := newTestDirectory()
	for _, perm := range models.AllPermissions {
		assert.True(t, dir.HasPermission("ada@example.com", perm), string(perm))
	}
}

func TestEditorPermissions(t *testing.T) {
	dir := newTestDirectory()
	assert.True(t, dir.HasPermission("grace@example.com", models.PermSpeakers))
	assert.True(t, dir.HasPermission("grace@example.com", models.PermSchedule))
	assert.True(t, dir.HasPermission("grace@example.com", models.PermSponsors))
	assert.False(t, dir.HasPermission("grace@example.com", models.PermRegistrations))
	assert.False(t, dir.HasPermission("grace@example.com", models.PermUsers))
}

func TestViewerHasNoPermissions(t *testing.T) {
	dir := newTestDirectory()
	for _, perm := range models.AllPermissions {
		assert.False(t, dir.HasPermission("view@example.com", perm), string(perm))
	}
}

func TestUnknownEmailHasNothing(t *testing.T) {
	dir := newTestDirectory()
	assert.False(t, dir.HasPermission("nobody@example.com", models.PermSpeakers))
	assert.False(t, dir.HasRole("nobody@example.com", models.RoleViewer))
}

func TestHasRoleComparesHierarchy(t *testing.T) {
	dir := newTestDirectory()
	assert.True(t, dir.HasRole("ada@example.com", models.RoleAdmin))
	assert.True(t, dir.HasRole("grace@example.com", models.RoleEditor))
	assert.True(t, dir.HasRole("grace@example.com", models.RoleViewer))
	assert.False(t, dir.HasRole("grace@example.com", models.RoleAdmin))
}

func TestInvalidateReparses(t *testing.T) {
	dir := newTestDirectory()
	require.Equal(t, 4, dir.Count())

	dir.Invalidate()
	assert.Equal(t, 4, dir.Count())

	// Directories are isolated: a second instance over different input does
	// not see the first one's admins.
	other := New("solo@example.com|viewer|Solo|Q?|a|1")
	assert.Equal(t, 1, other.Count())
	assert.True(t, dir.IsApprovedAdmin("ada@example.com"))
	assert.False(t, other.IsApprovedAdmin("ada@example.com"))
}

func TestEmptyDirectory(t *testing.T) {
	dir := New("")
	assert.Equal(t, 0, dir.Count())
	assert.False(t, dir.IsApprovedAdmin("ada@example.com"))
}
