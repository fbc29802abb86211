package services

import (
	"strings"

	"github.com/techdayconf/techday-backend/internal/directory"
	"github.com/techdayconf/techday-backend/internal/models"
	"golang.org/x/exp/slog"
)

// decoyQuestion is returned for unknown emails so the step-1 response shape
// never reveals which addresses belong to configured admins.
const decoyQuestion = "What is your registered security question?"

// AuthService implements the two-step login protocol against the admin
// directory: fetch the security question, then verify answer + PIN.
type AuthService interface {
	GetQuestion(email string) string
	Verify(email, answer, pin string) (*models.AdminUser, bool)
}

type authService struct {
	dir *directory.Directory
}

// NewAuthService creates a new AuthService over the admin directory
func NewAuthService(dir *directory.Directory) AuthService {
	return &authService{dir: dir}
}

// GetQuestion returns the admin's security question. Unknown emails get the
// decoy question in an identical envelope.
func (s *authService) GetQuestion(email string) string {
	admin := s.dir.GetAdminByEmail(email)
	if admin == nil || admin.Question == "" {
		return decoyQuestion
	}
	return admin.Question
}

// Verify checks the claimed identity's security answer and PIN. The stored
// answer is already lowercased; the submitted one is trimmed and lowercased
// before the exact compare. No rate limiting or lockout is applied.
func (s *authService) Verify(email, answer, pin string) (*models.AdminUser, bool) {
	admin := s.dir.GetAdminByEmail(email)
	if admin == nil {
		return nil, false
	}
	if strings.ToLower(strings.TrimSpace(answer)) != admin.Answer {
		slog.Warn("Admin login failed: wrong answer", "email", admin.Email)
		return nil, false
	}
	if strings.TrimSpace(pin) != admin.PIN {
		slog.Warn("Admin login failed: wrong PIN", "email", admin.Email)
		return nil, false
	}
	return admin, true
}
