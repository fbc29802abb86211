package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/techdayconf/techday-backend/internal/config"
	"github.com/techdayconf/techday-backend/internal/directory"
	"github.com/techdayconf/techday-backend/internal/handlers"
	"github.com/techdayconf/techday-backend/internal/models"
	"github.com/techdayconf/techday-backend/internal/services"
	"github.com/techdayconf/techday-backend/internal/session"
	"github.com/techdayconf/techday-backend/pkg/mailer"
)

const adminDirectory = "root@example.com|superadmin|Root|First pet?|rex|1234" +
	";;editor@example.com|editor|Editor|Favourite ship?|beagle|2222" +
	";;viewer@example.com|viewer|Viewer|Favourite city?|london|3333"

// In-memory stores standing in for the mongodb repositories.

type memContentRepo struct {
	speakers *models.SpeakersDocument
	schedule *models.ScheduleDocument
	sponsors *models.SponsorsDocument
	partners *models.PartnersDocument
}

func (m *memContentRepo) GetSpeakers(ctx context.Context) (*models.SpeakersDocument, error) {
	return m.speakers, nil
}
func (m *memContentRepo) SaveSpeakers(ctx context.Context, doc *models.SpeakersDocument) error {
	m.speakers = doc
	return nil
}
func (m *memContentRepo) GetSchedule(ctx context.Context) (*models.ScheduleDocument, error) {
	return m.schedule, nil
}
func (m *memContentRepo) SaveSchedule(ctx context.Context, doc *models.ScheduleDocument) error {
	m.schedule = doc
	return nil
}
func (m *memContentRepo) GetSponsors(ctx context.Context) (*models.SponsorsDocument, error) {
	return m.sponsors, nil
}
func (m *memContentRepo) SaveSponsors(ctx context.Context, doc *models.SponsorsDocument) error {
	m.sponsors = doc
	return nil
}
func (m *memContentRepo) GetPartners(ctx context.Context) (*models.PartnersDocument, error) {
	return m.partners, nil
}
func (m *memContentRepo) SavePartners(ctx context.Context, doc *models.PartnersDocument) error {
	m.partners = doc
	return nil
}

type memRegistrationRepo struct {
	records []*models.Registration
}

func (m *memRegistrationRepo) Create(ctx context.Context, reg *models.Registration) error {
	reg.ID = primitive.NewObjectID()
	reg.CreatedAt = time.Now()
	reg.UpdatedAt = time.Now()
	m.records = append(m.records, reg)
	return nil
}

func (m *memRegistrationRepo) FindByEmail(ctx context.Context, email string) (*models.Registration, error) {
	for _, r := range m.records {
		if r.Email == email {
			return r, nil
		}
	}
	return nil, nil
}

func (m *memRegistrationRepo) FindByTicketCode(ctx context.Context, code string) (*models.Registration, error) {
	for _, r := range m.records {
		if r.TicketCode == code {
			return r, nil
		}
	}
	return nil, nil
}

func (m *memRegistrationRepo) FindAll(ctx context.Context, status, category string) ([]*models.Registration, error) {
	return m.records, nil
}

func (m *memRegistrationRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.records)), nil
}

type memPitchRepo struct {
	records []*models.PitchSubmission
}

func (m *memPitchRepo) Create(ctx context.Context, pitch *models.PitchSubmission) error {
	pitch.ID = primitive.NewObjectID()
	m.records = append(m.records, pitch)
	return nil
}

func (m *memPitchRepo) FindByEmail(ctx context.Context, email string) (*models.PitchSubmission, error) {
	for _, p := range m.records {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, nil
}

func (m *memPitchRepo) FindByID(ctx context.Context, submissionID string) (*models.PitchSubmission, error) {
	for _, p := range m.records {
		if p.SubmissionID == submissionID {
			return p, nil
		}
	}
	return nil, nil
}

func (m *memPitchRepo) FindAll(ctx context.Context, status string) ([]*models.PitchSubmission, error) {
	return m.records, nil
}

func (m *memPitchRepo) UpdateStatus(ctx context.Context, submissionID, status string) error {
	for _, p := range m.records {
		if p.SubmissionID == submissionID {
			p.Status = status
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (m *memPitchRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.records)), nil
}

type memNewsletterRepo struct {
	records []*models.NewsletterSubscription
}

func (m *memNewsletterRepo) Create(ctx context.Context, sub *models.NewsletterSubscription) error {
	sub.ID = primitive.NewObjectID()
	sub.SubscribedAt = time.Now()
	m.records = append(m.records, sub)
	return nil
}

func (m *memNewsletterRepo) FindByEmail(ctx context.Context, email string) (*models.NewsletterSubscription, error) {
	for _, s := range m.records {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, nil
}

func (m *memNewsletterRepo) Update(ctx context.Context, sub *models.NewsletterSubscription) error {
	for i, s := range m.records {
		if s.ID == sub.ID {
			m.records[i] = sub
			return nil
		}
	}
	return errors.New("subscription not found")
}

func (m *memNewsletterRepo) FindAll(ctx context.Context, status string) ([]*models.NewsletterSubscription, error) {
	return m.records, nil
}

func (m *memNewsletterRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.records)), nil
}

// fakeChecker is a canned bot-detection provider.
type fakeChecker struct {
	bot bool
	err error
}

func (f fakeChecker) IsBot(ctx context.Context, remoteIP, userAgent, path string) (bool, error) {
	return f.bot, f.err
}

type testEnv struct {
	router    *gin.Engine
	content   *memContentRepo
	regs      *memRegistrationRepo
	pitches   *memPitchRepo
	news      *memNewsletterRepo
	directory *directory.Directory
}

func newTestEnv(t *testing.T, checker fakeChecker) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Server.Environment = "development"
	cfg.Server.AllowedHosts = []string{"localhost:3000"}
	cfg.Session.Secret = "routes-test-secret"
	cfg.Admin.Directory = adminDirectory
	cfg.Event.TicketPrefix = "TD26"

	env := &testEnv{
		content:   &memContentRepo{},
		regs:      &memRegistrationRepo{},
		pitches:   &memPitchRepo{},
		news:      &memNewsletterRepo{},
		directory: directory.New(cfg.Admin.Directory),
	}

	codec := session.NewCodec(cfg.Session.Secret)
	mail := mailer.NewMailer(cfg)

	authService := services.NewAuthService(env.directory)
	contentService := services.NewContentService(env.content)
	sponsorService := services.NewSponsorService(env.content)
	registrationService := services.NewRegistrationService(env.regs, mail, cfg.Event.TicketPrefix)
	pitchService := services.NewPitchService(env.pitches)
	newsletterService := services.NewNewsletterService(env.news)

	deps := HandlerDependencies{
		AuthHandler:         handlers.NewAuthHandler(authService, codec, env.directory, cfg),
		ContentHandler:      handlers.NewContentHandler(contentService),
		SponsorHandler:      handlers.NewSponsorHandler(sponsorService),
		RegistrationHandler: handlers.NewRegistrationHandler(registrationService),
		PitchHandler:        handlers.NewPitchHandler(pitchService),
		NewsletterHandler:   handlers.NewNewsletterHandler(newsletterService),
		UploadHandler:       handlers.NewUploadHandler(nil),
		DiagnosticsHandler:  handlers.NewDiagnosticsHandler(nil, env.directory, cfg),
	}

	env.router = SetupRouter(cfg, codec, env.directory, checker, deps)
	return env
}

func (e *testEnv) do(method, path, body, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.Header.Set("Cookie", session.CookieName+"="+cookie)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// login runs the verify step and returns the issued session cookie value.
func (e *testEnv) login(t *testing.T, email, answer, pin string) string {
	t.Helper()
	body, err := json.Marshal(map[string]string{
		"action": "verify",
		"email":  email,
		"answer": answer,
		"pin":    pin,
	})
	require.NoError(t, err)

	w := e.do(http.MethodPost, "/api/v1/admin/auth", string(body), "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			return c.Value
		}
	}
	t.Fatal("no session cookie set")
	return ""
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t, fakeChecker{})
	w := env.do(http.MethodGet, "/api/v1/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetQuestionEnvelopeIdenticalForUnknownEmail(t *testing.T) {
	env := newTestEnv(t, fakeChecker{})

	known := env.do(http.MethodPost, "/api/v1/admin/auth",
		`{"action":"get-question","email":"root@example.com"}`, "")
	unknown := env.do(http.MethodPost, "/api/v1/admin/auth",
		`{"action":"get-question","email":"nobody@example.com"}`, "")

	require.Equal(t, http.StatusOK, known.Code)
	require.Equal(t, http.StatusOK, unknown.Code)

	knownBody := decodeBody(t, known)
	unknownBody := decodeBody(t, unknown)

	// Same keys, same flags; only the question text differs.
	assert.Equal(t, true, knownBody["success"])
	assert.Equal(t, true, unknownBody["success"])
	assert.Equal(t, true, knownBody["isValid"])
	assert.Equal(t, true, unknownBody["isValid"])
	assert.Equal(t, "First pet?", knownBody["question"])
	assert.NotEmpty(t, unknownBody["question"])
}

func TestVerifyWrongCredentials(t *testing.T) {
	env := newTestEnv(t, fakeChecker{})

	w := env.do(http.MethodPost, "/api/v1/admin/auth",
		`{"action":"verify","email":"root@example.com","answer":"wrong","pin":"1234"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", decodeBody(t, w)["error"])
}

func TestLoginStatusLogoutFlow(t *testing.T) {
	env := newTestEnv(t, fakeChecker{})
	cookie := env.login(t, "root@example.com", "REX", "1234")

	w := env.do(http.MethodGet, "/api/v1/admin/auth", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["authenticated"])

	w = env.do(http.MethodGet, "/api/v1/admin/auth", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decodeBody(t, w)["authenticated"])
}

func TestProtectedRouteWithoutSession(t *testing.T) {
	env := newTestEnv(t, fakeChecker{})

	w := env.do(http.MethodGet, "/api/v1/admin/speakers", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Unauthorized", decodeBody(t, w)["error"])
}

func TestProtectedRouteWithGarbageCookie(t *testing.T) {
	env := newTestEnv(t, fakeChecker{})

	w := env.do(http.MethodGet, "/api/v1/admin/speakers", "", "bogus-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestViewerCannotWriteSponsors(t *testing.T) {
	env := newTestEnv(t, fakeChecker{})
	cookie := env.login(t, "viewer@example.com", "london", "3333")

	w := env.do(http.MethodPost, "/api/v1/admin/sponsors",
		`{"name":"Acme","tier":"gold"}`, cookie)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Permission denied", decodeBody(t, w)["error"])
}

func TestEditorSponsorLifecycle(t *testing.T) {
	env := newTestEnv(t, fakeChecker{})
	cookie := env.login(t, "editor@example.com", "beagle", "2222")

	w := env.do(http.MethodPost, "/api/v1/admin/sponsors",
		`{"name":"Acme","tier":"gold"}`, cookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// The public sponsors page sees the change.
	w = env.do(http.MethodGet, "/api/v1/content/sponsors", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Acme")
	assert.NotEmpty(t, w.Header().Get("Cache-Control"))
}

func TestEditorCannotReadRegistrations(t *testing.T) {
	env := newTestEnv(t, fakeChecker{})
	cookie := env.login(t, "editor@example.com", "beagle", "2222")

	w := env.do(http.MethodGet, "/api/v1/admin/registrations", "", cookie)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestPublicSpeakersEmptyDefault(t *testing.T) {
	env := newTestEnv(t, fakeChecker{})

	w := env.do(http.MethodGet, "/api/v1/content/speakers", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	speakers, ok := body["speakers"].([]interface{})
	require.True(t, ok, "speakers must be an array, got %s", w.Body.String())
	assert.Empty(t, speakers)
}

func TestRegisterHappyPath(t *testing.T) {
	env := newTestEnv(t, fakeChecker{})

	w := env.do(http.MethodPost, "/api/v1/register",
		`{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","category":"developer"}`, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Regexp(t, `^TD26-[0-9A-F]{6}$`, body["ticketCode"])
	assert.Len(t, env.regs.records, 1)
}

func TestRegisterDuplicate(t *testing.T) {
	env := newTestEnv(t, fakeChecker{})

	first := env.do(http.MethodPost, "/api/v1/register",
		`{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","category":"developer"}`, "")
	require.Equal(t, http.StatusOK, first.Code)

	second := env.do(http.MethodPost, "/api/v1/register",
		`{"firstName":"Ada","lastName":"Lovelace","email":"ADA@example.com","category":"developer"}`, "")
	assert.Equal(t, http.StatusConflict, second.Code)
	assert.Equal(t, "This email is already registered", decodeBody(t, second)["error"])
	assert.Len(t, env.regs.records, 1)
}

func TestBotDeniedBeforeValidation(t *testing.T) {
	env := newTestEnv(t, fakeChecker{bot: true})

	w := env.do(http.MethodPost, "/api/v1/register",
		`{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","category":"developer"}`, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Access denied", decodeBody(t, w)["error"])
	assert.Empty(t, env.regs.records)
}

func TestBotCheckFailsOpen(t *testing.T) {
	env := newTestEnv(t, fakeChecker{err: errors.New("provider down")})

	w := env.do(http.MethodPost, "/api/v1/register",
		`{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","category":"developer"}`, "")
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Len(t, env.regs.records, 1)
}

func TestPitchSubmitAndReview(t *testing.T) {
	env := newTestEnv(t, fakeChecker{})

	pitch := strings.Repeat("We build compilers for analytical engines. ", 2)
	w := env.do(http.MethodPost, "/api/v1/pitch",
		`{"founderName":"Ada","startupName":"Engines","email":"ada@example.com","pitch":"`+pitch+`"}`, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	submissionID, _ := decodeBody(t, w)["submissionId"].(string)
	require.NotEmpty(t, submissionID)

	cookie := env.login(t, "root@example.com", "rex", "1234")
	w = env.do(http.MethodPatch, "/api/v1/admin/pitches/"+submissionID+"/status",
		`{"status":"accepted"}`, cookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "accepted", env.pitches.records[0].Status)
}

func TestNewsletterSubscribeAndUnsubscribe(t *testing.T) {
	env := newTestEnv(t, fakeChecker{})

	w := env.do(http.MethodPost, "/api/v1/newsletter", `{"email":"ada@example.com"}`, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	dup := env.do(http.MethodPost, "/api/v1/newsletter", `{"email":"ada@example.com"}`, "")
	assert.Equal(t, http.StatusConflict, dup.Code)

	w = env.do(http.MethodDelete, "/api/v1/newsletter?email=ada@example.com", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "unsubscribed", env.news.records[0].Status)
}

func TestUploadUnconfiguredStorage(t *testing.T) {
	env := newTestEnv(t, fakeChecker{})
	cookie := env.login(t, "root@example.com", "rex", "1234")

	w := env.do(http.MethodPost, "/api/v1/admin/uploads", "", cookie)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestDiagnosticsRequiresUsersPermission(t *testing.T) {
	env := newTestEnv(t, fakeChecker{})

	editor := env.login(t, "editor@example.com", "beagle", "2222")
	w := env.do(http.MethodGet, "/api/v1/admin/diagnostics", "", editor)
	assert.Equal(t, http.StatusForbidden, w.Code)

	root := env.login(t, "root@example.com", "rex", "1234")
	w = env.do(http.MethodGet, "/api/v1/admin/diagnostics", "", root)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["store"])
	assert.Equal(t, float64(3), body["configuredAdmins"])
}
