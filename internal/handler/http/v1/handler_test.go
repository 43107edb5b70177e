package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/disaster_response_system/internal/auth"
	"github.com/shenikar/disaster_response_system/internal/config"
	"github.com/shenikar/disaster_response_system/internal/handler/http/v1/mocks"
	"github.com/shenikar/disaster_response_system/internal/models"
	"github.com/shenikar/disaster_response_system/internal/service"
)

// fakeRealtime запоминает параметры последнего подключения к сокету
type fakeRealtime struct {
	called   bool
	identity models.Identity
	events   []string
}

func (f *fakeRealtime) ServeWS(w http.ResponseWriter, _ *http.Request, identity models.Identity, events []string) {
	f.called = true
	f.identity = identity
	f.events = events
	w.WriteHeader(http.StatusOK)
}

type testEnv struct {
	router   *gin.Engine
	tokens   *auth.TokenManager
	cfg      *config.Config
	realtime *fakeRealtime

	auth             *mocks.MockAuthService
	distressSignals  *mocks.MockDistressSignalService
	resourceRequests *mocks.MockResourceRequestService
	resources        *mocks.MockResourceService
	volunteers       *mocks.MockVolunteerService
	incidents        *mocks.MockIncidentService
	feed             *mocks.MockFeedService
}

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		AuthRateLimitRPS:   0, // ограничение выключено
		AuthRateLimitBurst: 1,
		UploadDir:          t.TempDir(),
		MaxAttachments:     2,
		MaxUploadBytes:     1024,
	}
}

// newTestEnv создает Handler с мокированными сервисами и настоящим менеджером токенов
func newTestEnv(t *testing.T, cfg *config.Config) *testEnv {
	ctrl := gomock.NewController(t)

	logger := logrus.New()
	logger.SetOutput(io.Discard) // Отключаем вывод логов в тестах

	env := &testEnv{
		tokens:           auth.NewTokenManager("test-secret", time.Hour),
		cfg:              cfg,
		realtime:         &fakeRealtime{},
		auth:             mocks.NewMockAuthService(ctrl),
		distressSignals:  mocks.NewMockDistressSignalService(ctrl),
		resourceRequests: mocks.NewMockResourceRequestService(ctrl),
		resources:        mocks.NewMockResourceService(ctrl),
		volunteers:       mocks.NewMockVolunteerService(ctrl),
		incidents:        mocks.NewMockIncidentService(ctrl),
		feed:             mocks.NewMockFeedService(ctrl),
	}

	handler := NewHandler(Services{
		Auth:             env.auth,
		DistressSignals:  env.distressSignals,
		ResourceRequests: env.resourceRequests,
		Resources:        env.resources,
		Volunteers:       env.volunteers,
		Incidents:        env.incidents,
		Feed:             env.feed,
	}, env.tokens, env.realtime, logger, cfg)

	gin.SetMode(gin.TestMode)
	env.router = gin.New()
	handler.RegisterRoutes(env.router.Group("/api"))
	return env
}

// tokenFor выпускает токен для нового пользователя с указанной ролью
func (e *testEnv) tokenFor(t *testing.T, role models.Role) (string, uuid.UUID) {
	userID := uuid.New()
	token, _, err := e.tokens.Issue(userID.String(), role)
	require.NoError(t, err)
	return token, userID
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthenticate_MissingToken(t *testing.T) {
	env := newTestEnv(t, testConfig(t))

	w := makeRequest(env.router, "GET", "/api/sos", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "authentication required")
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	env := newTestEnv(t, testConfig(t))

	w := makeRequest(env.router, "GET", "/api/sos", nil, bearer("not-a-token"))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "invalid or expired token")
}

func TestAuthenticate_QueryTokenOnlyOnSocket(t *testing.T) {
	env := newTestEnv(t, testConfig(t))
	token, _ := env.tokenFor(t, models.RoleGovernment)

	w := makeRequest(env.router, "GET", "/api/sos?token="+token, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthorize_ForbiddenRole(t *testing.T) {
	env := newTestEnv(t, testConfig(t))
	token, _ := env.tokenFor(t, models.RolePublic)

	env.distressSignals.EXPECT().List(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(env.router, "GET", "/api/sos", nil, bearer(token))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "access denied")
}

func TestAuthorize_StaffCannotRaiseSOS(t *testing.T) {
	env := newTestEnv(t, testConfig(t))
	token, _ := env.tokenFor(t, models.RoleNGO)

	body := `{"message":"help","location":{"latitude":1,"longitude":2}}`
	w := makeRequest(env.router, "POST", "/api/sos", strings.NewReader(body), bearer(token))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHealthCheck(t *testing.T) {
	env := newTestEnv(t, testConfig(t))

	w := makeRequest(env.router, "GET", "/api/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestSignup_Success(t *testing.T) {
	env := newTestEnv(t, testConfig(t))
	userID := uuid.New()

	env.auth.EXPECT().
		Signup(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input service.SignupInput) (*models.User, error) {
			assert.Equal(t, "alice", input.Username)
			assert.Equal(t, "volunteer", input.Role)
			assert.Equal(t, []string{"first aid"}, input.Skills)
			return &models.User{
				ID:           userID,
				Username:     input.Username,
				Email:        input.Email,
				PasswordHash: "$2a$10$hash",
				Role:         models.RoleVolunteer,
				Skills:       input.Skills,
			}, nil
		}).Times(1)

	body := `{"username":"alice","password":"secret","email":"alice@example.com","role":"volunteer","skills":["first aid"]}`
	w := makeRequest(env.router, "POST", "/api/auth/signup", strings.NewReader(body))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, userID, resp.ID)
	assert.Equal(t, models.RoleVolunteer, resp.Role)
	assert.NotContains(t, w.Body.String(), "hash")
}

func TestSignup_InvalidRole(t *testing.T) {
	env := newTestEnv(t, testConfig(t))

	env.auth.EXPECT().Signup(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	body := `{"username":"alice","password":"secret","email":"alice@example.com","role":"admin"}`
	w := makeRequest(env.router, "POST", "/api/auth/signup", strings.NewReader(body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Role")
}

func TestSignup_Duplicate(t *testing.T) {
	env := newTestEnv(t, testConfig(t))

	env.auth.EXPECT().
		Signup(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: username or email is already in use", service.ErrConflict))

	body := `{"username":"alice","password":"secret","email":"alice@example.com"}`
	w := makeRequest(env.router, "POST", "/api/auth/signup", strings.NewReader(body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already in use")
}

func TestLogin_Success(t *testing.T) {
	env := newTestEnv(t, testConfig(t))
	expiresAt := time.Now().Add(time.Hour).UTC().Truncate(time.Second)

	env.auth.EXPECT().
		Login(gomock.Any(), "alice", "secret").
		Return(&models.Session{Token: "tok", Role: models.RolePublic, Username: "alice", ExpiresAt: expiresAt}, nil)

	w := makeRequest(env.router, "POST", "/api/auth/login", strings.NewReader(`{"username":"alice","password":"secret"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "tok", resp.Token)
	assert.Equal(t, models.RolePublic, resp.Role)
	assert.Equal(t, "alice", resp.Username)
	assert.True(t, expiresAt.Equal(resp.ExpiresAt))
}

func TestLogin_UnknownUser(t *testing.T) {
	env := newTestEnv(t, testConfig(t))

	env.auth.EXPECT().
		Login(gomock.Any(), "ghost", "secret").
		Return(nil, fmt.Errorf("service: could not find user: %w", service.ErrNotFound))

	w := makeRequest(env.router, "POST", "/api/auth/login", strings.NewReader(`{"username":"ghost","password":"secret"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "user not found")
}

func TestLogin_WrongPassword(t *testing.T) {
	env := newTestEnv(t, testConfig(t))

	env.auth.EXPECT().
		Login(gomock.Any(), "alice", "wrong").
		Return(nil, service.ErrInvalidCredentials)

	w := makeRequest(env.router, "POST", "/api/auth/login", strings.NewReader(`{"username":"alice","password":"wrong"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "incorrect password")
}

func TestLogin_RateLimited(t *testing.T) {
	cfg := testConfig(t)
	cfg.AuthRateLimitRPS = 1
	cfg.AuthRateLimitBurst = 1
	env := newTestEnv(t, cfg)

	// первый запрос проходит ограничитель и отклоняется валидацией
	w := makeRequest(env.router, "POST", "/api/auth/login", strings.NewReader(`{}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = makeRequest(env.router, "POST", "/api/auth/login", strings.NewReader(`{}`))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
}

func TestMe_ReturnsCaller(t *testing.T) {
	env := newTestEnv(t, testConfig(t))
	token, userID := env.tokenFor(t, models.RoleVolunteer)

	env.auth.EXPECT().
		Profile(gomock.Any(), userID.String()).
		Return(&models.User{ID: userID, Username: "vol", Role: models.RoleVolunteer}, nil)

	w := makeRequest(env.router, "GET", "/api/auth/me", nil, bearer(token))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
}

func TestCreateDistressSignal_Success(t *testing.T) {
	env := newTestEnv(t, testConfig(t))
	token, userID := env.tokenFor(t, models.RolePublic)
	signalID := uuid.New()

	env.distressSignals.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, caller models.Identity, signal *models.DistressSignal) error {
			assert.Equal(t, userID.String(), caller.UserID)
			assert.Equal(t, "trapped on roof", signal.Message)
			// нулевые координаты допустимы
			assert.Equal(t, models.Location{Latitude: 0, Longitude: 0}, signal.Location)
			signal.ID = signalID
			signal.UserID = userID
			signal.Status = "Active"
			return nil
		}).Times(1)

	body := `{"message":"trapped on roof","location":{"latitude":0,"longitude":0}}`
	w := makeRequest(env.router, "POST", "/api/sos", strings.NewReader(body), bearer(token))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.DistressSignal
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, signalID, resp.ID)
	assert.Equal(t, "Active", resp.Status)
}

func TestCreateDistressSignal_MissingLocation(t *testing.T) {
	env := newTestEnv(t, testConfig(t))
	token, _ := env.tokenFor(t, models.RolePublic)

	env.distressSignals.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(env.router, "POST", "/api/sos", strings.NewReader(`{"message":"help"}`), bearer(token))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateDistressSignal_InvalidJSON(t *testing.T) {
	env := newTestEnv(t, testConfig(t))
	token, _ := env.tokenFor(t, models.RolePublic)

	w := makeRequest(env.router, "POST", "/api/sos", strings.NewReader(`{"message":`), bearer(token))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestListDistressSignals_PassesStatusFilter(t *testing.T) {
	env := newTestEnv(t, testConfig(t))
	token, _ := env.tokenFor(t, models.RoleGovernment)

	env.distressSignals.EXPECT().
		List(gomock.Any(), models.SignalFilter{Status: "In Progress"}).
		Return([]*models.DistressSignal{{ID: uuid.New(), Status: "In Progress", User: &models.UserRef{Username: "bob"}}}, nil)

	w := makeRequest(env.router, "GET", "/api/sos?status=In%20Progress", nil, bearer(token))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"bob"`)
}

func TestUpdateDistressSignal_InvalidID(t *testing.T) {
	env := newTestEnv(t, testConfig(t))
	token, _ := env.tokenFor(t, models.RoleNGO)

	w := makeRequest(env.router, "PUT", "/api/sos/invalid-uuid", strings.NewReader(`{"status":"Resolved"}`), bearer(token))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid distress signal ID")
}

func TestUpdateDistressSignal_NotFound(t *testing.T) {
	env := newTestEnv(t, testConfig(t))
	token, _ := env.tokenFor(t, models.RoleNGO)
	id := uuid.New()

	env.distressSignals.EXPECT().
		UpdateStatus(gomock.Any(), id, "Resolved").
		Return(nil, fmt.Errorf("service: could not update status: %w", service.ErrNotFound))

	w := makeRequest(env.router, "PUT", "/api/sos/"+id.String(), strings.NewReader(`{"status":"Resolved"}`), bearer(token))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "distress signal not found")
}

func TestUpdateDistressSignal_InvalidStatus(t *testing.T) {
	env := newTestEnv(t, testConfig(t))
	token, _ := env.tokenFor(t, models.RoleNGO)
	id := uuid.New()

	env.distressSignals.EXPECT().
		UpdateStatus(gomock.Any(), id, "Closed").
		Return(nil, fmt.Errorf("%w: unknown status \"Closed\"", service.ErrValidation))

	w := makeRequest(env.router, "PUT", "/api/sos/"+id.String(), strings.NewReader(`{"status":"Closed"}`), bearer(token))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Closed")
}

func TestCreateResourceRequest_RejectsZeroQuantity(t *testing.T) {
	env := newTestEnv(t, testConfig(t))
	token, _ := env.tokenFor(t, models.RolePublic)

	env.resourceRequests.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	body := `{"resourceType":"water","quantity":0,"location":{"latitude":1,"longitude":2}}`
	w := makeRequest(env.router, "POST", "/api/resource-requests", strings.NewReader(body), bearer(token))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateResourceRequest_Success(t *testing.T) {
	env := newTestEnv(t, testConfig(t))
	token, _ := env.tokenFor(t, models.RoleGovernment)
	id := uuid.New()

	env.resourceRequests.EXPECT().
		UpdateStatus(gomock.Any(), id, "Approved").
		Return(&models.ResourceRequest{ID: id, Status: "Approved"}, nil)

	w := makeRequest(env.router, "PUT", "/api/resource-requests/"+id.String(), strings.NewReader(`{"status":"Approved"}`), bearer(token))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"Approved"`)
}

func TestUpdateResource_UsesPathID(t *testing.T) {
	env := newTestEnv(t, testConfig(t))
	token, _ := env.tokenFor(t, models.RoleGovernment)
	id := uuid.New()

	env.resources.EXPECT().
		Replace(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, resource *models.Resource) error {
			assert.Equal(t, id, resource.ID)
			assert.Equal(t, 0, resource.Quantity)
			return nil
		}).Times(1)

	body := `{"name":"blankets","quantity":0,"unit":"pcs"}`
	w := makeRequest(env.router, "PUT", "/api/resources/"+id.String(), strings.NewReader(body), bearer(token))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateResource_MissingQuantity(t *testing.T) {
	env := newTestEnv(t, testConfig(t))
	token, _ := env.tokenFor(t, models.RoleGovernment)

	env.resources.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(env.router, "POST", "/api/resources", strings.NewReader(`{"name":"blankets"}`), bearer(token))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteResource(t *testing.T) {
	env := newTestEnv(t, testConfig(t))
	token, _ := env.tokenFor(t, models.RoleNGO)
	id := uuid.New()
	missing := uuid.New()

	env.resources.EXPECT().Delete(gomock.Any(), id).Return(nil)
	env.resources.EXPECT().Delete(gomock.Any(), missing).Return(fmt.Errorf("failed to delete resource: %w", service.ErrNotFound))

	w := makeRequest(env.router, "DELETE", "/api/resources/"+id.String(), nil, bearer(token))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "resource deleted")

	w = makeRequest(env.router, "DELETE", "/api/resources/"+missing.String(), nil, bearer(token))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "resource not found")
}

func TestListVolunteers_Projection(t *testing.T) {
	env := newTestEnv(t, testConfig(t))
	token, _ := env.tokenFor(t, models.RoleGovernment)

	env.volunteers.EXPECT().
		ListVolunteers(gomock.Any()).
		Return([]*models.User{{
			ID:       uuid.New(),
			Username: "vol",
			Email:    "vol@example.com",
			Phone:    "+100",
			Locality: "Springfield",
			Skills:   []string{"driving"},
		}}, nil)

	w := makeRequest(env.router, "GET", "/api/volunteers", nil, bearer(token))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"locality":"Springfield"`)
	assert.NotContains(t, w.Body.String(), "vol@example.com")
}

func TestAssignTask_InvalidVolunteerID(t *testing.T) {
	env := newTestEnv(t, testConfig(t))
	token, _ := env.tokenFor(t, models.RoleGovernment)

	env.volunteers.EXPECT().AssignTask(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(env.router, "POST", "/api/volunteer-tasks", strings.NewReader(`{"volunteerId":"42","description":"sandbags"}`), bearer(token))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAssignTask_Success(t *testing.T) {
	env := newTestEnv(t, testConfig(t))
	token, assignerID := env.tokenFor(t, models.RoleGovernment)
	volunteerID := uuid.New()

	env.volunteers.EXPECT().
		AssignTask(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, caller models.Identity, task *models.VolunteerTask) error {
			assert.Equal(t, assignerID.String(), caller.UserID)
			assert.Equal(t, volunteerID, task.VolunteerID)
			task.ID = uuid.New()
			task.Status = "Assigned"
			return nil
		}).Times(1)

	body := fmt.Sprintf(`{"volunteerId":%q,"description":"sandbags"}`, volunteerID)
	w := makeRequest(env.router, "POST", "/api/volunteer-tasks", strings.NewReader(body), bearer(token))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"Assigned"`)
}

func TestListTasks_OnlyForVolunteers(t *testing.T) {
	env := newTestEnv(t, testConfig(t))
	volunteerToken, volunteerID := env.tokenFor(t, models.RoleVolunteer)
	staffToken, _ := env.tokenFor(t, models.RoleGovernment)

	env.volunteers.EXPECT().
		ListTasks(gomock.Any(), models.Identity{UserID: volunteerID.String(), Role: models.RoleVolunteer}).
		Return([]*models.VolunteerTask{}, nil)

	w := makeRequest(env.router, "GET", "/api/volunteer-tasks", nil, bearer(volunteerToken))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = makeRequest(env.router, "GET", "/api/volunteer-tasks", nil, bearer(staffToken))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateTask_ForeignTaskIsNotFound(t *testing.T) {
	env := newTestEnv(t, testConfig(t))
	token, _ := env.tokenFor(t, models.RoleVolunteer)
	id := uuid.New()

	env.volunteers.EXPECT().
		UpdateTaskStatus(gomock.Any(), gomock.Any(), id, "Completed").
		Return(nil, fmt.Errorf("service: could not update task: %w", service.ErrNotFound))

	w := makeRequest(env.router, "PUT", "/api/volunteer-tasks/"+id.String(), strings.NewReader(`{"status":"Completed"}`), bearer(token))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "volunteer task not found")
}

type formFile struct {
	name    string
	content string
}

// incidentForm собирает multipart-тело отчета об инциденте
func incidentForm(t *testing.T, fields [][2]string, fileField string, files ...formFile) (io.Reader, map[string]string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, f := range fields {
		require.NoError(t, writer.WriteField(f[0], f[1]))
	}
	for _, f := range files {
		part, err := writer.CreateFormFile(fileField, f.name)
		require.NoError(t, err)
		_, err = part.Write([]byte(f.content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &buf, map[string]string{"Content-Type": writer.FormDataContentType()}
}

func validIncidentFields() [][2]string {
	return [][2]string{
		{"category", "Flood"},
		{"severity", "High"},
		{"description", "River burst its banks near the bridge"},
		{"assignTo", "Emergency Services"},
		{"assignTo", "Public Works"},
		{"location.latitude", "12.5"},
		{"location.longitude", "-3.25"},
	}
}

func uploadedFiles(t *testing.T, dir string) []string {
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestCreateIncident_Success(t *testing.T) {
	env := newTestEnv(t, testConfig(t))
	token, reporterID := env.tokenFor(t, models.RoleGovernment)

	env.incidents.EXPECT().
		Report(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, caller models.Identity, incident *models.Incident) error {
			assert.Equal(t, reporterID.String(), caller.UserID)
			assert.Equal(t, []string{"Emergency Services", "Public Works"}, incident.AssignTo)
			assert.Equal(t, models.Location{Latitude: 12.5, Longitude: -3.25}, incident.Location)
			require.Len(t, incident.Attachments, 1)
			assert.True(t, strings.HasPrefix(incident.Attachments[0], "/uploads/"))
			assert.True(t, strings.HasSuffix(incident.Attachments[0], ".jpg"))
			incident.ID = uuid.New()
			incident.Status = "Reported"
			return nil
		}).Times(1)

	body, headers := incidentForm(t, validIncidentFields(), "attachments", formFile{name: "photo.JPG", content: "jpeg"})
	w := makeRequest(env.router, "POST", "/api/incidents", body, bearer(token), headers)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"Reported"`)
	assert.Len(t, uploadedFiles(t, env.cfg.UploadDir), 1)
}

func TestCreateIncident_LegacyFieldNames(t *testing.T) {
	env := newTestEnv(t, testConfig(t))
	token, _ := env.tokenFor(t, models.RoleNGO)

	env.incidents.EXPECT().
		Report(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.Identity, incident *models.Incident) error {
			assert.Equal(t, []string{"Health Department"}, incident.AssignTo)
			assert.Equal(t, models.Location{Latitude: 1.5, Longitude: 2.5}, incident.Location)
			return nil
		}).Times(1)

	fields := [][2]string{
		{"category", "Fire"},
		{"severity", "Low"},
		{"description", "Smoke seen over the market"},
		{"assignTo[]", "Health Department"},
		{"location", `{"latitude":1.5,"longitude":2.5}`},
	}
	body, headers := incidentForm(t, fields, "attachments[]", formFile{name: "a.png", content: "png"})
	w := makeRequest(env.router, "POST", "/api/incidents", body, bearer(token), headers)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateIncident_UnknownDepartment(t *testing.T) {
	env := newTestEnv(t, testConfig(t))
	token, _ := env.tokenFor(t, models.RoleNGO)

	env.incidents.EXPECT().Report(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	fields := validIncidentFields()
	fields[3] = [2]string{"assignTo", "Fire Brigade"}
	body, headers := incidentForm(t, fields, "attachments", formFile{name: "a.png", content: "png"})
	w := makeRequest(env.router, "POST", "/api/incidents", body, bearer(token), headers)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, uploadedFiles(t, env.cfg.UploadDir))
}

func TestCreateIncident_AttachmentLimits(t *testing.T) {
	tests := []struct {
		name    string
		files   []formFile
		wantErr string
	}{
		{
			name:    "no attachments",
			wantErr: "at least one attachment",
		},
		{
			name:    "too many attachments",
			files:   []formFile{{"a.png", "a"}, {"b.png", "b"}, {"c.png", "c"}},
			wantErr: "at most 2 attachments",
		},
		{
			name:    "attachment too large",
			files:   []formFile{{"big.png", strings.Repeat("x", 2048)}},
			wantErr: "exceeds 1024 bytes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, testConfig(t))
			token, _ := env.tokenFor(t, models.RoleGovernment)

			env.incidents.EXPECT().Report(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			body, headers := incidentForm(t, validIncidentFields(), "attachments", tt.files...)
			w := makeRequest(env.router, "POST", "/api/incidents", body, bearer(token), headers)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantErr)
			assert.Empty(t, uploadedFiles(t, env.cfg.UploadDir))
		})
	}
}

func TestCreateIncident_ServiceErrorRemovesUploads(t *testing.T) {
	env := newTestEnv(t, testConfig(t))
	token, _ := env.tokenFor(t, models.RoleGovernment)

	env.incidents.EXPECT().
		Report(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("db is down"))

	body, headers := incidentForm(t, validIncidentFields(), "attachments", formFile{name: "a.png", content: "a"}, formFile{name: "b.png", content: "b"})
	w := makeRequest(env.router, "POST", "/api/incidents", body, bearer(token), headers)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.Empty(t, uploadedFiles(t, env.cfg.UploadDir))
}

func TestListIncidents_PassesFilter(t *testing.T) {
	env := newTestEnv(t, testConfig(t))
	token, _ := env.tokenFor(t, models.RoleGovernment)

	env.incidents.EXPECT().
		List(gomock.Any(), models.IncidentFilter{Category: "Storm", Severity: "High"}).
		Return([]*models.Incident{}, nil)

	w := makeRequest(env.router, "GET", "/api/incidents?category=Storm&severity=High", nil, bearer(token))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWeather(t *testing.T) {
	env := newTestEnv(t, testConfig(t))
	token, _ := env.tokenFor(t, models.RolePublic)

	env.feed.EXPECT().
		Weather(gomock.Any(), "10.5", "20.25").
		Return([]byte(`{"main":{"temp":21.3}}`), nil)

	w := makeRequest(env.router, "GET", "/api/weather?latitude=10.5&longitude=20.25", nil, bearer(token))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"main":{"temp":21.3}}`, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
}

func TestWeather_MissingCoordinates(t *testing.T) {
	env := newTestEnv(t, testConfig(t))
	token, _ := env.tokenFor(t, models.RolePublic)

	w := makeRequest(env.router, "GET", "/api/weather?latitude=10.5", nil, bearer(token))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNews_UpstreamFailure(t *testing.T) {
	env := newTestEnv(t, testConfig(t))
	token, _ := env.tokenFor(t, models.RoleVolunteer)

	env.feed.EXPECT().
		News(gomock.Any(), "Springfield").
		Return(nil, fmt.Errorf("%w: news provider returned 502", service.ErrUpstream))

	w := makeRequest(env.router, "GET", "/api/news?locality=Springfield", nil, bearer(token))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "failed to fetch data from upstream service")
}

func TestRealtimeStream_TokenInQuery(t *testing.T) {
	env := newTestEnv(t, testConfig(t))
	token, userID := env.tokenFor(t, models.RoleNGO)

	w := makeRequest(env.router, "GET", "/api/ws?token="+token+"&events=newSOS", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	require.True(t, env.realtime.called)
	assert.Equal(t, userID.String(), env.realtime.identity.UserID)
	assert.Equal(t, []string{models.EventNewSOS}, env.realtime.events)
}

func TestRealtimeStream_UnknownEvent(t *testing.T) {
	env := newTestEnv(t, testConfig(t))
	token, _ := env.tokenFor(t, models.RoleNGO)

	w := makeRequest(env.router, "GET", "/api/ws?events=newFlood", nil, bearer(token))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.realtime.called)
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORS([]string{"https://app.example"}))
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := makeRequest(router, "OPTIONS", "/ping", nil, map[string]string{"Origin": "https://app.example"})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example", w.Header().Get("Access-Control-Allow-Origin"))

	w = makeRequest(router, "GET", "/ping", nil, map[string]string{"Origin": "https://evil.example"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
