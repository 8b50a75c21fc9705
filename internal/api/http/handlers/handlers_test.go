package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apihttp "github.com/david8219501/leader-app-server-08-09-25/internal/api/http"
	"github.com/david8219501/leader-app-server-08-09-25/internal/api/http/handlers"
	"github.com/david8219501/leader-app-server-08-09-25/internal/auth"
	"github.com/david8219501/leader-app-server-08-09-25/internal/config"
	"github.com/david8219501/leader-app-server-08-09-25/internal/domain"
	"github.com/david8219501/leader-app-server-08-09-25/internal/events"
	"github.com/david8219501/leader-app-server-08-09-25/internal/observability"
	"github.com/david8219501/leader-app-server-08-09-25/internal/persistence"
	"github.com/david8219501/leader-app-server-08-09-25/internal/service"
)

// fakeManagerRepo is an in-memory ManagerRepository with the same contract
// as the Postgres one: pgx.ErrNoRows on misses and a SQLSTATE 23505 error on
// phone or email collisions.
type fakeManagerRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]domain.Manager
}

func newFakeManagerRepo() *fakeManagerRepo {
	return &fakeManagerRepo{rows: make(map[int64]domain.Manager)}
}

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

func (r *fakeManagerRepo) Create(_ context.Context, manager *domain.Manager) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.Email == manager.Email {
			return uniqueViolation("managers_email_key")
		}
		if row.Phone == manager.Phone {
			return uniqueViolation("managers_phone_key")
		}
	}
	r.nextID++
	manager.ID = r.nextID
	r.rows[manager.ID] = *manager
	return nil
}

func (r *fakeManagerRepo) GetByID(_ context.Context, id int64) (*domain.Manager, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &row, nil
}

func (r *fakeManagerRepo) GetByEmail(_ context.Context, email string) (*domain.Manager, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.Email == email {
			return &row, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeManagerRepo) UpdateProfile(_ context.Context, id int64, firstName, lastName string, phone *string, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil
	}
	row.FirstName = firstName
	row.LastName = lastName
	if phone != nil {
		row.Phone = *phone
	} else {
		row.Phone = ""
	}
	row.Email = email
	r.rows[id] = row
	return nil
}

func (r *fakeManagerRepo) UpdatePassword(_ context.Context, id int64, password string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil
	}
	row.Password = password
	r.rows[id] = row
	return nil
}

func (r *fakeManagerRepo) delete(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
}

func (r *fakeManagerRepo) storedPassword(id int64) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rows[id].Password
}

// fakeEmployeeRepo mirrors the Postgres repository: sequential ids, lists
// ordered by id, and GetForManager only matching rows owned by the manager.
type fakeEmployeeRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]domain.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{rows: make(map[int64]domain.Employee)}
}

func (r *fakeEmployeeRepo) Create(_ context.Context, employee *domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	employee.ID = r.nextID
	r.rows[employee.ID] = *employee
	return nil
}

func (r *fakeEmployeeRepo) ListByManager(_ context.Context, managerID int64) ([]domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.Employee{}
	for _, row := range r.rows {
		if row.ManagerID == managerID {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeEmployeeRepo) GetForManager(_ context.Context, id, managerID int64) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok || row.ManagerID != managerID {
		return nil, pgx.ErrNoRows
	}
	return &row, nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, employee *domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[employee.ID]
	if !ok {
		return nil
	}
	row.FirstName = employee.FirstName
	row.LastName = employee.LastName
	row.Phone = employee.Phone
	r.rows[employee.ID] = row
	return nil
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}

// fakeShiftRepo keeps shift rows in insertion order; deletes match the
// same columns the SQL repository filters on.
type fakeShiftRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   []domain.Shift
}

func newFakeShiftRepo() *fakeShiftRepo {
	return &fakeShiftRepo{}
}

func (r *fakeShiftRepo) Create(_ context.Context, shift *domain.Shift) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	shift.ID = r.nextID
	shift.CreatedAt = time.Now()
	r.rows = append(r.rows, *shift)
	return nil
}

func (r *fakeShiftRepo) ListWeek(_ context.Context, managerID int64, weekStartDate string) ([]domain.Shift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.Shift{}
	for _, row := range r.rows {
		if row.ManagerID == managerID && row.WeekStartDate == weekStartDate {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeShiftRepo) DeleteSlot(_ context.Context, managerID int64, weekStartDate, day, shiftType string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.rows[:0]
	for _, row := range r.rows {
		if row.ManagerID == managerID && row.WeekStartDate == weekStartDate && row.Day == day && row.ShiftType == shiftType {
			continue
		}
		kept = append(kept, row)
	}
	r.rows = kept
	return nil
}

func (r *fakeShiftRepo) DeleteWeek(_ context.Context, managerID int64, weekStartDate string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.rows[:0]
	for _, row := range r.rows {
		if row.ManagerID == managerID && row.WeekStartDate == weekStartDate {
			continue
		}
		kept = append(kept, row)
	}
	r.rows = kept
	return nil
}

func (r *fakeShiftRepo) countAll() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

// testEnv wires the full HTTP stack over the in-memory repositories.
type testEnv struct {
	app       *fiber.App
	managers  *fakeManagerRepo
	employees *fakeEmployeeRepo
	shifts    *fakeShiftRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		managers:  newFakeManagerRepo(),
		employees: newFakeEmployeeRepo(),
		shifts:    newFakeShiftRepo(),
	}

	dispatcher := events.NewInMemoryDispatcher()
	authCfg := config.AuthConfig{JWTSecret: "test-secret", TokenTTLHours: 1}
	accountService := service.NewAccountService(authCfg, env.managers, dispatcher)
	rosterService := service.NewRosterService(env.employees, dispatcher)
	scheduleService := service.NewScheduleService(env.shifts, dispatcher)

	logger := zap.NewNop()
	metrics := observability.NewMetrics()

	app := fiber.New()
	apihttp.RegisterMiddlewares(app, logger, metrics, 0)
	apihttp.RegisterRoutes(app, apihttp.RouteConfig{
		Health:         handlers.NewHealthHandler("leader-app-server", "test", &persistence.Postgres{}, &persistence.Redis{}, metrics),
		Accounts:       handlers.NewAccountsHandler(accountService),
		Manager:        handlers.NewManagerHandler(accountService),
		Employees:      handlers.NewEmployeesHandler(rosterService),
		Shifts:         handlers.NewShiftsHandler(scheduleService),
		AuthMiddleware: auth.NewAuthMiddleware(accountService.TokenManager()),
	})
	env.app = app
	return env
}

func (e *testEnv) request(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			encoded, err := json.Marshal(body)
			require.NoError(t, err)
			reader = bytes.NewBuffer(encoded)
		}
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func errorMessage(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	decodeBody(t, resp, &body)
	return body.Error.Message
}

func registerPayload(phone, email string) map[string]any {
	return map[string]any{
		"firstName": "Noa",
		"lastName":  "Cohen",
		"phone":     phone,
		"email":     email,
		"password":  "secret1",
	}
}

// registerAndLogin provisions a manager through the real endpoints and
// returns its bearer token and id.
func (e *testEnv) registerAndLogin(t *testing.T, phone, email string) (string, int64) {
	t.Helper()

	resp := e.request(t, http.MethodPost, "/register", "", registerPayload(phone, email))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		ID int64 `json:"id"`
	}
	decodeBody(t, resp, &created)

	resp = e.request(t, http.MethodPost, "/login", "", map[string]any{
		"email":    email,
		"password": "secret1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login struct {
		Token string `json:"token"`
	}
	decodeBody(t, resp, &login)
	require.NotEmpty(t, login.Token)
	return login.Token, created.ID
}
