package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-smarthome-designer/internal/config"
	"github.com/sbilibin2017/gw-smarthome-designer/internal/models"
	"github.com/sbilibin2017/gw-smarthome-designer/internal/repositories"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	output := buf.String()
	assert.Contains(t, output, "Build version: v1.0.0")
	assert.Contains(t, output, "Build commit: abcd1234")
	assert.Contains(t, output, "Build date: 2025-09-26")
}

func TestNewEventWriter(t *testing.T) {
	assert.Nil(t, newEventWriter(config.Kafka{Topic: "events"}))

	w := newEventWriter(config.Kafka{Brokers: []string{"localhost:9092"}, Topic: "events"})
	require.NotNil(t, w)
	assert.Equal(t, "events", w.Topic)
	assert.NoError(t, w.Close())
}

func TestNewCatalogStorage_File(t *testing.T) {
	cfg := testConfig(t)

	storage, err := newCatalogStorage(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &repositories.FileCatalogRepository{}, storage)
}

func TestOpenDatabase_UnknownDriver(t *testing.T) {
	_, err := openDatabase(context.Background(), config.Database{Driver: "nope", DSN: "x"})
	assert.Error(t, err)
}

// memorySessions is an in-memory session store.
type memorySessions struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]uuid.UUID
}

func newMemorySessions() *memorySessions {
	return &memorySessions{sessions: make(map[uuid.UUID]uuid.UUID)}
}

func (m *memorySessions) Save(_ context.Context, sessionID, userID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sessionID] = userID
	return nil
}

func (m *memorySessions) GetUserID(_ context.Context, sessionID uuid.UUID) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	userID, ok := m.sessions[sessionID]
	if !ok {
		return uuid.Nil, repositories.ErrSessionNotFound
	}
	return userID, nil
}

func (m *memorySessions) Delete(_ context.Context, sessionID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	return nil
}

func (m *memorySessions) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	dir := t.TempDir()
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.DSN = filepath.Join(dir, "app.db")
	cfg.Catalog.Dir = filepath.Join(dir, "data")
	cfg.JWT.SecretKey = "test-secret"
	return cfg
}

// recordingEvents keeps published messages in memory.
type recordingEvents struct {
	mu   sync.Mutex
	msgs []kafka.Message
}

func (r *recordingEvents) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msgs...)
	return nil
}

func (r *recordingEvents) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var types []string
	for _, msg := range r.msgs {
		for _, h := range msg.Headers {
			if h.Key == "type" {
				types = append(types, string(h.Value))
			}
		}
	}
	return types
}

type testApp struct {
	server   *httptest.Server
	sessions *memorySessions
	events   *recordingEvents
	cfg      *config.Config
}

func newTestApp(t *testing.T, mutate func(cfg *config.Config)) *testApp {
	t.Helper()
	cfg := testConfig(t)
	if mutate != nil {
		mutate(cfg)
	}

	ctx := context.Background()
	db, err := openDatabase(ctx, cfg.Database)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	catalog, err := newCatalogStorage(ctx, cfg)
	require.NoError(t, err)

	sessions := newMemorySessions()
	events := &recordingEvents{}
	srv := httptest.NewServer(newRouter(cfg, routerDeps{
		db:       db,
		sessions: sessions,
		catalog:  catalog,
		events:   events,
	}))
	t.Cleanup(srv.Close)

	return &testApp{server: srv, sessions: sessions, events: events, cfg: cfg}
}

// client returns a browser-like client that keeps cookies and does not follow redirects.
func (a *testApp) client(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func (a *testApp) postForm(t *testing.T, c *http.Client, path string, form url.Values) *http.Response {
	t.Helper()
	resp, err := c.PostForm(a.server.URL+path, form)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func (a *testApp) do(t *testing.T, c *http.Client, method, path, body string) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(data, &decoded))
	}
	return resp, decoded
}

func (a *testApp) signUp(t *testing.T, c *http.Client, username, email, password string) {
	t.Helper()
	resp := a.postForm(t, c, "/register", url.Values{
		"username": {username},
		"email":    {email},
		"password": {password},
	})
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/login", resp.Header.Get("Location"))

	resp = a.postForm(t, c, "/login", url.Values{
		"email":    {email},
		"password": {password},
	})
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/dashboard", resp.Header.Get("Location"))
}

func TestRouter_EndToEnd(t *testing.T) {
	app := newTestApp(t, nil)
	alice := app.client(t)
	bob := app.client(t)

	resp, _ := app.do(t, alice, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = app.do(t, alice, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// protected routes before login
	resp, body := app.do(t, alice, http.MethodGet, "/api/projects", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "error", body["status"])

	resp, _ = app.do(t, alice, http.MethodGet, "/dashboard", "")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	app.signUp(t, alice, "alice", "alice@example.com", "alice-pass")
	app.signUp(t, bob, "bob", "bob@example.com", "bob-pass")
	assert.Equal(t, 2, app.sessions.len())

	// duplicate email is rejected
	resp = app.postForm(t, app.client(t), "/register", url.Values{
		"username": {"alice2"},
		"email":    {"alice@example.com"},
		"password": {"x"},
	})
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/register", resp.Header.Get("Location"))

	// wrong password
	resp = app.postForm(t, app.client(t), "/login", url.Values{
		"email":    {"alice@example.com"},
		"password": {"wrong"},
	})
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	// save, list, get
	scene := `{"room":{"width":5,"name":"Вітальня"},"devices":[{"id":"t1","x":1.5}]}`
	resp, body = app.do(t, alice, http.MethodPost, "/api/save_project", `{"name":"Flat","scene":`+scene+`}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	projectID, _ := body["id"].(string)
	require.NotEmpty(t, projectID)

	resp, body = app.do(t, alice, http.MethodPost, "/api/save_project", `{"id":"`+projectID+`","name":"Flat v2","scene":`+scene+`}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, projectID, body["id"])

	resp, body = app.do(t, alice, http.MethodGet, "/api/projects", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	projects, _ := body["projects"].([]any)
	require.Len(t, projects, 1)
	assert.Equal(t, "Flat v2", projects[0].(map[string]any)["name"])

	resp, body = app.do(t, alice, http.MethodGet, "/api/project/"+projectID, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	gotScene, err := json.Marshal(body["scene"])
	require.NoError(t, err)
	assert.JSONEq(t, scene, string(gotScene))

	resp, _ = app.do(t, alice, http.MethodGet, "/dashboard", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// ownership
	resp, _ = app.do(t, bob, http.MethodGet, "/api/project/"+projectID, "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = app.do(t, bob, http.MethodDelete, "/api/delete_project/"+projectID, "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, body = app.do(t, bob, http.MethodGet, "/api/projects", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body["projects"])

	// delete
	resp, _ = app.do(t, alice, http.MethodDelete, "/api/delete_project/"+projectID, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = app.do(t, alice, http.MethodGet, "/api/project/"+projectID, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// logout revokes the session
	resp, _ = app.do(t, alice, http.MethodGet, "/logout", "")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, 1, app.sessions.len())

	resp, _ = app.do(t, alice, http.MethodGet, "/api/projects", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_Events(t *testing.T) {
	app := newTestApp(t, nil)
	c := app.client(t)
	app.signUp(t, c, "erin", "erin@example.com", "erin-pass")

	// duplicate registration is rolled back and announces nothing
	resp := app.postForm(t, app.client(t), "/register", url.Values{
		"username": {"erin"},
		"email":    {"erin2@example.com"},
		"password": {"x"},
	})
	assert.Equal(t, "/register", resp.Header.Get("Location"))

	resp, body := app.do(t, c, http.MethodPost, "/api/save_project", `{"name":"Flat","scene":{}}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	projectID, _ := body["id"].(string)

	resp, _ = app.do(t, c, http.MethodDelete, "/api/delete_project/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = app.do(t, c, http.MethodDelete, "/api/delete_project/"+projectID, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, []string{
		models.EventUserRegistered,
		models.EventProjectSaved,
		models.EventProjectDeleted,
	}, app.events.types())
}

func TestRouter_Catalog(t *testing.T) {
	app := newTestApp(t, nil)
	c := app.client(t)

	resp, body := app.do(t, c, http.MethodPost, "/admin/add-device",
		`{"name":"Камера","brand":"Hikvision","category":"Камери","features":{}}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "cameras.json", body["file"])

	resp, body = app.do(t, c, http.MethodPost, "/admin/add-device", `{"name":"","brand":"X","category":"Клімат"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "error", body["status"])
	assert.NoFileExists(t, filepath.Join(app.cfg.Catalog.Dir, "climate.json"))

	resp, body = app.do(t, c, http.MethodGet, "/api/devices?category="+url.QueryEscape("Камери"), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	library, _ := body["library"].([]any)
	require.Len(t, library, 1)
	assert.Equal(t, "Камера", library[0].(map[string]any)["name"])

	data, err := os.ReadFile(filepath.Join(app.cfg.Catalog.Dir, "cameras.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Камера")
}

func TestRouter_CatalogRequireAuth(t *testing.T) {
	app := newTestApp(t, func(cfg *config.Config) {
		cfg.Catalog.RequireAuth = true
	})
	c := app.client(t)

	record := `{"name":"Hub","brand":"Aqara","category":"Керування"}`
	resp, _ := app.do(t, c, http.MethodPost, "/admin/add-device", record)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	app.signUp(t, c, "admin", "admin@example.com", "admin-pass")

	resp, body := app.do(t, c, http.MethodPost, "/admin/add-device", record)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "control.json", body["file"])
}

func TestRouter_CORS(t *testing.T) {
	app := newTestApp(t, func(cfg *config.Config) {
		cfg.App.CORSOrigins = []string{"http://editor.local"}
	})

	req, err := http.NewRequest(http.MethodOptions, app.server.URL+"/api/devices", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://editor.local")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "http://editor.local", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
}

func TestRouter_BearerToken(t *testing.T) {
	app := newTestApp(t, nil)
	c := app.client(t)
	app.signUp(t, c, "carol", "carol@example.com", "carol-pass")

	u, err := url.Parse(app.server.URL)
	require.NoError(t, err)

	var token string
	for _, cookie := range c.Jar.Cookies(u) {
		if cookie.Name == "session" {
			token = cookie.Value
		}
	}
	require.NotEmpty(t, token)

	req, err := http.NewRequest(http.MethodGet, app.server.URL+"/api/projects", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	req.AddCookie(&http.Cookie{Name: "session", Value: "stale-token"})

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
