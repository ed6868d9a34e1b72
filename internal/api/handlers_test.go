package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/zapponejosh/luach-api/internal/calendar"
	"github.com/zapponejosh/luach-api/internal/config"
	"github.com/zapponejosh/luach-api/internal/daf"
	"github.com/zapponejosh/luach-api/internal/database"
	"github.com/zapponejosh/luach-api/internal/hebdate"
	"github.com/zapponejosh/luach-api/internal/holiday"
)

// =============================================================================
// TEST SETUP HELPERS
// =============================================================================

const testAPIKey = "admin-test-key-32-characters-minimum-length"

// testEnv sets up a complete test environment with database, config, and router
type testEnv struct {
	db       *database.DB
	cfg      *config.Config
	handlers *Handlers
	router   http.Handler
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError, // Quiet during tests
	}))
}

func testConfig() *config.Config {
	return &config.Config{
		Port:           8080,
		Env:            config.EnvDevelopment,
		DatabasePath:   ":memory:",
		CacheDays:      true,
		APIKey:         testAPIKey,
		LogLevel:       "error",
		LogFormat:      "text",
		ModernHolidays: true,
		TimeZone:       "UTC",
	}
}

// setupTest creates a fresh test environment backed by an in-memory store.
func setupTest(t *testing.T) *testEnv {
	t.Helper()
	logger := quietLogger()

	db, err := database.Open(database.DefaultConfig(":memory:"), logger)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	return newEnv(db)
}

// setupNoStore creates a test environment with the day cache disabled.
func setupNoStore(t *testing.T) *testEnv {
	t.Helper()
	return newEnv(nil)
}

func newEnv(db *database.DB) *testEnv {
	cfg := testConfig()
	logger := quietLogger()
	resolver := calendar.NewResolver(cfg.HolidayOptions(), daf.DefaultRegistry())
	handlers := NewHandlers(db, resolver, cfg, logger)
	handlers.now = func() time.Time {
		return time.Date(2024, time.April, 23, 12, 0, 0, 0, time.UTC)
	}
	return &testEnv{
		db:       db,
		cfg:      cfg,
		handlers: handlers,
		router:   SetupRoutes(handlers, cfg, logger),
	}
}

// do sends a request through the router.
func (env *testEnv) do(method, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)
	return rr
}

// envelope is Response with the payload left raw.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *ErrorInfo      `json:"error"`
}

// parseResponse parses the JSON envelope and decodes data into v when v is
// non-nil.
func parseResponse(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) envelope {
	t.Helper()
	var env envelope
	if err := json.NewDecoder(rr.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v, body: %s", err, rr.Body.String())
	}
	if v != nil {
		if err := json.Unmarshal(env.Data, v); err != nil {
			t.Fatalf("decode data: %v, data: %s", err, env.Data)
		}
	}
	return env
}

// =============================================================================
// DAY TESTS
// =============================================================================

func TestGetDay(t *testing.T) {
	env := setupTest(t)

	tests := []struct {
		name    string
		path    string
		date    string
		hebrew  calendar.HebrewDate
		holiday holiday.Holiday
		israel  bool
	}{
		{
			name:    "first day of pesach",
			path:    "/api/v1/days/2024-04-23",
			date:    "2024-04-23",
			hebrew:  calendar.HebrewDate{Year: 5784, Month: 1, Day: 15, LeapYear: true, MonthName: "Nisan", Formatted: "15 Nisan 5784"},
			holiday: holiday.Pesach,
		},
		{
			name:    "second day of pesach in the diaspora",
			path:    "/api/v1/days/2024-04-24",
			date:    "2024-04-24",
			hebrew:  calendar.HebrewDate{Year: 5784, Month: 1, Day: 16, LeapYear: true, MonthName: "Nisan", Formatted: "16 Nisan 5784"},
			holiday: holiday.Pesach,
		},
		{
			name:    "chol hamoed in israel",
			path:    "/api/v1/days/2024-04-24?israel=true",
			date:    "2024-04-24",
			hebrew:  calendar.HebrewDate{Year: 5784, Month: 1, Day: 16, LeapYear: true, MonthName: "Nisan", Formatted: "16 Nisan 5784"},
			holiday: holiday.CholHamoedPesach,
			israel:  true,
		},
		{
			name:    "today",
			path:    "/api/v1/days/today",
			date:    "2024-04-23",
			hebrew:  calendar.HebrewDate{Year: 5784, Month: 1, Day: 15, LeapYear: true, MonthName: "Nisan", Formatted: "15 Nisan 5784"},
			holiday: holiday.Pesach,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := env.do(http.MethodGet, tt.path, nil)
			if rr.Code != http.StatusOK {
				t.Fatalf("Status = %d, want %d, body: %s", rr.Code, http.StatusOK, rr.Body.String())
			}

			var info calendar.DayInfo
			resp := parseResponse(t, rr, &info)
			if !resp.Success {
				t.Fatalf("Success = false, error = %+v", resp.Error)
			}
			if info.Date != tt.date {
				t.Errorf("Date = %s, want %s", info.Date, tt.date)
			}
			if info.Hebrew != tt.hebrew {
				t.Errorf("Hebrew = %+v, want %+v", info.Hebrew, tt.hebrew)
			}
			if info.Holiday != tt.holiday {
				t.Errorf("Holiday = %q, want %q", info.Holiday, tt.holiday)
			}
			if info.InIsrael != tt.israel {
				t.Errorf("InIsrael = %v, want %v", info.InIsrael, tt.israel)
			}
			if info.HolidayName == "" || info.WeekdayName == "" {
				t.Errorf("names not filled: %q %q", info.HolidayName, info.WeekdayName)
			}
		})
	}
}

func TestGetDay_BadRequest(t *testing.T) {
	env := setupTest(t)

	tests := []struct {
		name string
		path string
	}{
		{"malformed date", "/api/v1/days/2024-4-23"},
		{"impossible date", "/api/v1/days/2024-02-30"},
		{"bad israel flag", "/api/v1/days/2024-04-23?israel=maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := env.do(http.MethodGet, tt.path, nil)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("Status = %d, want %d", rr.Code, http.StatusBadRequest)
			}
			resp := parseResponse(t, rr, nil)
			if resp.Success || resp.Error == nil || resp.Error.Code != CodeBadRequest {
				t.Errorf("response = %+v", resp)
			}
		})
	}
}

func TestGetDay_Language(t *testing.T) {
	env := setupTest(t)

	tests := []struct {
		name        string
		path        string
		header      map[string]string
		wantLang    string
		wantMonth   string
		wantHoliday string
	}{
		{"default", "/api/v1/days/2024-04-23", nil, "en", "Nisan", "Pesach"},
		{"query", "/api/v1/days/2024-04-23?lang=he", nil, "he", "ניסן", "פסח"},
		{"accept language", "/api/v1/days/2024-04-23", map[string]string{"Accept-Language": "he-IL,he;q=0.9"}, "he", "ניסן", "פסח"},
		{"query wins over header", "/api/v1/days/2024-04-23?lang=en", map[string]string{"Accept-Language": "he"}, "en", "Nisan", "Pesach"},
		{"unsupported falls back", "/api/v1/days/2024-04-23?lang=fr", nil, "en", "Nisan", "Pesach"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := env.do(http.MethodGet, tt.path, tt.header)
			if rr.Code != http.StatusOK {
				t.Fatalf("Status = %d, body: %s", rr.Code, rr.Body.String())
			}
			if got := rr.Header().Get("Content-Language"); got != tt.wantLang {
				t.Errorf("Content-Language = %q, want %q", got, tt.wantLang)
			}
			var info calendar.DayInfo
			parseResponse(t, rr, &info)
			if info.Hebrew.MonthName != tt.wantMonth || info.HolidayName != tt.wantHoliday {
				t.Errorf("names = %q %q, want %q %q", info.Hebrew.MonthName, info.HolidayName, tt.wantMonth, tt.wantHoliday)
			}
		})
	}
}

func TestGetDay_CachesInStore(t *testing.T) {
	env := setupTest(t)
	ctx := context.Background()

	rr := env.do(http.MethodGet, "/api/v1/days/2024-12-26", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("Status = %d", rr.Code)
	}

	rec, err := env.db.GetDay(ctx, "2024-12-26", false)
	if err != nil {
		t.Fatalf("GetDay() error = %v", err)
	}
	if rec.Holiday != "chanukah" || rec.HebrewYear != 5785 || rec.HebrewMonth != 9 || rec.HebrewDay != 25 {
		t.Errorf("stored = %+v", rec)
	}

	// A second request is served from the store and still localized.
	rr = env.do(http.MethodGet, "/api/v1/days/2024-12-26?lang=he", nil)
	var info calendar.DayInfo
	parseResponse(t, rr, &info)
	if info.DayOfChanukah != 1 || info.HolidayName != "חנוכה" {
		t.Errorf("cached day = %d %q", info.DayOfChanukah, info.HolidayName)
	}
}

func TestGetRange(t *testing.T) {
	env := setupTest(t)

	rr := env.do(http.MethodGet, "/api/v1/days?start=2024-10-10&end=2024-10-13", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("Status = %d, body: %s", rr.Code, rr.Body.String())
	}

	var data struct {
		Start    string             `json:"start"`
		End      string             `json:"end"`
		InIsrael bool               `json:"in_israel"`
		Days     []calendar.DayInfo `json:"days"`
	}
	parseResponse(t, rr, &data)

	want := []string{"2024-10-10", "2024-10-11", "2024-10-12", "2024-10-13"}
	if len(data.Days) != len(want) {
		t.Fatalf("got %d days, want %d", len(data.Days), len(want))
	}
	for i, d := range data.Days {
		if d.Date != want[i] {
			t.Errorf("Days[%d].Date = %s, want %s", i, d.Date, want[i])
		}
	}
	if data.Days[2].Holiday != holiday.YomKippur {
		t.Errorf("2024-10-12 holiday = %q, want yom_kippur", data.Days[2].Holiday)
	}

	stats, err := env.db.GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats() error = %v", err)
	}
	if stats.TotalDays != 4 {
		t.Errorf("stored days = %d, want 4", stats.TotalDays)
	}
}

func TestGetRange_Errors(t *testing.T) {
	env := setupTest(t)

	tests := []struct {
		name string
		path string
	}{
		{"missing end", "/api/v1/days?start=2024-10-10"},
		{"missing both", "/api/v1/days"},
		{"bad start", "/api/v1/days?start=yesterday&end=2024-10-13"},
		{"bad end", "/api/v1/days?start=2024-10-10&end=tomorrow"},
		{"reversed", "/api/v1/days?start=2024-10-13&end=2024-10-10"},
		{"too long", "/api/v1/days?start=2024-01-01&end=2024-06-01"},
		{"bad israel flag", "/api/v1/days?start=2024-10-10&end=2024-10-13&israel=2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := env.do(http.MethodGet, tt.path, nil)
			if rr.Code != http.StatusBadRequest {
				t.Errorf("Status = %d, want %d", rr.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestGetHebrewDay(t *testing.T) {
	env := setupTest(t)

	tests := []struct {
		name     string
		path     string
		wantCode int
		wantDate string
	}{
		{"25 kislev 5785", "/api/v1/hebrew/5785/9/25", http.StatusOK, "2024-12-26"},
		{"1 tishrei 5785", "/api/v1/hebrew/5785/7/1", http.StatusOK, "2024-10-03"},
		{"14 adar 5785", "/api/v1/hebrew/5785/12/14", http.StatusOK, "2025-03-14"},
		{"adar ii in a common year", "/api/v1/hebrew/5785/13/1", http.StatusBadRequest, ""},
		{"30 iyar", "/api/v1/hebrew/5785/2/30", http.StatusBadRequest, ""},
		{"day zero", "/api/v1/hebrew/5785/2/0", http.StatusBadRequest, ""},
		{"year zero", "/api/v1/hebrew/0/7/1", http.StatusBadRequest, ""},
		{"last supported year", "/api/v1/hebrew/13760/7/1", http.StatusOK, "9999-11-04"},
		{"past last supported year", "/api/v1/hebrew/13761/7/1", http.StatusBadRequest, ""},
		{"far future year", "/api/v1/hebrew/5000000/7/1", http.StatusBadRequest, ""},
		{"huge year", "/api/v1/hebrew/2000000000000/7/1", http.StatusBadRequest, ""},
		{"not a number", "/api/v1/hebrew/5785/nisan/1", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := env.do(http.MethodGet, tt.path, nil)
			if rr.Code != tt.wantCode {
				t.Fatalf("Status = %d, want %d, body: %s", rr.Code, tt.wantCode, rr.Body.String())
			}
			if tt.wantCode != http.StatusOK {
				return
			}
			var info calendar.DayInfo
			parseResponse(t, rr, &info)
			if info.Date != tt.wantDate {
				t.Errorf("Date = %s, want %s", info.Date, tt.wantDate)
			}
		})
	}
}

// =============================================================================
// YEAR AND DAF TESTS
// =============================================================================

func TestGetYear(t *testing.T) {
	env := setupTest(t)

	rr := env.do(http.MethodGet, "/api/v1/years/5785", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("Status = %d, body: %s", rr.Code, rr.Body.String())
	}

	var info calendar.YearInfo
	parseResponse(t, rr, &info)
	if info.Year != 5785 || info.LeapYear || info.Length != 355 || info.Months != 12 {
		t.Errorf("year = %+v", info)
	}
	if info.Type != hebdate.Complete.String() {
		t.Errorf("Type = %q, want %q", info.Type, hebdate.Complete.String())
	}
	if info.RoshHashana != "2024-10-03" || info.ParshaRow != 3 {
		t.Errorf("RoshHashana = %s, ParshaRow = %d", info.RoshHashana, info.ParshaRow)
	}
	if info.Cycle != 305 || info.YearOfCycle != 9 {
		t.Errorf("cycle = %d/%d, want 305/9", info.Cycle, info.YearOfCycle)
	}
	kd, ok := info.KeyDate(holiday.Pesach)
	if !ok || kd.Date != "2025-04-13" || kd.Name == "" {
		t.Errorf("pesach key date = %+v, %v", kd, ok)
	}
}

func TestGetYear_Errors(t *testing.T) {
	env := setupTest(t)

	for _, path := range []string{
		"/api/v1/years/0",
		"/api/v1/years/-3",
		"/api/v1/years/next",
		"/api/v1/years/13761",
		"/api/v1/years/9223372036854775807",
	} {
		rr := env.do(http.MethodGet, path, nil)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("GET %s status = %d, want %d", path, rr.Code, http.StatusBadRequest)
		}
	}
}

func TestListCycles(t *testing.T) {
	env := setupTest(t)

	rr := env.do(http.MethodGet, "/api/v1/daf", nil)
	var data struct {
		Cycles []string `json:"cycles"`
	}
	parseResponse(t, rr, &data)
	if len(data.Cycles) != 2 || data.Cycles[0] != "bavli" || data.Cycles[1] != "yerushalmi" {
		t.Errorf("Cycles = %v", data.Cycles)
	}
}

func TestGetDaf(t *testing.T) {
	env := setupTest(t)

	tests := []struct {
		name     string
		path     string
		wantCode int
		want     *calendar.DafInfo
	}{
		{
			name:     "bavli",
			path:     "/api/v1/daf/bavli/2024-10-03",
			wantCode: http.StatusOK,
			want:     &calendar.DafInfo{Cycle: "bavli", CycleNumber: 14, Volume: 20, VolumeName: "Bava Kamma", Page: 70, Folio: 71},
		},
		{
			name:     "yerushalmi",
			path:     "/api/v1/daf/yerushalmi/2024-10-03",
			wantCode: http.StatusOK,
			want:     &calendar.DafInfo{Cycle: "yerushalmi", CycleNumber: 11, Volume: 16, VolumeName: "Yoma", Page: 22, Folio: 22},
		},
		{
			name:     "yerushalmi skips yom kippur",
			path:     "/api/v1/daf/yerushalmi/2024-10-12",
			wantCode: http.StatusOK,
		},
		{
			name:     "unknown cycle",
			path:     "/api/v1/daf/mishna/2024-10-03",
			wantCode: http.StatusNotFound,
		},
		{
			name:     "bad date",
			path:     "/api/v1/daf/bavli/soon",
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := env.do(http.MethodGet, tt.path, nil)
			if rr.Code != tt.wantCode {
				t.Fatalf("Status = %d, want %d, body: %s", rr.Code, tt.wantCode, rr.Body.String())
			}
			if tt.wantCode != http.StatusOK {
				return
			}
			var resp DafResponse
			parseResponse(t, rr, &resp)
			switch {
			case tt.want == nil && resp.Reading != nil:
				t.Errorf("Reading = %+v, want none", resp.Reading)
			case tt.want != nil && (resp.Reading == nil || *resp.Reading != *tt.want):
				t.Errorf("Reading = %+v, want %+v", resp.Reading, tt.want)
			}
		})
	}
}

// =============================================================================
// ADMIN TESTS
// =============================================================================

func TestAdmin_RequiresKey(t *testing.T) {
	env := setupTest(t)

	tests := []struct {
		name     string
		key      string
		wantCode int
	}{
		{"missing key", "", http.StatusUnauthorized},
		{"wrong key", "not-the-key", http.StatusUnauthorized},
		{"valid key", testAPIKey, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := map[string]string{}
			if tt.key != "" {
				header["X-API-Key"] = tt.key
			}
			rr := env.do(http.MethodGet, "/api/v1/admin/stats", header)
			if rr.Code != tt.wantCode {
				t.Errorf("Status = %d, want %d", rr.Code, tt.wantCode)
			}
		})
	}
}

func TestAuthMiddleware_DevelopmentWithoutKey(t *testing.T) {
	cfg := testConfig()
	cfg.APIKey = ""

	handler := AuthMiddleware(cfg, quietLogger())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/test", nil))
	if rr.Code != http.StatusOK {
		t.Errorf("Status = %d, want %d", rr.Code, http.StatusOK)
	}

	cfg.Env = config.EnvProduction
	rr = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-API-Key", "anything")
	handler = AuthMiddleware(cfg, quietLogger())(http.NotFoundHandler())
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("production without key: Status = %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestGetStats(t *testing.T) {
	env := setupTest(t)
	auth := map[string]string{"X-API-Key": testAPIKey}

	env.do(http.MethodGet, "/api/v1/days/2024-10-12", nil)
	env.do(http.MethodGet, "/api/v1/days/2024-10-12?israel=true", nil)
	env.do(http.MethodGet, "/api/v1/days/2024-10-14", nil)

	rr := env.do(http.MethodGet, "/api/v1/admin/stats", auth)
	var stats database.DayStats
	parseResponse(t, rr, &stats)
	if stats.TotalDays != 3 || stats.IsraelDays != 1 {
		t.Errorf("counts = %d/%d, want 3/1", stats.TotalDays, stats.IsraelDays)
	}
	if stats.EarliestDate != "2024-10-12" || stats.LatestDate != "2024-10-14" {
		t.Errorf("span = %s..%s", stats.EarliestDate, stats.LatestDate)
	}
}

func TestDeleteDay(t *testing.T) {
	env := setupTest(t)
	auth := map[string]string{"X-API-Key": testAPIKey}

	env.do(http.MethodGet, "/api/v1/days/2024-10-12", nil)

	rr := env.do(http.MethodDelete, "/api/v1/admin/days/2024-10-12?israel=true", auth)
	if rr.Code != http.StatusNotFound {
		t.Errorf("israel delete: Status = %d, want %d", rr.Code, http.StatusNotFound)
	}

	rr = env.do(http.MethodDelete, "/api/v1/admin/days/2024-10-12", auth)
	if rr.Code != http.StatusOK {
		t.Fatalf("Status = %d, body: %s", rr.Code, rr.Body.String())
	}

	if _, err := env.db.GetDay(context.Background(), "2024-10-12", false); !database.IsNotFound(err) {
		t.Errorf("GetDay() after delete error = %v, want not found", err)
	}

	rr = env.do(http.MethodDelete, "/api/v1/admin/days/2024-10-12", auth)
	if rr.Code != http.StatusNotFound {
		t.Errorf("second delete: Status = %d, want %d", rr.Code, http.StatusNotFound)
	}

	rr = env.do(http.MethodDelete, "/api/v1/admin/days/someday", auth)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("bad date: Status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

// =============================================================================
// NO STORE AND PLUMBING TESTS
// =============================================================================

func TestNoStore(t *testing.T) {
	env := setupNoStore(t)
	auth := map[string]string{"X-API-Key": testAPIKey}

	rr := env.do(http.MethodGet, "/health", nil)
	var health map[string]string
	parseResponse(t, rr, &health)
	if rr.Code != http.StatusOK || health["store"] != "disabled" {
		t.Errorf("health = %d %v", rr.Code, health)
	}

	rr = env.do(http.MethodGet, "/api/v1/days/2024-04-23", nil)
	if rr.Code != http.StatusOK {
		t.Errorf("day without store: Status = %d", rr.Code)
	}

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		path := "/api/v1/admin/stats"
		if method == http.MethodDelete {
			path = "/api/v1/admin/days/2024-04-23"
		}
		rr = env.do(method, path, auth)
		if rr.Code != http.StatusServiceUnavailable {
			t.Errorf("%s %s: Status = %d, want %d", method, path, rr.Code, http.StatusServiceUnavailable)
		}
	}
}

func TestHealthCheck(t *testing.T) {
	env := setupTest(t)

	rr := env.do(http.MethodGet, "/health", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("Status = %d", rr.Code)
	}
	var health map[string]string
	parseResponse(t, rr, &health)
	if health["status"] != "healthy" || health["store"] != "ok" {
		t.Errorf("health = %v", health)
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header not set")
	}
}

func TestRouter_NotFoundAndMethod(t *testing.T) {
	env := setupTest(t)

	rr := env.do(http.MethodGet, "/api/v1/nothing", nil)
	resp := parseResponse(t, rr, nil)
	if rr.Code != http.StatusNotFound || resp.Error == nil || resp.Error.Code != CodeNotFound {
		t.Errorf("not found = %d %+v", rr.Code, resp.Error)
	}

	rr = env.do(http.MethodPost, "/api/v1/days/2024-04-23", nil)
	resp = parseResponse(t, rr, nil)
	if rr.Code != http.StatusMethodNotAllowed || resp.Error == nil || resp.Error.Code != CodeMethodNotAllowed {
		t.Errorf("POST = %d %+v, want %d", rr.Code, resp.Error, http.StatusMethodNotAllowed)
	}
}

func TestErrorCode_Status(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{CodeBadRequest, http.StatusBadRequest},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeNotFound, http.StatusNotFound},
		{CodeMethodNotAllowed, http.StatusMethodNotAllowed},
		{CodeStoreDisabled, http.StatusServiceUnavailable},
		{CodeUnhealthy, http.StatusServiceUnavailable},
		{CodeInternal, http.StatusInternalServerError},
		{ErrorCode("SOMETHING_NEW"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := tt.code.Status(); got != tt.want {
			t.Errorf("%s.Status() = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	env := setupTest(t)

	rr := env.do(http.MethodOptions, "/api/v1/days/2024-04-23", nil)
	if rr.Code != http.StatusNoContent {
		t.Errorf("Status = %d, want %d", rr.Code, http.StatusNoContent)
	}
	if rr.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing Access-Control-Allow-Origin")
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	handler := RecoveryMiddleware(quietLogger())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		}),
	)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Errorf("Status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
}

func TestChainMiddleware_Order(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	handler := ChainMiddleware(mark("a"), mark("b"), mark("c"))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}),
	)
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Errorf("order = %v, want [a b c]", order)
	}
}
