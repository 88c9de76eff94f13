package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"weatherdash.app/internal/adapters/api"
	"weatherdash.app/internal/config"
)

// fakeUpstreams serves OpenWeatherMap, TimezoneDB and Nominatim from one server.
// weatherStatus applies to every OpenWeatherMap endpoint.
type fakeUpstreams struct {
	server        *httptest.Server
	weatherStatus atomic.Int32
	nominatimHits atomic.Int32
	userAgent     atomic.Value
}

func newFakeUpstreams() *fakeUpstreams {
	f := &fakeUpstreams{}
	f.weatherStatus.Store(http.StatusOK)

	mux := http.NewServeMux()
	mux.HandleFunc("/geo/1.0/direct", func(w http.ResponseWriter, r *http.Request) {
		if status := int(f.weatherStatus.Load()); status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		if strings.HasPrefix(r.URL.Query().Get("q"), "Atlantis") {
			fmt.Fprint(w, `[]`)
			return
		}
		fmt.Fprint(w, `[{"name":"Recife","lat":-8.0539,"lon":-34.8811,"country":"BR"}]`)
	})
	mux.HandleFunc("/data/2.5/weather", func(w http.ResponseWriter, r *http.Request) {
		if status := int(f.weatherStatus.Load()); status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		fmt.Fprint(w, `{"main":{"temp":28.4,"feels_like":31.2,"humidity":74},"wind":{"speed":4.1},"visibility":9500,"weather":[{"description":"chuva leve"}]}`)
	})
	mux.HandleFunc("/data/2.5/forecast", func(w http.ResponseWriter, r *http.Request) {
		var entries []string
		start := time.Now().Truncate(3 * time.Hour)
		for i := 1; i <= 40; i++ {
			dt := start.Add(time.Duration(i) * 3 * time.Hour).Unix()
			entries = append(entries, fmt.Sprintf(`{"dt":%d,"main":{"temp_min":%d,"temp_max":%d},"weather":[{"description":"nublado"}]}`, dt, 20+i%3, 27+i%4))
		}
		fmt.Fprintf(w, `{"list":[%s]}`, strings.Join(entries, ","))
	})
	mux.HandleFunc("/v2.1/get-time-zone", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"OK","zoneName":"America/Recife","formatted":"2024-01-15 14:30:00"}`)
	})
	mux.HandleFunc("/reverse", func(w http.ResponseWriter, r *http.Request) {
		f.nominatimHits.Add(1)
		f.userAgent.Store(r.Header.Get("User-Agent"))
		fmt.Fprint(w, `{"address":{"city":"Recife","state":"Pernambuco","country":"Brasil"}}`)
	})

	f.server = httptest.NewServer(mux)
	return f
}

type ApplicationTestSuite struct {
	suite.Suite
	upstreams   *fakeUpstreams
	redis       *miniredis.Miniredis
	config      *config.Config
	application *Application
	router      *gin.Engine
	logs        bytes.Buffer
}

func (s *ApplicationTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (s *ApplicationTestSuite) SetupTest() {
	s.upstreams = newFakeUpstreams()
	s.redis = miniredis.RunT(s.T())
	s.logs.Reset()

	s.config = &config.Config{
		Server: config.ServerConfig{Port: 8080},
		OpenWeatherMap: config.OpenWeatherMapConfig{
			APIKey:      "owm-key",
			BaseURL:     s.upstreams.server.URL,
			Language:    "pt_br",
			SampleCount: 40,
		},
		TimezoneDB: config.TimezoneDBConfig{APIKey: "tz-key", BaseURL: s.upstreams.server.URL},
		Nominatim: config.NominatimConfig{
			BaseURL:   s.upstreams.server.URL,
			Language:  "pt",
			UserAgent: "weatherdash-test/1.0",
			RateLimit: 100,
			Burst:     10,
		},
		Lookup: config.LookupConfig{Timezone: "America/Recife"},
		Upstream: config.UpstreamConfig{
			TimeoutSeconds:      5,
			BreakerMaxFailures:  2,
			BreakerOpenSeconds:  60,
			BreakerHalfOpenReqs: 1,
		},
		Session: config.SessionConfig{
			Store:      config.SessionStoreTypeRedis,
			TTLMinutes: 60,
			CookieName: "weatherdash_session",
			Redis: config.RedisConfig{
				Addr:         s.redis.Addr(),
				DialTimeout:  1,
				ReadTimeout:  1,
				WriteTimeout: 1,
			},
		},
		Log: config.LogConfig{Level: "debug"},
	}
	s.Require().NoError(s.config.Validate())

	deps, err := NewDependencyContainer(s.config, DependencyOptions{LogOutput: &s.logs})
	s.Require().NoError(err)

	s.application, err = NewApplicationWithDependencies(s.config, deps)
	s.Require().NoError(err)
	s.router = s.application.GetRouter()
}

func (s *ApplicationTestSuite) TearDownTest() {
	s.upstreams.server.Close()
	s.NoError(s.application.Shutdown())
}

func (s *ApplicationTestSuite) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// post submits a dashboard form and returns the session cookie in use
func (s *ApplicationTestSuite) post(path string, form url.Values, cookie *http.Cookie) (*httptest.ResponseRecorder, *http.Cookie) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := s.do(req)
	for _, c := range w.Result().Cookies() {
		if c.Name == s.config.Session.CookieName {
			return w, c
		}
	}
	return w, cookie
}

func (s *ApplicationTestSuite) dashboardJSON(cookie *http.Cookie) map[string]interface{} {
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	req.AddCookie(cookie)
	w := s.do(req)
	s.Require().Equal(http.StatusOK, w.Code)

	var body map[string]interface{}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func (s *ApplicationTestSuite) TestSearchFlow() {
	w, cookie := s.post("/search", url.Values{"q": {"Recife"}}, nil)
	s.Equal(http.StatusSeeOther, w.Code)
	s.Require().NotNil(cookie)

	state := s.dashboardJSON(cookie)
	s.Equal(false, state["loading"])
	s.Nil(state["error"])

	current := state["current"].(map[string]interface{})
	s.Equal("Recife", current["city"])
	s.Equal("Pernambuco", current["state"])
	s.Equal("15/01/2024, 14:30:00", current["localTime"])
	s.Equal(14.8, current["windSpeed"])
	s.Equal(float64(10), current["visibility"])

	forecastDays := state["forecast"].([]interface{})
	s.NotEmpty(forecastDays)
	s.LessOrEqual(len(forecastDays), 5)

	page := httptest.NewRequest(http.MethodGet, "/", nil)
	page.AddCookie(cookie)
	body := s.do(page).Body.String()
	s.Contains(body, "Recife, Pernambuco, Brasil")
	s.Contains(body, "bg-rainy-gradient")
	s.Equal("weatherdash-test/1.0", s.upstreams.userAgent.Load())
}

func (s *ApplicationTestSuite) TestUnknownCityKeepsPreviousWeather() {
	_, cookie := s.post("/search", url.Values{"q": {"Recife"}}, nil)
	s.post("/search", url.Values{"q": {"Atlantis"}}, cookie)

	state := s.dashboardJSON(cookie)
	s.Equal("Erro ao buscar dados meteorológicos", state["error"])
	s.Equal("Atlantis", state["query"])
	s.Equal("Recife", state["current"].(map[string]interface{})["city"])
}

func (s *ApplicationTestSuite) TestLocateFlow() {
	_, cookie := s.post("/locate", url.Values{"lat": {"-8.0539"}, "lon": {"-34.8811"}}, nil)

	state := s.dashboardJSON(cookie)
	s.Equal("Recife", state["current"].(map[string]interface{})["city"])
	s.Equal(int32(1), s.upstreams.nominatimHits.Load())
}

func (s *ApplicationTestSuite) TestLocateDenied() {
	_, cookie := s.post("/locate", url.Values{"error": {"denied"}}, nil)

	state := s.dashboardJSON(cookie)
	s.Equal("Erro ao acessar localização", state["error"])
	s.Equal(int32(0), s.upstreams.nominatimHits.Load())
}

func (s *ApplicationTestSuite) TestThemeSurvivesSearch() {
	_, cookie := s.post("/theme", nil, nil)
	s.post("/search", url.Values{"q": {"Recife"}}, cookie)

	state := s.dashboardJSON(cookie)
	s.Equal(true, state["darkMode"])
	s.NotNil(state["current"])
}

func (s *ApplicationTestSuite) TestWeatherAPI() {
	w := s.do(httptest.NewRequest(http.MethodGet, "/api/weather?city=Recife", nil))
	s.Require().Equal(http.StatusOK, w.Code)

	var resp api.WeatherResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("Recife", resp.Current.City)
	s.Equal("bg-rainy-gradient", resp.Presentation.Backdrop)

	w = s.do(httptest.NewRequest(http.MethodGet, "/api/weather?city=Atlantis", nil))
	s.Equal(http.StatusNotFound, w.Code)
	s.Contains(w.Body.String(), "Erro ao buscar dados meteorológicos")
	s.NotContains(w.Body.String(), "Atlantis")
}

func (s *ApplicationTestSuite) TestBreakerOpensAndHealthDegrades() {
	s.upstreams.weatherStatus.Store(http.StatusInternalServerError)

	for i := 0; i < 3; i++ {
		w := s.do(httptest.NewRequest(http.MethodGet, "/api/weather?city=Recife", nil))
		s.Equal(http.StatusBadGateway, w.Code)
	}

	w := s.do(httptest.NewRequest(http.MethodGet, "/api/health", nil))
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"status":"degraded"`)
	s.Contains(w.Body.String(), `"openweathermap":"open"`)

	metrics := s.do(httptest.NewRequest(http.MethodGet, "/metrics", nil)).Body.String()
	s.Contains(metrics, `weatherdash_upstream_requests_total{outcome="circuit_open",upstream="openweathermap"} 1`)
	s.Contains(metrics, `weatherdash_lookups_total{flow="search",outcome="EXTERNAL_API_ERROR"} 3`)
}

func (s *ApplicationTestSuite) TestHealthReportsSessionStore() {
	w := s.do(httptest.NewRequest(http.MethodGet, "/api/health", nil))
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"backend":"redis"`)

	s.redis.SetError("LOADING Redis is loading the dataset in memory")
	w = s.do(httptest.NewRequest(http.MethodGet, "/api/health", nil))
	s.Equal(http.StatusServiceUnavailable, w.Code)
}

func TestApplicationTestSuite(t *testing.T) {
	suite.Run(t, new(ApplicationTestSuite))
}

func TestNewDependencyContainer_MemoryStore(t *testing.T) {
	cfg := &config.Config{
		Server:         config.ServerConfig{Port: 8080},
		OpenWeatherMap: config.OpenWeatherMapConfig{APIKey: "k", BaseURL: "http://127.0.0.1:1", Language: "pt_br", SampleCount: 40},
		TimezoneDB:     config.TimezoneDBConfig{APIKey: "k", BaseURL: "http://127.0.0.1:1"},
		Nominatim:      config.NominatimConfig{BaseURL: "http://127.0.0.1:1", UserAgent: "t", RateLimit: 1, Burst: 1},
		Lookup:         config.LookupConfig{Timezone: "UTC"},
		Upstream:       config.UpstreamConfig{BreakerMaxFailures: 1, BreakerOpenSeconds: 1, BreakerHalfOpenReqs: 1},
		Session:        config.SessionConfig{Store: config.SessionStoreTypeMemory, TTLMinutes: 1, CookieName: "s"},
		Log:            config.LogConfig{Level: "info"},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}

	var logs bytes.Buffer
	deps, err := NewDependencyContainer(cfg, DependencyOptions{LogOutput: &logs})
	if err != nil {
		t.Fatal(err)
	}
	defer deps.Cleanup()

	if len(deps.upstreams) != 3 {
		t.Fatalf("expected 3 upstream clients, got %d", len(deps.upstreams))
	}
	if !strings.Contains(logs.String(), "Session store initialized") {
		t.Fatalf("missing session store log: %s", logs.String())
	}
}
