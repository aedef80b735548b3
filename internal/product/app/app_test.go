package app

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/abgdnv/coffeeshop/internal/product/config"
	pkgconfig "github.com/abgdnv/coffeeshop/pkg/config"
	"github.com/abgdnv/coffeeshop/pkg/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type WebshopE2ESuite struct {
	suite.Suite
	server *httptest.Server
	client *http.Client
}

func TestWebshopE2ESuite(t *testing.T) {
	suite.Run(t, new(WebshopE2ESuite))
}

// SetupTest gives every test a freshly seeded catalog.
func (s *WebshopE2ESuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.Config{Metrics: pkgconfig.MetricsConfig{Enabled: true, Path: "/metrics"}}
	deps := SetupDependencies(logger, cfg)
	s.server = httptest.NewServer(SetupHttpHandler(deps))
	s.client = s.server.Client()
}

func (s *WebshopE2ESuite) TearDownTest() {
	s.server.Close()
}

func (s *WebshopE2ESuite) do(method, path, key, body string) (int, string) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, s.server.URL+path, reader)
	s.Require().NoError(err)
	if key != "" {
		req.Header.Set(web.XAPIKey, key)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := s.client.Do(req)
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()
	b, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp.StatusCode, string(b)
}

func (s *WebshopE2ESuite) TestList_ReturnsSeed() {
	// when
	code, body := s.do(http.MethodGet, "/products", APIKey, "")

	// then
	s.Equal(http.StatusOK, code)
	s.JSONEq(`[
		{"id":1,"name":"Coffee A","price":10.0},
		{"id":2,"name":"Coffee B","price":12.0},
		{"id":3,"name":"Coffee C","price":15.0}
	]`, body)
}

func (s *WebshopE2ESuite) TestUnauthorized() {
	for _, key := range []string{"", "wrong_key", "distributor_1_key"} {
		// when
		code, body := s.do(http.MethodGet, "/products", key, "")

		// then
		s.Equal(http.StatusUnauthorized, code, "key %q", key)
		s.JSONEq(`{"message":"Unauthorized"}`, body)
	}
}

func (s *WebshopE2ESuite) TestAuthBeforeValidationAndNotFound() {
	// when
	createCode, _ := s.do(http.MethodPost, "/products", "", `{"bad":1}`)
	getCode, _ := s.do(http.MethodGet, "/products/999", "bad", "")

	// then
	s.Equal(http.StatusUnauthorized, createCode)
	s.Equal(http.StatusUnauthorized, getCode)
}

func (s *WebshopE2ESuite) TestGet() {
	// when
	code, body := s.do(http.MethodGet, "/products/2", APIKey, "")
	missingCode, missingBody := s.do(http.MethodGet, "/products/999", APIKey, "")

	// then
	s.Equal(http.StatusOK, code)
	s.JSONEq(`{"id":2,"name":"Coffee B","price":12.0}`, body)
	s.Equal(http.StatusNotFound, missingCode)
	s.JSONEq(`{"message":"Product not found"}`, missingBody)
}

func (s *WebshopE2ESuite) TestCreateThenGet() {
	// when
	code, body := s.do(http.MethodPost, "/products", APIKey, `{"id":4,"name":"Coffee D","price":20.0}`)

	// then
	s.Equal(http.StatusCreated, code)
	s.JSONEq(`{"id":4,"name":"Coffee D","price":20.0}`, body)

	getCode, getBody := s.do(http.MethodGet, "/products/4", APIKey, "")
	s.Equal(http.StatusOK, getCode)
	s.JSONEq(`{"id":4,"name":"Coffee D","price":20.0}`, getBody)

	_, list := s.do(http.MethodGet, "/products", APIKey, "")
	var products []map[string]any
	s.Require().NoError(json.Unmarshal([]byte(list), &products))
	s.Len(products, 4)
	s.EqualValues(4, products[3]["id"])
}

func (s *WebshopE2ESuite) TestCreate_ValidationFailures() {
	testCases := []struct {
		name string
		body string
		want string
	}{
		{"missing price", `{"id":5,"name":"X"}`, `{"price":["Missing data for required field."]}`},
		{"empty object", `{}`, `{"id":["Missing data for required field."],"name":["Missing data for required field."],"price":["Missing data for required field."]}`},
		{"price not a number", `{"id":5,"name":"X","price":"abc"}`, `{"price":["Not a valid number."]}`},
		{"id not integral", `{"id":1.5,"name":"X","price":1}`, `{"id":["Not a valid integer."]}`},
		{"not an object", `"text"`, `{"_schema":["Invalid input type."]}`},
	}
	for _, tc := range testCases {
		// when
		code, body := s.do(http.MethodPost, "/products", APIKey, tc.body)

		// then
		s.Equal(http.StatusBadRequest, code, tc.name)
		s.JSONEq(tc.want, body, tc.name)
	}
	_, list := s.do(http.MethodGet, "/products", APIKey, "")
	var products []map[string]any
	s.Require().NoError(json.Unmarshal([]byte(list), &products))
	s.Len(products, 3, "failed creates must not change the catalog")
}

func (s *WebshopE2ESuite) TestCreate_DuplicateIDKeepsFirstMatch() {
	// when
	code, _ := s.do(http.MethodPost, "/products", APIKey, `{"id":1,"name":"Dup","price":1}`)

	// then
	s.Equal(http.StatusCreated, code)
	_, body := s.do(http.MethodGet, "/products/1", APIKey, "")
	s.JSONEq(`{"id":1,"name":"Coffee A","price":10.0}`, body)
}

func (s *WebshopE2ESuite) TestUpdate() {
	// when
	code, body := s.do(http.MethodPut, "/products/1", APIKey, `{"name":"Updated Coffee","price":18.0}`)

	// then
	s.Equal(http.StatusOK, code)
	s.JSONEq(`{"id":1,"name":"Updated Coffee","price":18.0}`, body)
	_, getBody := s.do(http.MethodGet, "/products/1", APIKey, "")
	s.JSONEq(`{"id":1,"name":"Updated Coffee","price":18.0}`, getBody)
}

func (s *WebshopE2ESuite) TestUpdate_Failures() {
	testCases := []struct {
		name     string
		path     string
		body     string
		wantCode int
		want     string
	}{
		{"empty name", "/products/1", `{"name":"","price":1}`, http.StatusBadRequest, `{"message":"Invalid input, name is required"}`},
		{"unknown id", "/products/999", `{"name":"X","price":1}`, http.StatusNotFound, `{"message":"Product not found"}`},
		{"validation before not found", "/products/999", `{"name":"X"}`, http.StatusBadRequest, `{"price":["Missing data for required field."]}`},
		{"empty name before not found", "/products/999", `{"name":"","price":1}`, http.StatusBadRequest, `{"message":"Invalid input, name is required"}`},
	}
	for _, tc := range testCases {
		// when
		code, body := s.do(http.MethodPut, tc.path, APIKey, tc.body)

		// then
		s.Equal(tc.wantCode, code, tc.name)
		s.JSONEq(tc.want, body, tc.name)
	}
	_, getBody := s.do(http.MethodGet, "/products/1", APIKey, "")
	s.JSONEq(`{"id":1,"name":"Coffee A","price":10.0}`, getBody)
}

func (s *WebshopE2ESuite) TestDelete_RemovesAllMatches() {
	// given
	code, _ := s.do(http.MethodPost, "/products", APIKey, `{"id":2,"name":"Dup","price":1}`)
	s.Require().Equal(http.StatusCreated, code)

	// when
	delCode, delBody := s.do(http.MethodDelete, "/products/2", APIKey, "")

	// then
	s.Equal(http.StatusNoContent, delCode)
	s.Empty(delBody)
	getCode, _ := s.do(http.MethodGet, "/products/2", APIKey, "")
	s.Equal(http.StatusNotFound, getCode)
	againCode, againBody := s.do(http.MethodDelete, "/products/2", APIKey, "")
	s.Equal(http.StatusNotFound, againCode)
	s.JSONEq(`{"message":"Product not found"}`, againBody)
}

func (s *WebshopE2ESuite) TestNonNumericID_NotRouted() {
	// when
	code, _ := s.do(http.MethodGet, "/products/abc", APIKey, "")
	negCode, _ := s.do(http.MethodGet, "/products/-1", APIKey, "")

	// then
	s.Equal(http.StatusNotFound, code)
	s.Equal(http.StatusNotFound, negCode)
}

func (s *WebshopE2ESuite) TestConcurrentCreates() {
	// given
	const n = 20
	var wg sync.WaitGroup

	// when
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			code, _ := s.do(http.MethodPost, "/products", APIKey, `{"id":100,"name":"Burst","price":1}`)
			assert.Equal(s.T(), http.StatusCreated, code)
		}()
	}
	wg.Wait()

	// then
	_, list := s.do(http.MethodGet, "/products", APIKey, "")
	var products []map[string]any
	s.Require().NoError(json.Unmarshal([]byte(list), &products))
	s.Len(products, 3+n)
}

func (s *WebshopE2ESuite) TestDocs() {
	// when
	code, body := s.do(http.MethodGet, "/apispec_1.json", "", "")
	uiCode, uiBody := s.do(http.MethodGet, "/apidocs/", "", "")

	// then
	s.Equal(http.StatusOK, code)
	var doc map[string]any
	s.Require().NoError(json.Unmarshal([]byte(body), &doc))
	s.Equal("2.0", doc["swagger"])
	paths, ok := doc["paths"].(map[string]any)
	s.Require().True(ok)
	s.Contains(paths, "/products")
	s.Contains(paths, "/products/{product_id}")

	s.Equal(http.StatusOK, uiCode)
	s.Contains(uiBody, "apispec_1.json")
}

func (s *WebshopE2ESuite) TestHealthAndMetrics() {
	// given
	s.do(http.MethodGet, "/products", APIKey, "")

	// when
	healthCode, _ := s.do(http.MethodGet, "/healthz", "", "")
	metricsCode, metricsBody := s.do(http.MethodGet, "/metrics", "", "")

	// then
	s.Equal(http.StatusOK, healthCode)
	s.Equal(http.StatusOK, metricsCode)
	s.Contains(metricsBody, "http_requests_total")
}

func TestSetupDependencies_MetricsDisabled(t *testing.T) {
	// given
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// when
	deps := SetupDependencies(logger, config.Config{})
	rr := httptest.NewRecorder()
	SetupHttpHandler(deps).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	// then
	require.Nil(t, deps.Metrics)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
