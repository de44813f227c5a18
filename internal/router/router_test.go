package router_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"

	"github.com/senyabanana/capital-schemes/internal/ate"
	"github.com/senyabanana/capital-schemes/internal/handlers"
	"github.com/senyabanana/capital-schemes/internal/metrics"
	"github.com/senyabanana/capital-schemes/internal/repository"
	"github.com/senyabanana/capital-schemes/internal/router"
	"github.com/senyabanana/capital-schemes/internal/services"
)

type RouterSuite struct {
	suite.Suite
	handler http.Handler
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	log := zerolog.Nop()
	loc, err := ate.LoadLocation("")
	s.Require().NoError(err)
	translator := ate.NewTranslator(loc)
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)
	schemes := repository.NewMemorySchemeRepository()
	authorities := repository.NewMemoryAuthorityRepository()
	windows := services.NewDefaultReportingWindowService()
	now := func() time.Time { return time.Date(2020, 4, 24, 12, 0, 0, 0, time.UTC) }

	schemeService := services.NewSchemeService(schemes, authorities, windows, translator, m, log)
	schemeService.Now = now
	windowHandler := handlers.NewReportingWindowHandler(windows, translator, log)
	windowHandler.Now = now

	s.handler = router.InitRoutes(router.Handlers{
		Schemes:          handlers.NewSchemeHandler(schemeService, log, time.Second),
		Authorities:      handlers.NewAuthorityHandler(services.NewAuthorityService(authorities, schemes, translator, log), log, time.Second),
		ReportingWindows: windowHandler,
	}, m, registry, log)
}

func (s *RouterSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	r := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, r)
	return w
}

func (s *RouterSuite) importFixtures() {
	w := s.do(http.MethodPost, "/api/authorities", []map[string]any{
		{"id": 1, "abbreviation": "LIV", "full_name": "Liverpool City Region Combined Authority"},
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	w = s.do(http.MethodPost, "/api/schemes", []map[string]any{{
		"id": 1,
		"overview_revisions": []map[string]any{{
			"effective":              map[string]any{"date_from": "2020-01-01T00:00:00"},
			"name":                   "Wirral Package",
			"authority_abbreviation": "LIV",
			"type":                   "construction",
			"funding_programme":      "ATF4",
		}},
		"bid_status_revisions": []map[string]any{{
			"effective": map[string]any{"date_from": "2020-01-01T00:00:00"},
			"status":    "funded",
		}},
		"financial_revisions": []map[string]any{{
			"effective": map[string]any{"date_from": "2020-01-01T00:00:00"},
			"type":      "funding allocation",
			"amount":    100000,
			"source":    "ATF4 bid",
		}},
	}})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
}

func (s *RouterSuite) TestPing() {
	w := s.do(http.MethodGet, "/api/ping", nil)

	s.Equal(http.StatusOK, w.Code)
	s.Equal("ok", w.Body.String())
	s.NotEmpty(w.Header().Get("X-Request-Id"))
}

func (s *RouterSuite) TestRequestIDIsPropagated() {
	r := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	r.Header.Set("X-Request-Id", "4b6f1ad2-5b1f-4c1b-9a53-5a4c4c6e0d11")
	w := httptest.NewRecorder()

	s.handler.ServeHTTP(w, r)

	s.Equal("4b6f1ad2-5b1f-4c1b-9a53-5a4c4c6e0d11", w.Header().Get("X-Request-Id"))
}

func (s *RouterSuite) TestReportingWindow() {
	w := s.do(http.MethodGet, "/api/reporting-window?date=2020-04-25", nil)

	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var window ate.ReportingWindowRepr
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &window))
	s.Equal("2020-04-01T00:00:00", window.DateFrom)
	s.Equal("2020-05-01T00:00:00", window.DateTo)
	s.Equal(7, window.DaysLeft)

	w = s.do(http.MethodGet, "/api/reporting-window?date=2020-02-24", nil)
	s.Equal(http.StatusNotFound, w.Code)

	w = s.do(http.MethodGet, "/api/reporting-window?date=tomorrow", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RouterSuite) TestImportAndExportScheme() {
	s.importFixtures()

	w := s.do(http.MethodGet, "/api/schemes/1", nil)

	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var scheme ate.SchemeRepr
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &scheme))
	s.Equal("ATE00001", scheme.Reference)
	s.Require().Len(scheme.OverviewRevisions, 1)
	s.Equal("LIV", scheme.OverviewRevisions[0].AuthorityAbbreviation)
}

func (s *RouterSuite) TestImportRejectsUnknownFields() {
	w := s.do(http.MethodPost, "/api/authorities", []map[string]any{{"id": 1, "abbreviation": "LIV", "full_name": "Liverpool", "region": "NW"}})

	s.Equal(http.StatusBadRequest, w.Code)
	var body map[string]string
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.NotEmpty(body["reason"])
}

func (s *RouterSuite) TestAuthoritySchemes() {
	s.importFixtures()

	w := s.do(http.MethodGet, "/api/authorities/1/schemes", nil)

	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var result ate.AuthoritySchemesRepr
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &result))
	s.Equal("LIV", result.Authority.Abbreviation)
	s.Require().NotNil(result.ReportingWindow)
	s.Require().Len(result.Schemes, 1)
	s.True(result.Schemes[0].IsUpdateable)
}

func (s *RouterSuite) TestAuthorityUpdates() {
	s.importFixtures()

	w := s.do(http.MethodPut, "/api/schemes/1/spend-to-date", map[string]any{"amount": 25000})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var summary ate.SchemeSummaryRepr
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &summary))
	s.Require().NotNil(summary.SpendToDate)
	s.Equal(25000, *summary.SpendToDate)
	s.Equal(75000, summary.AllocationStillToSpend)

	w = s.do(http.MethodPut, "/api/schemes/1/milestones", map[string]any{"milestones": []map[string]any{
		{"milestone": "construction started", "observation_type": "planned", "status_date": "2020-09-01"},
	}})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodPost, "/api/schemes/1/reviews", nil)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	summary = ate.SchemeSummaryRepr{}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &summary))
	s.NotNil(summary.LastReviewed)
	s.Require().NotNil(summary.NeedsReview)
	s.False(*summary.NeedsReview)
}

func (s *RouterSuite) TestSchemeNotFound() {
	w := s.do(http.MethodGet, "/api/schemes/42/summary", nil)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *RouterSuite) TestInvalidSchemeID() {
	w := s.do(http.MethodGet, "/api/schemes/ATE00001", nil)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RouterSuite) TestClear() {
	s.importFixtures()

	s.Equal(http.StatusNoContent, s.do(http.MethodDelete, "/api/schemes", nil).Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/api/schemes/1", nil).Code)
	s.Equal(http.StatusNoContent, s.do(http.MethodDelete, "/api/authorities", nil).Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/api/authorities/1", nil).Code)
}

func (s *RouterSuite) TestMetrics() {
	s.do(http.MethodGet, "/api/ping", nil)

	w := s.do(http.MethodGet, "/metrics", nil)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `capital_schemes_http_requests_total{method="GET",route="GET /api/ping",status="200"} 1`)
}
