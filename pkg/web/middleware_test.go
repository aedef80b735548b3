package web

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// MockVerifier is a mock implementation of the auth.Verifier interface for testing purposes.
type MockVerifier struct {
	mock.Mock
}

func (m *MockVerifier) Verify(key string) bool {
	args := m.Called(key)
	return args.Bool(0)
}

func TestAPIKeyAuth(t *testing.T) {
	testCases := []struct {
		name               string
		apiKey             string
		setupMock          func(m *MockVerifier)
		expectedStatusCode int
		expectedBody       string
		shouldCallNext     bool
	}{
		{
			name:   "Success - accepted key",
			apiKey: "good-key",
			setupMock: func(m *MockVerifier) {
				m.On("Verify", "good-key").Return(true)
			},
			expectedStatusCode: http.StatusOK,
			expectedBody:       "next",
			shouldCallNext:     true,
		},
		{
			name:   "Failure - no header",
			apiKey: "",
			setupMock: func(m *MockVerifier) {
				m.On("Verify", "").Return(false)
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedBody:       `{"message":"Unauthorized"}`,
			shouldCallNext:     false,
		},
		{
			name:   "Failure - rejected key",
			apiKey: "bad-key",
			setupMock: func(m *MockVerifier) {
				m.On("Verify", "bad-key").Return(false)
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedBody:       `{"message":"Unauthorized"}`,
			shouldCallNext:     false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			verifier := new(MockVerifier)
			tc.setupMock(verifier)
			nextHandlerCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				nextHandlerCalled = true
				_, _ = w.Write([]byte("next"))
			})
			handler := APIKeyAuth(verifier, discardLogger)(next)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.apiKey != "" {
				req.Header.Set("x-api-key", tc.apiKey)
			}
			rr := httptest.NewRecorder()

			// when
			handler.ServeHTTP(rr, req)

			// then
			assert.Equal(t, tc.expectedStatusCode, rr.Code, "HTTP status code is wrong")
			assert.Equal(t, tc.shouldCallNext, nextHandlerCalled, "Next handler call status is wrong")
			assert.Equal(t, tc.expectedBody, rr.Body.String())
			verifier.AssertExpectations(t)
		})
	}
}

func TestRequestIDInjector(t *testing.T) {
	t.Run("generates an ID when none is supplied", func(t *testing.T) {
		var seen string
		handler := RequestIDInjector(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			seen = middleware.GetReqID(r.Context())
		}))
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rr.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("reuses the incoming ID", func(t *testing.T) {
		var seen string
		handler := RequestIDInjector(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			seen = middleware.GetReqID(r.Context())
		}))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "abc-123")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", rr.Header().Get(middleware.RequestIDHeader))
	})
}

func TestRecoverer(t *testing.T) {
	// given
	handler := Recoverer(discardLogger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rr := httptest.NewRecorder()

	// when
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	// then
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"message":"Internal Server Error"}`, rr.Body.String())
}
