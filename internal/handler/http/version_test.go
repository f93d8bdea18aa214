package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetServerVersion(t *testing.T) {
	router := newTestHandler(t, nil, &fakeAppInfoService{version: "1.2.3"}).Init()

	request := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "text/plain", recorder.Header().Get("Content-Type"))
	assert.Equal(t, "1.2.3", recorder.Body.String())
}
