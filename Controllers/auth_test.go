package Controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func performRequest(handler gin.HandlerFunc, method string, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(method, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	handler(c)
	return recorder
}

func TestRegisterRejectsMissingAccount(t *testing.T) {
	recorder := performRequest(Register, http.MethodPost,
		`{"username": "dana", "email": "dana@example.com", "password": "secret"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestRegisterRejectsZeroAccount(t *testing.T) {
	recorder := performRequest(Register, http.MethodPost,
		`{"username": "dana", "email": "dana@example.com", "password": "secret", "account_id": 0}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
