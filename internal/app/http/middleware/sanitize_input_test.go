package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gallery-backend/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeInputStripsMarkup(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.SanitizeInputMiddleware())

	var received map[string]interface{}
	r.POST("/subscribe", func(c *gin.Context) {
		require.NoError(t, c.ShouldBindJSON(&received))
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	body, _ := json.Marshal(map[string]string{
		"email": "fan@example.com",
		"name":  `<script>alert(1)</script>Fan`,
	})
	req := httptest.NewRequest("POST", "/subscribe", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Fan", received["name"])
	assert.Equal(t, "fan@example.com", received["email"])
}

func TestSanitizeInputRejectsMalformedJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.SanitizeInputMiddleware())
	r.POST("/subscribe", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{}) })

	req := httptest.NewRequest("POST", "/subscribe", bytes.NewReader([]byte(`{"broken`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSanitizeInputSkipsGET(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.SanitizeInputMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
