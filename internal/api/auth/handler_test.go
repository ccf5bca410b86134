package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"gallery-backend/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "login-test-secret"

func loginRouter(t *testing.T) *gin.Engine {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&users.AdminUser{}))

	hashed, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&users.AdminUser{
		Email:    "admin@gallery.example",
		Password: string(hashed),
		Role:     "admin",
	}).Error)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/auth/login", NewHandler(db, testSecret).Login)
	return r
}

func postLogin(t *testing.T, router *gin.Engine, email, password string) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLoginIssuesValidToken(t *testing.T) {
	router := loginRouter(t)

	w := postLogin(t, router, "admin@gallery.example", "correct-horse")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	token, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "admin@gallery.example", claims["email"])
	assert.Equal(t, "admin", claims["role"])
	assert.NotNil(t, claims["exp"])
}

func TestLoginRejectsBadPassword(t *testing.T) {
	router := loginRouter(t)

	w := postLogin(t, router, "admin@gallery.example", "wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRejectsUnknownUser(t *testing.T) {
	router := loginRouter(t)

	w := postLogin(t, router, "ghost@gallery.example", "whatever")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRequiresWellFormedBody(t *testing.T) {
	router := loginRouter(t)

	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader([]byte(`{"email":"not-an-email"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
