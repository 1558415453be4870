package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/emilythestrangee/nc-news/backend/internal/apperror"
)

func newTestRouter(err error) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler(zap.NewNop()))
	r.GET("/boom", func(c *gin.Context) {
		_ = c.Error(err)
	})
	return r
}

func doBoom(t *testing.T, err error) (int, string) {
	t.Helper()
	r := newTestRouter(err)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	r.ServeHTTP(w, req)

	var body struct {
		Msg string `json:"msg"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body.Msg
}

func TestAppErrorsEmittedVerbatim(t *testing.T) {
	tests := []struct {
		err    error
		status int
		msg    string
	}{
		{apperror.NotFound("Article does not exist"), http.StatusNotFound, "Article does not exist"},
		{apperror.NotFound("Comment does not exist"), http.StatusNotFound, "Comment does not exist"},
		{apperror.InvalidObject(), http.StatusBadRequest, "Invalid Object"},
		{apperror.InvalidQuery("Invalid query"), http.StatusBadRequest, "Invalid query"},
		{apperror.BadRequest(), http.StatusBadRequest, "Bad Request"},
	}

	for _, tt := range tests {
		status, msg := doBoom(t, tt.err)
		assert.Equal(t, tt.status, status)
		assert.Equal(t, tt.msg, msg)
	}
}

func TestDatabaseCodesTranslated(t *testing.T) {
	tests := []struct {
		code   string
		status int
		msg    string
	}{
		{pgNotNullViolation, http.StatusBadRequest, "Invalid Object"},
		{pgForeignKeyViolation, http.StatusNotFound, "Article cannot be found"},
		{pgInvalidTextRep, http.StatusBadRequest, "Bad Request"},
		{pgUndefinedColumn, http.StatusBadRequest, "Invalid Object"},
	}

	for _, tt := range tests {
		status, msg := doBoom(t, &pgconn.PgError{Code: tt.code})
		assert.Equal(t, tt.status, status, tt.code)
		assert.Equal(t, tt.msg, msg, tt.code)
	}
}

func TestAppErrorWinsOverDatabaseCode(t *testing.T) {
	// An explicit application error takes precedence even when a database
	// error sits somewhere in the chain elsewhere in the request.
	status, msg := doBoom(t, fmt.Errorf("query failed: %w", apperror.NotFound("Article does not exist")))
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Article does not exist", msg)
}

func TestUnknownErrorsBecomeOpaque500(t *testing.T) {
	status, msg := doBoom(t, errors.New("pq: connection reset by peer"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Internal Server Error", msg)
}

func TestUnmappedDatabaseCodeBecomes500(t *testing.T) {
	// e.g. a unique violation has no client-facing mapping
	status, msg := doBoom(t, &pgconn.PgError{Code: "23505"})
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Internal Server Error", msg)
}

func TestNoErrorNoResponseRewrite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler(zap.NewNop()))
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok": true}`, w.Body.String())
}
