package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/emilythestrangee/nc-news/backend/internal/apperror"
)

// Postgres SQLSTATE codes the translator maps to client errors.
const (
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
	pgInvalidTextRep      = "22P02"
	pgUndefinedColumn     = "42703"
)

// ErrorHandler is the terminal stage for every error recorded on the gin
// context. Explicit application errors win over raw database codes, and
// unmapped errors become an opaque 500 that is logged with full detail.
func ErrorHandler(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status, msg := translate(err)
		if status == http.StatusInternalServerError {
			log.Error("unhandled error",
				zap.Error(err),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
			)
		}
		c.JSON(status, gin.H{"msg": msg})
	}
}

func translate(err error) (int, string) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.Status, appErr.Msg
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgNotNullViolation:
			return http.StatusBadRequest, "Invalid Object"
		case pgForeignKeyViolation:
			return http.StatusNotFound, "Article cannot be found"
		case pgInvalidTextRep:
			return http.StatusBadRequest, "Bad Request"
		case pgUndefinedColumn:
			return http.StatusBadRequest, "Invalid Object"
		}
	}

	return http.StatusInternalServerError, "Internal Server Error"
}
