package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/ironnest/ironnest-backend/errors"
	"github.com/ironnest/ironnest-backend/logger"
	"github.com/ironnest/ironnest-backend/types"
)

// ErrorHandler converts errors attached to the gin context into the JSON
// error envelope. Handlers report failures with c.Error and return; this
// middleware decides the status code and response body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		log := logger.GetLogger()

		if appError, ok := err.(*errors.AppError); ok {
			statusCode := appError.GetHTTPStatus()
			log.Warnw("Request failed",
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"status", statusCode,
				"errorType", string(appError.Type),
				"error", appError.Message,
				"detail", appError.Detail)

			resp := types.ErrorResponse{Error: appError.Message}
			switch {
			case len(appError.Fields) > 0:
				resp.Details = appError.Fields
			case appError.Detail != "" && (gin.IsDebugging() ||
				appError.Type == errors.ValidationError ||
				appError.Type == errors.NotFoundError):
				resp.Details = appError.Detail
			}
			c.JSON(statusCode, resp)
			return
		}

		log.Errorw("Unexpected server error",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"error", err)
		c.JSON(500, types.ErrorResponse{Error: "Internal server error"})
	}
}
