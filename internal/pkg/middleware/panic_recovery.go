package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/deveshjhaq/gaddi24x7/internal/pkg/logger"
	"github.com/deveshjhaq/gaddi24x7/internal/utils"
)

// PanicRecoveryMiddleware converts panics into 500 responses and logs the
// stack. Registered first so it wraps everything else.
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					zapLogger.Error("panic recovered",
						logger.Any("panic", r),
						logger.String("path", c.Request().URL.Path),
						logger.String("method", c.Request().Method),
						logger.String("stack", string(debug.Stack())),
					)
					err = utils.ErrorResponseHandler(c, http.StatusInternalServerError,
						fmt.Sprintf("Internal server error: %v", r))
				}
			}()
			return next(c)
		}
	}
}
