package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/ridepay/internal/pkg/logger"
	"github.com/piresc/ridepay/internal/utils"
)

// PanicRecoveryWithZapMiddleware recovers from handler panics, logs them with
// a stack trace and answers 500.
func PanicRecoveryWithZapMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				panicMsg := fmt.Sprintf("Panic recovered: %v", r)
				txn := newrelic.FromContext(c.Request().Context())
				if txn != nil {
					txn.NoticeError(newrelic.Error{Message: panicMsg, Class: "PanicError"})
				}

				zapLogger.WithNewRelicContext(txn).Error(panicMsg,
					logger.String("panic_type", fmt.Sprintf("%T", r)),
					logger.String("stack_trace", string(debug.Stack())),
					logger.String("method", c.Request().Method),
					logger.String("path", c.Request().URL.Path),
					logger.String("actor_id", ActorID(c)),
					logger.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
				)

				if !c.Response().Committed {
					err = utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Internal server error")
				}
			}()

			return next(c)
		}
	}
}
