package newrelic

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// FromEchoContext extracts the transaction started by nrecho
func FromEchoContext(c echo.Context) *newrelic.Transaction {
	return nrecho.FromContext(c)
}

// FromContext extracts the transaction from a standard context
func FromContext(ctx context.Context) *newrelic.Transaction {
	return newrelic.FromContext(ctx)
}

// StartSegment creates a segment, or returns nil when there is no transaction
func StartSegment(txn *newrelic.Transaction, name string) *newrelic.Segment {
	if txn == nil {
		return nil
	}
	return txn.StartSegment(name)
}

// NoticeTransactionError reports an error to New Relic
func NoticeTransactionError(txn *newrelic.Transaction, err error) {
	if txn != nil && err != nil {
		txn.NoticeError(err)
	}
}

// Trace runs fn inside a segment of the transaction carried by ctx.
func Trace[T any](ctx context.Context, name string, fn func() (T, error)) (T, error) {
	segment := StartSegment(FromContext(ctx), name)
	if segment != nil {
		defer segment.End()
	}
	out, err := fn()
	if err != nil {
		NoticeTransactionError(FromContext(ctx), err)
	}
	return out, err
}

// TraceHandler names the transaction after the route handler
func TraceHandler(handlerName string, handler echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		txn := FromEchoContext(c)
		if txn != nil {
			txn.SetName(handlerName)
		}
		return handler(c)
	}
}

// TraceConsumer wraps an event handler in a background transaction so that
// segments started below it are recorded. A nil app runs the handler as is.
func TraceConsumer(app *newrelic.Application, name string, handler func(context.Context, []byte) error) func(context.Context, []byte) error {
	if app == nil {
		return handler
	}
	return func(ctx context.Context, data []byte) error {
		txn := app.StartTransaction(name)
		defer txn.End()

		err := handler(newrelic.NewContext(ctx, txn), data)
		NoticeTransactionError(txn, err)
		return err
	}
}
