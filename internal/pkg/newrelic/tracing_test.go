package newrelic

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ridepay/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestInitNewRelic_Disabled(t *testing.T) {
	assert.Nil(t, InitNewRelic(&models.Config{}))
	assert.Nil(t, InitNewRelic(&models.Config{NewRelic: models.NewRelicConfig{Enabled: true}}))
}

func TestTrace_WithoutTransaction(t *testing.T) {
	out, err := Trace(context.Background(), "fare.Calculate", func() (int, error) {
		return 42, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 42, out)

	_, err = Trace(context.Background(), "fare.Calculate", func() (int, error) {
		return 0, errors.New("boom")
	})
	assert.EqualError(t, err, "boom")
}

func TestTraceConsumer_NilApp(t *testing.T) {
	called := false
	h := TraceConsumer(nil, "trip.completed", func(ctx context.Context, data []byte) error {
		called = true
		assert.Equal(t, []byte("payload"), data)
		return nil
	})
	assert.NoError(t, h(context.Background(), []byte("payload")))
	assert.True(t, called)
}

func TestTraceHandler_WithoutTransaction(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	h := TraceHandler("rides.Get", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	assert.NoError(t, h(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, StartSegment(nil, "x"))
}
