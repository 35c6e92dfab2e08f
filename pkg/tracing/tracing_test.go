package tracing

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

var (
	recorderOnce sync.Once
	recorder     *tracetest.SpanRecorder
)

// spanRecorder 全局 provider 只能设置一次，测试共用同一个
func spanRecorder() *tracetest.SpanRecorder {
	recorderOnce.Do(func() {
		recorder = tracetest.NewSpanRecorder()
		otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))
	})
	return recorder
}

func findSpan(t *testing.T, name string) sdktrace.ReadOnlySpan {
	t.Helper()
	for _, s := range spanRecorder().Ended() {
		if s.Name() == name {
			return s
		}
	}
	require.Failf(t, "span not found", "%s", name)
	return nil
}

func TestStartAndEndSpan(t *testing.T) {
	spanRecorder()

	_, span := StartSpan(context.Background(), "TrainingService.Test", attribute.String("student_id", "3024000001"))
	EndSpan(span, nil)

	_, failed := StartSpan(context.Background(), "TrainingService.Failed")
	EndSpan(failed, errors.New("boom"))

	ok := findSpan(t, "TrainingService.Test")
	assert.Equal(t, codes.Unset, ok.Status().Code)
	assert.Contains(t, ok.Attributes(), attribute.String("student_id", "3024000001"))

	bad := findSpan(t, "TrainingService.Failed")
	assert.Equal(t, codes.Error, bad.Status().Code)
	assert.Equal(t, "boom", bad.Status().Description)
	require.NotEmpty(t, bad.Events())
	assert.Equal(t, "exception", bad.Events()[0].Name)
}

func TestGinMiddleware(t *testing.T) {
	spanRecorder()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(GinMiddleware())
	r.GET("/api/members/:sid", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/api/broken", func(c *gin.Context) {
		c.Status(http.StatusInternalServerError)
	})

	for _, path := range []string{"/api/members/1", "/api/broken"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, codes.Unset, findSpan(t, "GET /api/members/:sid").Status().Code)
	assert.Equal(t, codes.Error, findSpan(t, "GET /api/broken").Status().Code)
}
