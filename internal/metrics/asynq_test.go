package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsynqMetricsMiddlewareOutcomes(t *testing.T) {
	results := []error{nil, errors.New("db down"), fmt.Errorf("bad payload: %w", asynq.SkipRetry)}
	i := 0
	handler := AsynqMetricsMiddleware()(asynq.HandlerFunc(func(context.Context, *asynq.Task) error {
		err := results[i]
		i++
		return err
	}))

	task := asynq.NewTask("test:outcomes", nil)
	for _, want := range results {
		assert.Equal(t, want, handler.ProcessTask(context.Background(), task))
	}

	srv := NewServer(":0")
	w := httptest.NewRecorder()
	srv.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	for _, outcome := range []string{outcomeSuccess, outcomeRetry, outcomeSkipped} {
		assert.Contains(t, body, fmt.Sprintf(`designhub_worker_tasks_processed_total{outcome="%s",task_type="test:outcomes"} 1`, outcome))
	}
	assert.Contains(t, body, `designhub_worker_tasks_in_progress{task_type="test:outcomes"} 0`)
	assert.Contains(t, body, `designhub_worker_task_duration_seconds_count{task_type="test:outcomes"} 3`)
}
