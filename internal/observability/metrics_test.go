package observability

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveQuery(t *testing.T) {
	before := testutil.ToFloat64(QueriesTotal.WithLabelValues("ranking"))
	fallbacksBefore := testutil.ToFloat64(FallbackRepliesTotal)

	ObserveQuery("ranking", 2*time.Millisecond)
	ObserveQuery("fallback", time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(QueriesTotal.WithLabelValues("ranking")))
	assert.Equal(t, fallbacksBefore+1, testutil.ToFloat64(FallbackRepliesTotal))
}

func TestSetRecordsLoaded(t *testing.T) {
	SetRecordsLoaded(576)
	assert.Equal(t, 576.0, testutil.ToFloat64(RecordsLoaded))
}

func TestHandlerExposesRegistry(t *testing.T) {
	SetRecordsLoaded(42)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "assistant_records_loaded 42")
}
