package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(ChartsTotal.WithLabelValues("lilith", "ok"))
	ChartsTotal.WithLabelValues("lilith", "ok").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(ChartsTotal.WithLabelValues("lilith", "ok")))
}

func TestHandler(t *testing.T) {
	DSTAppliedTotal.Inc()
	TimezoneResolutions.WithLabelValues("finder").Inc()

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "natal_dst_applied_total")
	assert.Contains(t, w.Body.String(), `natal_timezone_resolutions_total{strategy="finder"}`)
}
