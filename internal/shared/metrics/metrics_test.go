package metrics

import (
	"strings"
	"testing"
)

func TestRenderIncludesAllSeries(t *testing.T) {
	IncComplaintRecommended()
	IncComplaintAnalyzed()
	IncComplaintRejected()
	ObserveRecommendationDurationMs(0.3)

	out := Render()
	for _, name := range []string{
		"complaint_recommended_total",
		"complaint_analyzed_total",
		"complaint_rejected_total",
		"recommendation_duration_ms_bucket",
		"recommendation_duration_ms_sum",
		"recommendation_duration_ms_count",
	} {
		if !strings.Contains(out, name) {
			t.Fatalf("render output missing %s:\n%s", name, out)
		}
	}
}

func TestHistogramBucketsAreCumulative(t *testing.T) {
	h := newHistogram([]float64{1, 5, 10})
	h.Observe(0.5)
	h.Observe(3)
	h.Observe(7)
	h.Observe(100)

	snap := h.Snapshot()
	if snap.count != 4 {
		t.Fatalf("expected count 4, got %d", snap.count)
	}
	var cumulative uint64
	want := []uint64{1, 2, 3}
	for i := range snap.buckets {
		cumulative += snap.counts[i]
		if cumulative != want[i] {
			t.Fatalf("bucket %d: expected cumulative %d, got %d", i, want[i], cumulative)
		}
	}
	if snap.sum != 110.5 {
		t.Fatalf("expected sum 110.5, got %v", snap.sum)
	}
}
