package monitoring

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/pantrysage/v2/internal/domain/grocery"
)

// Collectors register against the default registry, so one instance is
// shared across the package's tests.
var metrics = NewMetrics()

func TestInstrumentedClassifierCountsEveryLookup(t *testing.T) {
	classifier := metrics.InstrumentClassifier(grocery.NewClassifier(nil, nil))

	before := testutil.ToFloat64(metrics.itemsClassified)
	assert.Equal(t, grocery.CategoryProduce, classifier.Classify("carrots"))
	assert.Equal(t, grocery.CategoryDairy, classifier.Classify("milk"))
	classifier.Classify("mystery powder")

	assert.Equal(t, before+3, testutil.ToFloat64(metrics.itemsClassified))
}

func TestRecordWarningBySeverity(t *testing.T) {
	before := testutil.ToFloat64(metrics.warningsRaised.WithLabelValues("allergy"))
	metrics.RecordWarning("allergy")
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.warningsRaised.WithLabelValues("allergy")))
}
