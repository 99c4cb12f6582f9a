package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/percona-lab/l99/config"
	"github.com/percona-lab/l99/errors"
)

// Counters.
var (
	//nolint:gochecknoglobals
	operationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:      "operations_total",
		Help:      "Total number of list operations evaluated.",
		Namespace: config.MetricNamespace,
	}, []string{"op"})

	//nolint:gochecknoglobals
	lawChecksTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:      "law_checks_total",
		Help:      "Total number of law checks performed.",
		Namespace: config.MetricNamespace,
	}, []string{"law"})

	//nolint:gochecknoglobals
	lawViolationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:      "law_violations_total",
		Help:      "Total number of law checks that failed.",
		Namespace: config.MetricNamespace,
	}, []string{"law"})
)

// Init registers the metrics.
func Init(reg prometheus.Registerer) {
	reg.MustRegister(
		operationsTotal,
		lawChecksTotal,
		lawViolationsTotal,
	)
}

// AddOperation increments the evaluated operations counter for op.
func AddOperation(op string) {
	operationsTotal.WithLabelValues(op).Inc()
}

// AddLawCheck increments the law checks counter.
func AddLawCheck(law string) {
	lawChecksTotal.WithLabelValues(law).Inc()
}

// AddLawViolation increments the law violations counter.
func AddLawViolation(law string) {
	lawViolationsTotal.WithLabelValues(law).Inc()
}

// WriteText writes every metric gathered from g in the text exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return errors.Wrap(err, "gather")
	}

	for _, mf := range families {
		_, err = expfmt.MetricFamilyToText(w, mf)
		if err != nil {
			return errors.Wrapf(err, "write %s", mf.GetName())
		}
	}

	return nil
}
