package internal

import "github.com/prometheus/client_golang/prometheus"

func (m metrics) LoadedCounter() prometheus.Counter {
	return m.backupRecordsLoadedTotal
}

func (m metrics) SkippedCounter(reason string) prometheus.Counter {
	return m.backupRecordsSkippedTotal.WithLabelValues(reason)
}

func (m metrics) ResolutionCounter(targetKind, result string) prometheus.Counter {
	return m.resolutionsTotal.WithLabelValues(targetKind, result)
}
