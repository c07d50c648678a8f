package internal

import (
	"fmt"
	"time"

	"github.com/cactus/go-statsd-client/v5/statsd"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	dto "github.com/prometheus/client_model/go"
	"github.com/spf13/viper"
	"github.com/wal-g/tracelog"
)

type metrics struct {
	backupRecordsLoadedTotal  prometheus.Counter
	backupRecordsSkippedTotal *prometheus.CounterVec
	resolutionsTotal          *prometheus.CounterVec
}

var (
	MetricsPrefix = "pitr_"

	Metrics = metrics{
		backupRecordsLoadedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: MetricsPrefix + "backup_records_loaded_total",
				Help: "Number of backup metadata records accepted into a collection.",
			},
		),

		backupRecordsSkippedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricsPrefix + "backup_records_skipped_total",
				Help: "Number of backup metadata records excluded while loading.",
			},
			[]string{"reason"},
		),

		resolutionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricsPrefix + "resolutions_total",
				Help: "Number of recovery target resolutions by target kind and result.",
			},
			[]string{"target_kind", "result"},
		),
	}
)

func init() {
	// unregister prometheus collectors
	// https://github.com/prometheus/client_golang/blob/8dfa334295e85f9b1e48ce862fae5f337faa6d2f/prometheus/registry.go#L62-L63
	prometheus.Unregister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	prometheus.Unregister(collectors.NewGoCollector())

	prometheus.MustRegister(Metrics.backupRecordsLoadedTotal)
	prometheus.MustRegister(Metrics.backupRecordsSkippedTotal)
	prometheus.MustRegister(Metrics.resolutionsTotal)
}

func (m metrics) BackupRecordLoaded() {
	m.backupRecordsLoadedTotal.Inc()
}

func (m metrics) BackupRecordSkipped(reason string) {
	m.backupRecordsSkippedTotal.WithLabelValues(reason).Inc()
}

func (m metrics) Resolution(targetKind, result string) {
	m.resolutionsTotal.WithLabelValues(targetKind, result).Inc()
}

// ExportMetrics pushes the collected metrics to statsd and writes the textfile when configured.
// Failures are only logged.
func ExportMetrics() {
	if address := viper.GetString(StatsdAddressSetting); address != "" {
		if err := pushMetrics(address, prometheus.DefaultGatherer); err != nil {
			tracelog.WarningLogger.Printf("Pushing metrics failed: %v", err)
		}
	}
	if filename := viper.GetString(MetricsTextfileSetting); filename != "" {
		if err := prometheus.WriteToTextfile(filename, prometheus.DefaultGatherer); err != nil {
			tracelog.WarningLogger.Printf("Writing metrics to %s failed: %v", filename, err)
		}
	}
}

func pushMetrics(address string, gatherer prometheus.Gatherer) error {
	config := &statsd.ClientConfig{
		Address:       address,
		UseBuffered:   true,
		FlushInterval: 10 * time.Second,
		TagFormat:     statsd.InfixComma,
	}

	client, err := statsd.NewClientWithConfig(config)
	if err != nil {
		return errors.Wrapf(err, "failed to create statsd client for %s", address)
	}
	defer client.Close()

	tracelog.DebugLogger.Printf("Sending metrics to statsd")

	mfs, err := gatherer.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if err := writeMetricFamilyToStatsd(client, mf); err != nil {
			return err
		}
	}

	return nil
}

func writeMetricFamilyToStatsd(client statsd.Statter, in *dto.MetricFamily) error {
	name := in.GetName()
	metricType := in.GetType()

	for _, metric := range in.Metric {
		var tags []statsd.Tag
		for _, lp := range metric.Label {
			tags = append(tags, statsd.Tag{lp.GetName(), lp.GetValue()})
		}

		switch metricType {
		case dto.MetricType_COUNTER:
			if metric.Counter == nil {
				return fmt.Errorf("expected counter in metric %s %s", name, metric)
			}
			err := client.Inc(name, int64(metric.Counter.GetValue()), 1.0, tags...)
			if err != nil {
				return err
			}
		case dto.MetricType_GAUGE:
			if metric.Gauge == nil {
				return fmt.Errorf("expected gauge in metric %s %s", name, metric)
			}
			err := client.Gauge(name, int64(metric.Gauge.GetValue()), 1.0, tags...)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("unexpected type %s in metric %s", metricType, name)
		}
	}

	return nil
}
