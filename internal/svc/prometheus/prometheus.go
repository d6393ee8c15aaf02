package prometheus

import (
	"time"

	"github.com/ostia/icon-processor/go/internal/instance"
	"github.com/prometheus/client_golang/prometheus"
)

type Options struct {
	Labels prometheus.Labels
}

func copyLabels(p prometheus.Labels) prometheus.Labels {
	x := prometheus.Labels{}
	for k, v := range p {
		x[k] = v
	}

	return x
}

func New(o Options) instance.Prometheus {
	totalSuccessfulTasks := copyLabels(o.Labels)
	totalFailedTasks := copyLabels(o.Labels)
	currentTasks := copyLabels(o.Labels)
	taskDurationSeconds := copyLabels(o.Labels)
	totalBytesRead := copyLabels(o.Labels)
	totalBytesWritten := copyLabels(o.Labels)
	totalTargetsExported := copyLabels(o.Labels)
	readSourceDuration := copyLabels(o.Labels)
	composeVariantsDuration := copyLabels(o.Labels)
	exportOutputsDuration := copyLabels(o.Labels)

	totalSuccessfulTasks["state"] = "successful"
	totalFailedTasks["state"] = "failed"

	totalBytesRead["state"] = "read"
	totalBytesWritten["state"] = "written"

	return &Instance{
		totalSuccessfulTasks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "icon_processor",
			Name:        "total_tasks",
			Help:        "The total number of successful tasks",
			ConstLabels: totalSuccessfulTasks,
		}),
		totalFailedTasks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "icon_processor",
			Name:        "total_tasks",
			Help:        "The total number of failed tasks",
			ConstLabels: totalFailedTasks,
		}),
		currentTasks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "icon_processor",
			Name:        "current_tasks",
			Help:        "The current number of tasks",
			ConstLabels: currentTasks,
		}),
		taskDurationSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   "icon_processor",
			Name:        "task_duration_seconds",
			Help:        "The seconds spent running tasks",
			ConstLabels: taskDurationSeconds,
		}),
		readSourceDurationSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   "icon_processor",
			Name:        "read_source_duration_seconds",
			Help:        "The seconds spent reading source images",
			ConstLabels: readSourceDuration,
		}),
		composeVariantsDurationSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   "icon_processor",
			Name:        "compose_variants_duration_seconds",
			Help:        "The seconds spent compositing icon variants",
			ConstLabels: composeVariantsDuration,
		}),
		exportOutputsDurationSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   "icon_processor",
			Name:        "export_outputs_duration_seconds",
			Help:        "The seconds spent exporting output targets",
			ConstLabels: exportOutputsDuration,
		}),
		totalBytesRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "icon_processor",
			Name:        "total_bytes",
			Help:        "The total number of bytes read",
			ConstLabels: totalBytesRead,
		}),
		totalBytesWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "icon_processor",
			Name:        "total_bytes",
			Help:        "The total number of bytes written",
			ConstLabels: totalBytesWritten,
		}),
		totalTargetsExported: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "icon_processor",
			Name:        "total_targets",
			Help:        "The total number of export targets written",
			ConstLabels: totalTargetsExported,
		}),
	}
}

type Instance struct {
	totalSuccessfulTasks prometheus.Counter
	totalFailedTasks     prometheus.Counter
	currentTasks         prometheus.Gauge
	taskDurationSeconds  prometheus.Histogram

	readSourceDurationSeconds      prometheus.Histogram
	composeVariantsDurationSeconds prometheus.Histogram
	exportOutputsDurationSeconds   prometheus.Histogram

	totalBytesRead       prometheus.Counter
	totalBytesWritten    prometheus.Counter
	totalTargetsExported prometheus.Counter
}

func (m *Instance) Register(r prometheus.Registerer) {
	r.MustRegister(
		m.currentTasks,
		m.taskDurationSeconds,
		m.totalFailedTasks,
		m.totalSuccessfulTasks,

		m.readSourceDurationSeconds,
		m.composeVariantsDurationSeconds,
		m.exportOutputsDurationSeconds,

		m.totalBytesRead,
		m.totalBytesWritten,
		m.totalTargetsExported,
	)
}

func (m *Instance) StartTask() func(success bool) {
	start := time.Now()
	m.currentTasks.Inc()

	return func(success bool) {
		if success {
			m.totalSuccessfulTasks.Inc()
		} else {
			m.totalFailedTasks.Inc()
		}
		m.currentTasks.Dec()
		m.taskDurationSeconds.Observe(float64(time.Since(start)/time.Millisecond) / 1000)
	}
}

func (m *Instance) TotalBytesRead(bytes int) {
	m.totalBytesRead.Add(float64(bytes))
}

func (m *Instance) TotalBytesWritten(bytes int) {
	m.totalBytesWritten.Add(float64(bytes))
}

func (m *Instance) TotalTargetsExported(targets int) {
	m.totalTargetsExported.Add(float64(targets))
}

func (m *Instance) ReadSource() func() {
	start := time.Now()

	return func() {
		m.readSourceDurationSeconds.Observe(float64(time.Since(start)/time.Millisecond) / 1000)
	}
}

func (m *Instance) ComposeVariants() func() {
	start := time.Now()

	return func() {
		m.composeVariantsDurationSeconds.Observe(float64(time.Since(start)/time.Millisecond) / 1000)
	}
}

func (m *Instance) ExportOutputs() func() {
	start := time.Now()

	return func() {
		m.exportOutputsDurationSeconds.Observe(float64(time.Since(start)/time.Millisecond) / 1000)
	}
}
