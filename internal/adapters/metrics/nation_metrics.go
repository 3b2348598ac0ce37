package metrics

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrescamacho/nationsim-go/internal/domain/nation"
)

// NationMetricsCollector turns each day's reports into nation gauges and counters.
// It is registered with the scheduler as a day observer.
type NationMetricsCollector struct {
	day *prometheus.GaugeVec

	// Stock gauges
	fuel             *prometheus.GaugeVec
	manpower         *prometheus.GaugeVec
	civFactories     *prometheus.GaugeVec
	milFactories     *prometheus.GaugeVec
	usedMilFactories *prometheus.GaugeVec
	queueDepth       *prometheus.GaugeVec
	equipment        *prometheus.GaugeVec

	// Flow counters
	equipmentProduced     *prometheus.CounterVec
	buildPoints           *prometheus.CounterVec
	constructionCompleted *prometheus.CounterVec
	focusCompleted        *prometheus.CounterVec

	mu sync.Mutex
}

func NewNationMetricsCollector() *NationMetricsCollector {
	gauge := func(name, help string, labels ...string) *prometheus.GaugeVec {
		return prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      name,
			Help:      help,
		}, labels)
	}
	counter := func(name, help string, labels ...string) *prometheus.CounterVec {
		return prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      name,
			Help:      help,
		}, labels)
	}

	return &NationMetricsCollector{
		day:              gauge("day", "Current simulated day", "scenario"),
		fuel:             gauge("fuel", "Fuel stockpile by nation", "nation"),
		manpower:         gauge("manpower", "Manpower by nation", "nation"),
		civFactories:     gauge("civilian_factories", "Civilian factories by nation", "nation"),
		milFactories:     gauge("military_factories", "Military factories by nation", "nation"),
		usedMilFactories: gauge("military_factories_assigned", "Military factories assigned to production lines", "nation"),
		queueDepth:       gauge("construction_queue_depth", "Pending construction tasks by nation", "nation"),
		equipment:        gauge("equipment_stockpile", "Equipment stockpile by nation and type", "nation", "equipment"),

		equipmentProduced:     counter("equipment_produced_total", "Equipment produced by nation and type", "nation", "equipment"),
		buildPoints:           counter("build_points_total", "Build points applied to construction by nation", "nation"),
		constructionCompleted: counter("construction_completed_total", "Completed construction by nation and building", "nation", "building"),
		focusCompleted:        counter("focus_completed_total", "Completed national focuses by nation and effect", "nation", "effect"),
	}
}

// Register registers all nation metrics with the registry
func (c *NationMetricsCollector) Register(registry prometheus.Registerer) error {
	return register(registry,
		c.day,
		c.fuel,
		c.manpower,
		c.civFactories,
		c.milFactories,
		c.usedMilFactories,
		c.queueDepth,
		c.equipment,
		c.equipmentProduced,
		c.buildPoints,
		c.constructionCompleted,
		c.focusCompleted,
	)
}

// Observer returns a day observer that labels the day gauge with scenario
func (c *NationMetricsCollector) Observer(scenario string) *NationDayObserver {
	return &NationDayObserver{collector: c, scenario: scenario}
}

// Record applies one day's reports
func (c *NationMetricsCollector) Record(scenario string, day int, reports []nation.DayReport) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.day.WithLabelValues(scenario).Set(float64(day))
	for _, r := range reports {
		c.fuel.WithLabelValues(r.Nation).Set(float64(r.Stats.Fuel))
		c.manpower.WithLabelValues(r.Nation).Set(float64(r.Stats.Manpower))
		c.civFactories.WithLabelValues(r.Nation).Set(float64(r.Stats.CivFactories))
		c.milFactories.WithLabelValues(r.Nation).Set(float64(r.Stats.MilFactories))
		c.usedMilFactories.WithLabelValues(r.Nation).Set(float64(r.Stats.UsedMilFactories))
		c.queueDepth.WithLabelValues(r.Nation).Set(float64(r.Stats.QueueDepth))
		for equipment, count := range r.Stats.Equipment {
			c.equipment.WithLabelValues(r.Nation, equipment.String()).Set(float64(count))
		}

		for equipment, produced := range r.Produced {
			c.equipmentProduced.WithLabelValues(r.Nation, equipment.String()).Add(float64(produced))
		}
		c.buildPoints.WithLabelValues(r.Nation).Add(r.BuildPoints)
		if done := r.CompletedConstruction; done != nil && done.Applied {
			c.constructionCompleted.WithLabelValues(r.Nation, done.Building.String()).Inc()
		}
		if done := r.CompletedFocus; done != nil {
			c.focusCompleted.WithLabelValues(r.Nation, string(done.Effect)).Inc()
		}
	}
}

// NationDayObserver feeds a NationMetricsCollector from the scheduler
type NationDayObserver struct {
	collector *NationMetricsCollector
	scenario  string
}

func (o *NationDayObserver) ObserveDay(ctx context.Context, day int, reports []nation.DayReport) error {
	o.collector.Record(o.scenario, day, reports)
	return nil
}
