package status

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// Reporter periodically logs the registry on a scheduler job
type Reporter struct {
	reg      *Registry
	interval time.Duration
	sched    gocron.Scheduler
	reports  atomic.Int64
}

func NewReporter(reg *Registry, interval time.Duration) *Reporter {
	return &Reporter{reg: reg, interval: interval}
}

// Start schedules the report job, no-op when interval is not positive
func (r *Reporter) Start() error {
	if r.interval <= 0 {
		return nil
	}
	sched, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("create scheduler: %w", err)
	}
	_, err = sched.NewJob(
		gocron.DurationJob(r.interval),
		gocron.NewTask(func() {
			log.Printf("[status] %s", r.Report())
		}),
	)
	if err != nil {
		_ = sched.Shutdown()
		return fmt.Errorf("schedule report: %w", err)
	}
	sched.Start()
	r.sched = sched
	return nil
}

// Stop shuts the scheduler down
func (r *Reporter) Stop() error {
	if r.sched == nil {
		return nil
	}
	err := r.sched.Shutdown()
	r.sched = nil
	return err
}

// Report formats every metric as sorted key=value pairs
func (r *Reporter) Report() string {
	r.reports.Add(1)
	vals := r.reg.Values()
	keys := make([]string, 0, len(vals))
	for k := range vals {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch v := vals[k].(type) {
		case float64:
			fmt.Fprintf(&b, "%s=%.2f", k, v)
		default:
			fmt.Fprintf(&b, "%s=%v", k, v)
		}
	}
	return b.String()
}

// Reports returns how many reports were produced
func (r *Reporter) Reports() int64 {
	return r.reports.Load()
}
