package igate

import (
	"context"
	"time"

	"github.com/merliot/igate/wifi"
)

const defaultTick = 100 * time.Millisecond

// Runner owns the device main loop.  Everything the loop touches runs on
// the goroutine that called Run.
type Runner struct {
	mgr    *wifi.Manager
	status *Status
	tick   time.Duration
	tasks  []func()
}

// NewRunner returns a runner for mgr.  status may be nil.
func NewRunner(mgr *wifi.Manager, status *Status) *Runner {
	return &Runner{mgr: mgr, status: status, tick: defaultTick}
}

// Tick sets the main loop period
func (r *Runner) Tick(d time.Duration) {
	r.tick = d
}

// AddTask adds fn to the main loop.  Tasks are called every tick after the
// WiFi checks and must not block.
func (r *Runner) AddTask(fn func()) {
	r.tasks = append(r.tasks, fn)
}

// Run brings WiFi up, then polls until ctx is done
func (r *Runner) Run(ctx context.Context) {
	if r.status != nil {
		r.mgr.OnChange(r.status.Update)
	}

	r.mgr.Setup()
	r.publish()

	ticker := time.NewTicker(r.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Poll()
		}
	}
}

// Poll runs one main loop tick
func (r *Runner) Poll() {
	r.mgr.CheckWiFi()
	r.mgr.CheckAutoAPPowerOff()
	for _, task := range r.tasks {
		task()
	}
	r.publish()
}

func (r *Runner) publish() {
	if r.status != nil {
		r.status.Update(r.mgr.Snapshot())
	}
}
