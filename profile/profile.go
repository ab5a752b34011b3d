// Package profile captures CPU profiles and execution traces of a running
// simulation, either for a whole run or when the frame rate drops.
package profile

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"
)

// ErrBusy is returned when a capture is already running or on cooldown
var ErrBusy = errors.New("profiler busy")

// Profiler writes .cpu.prof and .trace files into a directory
type Profiler struct {
	mu        sync.Mutex
	dir       string
	cooldown  time.Duration
	duration  time.Duration
	active    bool
	lastStart time.Time
	log       *slog.Logger
	now       func() time.Time
}

// New creates a profiler writing into dir
func New(dir string, log *slog.Logger) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create profile dir: %w", err)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Profiler{
		dir:      dir,
		cooldown: 10 * time.Second,
		duration: 5 * time.Second,
		log:      log.With("component", "profiler"),
		now:      time.Now,
	}, nil
}

// Dir returns the output directory
func (p *Profiler) Dir() string { return p.dir }

// Active reports whether a capture is in progress
func (p *Profiler) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

// Start begins a CPU profile and trace named after reason. The returned
// stop function ends both and logs a memory summary.
func (p *Profiler) Start(reason string) (stop func() error, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.active {
		return nil, ErrBusy
	}
	base := fmt.Sprintf("%s-%s", reason, p.now().Format("20060102-150405"))

	cpuPath := filepath.Join(p.dir, base+".cpu.prof")
	cpuFile, err := os.Create(cpuPath)
	if err != nil {
		return nil, fmt.Errorf("create cpu profile: %w", err)
	}
	if err := pprof.StartCPUProfile(cpuFile); err != nil {
		cpuFile.Close()
		return nil, fmt.Errorf("start cpu profile: %w", err)
	}

	tracePath := filepath.Join(p.dir, base+".trace")
	traceFile, err := os.Create(tracePath)
	if err != nil {
		pprof.StopCPUProfile()
		cpuFile.Close()
		return nil, fmt.Errorf("create trace: %w", err)
	}
	if err := trace.Start(traceFile); err != nil {
		pprof.StopCPUProfile()
		cpuFile.Close()
		traceFile.Close()
		return nil, fmt.Errorf("start trace: %w", err)
	}

	p.active = true
	p.lastStart = p.now()
	p.log.Info("profiling started", "reason", reason, "cpu", cpuPath, "trace", tracePath)

	var once sync.Once
	return func() error {
		var err error
		once.Do(func() {
			pprof.StopCPUProfile()
			trace.Stop()
			err = errors.Join(cpuFile.Close(), traceFile.Close())

			p.mu.Lock()
			p.active = false
			p.mu.Unlock()

			p.logSummary(cpuPath)
		})
		return err
	}, nil
}

// Capture starts a timed capture in the background unless one ran within
// the cooldown. Used when the frame rate drops.
func (p *Profiler) Capture(reason string) error {
	p.mu.Lock()
	since := p.now().Sub(p.lastStart)
	busy := p.active || (!p.lastStart.IsZero() && since < p.cooldown)
	p.mu.Unlock()
	if busy {
		return ErrBusy
	}

	stop, err := p.Start(reason)
	if err != nil {
		return err
	}
	go func() {
		time.Sleep(p.duration)
		if err := stop(); err != nil {
			p.log.Error("stop capture", "err", err)
		}
	}()
	return nil
}

func (p *Profiler) logSummary(cpuPath string) {
	var size int64
	if info, err := os.Stat(cpuPath); err == nil {
		size = info.Size()
	}
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	p.log.Info("profile written",
		"cpu", cpuPath,
		"kb", size/1024,
		"alloc_kb", m.Alloc/1024,
		"sys_kb", m.Sys/1024,
		"num_gc", m.NumGC,
		"heap_objects", m.HeapObjects,
		"view", "go tool pprof -http=:8080 "+cpuPath,
	)
}
