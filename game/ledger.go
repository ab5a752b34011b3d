package game

import (
	"log/slog"
	"sync"
)

// ScoreSink receives points for destroyed targets
type ScoreSink interface {
	AddScore(points int)
}

// AmmoGate is the ammo side of the ledger that FireControl consults
type AmmoGate interface {
	CanFire() bool
	UseAmmo() bool
	Remaining() int
}

// Ledger tracks score and ammo for one session. Score and ammo change only
// through AddScore, UseAmmo and ResetAll.
type Ledger struct {
	mu       sync.Mutex
	log      *slog.Logger
	maxAmmo  int
	score    int
	ammoUsed int
}

// NewLedger creates a ledger with maxAmmo shots
func NewLedger(maxAmmo int, log *slog.Logger) *Ledger {
	if log == nil {
		log = slog.Default()
	}
	return &Ledger{
		log:     log.With("component", "ledger"),
		maxAmmo: maxAmmo,
	}
}

// AddScore credits points
func (l *Ledger) AddScore(points int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.score += points
	l.log.Info("score", "points", points, "total", l.score)
}

// CanFire reports whether any ammo is left
func (l *Ledger) CanFire() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ammoUsed < l.maxAmmo
}

// UseAmmo spends one shot. It returns false when the ledger is empty.
func (l *Ledger) UseAmmo() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.ammoUsed >= l.maxAmmo {
		l.log.Info("out of ammo", "used", l.ammoUsed, "max", l.maxAmmo)
		return false
	}
	l.ammoUsed++
	l.log.Debug("ammo used", "ammo", l.maxAmmo-l.ammoUsed)
	return true
}

// ResetAll zeroes score and ammo used
func (l *Ledger) ResetAll() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.score = 0
	l.ammoUsed = 0
	l.log.Info("ledger reset")
}

// Score returns the current score
func (l *Ledger) Score() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.score
}

// AmmoUsed returns the number of shots spent
func (l *Ledger) AmmoUsed() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ammoUsed
}

// Remaining returns the number of shots left
func (l *Ledger) Remaining() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.maxAmmo - l.ammoUsed
}

// MaxAmmo returns the ammo capacity
func (l *Ledger) MaxAmmo() int {
	return l.maxAmmo
}
