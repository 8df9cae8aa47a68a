package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/masjidia/jadwal-sholat-service/internal/astro"
	"github.com/masjidia/jadwal-sholat-service/internal/metrics"
	"github.com/masjidia/jadwal-sholat-service/internal/notify"
	"github.com/masjidia/jadwal-sholat-service/internal/prayer"
	"github.com/rs/zerolog/log"
)

// Snapshot is one fully evaluated view of the day, replaced wholesale on
// every tick. Readers get an independent value and need no locking.
type Snapshot struct {
	GeneratedAt time.Time
	CivilDate   string
	Hijri       astro.HijriDate
	IsRamadan   bool
	Prayers     []prayer.Prayer
	Display     []prayer.Prayer
	Tomorrow    []prayer.Prayer
	Next        *prayer.NextPrayer
	Current     *prayer.Prayer
	Phase       prayer.Phase
}

// Runtime drives the engine: a 1 Hz ticker re-evaluates the schedule,
// publishes edge-triggered transition events, and keeps the latest
// snapshot available to the HTTP handlers. Correctness is independent of
// the cadence since every pass is a pure function of (schedule, now).
type Runtime struct {
	service   ScheduleServicer
	publisher *notify.Publisher

	mu       sync.RWMutex
	snapshot Snapshot

	today    []prayer.Prayer
	display  []prayer.Prayer
	tomorrow []prayer.Prayer
	date     string
}

func NewRuntime(service ScheduleServicer, publisher *notify.Publisher) *Runtime {
	return &Runtime{
		service:   service,
		publisher: publisher,
	}
}

// Run blocks until ctx is done, ticking at the given cadence (1 second in
// production). The first tick happens immediately so handlers never see
// an empty snapshot after startup.
func (r *Runtime) Run(ctx context.Context, cadence time.Duration) error {
	if err := r.Tick(ctx, time.Now().In(r.service.Location())); err != nil {
		return fmt.Errorf("failed to run initial tick: %w", err)
	}

	ticker := time.NewTicker(cadence)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			if err := r.Tick(ctx, now.In(r.service.Location())); err != nil {
				log.Error().Err(err).Msg("failed to run engine tick")
			}
		}
	}
}

// Tick runs one evaluation pass at the given instant. Exported so tests
// and the CLI can drive the engine with a synthetic clock.
func (r *Runtime) Tick(ctx context.Context, now time.Time) error {
	civilDate := now.Format(time.DateOnly)

	if civilDate != r.date {
		if err := r.rebuild(ctx, now, civilDate); err != nil {
			return err
		}
	}

	previous := r.Snapshot()

	evaluated := prayer.Evaluate(r.today, now)
	displayEvaluated := prayer.Evaluate(r.display, now)

	snapshot := Snapshot{
		GeneratedAt: now,
		CivilDate:   civilDate,
		Hijri:       astro.ToHijri(now),
		IsRamadan:   astro.IsRamadan(now),
		Prayers:     evaluated,
		Display:     displayEvaluated,
		// Tomorrow's entries stay upcoming as built; they only exist for
		// the day-rollover fallover of Next.
		Tomorrow: r.tomorrow,
	}

	if next, ok := prayer.Next(evaluated, r.tomorrow); ok {
		snapshot.Next = &next
	}

	if current, ok := prayer.Current(evaluated); ok {
		snapshot.Current = &current
		snapshot.Phase = prayer.ClassifyPhase(current, now)
	}

	r.emitTransitions(previous, snapshot)

	r.mu.Lock()
	r.snapshot = snapshot
	r.mu.Unlock()

	metrics.EngineTicks.Inc()
	return nil
}

// Snapshot returns the latest evaluated view of the day.
func (r *Runtime) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot
}

func (r *Runtime) rebuild(ctx context.Context, now time.Time, civilDate string) error {
	today, err := r.service.BuildDay(ctx, now)
	if err != nil {
		return fmt.Errorf("failed to build today's schedule: %w", err)
	}

	display, err := r.service.BuildDisplayDay(ctx, now)
	if err != nil {
		return fmt.Errorf("failed to build today's display schedule: %w", err)
	}

	tomorrow, err := r.service.BuildDay(ctx, now.AddDate(0, 0, 1))
	if err != nil {
		return fmt.Errorf("failed to build tomorrow's schedule: %w", err)
	}

	r.today = today
	r.display = display
	r.tomorrow = tomorrow
	r.date = civilDate

	if r.publisher != nil {
		r.publisher.Rollover(civilDate)
	}

	log.Info().Str("civil_date", civilDate).Msg("daily schedule rebuilt")
	return nil
}

// emitTransitions compares consecutive snapshots and publishes one event
// per edge: a prayer entering its window, and a current prayer reaching
// iqamah. The publisher's deduper suppresses re-fires for the rest of the
// civil day even if the edge is observed again.
func (r *Runtime) emitTransitions(previous, current Snapshot) {
	if r.publisher == nil {
		return
	}

	if current.Current != nil {
		wasCurrent := previous.Current != nil && previous.Current.Name == current.Current.Name
		if !wasCurrent {
			if r.publisher.Publish(notify.Event{
				Prayer:    current.Current.Name,
				Type:      notify.EventPrayerCurrent,
				CivilDate: current.CivilDate,
				ClockTime: current.Current.AdhanTime,
			}) {
				metrics.TransitionEvents.WithLabelValues(notify.EventPrayerCurrent).Inc()
			}
		}

		if current.Phase == prayer.PhaseIqamah && (previous.Phase != prayer.PhaseIqamah || !wasCurrent) {
			if r.publisher.Publish(notify.Event{
				Prayer:    current.Current.Name,
				Type:      notify.EventPhaseIqamah,
				CivilDate: current.CivilDate,
				ClockTime: current.Current.IqamahTime,
			}) {
				metrics.TransitionEvents.WithLabelValues(notify.EventPhaseIqamah).Inc()
			}
		}
	}
}
