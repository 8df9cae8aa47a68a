package notify

import "testing"

func TestAlertDeduperFireOnce(t *testing.T) {
	deduper := NewAlertDeduper()

	if !deduper.FireOnce("Maghrib", EventPrayerCurrent, "2025-03-10") {
		t.Error("expected first fire to pass")
	}

	if deduper.FireOnce("Maghrib", EventPrayerCurrent, "2025-03-10") {
		t.Error("expected repeat fire to be suppressed")
	}

	// A different phase of the same prayer is its own alert.
	if !deduper.FireOnce("Maghrib", EventPhaseIqamah, "2025-03-10") {
		t.Error("expected iqamah phase to fire independently")
	}

	// The same transition on the next civil date fires again.
	if !deduper.FireOnce("Maghrib", EventPrayerCurrent, "2025-03-11") {
		t.Error("expected next day's transition to fire")
	}
}

func TestAlertDeduperReset(t *testing.T) {
	deduper := NewAlertDeduper()

	deduper.FireOnce("Subuh", EventPrayerCurrent, "2025-03-10")
	deduper.FireOnce("Subuh", EventPrayerCurrent, "2025-03-11")

	deduper.Reset("2025-03-11")

	if !deduper.FireOnce("Subuh", EventPrayerCurrent, "2025-03-10") {
		t.Error("expected stale entry to be cleared by reset")
	}

	if deduper.FireOnce("Subuh", EventPrayerCurrent, "2025-03-11") {
		t.Error("expected current day's entry to survive reset")
	}
}

func TestPublisherDedup(t *testing.T) {
	publisher := NewPublisher(nil, "masjid")

	event := Event{Prayer: "Isya", Type: EventPrayerCurrent, CivilDate: "2025-03-10", ClockTime: "19:17"}

	if !publisher.Publish(event) {
		t.Error("expected first publish to fire")
	}

	if publisher.Publish(event) {
		t.Error("expected second publish to be deduplicated")
	}
}

func TestPublisherTopic(t *testing.T) {
	publisher := NewPublisher(nil, "masjid")

	if got := publisher.Topic(EventPhaseIqamah); got != "masjid/events/phase_iqamah" {
		t.Errorf("unexpected topic: %q", got)
	}
}
