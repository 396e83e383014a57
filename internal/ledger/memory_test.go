package ledger

import (
	"testing"
	"time"

	"github.com/rupturahq/ruptura/internal/domain"
)

func TestMemoryStoreLastReadingAt(t *testing.T) {
	m := NewMemoryStore()
	ts := time.Date(2026, 2, 6, 3, 17, 0, 0, time.UTC)

	if err := m.CreateSensor(domain.SensorRecord{SensorID: "S-001", RegisteredAt: ts, Active: true}); err != nil {
		t.Fatalf("create: %v", err)
	}

	rec, ok, _ := m.Sensor("S-001")
	if !ok || rec.LastReadingAt != nil {
		t.Fatalf("fresh sensor should have nil LastReadingAt: %+v", rec)
	}

	err := m.AppendSubmission(
		domain.SensorReading{SensorID: "S-001", RecordedAt: ts},
		domain.DamageAssessment{SensorID: "S-001", SeverityLevel: 1},
	)
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	rec, _, _ = m.Sensor("S-001")
	if rec.LastReadingAt == nil || !rec.LastReadingAt.Equal(ts) {
		t.Fatalf("LastReadingAt not updated: %+v", rec)
	}
}

func TestMemoryStoreStatsReplay(t *testing.T) {
	m := NewMemoryStore()
	now := time.Now()

	for _, id := range []string{"a", "b"} {
		if err := m.CreateSensor(domain.SensorRecord{SensorID: id, RegisteredAt: now, Active: true}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	submissions := []domain.DamageAssessment{
		{SensorID: "a", SeverityLevel: 1, NotifyExternal: false},
		{SensorID: "a", SeverityLevel: 3, NotifyExternal: true},
		{SensorID: "b", SeverityLevel: 5, NotifyExternal: true},
	}
	for _, a := range submissions {
		if err := m.AppendSubmission(domain.SensorReading{SensorID: a.SensorID, RecordedAt: now}, a); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	stats, err := m.Stats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	want := domain.SystemStats{
		TotalSensors:           2,
		TotalEventsProcessed:   3,
		TotalEmergencyEvents:   1,
		TotalNotificationsSent: 2,
	}
	if stats != want {
		t.Fatalf("stats = %+v, want %+v", stats, want)
	}
}

func TestMemoryStoreLatestIsPerSensor(t *testing.T) {
	m := NewMemoryStore()
	now := time.Now()

	for _, id := range []string{"a", "b"} {
		if err := m.CreateSensor(domain.SensorRecord{SensorID: id, RegisteredAt: now, Active: true}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	seq := []struct {
		id    string
		level int
	}{{"a", 1}, {"b", 4}, {"a", 3}}
	for _, s := range seq {
		err := m.AppendSubmission(
			domain.SensorReading{SensorID: s.id, RecordedAt: now},
			domain.DamageAssessment{SensorID: s.id, SeverityLevel: s.level},
		)
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	a, ok, _ := m.LatestAssessment("a")
	if !ok || a.SeverityLevel != 3 {
		t.Fatalf("latest for a: %+v ok=%v", a, ok)
	}
	b, ok, _ := m.LatestAssessment("b")
	if !ok || b.SeverityLevel != 4 {
		t.Fatalf("latest for b: %+v ok=%v", b, ok)
	}
	if _, ok, _ := m.LatestAssessment("c"); ok {
		t.Fatalf("unknown sensor must have no latest assessment")
	}
}
