package system

import (
	"errors"
	"testing"
)

func TestPauseWaitsForGraceDelay(t *testing.T) {
	tc := NewTimeController()
	tc.Pause()

	if got := tc.Tick(0.1); !almostEqual(got, 0.1) {
		t.Errorf("expected scaled 0.1 during grace, got %f", got)
	}
	if tc.IsPaused() || !tc.PausePending() {
		t.Fatalf("expected pause to be pending after 0.1")
	}
	if tc.Scale() != 1 {
		t.Errorf("expected scale 1 before grace elapses, got %f", tc.Scale())
	}

	// Тик пересекает границу 0.2 и обрезается.
	if got := tc.Tick(0.15); !almostEqual(got, 0.1) {
		t.Errorf("expected crossing tick clamped to 0.1, got %f", got)
	}
	if !tc.IsPaused() || tc.Scale() != 0 {
		t.Fatalf("expected paused with scale 0, got paused=%v scale=%f", tc.IsPaused(), tc.Scale())
	}
	if !almostEqual(tc.Now(), 0.2) {
		t.Errorf("expected freeze at 0.2, got %f", tc.Now())
	}
	if got := tc.Tick(1); got != 0 {
		t.Errorf("expected no progress while paused, got %f", got)
	}
}

func TestResumeCancelsPendingPause(t *testing.T) {
	tc := NewTimeController()
	tc.Pause()
	tc.Tick(0.1)
	tc.Resume()

	for i := 0; i < 5; i++ {
		if got := tc.Tick(0.1); !almostEqual(got, 0.1) {
			t.Fatalf("tick %d: expected 0.1 after resume, got %f", i, got)
		}
	}
	if tc.IsPaused() || tc.PausePending() {
		t.Errorf("expected no residual pause")
	}
}

func TestResumeRestoresActiveScale(t *testing.T) {
	tc := NewTimeController()
	if err := tc.SetScale(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tc.Pause()
	// При x2 задержка 0.2 истекает за 0.1 реального времени.
	tc.Tick(0.1)
	if !tc.IsPaused() {
		t.Fatalf("expected paused after 0.1 wall time at x2")
	}
	tc.Resume()
	if tc.Scale() != 2 {
		t.Errorf("expected scale 2 after resume, got %f", tc.Scale())
	}
}

func TestSetScaleRejectsNegative(t *testing.T) {
	tc := NewTimeController()
	if err := tc.SetScale(-1); !errors.Is(err, ErrInvalidScale) {
		t.Errorf("expected ErrInvalidScale, got %v", err)
	}
	if tc.Scale() != 1 {
		t.Errorf("expected scale unchanged, got %f", tc.Scale())
	}
}
