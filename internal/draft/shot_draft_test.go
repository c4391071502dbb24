package draft

import (
	"testing"
	"time"

	"github.com/julianstephens/crema/internal/constants"
	"github.com/julianstephens/crema/internal/models"
)

func selectedBean(t *testing.T) models.Bean {
	t.Helper()
	bean, err := models.NewBean("Santos", models.RoastDark, "Brazil", time.Now())
	if err != nil {
		t.Fatalf("NewBean failed: %v", err)
	}
	return bean
}

// runTimer runs the draft's stopwatch long enough to register at least one
// tick.
func runTimer(t *testing.T, d *ShotDraft) {
	t.Helper()
	d.StartTimer()
	deadline := time.Now().Add(2 * time.Second)
	for d.Elapsed() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("stopwatch never ticked")
		}
		time.Sleep(10 * time.Millisecond)
	}
	d.StopTimer()
}

func TestShotDraft_StepGating(t *testing.T) {
	_, shots := newTestStores(t)
	d := NewShotDraft(shots)

	if d.Step() != ShotStepBean {
		t.Fatalf("expected draft to start at bean selection, got %v", d.Step())
	}
	if d.Grind != constants.GrindDefault {
		t.Errorf("expected default grind %.1f, got %.1f", constants.GrindDefault, d.Grind)
	}

	// No bean selected yet
	if d.Next() {
		t.Error("Next should fail without a selected bean")
	}

	d.SelectBean(selectedBean(t))
	if !d.Next() {
		t.Fatal("Next should succeed with a bean selected")
	}

	// Grind always advances
	if !d.Next() {
		t.Fatal("grind step should always advance")
	}

	// Dose must be non-empty
	if d.Next() {
		t.Error("Next should fail with empty dose")
	}
	d.Dose = "18"
	if !d.Next() {
		t.Fatal("Next should succeed with dose set")
	}

	// Timer must have run
	if d.Step() != ShotStepTimer {
		t.Fatalf("expected timer step, got %v", d.Step())
	}
	if d.Next() {
		t.Error("Next should fail before the timer has ticked")
	}
	runTimer(t, d)
	if !d.Next() {
		t.Fatal("Next should succeed after the timer ran")
	}

	// Yield must be non-empty
	if d.Next() {
		t.Error("Next should fail with empty yield")
	}
	d.Yield = "36"
	if !d.Next() {
		t.Fatal("Next should succeed with yield set")
	}

	if d.Step() != ShotStepNotes {
		t.Fatalf("expected notes step, got %v", d.Step())
	}
}

func TestShotDraft_FinishRecordsShot(t *testing.T) {
	_, shots := newTestStores(t)
	d := NewShotDraft(shots)

	d.SelectBean(selectedBean(t))
	d.Next()
	d.Grind = 4.5
	d.Next()
	d.Dose = "18"
	d.Next()
	runTimer(t, d)
	d.Next()
	d.Yield = "36"
	d.Next()
	d.TasteNotes = "chocolatey"

	shot, err := d.Finish()
	if err != nil {
		t.Fatalf("Finish failed: %v", err)
	}
	if shot.ExtractionRatio() != 2.0 {
		t.Errorf("extraction ratio = %v, want 2.0", shot.ExtractionRatio())
	}
	if shot.ShotTime <= 0 {
		t.Errorf("expected positive shot time, got %v", shot.ShotTime)
	}
	if shot.GrindSetting != 4.5 || shot.TasteNotes != "chocolatey" {
		t.Errorf("unexpected shot %+v", shot)
	}
	if d.TimerRunning() {
		t.Error("stopwatch should be stopped after Finish")
	}

	all := shots.All()
	if len(all) != 1 || all[0].ID != shot.ID {
		t.Errorf("expected shot committed to store, got %+v", all)
	}
}

func TestShotDraft_FinishWithUnparsableDose(t *testing.T) {
	_, shots := newTestStores(t)
	d := NewShotDraft(shots)

	d.SelectBean(selectedBean(t))
	d.Next()
	d.Next()
	d.Dose = "a lot"
	d.Next()
	runTimer(t, d)
	d.Next()
	d.Yield = "36"
	d.Next()

	if _, err := d.Finish(); err == nil {
		t.Fatal("expected error for unparsable dose")
	}
	if d.Step() != ShotStepNotes {
		t.Errorf("expected draft to stay at the final step, got %v", d.Step())
	}
	if shots.Len() != 0 {
		t.Error("nothing should be committed on validation failure")
	}
}

func TestShotDraft_FinishWithZeroDose(t *testing.T) {
	_, shots := newTestStores(t)
	d := NewShotDraft(shots)

	d.SelectBean(selectedBean(t))
	d.Next()
	d.Next()
	d.Dose = "0"
	d.Next()
	runTimer(t, d)
	d.Next()
	d.Yield = "36"
	d.Next()

	if _, err := d.Finish(); err == nil {
		t.Error("expected error for zero dose")
	}
}

func TestShotDraft_BackFromTimerStopsStopwatch(t *testing.T) {
	_, shots := newTestStores(t)
	d := NewShotDraft(shots)

	d.SelectBean(selectedBean(t))
	d.Next()
	d.Next()
	d.Dose = "18"
	d.Next()

	d.StartTimer()
	if !d.TimerRunning() {
		t.Fatal("expected stopwatch running")
	}
	d.Back()
	if d.TimerRunning() {
		t.Error("backing out of the timer step must stop the stopwatch")
	}
	if d.Dose != "18" {
		t.Error("back navigation lost the dose")
	}
}

func TestShotDraft_ResetStopsStopwatchAndClears(t *testing.T) {
	_, shots := newTestStores(t)
	d := NewShotDraft(shots)

	d.SelectBean(selectedBean(t))
	d.Dose = "18"
	d.StartTimer()

	d.Reset()
	if d.TimerRunning() {
		t.Error("Reset must stop the stopwatch")
	}
	if d.Bean != nil || d.Dose != "" || d.Step() != ShotStepBean {
		t.Error("Reset must discard all fields and return to the first step")
	}
	if d.Grind != constants.GrindDefault {
		t.Errorf("Reset should restore default grind, got %.1f", d.Grind)
	}
}

func TestShotDraft_SelectBeanFreezesCopy(t *testing.T) {
	_, shots := newTestStores(t)
	d := NewShotDraft(shots)

	bean := selectedBean(t)
	d.SelectBean(bean)
	bean.Name = "Renamed"

	if d.Bean.Name != "Santos" {
		t.Errorf("expected frozen bean copy, got %q", d.Bean.Name)
	}
}
