package storage

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/julianstephens/crema/internal/constants"
	"github.com/julianstephens/crema/internal/models"
)

func newTestJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	s := NewJSONStore(filepath.Join(t.TempDir(), "crema.json"))
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return s
}

func testBeans(t *testing.T) []models.Bean {
	t.Helper()
	var beans []models.Bean
	for _, tc := range []struct {
		name, origin string
		roast        models.RoastLevel
	}{
		{"Yirgacheffe", "Ethiopia", models.RoastLight},
		{"Santos", "Brazil", models.RoastDark},
	} {
		bean, err := models.NewBean(tc.name, tc.roast, tc.origin, time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC))
		if err != nil {
			t.Fatalf("NewBean failed: %v", err)
		}
		beans = append(beans, bean)
	}
	return beans
}

func TestSaveLoadRecords_RoundTripBeans(t *testing.T) {
	s := newTestJSONStore(t)
	beans := testBeans(t)

	if err := SaveRecords(s, constants.BeansKey, beans); err != nil {
		t.Fatalf("SaveRecords failed: %v", err)
	}

	loaded := LoadRecords[models.Bean](s, constants.BeansKey)
	if !reflect.DeepEqual(loaded, beans) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, beans)
	}
}

func TestSaveLoadRecords_RoundTripShotsWithEmbeddedBean(t *testing.T) {
	s := newTestJSONStore(t)
	beans := testBeans(t)

	shot, err := models.NewShot(beans[0], 4.5, 18, 36, 27.3, "bright, floral")
	if err != nil {
		t.Fatalf("NewShot failed: %v", err)
	}
	shots := []models.Shot{shot}

	if err := SaveRecords(s, constants.ShotsKey, shots); err != nil {
		t.Fatalf("SaveRecords failed: %v", err)
	}

	loaded := LoadRecords[models.Shot](s, constants.ShotsKey)
	if len(loaded) != 1 {
		t.Fatalf("expected 1 shot, got %d", len(loaded))
	}
	got := loaded[0]
	if got.ID != shot.ID || got.Dose != shot.Dose || got.Yield != shot.Yield ||
		got.ShotTime != shot.ShotTime || got.GrindSetting != shot.GrindSetting ||
		got.TasteNotes != shot.TasteNotes {
		t.Errorf("shot fields mismatch:\n got %+v\nwant %+v", got, shot)
	}
	if !got.Date.Equal(shot.Date) {
		t.Errorf("shot date mismatch: got %v, want %v", got.Date, shot.Date)
	}
	if got.Bean.ID != beans[0].ID || got.Bean.Name != beans[0].Name ||
		got.Bean.RoastLevel != beans[0].RoastLevel || got.Bean.Origin != beans[0].Origin {
		t.Errorf("embedded bean mismatch:\n got %+v\nwant %+v", got.Bean, beans[0])
	}
	if !got.Bean.RoastDate.Equal(beans[0].RoastDate) {
		t.Errorf("embedded bean roast date mismatch: got %v, want %v", got.Bean.RoastDate, beans[0].RoastDate)
	}
}

func TestLoadRecords_MissingKeyYieldsEmpty(t *testing.T) {
	s := newTestJSONStore(t)

	loaded := LoadRecords[models.Bean](s, constants.BeansKey)
	if loaded == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(loaded) != 0 {
		t.Errorf("expected empty slice, got %d records", len(loaded))
	}
}

func TestLoadRecords_MalformedDataYieldsEmpty(t *testing.T) {
	s := newTestJSONStore(t)

	if err := s.Set(constants.BeansKey, []byte(`{"not":"an array"}`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	loaded := LoadRecords[models.Bean](s, constants.BeansKey)
	if len(loaded) != 0 {
		t.Errorf("expected empty slice for malformed data, got %d records", len(loaded))
	}
}

func TestJSONStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crema.json")
	s := NewJSONStore(path)
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	beans := testBeans(t)
	if err := SaveRecords(s, constants.BeansKey, beans); err != nil {
		t.Fatalf("SaveRecords failed: %v", err)
	}

	reopened := NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	loaded := LoadRecords[models.Bean](reopened, constants.BeansKey)
	if !reflect.DeepEqual(loaded, beans) {
		t.Errorf("reopen mismatch:\n got %+v\nwant %+v", loaded, beans)
	}
}

func TestJSONStore_LoadWithoutInit(t *testing.T) {
	s := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	if err := s.Load(); err == nil {
		t.Error("expected error loading uninitialized storage")
	}
}

func TestJSONStore_InitTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crema.json")
	s := NewJSONStore(path)
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := NewJSONStore(path).Init(); err == nil {
		t.Error("expected error initializing twice")
	}
}

func TestSQLiteStore_RoundTripAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crema.db")
	s := NewSQLiteStore(path)
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	beans := testBeans(t)
	if err := SaveRecords(s, constants.BeansKey, beans); err != nil {
		t.Fatalf("SaveRecords failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened := NewSQLiteStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer reopened.Close()

	loaded := LoadRecords[models.Bean](reopened, constants.BeansKey)
	if !reflect.DeepEqual(loaded, beans) {
		t.Errorf("reopen mismatch:\n got %+v\nwant %+v", loaded, beans)
	}
}

func TestSQLiteStore_SetOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crema.db")
	s := NewSQLiteStore(path)
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer s.Close()

	if err := s.Set("k", []byte("one")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Set("k", []byte("two")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value, ok := s.Get("k")
	if !ok {
		t.Fatal("expected value for key")
	}
	if string(value) != "two" {
		t.Errorf("Get = %q, want %q", value, "two")
	}
}
