package backup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/crema/internal/constants"
	"github.com/julianstephens/crema/internal/models"
	"github.com/julianstephens/crema/internal/storage"
)

// setupJSONStore creates an initialized JSON store with one bean in it and
// returns its path.
func setupJSONStore(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "crema.json")
	s := storage.NewJSONStore(path)
	if err := s.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	bean, err := models.NewBean("Kirimahiga", models.RoastLight, "Kenya", time.Now())
	if err != nil {
		t.Fatalf("failed to create bean: %v", err)
	}
	if err := storage.SaveRecords(s, constants.BeansKey, []models.Bean{bean}); err != nil {
		t.Fatalf("failed to save beans: %v", err)
	}
	return path
}

func loadBeans(t *testing.T, path string) []models.Bean {
	t.Helper()
	s := storage.NewJSONStore(path)
	if err := s.Load(); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	return storage.LoadRecords[models.Bean](s, constants.BeansKey)
}

func TestCreateBackup(t *testing.T) {
	storePath := setupJSONStore(t)

	mgr := NewManager(storePath)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		t.Fatalf("backup file was not created: %s", backupPath)
	}

	// The backup keeps the store's extension so a restore still selects the
	// right provider
	if filepath.Ext(backupPath) != ".json" {
		t.Errorf("expected .json backup, got %s", backupPath)
	}

	// The backup is a loadable store with the original data
	beans := loadBeans(t, backupPath)
	if len(beans) != 1 || beans[0].Name != "Kirimahiga" {
		t.Errorf("unexpected backup contents: %+v", beans)
	}
}

func TestCreateBackupMissingStore(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "crema.json"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("CreateBackup should fail when the store does not exist")
	}
}

func TestBackupRotation(t *testing.T) {
	storePath := setupJSONStore(t)

	mgr := NewManager(storePath)

	numBackups := MaxBackups + 5
	for i := 0; i < numBackups; i++ {
		if _, err := mgr.CreateBackup(); err != nil {
			t.Fatalf("CreateBackup #%d failed: %v", i, err)
		}
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}

	if len(backups) != MaxBackups {
		t.Errorf("expected %d backups after rotation, got %d", MaxBackups, len(backups))
	}

	// Newest first
	for i := 1; i < len(backups); i++ {
		if backups[i].Timestamp.After(backups[i-1].Timestamp) {
			t.Errorf("backups are not sorted newest first at index %d", i)
		}
	}
}

func TestListBackups(t *testing.T) {
	storePath := setupJSONStore(t)

	mgr := NewManager(storePath)

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected 0 backups initially, got %d", len(backups))
	}

	numBackups := 3
	for i := 0; i < numBackups; i++ {
		if _, err := mgr.CreateBackup(); err != nil {
			t.Fatalf("CreateBackup #%d failed: %v", i, err)
		}
	}

	backups, err = mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != numBackups {
		t.Errorf("expected %d backups, got %d", numBackups, len(backups))
	}

	for _, backup := range backups {
		if backup.Path == "" {
			t.Error("backup path is empty")
		}
		if backup.Size == 0 {
			t.Error("backup size is 0")
		}
		if backup.Timestamp.IsZero() {
			t.Error("backup timestamp is zero")
		}
	}
}

func TestListBackupsIgnoresForeignFiles(t *testing.T) {
	storePath := setupJSONStore(t)

	mgr := NewManager(storePath)
	if _, err := mgr.CreateBackup(); err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	// Files without the expected prefix or extension are not backups
	for _, name := range []string{"notes.txt", "crema-garbage.json", "other-20240101-120000.json"} {
		if err := os.WriteFile(filepath.Join(mgr.GetBackupDir(), name), []byte("x"), 0600); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 1 {
		t.Errorf("expected 1 backup, got %d", len(backups))
	}
}

func TestRestoreBackup(t *testing.T) {
	storePath := setupJSONStore(t)

	mgr := NewManager(storePath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	// Add a second bean after the backup was taken
	s := storage.NewJSONStore(storePath)
	if err := s.Load(); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	beans := storage.LoadRecords[models.Bean](s, constants.BeansKey)
	extra, err := models.NewBean("La Palma", models.RoastMedium, "Colombia", time.Now())
	if err != nil {
		t.Fatalf("failed to create bean: %v", err)
	}
	if err := storage.SaveRecords(s, constants.BeansKey, append(beans, extra)); err != nil {
		t.Fatalf("failed to save beans: %v", err)
	}

	if got := loadBeans(t, storePath); len(got) != 2 {
		t.Fatalf("expected 2 beans before restore, got %d", len(got))
	}

	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}

	restored := loadBeans(t, storePath)
	if len(restored) != 1 || restored[0].Name != "Kirimahiga" {
		t.Errorf("store not restored to backed-up state: %+v", restored)
	}
}

func TestRestoreBackupCreatesPreRestoreBackup(t *testing.T) {
	storePath := setupJSONStore(t)

	mgr := NewManager(storePath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	initialCount := len(backups)

	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}

	backups, err = mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != initialCount+1 {
		t.Errorf("expected %d backups after restore, got %d", initialCount+1, len(backups))
	}
}

func TestRestoreBackupMissingFile(t *testing.T) {
	storePath := setupJSONStore(t)

	mgr := NewManager(storePath)
	if err := mgr.RestoreBackup(filepath.Join(mgr.GetBackupDir(), "crema-20240101-120000.json")); err == nil {
		t.Error("RestoreBackup should fail for a missing backup file")
	}
}

func TestVerifyBackupSQLite(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "crema.db")
	s := storage.NewSQLiteStore(storePath)
	if err := s.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("failed to close store: %v", err)
	}

	mgr := NewManager(storePath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}
	if err := mgr.verifyBackup(backupPath); err != nil {
		t.Errorf("verifyBackup failed for valid backup: %v", err)
	}

	invalidPath := filepath.Join(mgr.GetBackupDir(), "invalid.db")
	if err := os.WriteFile(invalidPath, []byte("not a database"), 0600); err != nil {
		t.Fatalf("failed to create invalid file: %v", err)
	}
	if err := mgr.verifyBackup(invalidPath); err == nil {
		t.Error("verifyBackup should fail for a corrupt database")
	}
}

func TestVerifyBackupEmptyJSON(t *testing.T) {
	storePath := setupJSONStore(t)

	mgr := NewManager(storePath)
	if err := os.MkdirAll(mgr.GetBackupDir(), 0700); err != nil {
		t.Fatalf("failed to create backup dir: %v", err)
	}

	emptyPath := filepath.Join(mgr.GetBackupDir(), "crema-20240101-120000.json")
	if err := os.WriteFile(emptyPath, nil, 0600); err != nil {
		t.Fatalf("failed to create empty file: %v", err)
	}
	if err := mgr.verifyBackup(emptyPath); err == nil {
		t.Error("verifyBackup should fail for an empty JSON backup")
	}
}

func TestUniqueBackupFilenames(t *testing.T) {
	storePath := setupJSONStore(t)

	mgr := NewManager(storePath)

	paths := make(map[string]bool)
	for i := 0; i < 5; i++ {
		backupPath, err := mgr.CreateBackup()
		if err != nil {
			t.Fatalf("CreateBackup #%d failed: %v", i, err)
		}
		filename := filepath.Base(backupPath)
		if paths[filename] {
			t.Errorf("duplicate backup filename: %s", filename)
		}
		paths[filename] = true
	}
}
