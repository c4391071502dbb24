package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/crema/internal/backup"
	"github.com/julianstephens/crema/internal/logger"
	"github.com/julianstephens/crema/internal/models"
	"github.com/julianstephens/crema/internal/storage"
	"github.com/julianstephens/crema/internal/store"
)

type Context struct {
	Store storage.Provider
}

// Open loads the provider and builds both collections from it.
func (c *Context) Open() (*store.BeanStore, *store.ShotStore, error) {
	if err := c.Store.Load(); err != nil {
		return nil, nil, err
	}
	return store.NewBeanStore(c.Store), store.NewShotStore(c.Store), nil
}

// PerformAutomaticBackup takes a backup of the store if the newest existing
// one is older than a day. Failures are logged, never fatal.
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())

	backups, err := mgr.ListBackups()
	if err != nil {
		logger.Warn("automatic backup skipped", "error", err)
		return
	}
	if len(backups) > 0 && time.Since(backups[0].Timestamp) < 24*time.Hour {
		return
	}

	if _, err := mgr.CreateBackup(); err != nil {
		logger.Warn("automatic backup failed", "error", err)
	}
}

// resolveBean finds a bean by id or by case-insensitive name.
func resolveBean(beans *store.BeanStore, ref string) (models.Bean, error) {
	if bean, ok := beans.Get(ref); ok {
		return bean, nil
	}

	var matches []models.Bean
	for _, bean := range beans.All() {
		if strings.EqualFold(bean.Name, strings.TrimSpace(ref)) {
			matches = append(matches, bean)
		}
	}

	switch len(matches) {
	case 0:
		return models.Bean{}, fmt.Errorf("no bean found matching %q", ref)
	case 1:
		return matches[0], nil
	default:
		return models.Bean{}, fmt.Errorf("multiple beans named %q, use the id instead", ref)
	}
}

func formatShot(shot models.Shot) string {
	line := fmt.Sprintf("%s  %s  %.1fg -> %.1fg (1:%.1f) in %.1fs, grind %.1f",
		shot.Date.Format("2006-01-02 15:04"),
		shot.Bean.Name,
		shot.Dose, shot.Yield, shot.ExtractionRatio(), shot.ShotTime, shot.GrindSetting)
	if shot.TasteNotes != "" {
		line += fmt.Sprintf("\n      %s", shot.TasteNotes)
	}
	return line
}

func formatBean(bean models.Bean, asOf time.Time) string {
	return fmt.Sprintf("%s (%s, %s roast) - roasted %s, %d days ago [%s]",
		bean.Name, bean.Origin, bean.RoastLevel,
		bean.RoastDate.Format("2006-01-02"),
		bean.DaysSinceRoast(asOf), bean.Freshness(asOf))
}
