package cli

import (
	"fmt"
	"path/filepath"

	"github.com/julianstephens/crema/internal/backup"
)

type BackupCmd struct {
	List    bool   `short:"l" help:"List available backups."`
	Restore string `short:"r" help:"Restore from a backup file (path or filename)."`
}

func (c *BackupCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())

	if c.List {
		backups, err := mgr.ListBackups()
		if err != nil {
			return err
		}
		if len(backups) == 0 {
			fmt.Println("No backups found")
			return nil
		}
		fmt.Println("Backups (newest first):")
		for _, b := range backups {
			fmt.Printf("  %s  %s (%d bytes)\n",
				b.Timestamp.Format("2006-01-02 15:04:05"), filepath.Base(b.Path), b.Size)
		}
		return nil
	}

	if c.Restore != "" {
		path := c.Restore
		if filepath.Base(path) == path {
			path = filepath.Join(mgr.GetBackupDir(), path)
		}
		if err := mgr.RestoreBackup(path); err != nil {
			return err
		}
		fmt.Printf("Restored store from: %s\n", filepath.Base(path))
		return nil
	}

	path, err := mgr.CreateBackup()
	if err != nil {
		return err
	}
	fmt.Printf("Created backup: %s\n", filepath.Base(path))
	return nil
}
