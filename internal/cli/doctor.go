package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/crema/internal/backup"
	"github.com/julianstephens/crema/internal/constants"
	"github.com/julianstephens/crema/internal/models"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: store reachable
	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Store reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		fmt.Println()
		fmt.Println("Diagnostics failed: the store could not be opened.")
		return fmt.Errorf("doctor found problems")
	}
	fmt.Printf("✓ Store reachable: OK\n")

	// Check 2: collections decodable
	beans, beansErr := decodeCollection[models.Bean](ctx, constants.BeansKey)
	shots, shotsErr := decodeCollection[models.Shot](ctx, constants.ShotsKey)
	if beansErr != nil || shotsErr != nil {
		fmt.Printf("❌ Collections decodable: FAIL\n")
		if beansErr != nil {
			fmt.Printf("   %s: %v\n", constants.BeansKey, beansErr)
		}
		if shotsErr != nil {
			fmt.Printf("   %s: %v\n", constants.ShotsKey, shotsErr)
		}
		hasError = true
	} else {
		fmt.Printf("✓ Collections decodable: OK (%d beans, %d shots)\n", len(beans), len(shots))
	}

	// Check 3: data sane
	if problems := checkData(beans, shots); len(problems) > 0 {
		fmt.Printf("❌ Data valid: FAIL\n")
		for _, p := range problems {
			fmt.Printf("   %s\n", p)
		}
		hasError = true
	} else {
		fmt.Printf("✓ Data valid: OK\n")
	}

	// Check 4: backups present (warning only)
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	if backups, err := mgr.ListBackups(); err != nil || len(backups) == 0 {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   No backups found, run 'crema backup'\n")
	} else {
		fmt.Printf("✓ Backups present: OK (%d)\n", len(backups))
	}

	// Check 5: no concurrent crema process; the store is not multi-process
	// safe (warning only, the check is best-effort)
	if others, err := findOtherCremaProcesses(); err == nil && len(others) > 0 {
		fmt.Printf("⚠ Single process: WARNING\n")
		fmt.Printf("   Another crema process appears to be running (pid %d); concurrent use of the same store can corrupt it\n", others[0])
	} else {
		fmt.Printf("✓ Single process: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics found problems.")
		return fmt.Errorf("doctor found problems")
	}
	fmt.Println("All diagnostics passed.")
	return nil
}

// decodeCollection bypasses the fail-silent record loader: the doctor wants to
// see the decode error a normal load would swallow.
func decodeCollection[T any](ctx *Context, key string) ([]T, error) {
	raw, ok := ctx.Store.Get(key)
	if !ok {
		return []T{}, nil
	}
	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func checkData(beans []models.Bean, shots []models.Shot) []string {
	var problems []string

	validRoast := func(r models.RoastLevel) bool {
		return r == models.RoastLight || r == models.RoastMedium || r == models.RoastDark
	}

	for _, bean := range beans {
		if strings.TrimSpace(bean.Name) == "" || strings.TrimSpace(bean.Origin) == "" {
			problems = append(problems, fmt.Sprintf("bean %s has an empty name or origin", bean.ID))
		}
		if !validRoast(bean.RoastLevel) {
			problems = append(problems, fmt.Sprintf("bean %s has unknown roast level %q", bean.ID, bean.RoastLevel))
		}
	}

	for _, shot := range shots {
		if shot.Dose <= 0 {
			problems = append(problems, fmt.Sprintf("shot %s has non-positive dose %.2f", shot.ID, shot.Dose))
		}
		if shot.Bean.ID == "" {
			problems = append(problems, fmt.Sprintf("shot %s has no embedded bean", shot.ID))
		}
		if !validRoast(shot.Bean.RoastLevel) {
			problems = append(problems, fmt.Sprintf("shot %s embeds unknown roast level %q", shot.ID, shot.Bean.RoastLevel))
		}
	}

	return problems
}

func findOtherCremaProcesses() ([]int, error) {
	procs, err := ps.Processes()
	if err != nil {
		return nil, err
	}

	var pids []int
	self := os.Getpid()
	for _, p := range procs {
		if p.Pid() == self {
			continue
		}
		if strings.HasPrefix(strings.ToLower(p.Executable()), "crema") {
			pids = append(pids, p.Pid())
		}
	}
	return pids, nil
}
