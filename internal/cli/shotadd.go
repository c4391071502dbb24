package cli

import (
	"fmt"
	"math"

	"github.com/julianstephens/crema/internal/constants"
	"github.com/julianstephens/crema/internal/models"
)

type ShotAddCmd struct {
	Bean  string  `arg:"" help:"Bean id or name."`
	Dose  float64 `short:"d" help:"Dose in grams." required:""`
	Yield float64 `short:"y" help:"Yield in grams." required:""`
	Time  float64 `short:"t" help:"Shot time in seconds." default:"0"`
	Grind float64 `short:"g" help:"Grind setting (1.0-10.0, step 0.5)." default:"5.0"`
	Notes string  `short:"n" help:"Taste notes."`
}

func (c *ShotAddCmd) Validate() error {
	if c.Grind < constants.GrindMin || c.Grind > constants.GrindMax {
		return fmt.Errorf("grind setting must be between %.1f and %.1f", constants.GrindMin, constants.GrindMax)
	}
	if rem := math.Mod(c.Grind, constants.GrindStep); rem > 1e-9 && constants.GrindStep-rem > 1e-9 {
		return fmt.Errorf("grind setting must be a multiple of %.1f", constants.GrindStep)
	}
	return nil
}

func (c *ShotAddCmd) Run(ctx *Context) error {
	beans, shots, err := ctx.Open()
	if err != nil {
		return err
	}

	bean, err := resolveBean(beans, c.Bean)
	if err != nil {
		return err
	}

	shot, err := models.NewShot(bean, c.Grind, c.Dose, c.Yield, c.Time, c.Notes)
	if err != nil {
		return err
	}
	shots.Record(shot)

	fmt.Printf("Recorded shot: %.1fg -> %.1fg (1:%.1f) on %s\n",
		shot.Dose, shot.Yield, shot.ExtractionRatio(), shot.Bean.Name)
	return nil
}
