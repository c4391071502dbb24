package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/crema/internal/constants"
	"github.com/julianstephens/crema/internal/models"
)

type BeanAddCmd struct {
	Name      string `arg:"" help:"Bean name."`
	Origin    string `short:"o" help:"Country or region of origin." required:""`
	Roast     string `short:"r" help:"Roast level (light|medium|dark)." default:"medium"`
	RoastDate string `short:"d" help:"Roast date (YYYY-MM-DD), defaults to today."`
}

func (c *BeanAddCmd) Run(ctx *Context) error {
	roast, err := models.ParseRoastLevel(c.Roast)
	if err != nil {
		return err
	}

	roastDate := time.Now()
	if c.RoastDate != "" {
		roastDate, err = time.Parse(constants.DateFormat, c.RoastDate)
		if err != nil {
			return fmt.Errorf("invalid roast date %q, use YYYY-MM-DD", c.RoastDate)
		}
	}

	beans, _, err := ctx.Open()
	if err != nil {
		return err
	}

	bean, err := models.NewBean(c.Name, roast, c.Origin, roastDate)
	if err != nil {
		return err
	}
	beans.Add(bean)

	fmt.Printf("Added bean: %s (ID: %s)\n", bean.Name, bean.ID)
	return nil
}
