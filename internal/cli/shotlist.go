package cli

import (
	"fmt"

	"github.com/julianstephens/crema/internal/models"
)

type ShotListCmd struct {
	Limit int `short:"n" help:"Show only the newest N shots." default:"0"`
}

func (c *ShotListCmd) Run(ctx *Context) error {
	_, shots, err := ctx.Open()
	if err != nil {
		return err
	}

	var list []models.Shot
	if c.Limit > 0 {
		list = shots.Recent(c.Limit)
	} else {
		list = shots.All()
	}

	if len(list) == 0 {
		fmt.Println("No shots recorded")
		return nil
	}

	fmt.Println("Shots (newest first):")
	for _, shot := range list {
		fmt.Printf("  %s\n", formatShot(shot))
	}

	return nil
}
