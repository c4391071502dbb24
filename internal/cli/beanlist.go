package cli

import (
	"fmt"
	"time"
)

type BeanListCmd struct {
	IDs bool `help:"Show bean ids."`
}

func (c *BeanListCmd) Run(ctx *Context) error {
	beans, _, err := ctx.Open()
	if err != nil {
		return err
	}

	all := beans.All()
	if len(all) == 0 {
		fmt.Println("No beans found")
		return nil
	}

	now := time.Now()
	fmt.Println("Beans:")
	for _, bean := range all {
		fmt.Printf("  %s\n", formatBean(bean, now))
		if c.IDs {
			fmt.Printf("      ID: %s\n", bean.ID)
		}
	}

	return nil
}
