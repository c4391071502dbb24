package cli

import "fmt"

type BeanDeleteCmd struct {
	Bean string `arg:"" help:"Bean id or name."`
}

func (c *BeanDeleteCmd) Run(ctx *Context) error {
	beans, _, err := ctx.Open()
	if err != nil {
		return err
	}

	bean, err := resolveBean(beans, c.Bean)
	if err != nil {
		return err
	}

	beans.Delete(bean.ID)
	fmt.Printf("Deleted bean: %s\n", bean.Name)
	return nil
}
