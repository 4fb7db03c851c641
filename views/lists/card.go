package lists

import (
	"fmt"
	"placelists/gen/placelists_dev/public/model"
)

type CardProps struct {
	List        model.Lists
	EditingName bool
}

func (c CardProps) EditListUrl() string {
	return fmt.Sprintf("/app/lists/%d/edit", c.List.ID)
}

func (c CardProps) PatchUrl() string {
	return fmt.Sprintf("/app/lists/%d", c.List.ID)
}

func (c CardProps) DeleteUrl() string {
	return fmt.Sprintf("/app/lists/%d", c.List.ID)
}

func (c CardProps) Id() string {
	return fmt.Sprintf("card-%d", c.List.ID)
}

func (c CardProps) Selector() string {
	return fmt.Sprintf("#card-%d", c.List.ID)
}
