package main

import (
	"fmt"
	"strings"

	"github.com/irods-contrib/ztools/internal/config"
	"github.com/irods-contrib/ztools/internal/zone"
)

type groupinfoOptions struct {
	Args struct {
		Group string `positional-arg-name:"<group>"`
	} `positional-args:"true" required:"true"`
}

func (opts *groupinfoOptions) Execute(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	client, err := zone.Connect(cfg.API)
	if err != nil {
		return err
	}

	group := opts.Args.Group

	exists, err := client.GroupExists(group)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("group %s does not exist", group)
	}
	if !strings.HasPrefix(group, "research-") {
		return fmt.Errorf("group %s is not a research group", group)
	}

	category, err := client.GroupAttribute(group, "category")
	if err != nil {
		return err
	}
	subcategory, err := client.GroupAttribute(group, "subcategory")
	if err != nil {
		return err
	}

	fmt.Printf("Category: %s\n", category)
	fmt.Printf("Subcategory: %s\n", subcategory)

	return nil
}
