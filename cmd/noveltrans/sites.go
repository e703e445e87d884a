package main

import (
	"fmt"
	"sort"

	"github.com/mwielbut/noveltrans"
)

// Run executes the sites command.
func (c *SitesCmd) Run(deps *Dependencies) error {
	sets := noveltrans.RuleSets()

	names := make([]string, 0, len(sets))
	for name := range sets {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		rs := sets[name]
		fmt.Fprintf(deps.Stdout, "%s\t%d body selectors\n", name, len(rs.Body))
	}
	return nil
}
