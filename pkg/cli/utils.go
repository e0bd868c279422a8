package cli

import (
	"slices"

	"github.com/urfave/cli/v3"
)

// joinFlags merges the flag sets of several config sections
func joinFlags(flags ...[]cli.Flag) []cli.Flag {
	return slices.Concat(flags...)
}
