package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/store"
)

func init() {
	Register(&AutoRmCmd{})
}

// AutoRmCmd implements the autorm command.
type AutoRmCmd struct{}

func (c *AutoRmCmd) Name() string      { return "autorm" }
func (c *AutoRmCmd) Aliases() []string { return []string{"ar"} }
func (c *AutoRmCmd) Synopsis() string  { return "Remove all done items from a list" }
func (c *AutoRmCmd) Usage() string     { return "todo autorm [common flags] <list>" }
func (c *AutoRmCmd) NeedsStore() bool  { return true }

func (c *AutoRmCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AutoRmCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		fmt.Fprintln(errOut, "error: list name required")
		return exitcode.UserError
	}

	removed, err := st.AutoRemove(name)
	if err != nil {
		return fail(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "removed %d\n", removed)
	}
	return exitcode.Success
}
