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
	Register(&NewCmd{})
}

// NewCmd implements the new command.
type NewCmd struct{}

func (c *NewCmd) Name() string      { return "new" }
func (c *NewCmd) Aliases() []string { return []string{"n"} }
func (c *NewCmd) Synopsis() string  { return "Create a new list" }
func (c *NewCmd) Usage() string     { return "todo new [common flags] <name>" }
func (c *NewCmd) NeedsStore() bool  { return true }

func (c *NewCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *NewCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		fmt.Fprintln(errOut, "error: list name required")
		return exitcode.UserError
	}

	if err := st.CreateList(name); err != nil {
		return fail(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
