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
	Register(&RenameCmd{})
}

// RenameCmd implements the rename command for items.
type RenameCmd struct{}

func (c *RenameCmd) Name() string      { return "rename" }
func (c *RenameCmd) Aliases() []string { return []string{"rn"} }
func (c *RenameCmd) Synopsis() string  { return "Rename an item" }
func (c *RenameCmd) Usage() string     { return "todo rename [common flags] <list> <old> <new...>" }
func (c *RenameCmd) NeedsStore() bool  { return true }

func (c *RenameCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RenameCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	if len(args) < 3 {
		fmt.Fprintln(errOut, "error: list, old and new item names required")
		return exitcode.UserError
	}

	list := args[0]
	old := args[1]
	newName := strings.Join(args[2:], " ")

	if err := st.RenameItem(list, old, newName); err != nil {
		return fail(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
