package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/store"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"a"} }
func (c *AddCmd) Synopsis() string  { return "Add an item to a list" }
func (c *AddCmd) Usage() string     { return "todo add [common flags] <list> <name...> [date]" }
func (c *AddCmd) NeedsStore() bool  { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	if len(args) < 2 {
		fmt.Fprintln(errOut, "error: list and item name required")
		return exitcode.UserError
	}

	list := args[0]
	rest := args[1:]

	// A trailing dd/mm/yy or dd/mm/yyyy argument is the deadline.
	var due time.Time
	if d, ok := store.ParseUserDate(rest[len(rest)-1]); ok && len(rest) > 1 {
		due = d
		rest = rest[:len(rest)-1]
	}

	name := strings.TrimSpace(strings.Join(rest, " "))
	if name == "" {
		fmt.Fprintln(errOut, "error: item name required")
		return exitcode.UserError
	}

	if err := st.AddItem(list, name, due); err != nil {
		return fail(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
