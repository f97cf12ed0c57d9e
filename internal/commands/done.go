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
	Register(&DoneCmd{})
	Register(&UndoneCmd{})
	Register(&DoneAllCmd{})
	Register(&UndoneAllCmd{})
}

// DoneCmd implements the done command.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return []string{"d"} }
func (c *DoneCmd) Synopsis() string  { return "Mark an item as done" }
func (c *DoneCmd) Usage() string     { return "todo done [common flags] <list> <item>" }
func (c *DoneCmd) NeedsStore() bool  { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	list, item, code := listAndItem(args, errOut)
	if code != exitcode.Success {
		return code
	}

	if err := st.Done(list, item, time.Now()); err != nil {
		return fail(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// UndoneCmd implements the undone command.
type UndoneCmd struct{}

func (c *UndoneCmd) Name() string      { return "undone" }
func (c *UndoneCmd) Aliases() []string { return []string{"ud"} }
func (c *UndoneCmd) Synopsis() string  { return "Mark an item as not done" }
func (c *UndoneCmd) Usage() string     { return "todo undone [common flags] <list> <item>" }
func (c *UndoneCmd) NeedsStore() bool  { return true }

func (c *UndoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UndoneCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	list, item, code := listAndItem(args, errOut)
	if code != exitcode.Success {
		return code
	}

	if err := st.Undone(list, item); err != nil {
		return fail(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// DoneAllCmd implements the doneall command.
type DoneAllCmd struct{}

func (c *DoneAllCmd) Name() string      { return "doneall" }
func (c *DoneAllCmd) Aliases() []string { return []string{"da"} }
func (c *DoneAllCmd) Synopsis() string  { return "Mark all items in a list as done" }
func (c *DoneAllCmd) Usage() string     { return "todo doneall [common flags] <list>" }
func (c *DoneAllCmd) NeedsStore() bool  { return true }

func (c *DoneAllCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneAllCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		fmt.Fprintln(errOut, "error: list name required")
		return exitcode.UserError
	}

	if err := st.DoneAll(name, time.Now()); err != nil {
		return fail(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// UndoneAllCmd implements the undoneall command.
type UndoneAllCmd struct{}

func (c *UndoneAllCmd) Name() string      { return "undoneall" }
func (c *UndoneAllCmd) Aliases() []string { return []string{"uda"} }
func (c *UndoneAllCmd) Synopsis() string  { return "Mark all items in a list as not done" }
func (c *UndoneAllCmd) Usage() string     { return "todo undoneall [common flags] <list>" }
func (c *UndoneAllCmd) NeedsStore() bool  { return true }

func (c *UndoneAllCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UndoneAllCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		fmt.Fprintln(errOut, "error: list name required")
		return exitcode.UserError
	}

	if err := st.UndoneAll(name); err != nil {
		return fail(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// listAndItem splits args into a list name and a trailing item name joined
// from the remaining words.
func listAndItem(args []string, errOut io.Writer) (list, item string, code int) {
	if len(args) < 2 {
		fmt.Fprintln(errOut, "error: list and item name required")
		return "", "", exitcode.UserError
	}
	return args[0], strings.Join(args[1:], " "), exitcode.Success
}
