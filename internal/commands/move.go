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
	Register(&MoveCmd{})
	Register(&MoveAllCmd{})
}

// MoveCmd implements the move command.
type MoveCmd struct{}

func (c *MoveCmd) Name() string      { return "move" }
func (c *MoveCmd) Aliases() []string { return []string{"mv", "m"} }
func (c *MoveCmd) Synopsis() string  { return "Move an item to another list" }
func (c *MoveCmd) Usage() string     { return "todo move [common flags] <src> <item> <dest>" }
func (c *MoveCmd) NeedsStore() bool  { return true }

func (c *MoveCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *MoveCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	if len(args) < 3 {
		fmt.Fprintln(errOut, "error: source list, item and destination list required")
		return exitcode.UserError
	}

	src := args[0]
	item := args[1]
	dest := strings.Join(args[2:], " ")

	if err := st.Move(src, item, dest); err != nil {
		return fail(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// MoveAllCmd implements the moveall command. Only the source's own items
// move; its references stay where they are.
type MoveAllCmd struct{}

func (c *MoveAllCmd) Name() string      { return "moveall" }
func (c *MoveAllCmd) Aliases() []string { return []string{"mva", "mvall", "ma"} }
func (c *MoveAllCmd) Synopsis() string  { return "Move every item of a list into another" }
func (c *MoveAllCmd) Usage() string     { return "todo moveall [common flags] <src> <dest>" }
func (c *MoveAllCmd) NeedsStore() bool  { return true }

func (c *MoveAllCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *MoveAllCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	if len(args) < 2 {
		fmt.Fprintln(errOut, "error: source and destination list required")
		return exitcode.UserError
	}

	src := args[0]
	dest := strings.Join(args[1:], " ")

	if err := st.MoveAll(src, dest); err != nil {
		return fail(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
