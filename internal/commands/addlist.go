package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/store"
)

func init() {
	Register(&AddListCmd{})
	Register(&UnlinkCmd{})
}

// AddListCmd implements the addlist command: it places a reference to one
// list inside another, so the source's items show up in the destination.
type AddListCmd struct{}

func (c *AddListCmd) Name() string      { return "addlist" }
func (c *AddListCmd) Aliases() []string { return []string{"al"} }
func (c *AddListCmd) Synopsis() string  { return "Reference one list from another" }
func (c *AddListCmd) Usage() string     { return "todo addlist [common flags] <dest> <src>" }
func (c *AddListCmd) NeedsStore() bool  { return true }

func (c *AddListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddListCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(errOut, "error: destination and source list required")
		return exitcode.UserError
	}

	if err := st.AddReference(args[0], args[1]); err != nil {
		return fail(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// UnlinkCmd implements the unlink command, the inverse of addlist.
type UnlinkCmd struct{}

func (c *UnlinkCmd) Name() string      { return "unlink" }
func (c *UnlinkCmd) Aliases() []string { return []string{"ul"} }
func (c *UnlinkCmd) Synopsis() string  { return "Remove a list reference" }
func (c *UnlinkCmd) Usage() string     { return "todo unlink [common flags] <dest> <src>" }
func (c *UnlinkCmd) NeedsStore() bool  { return true }

func (c *UnlinkCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UnlinkCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(errOut, "error: destination and source list required")
		return exitcode.UserError
	}

	if err := st.RemoveReference(args[0], args[1]); err != nil {
		return fail(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
