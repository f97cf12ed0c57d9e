package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/store"
)

func init() {
	Register(&RepeatCmd{})
	Register(&RollCmd{})
}

// RepeatCmd implements the repeat command.
type RepeatCmd struct{}

func (c *RepeatCmd) Name() string      { return "repeat" }
func (c *RepeatCmd) Aliases() []string { return []string{"rp"} }
func (c *RepeatCmd) Synopsis() string  { return "Repeat an item every N days" }
func (c *RepeatCmd) Usage() string     { return "todo repeat [common flags] <list> <item> <every>" }
func (c *RepeatCmd) NeedsStore() bool  { return true }

func (c *RepeatCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RepeatCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	if len(args) < 3 {
		fmt.Fprintln(errOut, "error: list, item and interval required")
		return exitcode.UserError
	}

	list := args[0]
	item := strings.Join(args[1:len(args)-1], " ")
	days, ok := parseInterval(args[len(args)-1])
	if !ok {
		fmt.Fprintf(errOut, "error: invalid interval: %s\n", args[len(args)-1])
		return exitcode.UserError
	}

	if err := st.Repeat(list, item, days, time.Now()); err != nil {
		return fail(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// parseInterval reads an interval in days: "7", "7d" or "2w".
func parseInterval(s string) (int, bool) {
	mult := 1
	switch {
	case strings.HasSuffix(s, "d"):
		s = strings.TrimSuffix(s, "d")
	case strings.HasSuffix(s, "w"):
		s = strings.TrimSuffix(s, "w")
		mult = 7
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n * mult, true
}

// RollCmd implements the roll command: the daily pass that un-dones
// repeating items whose repeat day has arrived.
type RollCmd struct{}

func (c *RollCmd) Name() string      { return "roll" }
func (c *RollCmd) Aliases() []string { return nil }
func (c *RollCmd) Synopsis() string  { return "Un-done repeating items whose day has come" }
func (c *RollCmd) Usage() string     { return "todo roll [common flags]" }
func (c *RollCmd) NeedsStore() bool  { return true }

func (c *RollCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RollCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	rolled := st.TickAll(time.Now())
	if !cfg.Quiet {
		fmt.Fprintf(out, "rolled %d\n", rolled)
	}
	return exitcode.Success
}
