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
	"todo/internal/output"
	"todo/internal/store"
)

func init() {
	Register(&TodayCmd{})
	Register(&WeekCmd{})
	Register(&OverdueCmd{})
}

// deadlineCmd is the shared implementation for today, week and overdue:
// filter a list's effective items by a date predicate and either render the
// outline or print the count.
type deadlineCmd struct {
	short bool
}

func (c *deadlineCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.short, "short", false, "")
}

// SetShort sets short mode (for testing).
func (c *deadlineCmd) SetShort(short bool) {
	c.short = short
}

func (c *deadlineCmd) run(st *store.Store, args []string, pred store.Predicate, description string, out, errOut io.Writer) int {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		fmt.Fprintln(errOut, "error: list name required")
		return exitcode.UserError
	}

	if c.short {
		n, err := st.Count(name, pred)
		if err != nil {
			return fail(errOut, err)
		}
		output.FormatDeadlineCount(out, n, description)
		return exitcode.Success
	}

	outline, err := st.Outline(name, pred)
	if err != nil {
		return fail(errOut, err)
	}
	output.RenderOutline(out, outline, time.Now(), true)
	return exitcode.Success
}

// TodayCmd implements the today command.
type TodayCmd struct {
	deadlineCmd
}

func (c *TodayCmd) Name() string      { return "today" }
func (c *TodayCmd) Aliases() []string { return []string{"t"} }
func (c *TodayCmd) Synopsis() string  { return "Items with a deadline of today" }
func (c *TodayCmd) Usage() string     { return "todo today [common flags] [--short] <list>" }
func (c *TodayCmd) NeedsStore() bool  { return true }

func (c *TodayCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	return c.run(st, args, store.DueToday(time.Now()), "today", out, errOut)
}

// WeekCmd implements the week command.
type WeekCmd struct {
	deadlineCmd
}

func (c *WeekCmd) Name() string      { return "week" }
func (c *WeekCmd) Aliases() []string { return []string{"w"} }
func (c *WeekCmd) Synopsis() string  { return "Items with a deadline within six days" }
func (c *WeekCmd) Usage() string     { return "todo week [common flags] [--short] <list>" }
func (c *WeekCmd) NeedsStore() bool  { return true }

func (c *WeekCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	return c.run(st, args, store.DueThisWeek(time.Now()), "this week", out, errOut)
}

// OverdueCmd implements the overdue command.
type OverdueCmd struct {
	deadlineCmd
}

func (c *OverdueCmd) Name() string      { return "overdue" }
func (c *OverdueCmd) Aliases() []string { return []string{"od"} }
func (c *OverdueCmd) Synopsis() string  { return "Open items with a deadline in the past" }
func (c *OverdueCmd) Usage() string     { return "todo overdue [common flags] [--short] <list>" }
func (c *OverdueCmd) NeedsStore() bool  { return true }

func (c *OverdueCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	return c.run(st, args, store.Overdue(time.Now()), "overdue", out, errOut)
}
