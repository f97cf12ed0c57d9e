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
	Register(&ListCmd{})
}

// ListCmd implements the list command.
type ListCmd struct {
	short bool
}

// SetShort sets short mode (for testing).
func (c *ListCmd) SetShort(short bool) {
	c.short = short
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"l"} }
func (c *ListCmd) Synopsis() string  { return "Show the items in a list" }
func (c *ListCmd) Usage() string     { return "todo list [common flags] [--short] <list>" }
func (c *ListCmd) NeedsStore() bool  { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.short, "short", false, "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		fmt.Fprintln(errOut, "error: list name required")
		return exitcode.UserError
	}

	if c.short {
		// Short mode names only the list's own open items.
		l, err := st.Resolve(name)
		if err != nil {
			return fail(errOut, err)
		}
		var open []string
		for _, it := range l.Items {
			if !it.Done {
				open = append(open, it.Name)
			}
		}
		fmt.Fprintln(out, strings.Join(open, ", "))
		return exitcode.Success
	}

	outline, err := st.Outline(name, store.All)
	if err != nil {
		return fail(errOut, err)
	}
	output.RenderOutline(out, outline, time.Now(), true)
	return exitcode.Success
}
