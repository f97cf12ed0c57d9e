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
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return []string{"h"} }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "todo help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage: todo <command> ...

  ls   lists                          Show all the lists
  l    list <list> [--short]          Show the items in the specified list
  n    new <name>                     Create a new list
  rl   rmlist [--force] <list>        Delete a list; --force also drops references to it
  rnl  renamelist <old> <new>         Rename a list, updating references to it
  a    add <list> <name...> [date]    Add an item, optionally due dd/mm/yyyy
  rm   remove <list> <item>           Remove an item from a list
  rn   rename <list> <old> <new>      Rename an item
  al   addlist <dest> <src>           Add a reference to list <src> inside <dest>
  ul   unlink <dest> <src>            Remove the reference to <src> from <dest>
  d    done <list> <item>             Mark an item as done
  ud   undone <list> <item>           Mark an item as not done
  da   doneall <list>                 Mark all items in a list as done
  uda  undoneall <list>               Mark all items in a list as not done
  mv   move <src> <item> <dest>       Move an item between lists
  mva  moveall <src> <dest>           Move every item of <src> into <dest>
  ar   autorm <list>                  Remove all done items from a list
  rp   repeat <list> <item> <every>   Repeat an item every N days (Nd, Nw)
       roll                           Un-done repeating items whose day has come
  t    today <list> [--short]         Items with a deadline of today
  w    week <list> [--short]          Items with a deadline within 6 days
  od   overdue <list> [--short]       Open items with a deadline in the past
       help                           Print this message
       version                        Print version

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Append invocation records to the debug log

List and item names may be abbreviated to any prefix that identifies a single
name; an exact match always wins over a longer candidate. The last argument
of a command need not be quoted: trailing words are joined with spaces.
`
