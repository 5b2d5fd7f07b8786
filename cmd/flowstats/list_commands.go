// cmd/flowstats/list_commands.go
package flowstats

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// commandsCmd implements 'list commands'.
var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "Show the command tree with arguments and descriptions",
	Long:  `The 'commands' subcommand prints every available flowstats command, indented by depth, together with the positional arguments it takes and its short description.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printCommandTree(cmd.OutOrStdout(), rootCmd)
	},
}

func init() {
	listCmd.AddCommand(commandsCmd)
}

// commandEntry is one line of the command tree.
type commandEntry struct {
	depth int
	path  string // full command path, e.g. "flowstats list files"
	args  string // positional arguments from the Use line, e.g. "<trials>"
	short string
}

// usageArgs returns what follows the command name in its Use line.
func usageArgs(cmd *cobra.Command) string {
	_, rest, _ := strings.Cut(cmd.Use, " ")
	return strings.TrimSpace(rest)
}

// commandEntries flattens the tree below cmd in depth-first order.
// Hidden, deprecated and help commands are left out.
func commandEntries(cmd *cobra.Command, depth int) []commandEntry {
	entries := []commandEntry{{
		depth: depth,
		path:  cmd.CommandPath(),
		args:  usageArgs(cmd),
		short: cmd.Short,
	}}
	for _, sub := range cmd.Commands() {
		if sub.IsAvailableCommand() {
			entries = append(entries, commandEntries(sub, depth+1)...)
		}
	}
	return entries
}

func printCommandTree(w io.Writer, root *cobra.Command) {
	entries := commandEntries(root, 0)

	width := 0
	for _, e := range entries {
		width = max(width, 2*e.depth+lipgloss.Width(e.path+" "+e.args))
	}
	pathStyle := lipgloss.NewStyle().Width(width + 2)
	argStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	descStyle := lipgloss.NewStyle().Faint(true)

	fmt.Fprintln(w, lipgloss.NewStyle().Bold(true).Render("Commands:"))
	for _, e := range entries {
		left := strings.Repeat("  ", e.depth) + e.path
		if e.args != "" {
			left += " " + argStyle.Render(e.args)
		}
		fmt.Fprintf(w, "  %s%s\n", pathStyle.Render(left), descStyle.Render(e.short))
	}
}
