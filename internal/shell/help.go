package shell

import (
	"fmt"
	"strings"
)

const banner = "🎉 Welcome to the Interactive Task Tracker! 🎉"

// helpText returns the command overview without a trailing newline; the
// formatter adds one.
func helpText() string {
	var sb strings.Builder
	sb.WriteString("\n--- Task Tracker CLI ---\n")
	sb.WriteString("Manage your tasks from the command line.\n")
	sb.WriteString("\nUSAGE:\n")
	sb.WriteString("Enter a command at the prompt. Use quotes for descriptions with spaces.\n")
	sb.WriteString("\nCOMMANDS:\n")
	for _, c := range commands() {
		fmt.Fprintf(&sb, "  %-26s - %s\n", c.usage, c.summary)
	}
	sb.WriteString("\nEXAMPLES:\n")
	sb.WriteString("  > add \"Buy milk\"\n")
	sb.WriteString("  > list todo\n")
	sb.WriteString("  > mark-done 1\n")
	return sb.String()
}

// PrintBanner writes the welcome banner followed by the help text.
func (s *Shell) PrintBanner() {
	s.write(s.out, s.formatter.FormatMessage(banner))
	s.write(s.out, s.formatter.FormatMessage(helpText()))
}
