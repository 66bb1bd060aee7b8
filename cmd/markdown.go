package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders a markdown document to the terminal. When the
// renderer cannot be used the raw markdown is printed instead.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// terminalConfirmer asks yes/no questions on the terminal. It implements
// sellergrid.Confirmer.
type terminalConfirmer struct{}

func (terminalConfirmer) Confirm(prompt string) (bool, error) {
	fmt.Printf("%s [y/N] ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("cannot read answer: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// autoConfirmer answers yes without asking, for the -y flag.
type autoConfirmer struct{}

func (autoConfirmer) Confirm(string) (bool, error) { return true, nil }

// confirmAction guards a destructive operation: it prompts unless yes is
// already set, and a decline means no-op.
func confirmAction(prompt string, yes bool) bool {
	if yes {
		return true
	}
	ok, err := terminalConfirmer{}.Confirm(prompt)
	if err != nil {
		return false
	}
	return ok
}
