package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/aretw0/satchel/pkg/assistant"
	"github.com/aretw0/satchel/pkg/core"
)

// shellCmd represents the interactive shell
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive assistant shell",
	Long: `Start a read-eval-print loop over the same commands the CLI exposes.
Multi-word fields can be quoted, e.g.:

  add-contact "John Smith" 0501234567 john@example.com "Main St 5" 20.12.1990`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := openService()
		if err != nil {
			fatal("Failed to initialize satchel", err)
		}

		if err := runShell(cmd.Context(), svc, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
			fatal("Shell failed", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

// runShell reads commands line by line until exit/quit or EOF.
// Validation errors are printed and the loop continues; storage errors
// abort the shell.
func runShell(ctx context.Context, svc *assistant.Service, in io.Reader, out io.Writer) error {
	table := make(map[string]command)
	for _, c := range commandTable() {
		table[c.name] = c
	}

	fmt.Fprintln(out, "Welcome to the assistant! Type 'help' for the command list.")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}

		args, err := splitArgs(scanner.Text())
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}
		if len(args) == 0 {
			continue
		}

		name := strings.ToLower(args[0])
		args = args[1:]

		switch name {
		case "exit", "quit":
			fmt.Fprintln(out, "Goodbye!")
			return nil
		case "help":
			printHelp(out, commandTable())
			continue
		}

		c, ok := table[name]
		if !ok {
			fmt.Fprintf(out, "Unknown command '%s'. Type 'help' for the command list.\n", name)
			continue
		}
		if len(args) < c.minArgs || (c.maxArgs >= 0 && len(args) > c.maxArgs) {
			fmt.Fprintf(out, "Usage: %s\n", c.usage)
			continue
		}

		result, err := c.run(ctx, svc, args)
		if err != nil {
			if core.IsUserError(err) {
				fmt.Fprintf(out, "Error: %v\n", err)
				continue
			}
			return err
		}
		fmt.Fprintln(out, result)
	}

	return scanner.Err()
}

func printHelp(out io.Writer, commands []command) {
	fmt.Fprintln(out, "Available commands:")
	for _, c := range commands {
		fmt.Fprintf(out, "  %-55s %s\n", c.usage, c.short)
	}
	fmt.Fprintf(out, "  %-55s %s\n", "help", "Show this message")
	fmt.Fprintf(out, "  %-55s %s\n", "exit | quit", "Leave the shell")
}

// splitArgs splits a command line into whitespace-separated tokens.
// Single or double quotes group multi-word fields; quotes themselves
// are stripped.
func splitArgs(line string) ([]string, error) {
	var (
		args    []string
		current strings.Builder
		quote   rune
		inToken bool
	)

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			inToken = true
		case unicode.IsSpace(r):
			if inToken {
				args = append(args, current.String())
				current.Reset()
				inToken = false
			}
		default:
			current.WriteRune(r)
			inToken = true
		}
	}

	if quote != 0 {
		return nil, fmt.Errorf("unclosed quote in %q", line)
	}
	if inToken {
		args = append(args, current.String())
	}
	return args, nil
}
