package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jwebster45206/eldritch-assets/pkg/names"
)

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Check a file of asset keys against the server name table",
		Long:  "Check reads one asset key per line. Blank lines and lines starting with # are ignored. Every unknown key is reported before the command fails.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			a.log.Debug("Checking asset keys", "file", filename)

			f, err := os.Open(filename)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", filename, err)
			}
			defer f.Close()

			checked, problems, err := checkKeys(f, a.registry.Lookup())
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", filename, err)
			}

			out := cmd.OutOrStdout()
			if len(problems) > 0 {
				fmt.Fprintf(out, "%s:\n%s\n", filename, strings.Join(problems, "\n"))
				return fmt.Errorf("%d of %d keys in %s are not server names", len(problems), checked, filename)
			}

			fmt.Fprintf(out, "%s: all %d keys are valid\n", filename, checked)
			return nil
		},
	}
}

// checkKeys returns the number of keys read and one message per unknown key.
// Lines have no length limit; an oversized line is reported like any other bad key.
func checkKeys(r io.Reader, l *names.Lookup) (int, []string, error) {
	var problems []string
	checked := 0

	br := bufio.NewReader(r)
	line := 0
	for {
		text, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return checked, problems, readErr
		}
		if readErr == io.EOF && text == "" {
			break
		}
		line++

		key := strings.TrimSpace(text)
		if key != "" && !strings.HasPrefix(key, "#") {
			checked++
			if problem := checkKey(l, line, key); problem != "" {
				problems = append(problems, problem)
			}
		}

		if readErr == io.EOF {
			break
		}
	}
	return checked, problems, nil
}

func checkKey(l *names.Lookup, line int, key string) string {
	if l.Contains(key) {
		return ""
	}
	if name, ok := l.Resolve(key); ok {
		return fmt.Sprintf("  - line %d: %q has the wrong case, expected %q", line, key, name)
	}
	if len(key) > 80 {
		key = key[:77] + "..."
	}
	return fmt.Sprintf("  - line %d: %q is not a known asset", line, key)
}
