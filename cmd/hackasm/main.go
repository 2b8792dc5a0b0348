// hackasm translates a Hack assembly file into its .hack binary next to
// the input.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"hack/asm"
)

func main() {
	cmd := &cobra.Command{
		Use:          "hackasm <file.asm>",
		Short:        "Assemble Hack assembly into .hack machine code",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
	}
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	binary, err := asm.Assemble(string(src))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	out := strings.TrimSuffix(path, ".asm") + ".hack"
	return os.WriteFile(out, []byte(binary), 0o644)
}
