// hackdbg single-steps a Hack program. The default mode is a line
// debugger; --tui opens the full-screen interface.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"hack/computer"
)

func main() {
	var romPath string
	var tui bool

	cmd := &cobra.Command{
		Use:          "hackdbg",
		Short:        "Interactive debugger for the Hack computer",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := computer.New(nil, nil)
			if romPath != "" {
				rom, err := computer.LoadRom(romPath)
				if err != nil {
					return fmt.Errorf("couldn't read the ROM file: %w", err)
				}
				c.SetRom(rom)
			}
			c.Tick(true)

			if tui {
				return runTui(c)
			}
			return repl(c, os.Stdin)
		},
	}
	cmd.Flags().StringVarP(&romPath, "rom", "r", "", "Path to a ROM file")
	cmd.Flags().BoolVar(&tui, "tui", false, "Open the full-screen interface")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

const replHelp = `commands:
    help: Show this help
    show: Show the status
    next: Next step
    load: Load the ROM file
    exit: Exit`

func repl(c *computer.Computer, in *os.File) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Printf(" PC = %d > ", c.PC().Uint16())
		if !scanner.Scan() {
			return scanner.Err()
		}
		switch line := strings.TrimSpace(scanner.Text()); line {
		case "help":
			fmt.Println(replHelp)
		case "show":
			fmt.Printf("A: %d, D: %d, M: %d\n", c.A().Uint16(), c.D().Uint16(), c.M().Uint16())
		case "next":
			c.Tick(false)
		case "load":
			fmt.Print("Path to a ROM file > ")
			if !scanner.Scan() {
				return scanner.Err()
			}
			rom, err := computer.LoadRom(strings.TrimSpace(scanner.Text()))
			if err != nil {
				fmt.Fprintf(os.Stderr, "Couldn't read the ROM file (error: %v)\n", err)
				continue
			}
			c.SetRom(rom)
			c.Tick(true)
		case "exit":
			return nil
		default:
			if line != "" {
				fmt.Fprintf(os.Stderr, "Unknown command: %q\n", line)
			}
		}
	}
}
