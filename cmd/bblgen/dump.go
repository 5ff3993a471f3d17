package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"babble/internal/ctx"
	"babble/internal/ir"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <snapshot.msgpack>",
	Short: "Print a previously exported context snapshot in textual form",
	Long: `dump decodes a context snapshot written by "extract --export" and
renders it through the same deterministic printer the round-trip tests
check against — useful for inspecting a binding extraction without
regenerating it.`,
	Args: cobra.ExactArgs(1),
	RunE: dumpExecution,
}

func dumpExecution(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("dump: %w", err)
	}
	defer f.Close()

	snap, err := ctx.ImportSnapshot(f)
	if err != nil {
		return fmt.Errorf("dump: %w", err)
	}

	out := cmd.OutOrStdout()
	p := ir.NewPrinter(out)

	for _, m := range snap.Modules {
		p.PrintModule(m)
	}
	for _, c := range snap.Classes {
		p.PrintClass(c)
	}
	for _, m := range snap.Methods {
		p.PrintMethod(m)
	}
	for _, ctor := range snap.Constructors {
		p.PrintConstructor(ctor)
	}
	for _, e := range snap.Enums {
		p.PrintEnum(e)
	}
	for _, sf := range snap.StdFunctions {
		p.PrintStdFunction(sf)
	}
	for _, fn := range snap.Functions {
		p.PrintFunction(fn)
	}

	fmt.Fprintf(out, "\n%d classes, %d methods, %d constructors, %d functions, %d std functions, %d enums, %d modules\n",
		len(snap.Classes), len(snap.Methods), len(snap.Constructors), len(snap.Functions),
		len(snap.StdFunctions), len(snap.Enums), len(snap.Modules))
	return nil
}
