package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"babble/internal/ctx"
	"babble/internal/diag"
	"babble/internal/diagfmt"
	"babble/internal/driver"
	"babble/internal/source"
	"babble/internal/version"
)

var extractCmd = &cobra.Command{
	Use:   "extract <fixture.json>",
	Short: "Run compile_and_extract against a fixture-described set of translation units",
	Long: `extract loads a JSON fixture describing translation units and their
binding markers, feeds them through a FakeProvider in place of a real C++
front end, and prints the resulting diagnostics in the requested format.`,
	Args: cobra.ExactArgs(1),
	RunE: extractExecution,
}

func init() {
	extractCmd.Flags().String("ui", "auto", "user interface (auto|on|off)")
	extractCmd.Flags().String("format", "pretty", "diagnostic output format (pretty|json|sarif)")
	extractCmd.Flags().String("path-mode", "auto", "path rendering in diagnostics (auto|absolute|relative|basename)")
	extractCmd.Flags().String("export", "", "write the linked context snapshot (msgpack) to this path")
}

func extractExecution(cmd *cobra.Command, args []string) error {
	fixturePath := args[0]

	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	uiModeValue, err := readUIMode(uiValue)
	if err != nil {
		return err
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	switch format {
	case "pretty", "json", "sarif":
		// supported
	default:
		return fmt.Errorf("unsupported --format %q (must be pretty, json, or sarif)", format)
	}

	pathModeValue, err := cmd.Flags().GetString("path-mode")
	if err != nil {
		return err
	}
	pathMode, err := parsePathMode(pathModeValue)
	if err != nil {
		return err
	}

	exportPath, err := cmd.Flags().GetString("export")
	if err != nil {
		return err
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	colorValue, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}

	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	provider, files, err := loadFixture(fixturePath)
	if err != nil {
		return err
	}

	argv := append(append([]string(nil), files...), "--max-diagnostics", strconv.Itoa(maxDiagnostics))

	useTUI := shouldUseTUI(uiModeValue)
	var res driver.Result
	if useTUI && len(files) > 0 {
		res = runExtractWithUI(cmd.Context(), "bblgen extract", files, argv, provider)
	} else {
		res = driver.CompileAndExtract(cmd.Context(), argv, provider, nil)
	}

	fs := source.NewFileSet()
	for _, f := range files {
		fs.AddVirtual(f, nil)
	}

	if err := renderExtractDiagnostics(cmd, format, res.Bag, fs, pathMode, colorValue); err != nil {
		return err
	}

	if exportPath != "" && res.Context != nil {
		if err := exportContext(res.Context, exportPath); err != nil {
			return err
		}
	}

	if len(res.Errors) > 0 || (res.Bag != nil && res.Bag.HasErrors()) {
		return fmt.Errorf("extraction failed: %d fatal error(s)", len(res.Errors))
	}
	return nil
}

func renderExtractDiagnostics(cmd *cobra.Command, format string, bag *diag.Bag, fs *source.FileSet, pathMode diagfmt.PathMode, colorValue string) error {
	if bag == nil {
		return nil
	}
	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return diagfmt.JSON(out, bag, fs, diagfmt.JSONOpts{IncludePositions: true, PathMode: pathMode, Max: bag.Len()})
	case "sarif":
		return diagfmt.Sarif(out, bag, fs, diagfmt.SarifRunMeta{
			ToolName:       "bblgen",
			ToolVersion:    version.Version,
			InvocationArgs: os.Args[1:],
		})
	default:
		diagfmt.Pretty(out, bag, fs, diagfmt.PrettyOpts{
			Color:     wantsColor(colorValue, cmd.OutOrStdout() == os.Stdout),
			Context:   2,
			PathMode:  pathMode,
			Width:     100,
			ShowNotes: true,
		})
		return nil
	}
}

func wantsColor(value string, isStdout bool) bool {
	switch value {
	case "on":
		return true
	case "off":
		return false
	default:
		return isStdout && isTerminal(os.Stdout)
	}
}

func parsePathMode(value string) (diagfmt.PathMode, error) {
	switch value {
	case "", "auto":
		return diagfmt.PathModeAuto, nil
	case "absolute":
		return diagfmt.PathModeAbsolute, nil
	case "relative":
		return diagfmt.PathModeRelative, nil
	case "basename":
		return diagfmt.PathModeBasename, nil
	default:
		return diagfmt.PathModeAuto, fmt.Errorf("invalid --path-mode value %q", value)
	}
}

func exportContext(c *ctx.Context, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer f.Close()
	if err := c.Export(f); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}
