package driver

import (
	"fmt"
	"strconv"
	"strings"
)

// Options is the parsed form of compile_and_extract's compiler-command-line
// style argv (§6.2). IncludePaths, Defines, and Standard are parsed and
// merged with bblgen.toml defaults but not examined further;
// CompileAndExtract does not hand them to the AST provider.
type Options struct {
	Files          []string
	IncludePaths   []string
	Defines        []string
	Standard       string
	ConfigPath     string
	Jobs           int
	MaxDiagnostics int
}

// ParseArgv parses a compiler-command-line style argument list: repeated
// "-Ipath"/"-I path" and "-Dname"/"-D name", a single "-std=standard",
// "--config path", "--jobs n", "--max-diagnostics n", and trailing
// positional binding-source files.
func ParseArgv(argv []string) (Options, error) {
	opts := Options{MaxDiagnostics: 100}

	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		switch {
		case arg == "-I":
			i++
			if i >= len(argv) {
				return opts, fmt.Errorf("-I: missing argument")
			}
			opts.IncludePaths = append(opts.IncludePaths, argv[i])
		case strings.HasPrefix(arg, "-I") && len(arg) > 2:
			opts.IncludePaths = append(opts.IncludePaths, arg[2:])

		case arg == "-D":
			i++
			if i >= len(argv) {
				return opts, fmt.Errorf("-D: missing argument")
			}
			opts.Defines = append(opts.Defines, argv[i])
		case strings.HasPrefix(arg, "-D") && len(arg) > 2:
			opts.Defines = append(opts.Defines, arg[2:])

		case strings.HasPrefix(arg, "-std="):
			opts.Standard = arg[len("-std="):]

		case arg == "--config":
			i++
			if i >= len(argv) {
				return opts, fmt.Errorf("--config: missing argument")
			}
			opts.ConfigPath = argv[i]

		case arg == "--jobs":
			i++
			if i >= len(argv) {
				return opts, fmt.Errorf("--jobs: missing argument")
			}
			n, err := strconv.Atoi(argv[i])
			if err != nil {
				return opts, fmt.Errorf("--jobs: %w", err)
			}
			opts.Jobs = n

		case arg == "--max-diagnostics":
			i++
			if i >= len(argv) {
				return opts, fmt.Errorf("--max-diagnostics: missing argument")
			}
			n, err := strconv.Atoi(argv[i])
			if err != nil {
				return opts, fmt.Errorf("--max-diagnostics: %w", err)
			}
			opts.MaxDiagnostics = n

		case strings.HasPrefix(arg, "-"):
			return opts, fmt.Errorf("unrecognized option %q", arg)

		default:
			opts.Files = append(opts.Files, arg)
		}
	}

	if len(opts.Files) == 0 {
		return opts, fmt.Errorf("no binding-source files given")
	}
	return opts, nil
}
