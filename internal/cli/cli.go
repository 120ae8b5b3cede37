// Package cli parses voxgen command-line arguments.
package cli

import (
	"errors"
	"fmt"
	"strings"
)

type Command string

const (
	CommandGenerate Command = "generate"
	CommandValidate Command = "validate"
	CommandModels   Command = "models"
	CommandDoctor   Command = "doctor"
	CommandVersion  Command = "version"
	CommandHelp     Command = "help"
)

var validCommands = map[Command]struct{}{
	CommandGenerate: {},
	CommandValidate: {},
	CommandModels:   {},
	CommandDoctor:   {},
	CommandVersion:  {},
	CommandHelp:     {},
}

type Parsed struct {
	Command         Command
	DeclarationPath string
	OutDir          string
	ShowHelp        bool
}

func Parse(args []string) (Parsed, error) {
	parsed := Parsed{Command: CommandHelp, ShowHelp: true}

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch arg {
		case "-h", "--help":
			parsed.ShowHelp = true
			parsed.Command = CommandHelp
		case "--version":
			parsed.ShowHelp = false
			parsed.Command = CommandVersion
		case "--declaration":
			i++
			if i >= len(args) {
				return Parsed{}, errors.New("--declaration requires a path")
			}
			parsed.DeclarationPath = args[i]
		case "--out":
			i++
			if i >= len(args) {
				return Parsed{}, errors.New("--out requires a directory")
			}
			parsed.OutDir = args[i]
		default:
			if strings.HasPrefix(arg, "-") {
				return Parsed{}, fmt.Errorf("unknown flag: %s", arg)
			}

			cmd := Command(arg)
			if _, ok := validCommands[cmd]; !ok {
				return Parsed{}, fmt.Errorf("unknown command: %s", arg)
			}

			parsed.Command = cmd
			parsed.ShowHelp = cmd == CommandHelp
			if i != len(args)-1 {
				return Parsed{}, fmt.Errorf("unexpected arguments after command %q", arg)
			}
		}
	}

	return parsed, nil
}

func HelpText(binaryName string) string {
	return fmt.Sprintf(`Usage:
  %[1]s [--declaration PATH] [--out DIR] <command>

Commands:
  generate  Resolve the declaration and write all artifacts
  validate  Resolve and validate the declaration without writing anything
  models    List the model catalog
  doctor    Run declaration and environment checks
  version   Print version information
  help      Show this help

Flags:
  --declaration PATH  Declaration file (default: $XDG_CONFIG_HOME/voxtype/voxtype.yaml)
  --out DIR           Artifact output directory (default: $XDG_STATE_HOME/voxtype/gen)
  -h, --help          Show help
  --version           Show version
`, binaryName)
}
