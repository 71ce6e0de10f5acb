package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/leonardinius/loxlite/internal/log"
)

const (
	appName        = "loxlite"
	appDescription = "A tree-walking interpreter for a small expression language with variables and print."
)

// CLI is the command-line interface of loxlite.
type CLI struct {
	Log     logConfig     `embed:"" group:"log"     prefix:"log-"`
	Profile profileConfig `embed:"" group:"profile" prefix:"profile-"`

	Tokens  bool              `help:"Print the token stream of every run to stderr."`
	AST     string            `default:""               enum:",infix,rpn" help:"Print the parsed statements of every run to stderr (infix or rpn)." name:"ast" placeholder:"FORMAT"`
	Define  map[string]string `help:"Define a global variable before the first run." placeholder:"NAME=VALUE" short:"D"`
	NoCache bool              `help:"Disable the parse cache."`
	History string            `default:"${historyFile}" help:"REPL history file."                                                     type:"path"`

	Script string `arg:"" help:"Script to run. Starts a REPL when omitted." optional:"" type:"path"`
}

func (cli *CLI) vars() kong.Vars {
	return kong.Vars{
		"historyFile": historyFile(),
	}.CloneWith(cli.Profile.vars())
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".loxlite_history")
	}
	return filepath.Join(home, ".loxlite_history")
}

type logConfig struct {
	Level  string `default:"warn" enum:"trace,debug,info,warn,error" help:"Set log level."`
	Format string `default:"text" enum:"text,json"                   help:"Set log format."`
}

func (logConfig) group() kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Logging options"

	return group
}

func (f logConfig) start(ctx context.Context, w io.Writer) {
	log.Config(
		log.WithOutput(w),
		log.WithLevel(log.ParseLevel(f.Level)),
		log.WithFormat(log.ParseFormat(f.Format)),
	)

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", f.Level),
		slog.String("format", f.Format),
	)
}
