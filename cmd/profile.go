package cmd

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/pkg/profile"
	"golang.org/x/exp/maps"

	"github.com/leonardinius/loxlite/internal/log"
)

var profileModes = map[string]func(*profile.Profile){
	"block":     profile.BlockProfile,
	"clock":     profile.ClockProfile,
	"cpu":       profile.CPUProfile,
	"goroutine": profile.GoroutineProfile,
	"mem":       profile.MemProfile,
	"allocs":    profile.MemProfileAllocs,
	"heap":      profile.MemProfileHeap,
	"mutex":     profile.MutexProfile,
	"thread":    profile.ThreadcreationProfile,
	"trace":     profile.TraceProfile,
}

type profileConfig struct {
	Mode string `default:""              enum:",${profileModes}" help:"Enable profiling." placeholder:"MODE"`
	Dir  string `default:"${profileDir}" help:"Profile output directory."                 type:"path"`
}

func profileModeNames() []string {
	names := maps.Keys(profileModes)
	slices.Sort(names)
	return names
}

func (profileConfig) vars() kong.Vars {
	return kong.Vars{
		"profileModes": strings.Join(profileModeNames(), ","),
		"profileDir":   filepath.Join(os.TempDir(), appName+"-profile"),
	}
}

func (profileConfig) group() kong.Group {
	var group kong.Group

	group.Key = "profile"
	group.Title = "Profiling (pprof)"

	return group
}

// start starts profiling if a mode is configured.
func (f profileConfig) start(ctx context.Context) (stop func()) {
	mode, ok := profileModes[f.Mode]
	if !ok {
		return func() {}
	}

	log.DebugContext(ctx, "profile start",
		slog.String("mode", f.Mode),
		slog.String("dir", f.Dir),
	)

	p := profile.Start(mode, profile.ProfilePath(f.Dir), profile.Quiet, profile.NoShutdownHook)

	return func() {
		p.Stop()
		log.DebugContext(ctx, "profile stop",
			slog.String("mode", f.Mode),
			slog.String("dir", f.Dir),
		)
	}
}
