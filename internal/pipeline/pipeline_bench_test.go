package pipeline_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/leonardinius/loxlite/internal/interpreter"
	"github.com/leonardinius/loxlite/internal/loxerrors"
	"github.com/leonardinius/loxlite/internal/pipeline"
)

func BenchmarkScripts(b *testing.B) {
	for _, name := range []string{"precedence", "numbers", "variables", "strings"} {
		source, err := os.ReadFile(filepath.Join("testdata", name+".lox"))
		if err != nil {
			b.Fatalf("read %s: %v", name, err)
		}

		b.Run("cached/"+name, func(b *testing.B) {
			runBenchN(b, string(source))
		})
		b.Run("uncached/"+name, func(b *testing.B) {
			runBenchN(b, string(source), pipeline.WithCacheSize(0))
		})
	}
}

func runBenchN(b *testing.B, source string, options ...pipeline.Option) {
	b.Helper()

	reporter := loxerrors.NewErrReporter(io.Discard)
	p := pipeline.New(
		interpreter.NewInterpreter(
			interpreter.WithStdout(io.Discard),
			interpreter.WithErrorReporter(reporter),
		),
		append([]pipeline.Option{pipeline.WithErrorReporter(reporter)}, options...)...,
	)

	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if _, err := p.Run(ctx, source); err != nil {
			b.Fatal(err)
		}
	}
}
