package strategy

import (
	"github.com/pdx-cs-rust/parallel/internal/shared/random"
	"github.com/rs/zerolog"
	"runtime"
	"testing"
)

const benchRounds, benchBlockSize = 8, 64 * 1024

func benchmarkMode(b *testing.B, mode Mode) {
	s, err := New(mode, Deps{
		Rng:     random.NewShared(random.StdSeed),
		Logger:  zerolog.Nop(),
		Workers: runtime.GOMAXPROCS(0),
	})
	if err != nil {
		b.Fatal(err)
	}

	b.SetBytes(benchRounds * benchBlockSize * 8)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err = s.Run(benchRounds, benchBlockSize); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSequential(b *testing.B)         { benchmarkMode(b, Sequential) }
func BenchmarkForkJoin(b *testing.B)           { benchmarkMode(b, ForkJoin) }
func BenchmarkArc(b *testing.B)                { benchmarkMode(b, Arc) }
func BenchmarkRayon(b *testing.B)              { benchmarkMode(b, Rayon) }
func BenchmarkChannel(b *testing.B)            { benchmarkMode(b, Channel) }
func BenchmarkSequentialPipeline(b *testing.B) { benchmarkMode(b, SequentialPipeline) }
func BenchmarkPipeline(b *testing.B)           { benchmarkMode(b, Pipeline) }
