package parallel

import (
	"bytes"
	"context"
	"github.com/pdx-cs-rust/parallel/config"
	"github.com/pdx-cs-rust/parallel/internal/strategy"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
	"time"
)

func testCfg(rounds, blockSize int) *config.Harness {
	cfg := &config.Harness{Rounds: rounds, BlockSize: blockSize}
	cfg.AdjustConfig()
	return cfg
}

func lines(s string) []string {
	return strings.Split(strings.TrimSpace(s), "\n")
}

// TestHarness_Run_EveryMode prints one line per unit of work.
func TestHarness_Run_EveryMode(t *testing.T) {
	for _, mode := range strategy.Modes() {
		t.Run(string(mode), func(t *testing.T) {
			var out bytes.Buffer
			h := New(testCfg(4, 256), zerolog.Nop(), &out)

			require.NoError(t, h.Run(context.Background(), mode))
			require.Len(t, lines(out.String()), 4)
			for _, l := range lines(out.String()) {
				require.True(t, strings.HasPrefix(l, "(") && strings.HasSuffix(l, ")"), l)
			}
		})
	}
}

// TestHarness_Run_SameSeedSameOutput makes ordered modes reproducible and comparable.
func TestHarness_Run_SameSeedSameOutput(t *testing.T) {
	run := func(mode Mode) string {
		var out bytes.Buffer
		require.NoError(t, New(testCfg(6, 128), zerolog.Nop(), &out).Run(context.Background(), mode))
		return out.String()
	}

	seq := run(strategy.Sequential)
	require.Equal(t, seq, run(strategy.Sequential))
	require.Equal(t, seq, run(strategy.ForkJoin))
	require.Equal(t, seq, run(strategy.Rayon))
	require.ElementsMatch(t, lines(seq), lines(run(strategy.Channel)))

	require.Equal(t, run(strategy.SequentialPipeline), run(strategy.Pipeline))
}

// TestHarness_Run_UnknownMode fails before any generation.
func TestHarness_Run_UnknownMode(t *testing.T) {
	var out bytes.Buffer
	h := New(testCfg(2, 8), zerolog.Nop(), &out)

	require.ErrorIs(t, h.Run(context.Background(), "threads"), strategy.ErrUnknownMode)
	require.Empty(t, out.String())

	draws, _, blocks, _, _, _ := h.Metrics()
	require.Zero(t, draws)
	require.Zero(t, blocks)
}

// TestHarness_Run_Metrics accumulates counters for a pipeline run.
func TestHarness_Run_Metrics(t *testing.T) {
	h := New(testCfg(3, 16), zerolog.Nop(), &bytes.Buffer{})
	require.NoError(t, h.Run(context.Background(), strategy.Pipeline))

	draws, _, blocks, merges, reductions, handoffs := h.Metrics()
	require.Equal(t, int64(8), draws, "two shared draws per task generator")
	require.Equal(t, int64(4), blocks)
	require.Equal(t, int64(3), merges)
	require.Equal(t, int64(3), reductions)
	require.Equal(t, int64(2), handoffs)
}

// TestHarness_Run_LogsSummary writes the run summary to the diagnostics logger.
func TestHarness_Run_LogsSummary(t *testing.T) {
	var logs, out bytes.Buffer
	cfg := testCfg(2, 32)
	cfg.Telemetry = &config.TelemetryCfg{Interval: time.Millisecond}
	cfg.DataParallel = &config.DataParallelCfg{Workers: 2}
	cfg.AdjustConfig()

	h := New(cfg, zerolog.New(zerolog.SyncWriter(&logs)), &out)
	require.NoError(t, h.Run(context.Background(), strategy.Rayon))

	require.Contains(t, logs.String(), `"message":"run started"`)
	require.Contains(t, logs.String(), `"message":"run finished"`)
	require.Contains(t, logs.String(), `"ok":true`)
	require.NotContains(t, out.String(), "run finished", "results and logs never mix")
}
