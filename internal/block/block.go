package block

import (
	"encoding/binary"
	"fmt"
	"github.com/pdx-cs-rust/parallel/internal/shared/random"
	"github.com/zeebo/xxh3"
	"math"
	"sync"
)

const float64Size = 8

// Block is a fixed-length run of values in [0, 1].
type Block []float64

// Generate draws count values from g, in order.
func Generate(count int, g *random.Local) Block {
	b := make(Block, count)
	for i := range b {
		b[i] = g.Float64()
	}
	return b
}

// MaxMerge replaces every dst[k] with max(dst[k], src[k]).
// Draws never produce NaN, so plain numeric comparison is enough.
func MaxMerge(dst, src Block) {
	if len(dst) != len(src) {
		panic(fmt.Sprintf("block: merge of mismatched lengths %d and %d", len(dst), len(src)))
	}
	for k, v := range src {
		if v > dst[k] {
			dst[k] = v
		}
	}
}

// SizeBytes is the memory footprint of the block values.
func (b Block) SizeBytes() uint64 {
	return Bytes(len(b))
}

// Bytes is the memory footprint of a block of count values.
func Bytes(count int) uint64 {
	return uint64(count) * float64Size
}

var hasherPool = sync.Pool{New: func() any { return xxh3.New() }}

// Fingerprint hashes the IEEE-754 bits of all values.
func (b Block) Fingerprint() uint64 {
	hasher := hasherPool.Get().(*xxh3.Hasher)
	defer hasherPool.Put(hasher)
	hasher.Reset()

	var buf [float64Size * 512]byte
	n := 0
	for _, v := range b {
		binary.LittleEndian.PutUint64(buf[n:], math.Float64bits(v))
		n += float64Size
		if n == len(buf) {
			_, _ = hasher.Write(buf[:n])
			n = 0
		}
	}
	if n > 0 {
		_, _ = hasher.Write(buf[:n])
	}
	return hasher.Sum64()
}
