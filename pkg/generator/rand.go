package generator

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
)

// Rand は識別子生成に用いる乱数源。
// ChaCha8を内部に持ち、ミューテックスで保護されるため並行利用できる。
type Rand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRand はcrypto/randでシードしたRandを生成する。
func NewRand() *Rand {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		// crypto/randはGo 1.24以降失敗しない
		panic(err)
	}
	return &Rand{r: rand.New(rand.NewChaCha8(seed))}
}

// NewSeededRand は固定シードのRandを生成する。テストでの再現用。
func NewSeededRand(seed uint64) *Rand {
	var s [32]byte
	binary.LittleEndian.PutUint64(s[:8], seed)
	return &Rand{r: rand.New(rand.NewChaCha8(s))}
}

// IntN は[0, n)の一様乱数を返す。n <= 0 の場合は0を返す。
func (r *Rand) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.r.IntN(n)
}

// Float64 は[0.0, 1.0)の一様乱数を返す。
func (r *Rand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.r.Float64()
}

// Bool は真偽値を等確率で返す。
func (r *Rand) Bool() bool {
	return r.IntN(2) == 1
}

// Read はpを乱数バイトで埋める。io.Readerを実装し、常に成功する。
func (r *Rand) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := 0; i < len(p); i += 8 {
		v := r.r.Uint64()
		for j := 0; j < 8 && i+j < len(p); j++ {
			p[i+j] = byte(v >> (8 * j))
		}
	}
	return len(p), nil
}

// Bytes はn バイトの乱数列を返す。
func (r *Rand) Bytes(n int) []byte {
	b := make([]byte, n)
	_, _ = r.Read(b)
	return b
}

// Digits はn桁の数字列を返す。先頭の0も許容する。
func (r *Rand) Digits(n int) string {
	b := make([]byte, n)
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range b {
		b[i] = byte('0' + r.r.IntN(10))
	}
	return string(b)
}

// Pick はsから一様に1要素を返す。sが空の場合はゼロ値を返す。
func Pick[T any](r *Rand, s []T) T {
	var zero T
	if len(s) == 0 {
		return zero
	}
	return s[r.IntN(len(s))]
}
