package engine

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
)

// Seeds identifies a deterministic random stream. Every shuffle and wheel
// spin in the arcade is derived from a (Seeds, nonce) pair, so any recorded
// round can be replayed bit for bit.
type Seeds struct {
	Server string `json:"server"`
	Client string `json:"client"`
}

// NewServerSeed returns a fresh 32-byte server seed as lowercase hex.
func NewServerSeed() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating server seed: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// ServerHash returns the SHA256 hex digest of the server seed. Only the
// hash is ever persisted; the raw seed stays in memory for the session.
func (s Seeds) ServerHash() string {
	if s.Server == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(s.Server))
	return hex.EncodeToString(sum[:])
}

// Stream produces bytes from HMAC-SHA256(serverSeed, "client:nonce:round"),
// 32 bytes per round, and converts groups of 4 bytes into floats in [0, 1).
type Stream struct {
	seeds Seeds
	nonce uint64
	round uint64
	pos   int
	buf   [32]byte
}

// NewStream creates a stream positioned at the given cursor (byte offset).
func NewStream(seeds Seeds, nonce uint64, cursor uint64) *Stream {
	st := &Stream{
		seeds: seeds,
		nonce: nonce,
		round: cursor / 32,
		pos:   int(cursor % 32),
	}
	st.fill()
	return st
}

func (st *Stream) fill() {
	h := hmac.New(sha256.New, []byte(st.seeds.Server))
	fmt.Fprintf(h, "%s:%d:%d", st.seeds.Client, st.nonce, st.round)
	copy(st.buf[:], h.Sum(nil))
}

func (st *Stream) next() byte {
	if st.pos >= len(st.buf) {
		st.round++
		st.pos = 0
		st.fill()
	}
	b := st.buf[st.pos]
	st.pos++
	return b
}

// Float64 consumes exactly 4 bytes and returns a float in [0, 1).
func (st *Stream) Float64() float64 {
	f := 0.0
	for i := 1; i <= 4; i++ {
		f += float64(st.next()) / math.Pow(256, float64(i))
	}
	return f
}

// Intn returns an int in [0, n) using one float. n must be positive.
func (st *Stream) Intn(n int) int {
	if n <= 0 {
		panic("engine: Intn called with non-positive n")
	}
	v := int(math.Floor(st.Float64() * float64(n)))
	if v >= n {
		v = n - 1
	}
	return v
}

// Floats generates count floats for the given seeds, nonce and byte cursor.
func Floats(server, client string, nonce uint64, cursor uint64, count int) []float64 {
	st := NewStream(Seeds{Server: server, Client: client}, nonce, cursor)
	out := make([]float64, count)
	for i := range out {
		out[i] = st.Float64()
	}
	return out
}
