// Package sampler produces the deterministic pseudo-random point stream
// the roadmap builder samples its vertices from.
//
// The stream is driven by a ChaCha20 keystream keyed with the
// configuration's 32-byte seed, a CSPRNG-backed analogue of a ChaCha8Rng
// point generator. Go has no ChaCha8-specific RNG in the standard library
// or in this module's dependency set, so we build the uniform-float
// generator directly on top of golang.org/x/crypto/chacha20's keystream,
// which gives the property that determinism depends on: identical seed
// => identical byte stream => identical point sequence.
package sampler

import (
	"encoding/binary"
	"math"

	"golang.org/x/crypto/chacha20"

	"github.com/katalvlaran/dynaprm/geom"
)

// streamNonce is fixed and shared by every Stream: determinism comes
// entirely from the 32-byte seed, so the nonce only needs to satisfy
// chacha20's size requirement.
var streamNonce = [chacha20.NonceSize]byte{}

// Stream draws a deterministic sequence of geom.Points uniformly
// distributed over [0,width) x [0,height), seeded by a 32-byte key.
type Stream struct {
	cipher *chacha20.Cipher
	width  float64
	height float64
}

// NewStream constructs a Stream keyed by seed. Construction never fails
// for a well-formed 32-byte seed; chacha20.NewUnauthenticatedCipher only
// errors on malformed key/nonce lengths, which cannot happen here since
// both are compile-time sized arrays.
func NewStream(seed [32]byte, width, height float64) *Stream {
	cipher, err := chacha20.NewUnauthenticatedCipher(seed[:], streamNonce[:])
	if err != nil {
		// Unreachable: seed and nonce are always correctly sized.
		panic(err)
	}

	return &Stream{cipher: cipher, width: width, height: height}
}

// next01 draws the next 8 keystream bytes and returns a double with 53
// bits of uniformly distributed mantissa in [0,1), the standard technique
// for turning a uniform random 64-bit word into a uniform float64.
func (s *Stream) next01() float64 {
	var buf [8]byte
	s.cipher.XORKeyStream(buf[:], buf[:])
	bits := binary.LittleEndian.Uint64(buf[:]) >> 11 // top 53 bits

	return float64(bits) / float64(uint64(1)<<53)
}

// Next draws the next Point in the stream.
// Complexity: O(1).
func (s *Stream) Next() geom.Point {
	x := clampUnit(s.next01()*s.width, s.width)
	y := clampUnit(s.next01()*s.height, s.height)

	return geom.Point{X: x, Y: y}
}

// Generate produces the first n points of the deterministic stream seeded
// by seed over [0,width) x [0,height). Independent calls with identical
// arguments always return identical slices, which is what lets multiple
// roadmap-builder workers each regenerate the full point stream from
// scratch and still agree byte-for-byte.
// Complexity: O(n).
func Generate(seed [32]byte, width, height float64, n int) []geom.Point {
	st := NewStream(seed, width, height)
	pts := make([]geom.Point, n)
	for i := 0; i < n; i++ {
		pts[i] = st.Next()
	}

	return pts
}

// clampUnit guards against floating point rounding pushing a draw to
// exactly 1.0 * width/height, which would place a point on the rectangle's
// open upper boundary of the half-open sampling domain. In practice
// next01's 53-bit mantissa keeps results in [0,1) mathematically, but we
// clamp defensively since a point landing exactly on width/height would
// violate the half-open contract consumers rely on (e.g. grid-edge
// obstacle tests).
func clampUnit(v, bound float64) float64 {
	if v >= bound {
		return math.Nextafter(bound, 0)
	}

	return v
}
