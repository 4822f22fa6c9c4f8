package wrappers

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/samplemv"
	"gorgonia.org/tensor"

	"github.com/samuelfneumann/gogymnasium/environment"
	"github.com/samuelfneumann/gogymnasium/spaces"
	"github.com/samuelfneumann/gogymnasium/utils/intutils"
	"github.com/samuelfneumann/gogymnasium/utils/tensorutils"
)

// Controls tiling offsets. For each dimension, tilings are offset by
// randomly sampling from a uniform distribution with support
// [- tiling width/OffsetDiv, tiling width/OffsetDiv]
const OffsetDiv float64 = 1.5

// TileCoder implements functionality for tile coding a vector. Tile
// coding takes a low-dimensional vector and changes it into a large,
// sparse vector consisting of only 0's and 1's. Each 1 represents the
// coordinates of the original vector in some space of tilings. For
// example:
//
//	[0.5, 0.1] -> [0, 0, 0, 1, 0, 0, 1, 0]
//
// The number of nonzero elements in the tile-coded representation equals
// the number of tilings used to encode the vector. The number of total
// features in the tile-coded representation is the number of tilings
// times the number of tiles per tiling. Tile coding requires that the
// space to be tiled be bounded.
//
// This implementation of tile coding uses dense tilings over the entire
// space. That is, each dimension is fully tiled, and hash-based tile
// coding is not used. Each tiling consists of the same number of tiles.
type TileCoder struct {
	numTilings        int
	minDims           []float64
	offsets           []*mat.Dense
	bins              []int
	binLengths        []float64
	featuresPerTiling int
}

// NewTileCoder creates and returns a new TileCoder. The minDims and
// maxDims arguments are the bounds on each dimension between which
// tilings will be placed. The bins argument determines how many tiles
// are placed (per tiling) along each dimension.
func NewTileCoder(numTilings int, minDims, maxDims []float64, bins []int,
	seed uint64) (*TileCoder, error) {
	if numTilings <= 0 {
		return nil, fmt.Errorf("newTileCoder: numTilings must be positive")
	}
	if len(minDims) != len(maxDims) || len(minDims) != len(bins) {
		return nil, fmt.Errorf("newTileCoder: minDims, maxDims, and bins "+
			"must have the same length (%v, %v, %v)", len(minDims),
			len(maxDims), len(bins))
	}

	// Calculate the length of bins and the tiling offset bounds
	bounds := make([]r1.Interval, len(bins))
	binLengths := make([]float64, len(bins))
	for i := range bins {
		if bins[i] <= 0 {
			return nil, fmt.Errorf("newTileCoder: bins must be positive, "+
				"got %v", bins)
		}
		if math.IsInf(minDims[i], 0) || math.IsInf(maxDims[i], 0) ||
			minDims[i] >= maxDims[i] {
			return nil, fmt.Errorf("newTileCoder: dimension %v is not "+
				"bounded: [%v, %v]", i, minDims[i], maxDims[i])
		}

		binLength := (maxDims[i] - minDims[i]) / float64(bins[i])
		bound := binLength / OffsetDiv // Bounds tiling offsets

		binLengths[i] = binLength
		bounds[i] = r1.Interval{Min: -bound, Max: bound}
	}

	// Create RNG for uniform sampling of tiling offsets
	source := rand.NewSource(seed)
	u := distmv.NewUniform(bounds, source)
	sampler := samplemv.IID{Dist: u}

	// Calculate offsets
	offsets := make([]*mat.Dense, numTilings)
	for i := range offsets {
		samples := mat.NewDense(1, len(bounds), nil)
		sampler.Sample(samples)
		offsets[i] = samples
	}

	min := make([]float64, len(minDims))
	copy(min, minDims)
	b := make([]int, len(bins))
	copy(b, bins)

	return &TileCoder{
		numTilings:        numTilings,
		minDims:           min,
		offsets:           offsets,
		bins:              b,
		binLengths:        binLengths,
		featuresPerTiling: intutils.Prod(bins...),
	}, nil
}

// Encode returns the tile-coded representation of v
func (t *TileCoder) Encode(v []float64) []float64 {
	tileCoded := make([]float64, t.VecLength())

	for j := 0; j < t.numTilings; j++ {
		indexOffset := j * t.featuresPerTiling
		index := 0

		for i := len(t.bins) - 1; i > -1; i-- {
			// Offset the tiling
			data := v[i] + t.offsets[j].At(0, i)

			tile := math.Floor((data - t.minDims[i]) / t.binLengths[i])

			// Clip tile to within tiling bounds
			tile = math.Min(tile, float64(t.bins[i]-1))
			tile = math.Max(tile, 0)

			// Row-major index of the tile within the tiling
			index += int(tile) * stride(t.bins, i)
		}
		tileCoded[indexOffset+index] = 1.0
	}
	return tileCoded
}

// VecLength returns the length of tile-coded vectors
func (t *TileCoder) VecLength() int {
	return t.numTilings * t.featuresPerTiling
}

// TileCoding wraps an environment with bounded Box observations and
// returns the tile-coded representation of each observation. The
// observation space of the wrapper is a MultiBinary space with one
// element per feature of the tile-coded representation.
type TileCoding[A any] struct {
	*ObservationWrapper[*tensor.Dense, A]
	coder *TileCoder
}

// NewTileCoding creates and returns a new TileCoding wrapper which
// tile codes observations with numTilings tilings, each with bins[i]
// tiles along observation dimension i.
func NewTileCoding[A any](env environment.Environment[*tensor.Dense, A],
	numTilings int, bins []int, seed uint64) (*TileCoding[A], error) {
	if env == nil {
		return nil, fmt.Errorf("newTileCoding: %w", ErrNilEnv)
	}
	box, ok := env.ObservationSpace().(*spaces.Box)
	if !ok || len(box.Shape()) != 1 {
		return nil, fmt.Errorf("newTileCoding: expected a one-dimensional "+
			"Box observation space, got %v", env.ObservationSpace())
	}

	coder, err := NewTileCoder(numTilings, box.Low(), box.High(), bins, seed)
	if err != nil {
		return nil, fmt.Errorf("newTileCoding: %w", err)
	}

	space, err := spaces.NewMultiBinary(coder.VecLength())
	if err != nil {
		return nil, fmt.Errorf("newTileCoding: %w", err)
	}

	t := &TileCoding[A]{coder: coder}
	t.ObservationWrapper, err = TransformObservation(env, t.encode,
		spaces.Of[*tensor.Dense](space))
	if err != nil {
		return nil, fmt.Errorf("newTileCoding: %w", err)
	}
	return t, nil
}

func (t *TileCoding[A]) encode(obs *tensor.Dense) *tensor.Dense {
	data, ok := tensorutils.Float64s(obs)
	if !ok {
		panic(fmt.Sprintf("encode: cannot tile code observation %v", obs))
	}

	encoded, err := tensorutils.New(tensor.Int8, []int{t.coder.VecLength()},
		t.coder.Encode(data))
	if err != nil {
		panic(fmt.Sprintf("encode: %v", err))
	}
	return encoded
}

// String returns a string representation of the TileCoding environment
func (t *TileCoding[A]) String() string {
	return fmt.Sprintf("TileCoding(%v)", t.Env())
}

// stride returns the number of tiles spanned by one step along
// dimension i of a tiling
func stride(bins []int, i int) int {
	return intutils.Prod(bins[i+1:]...)
}
