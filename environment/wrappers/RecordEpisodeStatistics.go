package wrappers

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/samuelfneumann/gogymnasium/environment"
	ts "github.com/samuelfneumann/gogymnasium/timestep"
)

const (
	// DefaultStatsKey is the info key that episode statistics are
	// recorded under by default
	DefaultStatsKey = "episode"

	// DefaultBufferLength is the default number of recent episodes
	// whose returns and lengths are kept
	DefaultBufferLength = 100
)

// EpisodeStatistics summarizes a finished episode
type EpisodeStatistics struct {
	// Rewards is the sum of rewards over the episode
	Rewards float64

	// Length is the number of steps in the episode
	Length int

	// Time is the wall-clock duration of the episode in seconds
	Time float64
}

// RecordEpisodeStatistics wraps an environment and records the
// cumulative reward, length, and duration of each episode. On the last
// step of an episode, these statistics are added as an
// EpisodeStatistics to the info of the step under the statistics key.
//
// The returns and lengths of the most recent episodes are also kept
// and can be retrieved with ReturnQueue and LengthQueue.
type RecordEpisodeStatistics[O, A any] struct {
	*Wrapper[O, A]

	statsKey     string
	bufferLength int

	episodeStartTime time.Time
	episodeReturns   float64
	episodeLengths   int

	returnQueue []float64
	lengthQueue []int
}

// NewRecordEpisodeStatistics returns a new RecordEpisodeStatistics
// wrapper which records statistics under statsKey. If statsKey is
// empty, DefaultStatsKey is used.
func NewRecordEpisodeStatistics[O, A any](env environment.Environment[O, A],
	statsKey string) (*RecordEpisodeStatistics[O, A], error) {
	return NewRecordEpisodeStatisticsWithBuffer(env, statsKey,
		DefaultBufferLength)
}

// NewRecordEpisodeStatisticsWithBuffer returns a new
// RecordEpisodeStatistics wrapper which keeps the returns and lengths
// of the last bufferLength episodes
func NewRecordEpisodeStatisticsWithBuffer[O, A any](
	env environment.Environment[O, A], statsKey string,
	bufferLength int) (*RecordEpisodeStatistics[O, A], error) {
	if bufferLength <= 0 {
		return nil, fmt.Errorf("newRecordEpisodeStatistics: bufferLength "+
			"must be positive, got %v", bufferLength)
	}
	if statsKey == "" {
		statsKey = DefaultStatsKey
	}

	w, err := New(env)
	if err != nil {
		return nil, fmt.Errorf("newRecordEpisodeStatistics: %w", err)
	}

	return &RecordEpisodeStatistics[O, A]{
		Wrapper:          w,
		statsKey:         statsKey,
		bufferLength:     bufferLength,
		episodeStartTime: time.Now(),
		returnQueue:      make([]float64, 0, bufferLength),
		lengthQueue:      make([]int, 0, bufferLength),
	}, nil
}

// Reset resets the wrapped environment and the episode statistics
func (r *RecordEpisodeStatistics[O, A]) Reset(
	opts environment.Options) (ts.TimeStep[O], error) {
	step, err := r.Env().Reset(opts)
	if err != nil {
		return step, err
	}

	r.episodeStartTime = time.Now()
	r.episodeReturns = 0
	r.episodeLengths = 0
	return step, nil
}

// Step takes one step in the wrapped environment, recording the
// episode statistics if the step ends the episode
func (r *RecordEpisodeStatistics[O, A]) Step(action A) (ts.TimeStep[O],
	error) {
	step, err := r.Env().Step(action)
	if err != nil {
		return step, err
	}

	r.episodeReturns += step.Reward
	r.episodeLengths++

	if !step.Last() {
		return step, nil
	}

	if _, ok := step.Info[r.statsKey]; ok {
		return step, &environment.EnvironmentError{
			Op:  "step",
			Err: fmt.Errorf("%w: %q", ErrStatsKeyExists, r.statsKey),
		}
	}

	elapsed := time.Since(r.episodeStartTime).Seconds()
	stats := EpisodeStatistics{
		Rewards: r.episodeReturns,
		Length:  r.episodeLengths,
		Time:    math.Round(elapsed*1e6) / 1e6,
	}

	info := step.Info.Clone()
	info[r.statsKey] = stats
	step.Info = info

	r.returnQueue = push(r.returnQueue, stats.Rewards, r.bufferLength)
	r.lengthQueue = push(r.lengthQueue, stats.Length, r.bufferLength)

	return step, nil
}

// StatsKey returns the info key that statistics are recorded under
func (r *RecordEpisodeStatistics[O, A]) StatsKey() string {
	return r.statsKey
}

// ReturnQueue returns the returns of the most recent episodes, oldest
// first
func (r *RecordEpisodeStatistics[O, A]) ReturnQueue() []float64 {
	returns := make([]float64, len(r.returnQueue))
	copy(returns, r.returnQueue)
	return returns
}

// LengthQueue returns the lengths of the most recent episodes, oldest
// first
func (r *RecordEpisodeStatistics[O, A]) LengthQueue() []int {
	lengths := make([]int, len(r.lengthQueue))
	copy(lengths, r.lengthQueue)
	return lengths
}

// MeanReturn returns the mean return over the most recent episodes, or
// NaN if no episode has finished
func (r *RecordEpisodeStatistics[O, A]) MeanReturn() float64 {
	if len(r.returnQueue) == 0 {
		return math.NaN()
	}
	return floats.Sum(r.returnQueue) / float64(len(r.returnQueue))
}

func (r *RecordEpisodeStatistics[O, A]) String() string {
	return fmt.Sprintf("RecordEpisodeStatistics(%v)", r.Env())
}

// push appends v to queue, dropping the oldest element if the queue
// would grow beyond length elements
func push[T any](queue []T, v T, length int) []T {
	if len(queue) >= length {
		copy(queue, queue[1:])
		queue = queue[:len(queue)-1]
	}
	return append(queue, v)
}
