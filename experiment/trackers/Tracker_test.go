package trackers

import (
	"path/filepath"
	"testing"

	"github.com/samuelfneumann/gogymnasium/environment/wrappers"
	ts "github.com/samuelfneumann/gogymnasium/timestep"
)

// episode returns the timesteps of an episode with the given rewards,
// the last of which is terminal. If info is not nil, it is attached to
// the last timestep.
func episode(rewards []float64, info ts.Info) []ts.TimeStep[int] {
	steps := []ts.TimeStep[int]{ts.New(0, nil)}
	for i, r := range rewards {
		last := i == len(rewards)-1
		var stepInfo ts.Info
		if last {
			stepInfo = info
		}
		steps = append(steps, ts.Next(steps[len(steps)-1], i+1, r, last,
			false, stepInfo))
	}
	return steps
}

func track(t Tracker[int], episodes ...[]ts.TimeStep[int]) {
	for _, steps := range episodes {
		for _, step := range steps {
			t.Track(step)
		}
	}
}

func equal(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTrackers(t *testing.T) {
	stats := ts.Info{"episode": wrappers.EpisodeStatistics{Rewards: 10,
		Length: 7}}

	tests := []struct {
		name     string
		statsKey string
		returns  []float64
		lengths  []float64
	}{
		{"rewards", "", []float64{3, -1, 6}, []float64{2, 1, 3}},
		{"statistics", "episode", []float64{3, -1, 10}, []float64{2, 1, 7}},
		{"missing statistics", "stats", []float64{3, -1, 6},
			[]float64{2, 1, 3}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			episodes := [][]ts.TimeStep[int]{
				episode([]float64{1, 2}, nil),
				episode([]float64{-1}, nil),
				episode([]float64{1, 2, 3}, stats),
			}

			ret := NewReturn[int]("", test.statsKey)
			length := NewEpisodeLength[int]("", test.statsKey)
			track(ret, episodes...)
			track(length, episodes...)

			if got := ret.Data(); !equal(got, test.returns) {
				t.Errorf("expected returns %v, got %v", test.returns, got)
			}
			if got := length.Data(); !equal(got, test.lengths) {
				t.Errorf("expected lengths %v, got %v", test.lengths, got)
			}
		})
	}
}

func TestReturnUnfinishedEpisode(t *testing.T) {
	ret := NewReturn[int]("", "")
	steps := episode([]float64{1, 2, 3}, nil)
	track(ret, steps[:len(steps)-1], episode([]float64{4}, nil))

	if got := ret.Data(); !equal(got, []float64{4}) {
		t.Errorf("expected returns [4], got %v", got)
	}
}

func TestReturnNonSequential(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for non-sequential timesteps")
		}
	}()

	ret := NewReturn[int]("", "")
	steps := episode([]float64{1, 2, 3}, nil)
	ret.Track(steps[0])
	ret.Track(steps[2])
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	retFile := filepath.Join(dir, "returns.gob")
	lengthFile := filepath.Join(dir, "lengths.gob")

	ret := NewReturn[int](retFile, "")
	length := NewEpisodeLength[int](lengthFile, "")
	for _, tracker := range []Tracker[int]{ret, length} {
		track(tracker, episode([]float64{1, 1}, nil),
			episode([]float64{0.5}, nil))
		if err := tracker.Save(); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		filename string
		want     []float64
	}{
		{retFile, []float64{2, 0.5}},
		{lengthFile, []float64{2, 1}},
	}
	for _, test := range tests {
		data, err := LoadData(test.filename)
		if err != nil {
			t.Fatal(err)
		}
		if !equal(data, test.want) {
			t.Errorf("%v: expected %v, got %v", test.filename, test.want, data)
		}
	}

	if _, err := LoadData(filepath.Join(dir, "missing.gob")); err == nil {
		t.Error("expected error loading a missing file")
	}
	if err := NewReturn[int]("", "").Save(); err != nil {
		t.Errorf("expected in-memory tracker to save nothing, got %v", err)
	}
}
