package envconfig

import (
	"path/filepath"
	"testing"

	"gorgonia.org/tensor"

	env "github.com/samuelfneumann/gogymnasium/environment"
	"github.com/samuelfneumann/gogymnasium/environment/classiccontrol/cartpole"
	"github.com/samuelfneumann/gogymnasium/environment/wrappers"
	"github.com/samuelfneumann/gogymnasium/utils/floatutils"
)

type inner interface {
	Env() env.Environment[*tensor.Dense, int]
}

func chain(e env.Environment[*tensor.Dense, int]) []string {
	var names []string
	for {
		switch e.(type) {
		case *wrappers.TimeLimit[*tensor.Dense, int]:
			names = append(names, string(TimeLimit))
		case *wrappers.ClipReward[*tensor.Dense, int]:
			names = append(names, string(ClipReward))
		case *wrappers.OrderEnforcing[*tensor.Dense, int]:
			names = append(names, string(OrderEnforcing))
		case *wrappers.RecordEpisodeStatistics[*tensor.Dense, int]:
			names = append(names, string(RecordEpisodeStatistics))
		case *wrappers.Autoreset[*tensor.Dense, int]:
			names = append(names, string(Autoreset))
		case *wrappers.AverageReward[*tensor.Dense, int]:
			names = append(names, string(AverageReward))
		case *cartpole.CartPole:
			return append(names, string(CartPole))
		default:
			return append(names, "unknown")
		}
		e = e.(inner).Env()
	}
}

func TestConfigRoundTrip(t *testing.T) {
	config := Config{
		Environment: CartPole,
		Wrappers: []Wrapper{
			{Name: OrderEnforcing},
			{Name: TimeLimit, MaxEpisodeSteps: 5},
			{Name: ClipReward, MinReward: floatutils.Ptr(0),
				MaxReward: floatutils.Ptr(0.5)},
			{Name: RecordEpisodeStatistics, StatsKey: "stats"},
			{Name: Autoreset},
		},
	}

	filename := filepath.Join(t.TempDir(), "config.json")
	if err := config.Save(filename); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(filename)
	if err != nil {
		t.Fatal(err)
	}

	e, err := loaded.Create(1)
	if err != nil {
		t.Fatal(err)
	}

	// Outermost first
	want := []string{"Autoreset", "RecordEpisodeStatistics", "ClipReward",
		"TimeLimit", "OrderEnforcing", "CartPole"}
	got := chain(e)
	if len(got) != len(want) {
		t.Fatalf("expected wrappers %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected wrappers %v, got %v", want, got)
		}
	}

	if _, ok := e.Unwrapped().(*cartpole.CartPole); !ok {
		t.Errorf("expected unwrapped CartPole, got %T", e.Unwrapped())
	}
	if e.RenderMode() != env.NoRender {
		t.Errorf("expected no render mode, got %q", e.RenderMode())
	}

	if _, err := e.Reset(nil); err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= 5; i++ {
		step, err := e.Step(i % 2)
		if err != nil {
			t.Fatal(err)
		}
		if step.Reward != 0.5 {
			t.Errorf("step %v: expected clipped reward 0.5, got %v", i,
				step.Reward)
		}
		if i < 5 && step.Last() {
			t.Fatalf("episode ended early at step %v", i)
		}
		if i == 5 {
			if !step.Truncated {
				t.Errorf("expected truncation at step 5: %v", step)
			}
			stats, ok := step.Info["stats"].(wrappers.EpisodeStatistics)
			if !ok || stats.Length != 5 || stats.Rewards != 2.5 {
				t.Errorf("expected statistics (2.5, 5), got %v",
					step.Info["stats"])
			}
		}
	}

	// Autoreset
	if step, err := e.Step(0); err != nil || !step.First() {
		t.Errorf("expected autoreset, got %v (%v)", step, err)
	}
}

func TestConfigSeeding(t *testing.T) {
	config := Config{Environment: CartPole}

	observations := make([]*tensor.Dense, 2)
	for i := range observations {
		e, err := config.Create(42)
		if err != nil {
			t.Fatal(err)
		}
		step, err := e.Reset(nil)
		if err != nil {
			t.Fatal(err)
		}
		observations[i] = step.Observation
	}

	a := observations[0].Data().([]float32)
	b := observations[1].Data().([]float32)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("expected equal seeded observations, got %v and %v", a,
				b)
		}
	}
}

func TestConfigInvalid(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{"unknown environment", Config{Environment: "Pong"}},
		{"unknown render mode", Config{Environment: CartPole,
			RenderMode: "ascii"}},
		{"unknown wrapper", Config{Environment: CartPole,
			Wrappers: []Wrapper{{Name: "FrameStack"}}}},
		{"time limit", Config{Environment: CartPole,
			Wrappers: []Wrapper{{Name: TimeLimit}}}},
		{"clip reward", Config{Environment: CartPole,
			Wrappers: []Wrapper{{Name: ClipReward}}}},
		{"average reward", Config{Environment: CartPole,
			Wrappers: []Wrapper{{Name: AverageReward, LearningRate: 2}}}},
	}

	for _, test := range tests {
		if e, err := test.config.Create(0); err == nil || e != nil {
			t.Errorf("%v: expected error, got %v", test.name, e)
		}
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error loading a missing file")
	}
}
