package progressbar

import (
	"bytes"
	"strings"
	"testing"
)

func TestManualProgressBar(t *testing.T) {
	tests := []struct {
		increments int
		filled     int
		percent    string
	}{
		{0, 0, "0.00%"},
		{1, 3, "25.00%"},
		{2, 5, "50.00%"},
		{4, 10, "100.00%"},
		{9, 10, "100.00%"},
	}

	for _, test := range tests {
		var out bytes.Buffer
		bar, err := NewManualProgressBar(&out, 10, 4)
		if err != nil {
			t.Fatal(err)
		}

		for i := 0; i < test.increments; i++ {
			bar.Increment()
		}

		s := bar.String()
		if filled := strings.Count(s, "█"); filled != test.filled {
			t.Errorf("%v increments: expected %v filled cells, got %v (%q)",
				test.increments, test.filled, filled, s)
		}
		if !strings.Contains(s, test.percent) {
			t.Errorf("%v increments: expected %v in %q", test.increments,
				test.percent, s)
		}

		if err := bar.Display(); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(out.String(), test.percent) {
			t.Errorf("%v increments: expected %v to be displayed, got %q",
				test.increments, test.percent, out.String())
		}
	}

	if _, err := NewManualProgressBar(&bytes.Buffer{}, 0, 1); err == nil {
		t.Error("expected error for zero width")
	}
}
