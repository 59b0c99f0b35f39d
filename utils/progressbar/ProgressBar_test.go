package progressbar

import (
	"bytes"
	"strings"
	"testing"
)

func TestProgressBar(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, "episodes", 10, 4)

	if got := strings.Count(p.String(), "█"); got != 0 {
		t.Errorf("new bar should be empty, has %v blocks", got)
	}

	p.Increment()
	p.Increment()
	if got := strings.Count(p.String(), "█"); got != 5 {
		t.Errorf("half full bar: want 5 blocks, got %v", got)
	}
	if !strings.Contains(p.String(), "[50.00%") {
		t.Errorf("half full bar should report 50%%: %v", p.String())
	}

	// Progress saturates at 100%
	for i := 0; i < 10; i++ {
		p.Increment()
	}
	if p.Progress() != 1.0 {
		t.Errorf("progress: want 1, got %v", p.Progress())
	}

	p.Close()
	out := buf.String()
	if !strings.HasPrefix(strings.TrimLeft(out, "\n\033[1AK"), "episodes |") {
		t.Errorf("output should start with the label: %q", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Errorf("closed bar should end with a newline: %q", out)
	}
}
