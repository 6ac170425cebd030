package segment

import "testing"

func TestResolveBidiRunsPureLTR(t *testing.T) {
	runs := ResolveBidiRuns("Hello", false, false)
	if len(runs) != 1 {
		t.Fatalf("len(runs) = %d, want 1", len(runs))
	}
	if runs[0].RTL {
		t.Error("pure ASCII text resolved as RTL")
	}
	if runs[0].Start != 0 || runs[0].End != 5 {
		t.Errorf("run = %+v, want {0,5,false}", runs[0])
	}
}

func TestResolveBidiRunsForceRTL(t *testing.T) {
	runs := ResolveBidiRuns("abc", true, false)
	if len(runs) != 1 || !runs[0].RTL {
		t.Fatalf("runs = %+v, want a single forced-RTL run", runs)
	}
}

func TestResolveBidiRunsEmpty(t *testing.T) {
	if runs := ResolveBidiRuns("", false, false); runs != nil {
		t.Fatalf("runs = %+v, want nil for empty text", runs)
	}
}

func TestResolveBidiRunsMixedDirections(t *testing.T) {
	// Latin + Hebrew + Latin: expect more than one visual run.
	runs := ResolveBidiRuns("abאבcd", false, false)
	if len(runs) < 2 {
		t.Fatalf("len(runs) = %d, want >= 2 for mixed-script text", len(runs))
	}
	var sawRTL bool
	for _, r := range runs {
		if r.RTL {
			sawRTL = true
		}
	}
	if !sawRTL {
		t.Error("expected at least one RTL run for embedded Hebrew text")
	}
}

func TestForceLTRRun(t *testing.T) {
	runs := ForceLTRRun("hello")
	if len(runs) != 1 || runs[0].RTL || runs[0].Start != 0 || runs[0].End != 5 {
		t.Fatalf("runs = %+v, want a single forced-LTR run of length 5", runs)
	}
	if runs := ForceLTRRun(""); runs != nil {
		t.Fatalf("runs = %+v, want nil for empty text", runs)
	}
}
