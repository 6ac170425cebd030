package segment

import (
	"testing"

	"github.com/go-text/typesetting/language"
)

func TestScriptRunsSingleScript(t *testing.T) {
	runes := []rune("hello")
	runs := ScriptRuns(runes, 0, len(runes))
	if len(runs) != 1 {
		t.Fatalf("len(runs) = %d, want 1, got %+v", len(runs), runs)
	}
	if runs[0].Script != language.Latin {
		t.Errorf("Script = %v, want Latin", runs[0].Script)
	}
	if runs[0].Start != 0 || runs[0].End != 5 {
		t.Errorf("run = %+v, want {0,5,Latin}", runs[0])
	}
}

func TestScriptRunsMixedScripts(t *testing.T) {
	runes := []rune("abאבcd") // Latin, Latin, Hebrew, Hebrew, Latin, Latin
	runs := ScriptRuns(runes, 0, len(runes))
	if len(runs) != 3 {
		t.Fatalf("len(runs) = %d, want 3, got %+v", len(runs), runs)
	}
	if runs[0].Script != language.Latin || runs[2].Script != language.Latin {
		t.Errorf("outer runs should be Latin, got %+v", runs)
	}
	if runs[1].Script != language.Hebrew {
		t.Errorf("middle run should be Hebrew, got %+v", runs[1])
	}
}

func TestScriptRunsCommonJoinsNeighbor(t *testing.T) {
	// "a.b" - the period (Common) should join the surrounding Latin run
	// rather than splitting it into three runs.
	runes := []rune("a.b")
	runs := ScriptRuns(runes, 0, len(runes))
	if len(runs) != 1 {
		t.Fatalf("len(runs) = %d, want 1 (Common absorbed into Latin), got %+v", len(runs), runs)
	}
}

func TestScriptRunsEmptyRange(t *testing.T) {
	if runs := ScriptRuns([]rune("abc"), 1, 1); runs != nil {
		t.Errorf("ScriptRuns with start==end = %+v, want nil", runs)
	}
}

func TestIsComplexScript(t *testing.T) {
	simple := []language.Script{
		language.Common, language.Greek, language.Cyrillic,
		language.Hangul, language.Inherited,
	}
	for _, s := range simple {
		if IsComplexScript(s) {
			t.Errorf("IsComplexScript(%v) = true, want false", s)
		}
	}

	tricky := []language.Script{
		language.Latin, language.Hebrew, language.Arabic, language.Han,
	}
	for _, s := range tricky {
		if !IsComplexScript(s) {
			t.Errorf("IsComplexScript(%v) = false, want true", s)
		}
	}
}
