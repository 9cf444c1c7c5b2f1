package jsonpath

import (
	"strings"
	"testing"
)

const doc = `{
	"status": "success",
	"data": {
		"gameserver": {
			"status": "started",
			"slots": 32,
			"players": [{"name": "A"}, {"name": "B"}]
		}
	}
}`

func TestValidate(t *testing.T) {
	if err := Validate("$.data.gameserver.status"); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
	if err := Validate("$.data["); err == nil {
		t.Error("Validate() error = nil for malformed expression")
	}
}

func TestExtract_SingleValue(t *testing.T) {
	got, err := Extract([]byte(doc), "$.data.gameserver.status")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(got) != 1 || got[0] != "started" {
		t.Errorf("Extract() = %v, want [started]", got)
	}
}

func TestExtract_Wildcard(t *testing.T) {
	got, err := Extract([]byte(doc), "$.data.gameserver.players[*].name")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Extract() = %v, want two names", got)
	}
}

func TestExtract_NoMatch(t *testing.T) {
	got, err := Extract([]byte(doc), "$.data.nothing")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Extract() = %v, want empty", got)
	}
}

func TestExtract_NotJSON(t *testing.T) {
	if _, err := Extract([]byte("not json"), "$.a"); err == nil {
		t.Error("Extract() error = nil for non-JSON input")
	}
}

func TestRender(t *testing.T) {
	if got := Render(nil); got != "" {
		t.Errorf("Render(nil) = %q, want empty", got)
	}
	if got := Render([]any{"started"}); got != "started" {
		t.Errorf("Render(single string) = %q, want bare value", got)
	}
	if got := Render([]any{map[string]any{"a": 1}}); !strings.Contains(got, `"a"`) {
		t.Errorf("Render(single object) = %q, want JSON", got)
	}
	multi := Render([]any{"a", "b"})
	if !strings.Contains(multi, "a") || !strings.Contains(multi, "b") {
		t.Errorf("Render(multiple) = %q, want both values", multi)
	}
}
