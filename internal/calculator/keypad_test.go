package calculator

import "testing"

func TestKeypad_Tokens(t *testing.T) {
	var tokens, specials []string
	for _, row := range Keypad {
		for _, k := range row {
			if k.IsToken() {
				tokens = append(tokens, k.Action)
			} else {
				specials = append(specials, k.Action)
			}
		}
	}

	if len(tokens) != 22 {
		t.Errorf("expected 22 token keys, got %d: %v", len(tokens), tokens)
	}
	if len(specials) != 3 {
		t.Errorf("expected 3 special keys, got %d: %v", len(specials), specials)
	}

	want := map[string]bool{"sin(": true, "cos(": true, "tan(": true, "log(": true, "^": true, ".": true}
	for _, tok := range tokens {
		delete(want, tok)
	}
	if len(want) != 0 {
		t.Errorf("missing tokens %v", want)
	}
}

func TestKeypad_Layout(t *testing.T) {
	if k := Keypad[0][0]; k.Label != "∫" || k.Action != ActionIntegral {
		t.Errorf("top-left key = %+v", k)
	}
	if k := Keypad[0][4]; k.Label != "C" || k.Action != ActionClear {
		t.Errorf("top-right key = %+v", k)
	}
	if k := Keypad[4][3]; k.Label != "=" || k.Action != ActionEvaluate || k.Role != RoleEquals {
		t.Errorf("equals key = %+v", k)
	}
}
