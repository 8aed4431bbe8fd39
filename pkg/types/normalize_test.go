package types

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"Simpson Chubby 2", "Simpson Chubby 2"},
		{"  Simpson   Chubby\t2  ", "Simpson Chubby 2"},
		{"a\nb", "a b"},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseFiber(t *testing.T) {
	for _, valid := range []string{"Badger", "badger", " BOAR ", "Synthetic", "mixed"} {
		if _, ok := ParseFiber(valid); !ok {
			t.Errorf("ParseFiber(%q) should succeed", valid)
		}
	}
	for _, invalid := range []string{"", "horsehair", "nylon"} {
		if f, ok := ParseFiber(invalid); ok {
			t.Errorf("ParseFiber(%q) = %q, should fail", invalid, f)
		}
	}
}

func TestMatchTypePrecedence(t *testing.T) {
	order := []MatchType{MatchTypeExact, MatchTypeRegex, MatchTypeAlias, MatchTypeBrand}
	for i := 1; i < len(order); i++ {
		if order[i-1].Precedence() >= order[i].Precedence() {
			t.Errorf("%s should have lower precedence rank than %s", order[i-1], order[i])
		}
	}
}
