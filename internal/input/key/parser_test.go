package key

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Event
	}{
		{"a", Char('a')},
		{"A", Char('A')},
		{"^", Char('^')},
		{"Ctrl+Q", CtrlChar('q')},
		{"ctrl-s", CtrlChar('s')},
		{"C-f", CtrlChar('f')},
		{"^H", CtrlChar('h')},
		{"Enter", Special(KeyEnter)},
		{"PageDown", Special(KeyPageDown)},
		{"left", Special(KeyLeft)},
		{"Space", Char(' ')},
		{"Tab", Char('\t')},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.spec, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		spec string
		want error
	}{
		{"", ErrEmptySpec},
		{"   ", ErrEmptySpec},
		{"Ctrl+1", ErrInvalidSpec},
		{"Hyper", ErrInvalidSpec},
	}
	for _, tt := range tests {
		if _, err := Parse(tt.spec); !errors.Is(err, tt.want) {
			t.Errorf("Parse(%q) error = %v, want %v", tt.spec, err, tt.want)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, spec := range []string{"Ctrl+Q", "Enter", "x", "Space", "Home"} {
		ev := MustParse(spec)
		if got := ev.String(); got != spec {
			t.Errorf("MustParse(%q).String() = %q", spec, got)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse should panic on an invalid spec")
		}
	}()
	MustParse("NotAKey")
}
