package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{"yes", "y\n", false, true},
		{"full yes", "yes\n", false, true},
		{"no", "n\n", true, false},
		{"uppercase", "Y\n", false, true},
		{"empty takes default no", "\n", false, false},
		{"empty takes default yes", "\n", true, true},
		{"eof takes default", "", true, true},
		{"garbage then yes", "maybe\ny\n", false, true},
		{"persistent garbage takes default", "a\nb\nc\n", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got := Confirm(strings.NewReader(tt.input), &out, "继续？", tt.defaultYes)
			if got != tt.want {
				t.Errorf("Confirm() = %v, want %v", got, tt.want)
			}
			if out.Len() == 0 {
				t.Error("Confirm() wrote no prompt")
			}
		})
	}
}
