package cmd

import (
	"bytes"
	"testing"
)

func TestConfirmResetPrompt(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "uppercase Y confirms", input: "Y\n", want: true},
		{name: "lowercase y does not confirm", input: "y\n", want: false},
		{name: "N does not confirm", input: "N\n", want: false},
		{name: "empty does not confirm", input: "\n", want: false},
		{name: "Y without newline confirms", input: "Y", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := confirmResetPrompt(bytes.NewBufferString(tt.input), &out, "./data.csv")
			if err != nil {
				t.Fatalf("confirm prompt returned error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			if out.Len() == 0 {
				t.Fatalf("expected prompt output")
			}
		})
	}
}

func TestConfirmResetPrompt_NilInput(t *testing.T) {
	if _, err := confirmResetPrompt(nil, nil, "./data.csv"); err == nil {
		t.Fatalf("expected error for nil input")
	}
}
