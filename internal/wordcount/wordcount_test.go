package wordcount

import "testing"

func TestCount(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{
			name: "empty string",
			in:   "",
			want: 0,
		},
		{
			name: "whitespace only",
			in:   "   \t\n  ",
			want: 0,
		},
		{
			name: "padded words",
			in:   "  a   b  ",
			want: 2,
		},
		{
			name: "single word",
			in:   "hello",
			want: 1,
		},
		{
			name: "mixed whitespace",
			in:   "one\ttwo\nthree four",
			want: 4,
		},
		{
			name: "punctuation attaches to words",
			in:   "well, that's two",
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Count(tt.in); got != tt.want {
				t.Errorf("Count(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
