package elixir

import "testing"

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{5, "5.0"},
		{5.357142857, "5.4"},
		{5.34, "5.3"},
		{5.25, "5.3"},
		{9.96, "10.0"},
		{0.04, "0.0"},
		{0.05, "0.1"},
		{10, "10.0"},
	}

	for _, tc := range tests {
		if got := Format(tc.in); got != tc.want {
			t.Errorf("Format(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
