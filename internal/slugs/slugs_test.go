package slugs

import "testing"

func TestFileSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Weekly Plan", "weekly-plan"},
		{"Q3 / Review", "q3-review"},
		{"  padded  ", "padded"},
		{"Crème brûlée", "creme-brulee"},
		{"ALL CAPS", "all-caps"},
	}
	for _, tc := range tests {
		if got := FileSlug(tc.in); got != tc.want {
			t.Errorf("FileSlug(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
