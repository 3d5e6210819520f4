package helpers

import "testing"

func TestInvertName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "simple surname",
			input: "Smith, John",
			want:  "John Smith",
		},
		{
			name:  "hyphenated surname",
			input: "Lukšo-Ražinska, Elizabete",
			want:  "Elizabete Lukšo-Ražinska",
		},
		{
			name:  "multi-part surname",
			input: "van der Berg, Jan",
			want:  "Jan van der Berg",
		},
		{
			name:  "apostrophe",
			input: "O'Connor, Mary",
			want:  "Mary O'Connor",
		},
		{
			name:  "initial with period",
			input: "van der Berg, J.",
			want:  "J. van der Berg",
		},
		{
			name:  "only first pair used",
			input: "Smith, John, Jr.",
			want:  "John Smith",
		},
		{
			name:  "trailing comma from subfield split",
			input: "Bērziņš, Jānis,",
			want:  "Jānis Bērziņš",
		},
		{
			name:  "no comma unchanged",
			input: "Jānis Bērziņš",
			want:  "Jānis Bērziņš",
		},
		{
			name:  "empty unchanged",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InvertName(tt.input)
			if got != tt.want {
				t.Errorf("InvertName(%q) = %q, want %q", tt.input, got, tt.want)
			}
			// Inverting an already-direct name must be a no-op.
			if again := InvertName(got); again != got {
				t.Errorf("InvertName not idempotent: %q → %q", got, again)
			}
		})
	}
}

func TestNormalizeSpace(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"  a   b\tc  ", "a b c"},
		{"already clean", "already clean"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeSpace(tt.input); got != tt.want {
			t.Errorf("NormalizeSpace(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
