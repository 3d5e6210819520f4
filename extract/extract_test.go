package extract

import "testing"

func TestQuotedTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "quoted span in subtitle",
			input: `recenzija par filmu "Ceplis" un tās mūziku`,
			want:  "Ceplis",
		},
		{
			name:  "first of several spans wins",
			input: `izrāde "Spēlmaņi" un "Brands"`,
			want:  "Spēlmaņi",
		},
		{
			name:  "no quotes",
			input: "recenzija bez nosaukuma",
			want:  "",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QuotedTitle(tt.input); got != tt.want {
				t.Errorf("QuotedTitle(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDirectorNames(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "nominative form",
			input: `izrāde "Spēlmaņi" (režisors Jānis Bērziņš) Dailes teātrī`,
			want:  "Jānis Bērziņš",
		},
		{
			name:  "feminine form",
			input: "(režisore Anna Kalniņa)",
			want:  "Anna Kalniņa",
		},
		{
			name:  "abbreviation with credit text before name",
			input: "(rež. un scenārists Pēteris Krilovs)",
			want:  "Pēteris Krilovs",
		},
		{
			name:  "multiple directors rejoined",
			input: "(režisori Jānis Bērziņš,  Anna   Kalniņa)",
			want:  "Jānis Bērziņš, Anna Kalniņa",
		},
		{
			name:  "russian declension",
			input: "спектакль (режиссёра Алексея Германа)",
			want:  "Алексея Германа",
		},
		{
			name:  "case-insensitive marker",
			input: "(Režisors Jānis Bērziņš)",
			want:  "Jānis Bērziņš",
		},
		{
			name:  "no closing parenthesis",
			input: "(režisors Jānis Bērziņš",
			want:  "",
		},
		{
			name:  "no capitalized word in credit",
			input: "(režisors un komanda)",
			want:  "",
		},
		{
			name:  "no marker",
			input: "izrāde bez režisora pieminēšanas",
			want:  "",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DirectorNames(tt.input); got != tt.want {
				t.Errorf("DirectorNames(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestBracedAuthor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "braced inverted name with full stop",
			input: "{Kalniņš, Pēteris.} Klusuma krasts / Rīga : Liesma, 1987",
			want:  "Pēteris Kalniņš",
		},
		{
			name:  "braced direct name passes through",
			input: "{Rainis} Zelta zirgs / Rīga : Zvaigzne, 1990",
			want:  "Rainis",
		},
		{
			name:  "no braces",
			input: "Klusuma krasts / Rīga : Liesma, 1987",
			want:  "",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BracedAuthor(tt.input); got != tt.want {
				t.Errorf("BracedAuthor(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTitleAfterBrace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "title between brace and slash",
			input: "{Kalniņš, Pēteris.} Klusuma   krasts / Rīga : Liesma, 1987",
			want:  "Klusuma krasts",
		},
		{
			name:  "no slash",
			input: "{Kalniņš, Pēteris.} Klusuma krasts",
			want:  "",
		},
		{
			name:  "no brace",
			input: "Klusuma krasts / Rīga : Liesma, 1987",
			want:  "",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TitleAfterBrace(tt.input); got != tt.want {
				t.Errorf("TitleAfterBrace(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPublisherAfterSlashColon(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "publisher between colon and comma",
			input: "{Kalniņš, Pēteris.} Klusuma krasts / Rīga : Liesma, 1987",
			want:  "Liesma",
		},
		{
			name:  "no comma after publisher",
			input: "Klusuma krasts / Rīga : Liesma 1987",
			want:  "Liesma 1987",
		},
		{
			name:  "no colon after slash",
			input: "Klusuma krasts / Rīga 1987",
			want:  "",
		},
		{
			name:  "no slash",
			input: "Rīga : Liesma, 1987",
			want:  "",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PublisherAfterSlashColon(tt.input); got != tt.want {
				t.Errorf("PublisherAfterSlashColon(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
