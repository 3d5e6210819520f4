package pipeline

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed vocab/categories.yaml
var vocabFS embed.FS

type genreVocab struct {
	Category string   `yaml:"category"`
	Genres   []string `yaml:"genres"`
}

var literaryCategory, literaryGenres = mustLoadGenreVocab()

func mustLoadGenreVocab() (string, map[string]bool) {
	data, err := vocabFS.ReadFile("vocab/categories.yaml")
	if err != nil {
		panic(fmt.Sprintf("embedded genre vocabulary missing: %v", err))
	}
	var vocab genreVocab
	if err := yaml.Unmarshal(data, &vocab); err != nil {
		panic(fmt.Sprintf("parsing genre vocabulary: %v", err))
	}
	genres := make(map[string]bool, len(vocab.Genres))
	for _, g := range vocab.Genres {
		genres[g] = true
	}
	return vocab.Category, genres
}

// MapGenre maps a literary sub-genre label to the review category and
// passes every other value (including "") through unchanged. Matching is
// exact: the vocabulary is data, not heuristics.
func MapGenre(genre string) string {
	if literaryGenres[genre] {
		return literaryCategory
	}
	return genre
}

// IsLiteraryGenre reports whether the value is in the embedded
// sub-genre list.
func IsLiteraryGenre(genre string) bool {
	return literaryGenres[genre]
}
