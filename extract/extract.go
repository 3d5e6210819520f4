// Package extract provides the pattern extractors used to recover
// reviewed-work attributes from free-text catalog fields.
//
// Each extractor is a pure func(string) string: it returns the extracted
// substring, or "" when the input is empty or the pattern is absent.
// Extractors never fail; a miss simply propagates as an empty value
// through the harmonization fallbacks.
package extract

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lnb-datalab/recenzijas/helpers"
)

var (
	quotedRegex = regexp.MustCompile(`"([^"]+)"`)
	bracedRegex = regexp.MustCompile(`\{([^}]+)\}`)

	// Title sits between the closing brace of the author block and the
	// statement-of-responsibility slash: "{Author.} Title / Publisher,"
	titleAfterBraceRegex = regexp.MustCompile(`\}\s*([^/]+?)\s*/`)

	// Publisher sits between the colon after the slash and the next
	// comma: "... / Riga : Liesma, 1985"
	publisherRegex = regexp.MustCompile(`/\s*[^:]*:\s*([^,]+)`)
)

// QuotedTitle returns the content of the first double-quoted span, e.g.
// the performance title in `izrāde "Skroderdienas Silmačos"`.
func QuotedTitle(text string) string {
	if text == "" {
		return ""
	}
	m := quotedRegex.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// DirectorNames returns the director name(s) from a parenthetical credit
// like "(režisors Jānis Bērziņš)" or "(rež. un scenārists P. Krilovs)".
//
// The opening marker is "(" followed by a director word form from the
// embedded vocabulary (Latvian declensions, the rež. abbreviation, and
// Russian режиссёр/режиссер declensions), matched case-insensitively.
// Words between the form and the first word starting with an upper-case
// rune are credit text, not names, and are skipped. Multiple directors
// separated by commas are rejoined with ", ".
//
// Returns "" when there is no marker, no closing parenthesis, or no
// capitalized word inside the credit. The capitalized-word heuristic
// misfires on scripts without case and on lowercase-led surnames; those
// credits come back empty rather than wrong.
func DirectorNames(text string) string {
	if text == "" {
		return ""
	}
	loc := directorMarkerRegex.FindStringIndex(text)
	if loc == nil {
		return ""
	}
	rest := text[loc[1]:]
	end := strings.IndexByte(rest, ')')
	if end == -1 {
		return ""
	}

	words := strings.Fields(rest[:end])
	nameStart := -1
	for i, word := range words {
		r, _ := utf8.DecodeRuneInString(word)
		if unicode.IsUpper(r) {
			nameStart = i
			break
		}
	}
	if nameStart == -1 {
		return ""
	}

	var directors []string
	for _, name := range strings.Split(strings.Join(words[nameStart:], " "), ",") {
		name = helpers.NormalizeSpace(name)
		if name != "" {
			directors = append(directors, name)
		}
	}
	return strings.Join(directors, ", ")
}

// BracedAuthor returns the author from a legacy note field's curly-brace
// block, "{Kalniņš, Pēteris.} ..." → "Pēteris Kalniņš": the trailing full
// stop is stripped and the name inverted to direct order.
func BracedAuthor(text string) string {
	if text == "" {
		return ""
	}
	m := bracedRegex.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	author := strings.TrimRight(strings.TrimSpace(m[1]), ".")
	return helpers.InvertName(author)
}

// TitleAfterBrace returns the whitespace-normalized text strictly between
// the first "}" and the first "/" after it.
func TitleAfterBrace(text string) string {
	if text == "" {
		return ""
	}
	m := titleAfterBraceRegex.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return helpers.NormalizeSpace(m[1])
}

// PublisherAfterSlashColon returns the whitespace-normalized text between
// the first ":" following the first "/" and the next ",".
func PublisherAfterSlashColon(text string) string {
	if text == "" {
		return ""
	}
	m := publisherRegex.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return helpers.NormalizeSpace(m[1])
}
