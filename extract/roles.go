package extract

import (
	"embed"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed vocab/roles.yaml
var vocabFS embed.FS

// roleVocab is the on-disk shape of vocab/roles.yaml.
type roleVocab struct {
	Roles []roleEntry `yaml:"roles"`
}

type roleEntry struct {
	Role  string   `yaml:"role"`
	Forms []string `yaml:"forms"`
}

var directorMarkerRegex = mustBuildRoleRegex("director")

// mustBuildRoleRegex compiles the opening-marker pattern for one role:
// "(" immediately followed by any of the role's word forms. Forms are
// sorted longest first so declined forms win over their stems.
func mustBuildRoleRegex(role string) *regexp.Regexp {
	data, err := vocabFS.ReadFile("vocab/roles.yaml")
	if err != nil {
		panic(fmt.Sprintf("embedded role vocabulary missing: %v", err))
	}
	var vocab roleVocab
	if err := yaml.Unmarshal(data, &vocab); err != nil {
		panic(fmt.Sprintf("parsing role vocabulary: %v", err))
	}
	for _, entry := range vocab.Roles {
		if entry.Role != role {
			continue
		}
		forms := append([]string(nil), entry.Forms...)
		sort.Slice(forms, func(i, j int) bool { return len(forms[i]) > len(forms[j]) })
		quoted := make([]string, len(forms))
		for i, form := range forms {
			quoted[i] = regexp.QuoteMeta(form)
		}
		return regexp.MustCompile(`(?i)\((?:` + strings.Join(quoted, "|") + `)`)
	}
	panic(fmt.Sprintf("role %q not in embedded vocabulary", role))
}
