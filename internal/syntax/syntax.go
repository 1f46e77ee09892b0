// Package syntax holds the language registry used for highlighting.
// Entries are immutable; matching is by filename, first entry wins.
package syntax

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Syntax describes one language: how to recognize its files and what
// the highlighter should look for when scanning a row.
type Syntax struct {
	Name                  string
	FileMatch             []string
	Keywords              []string
	SingleLineComment     string
	MultiLineCommentStart string
	MultiLineCommentEnd   string
	HighlightNumbers      bool
	HighlightStrings      bool
}

// SecondarySentinel marks a keyword as belonging to the secondary class
// (conventionally type names) when it trails the keyword text.
const SecondarySentinel = '|'

// KeywordClass splits a registry keyword into its literal text and
// whether it carries the secondary sentinel.
func KeywordClass(kw string) (text string, secondary bool) {
	if strings.HasSuffix(kw, string(SecondarySentinel)) {
		return kw[:len(kw)-1], true
	}
	return kw, false
}

// Registry is an ordered list of languages. Order is priority: Select
// returns the first entry whose file match succeeds.
type Registry struct {
	entries []Syntax
}

// NewRegistry returns a registry seeded with the built-in languages.
func NewRegistry() *Registry {
	return &Registry{entries: builtins()}
}

// Add appends an entry after the existing ones.
func (r *Registry) Add(s Syntax) {
	r.entries = append(r.entries, s)
}

// Len reports the number of registered languages.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Select returns the first language matching the filename, or nil.
// Patterns starting with "." match the filename suffix, anything else
// is a substring match against the whole name.
func (r *Registry) Select(filename string) *Syntax {
	if filename == "" {
		return nil
	}
	for i := range r.entries {
		s := &r.entries[i]
		for _, pat := range s.FileMatch {
			if pat == "" {
				continue
			}
			if strings.HasPrefix(pat, ".") {
				if strings.HasSuffix(filename, pat) {
					return s
				}
			} else if strings.Contains(filename, pat) {
				return s
			}
		}
	}
	return nil
}

type userLanguage struct {
	Name              string   `toml:"name"`
	FileMatch         []string `toml:"file-match"`
	Keywords          []string `toml:"keywords"`
	SingleLineComment string   `toml:"singleline-comment"`
	MultiLineStart    string   `toml:"multiline-comment-start"`
	MultiLineEnd      string   `toml:"multiline-comment-end"`
	Numbers           *bool    `toml:"numbers"`
	Strings           *bool    `toml:"strings"`
}

type userLanguages struct {
	Languages []userLanguage `toml:"language"`
}

// LoadUserLanguages appends languages defined in languages.toml under the
// config dir. A missing file is not an error. User entries are consulted
// after the built-ins.
func (r *Registry) LoadUserLanguages(configDir string) error {
	path := filepath.Join(configDir, "languages.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	var cfg userLanguages
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return err
	}
	for _, ul := range cfg.Languages {
		if ul.Name == "" || len(ul.FileMatch) == 0 {
			continue
		}
		s := Syntax{
			Name:                  ul.Name,
			FileMatch:             ul.FileMatch,
			Keywords:              ul.Keywords,
			SingleLineComment:     ul.SingleLineComment,
			MultiLineCommentStart: ul.MultiLineStart,
			MultiLineCommentEnd:   ul.MultiLineEnd,
			HighlightNumbers:      true,
			HighlightStrings:      true,
		}
		if ul.Numbers != nil {
			s.HighlightNumbers = *ul.Numbers
		}
		if ul.Strings != nil {
			s.HighlightStrings = *ul.Strings
		}
		r.Add(s)
	}
	return nil
}
