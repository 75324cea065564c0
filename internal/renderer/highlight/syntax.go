package highlight

import (
	_ "embed"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Flags enable optional classification rules of a Syntax.
type Flags uint8

const (
	HighlightNumbers Flags = 1 << iota
	HighlightStrings
)

// Has returns true if f contains flag.
func (f Flags) Has(flag Flags) bool {
	return f&flag != 0
}

// Keyword is a reserved word. Secondary keywords (types, builtins) are
// classified as Keyword2, the rest as Keyword1.
type Keyword struct {
	Text      string
	Secondary bool
}

// Category returns the category a match of this keyword receives.
func (k Keyword) Category() Category {
	if k.Secondary {
		return Keyword2
	}
	return Keyword1
}

// Syntax is a language profile. Profiles are built once from the embedded
// language table and never mutated afterwards.
type Syntax struct {
	FileType          string
	FileMatch         []string
	Keywords          []Keyword
	SingleLineComment string
	MultiLineStart    string
	MultiLineEnd      string
	Flags             Flags
}

// Matches reports whether the profile applies to filename.
func (s *Syntax) Matches(filename string) bool {
	ext := filepath.Ext(filename)
	for _, pattern := range s.FileMatch {
		isExt := strings.HasPrefix(pattern, ".")
		if isExt && ext != "" && ext == pattern {
			return true
		}
		if !isExt && strings.Contains(filename, pattern) {
			return true
		}
	}
	return false
}

//go:embed languages.toml
var languagesTOML []byte

type languageFile struct {
	Language []languageEntry `toml:"language"`
}

type languageEntry struct {
	Name              string   `toml:"name"`
	FileMatch         []string `toml:"filematch"`
	Keywords          []string `toml:"keywords"`
	Secondary         []string `toml:"secondary"`
	SingleLineComment string   `toml:"singleline_comment"`
	MultiLineComment  []string `toml:"multiline_comment"`
	Numbers           bool     `toml:"numbers"`
	Strings           bool     `toml:"strings"`
}

// ParseDatabase decodes a TOML language table.
func ParseDatabase(data []byte) ([]*Syntax, error) {
	var file languageFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing language table: %w", err)
	}

	db := make([]*Syntax, 0, len(file.Language))
	for i, entry := range file.Language {
		if entry.Name == "" {
			return nil, fmt.Errorf("language %d: missing name", i)
		}
		if len(entry.FileMatch) == 0 {
			return nil, fmt.Errorf("language %q: no filematch patterns", entry.Name)
		}

		syn := &Syntax{
			FileType:          entry.Name,
			FileMatch:         entry.FileMatch,
			SingleLineComment: entry.SingleLineComment,
		}
		switch len(entry.MultiLineComment) {
		case 0:
		case 2:
			syn.MultiLineStart = entry.MultiLineComment[0]
			syn.MultiLineEnd = entry.MultiLineComment[1]
		default:
			return nil, fmt.Errorf("language %q: multiline_comment needs a start and an end marker", entry.Name)
		}
		if entry.Numbers {
			syn.Flags |= HighlightNumbers
		}
		if entry.Strings {
			syn.Flags |= HighlightStrings
		}

		syn.Keywords = make([]Keyword, 0, len(entry.Keywords)+len(entry.Secondary))
		for _, kw := range entry.Keywords {
			syn.Keywords = append(syn.Keywords, Keyword{Text: kw})
		}
		for _, kw := range entry.Secondary {
			syn.Keywords = append(syn.Keywords, Keyword{Text: kw, Secondary: true})
		}

		db = append(db, syn)
	}
	return db, nil
}

var database = mustParseDatabase(languagesTOML)

func mustParseDatabase(data []byte) []*Syntax {
	db, err := ParseDatabase(data)
	if err != nil {
		panic(err)
	}
	return db
}

// Languages returns the built-in language profiles in match order.
func Languages() []*Syntax {
	return slices.Clone(database)
}

// Select returns the first built-in profile matching filename, or nil.
func Select(filename string) *Syntax {
	if filename == "" {
		return nil
	}
	for _, syn := range database {
		if syn.Matches(filename) {
			return syn
		}
	}
	return nil
}
