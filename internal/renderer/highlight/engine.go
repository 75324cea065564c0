package highlight

import (
	"bytes"
	"strings"
)

const separators = ",.()+-/*=~%<>[];"

// IsSeparator reports whether c ends a word for keyword and number
// boundaries. The zero byte stands for the end of the row.
func IsSeparator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r', 0:
		return true
	}
	return strings.IndexByte(separators, c) >= 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// byteAt returns render[i], or 0 past the end of the row.
func byteAt(render []byte, i int) byte {
	if i < len(render) {
		return render[i]
	}
	return 0
}

// Classify fills hl with the category of each byte of render and returns
// whether the row ends inside an unterminated block comment.
//
// inComment is the open-comment state carried over from the previous row.
// hl must have the same length as render. A nil syntax classifies the
// whole row as Normal and never leaves a comment open.
func Classify(syn *Syntax, render []byte, hl []Category, inComment bool) bool {
	Fill(hl, Normal)
	if syn == nil {
		return false
	}

	scs := []byte(syn.SingleLineComment)
	mcs := []byte(syn.MultiLineStart)
	mce := []byte(syn.MultiLineEnd)
	blockComments := len(mcs) > 0 && len(mce) > 0

	prevSep := true
	var inString byte

	i := 0
	for i < len(render) {
		c := render[i]
		prevHL := Normal
		if i > 0 {
			prevHL = hl[i-1]
		}

		if len(scs) > 0 && inString == 0 && !inComment {
			if bytes.HasPrefix(render[i:], scs) {
				Fill(hl[i:], Comment)
				break
			}
		}

		if blockComments && inString == 0 {
			if inComment {
				hl[i] = MLComment
				if bytes.HasPrefix(render[i:], mce) {
					Fill(hl[i:i+len(mce)], MLComment)
					i += len(mce)
					inComment = false
					prevSep = true
					continue
				}
				i++
				continue
			}
			if bytes.HasPrefix(render[i:], mcs) {
				Fill(hl[i:i+len(mcs)], MLComment)
				i += len(mcs)
				inComment = true
				continue
			}
		}

		if syn.Flags.Has(HighlightStrings) {
			if inString != 0 {
				hl[i] = String
				if c == '\\' && i+1 < len(render) {
					hl[i+1] = String
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			}
			if c == '"' || c == '\'' {
				inString = c
				hl[i] = String
				i++
				continue
			}
		}

		if syn.Flags.Has(HighlightNumbers) {
			if (isDigit(c) && (prevSep || prevHL == Number)) || (c == '.' && prevHL == Number) {
				hl[i] = Number
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			if n, cat, ok := matchKeyword(syn.Keywords, render, i); ok {
				Fill(hl[i:i+n], cat)
				i += n
				prevSep = false
				continue
			}
		}

		prevSep = IsSeparator(c)
		i++
	}

	return inComment
}

// matchKeyword returns the length and category of the keyword starting at
// render[i] that is followed by a separator or the end of the row.
func matchKeyword(keywords []Keyword, render []byte, i int) (int, Category, bool) {
	for _, kw := range keywords {
		n := len(kw.Text)
		if n == 0 || !bytes.HasPrefix(render[i:], []byte(kw.Text)) {
			continue
		}
		if IsSeparator(byteAt(render, i+n)) {
			return n, kw.Category(), true
		}
	}
	return 0, Normal, false
}
