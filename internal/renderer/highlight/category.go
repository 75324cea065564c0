// Package highlight classifies the display form of a row into syntax
// categories and maps those categories to terminal colors.
package highlight

// Category is the syntax class of a single display column.
type Category uint8

// Syntax categories.
const (
	Normal Category = iota
	Comment
	MLComment
	Keyword1
	Keyword2
	String
	Number
	Match

	categoryCount
)

var categoryNames = [categoryCount]string{
	Normal:    "normal",
	Comment:   "comment",
	MLComment: "mlcomment",
	Keyword1:  "keyword1",
	Keyword2:  "keyword2",
	String:    "string",
	Number:    "number",
	Match:     "match",
}

// String returns the lower-case name of the category.
func (c Category) String() string {
	if c < categoryCount {
		return categoryNames[c]
	}
	return "unknown"
}

// CategoryFromString returns the category with the given name.
func CategoryFromString(name string) (Category, bool) {
	for c, n := range categoryNames {
		if n == name {
			return Category(c), true
		}
	}
	return Normal, false
}

// Fill sets every element of hl to c.
func Fill(hl []Category, c Category) {
	for i := range hl {
		hl[i] = c
	}
}
