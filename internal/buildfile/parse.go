package buildfile

import "strings"

// File is a parsed declaration file. Parsing is line-preserving: every input
// line is kept verbatim and lists, items and markers are indexes into the
// line slice, so serializing an unmodified File reproduces the input byte
// for byte.
type File struct {
	lines           []string
	trailingNewline bool
	lists           []*List
}

// List is a bracketed list field inside a declaration file, e.g.
//
//	deps = [
//	    # Core modules
//	    "//Core/Logging:Logging",
//	]
//
// Single-line lists (Open == Close) such as
// `top_level_targets = ["//App:App"]` are also recognized.
type List struct {
	Attr    string           // attribute name on the left of "="
	Open    int              // line index of the opening bracket
	Close   int              // line index of the closing bracket
	Items   []Item           // references in file order
	Markers map[Category]int // section marker comment line indexes
}

// Item is one string reference inside a list.
type Item struct {
	Line  int
	Value string
}

// Parse indexes the structure of a declaration file. It never fails: lines
// it cannot interpret are simply not indexed (and therefore preserved
// untouched on write). A list whose closing bracket is missing is not
// indexed at all, which makes later edits fail with ErrStructureNotFound
// rather than guessing.
func Parse(content []byte) *File {
	s := string(content)
	f := &File{trailingNewline: strings.HasSuffix(s, "\n")}
	f.lines = strings.Split(s, "\n")
	if f.trailingNewline {
		f.lines = f.lines[:len(f.lines)-1]
	}

	for i := 0; i < len(f.lines); i++ {
		attr, rest, ok := splitListOpen(f.lines[i])
		if !ok {
			continue
		}

		if end := strings.LastIndex(rest, "]"); end >= 0 {
			// Single-line list.
			f.lists = append(f.lists, parseSingleLine(attr, i, rest[1:end]))
			continue
		}

		if list, end := parseMultiLine(f.lines, attr, i); list != nil {
			f.lists = append(f.lists, list)
			i = end
		}
	}

	return f
}

// List returns the first list with the given attribute name, or nil.
func (f *File) List(attr string) *List {
	for _, l := range f.lists {
		if l.Attr == attr {
			return l
		}
	}
	return nil
}

// Contains reports whether the list already holds the exact reference.
func (l *List) Contains(ref string) bool {
	for _, item := range l.Items {
		if item.Value == ref {
			return true
		}
	}
	return false
}

// Bytes serializes the file, restoring the original newline convention.
func (f *File) Bytes() []byte {
	s := strings.Join(f.lines, "\n")
	if f.trailingNewline {
		s += "\n"
	}
	return []byte(s)
}

// splitListOpen matches lines of the form `<identifier> = [` (with arbitrary
// indentation, and possibly the rest of a single-line list after the
// bracket). Lines like `srcs = glob([` do not match: the value must start
// with the bracket itself.
func splitListOpen(line string) (attr, rest string, ok bool) {
	eq := strings.Index(line, "=")
	if eq < 0 {
		return "", "", false
	}
	attr = strings.TrimSpace(line[:eq])
	if !isIdentifier(attr) {
		return "", "", false
	}
	rest = strings.TrimSpace(line[eq+1:])
	if !strings.HasPrefix(rest, "[") {
		return "", "", false
	}
	return attr, rest, true
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func parseSingleLine(attr string, line int, inner string) *List {
	l := &List{Attr: attr, Open: line, Close: line, Markers: map[Category]int{}}
	for _, part := range strings.Split(inner, ",") {
		if v, ok := parseRef(part); ok {
			l.Items = append(l.Items, Item{Line: line, Value: v})
		}
	}
	return l
}

// parseMultiLine scans forward from the opening line until the closing
// bracket, collecting items and section markers. Returns (nil, 0) when the
// list never closes.
func parseMultiLine(lines []string, attr string, open int) (*List, int) {
	l := &List{Attr: attr, Open: open, Markers: map[Category]int{}}
	for j := open + 1; j < len(lines); j++ {
		t := strings.TrimSpace(lines[j])
		switch {
		case strings.HasPrefix(t, "]"):
			l.Close = j
			return l, j
		case strings.HasPrefix(t, "#"):
			if cat, ok := markerCategory(t); ok {
				l.Markers[cat] = j
			}
		default:
			if v, ok := parseRef(t); ok {
				l.Items = append(l.Items, Item{Line: j, Value: v})
			}
		}
	}
	return nil, 0
}

// parseRef extracts the string value from a list element like `"//A:B",`.
func parseRef(s string) (string, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), ","))
	if len(s) < 2 || !strings.HasPrefix(s, "\"") || !strings.HasSuffix(s, "\"") {
		return "", false
	}
	return s[1 : len(s)-1], true
}
