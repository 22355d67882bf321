package buildfile

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// LinkResult reports the outcome of a link operation.
type LinkResult int

const (
	// Inserted means the reference was added to the list.
	Inserted LinkResult = iota
	// AlreadyLinked means the reference was already present; the file was
	// left untouched.
	AlreadyLinked
)

func (r LinkResult) String() string {
	if r == AlreadyLinked {
		return "already linked"
	}
	return "inserted"
}

var (
	// ErrNotFound means the declaration file does not exist. Linking never
	// synthesizes the consuming file; the caller must scaffold it first.
	ErrNotFound = errors.New("declaration file not found")

	// ErrStructureNotFound means the file exists but holds no recognizable
	// target list. The editor refuses to guess an insertion point.
	ErrStructureNotFound = errors.New("no recognizable dependency list")
)

// LinkDep inserts ref into the first `deps` list of the declaration file at
// path. The insertion point is chosen per category:
//
//  1. the category's section marker, when present: the reference goes
//     immediately below it;
//  2. otherwise a new marker section is synthesized before the
//     "# Feature modules" anchor (core, data and common sections keep their
//     position ahead of features);
//  3. for CategoryOther, or when the list has no markers to anchor on, the
//     reference is appended before the closing bracket, matching the
//     siblings' trailing-comma convention.
//
// Re-running with the same reference returns AlreadyLinked without writing.
func LinkDep(path, ref string, cat Category) (LinkResult, error) {
	return link(path, "deps", ref, cat)
}

// LinkTopLevelTarget inserts ref into the first `top_level_targets` list of
// the root project declaration. Top-level target lists carry no section
// markers, so insertion is always structural (list tail).
func LinkTopLevelTarget(path, ref string) (LinkResult, error) {
	return link(path, "top_level_targets", ref, CategoryOther)
}

func link(path, attr, ref string, cat Category) (LinkResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}

	f := Parse(data)
	list := f.List(attr)
	if list == nil {
		return 0, fmt.Errorf("%w: no %q list in %s", ErrStructureNotFound, attr, path)
	}

	if list.Contains(ref) {
		return AlreadyLinked, nil
	}

	f.insert(list, ref, cat)

	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}
	if err := writeAtomic(path, f.Bytes(), info.Mode().Perm()); err != nil {
		return 0, fmt.Errorf("writing %s: %w", path, err)
	}
	return Inserted, nil
}

// insert splices ref into the list. Exactly one insertion happens per parsed
// File, so line indexes never need rebalancing.
func (f *File) insert(l *List, ref string, cat Category) {
	if l.Open == l.Close {
		f.insertSingleLine(l, ref)
		return
	}

	if line, ok := l.Markers[cat]; ok {
		f.ensureSeparator(l, line+1)
		f.insertLinesAt(line+1, f.itemLine(l, ref, true))
		return
	}

	if cat != CategoryOther && cat.Marker() != "" {
		anchor, ok := l.Markers[CategoryFeature]
		if !ok || cat == CategoryFeature {
			anchor = l.Close
		}
		f.ensureSeparator(l, anchor)
		indent := f.sectionIndent(l)
		f.insertLinesAt(anchor, indent+cat.Marker(), f.itemLine(l, ref, true))
		return
	}

	f.insertTail(l, ref)
}

// insertTail appends ref as the last element before the closing bracket,
// matching the siblings' trailing separator convention.
func (f *File) insertTail(l *List, ref string) {
	trailingComma := true
	if n := len(l.Items); n > 0 {
		last := l.Items[n-1]
		if !strings.HasSuffix(strings.TrimSpace(f.lines[last.Line]), ",") {
			// Siblings omit the trailing comma: the old last element needs
			// one now, and the new last element goes without.
			f.lines[last.Line] += ","
			trailingComma = false
		}
	}
	f.insertLinesAt(l.Close, f.itemLine(l, ref, trailingComma))
}

// ensureSeparator appends a comma to the nearest item above the insertion
// point when its line lacks one. Without it the old element and the inserted
// one would be adjacent string literals, which Starlark concatenates into a
// single bogus reference.
func (f *File) ensureSeparator(l *List, at int) {
	for i := len(l.Items) - 1; i >= 0; i-- {
		if l.Items[i].Line >= at {
			continue
		}
		line := l.Items[i].Line
		if !strings.HasSuffix(strings.TrimSpace(f.lines[line]), ",") {
			f.lines[line] += ","
		}
		return
	}
}

func (f *File) insertSingleLine(l *List, ref string) {
	line := f.lines[l.Open]
	end := strings.LastIndex(line, "]")
	element := fmt.Sprintf("%q", ref)
	if len(l.Items) > 0 {
		element = ", " + element
	}
	f.lines[l.Open] = line[:end] + element + line[end:]
}

func (f *File) insertLinesAt(at int, newLines ...string) {
	f.lines = append(f.lines[:at], append(append([]string{}, newLines...), f.lines[at:]...)...)
}

// itemLine renders one list element with the indentation of its siblings.
func (f *File) itemLine(l *List, ref string, comma bool) string {
	line := f.sectionIndent(l) + fmt.Sprintf("%q", ref)
	if comma {
		line += ","
	}
	return line
}

// sectionIndent picks the indentation for inserted lines: existing items
// first, then existing markers, then one level deeper than the opening line.
func (f *File) sectionIndent(l *List) string {
	if len(l.Items) > 0 {
		return indentOf(f.lines[l.Items[0].Line])
	}
	for _, line := range l.Markers {
		return indentOf(f.lines[line])
	}
	return indentOf(f.lines[l.Open]) + "    "
}

func indentOf(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}
