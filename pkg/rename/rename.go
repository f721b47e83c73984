// Package rename defines the static CUDA-to-HIP identifier mapping used by
// every matcher. The table is process-wide, immutable after construction, and
// safe for unsynchronized concurrent reads.
package rename

import (
	"cmp"
	"slices"
)

// Category classifies what kind of name an entry renames. Matchers restrict
// their lookups to the categories that make sense for the syntactic shape
// they match.
type Category uint8

const (
	// CategoryMacro names a preprocessor macro.
	CategoryMacro Category = iota
	// CategoryInclude names an include file.
	CategoryInclude
	// CategoryType names a type (typedef, struct, enum type).
	CategoryType
	// CategoryErrorCode names an error-status enum constant.
	CategoryErrorCode
	// CategoryFunction names a runtime API function.
	CategoryFunction
	// CategoryBuiltinField names a built-in coordinate access such as
	// "threadIdx.x". Keys in this category are two-part "object.field"
	// strings that flatten to a single identifier.
	CategoryBuiltinField
	// CategoryEnumConstant names a non-error enum constant.
	CategoryEnumConstant
)

var categoryNames = [...]string{
	CategoryMacro:        "macro",
	CategoryInclude:      "include",
	CategoryType:         "type",
	CategoryErrorCode:    "error-code",
	CategoryFunction:     "function",
	CategoryBuiltinField: "builtin-field",
	CategoryEnumConstant: "enum-constant",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "unknown"
}

// Categories returns all categories in declaration order.
func Categories() []Category {
	return []Category{
		CategoryMacro,
		CategoryInclude,
		CategoryType,
		CategoryErrorCode,
		CategoryFunction,
		CategoryBuiltinField,
		CategoryEnumConstant,
	}
}

// ParseCategory resolves a category from its string form.
func ParseCategory(s string) (Category, bool) {
	for i, name := range categoryNames {
		if name == s {
			return Category(i), true
		}
	}
	return 0, false
}

// Entry is one old-name to new-name mapping.
type Entry struct {
	Old      string
	New      string
	Category Category
}

// Table is an immutable rename lookup built from a literal entry list.
// When the source list registers the same old name more than once, the
// later registration wins; the source table does this deliberately in a
// few places and the behavior is preserved rather than rejected.
type Table struct {
	byOld map[string]Entry
}

// NewTable builds a table from entries. Later duplicates shadow earlier
// ones. The input slice is not retained.
func NewTable(entries []Entry) *Table {
	t := &Table{byOld: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		t.byOld[e.Old] = e
	}
	return t
}

// Lookup returns the replacement for name, or false on a miss. Lookups are
// exact-string and case-sensitive; there is no error path.
func (t *Table) Lookup(name string) (string, bool) {
	e, ok := t.byOld[name]
	if !ok {
		return "", false
	}
	return e.New, true
}

// LookupEntry returns the full entry for name.
func (t *Table) LookupEntry(name string) (Entry, bool) {
	e, ok := t.byOld[name]
	return e, ok
}

// LookupIn returns the entry for name only when its category is one of
// cats. With no categories it behaves like LookupEntry.
func (t *Table) LookupIn(name string, cats ...Category) (Entry, bool) {
	e, ok := t.byOld[name]
	if !ok {
		return Entry{}, false
	}
	if len(cats) == 0 {
		return e, true
	}
	if slices.Contains(cats, e.Category) {
		return e, true
	}
	return Entry{}, false
}

// Len reports the number of effective (post-shadowing) entries.
func (t *Table) Len() int {
	return len(t.byOld)
}

// Entries returns the effective entries sorted by old name.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.byOld))
	for _, e := range t.byOld {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b Entry) int {
		return cmp.Compare(a.Old, b.Old)
	})
	return out
}

// EntriesIn returns the effective entries of one category, sorted by old
// name.
func (t *Table) EntriesIn(cat Category) []Entry {
	var out []Entry
	for _, e := range t.byOld {
		if e.Category == cat {
			out = append(out, e)
		}
	}
	slices.SortFunc(out, func(a, b Entry) int {
		return cmp.Compare(a.Old, b.Old)
	})
	return out
}
