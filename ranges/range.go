package ranges

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/lox/pokerstudy/poker"
)

// Entry is a class in a range with its weight.
type Entry struct {
	Class  Class
	Weight float64
}

// Range is an ordered set of hand classes with optional per-class weights
// (default 1). It describes what an opponent may hold.
type Range struct {
	entries []Entry
	index   map[Class]int
}

// NewRange creates an empty range.
func NewRange() *Range {
	return &Range{index: make(map[Class]int)}
}

// Add inserts a class or replaces its weight. Negative weights become 0.
func (r *Range) Add(c Class, weight float64) {
	weight = max(weight, 0)
	if i, ok := r.index[c]; ok {
		r.entries[i].Weight = weight
		return
	}
	r.index[c] = len(r.entries)
	r.entries = append(r.entries, Entry{Class: c, Weight: weight})
}

// AddLabel parses label and adds it with the given weight.
func (r *Range) AddLabel(label string, weight float64) error {
	c, err := ParseClass(label)
	if err != nil {
		return err
	}
	r.Add(c, weight)
	return nil
}

// Entries returns the classes in insertion order.
func (r *Range) Entries() []Entry {
	return append([]Entry(nil), r.entries...)
}

// Len returns the number of classes.
func (r *Range) Len() int {
	return len(r.entries)
}

// Weight returns the weight of a class and whether it is in the range.
func (r *Range) Weight(c Class) (float64, bool) {
	i, ok := r.index[c]
	if !ok {
		return 0, false
	}
	return r.entries[i].Weight, true
}

// NumCombos returns the unweighted number of concrete hands.
func (r *Range) NumCombos() int {
	return lo.SumBy(r.entries, func(e Entry) int { return e.Class.Kind.Combos() })
}

// String returns the classes as comma separated labels, with weights other
// than 1 appended as ":w".
func (r *Range) String() string {
	return strings.Join(lo.Map(r.entries, func(e Entry, _ int) string {
		if e.Weight == 1 {
			return e.Class.String()
		}
		return e.Class.String() + ":" + strconv.FormatFloat(e.Weight, 'g', -1, 64)
	}), ",")
}

// ClassCombos is one class of a range after blocker removal.
type ClassCombos struct {
	Class  Class
	Weight float64
	Combos []poker.Hand
}

// Expand returns every class with a positive weight together with its
// combos that avoid blocked. Classes left with no combos are kept with an
// empty slice so callers can report them.
func (r *Range) Expand(blocked poker.CardSet) []ClassCombos {
	out := make([]ClassCombos, 0, len(r.entries))
	for _, e := range r.entries {
		if e.Weight <= 0 {
			continue
		}
		out = append(out, ClassCombos{
			Class:  e.Class,
			Weight: e.Weight,
			Combos: FilterBlocked(e.Class.Combos(), blocked),
		})
	}
	return out
}

// ParseRange creates a range from standard poker notation.
// Examples: "AA,KK", "AKs,AKo", "AK", "TT+", "ATs+", "A5s-A2s", "22-66",
// and per-part weights such as "AKo:0.5".
func ParseRange(notation string) (*Range, error) {
	r := NewRange()

	for part := range strings.SplitSeq(notation, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		weight := 1.0
		if body, w, ok := strings.Cut(part, ":"); ok {
			parsed, err := strconv.ParseFloat(strings.TrimSpace(w), 64)
			if err != nil || parsed < 0 {
				return nil, fmt.Errorf("%w: invalid weight in %q", ErrInvalidClass, part)
			}
			part, weight = strings.TrimSpace(body), parsed
		}

		classes, err := expandPart(part)
		if err != nil {
			return nil, fmt.Errorf("invalid range part %q: %w", part, err)
		}
		for _, c := range classes {
			r.Add(c, weight)
		}
	}

	return r, nil
}

// MustParseRange parses a range and panics on error (for tests)
func MustParseRange(notation string) *Range {
	r, err := ParseRange(notation)
	if err != nil {
		panic(err)
	}
	return r
}

// expandPart turns one notation part into the classes it names.
func expandPart(part string) ([]Class, error) {
	part = strings.ReplaceAll(part, "10", "T")
	switch {
	case strings.HasSuffix(part, "+"):
		return expandPlus(strings.TrimSuffix(part, "+"))
	case strings.Contains(part, "-"):
		start, end, _ := strings.Cut(part, "-")
		return expandDash(strings.TrimSpace(start), strings.TrimSpace(end))
	default:
		return expandSingle(part)
	}
}

// expandSingle handles "AA", "AKs", "AKo" and "AK" (suited and offsuit).
func expandSingle(s string) ([]Class, error) {
	if len(s) == 2 && s[0] != s[1] {
		suited, err := ParseClass(s + "s")
		if err != nil {
			return nil, err
		}
		offsuit, err := ParseClass(s + "o")
		if err != nil {
			return nil, err
		}
		return []Class{suited, offsuit}, nil
	}
	c, err := ParseClass(s)
	if err != nil {
		return nil, err
	}
	return []Class{c}, nil
}

// expandPlus handles "TT+" (TT through AA) and "ATs+" (AT through AK).
func expandPlus(base string) ([]Class, error) {
	templates, err := expandSingle(base)
	if err != nil {
		return nil, err
	}

	var classes []Class
	for _, t := range templates {
		if t.Kind == Pair {
			for rank := t.High; rank <= poker.Ace; rank++ {
				classes = append(classes, Class{High: rank, Low: rank, Kind: Pair})
			}
			continue
		}
		for rank := t.Low; rank < t.High; rank++ {
			classes = append(classes, Class{High: t.High, Low: rank, Kind: t.Kind})
		}
	}
	return classes, nil
}

// expandDash handles "22-66" and "A5s-A2s". Both ends must share kind and,
// for unpaired hands, the high card.
func expandDash(start, end string) ([]Class, error) {
	from, err := expandSingle(start)
	if err != nil {
		return nil, err
	}
	to, err := expandSingle(end)
	if err != nil {
		return nil, err
	}
	if len(from) != len(to) {
		return nil, fmt.Errorf("%w: %s-%s mixes hand kinds", ErrInvalidClass, start, end)
	}

	var classes []Class
	for i := range from {
		a, b := from[i], to[i]
		if a.Kind != b.Kind {
			return nil, fmt.Errorf("%w: %s-%s mixes hand kinds", ErrInvalidClass, start, end)
		}
		if a.Kind == Pair {
			for rank := min(a.High, b.High); rank <= max(a.High, b.High); rank++ {
				classes = append(classes, Class{High: rank, Low: rank, Kind: Pair})
			}
			continue
		}
		if a.High != b.High {
			return nil, fmt.Errorf("%w: unsupported range format %s-%s", ErrInvalidClass, start, end)
		}
		for rank := min(a.Low, b.Low); rank <= max(a.Low, b.Low); rank++ {
			classes = append(classes, Class{High: a.High, Low: rank, Kind: a.Kind})
		}
	}
	return classes, nil
}
