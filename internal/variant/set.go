package variant

import (
	"strings"
)

// Set is the group of variants a process builds tables for. The base
// variant is always a member.
type Set struct {
	bits uint32
}

// All returns a set holding every known variant.
func All() Set {
	return Set{bits: 1<<uint(VariantNB) - 1}
}

// NewSet returns a set holding Chess and the given variants.
func NewSet(vs ...Variant) Set {
	s := Set{bits: 1 << uint(Chess)}
	for _, v := range vs {
		if v.IsValid() {
			s.bits |= 1 << uint(v)
		}
	}
	return s
}

// ParseSet reads a comma separated list of variant names. An empty string or
// "all" selects every variant.
func ParseSet(list string) (Set, error) {
	list = strings.TrimSpace(list)
	if list == "" || strings.EqualFold(list, "all") {
		return All(), nil
	}

	var vs []Variant
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		v, err := Parse(name)
		if err != nil {
			return Set{}, err
		}
		vs = append(vs, v)
	}
	return NewSet(vs...), nil
}

// Has reports whether v is in the set.
func (s Set) Has(v Variant) bool {
	return v.IsValid() && s.bits&(1<<uint(v)) != 0
}

// Variants lists the members in catalogue order, base variant first.
func (s Set) Variants() []Variant {
	var out []Variant
	for v := Chess; v < NoVariant; v++ {
		if s.Has(v) {
			out = append(out, v)
		}
	}
	return out
}

// Len returns the number of variants in the set.
func (s Set) Len() int {
	return len(s.Variants())
}

func (s Set) String() string {
	names := make([]string, 0, VariantNB)
	for _, v := range s.Variants() {
		names = append(names, v.String())
	}
	return strings.Join(names, ",")
}
