package runconfig

import (
	"strings"

	"golang.org/x/exp/slices"
)

// KeywordSet is a set of test keywords. Membership is exact and case-sensitive. Duplicates are
// dropped when the set is built, but the order in which keywords were first seen is kept so that
// the set prints and serializes the same way every time.
//
// The zero value is an empty set.
type KeywordSet struct {
	keywords []string
}

func NewKeywordSet(keywords ...string) KeywordSet {
	var s KeywordSet
	s.add(keywords...)
	return s
}

func (s *KeywordSet) add(keywords ...string) {
	for _, k := range keywords {
		if !slices.Contains(s.keywords, k) {
			s.keywords = append(s.keywords, k)
		}
	}
}

// Has returns true if the keyword is in the set.
func (s KeywordSet) Has(keyword string) bool {
	return slices.Contains(s.keywords, keyword)
}

// HasAny returns true if any of the keywords is in the set.
func (s KeywordSet) HasAny(keywords ...string) bool {
	for _, k := range keywords {
		if s.Has(k) {
			return true
		}
	}
	return false
}

func (s KeywordSet) Len() int { return len(s.keywords) }

// Keywords returns the members in first-seen order. The returned slice is a copy.
func (s KeywordSet) Keywords() []string {
	return append([]string{}, s.keywords...)
}

// Union returns a new set containing the members of both sets.
func (s KeywordSet) Union(other KeywordSet) KeywordSet {
	ret := KeywordSet{keywords: slices.Clone(s.keywords)}
	ret.add(other.keywords...)
	return ret
}

// Equal compares two sets without regard to order.
func (s KeywordSet) Equal(other KeywordSet) bool {
	if len(s.keywords) != len(other.keywords) {
		return false
	}
	for _, k := range s.keywords {
		if !other.Has(k) {
			return false
		}
	}
	return true
}

func (s KeywordSet) String() string {
	return strings.Join(s.keywords, ",")
}

// Set is called by the command line parser. The value may be a comma-separated list.
func (s *KeywordSet) Set(value string) error {
	for _, k := range strings.Split(value, ",") {
		if k = strings.TrimSpace(k); k != "" {
			s.add(k)
		}
	}
	return nil
}
