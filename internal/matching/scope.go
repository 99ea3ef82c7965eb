package matching

import "sort"

// Scope is the set of candidate ids a caller is allowed to see. The zero
// value is unrestricted (any candidate is admissible).
type Scope struct {
	restricted bool
	ids        map[string]struct{}
}

func Unrestricted() Scope {
	return Scope{}
}

func Restricted(ids []string) Scope {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id != "" {
			set[id] = struct{}{}
		}
	}
	return Scope{restricted: true, ids: set}
}

func (s Scope) IsRestricted() bool {
	return s.restricted
}

// Empty reports a restricted scope with no candidates in it. Such a scope
// must short-circuit to zero matches before any oracle call.
func (s Scope) Empty() bool {
	return s.restricted && len(s.ids) == 0
}

func (s Scope) Size() int {
	return len(s.ids)
}

func (s Scope) Contains(id string) bool {
	if !s.restricted {
		return true
	}
	_, ok := s.ids[id]
	return ok
}

func (s Scope) IDs() []string {
	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
