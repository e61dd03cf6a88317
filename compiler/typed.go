package compiler

import "strconv"

// Role classifies an element by its structural position in the tree.
type Role int

const (
	RoleRoot Role = iota
	RoleDeclaration
	RoleVariable
	RoleAttribute
)

func (r Role) String() string {
	switch r {
	case RoleRoot:
		return "Root"
	case RoleDeclaration:
		return "Declaration"
	case RoleVariable:
		return "Variable"
	case RoleAttribute:
		return "Attribute"
	default:
		return "Unknown"
	}
}

// ClassAttr is one (name, type-tag) pair in an attribute signature. TypeTag
// is either the literal "string" or a decimal digit string naming a forward
// reference to another entry in the type set.
type ClassAttr struct {
	Name    string
	TypeTag string
}

// Signature is the ordered attribute-name-to-type-tag list that identifies a
// structural type. Order reflects the element that produced it (literal
// attributes first, in source order, followed by child-derived entries in
// document order); equality/subset comparisons, however, are defined over
// attribute *names* only, matching the
// reference semantic analyzer.
type Signature []ClassAttr

func (s Signature) names() map[string]bool {
	m := make(map[string]bool, len(s))
	for _, a := range s {
		m[a.Name] = true
	}
	return m
}

// subsetOf reports whether every attribute name in s also appears in other.
func (s Signature) subsetOf(other Signature) bool {
	otherNames := other.names()
	for _, a := range s {
		if !otherNames[a.Name] {
			return false
		}
	}
	return true
}

func (s Signature) sortedNames() []string {
	names := make([]string, 0, len(s))
	seen := map[string]bool{}
	for _, a := range s {
		if !seen[a.Name] {
			seen[a.Name] = true
			names = append(names, a.Name)
		}
	}
	sortStrings(names)
	return names
}

func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

func forwardRefTag(typeIndex int) string {
	return strconv.Itoa(typeIndex)
}

// TypedElement is the output of the semantic analyzer: an Element annotated
// with its structural role and its index into the minimized type set.
type TypedElement struct {
	Name      string
	TypeIndex int
	Role      Role
	Attrs     []Attr
	Children  []*TypedElement
	IsList    bool
}
