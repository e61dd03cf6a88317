package compiler

import "fmt"

// Analyze runs the semantic analyzer over the parsed element tree: it
// classifies every element's structural role, infers a minimized set of
// structural types via a two-pass fixpoint, and produces the typed tree
// that the intermediate code generator consumes.
func Analyze(root *Element) (*TypedElement, []Signature, error) {
	if root.Name != "root" {
		return nil, nil, &SemanticError{Msg: "the tree must start with a root node"}
	}

	an := &analyzer{seenNames: map[string]bool{}}

	if _, err := an.walk(root, nil, false); err != nil {
		return nil, nil, err
	}
	an.types = minimizeTypes(an.types)

	an.seenNames = map[string]bool{}
	typedRoot, err := an.walk(root, nil, true)
	if err != nil {
		return nil, nil, err
	}

	return typedRoot, an.types, nil
}

type analyzer struct {
	types     []Signature
	seenNames map[string]bool
}

// registerType implements the subset-merging fixpoint step:
// reuse an existing type if it is a superset, replace an existing type with
// sig if sig is a strict superset of it, or else append sig as a new type.
func (a *analyzer) registerType(sig Signature) int {
	for i, existing := range a.types {
		if sig.subsetOf(existing) {
			return i
		}
		if existing.subsetOf(sig) {
			a.types[i] = sig
			return i
		}
	}
	a.types = append(a.types, sig)
	return len(a.types) - 1
}

// walk recursively classifies element and its descendants. parentRole is
// nil at the root call.
func (a *analyzer) walk(element *Element, parentRole *Role, strict bool) (*TypedElement, error) {
	var role Role
	switch {
	case parentRole == nil:
		role = RoleRoot
	case len(element.Attrs) > 0:
		role = RoleDeclaration
		if *parentRole == RoleDeclaration {
			return nil, &SemanticError{Msg: "declaration node cannot be followed by another declaration node without variable node in between"}
		}
	default:
		role = RoleVariable
		if *parentRole == RoleVariable || *parentRole == RoleAttribute {
			return nil, &SemanticError{Msg: fmt.Sprintf("node with parent role %s was followed by node with no attributes", parentRole.String())}
		}
		if *parentRole == RoleDeclaration {
			role = RoleAttribute
		}
	}

	if role != RoleRoot {
		if a.seenNames[element.Name] {
			return nil, &SemanticError{Msg: fmt.Sprintf("element with name=%s was already found", element.Name)}
		}
		a.seenNames[element.Name] = true
	}

	if len(element.Children) == 0 {
		if role == RoleRoot {
			return &TypedElement{Name: element.Name, TypeIndex: -1, Role: role}, nil
		}

		sig, err := buildSignature(element.Attrs, nil)
		if err != nil {
			return nil, err
		}
		if len(sig) == 0 {
			return nil, &SemanticError{Msg: "leaf node has to be a declaration node (must have attributes)"}
		}

		typeIndex := a.registerType(sig)
		return &TypedElement{Name: element.Name, TypeIndex: typeIndex, Role: role, Attrs: element.Attrs}, nil
	}

	children := make([]*TypedElement, len(element.Children))
	for i, c := range element.Children {
		typed, err := a.walk(c, &role, strict)
		if err != nil {
			return nil, err
		}
		children[i] = typed
	}

	if role == RoleVariable || role == RoleAttribute {
		isList := len(children) > 1 || (parentRole != nil && *parentRole == RoleRoot)

		if isList {
			first := children[0].TypeIndex
			for _, c := range children[1:] {
				if strict && c.TypeIndex != first {
					return nil, &SemanticError{Msg: "There are multiple different types in the list that is here"}
				}
			}
			if parentRole != nil && *parentRole == RoleDeclaration {
				return nil, &SemanticError{Msg: "declaration nodes cannot have attributes that are lists"}
			}
		}

		return &TypedElement{
			Name:      element.Name,
			TypeIndex: children[0].TypeIndex,
			Role:      role,
			Children:  children,
			IsList:    isList,
		}, nil
	}

	if role == RoleRoot {
		return &TypedElement{Name: element.Name, TypeIndex: -1, Role: role, Children: children}, nil
	}

	// role == RoleDeclaration with children.
	childEntries := make([]ClassAttr, len(children))
	for i, c := range children {
		childEntries[i] = ClassAttr{Name: c.Name, TypeTag: forwardRefTag(c.TypeIndex)}
	}
	sig, err := buildSignature(element.Attrs, childEntries)
	if err != nil {
		return nil, err
	}

	typeIndex := a.registerType(sig)
	return &TypedElement{
		Name:      element.Name,
		TypeIndex: typeIndex,
		Role:      role,
		Attrs:     element.Attrs,
		Children:  children,
	}, nil
}

// buildSignature combines an element's literal attributes with any
// child-derived entries into a single signature, rejecting duplicate names
// across the combined set
// applies across literal attributes and synthetic child entries alike).
func buildSignature(attrs []Attr, childEntries []ClassAttr) (Signature, error) {
	sig := make(Signature, 0, len(attrs)+len(childEntries))
	seen := map[string]bool{}
	for _, a := range attrs {
		if seen[a.Name] {
			return nil, &SemanticError{Msg: "multiple declarations of one attribute in a single node"}
		}
		seen[a.Name] = true
		sig = append(sig, ClassAttr{Name: a.Name, TypeTag: "string"})
	}
	for _, c := range childEntries {
		if seen[c.Name] {
			return nil, &SemanticError{Msg: "multiple declarations of one attribute in a single node"}
		}
		seen[c.Name] = true
		sig = append(sig, c)
	}
	return sig, nil
}

// minimizeTypes reduces a list of signatures to the smallest antichain under
// subset ordering (dropping any signature that is a proper subset of
// another), then sorts it deterministically by the tuple of sorted
// attribute names, so class numbering is reproducible across runs (spec
// §4.3, §9). It is idempotent: running it again on its own output returns
// an equal list.
func minimizeTypes(types []Signature) []Signature {
	seen := map[string]bool{}
	var deduped []Signature
	for _, sig := range types {
		key := signatureKey(sig)
		if seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, sig)
	}

	var minimized []Signature
	for i, sig := range deduped {
		properSubset := false
		for j, other := range deduped {
			if i == j {
				continue
			}
			if sig.subsetOf(other) {
				properSubset = true
				break
			}
		}
		if !properSubset {
			minimized = append(minimized, sig)
		}
	}

	sortSignatures(minimized)
	return minimized
}

func signatureKey(sig Signature) string {
	names := sig.sortedNames()
	key := ""
	for i, n := range names {
		if i > 0 {
			key += "\x00"
		}
		key += n
	}
	return key
}

func sortSignatures(sigs []Signature) {
	for i := 1; i < len(sigs); i++ {
		for j := i; j > 0 && signatureKey(sigs[j-1]) > signatureKey(sigs[j]); j-- {
			sigs[j-1], sigs[j] = sigs[j], sigs[j-1]
		}
	}
}
