package compiler

import "strconv"

// Generate lowers a typed tree and its minimized type set into intermediate
// code: one Class per type, and a topologically-ordered list of
// Declarations where every Declaration that references another by name
// appears after the Declaration it references.
func Generate(typedRoot *TypedElement, types []Signature) (*IntermediateCode, error) {
	classes := make([]Class, len(types))
	for i, sig := range types {
		attrs := make([]ClassAttr, len(sig))
		for j, a := range sig {
			attrs[j] = ClassAttr{Name: a.Name, TypeTag: resolveTypeTag(a.TypeTag)}
		}
		classes[i] = Class{Name: classNameForIndex(i), Attrs: attrs}
	}

	if typedRoot.Role != RoleRoot {
		return nil, &SemanticError{Msg: "intergen: typed tree must start with a root node"}
	}

	g := &intergen{inProgress: map[*TypedElement]bool{}}
	for _, child := range typedRoot.Children {
		if _, err := g.lower(child); err != nil {
			return nil, err
		}
	}

	return &IntermediateCode{Classes: classes, Declarations: g.decls}, nil
}

// resolveTypeTag turns a forward-reference tag ("0", "1", ...) produced by
// the semantic analyzer into the synthesized class name it now refers to;
// the literal "string" tag passes through unchanged.
func resolveTypeTag(tag string) string {
	if tag == "string" {
		return tag
	}
	idx, err := strconv.Atoi(tag)
	if err != nil {
		return tag
	}
	return classNameForIndex(idx)
}

type intergen struct {
	decls      []Declaration
	inProgress map[*TypedElement]bool
}

// lower recursively lowers a typed subtree in post-order, so every name a
// Declaration references has already been appended to g.decls by the time
// the referencing Declaration is. It returns the instance name other
// Declarations should use to refer to element: for an Attribute node this
// is its single child's name, since an Attribute collapses into its
// child's Declaration rather than emitting its own.
func (g *intergen) lower(element *TypedElement) (string, error) {
	if g.inProgress[element] {
		return "", &CyclicDependencyError{}
	}
	g.inProgress[element] = true
	defer delete(g.inProgress, element)

	switch element.Role {
	case RoleAttribute:
		return g.lower(element.Children[0])

	case RoleVariable:
		attrs := make([]InstanceAttr, len(element.Children))
		for i, c := range element.Children {
			ref, err := g.lower(c)
			if err != nil {
				return "", err
			}
			attrs[i] = InstanceAttr{Name: c.Name, Ref: ref, IsRef: true}
		}
		g.decls = append(g.decls, Declaration{
			InstanceName: element.Name,
			ClassName:    classNameForIndex(element.TypeIndex),
			Attrs:        attrs,
			IsList:       element.IsList,
		})
		return element.Name, nil

	default: // RoleDeclaration
		attrs := make([]InstanceAttr, 0, len(element.Attrs)+len(element.Children))
		for _, a := range element.Attrs {
			attrs = append(attrs, InstanceAttr{Name: a.Name, Value: a.Value})
		}
		for _, c := range element.Children {
			ref, err := g.lower(c)
			if err != nil {
				return "", err
			}
			attrs = append(attrs, InstanceAttr{Name: c.Name, Ref: ref, IsRef: true})
		}
		g.decls = append(g.decls, Declaration{
			InstanceName: element.Name,
			ClassName:    classNameForIndex(element.TypeIndex),
			Attrs:        attrs,
			IsList:       false,
		})
		return element.Name, nil
	}
}
