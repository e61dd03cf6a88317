package compiler

import "fmt"

// openElement tracks an element-stack entry: the Start token that opened it
// and the children accumulated so far for it.
type openElement struct {
	name     string
	attrs    []Attr
	children []*Element
}

// BuildTree runs the single-pass stack algorithm over
// an XML token stream and returns the single root Element.
func BuildTree(tokens []XMLToken) (*Element, error) {
	var stack []*openElement
	var roots []*Element

	appendChild := func(e *Element) {
		if len(stack) > 0 {
			top := stack[len(stack)-1]
			top.children = append(top.children, e)
		} else {
			roots = append(roots, e)
		}
	}

	for _, tok := range tokens {
		switch tok.Kind {
		case XMLStart:
			stack = append(stack, &openElement{name: tok.Name, attrs: tok.Attrs})

		case XMLSelfClosing:
			appendChild(newElement(tok.Name, tok.Attrs))

		case XMLEnd:
			if len(stack) == 0 {
				return nil, &InvalidTransitionError{Stage: "treebuilder", Msg: fmt.Sprintf("unmatched end tag </%s>", tok.Name)}
			}
			top := stack[len(stack)-1]
			if top.name != tok.Name {
				return nil, &InvalidTransitionError{
					Stage: "treebuilder",
					Msg:   fmt.Sprintf("Mismatching tokens: %s and %s", top.name, tok.Name),
				}
			}
			stack = stack[:len(stack)-1]
			el := &Element{Name: top.name, Attrs: top.attrs, Children: top.children}
			appendChild(el)
		}
	}

	if len(stack) > 0 {
		return nil, &InvalidTransitionError{Stage: "treebuilder", Msg: "Unmatched start tokens remain"}
	}
	if len(roots) == 0 {
		return nil, &InvalidTransitionError{Stage: "treebuilder", Msg: "No root element found"}
	}
	if len(roots) > 1 {
		return nil, &InvalidTransitionError{Stage: "treebuilder", Msg: "There is more than one root element"}
	}

	return roots[0], nil
}
