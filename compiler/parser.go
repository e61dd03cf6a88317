package compiler

// parseState is one of the eight states of the token-driven XML state
// machine.
type parseState int

const (
	parseStart parseState = iota
	parseInDocument
	parseElementStart
	parseElementAttrSet
	parseAttributeSet
	parseAttributeSetValue
	parseElementEnd
	parseElementEndVerify
)

// Parse runs the token-driven XML state machine over tokens and returns the
// resulting XML token stream. It does not build the element
// tree; that is BuildTree's job, kept as a separate, pipelined pass.
func Parse(tokens []Token) ([]XMLToken, error) {
	var out []XMLToken
	state := parseStart

	var pendingName string
	var pendingAttrs []Attr

	invalid := func(msg string) error {
		return &InvalidTransitionError{Stage: "parser", Msg: msg}
	}

	for _, tok := range tokens {
		switch state {
		case parseStart:
			if tok.Kind == TokenSymbol && tok.Value == "<" {
				pendingName = ""
				pendingAttrs = nil
				state = parseElementStart
			} else {
				return nil, invalid("expected '<' to start the document")
			}

		case parseInDocument:
			switch {
			case tok.Kind == TokenSymbol && tok.Value == "<":
				pendingName = ""
				pendingAttrs = nil
				state = parseElementStart
			case tok.Kind == TokenSymbol && tok.Value == "</":
				state = parseElementEnd
			default:
				return nil, invalid("expected '<' or '</' in document")
			}

		case parseElementStart:
			if tok.Kind == TokenText {
				pendingName = tok.Value
				state = parseElementAttrSet
			} else {
				return nil, invalid("expected element name after '<'")
			}

		case parseElementAttrSet:
			switch {
			case tok.Kind == TokenText:
				pendingAttrs = append(pendingAttrs, Attr{Name: tok.Value})
				state = parseAttributeSet
			case tok.Kind == TokenSymbol && tok.Value == "/>":
				out = append(out, XMLToken{Kind: XMLSelfClosing, Name: pendingName, Attrs: pendingAttrs})
				state = parseInDocument
			case tok.Kind == TokenSymbol && tok.Value == ">":
				out = append(out, XMLToken{Kind: XMLStart, Name: pendingName, Attrs: pendingAttrs})
				state = parseInDocument
			default:
				return nil, invalid("expected attribute name, '/>' or '>'")
			}

		case parseAttributeSet:
			if tok.Kind == TokenSymbol && tok.Value == "=" {
				state = parseAttributeSetValue
			} else {
				return nil, invalid("expected '=' after attribute name")
			}

		case parseAttributeSetValue:
			if tok.Kind == TokenString {
				pendingAttrs[len(pendingAttrs)-1].Value = tok.Value
				state = parseElementAttrSet
			} else {
				return nil, invalid("expected quoted string after '='")
			}

		case parseElementEnd:
			if tok.Kind == TokenText {
				pendingName = tok.Value
				state = parseElementEndVerify
			} else {
				return nil, invalid("expected element name after '</'")
			}

		case parseElementEndVerify:
			if tok.Kind == TokenSymbol && tok.Value == ">" {
				out = append(out, XMLToken{Kind: XMLEnd, Name: pendingName})
				state = parseInDocument
			} else {
				return nil, invalid("expected '>' to close end tag")
			}
		}
	}

	if state != parseInDocument {
		return nil, invalid("unexpected end of token stream")
	}

	return out, nil
}
