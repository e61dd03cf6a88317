package compiler

import "strings"

// scanState is one of the five states of the lexical state machine: Start,
// InText, InSymbol, InString, AfterString.
type scanState int

const (
	scanStart scanState = iota
	scanInText
	scanInSymbol
	scanInString
	scanAfterString
)

// Scan runs the character-driven lexical state machine over src and returns
// the resulting token stream. It is a flat match over (state, input class)
// pairs, one handler per state: no dynamic dispatch needed.
func Scan(src []rune) ([]Token, error) {
	var tokens []Token
	var accum strings.Builder
	state := scanStart

	emit := func(kind TokenKind) {
		tokens = append(tokens, Token{Kind: kind, Value: accum.String()})
		accum.Reset()
	}

	// runes is src with a trailing EOF sentinel so the final accumulated
	// token, if any, is flushed by the driver.
	runes := make([]rune, 0, len(src)+1)
	runes = append(runes, src...)
	runes = append(runes, eof)

	for _, ch := range runes {
		switch state {
		case scanStart:
			switch {
			case ch == eof:
				// no emit, stays in Start
			case isWhitespace(ch):
				// stays in Start
			case isLetter(ch):
				accum.WriteRune(ch)
				state = scanInText
			case isSymbolChar(ch):
				accum.WriteRune(ch)
				state = scanInSymbol
			case ch == '"':
				state = scanInString
			case isDigit(ch):
				return nil, &UnexpectedNumericError{}
			default:
				return nil, &InvalidTransitionError{Stage: "scanner", Msg: "unexpected character in Start state"}
			}

		case scanInText:
			switch {
			case isIdentChar(ch):
				accum.WriteRune(ch)
			case ch == eof || isWhitespace(ch):
				emit(TokenText)
				state = scanStart
			case isSymbolChar(ch):
				emit(TokenText)
				accum.WriteRune(ch)
				state = scanInSymbol
			default:
				return nil, &InvalidTransitionError{Stage: "scanner", Msg: "unexpected character in InText state"}
			}

		case scanInSymbol:
			switch {
			case ch != eof && isSymbolChar(ch) && isSymbolPrefix(accum.String()+string(ch)):
				accum.WriteRune(ch)
			case accum.String() == "/":
				// a '/' that does not form "/>" sits inside an identifier
				return nil, &UnexpectedSlashError{}
			case isLetter(ch):
				emit(TokenSymbol)
				accum.WriteRune(ch)
				state = scanInText
			case isDigit(ch):
				return nil, &UnexpectedNumericError{}
			case ch == '"':
				emit(TokenSymbol)
				state = scanInString
			case ch == eof || isWhitespace(ch):
				emit(TokenSymbol)
				state = scanStart
			case isSymbolChar(ch):
				emit(TokenSymbol)
				accum.WriteRune(ch)
			default:
				return nil, &InvalidTransitionError{Stage: "scanner", Msg: "unexpected character in InSymbol state"}
			}

		case scanInString:
			switch {
			case ch == '"':
				state = scanAfterString
			case ch == eof || ch == '\n':
				return nil, &UnterminatedStringError{}
			default:
				accum.WriteRune(ch)
			}

		case scanAfterString:
			switch {
			case isWhitespace(ch) && ch != eof:
				emit(TokenString)
				state = scanStart
			case ch == eof:
				emit(TokenString)
				state = scanStart
			case isSymbolChar(ch):
				emit(TokenString)
				accum.WriteRune(ch)
				state = scanInSymbol
			default:
				return nil, &QuoteFollowedByNonWhitespaceError{}
			}
		}
	}

	return tokens, nil
}

// isSymbolPrefix reports whether s is a prefix of some recognized symbol.
// This is the derived "all-symbol-chars" check, used to
// decide whether InSymbol should keep accumulating (e.g. "/" extending to
// "/>" ) or flush what it has.
func isSymbolPrefix(s string) bool {
	for _, sym := range recognizedSymbols {
		if strings.HasPrefix(sym, s) {
			return true
		}
	}
	return false
}
