package regexdfa

import "strings"

// TokenKind tells literals apart from operators, so '|' or '*' never doubles as an alphabet symbol.
type TokenKind int

const (
	TokenLiteral = TokenKind(iota) // A single alphabet symbol
	TokenUnion                     // Alternation, written '|'
	TokenConcat                    // Concatenation, implicit in the pattern
	TokenStar                      // Kleene star, written '*'
	TokenLParen                    // '(' ; never reaches the postfix stream
	TokenRParen                    // ')' ; never reaches the postfix stream
)

// Token is one element of a pattern. Symbol is only meaningful for literals. Pos is the byte offset
// in the pattern; a synthesized concatenation takes the offset of its right operand.
type Token struct {
	Kind   TokenKind
	Symbol byte
	Pos    int
}

func (k TokenKind) String() string {
	switch k {
	case TokenLiteral:
		return "literal"
	case TokenUnion:
		return "'|'"
	case TokenConcat:
		return "concatenation"
	case TokenStar:
		return "'*'"
	case TokenLParen:
		return "'('"
	case TokenRParen:
		return "')'"
	}
	return "unknown"
}

// precedence of an operator; higher binds tighter.
func (k TokenKind) precedence() int {
	switch k {
	case TokenUnion:
		return 1
	case TokenConcat:
		return 2
	case TokenStar:
		return 3
	}
	return 0
}

func (k TokenKind) isOperator() bool {
	return k.precedence() > 0
}

func (t Token) String() string {
	switch t.Kind {
	case TokenLiteral:
		return string([]byte{t.Symbol})
	case TokenUnion:
		return "|"
	case TokenConcat:
		return "."
	case TokenStar:
		return "*"
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	}
	return "?"
}

// FormatTokens renders a token stream, writing concatenation as '.'.
func FormatTokens(tokens []Token) string {
	b := new(strings.Builder)
	for _, t := range tokens {
		b.WriteString(t.String())
	}
	return b.String()
}
