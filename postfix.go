package regexdfa

// Tokenize splits a pattern into tokens, one per byte. The bytes '(', ')', '|' and '*' are
// reserved for the operators; every other byte is a literal.
func Tokenize(pattern string) []Token {
	tokens := make([]Token, 0, len(pattern))
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		t := Token{Kind: TokenLiteral, Symbol: c, Pos: i}
		switch c {
		case '(':
			t = Token{Kind: TokenLParen, Pos: i}
		case ')':
			t = Token{Kind: TokenRParen, Pos: i}
		case '|':
			t = Token{Kind: TokenUnion, Pos: i}
		case '*':
			t = Token{Kind: TokenStar, Pos: i}
		}
		tokens = append(tokens, t)
	}
	return tokens
}

// insertConcat makes concatenation explicit: a concatenation goes between every adjacent pair of
// tokens, except after '(' or '|' and before ')', '|' or '*'.
func insertConcat(tokens []Token) []Token {
	res := make([]Token, 0, 2*len(tokens))
	for i, t := range tokens {
		res = append(res, t)
		if i+1 == len(tokens) {
			break
		}
		next := tokens[i+1]
		if t.Kind == TokenLParen || t.Kind == TokenUnion {
			continue
		}
		if next.Kind == TokenRParen || next.Kind == TokenUnion || next.Kind == TokenStar {
			continue
		}
		res = append(res, Token{Kind: TokenConcat, Pos: next.Pos})
	}
	return res
}

// ToPostfix converts a pattern to postfix order with the shunting-yard algorithm. Operators of
// equal precedence associate to the left. An unmatched ')' or '(' is a malformed pattern.
func ToPostfix(pattern string) ([]Token, error) {
	tokens := insertConcat(Tokenize(pattern))

	res := make([]Token, 0, len(tokens))
	op := make([]Token, 0)
	for _, t := range tokens {
		switch {
		case t.Kind == TokenLParen:
			op = append(op, t)
		case t.Kind == TokenRParen:
			for len(op) > 0 && op[len(op)-1].Kind != TokenLParen {
				res = append(res, op[len(op)-1])
				op = op[:len(op)-1]
			}
			if len(op) == 0 {
				return nil, malformed("unmatched ')' at position %d", t.Pos)
			}
			// Discard the '('.
			op = op[:len(op)-1]
		case t.Kind.isOperator():
			for len(op) > 0 {
				top := op[len(op)-1]
				if top.Kind == TokenLParen || top.Kind.precedence() < t.Kind.precedence() {
					break
				}
				res = append(res, top)
				op = op[:len(op)-1]
			}
			op = append(op, t)
		default:
			res = append(res, t)
		}
	}

	for len(op) > 0 {
		top := op[len(op)-1]
		if top.Kind == TokenLParen {
			return nil, malformed("unmatched '(' at position %d", top.Pos)
		}
		res = append(res, top)
		op = op[:len(op)-1]
	}
	return res, nil
}
