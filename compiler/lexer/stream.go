package lexer

// Stream buffers a Lexer with 1-token lookahead for the parser's Peek/Expect
// style of consumption.
type Stream struct {
	lex     *Lexer
	lookahd *Token
}

// NewStream builds a Stream over the given source text.
func NewStream(src string) *Stream {
	return &Stream{lex: New(src)}
}

// Peek returns the next token without consuming it.
func (s *Stream) Peek() (Token, error) {
	if s.lookahd == nil {
		tok, err := s.lex.Next()
		if err != nil {
			return Token{}, err
		}
		s.lookahd = &tok
	}
	return *s.lookahd, nil
}

// Advance consumes and returns the next token.
func (s *Stream) Advance() (Token, error) {
	if s.lookahd != nil {
		tok := *s.lookahd
		s.lookahd = nil
		return tok, nil
	}
	return s.lex.Next()
}
