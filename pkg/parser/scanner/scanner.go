package scanner

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/yfyang86/form-repl/pkg/parser/token"
	"github.com/yfyang86/form-repl/pkg/types"
)

type Position struct {
	Filename string
	Line     int
	Column   int
}

func (pos Position) String() string {
	if pos.Filename == "" {
		return fmt.Sprintf("%d:%d", pos.Line, pos.Column)
	}
	return fmt.Sprintf("%s:%d:%d", pos.Filename, pos.Line, pos.Column)
}

type ScanCtx struct {
	Token      rune
	Position   Position
	Identifier types.Identifier
	Number     float64
}

// Scanner never fails: unknown characters are skipped, malformed numbers
// scan as 0, and stray dots are discarded. The only terminal token is EOF.
type Scanner struct {
	rr       io.RuneReader
	filename string
	line     int
	column   int
	offset   int
	unread   bool
	read     rune
	buf      strings.Builder
}

func (s *Scanner) Init(rr io.RuneReader, fn string) {
	s.rr = rr
	s.filename = fn
	s.line = 1
	s.column = 0
	s.offset = 0
	s.unread = false
}

func (s *Scanner) readRune() (rune, bool) {
	if s.unread {
		s.unread = false
	} else {
		r, _, err := s.rr.ReadRune()
		if err != nil {
			return 0, false
		}
		s.read = r
	}

	s.offset += 1
	if s.read == '\n' {
		s.line += 1
		s.column = 0
	} else {
		s.column += 1
	}
	return s.read, true
}

func (s *Scanner) unreadRune() {
	s.unread = true
	s.offset -= 1
	if s.read == '\n' {
		s.line -= 1
	} else {
		s.column -= 1
	}
}

func (s *Scanner) Scan(sctx *ScanCtx) {
	for {
		r, ok := s.readRune()
		if !ok {
			sctx.Token = token.EOF
			sctx.Position = s.position()
			return
		}

		switch {
		case r == ' ' || r == '\t' || r == '\r':
			continue
		case r == '*' && s.offset == 1:
			// A star that begins the input starts a comment, but only when
			// followed by a space; anywhere else it is multiplication.
			n, ok := s.readRune()
			if !ok {
				sctx.Token = token.Star
				sctx.Position = s.position()
				return
			}
			s.unreadRune()
			if n == ' ' {
				s.skipComment()
				continue
			}
			sctx.Token = token.Star
			sctx.Position = s.position()
			return
		case r == '.':
			// Only ".sort" is meaningful; any other dot-prefixed text is
			// silently discarded.
			sctx.Position = s.position()
			if s.scanIdentText() == "sort" {
				sctx.Token = token.Sort
				return
			}
			continue
		case r >= '0' && r <= '9':
			sctx.Position = s.position()
			s.unreadRune()
			sctx.Number = s.scanNumber()
			sctx.Token = token.Number
			return
		case r == '_' || unicode.IsLetter(r):
			sctx.Position = s.position()
			s.unreadRune()
			text := s.scanIdentText()
			if id, ok := keyword(text); ok {
				sctx.Token = token.Reserved
				sctx.Identifier = id
			} else {
				sctx.Token = token.Identifier
				sctx.Identifier = types.ID(text)
			}
			return
		case r == '\n':
			sctx.Token = token.Newline
			sctx.Position = s.position()
			return
		case r == ';':
			sctx.Token = token.EndOfStatement
			sctx.Position = s.position()
			return
		case strings.ContainsRune("+-*/^=()[],", r):
			sctx.Token = r
			sctx.Position = s.position()
			return
		default:
			// Unknown characters are skipped, never reported.
			continue
		}
	}
}

func (s *Scanner) position() Position {
	return Position{
		Filename: s.filename,
		Line:     s.line,
		Column:   s.column,
	}
}

func (s *Scanner) skipComment() {
	for {
		r, ok := s.readRune()
		if !ok {
			return
		}
		if r == '\n' {
			s.unreadRune()
			return
		}
	}
}

// scanNumber scans a run of digits and dots. Text that fails to parse as a
// number, such as 1.2.3, scans as zero rather than an error.
func (s *Scanner) scanNumber() float64 {
	s.buf.Reset()
	for {
		r, ok := s.readRune()
		if !ok {
			break
		}
		if (r >= '0' && r <= '9') || r == '.' {
			s.buf.WriteRune(r)
		} else {
			s.unreadRune()
			break
		}
	}

	n, err := strconv.ParseFloat(s.buf.String(), 64)
	if err != nil {
		return 0.0
	}
	return n
}

func (s *Scanner) scanIdentText() string {
	s.buf.Reset()
	for {
		r, ok := s.readRune()
		if !ok {
			break
		}
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			s.buf.WriteRune(r)
		} else {
			s.unreadRune()
			break
		}
	}
	return s.buf.String()
}

func keyword(text string) (types.Identifier, bool) {
	switch text {
	case "Symbols":
		return types.SYMBOLS, true
	case "Expression":
		return types.EXPRESSION, true
	case "Local":
		return types.LOCAL, true
	case "id":
		return types.ID_RULE, true
	case "Print":
		return types.PRINT, true
	}
	return 0, false
}
