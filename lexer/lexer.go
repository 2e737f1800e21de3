// Package lexer tokenizes C-subset source text into a token.Token stream.
// It strips whitespace and comments and never produces tokens for them.
package lexer

import (
	"strconv"

	"github.com/chadbramwell/write-a-c-compiler-sub000/internal/intern"
	"github.com/chadbramwell/write-a-c-compiler-sub000/token"
)

// LexError reports an unrecognized byte, a bad literal, or an unterminated
// comment or character literal.
type LexError struct {
	Pos     token.Pos
	Message string
}

func (e *LexError) Error() string {
	return e.Pos.String() + ": " + e.Message
}

func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

// Lexer scans a rune buffer into tokens. It mirrors the single-pass,
// cursor-over-a-rune-slice design used throughout this codebase's other
// hand-rolled scanners (see parser.Parser): advance/peek never backtrack,
// so the whole buffer is held in memory up front.
type Lexer struct {
	src          []rune
	total        int
	position     int
	readPosition int
	currentChar  rune
	line         int32
	column       int

	tokens []token.Token
}

// New creates a Lexer over src.
func New(src string) *Lexer {
	l := &Lexer{src: []rune(src), line: 1}
	l.total = len(l.src)
	l.readChar()
	return l
}

func (l *Lexer) isFinished() bool {
	return l.readPosition > l.total
}

func (l *Lexer) readChar() {
	if l.readPosition >= l.total {
		l.currentChar = 0
	} else {
		l.currentChar = l.src[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) peek() rune {
	if l.readPosition >= l.total {
		return 0
	}
	return l.src[l.readPosition]
}

func (l *Lexer) pos() token.Pos {
	return token.Pos{Line: l.line, Column: l.column}
}

func (l *Lexer) skipWhitespaceAndComments() error {
	for {
		switch l.currentChar {
		case ' ', '\t', '\r', '\v', '\f':
			l.readChar()
		case '\n':
			l.line++
			l.column = 0
			l.readChar()
		case '/':
			if l.peek() == '/' {
				for l.currentChar != '\n' && l.currentChar != 0 {
					l.readChar()
				}
				continue
			}
			if l.peek() == '*' {
				startPos := l.pos()
				l.readChar()
				l.readChar()
				closed := false
				for l.currentChar != 0 {
					if l.currentChar == '*' && l.peek() == '/' {
						l.readChar()
						l.readChar()
						closed = true
						break
					}
					if l.currentChar == '\n' {
						l.line++
						l.column = 0
					}
					l.readChar()
				}
				if !closed {
					return &LexError{Pos: startPos, Message: "unterminated block comment"}
				}
				continue
			}
			return nil
		default:
			return nil
		}
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.currentChar) || isDigit(l.currentChar) {
		l.readChar()
	}
	return string(l.src[start:l.position])
}

func (l *Lexer) readNumber() (int64, error) {
	start := l.position
	startPos := l.pos()
	for isDigit(l.currentChar) {
		l.readChar()
	}
	text := string(l.src[start:l.position])
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, &LexError{Pos: startPos, Message: "numeric literal out of 64-bit range: " + text}
	}
	return n, nil
}

// readCharLiteral reads 'x' (or an escape like '\n') and returns its
// numeric value.
func (l *Lexer) readCharLiteral() (int64, error) {
	startPos := l.pos()
	l.readChar() // consume opening quote
	if l.currentChar == 0 || l.currentChar == '\'' {
		return 0, &LexError{Pos: startPos, Message: "empty character literal"}
	}
	var value rune
	if l.currentChar == '\\' {
		l.readChar()
		switch l.currentChar {
		case 'n':
			value = '\n'
		case 't':
			value = '\t'
		case '\\':
			value = '\\'
		case '\'':
			value = '\''
		case '0':
			value = 0
		default:
			return 0, &LexError{Pos: startPos, Message: "unrecognized escape sequence in character literal"}
		}
		l.readChar()
	} else {
		value = l.currentChar
		l.readChar()
	}
	if l.currentChar != '\'' {
		return 0, &LexError{Pos: startPos, Message: "unterminated character literal"}
	}
	l.readChar()
	return int64(value), nil
}

// twoCharOps lists the multi-character operators, checked greedily before
// their single-character prefix so "<=" is never lexed as "<" then "=".
var twoCharOps = map[rune]struct {
	second rune
	kind   token.Kind
}{
	'&': {'&', token.LAND},
	'|': {'|', token.LOR},
	'=': {'=', token.EQ},
	'!': {'=', token.NE},
	'<': {'=', token.LE},
	'>': {'=', token.GE},
}

var singleCharOps = map[rune]bool{
	'(': true, ')': true, '{': true, '}': true, ';': true, ',': true,
	'=': true, '+': true, '-': true, '*': true, '/': true, '%': true,
	'<': true, '>': true, '!': true, '~': true, '?': true, ':': true,
}

// Scan tokenizes the whole buffer and returns the resulting token stream
// terminated by an EOF token. It stops at the first LexError.
func (l *Lexer) Scan() ([]token.Token, error) {
	for {
		if err := l.skipWhitespaceAndComments(); err != nil {
			return l.tokens, err
		}
		if l.currentChar == 0 {
			l.emit(token.Token{Kind: token.EOF, Pos: l.pos()})
			return l.tokens, nil
		}

		pos := l.pos()
		switch {
		case isLetter(l.currentChar):
			name := l.readIdentifier()
			if kw, ok := token.Lookup(name); ok {
				l.emit(token.Token{Kind: kw, Pos: pos})
			} else {
				l.emit(token.Token{Kind: token.Ident, Name: intern.Intern(name), Pos: pos})
			}

		case isDigit(l.currentChar):
			n, err := l.readNumber()
			if err != nil {
				return l.tokens, err
			}
			l.emit(token.Token{Kind: token.Constant, Num: n, Pos: pos})

		case l.currentChar == '\'':
			n, err := l.readCharLiteral()
			if err != nil {
				return l.tokens, err
			}
			l.emit(token.Token{Kind: token.Constant, Num: n, Pos: pos})

		default:
			if two, ok := twoCharOps[l.currentChar]; ok && l.peek() == two.second {
				l.readChar()
				l.readChar()
				l.emit(token.Token{Kind: two.kind, Pos: pos})
				continue
			}
			if singleCharOps[l.currentChar] {
				kind := token.Kind(l.currentChar)
				l.readChar()
				l.emit(token.Token{Kind: kind, Pos: pos})
				continue
			}
			return l.tokens, &LexError{Pos: pos, Message: "unrecognized byte " + strconv.QuoteRune(l.currentChar)}
		}
	}
}

func (l *Lexer) emit(t token.Token) {
	l.tokens = append(l.tokens, t)
}
