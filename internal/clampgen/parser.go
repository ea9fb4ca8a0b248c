package clampgen

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Stylesheet summarizes the rules of a parsed stylesheet.
type Stylesheet struct {
	Classes     map[string]bool // unescaped class names: "top-clamp-7.5vw-7.1vh"
	Order       []string        // class names in first-seen order
	Rules       int             // style rules (selector blocks)
	MediaBlocks int             // @media blocks
	MinBlocks   int             // @media blocks opened by a min-* feature
	MaxBlocks   int             // @media blocks opened by a max-* feature
}

// HasClass reports whether the stylesheet defines name.
func (s *Stylesheet) HasClass(name string) bool {
	return s.Classes[name]
}

// parserState tracks where the lexer is while walking the token stream.
type parserState struct {
	sheet     *Stylesheet
	blocks    []bool   // open blocks, true for declaration blocks
	selectors []string // classes seen in the current prelude
	inAtRule  bool     // between an at-keyword and its block or semicolon
	inMedia   bool     // inside an @media prelude
	mediaSeen bool     // first media feature already classified
	afterDot  bool     // previous token was a '.' delimiter
}

func (s *parserState) inDeclarations() bool {
	return len(s.blocks) > 0 && s.blocks[len(s.blocks)-1]
}

// ParseStylesheet walks content with the CSS lexer and collects the class
// selectors of every style rule, including rules nested in @media blocks.
func ParseStylesheet(content string) (*Stylesheet, error) {
	state := &parserState{
		sheet: &Stylesheet{Classes: make(map[string]bool)},
	}

	lexer := css.NewLexer(parse.NewInputString(content))
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && err != io.EOF {
				return nil, fmt.Errorf("lex stylesheet: %w", err)
			}
			break
		}
		state.handle(tt, text)
	}

	return state.sheet, nil
}

// ParseStylesheetFile reads and parses the stylesheet at path.
func ParseStylesheetFile(path string) (*Stylesheet, error) {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stylesheet: %w", err)
	}
	return ParseStylesheet(string(content))
}

func (s *parserState) handle(tt css.TokenType, text []byte) {
	afterDot := s.afterDot
	s.afterDot = false

	if s.inDeclarations() && tt != css.LeftBraceToken && tt != css.RightBraceToken {
		return
	}

	switch tt {
	case css.AtKeywordToken:
		s.inAtRule = true
		if strings.EqualFold(string(text), "@media") {
			s.sheet.MediaBlocks++
			s.inMedia = true
			s.mediaSeen = false
		}

	case css.IdentToken:
		if s.inMedia && !s.mediaSeen {
			s.mediaSeen = true
			feature := strings.ToLower(string(text))
			switch {
			case strings.HasPrefix(feature, "min-"):
				s.sheet.MinBlocks++
			case strings.HasPrefix(feature, "max-"):
				s.sheet.MaxBlocks++
			}
		}
		if afterDot {
			s.selectors = append(s.selectors, UnescapeIdent(string(text)))
		}

	case css.DelimToken:
		if !s.inAtRule && len(text) > 0 && text[0] == '.' {
			s.afterDot = true
		}

	case css.SemicolonToken:
		s.resetPrelude()

	case css.LeftBraceToken:
		isRule := !s.inAtRule
		if isRule && !s.inDeclarations() {
			s.sheet.Rules++
			for _, name := range s.selectors {
				if !s.sheet.Classes[name] {
					s.sheet.Classes[name] = true
					s.sheet.Order = append(s.sheet.Order, name)
				}
			}
		}
		s.blocks = append(s.blocks, isRule)
		s.resetPrelude()

	case css.RightBraceToken:
		if len(s.blocks) > 0 {
			s.blocks = s.blocks[:len(s.blocks)-1]
		}
		s.resetPrelude()
	}
}

func (s *parserState) resetPrelude() {
	s.selectors = nil
	s.inAtRule = false
	s.inMedia = false
	s.mediaSeen = false
}

// UnescapeIdent resolves CSS escapes in an identifier: `7\.5` -> "7.5",
// `\31 0` -> "10".
func UnescapeIdent(ident string) string {
	if !strings.Contains(ident, `\`) {
		return ident
	}

	var b strings.Builder
	for i := 0; i < len(ident); i++ {
		c := ident[i]
		if c != '\\' || i+1 >= len(ident) {
			b.WriteByte(c)
			continue
		}

		j := i + 1
		for j < len(ident) && j-i <= 6 && isHex(ident[j]) {
			j++
		}
		if j == i+1 {
			// Escaped literal character.
			b.WriteByte(ident[j])
			i = j
			continue
		}

		code, err := strconv.ParseUint(ident[i+1:j], 16, 32)
		if err != nil || code == 0 || code > 0x10FFFF {
			b.WriteRune('�')
		} else {
			b.WriteRune(rune(code))
		}
		if j < len(ident) && (ident[j] == ' ' || ident[j] == '\t' || ident[j] == '\n') {
			j++
		}
		i = j - 1
	}
	return b.String()
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
