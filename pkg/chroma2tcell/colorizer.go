// Package chroma2tcell renders chroma token streams as tview color tags.
package chroma2tcell

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/rivo/tview"
)

var getStyle = styles.Get

var getFallbackStyle = func() *chroma.Style {
	return styles.Fallback
}

func Colorize(text, styleName string, lexer chroma.Lexer) (string, error) {
	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return "", err
	}

	style := getStyle(styleName)
	if style == nil {
		style = getFallbackStyle()
	}

	var sb strings.Builder
	for _, token := range iterator.Tokens() {
		color := style.Get(token.Type)
		if color.IsZero() {
			sb.WriteString(tview.Escape(token.Value))
			continue
		}

		sb.WriteString("[" + color.Colour.String() + "]")
		sb.WriteString(tview.Escape(token.Value))
		sb.WriteString("[-]")
	}

	return sb.String(), nil
}

var matchLexer = lexers.Match

// DefaultStyle is the chroma style used for file previews.
const DefaultStyle = "dracula"

// ColorizeFile picks a lexer by file name. The text of files no lexer
// matches is returned as is and the flag is false.
func ColorizeFile(name, text string) (string, bool, error) {
	lexer := matchLexer(name)
	if lexer == nil {
		return text, false, nil
	}
	colorized, err := Colorize(text, DefaultStyle, lexer)
	if err != nil {
		return "", false, fmt.Errorf("failed to colorize %s: %w", name, err)
	}
	return colorized, true, nil
}
