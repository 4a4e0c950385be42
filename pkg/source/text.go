// Package source brings article text into the editor: it extracts the main text of a web page,
// lists items of RSS/Atom feeds and cleans text pasted or submitted by the user.
package source

import (
	"errors"
	"fmt"
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

// MaxTextLength is the longest article text accepted for processing, in characters
const MaxTextLength = 10000

// errors returned by ValidateText
var (
	ErrEmptyText   = errors.New("news text is required")
	ErrTextTooLong = fmt.Errorf("news text is longer than %d characters", MaxTextLength)
)

var (
	strictPolicy = bluemonday.StrictPolicy()
	spacesRe     = regexp.MustCompile(`[ \t\p{Zs}]+`)
	blankLinesRe = regexp.MustCompile(`\n{3,}`)
)

// CleanText strips HTML markup, decodes entities, collapses runs of spaces and keeps at most
// one blank line between paragraphs
func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = html.UnescapeString(strictPolicy.Sanitize(s))

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(spacesRe.ReplaceAllString(line, " "))
	}
	s = strings.Join(lines, "\n")
	return strings.TrimSpace(blankLinesRe.ReplaceAllString(s, "\n\n"))
}

// ValidateText checks the cleaned text is not empty and within MaxTextLength
func ValidateText(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrEmptyText
	}
	if utf8.RuneCountInString(s) > MaxTextLength {
		return ErrTextTooLong
	}
	return nil
}
