// Package graphql extracts the top-level selection fields of a query
// document. The content API speaks a fixed operation vocabulary, so the
// executor only needs the operation type and the names of the root fields;
// arguments are carried in the variables object, never as inline literals.
package graphql

import (
	"fmt"
	"strings"
)

type Document struct {
	Operation string // "query" or "mutation"
	Fields    []string
}

// Parse scans the document for the operation keyword and the identifiers at
// selection depth one. Nested selections, argument lists, strings and
// comments are skipped structurally.
func Parse(query string) (*Document, error) {
	src := strings.TrimSpace(query)
	if src == "" {
		return nil, fmt.Errorf("empty query document")
	}

	doc := &Document{Operation: "query"}

	i := 0
	n := len(src)

	// Operation header: "query Name($v: T)", "mutation Name", or shorthand "{".
	if src[i] != '{' {
		word, next := readWord(src, i)
		switch word {
		case "query":
			doc.Operation = "query"
		case "mutation":
			doc.Operation = "mutation"
		case "subscription":
			return nil, fmt.Errorf("subscriptions are not supported")
		default:
			return nil, fmt.Errorf("unexpected token %q at document start", word)
		}
		i = next
		// Skip operation name and variable definitions up to the first
		// top-level brace.
		parens := 0
		for i < n {
			switch src[i] {
			case '(':
				parens++
			case ')':
				parens--
			case '{':
				if parens == 0 {
					goto body
				}
			case '"':
				i = skipString(src, i)
				continue
			case '#':
				i = skipComment(src, i)
				continue
			}
			i++
		}
		return nil, fmt.Errorf("no selection set found")
	}

body:
	braces := 0
	parens := 0
	for i < n {
		c := src[i]
		switch {
		case c == '#':
			i = skipComment(src, i)
			continue
		case c == '"':
			i = skipString(src, i)
			continue
		case c == '(':
			parens++
		case c == ')':
			parens--
		case c == '{':
			braces++
		case c == '}':
			braces--
			if braces == 0 {
				if len(doc.Fields) == 0 {
					return nil, fmt.Errorf("selection set has no fields")
				}
				return doc, nil
			}
		case braces == 1 && parens == 0 && isIdentStart(c):
			word, next := readWord(src, i)
			i = next
			// "alias: field" — the word before the colon is the alias,
			// the resolved name is the one that follows.
			j := skipSpace(src, i)
			if j < n && src[j] == ':' {
				i = j + 1
				continue
			}
			doc.Fields = append(doc.Fields, word)
			continue
		}
		i++
	}
	return nil, fmt.Errorf("unbalanced selection set")
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdent(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func readWord(s string, i int) (string, int) {
	start := i
	for i < len(s) && isIdent(s[i]) {
		i++
	}
	return s[start:i], i
}

func skipSpace(s string, i int) int {
	for i < len(s) {
		switch s[i] {
		case ' ', '\t', '\r', '\n', ',':
			i++
		default:
			return i
		}
	}
	return i
}

func skipComment(s string, i int) int {
	for i < len(s) && s[i] != '\n' {
		i++
	}
	return i
}

func skipString(s string, i int) int {
	// Block strings ("""...""") appear in admin-authored content.
	if i+2 < len(s) && s[i+1] == '"' && s[i+2] == '"' {
		i += 3
		for i+2 < len(s) {
			if s[i] == '"' && s[i+1] == '"' && s[i+2] == '"' {
				return i + 3
			}
			i++
		}
		return len(s)
	}
	i++
	for i < len(s) {
		switch s[i] {
		case '\\':
			i += 2
			continue
		case '"':
			return i + 1
		}
		i++
	}
	return i
}
