// Package tokenizer splits a command line into arguments, keeping
// double-quoted runs together.
package tokenizer

import "strings"

const quote = '"'

// Split breaks line into arguments. Runs of spaces and tabs separate
// arguments. A double quote opens a segment that ends at the next double
// quote; the text between them is one argument with the quotes removed and
// no escape processing. An opening quote with no partner runs to the end of
// the line.
func Split(line string) []string {
	var args []string
	i := 0
	for i < len(line) {
		c := line[i]
		switch {
		case isSpace(c):
			i++
		case c == quote:
			rest := line[i+1:]
			end := strings.IndexByte(rest, quote)
			if end < 0 {
				return append(args, rest)
			}
			args = append(args, rest[:end])
			i += end + 2
		default:
			start := i
			for i < len(line) && !isSpace(line[i]) {
				i++
			}
			args = append(args, line[start:i])
		}
	}
	return args
}

// Join is the inverse of Split for arguments without embedded double
// quotes: arguments that are empty or contain whitespace are quoted.
func Join(args []string) string {
	parts := make([]string, len(args))
	for i, a := range args {
		if a == "" || strings.ContainsAny(a, " \t") {
			parts[i] = string(quote) + a + string(quote)
			continue
		}
		parts[i] = a
	}
	return strings.Join(parts, " ")
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}
