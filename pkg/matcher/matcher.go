/*
Package matcher filters the lines of an in-memory text by literal
substring containment.

Basic usage:

	lines := matcher.Search("duct", contents)
	lines = matcher.SearchInsensitive("rUsT", contents)

	// or pick one from a flag
	search := matcher.For(caseSensitive)
	lines = search(query, contents)

Returned lines are substrings of contents in file order with their line
terminators removed.
*/
package matcher

import "strings"

// Func is the shape shared by Search and SearchInsensitive.
type Func func(query, contents string) []string

// For returns Search when caseSensitive is true and SearchInsensitive otherwise.
func For(caseSensitive bool) Func {
	if caseSensitive {
		return Search
	}
	return SearchInsensitive
}

// Search returns every line of contents that contains query.
func Search(query, contents string) []string {
	return filter(contents, func(line string) bool {
		return strings.Contains(line, query)
	})
}

// SearchInsensitive returns every line of contents that contains query
// once both are lowercased. The lines keep their original case.
func SearchInsensitive(query, contents string) []string {
	query = strings.ToLower(query)
	return filter(contents, func(line string) bool {
		return strings.Contains(strings.ToLower(line), query)
	})
}

func filter(contents string, keep func(string) bool) []string {
	var matches []string
	for _, line := range Lines(contents) {
		if keep(line) {
			matches = append(matches, line)
		}
	}
	return matches
}

// Lines splits contents on "\n", dropping a "\r" right before each
// newline. A terminator at the very end does not start another line.
func Lines(contents string) []string {
	var lines []string
	for len(contents) > 0 {
		i := strings.IndexByte(contents, '\n')
		if i < 0 {
			lines = append(lines, contents)
			break
		}
		lines = append(lines, strings.TrimSuffix(contents[:i], "\r"))
		contents = contents[i+1:]
	}
	return lines
}
