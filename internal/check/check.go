// Package check decides whether a typed command satisfies a level's
// expected command. The baseline is exact equality after whitespace
// normalization; a small rule chain accepts well-known equivalent forms.
package check

import "strings"

// Normalize trims the command and collapses internal whitespace runs into
// single spaces. Arguments are otherwise left untouched.
func Normalize(cmd string) string {
	return strings.Join(strings.Fields(cmd), " ")
}

// Base returns the command word of a normalized command line, or "" for an
// empty line.
func Base(cmd string) string {
	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Rule accepts (input, expected), both normalized, and reports a match.
type Rule func(input, expected string) bool

// Checker matches user input against expected commands.
type Checker struct {
	rules []Rule
}

// New returns a Checker with the default rule chain.
func New() *Checker {
	return &Checker{rules: []Rule{
		exactMatch,
		listingVariants,
		historyVariants,
		editorVariants,
	}}
}

// Match reports whether input is an acceptable answer for expected.
// Comparison is case-sensitive; an empty expected command never matches.
func (c *Checker) Match(input, expected string) bool {
	expected = Normalize(expected)
	if expected == "" {
		return false
	}
	input = Normalize(input)
	for _, rule := range c.rules {
		if rule(input, expected) {
			return true
		}
	}
	return false
}

func exactMatch(input, expected string) bool {
	return input == expected
}

// listingVariants accepts any 'ls' invocation when the expected command is a
// bare 'ls'; flags and path arguments still perform a directory listing.
func listingVariants(input, expected string) bool {
	return expected == "ls" && Base(input) == "ls"
}

// historyVariants accepts 'history' with a count argument, e.g. 'history 5'.
func historyVariants(input, expected string) bool {
	return expected == "history" && Base(input) == "history"
}

// editorVariants accepts vi in place of nano when the file argument matches.
func editorVariants(input, expected string) bool {
	if Base(expected) != "nano" {
		return false
	}
	base := Base(input)
	if base != "nano" && base != "vi" {
		return false
	}
	expectedArgs := strings.Fields(expected)
	inputArgs := strings.Fields(input)
	if len(expectedArgs) < 2 || len(inputArgs) < 2 {
		return false
	}
	return expectedArgs[1] == inputArgs[1]
}
