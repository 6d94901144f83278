// Package routeset reads newline-delimited route records into the core
// ipv4 types. The first malformed record aborts the whole parse with an
// error naming the offending line; there is no skip-and-continue mode.
package routeset

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"netsum/internal/ipv4"
)

// Parse reads one "<address>/<mask>" record per line. Blank lines are
// skipped; any other malformed line fails the parse with its line
// number and content in the error.
func Parse(r io.Reader) ([]ipv4.Route, error) {
	scanner := bufio.NewScanner(r)

	var routes []ipv4.Route
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		route, err := ipv4.ParseRoute(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		routes = append(routes, route)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading routes: %w", err)
	}

	return routes, nil
}

// ParseText parses an in-memory blob of route lines.
func ParseText(text string) ([]ipv4.Route, error) {
	return Parse(strings.NewReader(text))
}
