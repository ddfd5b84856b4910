package parser

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseLines parses every non-blank line. It stops at the first failure and
// returns a *LineError naming the line.
func (p *Parser) ParseLines(lines []string) ([]Declaration, error) {
	decls := make([]Declaration, 0, len(lines))
	for i, raw := range lines {
		line := strings.TrimSuffix(raw, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		d, err := p.ParseLine(line)
		if err != nil {
			return nil, &LineError{Line: i + 1, Text: line, Err: err}
		}
		d.Line = i + 1
		decls = append(decls, d)
	}
	return decls, nil
}

// Parse reads all lines from r and parses them.
func (p *Parser) Parse(r io.Reader) ([]Declaration, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}
	return p.ParseLines(lines)
}

// ReadLines splits r into lines without their terminators.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return lines, nil
}
