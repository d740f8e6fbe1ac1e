// Package scenefile parses the scene description formats: the line-based
// scene and asset files, and TMX tile maps with their tileset descriptors.
//
// Parsing degrades instead of failing. Malformed lines, missing textures and
// unusable layers are logged and skipped so a broken file still yields a
// partially populated scene.
package scenefile

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
)

var (
	// ErrMalformedLine marks a data line with too few or non-numeric tokens
	ErrMalformedLine = errors.New("malformed line")
	// ErrMissingAsset marks a texture, tileset or document that could not be found
	ErrMissingAsset = errors.New("missing asset")
)

// Section identifies the bracketed block a data line belongs to
type Section int

// SectionUnknown is active before the first recognized header and after any
// unrecognized one. Its data lines are ignored.
const SectionUnknown Section = -1

// scanSections walks a line-oriented stream. Comment lines (#) and blank
// lines are skipped; a line equal to a key of headers switches section; any
// other line starting with '[' switches to SectionUnknown. Data lines of a
// known section are passed to handle already split on whitespace.
func scanSections(r io.Reader, headers map[string]Section, handle func(sec Section, lineNo int, tokens []string)) error {
	scanner := bufio.NewScanner(r)
	section := SectionUnknown
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" || line[0] == '#' {
			continue
		}

		if sec, ok := headers[strings.TrimSpace(line)]; ok {
			section = sec
			continue
		}
		if line[0] == '[' {
			section = SectionUnknown
			continue
		}

		if section == SectionUnknown {
			continue
		}
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}
		handle(section, lineNo, tokens)
	}

	return scanner.Err()
}

// atoiAll parses every token as an integer
func atoiAll(tokens []string) ([]int, error) {
	out := make([]int, len(tokens))
	for i, tok := range tokens {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, ErrMalformedLine
		}
		out[i] = n
	}
	return out, nil
}
