package docgen

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// SourceOpener opens a proto source file by the path the descriptor reports.
// The standalone front-end installs an opener that resolves against its import
// paths; the plugin relies on protoc invoking it from the import root.
type SourceOpener func(path string) (io.ReadCloser, error)

// fileDescription extracts the file-level description for the file at path.
//
// The descriptor API carries no file-level comment, so the source is re-opened
// and the first non-blank content is inspected: a run of /// lines or a
// /** ... */ block at the top of the file becomes the description. An open or
// read failure aborts the whole file.
func fileDescription(open SourceOpener, path string, noExclude bool) (string, bool, error) {
	if open == nil {
		open = func(p string) (io.ReadCloser, error) { return os.Open(p) }
	}
	rc, err := open(path)
	if err != nil {
		return "", false, fmt.Errorf("%s: %w", path, err)
	}
	defer rc.Close()

	description, err := scanFileComment(rc)
	if err != nil {
		return "", false, fmt.Errorf("%s: %w", path, err)
	}

	description = strings.TrimSpace(description)
	excluded := false
	if strings.HasPrefix(description, excludeDirective) {
		description = description[len(excludeDirective):]
		excluded = !noExclude
	}
	return description, excluded, nil
}

// scanFileComment reads lines until the first non-blank one and, if that line
// opens a doc comment, accumulates the comment body. Lines are trimmed before
// inspection, so indented comments work.
func scanFileComment(r io.Reader) (string, error) {
	sc := bufio.NewScanner(r)
	var b strings.Builder

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "///"):
			// Consecutive /// lines, marker and at most one space stripped.
			more := true
			for more && strings.HasPrefix(line, "///") {
				b.WriteString(strings.TrimPrefix(line[3:], " "))
				b.WriteByte('\n')
				if more = sc.Scan(); more {
					line = strings.TrimSpace(sc.Text())
				}
			}
			return strings.TrimSuffix(b.String(), "\n"), sc.Err()

		case strings.HasPrefix(line, "/**") && !strings.HasPrefix(line, "/***/"):
			line = line[2:]
			for {
				end := strings.Index(line, "*/")
				if end >= 0 {
					// Closing line: keep only the text before the closer.
					start := 0
					if strings.HasPrefix(line, "*") && !strings.HasPrefix(line, "*/") {
						start++
					}
					if strings.HasPrefix(line, "* ") {
						start++
					}
					b.WriteString(line[start:end])
					return b.String(), sc.Err()
				}
				start := 0
				if strings.HasPrefix(line, "*") {
					start++
				}
				if strings.HasPrefix(line, "* ") {
					start++
				}
				b.WriteString(line[start:])
				b.WriteByte('\n')
				if !sc.Scan() {
					return b.String(), sc.Err()
				}
				line = strings.TrimSpace(sc.Text())
			}
		}

		// First non-blank line is not a doc comment: no file description.
		break
	}
	return "", sc.Err()
}
