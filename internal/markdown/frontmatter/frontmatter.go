// Package frontmatter splits and reconstructs the delimited metadata
// block at the top of a note.
//
// Splitting is purely textual so that RawBlock + Body reproduces the
// original document byte-for-byte when a well-formed block exists.
// Two behaviours are deliberate and documented rather than hidden:
//
//   - The closing delimiter is found by FIRST occurrence. A field value
//     containing a line equal to "---" truncates the block early.
//   - Rejoin re-serialises the field block from a line list and drops
//     blank lines inside it. This is a lossy normalisation.
package frontmatter

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// Delimiter is the fixed fence around the metadata block.
const Delimiter = "---"

// Data is the result of splitting a document.
type Data struct {
	// RawBlock is the metadata block including both delimiter lines
	// and the trailing newline, or empty when absent.
	RawBlock string

	// Body is everything after the block (the whole document when no
	// block exists).
	Body string

	// HasFrontmatter reports whether a well-formed block was found.
	HasFrontmatter bool
}

// Split separates a leading metadata block from body content.
// A block is recognised only when the document's first three bytes are
// the delimiter and a matching delimiter line exists later. Any other
// shape yields HasFrontmatter=false with the entire input as Body.
func Split(document string) Data {
	if !strings.HasPrefix(document, Delimiter) {
		return Data{Body: document}
	}

	idx := len(Delimiter)
	for {
		n := strings.Index(document[idx:], "\n"+Delimiter)
		if n < 0 {
			// Unterminated block: treat as absent.
			return Data{Body: document}
		}

		lineStart := idx + n + 1
		lineEnd := lineStart + len(Delimiter)

		if lineEnd == len(document) {
			// Closing delimiter is the final line, no trailing newline.
			return Data{RawBlock: document, HasFrontmatter: true}
		}
		if document[lineEnd] == '\n' {
			return Data{
				RawBlock:       document[:lineEnd+1],
				Body:           document[lineEnd+1:],
				HasFrontmatter: true,
			}
		}

		// A line merely starting with "---" (e.g. "----") is not a
		// closing delimiter; keep searching.
		idx = lineEnd
	}
}

// FieldLines returns the lines between the delimiters with blank lines
// dropped. Returns nil when no block exists.
func (d Data) FieldLines() []string {
	if !d.HasFrontmatter {
		return nil
	}

	inner := strings.TrimPrefix(d.RawBlock, Delimiter)
	inner = strings.TrimPrefix(inner, "\n")
	if i := strings.LastIndex(inner, "\n"+Delimiter); i >= 0 {
		inner = inner[:i]
	}

	var fields []string
	for _, line := range strings.Split(inner, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields = append(fields, line)
	}
	return fields
}

// Fields decodes the metadata block into a generic map.
func (d Data) Fields() (map[string]any, error) {
	if !d.HasFrontmatter {
		return nil, nil
	}

	inner := strings.Join(d.FieldLines(), "\n")
	out := map[string]any{}
	if err := yaml.Unmarshal([]byte(inner), &out); err != nil {
		return nil, fmt.Errorf("decode frontmatter: %w", err)
	}
	return out, nil
}

// Field returns the string form of a single metadata value.
func (d Data) Field(key string) (string, bool) {
	fields, err := d.Fields()
	if err != nil || fields == nil {
		return "", false
	}
	val, ok := fields[key]
	if !ok || val == nil {
		return "", false
	}
	return fmt.Sprint(val), true
}

// Rejoin reconstructs a document in the canonical shape
// "---\n<fields>\n---\n<newBody>". Without a block, newBody is
// returned untouched.
func Rejoin(d Data, newBody string) string {
	if !d.HasFrontmatter {
		return newBody
	}
	return assemble(d.FieldLines(), newBody)
}

// Upsert sets a metadata field, replacing an existing line with the
// same key in place (preserving the ordering of all other fields) or
// appending it as the last field. A document without frontmatter gains
// a block holding just this field.
func Upsert(d Data, key, value string) Data {
	line := key + ": " + value
	prefix := key + ":"

	fields := d.FieldLines()
	replaced := false
	for i, f := range fields {
		if strings.HasPrefix(f, prefix) {
			fields[i] = line
			replaced = true
			break
		}
	}
	if !replaced {
		fields = append(fields, line)
	}

	raw := assemble(fields, "")
	return Data{RawBlock: raw, Body: d.Body, HasFrontmatter: true}
}

// assemble builds "---\n<fields>\n---\n" followed by the body.
func assemble(fields []string, body string) string {
	var b strings.Builder
	b.WriteString(Delimiter)
	b.WriteString("\n")
	for _, f := range fields {
		b.WriteString(f)
		b.WriteString("\n")
	}
	b.WriteString(Delimiter)
	b.WriteString("\n")
	b.WriteString(body)
	return b.String()
}
