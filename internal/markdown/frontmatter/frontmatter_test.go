package frontmatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSplit tests block recognition across document shapes
func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		document string
		wantFM   bool
		wantRaw  string
		wantBody string
	}{
		{
			name:     "well-formed block",
			document: "---\ntitle: Test\ntags: [a, b]\n---\n# Heading\n\nBody.\n",
			wantFM:   true,
			wantRaw:  "---\ntitle: Test\ntags: [a, b]\n---\n",
			wantBody: "# Heading\n\nBody.\n",
		},
		{
			name:     "no frontmatter",
			document: "# Heading\n\nBody.\n",
			wantFM:   false,
			wantRaw:  "",
			wantBody: "# Heading\n\nBody.\n",
		},
		{
			name:     "delimiter not at byte zero",
			document: "\n---\ntitle: Test\n---\nBody.\n",
			wantFM:   false,
			wantRaw:  "",
			wantBody: "\n---\ntitle: Test\n---\nBody.\n",
		},
		{
			name:     "unterminated block",
			document: "---\ntitle: Test\nBody without closing fence.\n",
			wantFM:   false,
			wantRaw:  "",
			wantBody: "---\ntitle: Test\nBody without closing fence.\n",
		},
		{
			name:     "empty block",
			document: "---\n---\nBody.\n",
			wantFM:   true,
			wantRaw:  "---\n---\n",
			wantBody: "Body.\n",
		},
		{
			name:     "closing fence is final line without newline",
			document: "---\ntitle: Test\n---",
			wantFM:   true,
			wantRaw:  "---\ntitle: Test\n---",
			wantBody: "",
		},
		{
			name:     "horizontal rule later is not a closing fence twice",
			document: "---\ntitle: Test\n---\nBody.\n\n---\n\nMore.\n",
			wantFM:   true,
			wantRaw:  "---\ntitle: Test\n---\n",
			wantBody: "Body.\n\n---\n\nMore.\n",
		},
		{
			name:     "four dashes is not a closing fence",
			document: "---\ntitle: Test\n----\nstill: inside\n---\nBody.\n",
			wantFM:   true,
			wantRaw:  "---\ntitle: Test\n----\nstill: inside\n---\n",
			wantBody: "Body.\n",
		},
		{
			// Known early-truncation behaviour: an inner line equal to
			// the delimiter closes the block at first occurrence.
			name:     "inner delimiter lookalike truncates early",
			document: "---\ntitle: Test\n---\nmore: field\n---\nBody.\n",
			wantFM:   true,
			wantRaw:  "---\ntitle: Test\n---\n",
			wantBody: "more: field\n---\nBody.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := Split(tt.document)
			assert.Equal(t, tt.wantFM, data.HasFrontmatter)
			assert.Equal(t, tt.wantRaw, data.RawBlock)
			assert.Equal(t, tt.wantBody, data.Body)
		})
	}
}

// TestSplit_RoundTrip tests RawBlock+Body == document for well-formed input
func TestSplit_RoundTrip(t *testing.T) {
	documents := []string{
		"---\ntitle: Test\n---\nBody.\n",
		"---\na: 1\nb: 2\nc: 3\n---\n",
		"---\n---\n",
		"---\ntitle: Test\n---\nBody with\n\nblank lines.\n",
		"no frontmatter at all\n",
	}

	for _, doc := range documents {
		data := Split(doc)
		assert.Equal(t, doc, data.RawBlock+data.Body)
	}
}

// TestFieldLines tests field extraction and blank-line dropping
func TestFieldLines(t *testing.T) {
	data := Split("---\ntitle: Test\n\ntags: [a]\n---\nBody.\n")
	require.True(t, data.HasFrontmatter)
	assert.Equal(t, []string{"title: Test", "tags: [a]"}, data.FieldLines())

	assert.Nil(t, Split("plain body").FieldLines())
}

// TestFields tests YAML decoding of the block
func TestFields(t *testing.T) {
	data := Split("---\ntitle: My Note\ncount: 3\n---\nBody.\n")
	fields, err := data.Fields()
	require.NoError(t, err)
	assert.Equal(t, "My Note", fields["title"])

	val, ok := data.Field("title")
	assert.True(t, ok)
	assert.Equal(t, "My Note", val)

	_, ok = data.Field("missing")
	assert.False(t, ok)
}

// TestRejoin tests canonical reconstruction
func TestRejoin(t *testing.T) {
	t.Run("with frontmatter", func(t *testing.T) {
		data := Split("---\ntitle: Test\n---\nold body\n")
		out := Rejoin(data, "new body\n")
		assert.Equal(t, "---\ntitle: Test\n---\nnew body\n", out)
	})

	t.Run("without frontmatter", func(t *testing.T) {
		data := Split("just a body\n")
		assert.Equal(t, "new body\n", Rejoin(data, "new body\n"))
	})

	t.Run("blank lines inside block are dropped", func(t *testing.T) {
		data := Split("---\na: 1\n\nb: 2\n---\nbody\n")
		assert.Equal(t, "---\na: 1\nb: 2\n---\nbody\n", Rejoin(data, "body\n"))
	})
}

// TestUpsert tests field insertion and in-place replacement
func TestUpsert(t *testing.T) {
	t.Run("append when absent", func(t *testing.T) {
		data := Split("---\ntitle: Test\n---\nbody\n")
		updated := Upsert(data, "gist-id", "abc123")
		assert.Equal(t, "---\ntitle: Test\ngist-id: abc123\n---\n", updated.RawBlock)
	})

	t.Run("replace in place preserves ordering", func(t *testing.T) {
		data := Split("---\ntitle: Test\ngist-id: old\nauthor: me\n---\nbody\n")
		updated := Upsert(data, "gist-id", "new")
		assert.Equal(t, "---\ntitle: Test\ngist-id: new\nauthor: me\n---\n", updated.RawBlock)
	})

	t.Run("creates block when absent", func(t *testing.T) {
		data := Split("just a body\n")
		updated := Upsert(data, "gist-id", "abc123")
		assert.True(t, updated.HasFrontmatter)
		assert.Equal(t, "---\ngist-id: abc123\n---\n", updated.RawBlock)
		assert.Equal(t, "just a body\n", updated.Body)
	})

	t.Run("repeated upsert keeps a single field line", func(t *testing.T) {
		data := Split("---\ntitle: Test\n---\nbody\n")
		data = Upsert(data, "gist-id", "abc123")
		data = Upsert(data, "gist-id", "abc123")

		count := strings.Count(Rejoin(data, data.Body), "gist-id:")
		assert.Equal(t, 1, count)
	})
}
