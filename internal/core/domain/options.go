package domain

const unknownDescription = "Unknown"

// CompatMode names the strategy governing how aggressively vault-specific
// markdown extensions are rewritten for the target renderer.
type CompatMode string

// Available compatibility modes.
const (
	// CompatModeNative preserves everything the target renderer already
	// understands (tags, mermaid blocks) and rewrites the rest.
	CompatModeNative CompatMode = "native-preserve"

	// CompatModePermissive rewrites extensions into readable plain
	// markdown approximations.
	CompatModePermissive CompatMode = "permissive"

	// CompatModeStrict strips extensions down to their display text.
	CompatModeStrict CompatMode = "strict"
)

// IsValid returns true if the mode is recognised.
func (m CompatMode) IsValid() bool {
	switch m {
	case CompatModeNative, CompatModePermissive, CompatModeStrict:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m CompatMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m CompatMode) Description() string {
	switch m {
	case CompatModeNative:
		return "Native preserve (keep what the renderer supports)"
	case CompatModePermissive:
		return "Permissive (readable approximations)"
	case CompatModeStrict:
		return "Strict (strip to display text)"
	default:
		return unknownDescription
	}
}

// MathPolicy controls handling of inline and block math expressions.
type MathPolicy string

// Available math policies.
const (
	// MathRemove strips delimiters, keeping bare inline content and
	// deleting block expressions entirely.
	MathRemove MathPolicy = "remove"

	// MathConvert wraps expressions in a math-labelled fenced code block.
	MathConvert MathPolicy = "convert"

	// MathPreserve leaves math untouched. Default under native-preserve.
	MathPreserve MathPolicy = "preserve"
)

// IsValid returns true if the policy is recognised.
func (p MathPolicy) IsValid() bool {
	switch p {
	case MathRemove, MathConvert, MathPreserve:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p MathPolicy) String() string {
	return string(p)
}

// PluginPolicy controls handling of embedded-plugin code blocks
// (diagrams, queries, admonitions).
type PluginPolicy string

// Available plugin-content policies.
const (
	// PluginRemove deletes the block. Admonitions keep their inner
	// content, unfenced.
	PluginRemove PluginPolicy = "remove"

	// PluginConvert wraps content in a descriptive labelled fence.
	PluginConvert PluginPolicy = "convert"
)

// IsValid returns true if the policy is recognised.
func (p PluginPolicy) IsValid() bool {
	return p == PluginRemove || p == PluginConvert
}

// String returns the string representation.
func (p PluginPolicy) String() string {
	return string(p)
}

// TagFormat controls the rewritten form of inline #tags.
type TagFormat string

// Available tag output formats.
const (
	// TagFormatCode renders tags as inline code: `tag`.
	TagFormatCode TagFormat = "code"

	// TagFormatBold renders tags with a bold label: **tag**.
	TagFormatBold TagFormat = "bold"

	// TagFormatPlain renders tags as bare text.
	TagFormatPlain TagFormat = "plain"
)

// IsValid returns true if the format is recognised.
func (f TagFormat) IsValid() bool {
	switch f {
	case TagFormatCode, TagFormatBold, TagFormatPlain:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f TagFormat) String() string {
	return string(f)
}

// CategoryToggles enables or disables conversion per variant category.
// A disabled category is skipped entirely: no detection cost, no warnings.
type CategoryToggles struct {
	Links    bool
	Images   bool
	Tags     bool
	Callouts bool
	Math     bool
	Plugins  bool
	Comments bool
}

// ConversionOptions is the immutable policy snapshot supplied to every
// conversion call. It is never mutated mid-pipeline; callers construct a
// fresh value per conversion.
type ConversionOptions struct {
	// Mode is the overall compatibility strategy.
	Mode CompatMode

	// Enabled toggles individual variant categories.
	Enabled CategoryToggles

	// Math is the math-handling policy.
	Math MathPolicy

	// Plugins is the embedded-plugin-content policy.
	Plugins PluginPolicy

	// Tags is the output format for converted tags.
	Tags TagFormat
}

// DefaultConversionOptions returns the options used when nothing is
// configured: native-preserve with every category enabled.
func DefaultConversionOptions() ConversionOptions {
	return ConversionOptions{
		Mode: CompatModeNative,
		Enabled: CategoryToggles{
			Links:    true,
			Images:   true,
			Tags:     true,
			Callouts: true,
			Math:     true,
			Plugins:  true,
			Comments: true,
		},
		Math:    MathPreserve,
		Plugins: PluginConvert,
		Tags:    TagFormatCode,
	}
}

// AllCompatModes returns all available compatibility modes.
func AllCompatModes() []CompatMode {
	return []CompatMode{CompatModeNative, CompatModePermissive, CompatModeStrict}
}
