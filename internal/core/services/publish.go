package services

import (
	"context"
	"fmt"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/notegist-labs/notegist-cli/internal/core/domain"
	"github.com/notegist-labs/notegist-cli/internal/core/ports/driven"
	"github.com/notegist-labs/notegist-cli/internal/core/ports/driving"
	"github.com/notegist-labs/notegist-cli/internal/logger"
	"github.com/notegist-labs/notegist-cli/internal/markdown"
	"github.com/notegist-labs/notegist-cli/internal/markdown/frontmatter"
)

// Ensure PublishOrchestrator implements the interface.
var _ driving.Publisher = (*PublishOrchestrator)(nil)

// PublishOrchestrator composes frontmatter handling, image upload,
// markdown conversion and the snippet API into the publish operations.
type PublishOrchestrator struct {
	notes    driven.NoteStore
	snippets driven.SnippetService
	images   driven.ImageHost
	settings driving.SettingsService
	history  driven.HistoryStore
	pipeline *markdown.Pipeline

	mu       sync.Mutex
	inFlight map[string]bool
}

// NewPublishOrchestrator creates the publish service. The history
// store may be nil; publishes are then not recorded.
func NewPublishOrchestrator(
	notes driven.NoteStore,
	snippets driven.SnippetService,
	images driven.ImageHost,
	settings driving.SettingsService,
	history driven.HistoryStore,
) *PublishOrchestrator {
	return &PublishOrchestrator{
		notes:    notes,
		snippets: snippets,
		images:   images,
		settings: settings,
		history:  history,
		pipeline: markdown.NewPipeline(),
		inFlight: make(map[string]bool),
	}
}

// Publish creates a snippet for the note, or updates the existing one
// when the note already carries a snippet identifier.
func (p *PublishOrchestrator) Publish(ctx context.Context, notePath string) (*driving.PublishOutcome, error) {
	return p.publish(ctx, notePath, false)
}

// Update re-publishes a note that must already carry a snippet
// identifier. Used by auto-sync.
func (p *PublishOrchestrator) Update(ctx context.Context, notePath string) (*driving.PublishOutcome, error) {
	return p.publish(ctx, notePath, true)
}

func (p *PublishOrchestrator) publish(ctx context.Context, notePath string, requireExisting bool) (*driving.PublishOutcome, error) {
	if err := validateNotePath(notePath); err != nil {
		return nil, err
	}

	if !p.acquire(notePath) {
		return nil, fmt.Errorf("note %s: %w", notePath, domain.ErrPublishInProgress)
	}
	defer p.release(notePath)

	settings, err := p.settings.Get()
	if err != nil {
		return nil, err
	}
	if settings.Auth.Token == "" {
		return nil, fmt.Errorf("no API token configured: %w", domain.ErrAuthRequired)
	}

	note, err := p.notes.Read(ctx, notePath)
	if err != nil {
		return nil, err
	}

	fm := frontmatter.Split(note.Content)
	snippetID, published := fm.Field(domain.FieldSnippetID)
	if requireExisting && !published {
		return nil, fmt.Errorf("note %s: %w", notePath, domain.ErrNotPublished)
	}

	// Image uploads run strictly sequentially so replacement order
	// matches source order. A failed upload degrades that one image
	// and never aborts the publish.
	body, imageResult := p.uploadImages(ctx, notePath, fm.Body)

	result := p.pipeline.Convert(body, settings.Conversion)
	imageResult.Merge(result)
	result = *imageResult

	payload := buildPayload(note.Name, fm, result.Content, settings.Publish.IncludeFrontmatter)
	filename := path.Base(notePath)
	files := map[string]string{filename: payload}

	var snippet *domain.Snippet
	mode := domain.PublishModeUpdate
	if published {
		snippet, _, err = p.snippets.Update(ctx, snippetID, files)
	} else {
		mode = domain.PublishModeCreate
		snippet, _, err = p.snippets.Create(ctx, files, settings.Publish.Public, note.Name)
	}
	if err != nil {
		return nil, err
	}

	if !published {
		// First publish: persist the snippet identifier into the
		// note's frontmatter so later publishes become updates.
		updated := frontmatter.Upsert(fm, domain.FieldSnippetID, snippet.ID)
		if werr := p.notes.Write(ctx, notePath, frontmatter.Rejoin(updated, fm.Body)); werr != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("snippet %s created but frontmatter update failed: %v", snippet.ID, werr))
		}
	}

	p.record(ctx, domain.PublishRecord{
		NotePath:     notePath,
		SnippetID:    snippet.ID,
		Mode:         mode,
		WarningCount: len(result.Warnings),
		PublishedAt:  time.Now().UTC(),
	})

	return &driving.PublishOutcome{
		SnippetID:  snippet.ID,
		URL:        snippet.URL,
		Mode:       mode,
		Conversion: result,
	}, nil
}

// Pull overwrites the local note body with the remote snippet content
// and stamps the pull timestamp field. Local frontmatter survives.
func (p *PublishOrchestrator) Pull(ctx context.Context, notePath string) error {
	if err := validateNotePath(notePath); err != nil {
		return err
	}

	note, err := p.notes.Read(ctx, notePath)
	if err != nil {
		return err
	}

	fm := frontmatter.Split(note.Content)
	snippetID, published := fm.Field(domain.FieldSnippetID)
	if !published {
		return fmt.Errorf("note %s: %w", notePath, domain.ErrNotPublished)
	}

	snippet, _, err := p.snippets.Fetch(ctx, snippetID)
	if err != nil {
		return err
	}

	remote, ok := snippet.Files[path.Base(notePath)]
	if !ok {
		// Filename drifted remotely; fall back to the first file.
		for _, content := range snippet.Files {
			remote = content
			break
		}
	}

	// Drop the heading synthesised at publish time so pulls do not
	// stack headings.
	remote = strings.TrimPrefix(remote, "# "+note.Name+"\n\n")

	stamped := frontmatter.Upsert(fm, domain.FieldPulledAt, time.Now().UTC().Format(time.RFC3339))
	return p.notes.Write(ctx, notePath, frontmatter.Rejoin(stamped, remote))
}

// Analyze produces the compatibility report for a note.
func (p *PublishOrchestrator) Analyze(ctx context.Context, notePath string) (*domain.CompatibilityReport, error) {
	if err := validateNotePath(notePath); err != nil {
		return nil, err
	}

	note, err := p.notes.Read(ctx, notePath)
	if err != nil {
		return nil, err
	}

	fm := frontmatter.Split(note.Content)
	report := markdown.Analyze(fm.Body)
	return &report, nil
}

// InFlight reports whether a publish is currently running for the note.
func (p *PublishOrchestrator) InFlight(notePath string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inFlight[notePath]
}

func (p *PublishOrchestrator) acquire(notePath string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.inFlight[notePath] {
		return false
	}
	p.inFlight[notePath] = true
	return true
}

func (p *PublishOrchestrator) release(notePath string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.inFlight, notePath)
}

// uploadImages replaces vault image embeds with hosted URLs. Each
// failure degrades only its own embed, replaced by a bracketed note.
func (p *PublishOrchestrator) uploadImages(ctx context.Context, notePath, body string) (string, *domain.ConversionResult) {
	result := &domain.ConversionResult{Content: body}

	embeds := markdown.ImageEmbeds(body)
	if len(embeds) == 0 || p.images == nil {
		return body, result
	}

	dir := path.Dir(notePath)
	for _, target := range embeds {
		data, err := p.notes.ReadBinary(ctx, path.Join(dir, target))
		if err != nil {
			// Attachments may live at the vault root instead.
			data, err = p.notes.ReadBinary(ctx, target)
		}

		var replacement string
		if err != nil {
			replacement = fmt.Sprintf("[image unavailable: %s]", target)
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("image %s: %v", target, err))
		} else if url, uerr := p.images.Upload(ctx, target, data); uerr != nil {
			replacement = fmt.Sprintf("[image unavailable: %s]", target)
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("image %s upload failed: %v", target, uerr))
		} else {
			replacement = fmt.Sprintf("![%s](%s)", target, url)
			result.Changed = append(result.Changed, domain.ChangedElement{
				Original:  fmt.Sprintf("![[%s]]", target),
				Converted: replacement,
				Category:  markdown.CategoryImages,
			})
		}

		body = markdown.ReplaceImageEmbed(body, target, replacement)
	}

	result.Content = body
	return body, result
}

func (p *PublishOrchestrator) record(ctx context.Context, rec domain.PublishRecord) {
	if p.history == nil {
		return
	}
	if err := p.history.Record(ctx, rec); err != nil {
		logger.Warn("publish history: %v", err)
	}
}

// buildPayload assembles the published document: synthesised heading,
// optional frontmatter field block, converted body.
func buildPayload(name string, fm frontmatter.Data, body string, includeFrontmatter bool) string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(name)
	b.WriteString("\n\n")

	if includeFrontmatter && fm.HasFrontmatter {
		b.WriteString(frontmatter.Delimiter)
		b.WriteString("\n")
		for _, line := range fm.FieldLines() {
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString(frontmatter.Delimiter)
		b.WriteString("\n\n")
	}

	b.WriteString(body)
	return b.String()
}

func validateNotePath(notePath string) error {
	if strings.TrimSpace(notePath) == "" {
		return fmt.Errorf("note path empty: %w", domain.ErrValidation)
	}
	if !strings.EqualFold(path.Ext(notePath), ".md") {
		return fmt.Errorf("note path %s is not markdown: %w", notePath, domain.ErrValidation)
	}
	return nil
}
