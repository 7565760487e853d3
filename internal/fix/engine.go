// Package fix applies the always-safe text edits the parser attaches to
// its diagnostics — inserted semicolons, missing closing delimiters — to
// the source files they point at.
package fix

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"ecmaparser/internal/diag"
	"ecmaparser/internal/source"
)

// ErrNoFixes is returned when nothing was applied.
var ErrNoFixes = errors.New("no applicable fixes found")

// ApplyMode selects which candidate fixes to apply.
type ApplyMode uint8

const (
	ApplyModeOnce ApplyMode = iota // first applicable fix only
	ApplyModeAll                   // every non-conflicting fix
	ApplyModeID                    // the fix whose ID matches TargetID
)

// ApplyOptions configures fix selection.
type ApplyOptions struct {
	Mode     ApplyMode
	TargetID string
}

// AppliedFix records one successfully applied fix.
type AppliedFix struct {
	ID            string
	Title         string
	Code          diag.Code
	Message       string
	Applicability diag.FixApplicability
	PrimaryPath   string
	EditCount     int
}

// SkippedFix records a fix that was not applied, and why.
type SkippedFix struct {
	ID     string
	Title  string
	Reason string
}

// FileChange summarises the edits written to one file.
type FileChange struct {
	Path      string
	EditCount int
}

// ApplyResult aggregates what Apply did.
type ApplyResult struct {
	Applied     []AppliedFix
	Skipped     []SkippedFix
	FileChanges []FileChange
}

type candidate struct {
	diag diag.Diagnostic
	fix  diag.Fix
}

// Apply materialises the fixes attached to diagnostics, selects a subset
// per opts, and writes the surviving edits back to their files. All edits
// are kept in original-buffer coordinates and validated against the
// original content — guard text and overlap checks — before anything is
// written, so a conflicting fix is skipped rather than half-applied.
func Apply(fs *source.FileSet, diagnostics []diag.Diagnostic, opts ApplyOptions) (*ApplyResult, error) {
	result := &ApplyResult{}
	if fs == nil {
		return result, fmt.Errorf("fix: FileSet is nil")
	}

	candidates, gatherSkips := gather(diag.FixBuildContext{FileSet: fs}, diagnostics)
	result.Skipped = append(result.Skipped, gatherSkips...)
	if len(candidates) == 0 {
		return result, ErrNoFixes
	}

	selected := selectCandidates(candidates, opts)
	if len(selected) == 0 {
		return result, ErrNoFixes
	}

	accepted := make(map[source.FileID][]diag.TextEdit)
	for _, cand := range selected {
		if reason := accept(fs, accepted, cand.fix); reason != "" {
			result.Skipped = append(result.Skipped, SkippedFix{
				ID: cand.fix.ID, Title: cand.fix.Title, Reason: reason,
			})
			continue
		}
		result.Applied = append(result.Applied, AppliedFix{
			ID:            cand.fix.ID,
			Title:         cand.fix.Title,
			Code:          cand.diag.Code,
			Message:       cand.diag.Message,
			Applicability: cand.fix.Applicability,
			PrimaryPath:   fs.Get(cand.diag.Primary.File).FormatPath("auto", fs.BaseDir()),
			EditCount:     len(cand.fix.Edits),
		})
		if opts.Mode == ApplyModeOnce {
			break
		}
	}
	if len(result.Applied) == 0 {
		return result, ErrNoFixes
	}

	changes, err := writeOut(fs, accepted)
	result.FileChanges = changes
	if err != nil {
		return result, err
	}
	return result, nil
}

// gather materialises every attached fix into a flat candidate list in
// source order, recording fixes that fail to materialise.
func gather(ctx diag.FixBuildContext, diagnostics []diag.Diagnostic) ([]candidate, []SkippedFix) {
	var cands []candidate
	var skips []SkippedFix

	for _, d := range diagnostics {
		if len(d.Fixes) == 0 {
			continue
		}
		fixes, err := diag.MaterializeFixes(ctx, d.Fixes)
		if err != nil {
			skips = append(skips, SkippedFix{Reason: fmt.Sprintf("failed to materialise: %v", err)})
			continue
		}
		for i, f := range fixes {
			if len(f.Edits) == 0 {
				skips = append(skips, SkippedFix{ID: f.ID, Title: f.Title, Reason: "fix has no edits"})
				continue
			}
			if f.ID == "" {
				f.ID = fmt.Sprintf("%s@%d:%d/%d", d.Code.ID(), d.Primary.File, d.Primary.Start, i)
			}
			cands = append(cands, candidate{diag: d, fix: f})
		}
	}

	sort.SliceStable(cands, func(i, j int) bool {
		a, b := cands[i].diag.Primary, cands[j].diag.Primary
		if a.File != b.File {
			return a.File < b.File
		}
		return a.Start < b.Start
	})
	return cands, skips
}

func selectCandidates(cands []candidate, opts ApplyOptions) []candidate {
	switch opts.Mode {
	case ApplyModeID:
		for _, c := range cands {
			if c.fix.ID == opts.TargetID {
				return []candidate{c}
			}
		}
		return nil
	default:
		// ApplyModeOnce also starts from the full list; the apply loop
		// stops after the first acceptance so later candidates can still
		// be tried when an earlier one is skipped.
		return cands
	}
}

// accept validates one fix's edits against the original buffers and the
// edits already accepted, returning a skip reason or "" on success. On
// success the edits are added to the per-file accepted set.
func accept(fs *source.FileSet, accepted map[source.FileID][]diag.TextEdit, f diag.Fix) string {
	for _, e := range f.Edits {
		file := fs.Get(e.Span.File)
		if file.Flags&source.FileVirtual != 0 {
			return "target file is virtual"
		}
		if int(e.Span.End) > len(file.Content) || e.Span.Start > e.Span.End {
			return "edit span out of range"
		}
		if e.OldText != "" && string(file.Content[e.Span.Start:e.Span.End]) != e.OldText {
			return "existing text does not match expected content"
		}
		for _, prev := range accepted[e.Span.File] {
			if editsOverlap(prev, e) {
				return fmt.Sprintf("conflicts with an already accepted edit in %s", file.FormatPath("auto", fs.BaseDir()))
			}
		}
	}
	for _, e := range f.Edits {
		accepted[e.Span.File] = append(accepted[e.Span.File], e)
	}
	return ""
}

// editsOverlap treats spans as half-open. Two zero-width inserts never
// conflict; an insert inside a replaced/deleted region does; two non-empty
// spans conflict on any overlap.
func editsOverlap(a, b diag.TextEdit) bool {
	switch {
	case a.Span.Empty() && b.Span.Empty():
		return false
	case a.Span.Empty():
		return b.Span.Contains(a.Span.Start)
	case b.Span.Empty():
		return a.Span.Contains(b.Span.Start)
	default:
		return a.Span.Start < b.Span.End && b.Span.Start < a.Span.End
	}
}

// writeOut applies each file's accepted edits — descending by offset, so
// earlier offsets stay valid — and writes the result back with the file's
// original permissions.
func writeOut(fs *source.FileSet, accepted map[source.FileID][]diag.TextEdit) ([]FileChange, error) {
	var changes []FileChange
	for fileID, edits := range accepted {
		file := fs.Get(fileID)
		sort.SliceStable(edits, func(i, j int) bool {
			return edits[i].Span.Start > edits[j].Span.Start
		})

		buf := append([]byte(nil), file.Content...)
		for _, e := range edits {
			tail := append([]byte(nil), buf[e.Span.End:]...)
			buf = append(append(buf[:e.Span.Start], []byte(e.NewText)...), tail...)
		}

		mode := os.FileMode(0o644)
		if info, err := os.Stat(file.Path); err == nil {
			mode = info.Mode()
		}
		if err := os.WriteFile(file.Path, buf, mode); err != nil {
			return changes, fmt.Errorf("write %s: %w", file.Path, err)
		}
		changes = append(changes, FileChange{
			Path:      file.FormatPath("relative", fs.BaseDir()),
			EditCount: len(edits),
		})
	}
	sort.SliceStable(changes, func(i, j int) bool { return changes[i].Path < changes[j].Path })
	return changes, nil
}
