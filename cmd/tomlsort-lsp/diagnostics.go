package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/signadot/tomlsort/libdiff"
	"github.com/signadot/tomlsort/parse"
	"go.lsp.dev/protocol"
)

const diagnosticSource = "toml-sort"

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}

	diagnostics := s.validateDocument(doc)

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

// validateDocument reports a parse error, or each run of lines which
// differs from the sorted form of the document.
func (s *Server) validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}

	sorted, err := s.getSorter().Sorted(doc.content)
	if err != nil {
		diagnostic := protocol.Diagnostic{
			Severity: protocol.DiagnosticSeverityError,
			Message:  err.Error(),
			Source:   diagnosticSource,
		}
		var perr *parse.Error
		if errors.As(err, &perr) && perr.Line > 0 {
			line := uint32(perr.Line - 1)
			col := uint32(max(perr.Col-1, 0))
			diagnostic.Range = protocol.Range{
				Start: protocol.Position{Line: line, Character: col},
				End:   protocol.Position{Line: line, Character: col + 1},
			}
		}
		return append(diagnostics, diagnostic)
	}
	if sorted == doc.content {
		return diagnostics
	}
	for _, h := range libdiff.Lines(doc.content, sorted) {
		end := protocol.Position{Line: uint32(h.FromLine + h.FromCount)}
		if h.FromCount == 0 {
			end = protocol.Position{Line: uint32(h.FromLine)}
		}
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: uint32(h.FromLine)},
				End:   end,
			},
			Severity: protocol.DiagnosticSeverityInformation,
			Message:  hunkMessage(h),
			Source:   diagnosticSource,
		})
	}
	return diagnostics
}

func hunkMessage(h libdiff.Hunk) string {
	switch {
	case h.FromCount == 0:
		return fmt.Sprintf("not sorted: %d line(s) missing here", h.ToCount)
	case h.ToCount == 0:
		return fmt.Sprintf("not sorted: %d line(s) belong elsewhere", h.FromCount)
	default:
		return fmt.Sprintf("not sorted: %d line(s) differ from the sorted form", h.FromCount)
	}
}
