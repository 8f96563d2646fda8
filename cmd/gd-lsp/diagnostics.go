package main

import (
	"context"
	"errors"
	"sync"

	"go.lsp.dev/protocol"

	"github.com/scenekit/gd-format/ir"
	"github.com/scenekit/gd-format/parse"
	"github.com/scenekit/gd-format/token"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri       string
	content   string
	version   int32
	file      *ir.File
	positions map[*ir.Value]*token.Pos
	err       error
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	positions := map[*ir.Value]*token.Pos{}
	file, err := parse.Parse([]byte(content),
		parse.ParseLabel(uri), parse.ParsePositions(positions))
	ds.docs[uri] = &document{
		uri:       uri,
		content:   content,
		version:   version,
		file:      file,
		positions: positions,
		err:       err,
	}
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	s.docs.put(uri, params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, uri)
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	if len(params.ContentChanges) == 0 {
		return nil
	}
	// full sync: the last change carries the whole document
	content := params.ContentChanges[len(params.ContentChanges)-1].Text
	s.docs.put(uri, content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, uri)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}

	diagnostics := validateDocument(doc)

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

func validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc.err == nil {
		return diagnostics
	}

	diagnostic := protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   protocol.Position{Line: 0, Character: 0},
		},
		Severity: protocol.DiagnosticSeverityError,
		Message:  doc.err.Error(),
		Source:   "gd",
	}
	pErr := &parse.Error{}
	if errors.As(doc.err, &pErr) && pErr.Pos != nil {
		line, col := pErr.Pos.LineCol()
		diagnostic.Range = protocol.Range{
			Start: protocol.Position{
				Line:      uint32(line),
				Character: uint32(col),
			},
			End: protocol.Position{
				Line:      uint32(line),
				Character: uint32(col + 1),
			},
		}
		diagnostic.Message = pErr.Msg
	}
	return []protocol.Diagnostic{diagnostic}
}
