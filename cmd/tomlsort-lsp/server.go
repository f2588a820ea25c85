package main

import (
	"context"
	"strings"
	"sync"

	"github.com/signadot/tomlsort"
	"github.com/signadot/tomlsort/settings"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

type Server struct {
	conn jsonrpc2.Conn
	docs *documentStore

	mu     sync.RWMutex
	root   string
	sorter *tomlsort.Sorter
}

func newServer() *Server {
	s := &Server{
		docs: &documentStore{
			docs: make(map[string]*document),
		},
	}
	// the default configuration is valid
	s.sorter, _ = tomlsort.New()
	return s
}

func (s *Server) getSorter() *tomlsort.Sorter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sorter
}

// loadSettings rebuilds the sorter from the settings found in the
// workspace root. On error the previous sorter stays in use.
func (s *Server) loadSettings() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.root == "" {
		return nil
	}
	set, err := settings.Load(s.root)
	if err != nil {
		return err
	}
	sorter, err := tomlsort.New(set.Options()...)
	if err != nil {
		return err
	}
	if set.Path != "" {
		theLog.Debug("loaded settings", "path", set.Path)
	}
	s.sorter = sorter
	return nil
}

func rootDir(params *protocol.InitializeParams) string {
	var u string
	switch {
	case len(params.WorkspaceFolders) != 0:
		u = string(params.WorkspaceFolders[0].URI)
	case params.RootURI != "":
		u = string(params.RootURI)
	}
	if !strings.HasPrefix(u, uri.FileScheme+"://") {
		return ""
	}
	return uri.URI(u).Filename()
}

func (s *Server) Initialize(ctx context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error) {
	s.mu.Lock()
	s.root = rootDir(params)
	s.mu.Unlock()
	if err := s.loadSettings(); err != nil {
		theLog.Warn("settings not loaded", "root", s.root, "error", err)
	}

	capabilities := protocol.ServerCapabilities{
		TextDocumentSync: &protocol.TextDocumentSyncOptions{
			Change:    protocol.TextDocumentSyncKindFull,
			OpenClose: true,
			Save:      &protocol.SaveOptions{IncludeText: false},
		},
		DocumentFormattingProvider: true,
	}

	return &protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.ServerInfo{
			Name:    lsName,
			Version: version,
		},
	}, nil
}

func (s *Server) Initialized(ctx context.Context, params *protocol.InitializedParams) error {
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return nil
}

func (s *Server) Exit(ctx context.Context) error {
	return nil
}

func (s *Server) SetTrace(ctx context.Context, params *protocol.SetTraceParams) error {
	return nil
}

// DidChangeConfiguration re-reads the settings and checks the open
// documents again.
func (s *Server) DidChangeConfiguration(ctx context.Context, params *protocol.DidChangeConfigurationParams) error {
	if err := s.loadSettings(); err != nil {
		theLog.Warn("settings not reloaded", "error", err)
		return nil
	}
	for _, u := range s.docs.uris() {
		s.publishDiagnostics(ctx, u)
	}
	return nil
}
