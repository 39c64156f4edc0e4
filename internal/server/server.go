// Package server exposes the Ruby editing aids over JSON-RPC on stdio.
// Clients sync buffer content with the textDocument lifecycle
// notifications and invoke the ruby/* methods against open documents.
package server

import (
	"context"
	"encoding/json"
	"io"
	"log"

	"go.lsp.dev/jsonrpc2"

	"github.com/orbitalquark/rubyedit/internal/ctags"
	"github.com/orbitalquark/rubyedit/internal/endcomplete"
	"github.com/orbitalquark/rubyedit/internal/snippets"
	"github.com/orbitalquark/rubyedit/internal/toggle"
)

const version = "0.1.0"

// Server handles the rubyedit JSON-RPC methods.
type Server struct {
	docs  *DocumentStore
	tags  *ctags.Index
	snips *snippets.Library
}

// New creates a server over the given document store, tags index and
// snippet library.
func New(docs *DocumentStore, tags *ctags.Index, snips *snippets.Library) *Server {
	return &Server{docs: docs, tags: tags, snips: snips}
}

// Serve runs the server on the given reader/writer until the context is
// canceled or the connection closes.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	stream := jsonrpc2.NewStream(&readWriteCloser{in, out})
	conn := jsonrpc2.NewConn(stream)

	conn.Go(ctx, s.handler)

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-conn.Done():
		return conn.Err()
	}
}

func (s *Server) handler(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	log.Printf("request: %s", req.Method())

	switch req.Method() {
	case "initialize":
		return s.handleInitialize(ctx, reply, req)
	case "initialized":
		return reply(ctx, nil, nil)
	case "shutdown":
		return reply(ctx, nil, nil)
	case "exit":
		return nil
	case "textDocument/didOpen":
		return s.handleDidOpen(ctx, reply, req)
	case "textDocument/didChange":
		return s.handleDidChange(ctx, reply, req)
	case "textDocument/didClose":
		return s.handleDidClose(ctx, reply, req)
	case "ruby/toggleBlock":
		return s.handleToggleBlock(ctx, reply, req)
	case "ruby/autocompleteEnd":
		return s.handleAutocompleteEnd(ctx, reply, req)
	case "ruby/snippet":
		return s.handleSnippet(ctx, reply, req)
	case "ruby/snippetTriggers":
		return s.handleSnippetTriggers(ctx, reply, req)
	case "ruby/complete":
		return s.handleComplete(ctx, reply, req)
	default:
		return reply(ctx, nil, &jsonrpc2.Error{
			Code:    jsonrpc2.MethodNotFound,
			Message: "method not supported: " + req.Method(),
		})
	}
}

func (s *Server) handleInitialize(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	result := InitializeResult{
		Capabilities: ServerCapabilities{
			TextDocumentSync: true,
			Commands: []string{
				"ruby/toggleBlock",
				"ruby/autocompleteEnd",
				"ruby/snippet",
				"ruby/snippetTriggers",
				"ruby/complete",
			},
		},
		ServerInfo: &ServerInfo{
			Name:    "rubyedit",
			Version: version,
		},
	}
	return reply(ctx, result, nil)
}

// openDocument resolves EditParams to a document, replying with an error
// for unknown URIs. The bool reports whether the caller should proceed.
func (s *Server) openDocument(ctx context.Context, reply jsonrpc2.Replier, params EditParams) (*Document, bool, error) {
	doc, ok := s.docs.Get(params.TextDocument.URI)
	if !ok {
		err := reply(ctx, nil, &jsonrpc2.Error{
			Code:    jsonrpc2.InvalidParams,
			Message: "document not open: " + params.TextDocument.URI,
		})
		return nil, false, err
	}
	return doc, true, nil
}

func (s *Server) handleToggleBlock(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params EditParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return reply(ctx, nil, &jsonrpc2.Error{
			Code:    jsonrpc2.InvalidParams,
			Message: err.Error(),
		})
	}

	doc, ok, err := s.openDocument(ctx, reply, params)
	if !ok {
		return err
	}

	doc.Buf.SetCursor(params.Cursor)
	applied := toggle.Toggle(doc.Buf, doc.Buf.Cursor())

	result := EditResult{Applied: applied, Cursor: doc.Buf.Cursor()}
	if applied {
		result.Text = doc.Buf.Text()
	}
	return reply(ctx, result, nil)
}

func (s *Server) handleAutocompleteEnd(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params EditParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return reply(ctx, nil, &jsonrpc2.Error{
			Code:    jsonrpc2.InvalidParams,
			Message: err.Error(),
		})
	}

	doc, ok, err := s.openDocument(ctx, reply, params)
	if !ok {
		return err
	}

	doc.Buf.SetCursor(params.Cursor)
	applied := endcomplete.Complete(doc.Buf, doc.Buf.Cursor())

	result := EditResult{Applied: applied, Cursor: doc.Buf.Cursor()}
	if applied {
		result.Text = doc.Buf.Text()
	}
	return reply(ctx, result, nil)
}

func (s *Server) handleSnippet(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params SnippetParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return reply(ctx, nil, &jsonrpc2.Error{
			Code:    jsonrpc2.InvalidParams,
			Message: err.Error(),
		})
	}

	body, found := s.snips.Lookup(params.Trigger)
	return reply(ctx, SnippetResult{Found: found, Body: body}, nil)
}

func (s *Server) handleSnippetTriggers(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params TriggersParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return reply(ctx, nil, &jsonrpc2.Error{
			Code:    jsonrpc2.InvalidParams,
			Message: err.Error(),
		})
	}

	return reply(ctx, TriggersResult{Triggers: s.snips.Triggers(params.Prefix)}, nil)
}

func (s *Server) handleComplete(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params CompleteParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return reply(ctx, nil, &jsonrpc2.Error{
			Code:    jsonrpc2.InvalidParams,
			Message: err.Error(),
		})
	}

	tags := s.tags.Complete(params.Prefix)
	items := make([]CompletionItem, len(tags))
	for i, tag := range tags {
		items[i] = CompletionItem{Name: tag.Name, File: tag.File, Kind: tag.Kind}
	}
	return reply(ctx, CompleteResult{Items: items}, nil)
}

func (s *Server) handleDidOpen(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params DidOpenParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return reply(ctx, nil, err)
	}

	s.docs.Open(params.TextDocument.URI, params.TextDocument.Version, params.TextDocument.Text)
	return reply(ctx, nil, nil)
}

func (s *Server) handleDidChange(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params DidChangeParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return reply(ctx, nil, err)
	}

	if len(params.ContentChanges) > 0 {
		// Full sync mode - just take the last content
		last := params.ContentChanges[len(params.ContentChanges)-1]
		s.docs.Update(params.TextDocument.URI, params.TextDocument.Version, last.Text)
	}
	return reply(ctx, nil, nil)
}

func (s *Server) handleDidClose(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params DidCloseParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return reply(ctx, nil, err)
	}

	s.docs.Close(params.TextDocument.URI)
	return reply(ctx, nil, nil)
}

// readWriteCloser wraps reader and writer into a ReadWriteCloser
type readWriteCloser struct {
	io.Reader
	io.Writer
}

func (rwc *readWriteCloser) Close() error {
	return nil
}
