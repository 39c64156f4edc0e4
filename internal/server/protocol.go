package server

// Wire types for the rubyedit protocol: the standard document lifecycle
// notifications plus the ruby/* editing-aid requests.

// TextDocumentIdentifier identifies a text document
type TextDocumentIdentifier struct {
	URI string `json:"uri"`
}

// VersionedTextDocumentIdentifier identifies a versioned text document
type VersionedTextDocumentIdentifier struct {
	TextDocumentIdentifier
	Version int `json:"version"`
}

// TextDocumentItem represents an open text document
type TextDocumentItem struct {
	URI        string `json:"uri"`
	LanguageID string `json:"languageId"`
	Version    int    `json:"version"`
	Text       string `json:"text"`
}

// DidOpenParams for textDocument/didOpen
type DidOpenParams struct {
	TextDocument TextDocumentItem `json:"textDocument"`
}

// ContentChangeEvent carries the full replacement text (full sync only)
type ContentChangeEvent struct {
	Text string `json:"text"`
}

// DidChangeParams for textDocument/didChange
type DidChangeParams struct {
	TextDocument   VersionedTextDocumentIdentifier `json:"textDocument"`
	ContentChanges []ContentChangeEvent            `json:"contentChanges"`
}

// DidCloseParams for textDocument/didClose
type DidCloseParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

// EditParams addresses a buffer position for ruby/toggleBlock and
// ruby/autocompleteEnd. Cursor is an absolute byte offset.
type EditParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Cursor       int                    `json:"cursor"`
}

// EditResult reports an in-place edit. Applied false means the operation
// found nothing to do and the buffer is untouched; Text is the full buffer
// content after an applied edit.
type EditResult struct {
	Applied bool   `json:"applied"`
	Text    string `json:"text,omitempty"`
	Cursor  int    `json:"cursor"`
}

// SnippetParams for ruby/snippet
type SnippetParams struct {
	Trigger string `json:"trigger"`
}

// SnippetResult for ruby/snippet
type SnippetResult struct {
	Found bool   `json:"found"`
	Body  string `json:"body,omitempty"`
}

// TriggersParams for ruby/snippetTriggers
type TriggersParams struct {
	Prefix string `json:"prefix"`
}

// TriggersResult for ruby/snippetTriggers
type TriggersResult struct {
	Triggers []string `json:"triggers"`
}

// CompleteParams for ruby/complete
type CompleteParams struct {
	Prefix string `json:"prefix"`
}

// CompletionItem is one ctags-backed completion candidate
type CompletionItem struct {
	Name string `json:"name"`
	File string `json:"file,omitempty"`
	Kind string `json:"kind,omitempty"`
}

// CompleteResult for ruby/complete
type CompleteResult struct {
	Items []CompletionItem `json:"items"`
}

// ServerCapabilities advertises the supported operations
type ServerCapabilities struct {
	TextDocumentSync bool     `json:"textDocumentSync"`
	Commands         []string `json:"commands"`
}

// ServerInfo contains information about the server
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

// InitializeResult is the result of the initialize request
type InitializeResult struct {
	Capabilities ServerCapabilities `json:"capabilities"`
	ServerInfo   *ServerInfo        `json:"serverInfo,omitempty"`
}
