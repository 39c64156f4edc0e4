package server

import (
	"sync"

	"github.com/orbitalquark/rubyedit/internal/buffer"
)

// Document is an open text document with its editable buffer.
type Document struct {
	URI     string
	Version int
	Buf     *buffer.Buffer
}

// DocumentStore manages open documents. New buffers inherit the store's
// tab width and EOL mode.
type DocumentStore struct {
	mu       sync.RWMutex
	docs     map[string]*Document
	tabWidth int
	eol      buffer.EOLMode
}

// NewDocumentStore creates an empty store with the given buffer settings.
func NewDocumentStore(tabWidth int, eol buffer.EOLMode) *DocumentStore {
	return &DocumentStore{
		docs:     make(map[string]*Document),
		tabWidth: tabWidth,
		eol:      eol,
	}
}

// Open adds or replaces a document.
func (ds *DocumentStore) Open(uri string, version int, text string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = &Document{
		URI:     uri,
		Version: version,
		Buf:     buffer.New(text, ds.tabWidth, ds.eol),
	}
}

// Update replaces a document's content (full sync).
func (ds *DocumentStore) Update(uri string, version int, text string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	if doc, ok := ds.docs[uri]; ok {
		doc.Version = version
		doc.Buf = buffer.New(text, ds.tabWidth, ds.eol)
	}
}

// Close removes a document.
func (ds *DocumentStore) Close(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

// Get returns an open document.
func (ds *DocumentStore) Get(uri string) (*Document, bool) {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	doc, ok := ds.docs[uri]
	return doc, ok
}
