package main

import (
	"sync"

	"github.com/signadot/yaml-format/go-yamlfmt/debug"
	"github.com/signadot/yaml-format/go-yamlfmt/parse"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri      string
	content  string
	version  int32
	parseErr error
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	_, err := parse.Parse([]byte(content))
	if err != nil && debug.LSP() {
		debug.Logf("lsp: parse %s: %v\n", uri, err)
	}
	ds.docs[uri] = &document{
		uri:      uri,
		content:  content,
		version:  version,
		parseErr: err,
	}
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}
