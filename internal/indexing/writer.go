package indexing

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"kytoken/internal/analysis"
)

var (
	ErrMissingID  = errors.New("document has no id")
	ErrNoAnalyzer = errors.New("writer has no analyzer")
)

// Document is a set of analyzer outputs keyed by field name.
type Document struct {
	ID     string
	Fields map[string]string
}

// Writer indexes documents into a WriteBuffer. It is safe for concurrent
// use; documents are added one at a time.
type Writer struct {
	analyzer analysis.Analyzer
	buffer   *WriteBuffer

	mu     sync.Mutex
	active bool
}

// NewWriter creates a Writer that tokenizes fields with the named
// analyzer from registry.
func NewWriter(registry *analysis.Registry, analyzerName string) (*Writer, error) {
	a, err := registry.Get(analyzerName)
	if err != nil {
		return nil, err
	}
	return &Writer{
		analyzer: a,
		buffer:   NewWriteBuffer(),
		active:   true,
	}, nil
}

// NewStreamWriter creates a Writer without an analyzer. It only accepts
// already tokenized input through AddStream.
func NewStreamWriter() *Writer {
	return &Writer{
		buffer: NewWriteBuffer(),
		active: true,
	}
}

// AddDocument analyzes every field of doc and indexes the tokens.
func (w *Writer) AddDocument(doc Document) error {
	if doc.ID == "" {
		return ErrMissingID
	}
	if w.analyzer == nil {
		return ErrNoAnalyzer
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	docID, err := w.allocate(doc.ID)
	if err != nil {
		return err
	}

	fields := make([]string, 0, len(doc.Fields))
	for name := range doc.Fields {
		fields = append(fields, name)
	}
	sort.Strings(fields)

	for _, name := range fields {
		tokens := w.analyzer.Analyze(name, doc.Fields[name])
		if _, err := w.buffer.AddTokens(name, docID, NewSliceSource(tokens)); err != nil {
			return fmt.Errorf("field %q: %w", name, err)
		}
	}
	return nil
}

// AddDocuments indexes multiple documents into the write buffer.
func (w *Writer) AddDocuments(docs []Document) error {
	for i, doc := range docs {
		if err := w.AddDocument(doc); err != nil {
			return fmt.Errorf("document %d: %w", i, err)
		}
	}
	return nil
}

// AddStream indexes ts as the single field of a new document, without
// materializing the tokens first. It returns the number of tokens indexed.
func (w *Writer) AddStream(externalID, field string, ts TokenSource) (int, error) {
	if externalID == "" {
		return 0, ErrMissingID
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	docID, err := w.allocate(externalID)
	if err != nil {
		return 0, err
	}
	return w.buffer.AddTokens(field, docID, ts)
}

func (w *Writer) allocate(externalID string) (uint32, error) {
	if !w.active {
		return 0, ErrWriterNotActive
	}
	if w.buffer.IsFull() {
		return 0, ErrBufferFull
	}
	return w.buffer.AllocateDocID(externalID)
}

// DocCount returns the number of documents currently in the write buffer.
func (w *Writer) DocCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buffer.DocCount
}

// IsFull returns true if the write buffer has reached its memory or document limit.
func (w *Writer) IsFull() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buffer.IsFull()
}

// Buffer returns the current write buffer.
func (w *Writer) Buffer() *WriteBuffer {
	return w.buffer
}

// Abort discards all buffered documents.
func (w *Writer) Abort() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.buffer.Reset()
}

// Release deactivates the writer. Later adds fail with ErrWriterNotActive.
func (w *Writer) Release() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.active = false
}
