package indexing

import (
	"errors"
	"sort"
	"sync/atomic"

	"kytoken/internal/analysis"
)

// Buffer limits.
const (
	DefaultBufferMemoryLimit = 64 * 1024 * 1024 // 64MB
	DefaultMaxDocs           = 100_000
)

var (
	ErrBufferFull      = errors.New("write buffer memory limit reached")
	ErrDuplicateDoc    = errors.New("duplicate document ID in buffer")
	ErrWriterNotActive = errors.New("writer is not active")
)

// TokenSource yields tokens one at a time. The returned Token may be
// reused by the next call to Advance.
type TokenSource interface {
	Advance() bool
	Token() *analysis.Token
}

// SliceSource adapts an already analyzed token slice to a TokenSource.
type SliceSource struct {
	tokens []analysis.Token
	i      int
}

// NewSliceSource returns a TokenSource over tokens.
func NewSliceSource(tokens []analysis.Token) *SliceSource {
	return &SliceSource{tokens: tokens, i: -1}
}

func (s *SliceSource) Advance() bool {
	if s.i+1 >= len(s.tokens) {
		s.i = len(s.tokens)
		return false
	}
	s.i++
	return true
}

func (s *SliceSource) Token() *analysis.Token {
	return &s.tokens[s.i]
}

// PostingEntry represents a single posting for a term in a field.
type PostingEntry struct {
	DocID     uint32
	Freq      uint32
	Positions []uint32
}

// PostingsList accumulates postings for a single term in a single field.
type PostingsList struct {
	Entries []PostingEntry
}

// TermStats summarizes one term of a field.
type TermStats struct {
	Term    string `json:"term"`
	DocFreq int    `json:"doc_freq"`
	TotalTF uint64 `json:"total_tf"`
}

// WriteBuffer builds an in-memory inverted index from token streams.
type WriteBuffer struct {
	// InvertedIndex: field → term → postings list
	InvertedIndex map[string]map[string]*PostingsList

	// ExternalToInternal maps external doc IDs to internal doc IDs.
	ExternalToInternal map[string]uint32

	NextDocID  uint32
	DocCount   int
	TermCount  int
	TokenCount int

	memoryUsed  atomic.Int64
	MemoryLimit int64
	MaxDocs     int
}

// NewWriteBuffer creates a new empty write buffer.
func NewWriteBuffer() *WriteBuffer {
	return &WriteBuffer{
		InvertedIndex:      make(map[string]map[string]*PostingsList),
		ExternalToInternal: make(map[string]uint32),
		MemoryLimit:        DefaultBufferMemoryLimit,
		MaxDocs:            DefaultMaxDocs,
	}
}

// AddTokens drains ts and records every token as a posting of field in
// docID. Positions are taken from the tokens as-is. It returns the number
// of tokens consumed.
func (b *WriteBuffer) AddTokens(field string, docID uint32, ts TokenSource) (int, error) {
	if b.memoryUsed.Load() >= b.MemoryLimit {
		return 0, ErrBufferFull
	}

	var terms []string
	var positions [][]uint32
	index := make(map[string]int)
	n := 0
	for ts.Advance() {
		tok := ts.Token()
		// The lookup does not allocate; the term is copied only when new.
		i, seen := index[string(tok.Term)]
		if !seen {
			i = len(terms)
			term := string(tok.Term)
			index[term] = i
			terms = append(terms, term)
			positions = append(positions, nil)
		}
		positions[i] = append(positions[i], uint32(tok.Position))
		n++
	}

	for i, term := range terms {
		b.AddPosting(field, term, docID, uint32(len(positions[i])), positions[i])
	}
	b.TokenCount += n
	return n, nil
}

// AddPosting adds a posting entry for the given field and term.
func (b *WriteBuffer) AddPosting(field, term string, docID uint32, freq uint32, positions []uint32) {
	fieldMap, ok := b.InvertedIndex[field]
	if !ok {
		fieldMap = make(map[string]*PostingsList)
		b.InvertedIndex[field] = fieldMap
	}

	pl, ok := fieldMap[term]
	if !ok {
		pl = &PostingsList{}
		fieldMap[term] = pl
		b.TermCount++
		b.memoryUsed.Add(int64(len(term)))
	}

	pl.Entries = append(pl.Entries, PostingEntry{
		DocID:     docID,
		Freq:      freq,
		Positions: positions,
	})

	// Approximate memory tracking.
	b.memoryUsed.Add(int64(16 + len(positions)*4))
}

// Postings returns the postings of term in field, or nil.
func (b *WriteBuffer) Postings(field, term string) *PostingsList {
	return b.InvertedIndex[field][term]
}

// Terms returns per-term statistics for field, most frequent first. Ties
// are broken by term.
func (b *WriteBuffer) Terms(field string) []TermStats {
	fieldMap := b.InvertedIndex[field]
	stats := make([]TermStats, 0, len(fieldMap))
	for term, pl := range fieldMap {
		s := TermStats{Term: term}
		docs := make(map[uint32]struct{}, len(pl.Entries))
		for _, e := range pl.Entries {
			docs[e.DocID] = struct{}{}
			s.TotalTF += uint64(e.Freq)
		}
		s.DocFreq = len(docs)
		stats = append(stats, s)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].TotalTF != stats[j].TotalTF {
			return stats[i].TotalTF > stats[j].TotalTF
		}
		return stats[i].Term < stats[j].Term
	})
	return stats
}

// AllocateDocID assigns an internal doc ID for an external ID.
// Returns an error if the external ID is already in the buffer.
func (b *WriteBuffer) AllocateDocID(externalID string) (uint32, error) {
	if _, exists := b.ExternalToInternal[externalID]; exists {
		return 0, ErrDuplicateDoc
	}

	docID := b.NextDocID
	b.NextDocID++
	b.DocCount++
	b.ExternalToInternal[externalID] = docID
	return docID, nil
}

// MemoryUsed returns the approximate memory used by the buffer.
func (b *WriteBuffer) MemoryUsed() int64 {
	return b.memoryUsed.Load()
}

// IsFull returns true if the buffer has reached its memory or document limit.
func (b *WriteBuffer) IsFull() bool {
	if b.DocCount >= b.MaxDocs {
		return true
	}
	return b.memoryUsed.Load() >= b.MemoryLimit
}

// Reset clears the buffer for reuse.
func (b *WriteBuffer) Reset() {
	b.InvertedIndex = make(map[string]map[string]*PostingsList)
	b.ExternalToInternal = make(map[string]uint32)
	b.NextDocID = 0
	b.DocCount = 0
	b.TermCount = 0
	b.TokenCount = 0
	b.memoryUsed.Store(0)
}
