package storage

import (
	"context"

	sent "github.com/revelaction/bunsetu/sentence"
)

// DocReader defines read operations for document storage
type DocReader interface {
	// List returns the metadata (Id, Title, Labels) of documents.
	// Content (Sentences) is not loaded.
	List(ctx context.Context) ([]sent.Doc, error)

	// Read returns a document by ID
	Read(ctx context.Context, id int) (sent.Doc, error)
}

// DocWriter defines write operations for document storage
type DocWriter interface {
	// Write persists a document and its sentences, returning the new doc ID.
	Write(ctx context.Context, doc sent.Doc) (int, error)
}

// DocRepository combines read and write operations
type DocRepository interface {
	DocReader
	DocWriter
}

// Chunking is the stored chunking of one sentence.
type Chunking struct {
	SentenceId int
	Heads      []int

	// BI is the compact label string, one byte per token ("BIIBI").
	BI string
}

// ChunkReader is an optional capability of repositories that keep the
// chunking computed at import time.
type ChunkReader interface {
	// Chunks returns the stored chunkings of a doc ordered by sentence.
	Chunks(ctx context.Context, docId int) ([]Chunking, error)
}

// ChunkWriter persists chunkings.
type ChunkWriter interface {
	WriteChunks(ctx context.Context, docId int, chunks []Chunking) error
}
