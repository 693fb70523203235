// Package bunsetu segments a dependency parsed sentence into contiguous
// chunks (bunsetu) headed by one content token each, and extracts phrase
// spans rooted at those heads.
//
// The computation runs in passes over a sentence.Sentence:
//
//	MarkHeads        heads from ROOT and suffixed dependency labels
//	RecoverSubtrees  leftward governor chains of every head
//	ResolveEntities  a single head per entity span
//	BILabels         Begin/Inside tag per token
//
// Recognizer runs them in order. Nothing in this package keeps global state,
// a Recognizer can be shared between goroutines as long as each goroutine
// owns the sentences it passes in.
package bunsetu

const (
	// RootLabel is the dependency label of the sentence root.
	RootLabel = "ROOT"

	// DefaultHeadSuffix is appended to a dependency label by an upstream
	// segmentation step to signal a chunk head.
	DefaultHeadSuffix = "_bunsetu"

	punct = "PUNCT"
)

// DefaultPhraseRelations returns the relations followed when extracting a
// phrase span: compound, numeral modifier and nominal modifier.
func DefaultPhraseRelations() []string {
	return []string{"compound", "nummod", "nmod"}
}

// Config carries the conventions shared by the passes.
type Config struct {
	// HeadSuffix marks a dependency label as a chunk head. Empty disables
	// the suffix convention.
	HeadSuffix string

	// PhraseRelations are the dependency labels PhraseSpan descends into.
	PhraseRelations []string
}

// DefaultConfig returns a Config with the default suffix and relations.
func DefaultConfig() Config {
	return Config{
		HeadSuffix:      DefaultHeadSuffix,
		PhraseRelations: DefaultPhraseRelations(),
	}
}
