// Package textutil provides the text primitives shared by the transcript
// extractors and the fuzzy name matcher: whitespace normalization, word
// counting, and frequency-vector fingerprints with cosine similarity.
//
// Fingerprints come in two flavours. Term fingerprints tokenize free text
// (lowercased, split on non-alphanumerics, tokens shorter than 3 runes
// dropped) and suit longer passages. Bigram fingerprints decompose a
// string into character bigrams and tolerate the single-character spelling
// variance typical of transcribed names.
package textutil
