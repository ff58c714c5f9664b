// Package names canonicalizes the raw speaker labels found in transcript
// markup and resolves them against a roster of known member identities.
//
// Normalization is pure string cleanup: markup artifacts, honorifics,
// whitespace variance. Resolution tries an exact lookup on the normalized
// comparison key first and falls back to bigram-fingerprint similarity
// with a confidence threshold and an ambiguity guard, so the result is
// deterministic for a fixed roster and input.
package names
