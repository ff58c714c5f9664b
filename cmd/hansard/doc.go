// Command hansard is the CLI for fetching, parsing, and storing
// parliamentary sitting transcripts.
package main
