// Package ingest wires the transformation core to its collaborators:
// the fetch client, the store, and the date-range walk. The Pipeline is
// the pure document-to-records core; the Runner orchestrates whole runs.
package ingest
