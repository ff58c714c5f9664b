// Package sitting defines the relational records the ingest pipeline
// emits for one parliamentary sitting day — attendance, approved-absence
// (PTBA) windows, and attributed speeches — together with their natural
// keys and the structured anomaly reports that travel alongside them.
package sitting
