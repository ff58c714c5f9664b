// Package parse decomposes raw transcript markup into sections and
// typed rows: the attendance roll, permission-to-be-absent
// announcements, and attributed speech turns, plus the chair-presence
// signals the transcript carries.
package parse
