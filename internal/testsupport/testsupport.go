// Package testsupport provides shared helpers for package tests: config
// fixtures, store construction, and sample transcript documents.
package testsupport

import (
	"path/filepath"
	"testing"

	"hansard/internal/config"
	"hansard/internal/names"
	"hansard/internal/store"
)

// NewConfig returns a default configuration rooted in a per-test temp
// directory.
func NewConfig(t *testing.T) *config.Config {
	t.Helper()
	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate test config: %v", err)
	}
	return &cfg
}

// MustOpenStore opens a fresh store in a temp directory and closes it
// when the test finishes.
func MustOpenStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(NewConfig(t))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := st.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return st
}

// Roster returns a small member roster shared by pipeline tests.
func Roster() *names.Roster {
	return names.NewRoster([]names.Identity{
		{Canonical: "Seah Kian Peng"},
		{Canonical: "Tan Wei Ming"},
		{Canonical: "Sylvia Lim"},
		{Canonical: "Ong Ye Kung"},
		{Canonical: "Patrick Tay"},
	})
}

// SampleDocument builds a complete transcript document covering every
// section: attendance (with an absence), permission-to-be-absent rows,
// and a speech body with chair markers and attributed turns.
func SampleDocument() string {
	return `
<h1>FIRST SESSION OF THE FOURTEENTH PARLIAMENT</h1>
<h2>ATTENDANCE</h2>
<p>Mr SPEAKER (Mr Seah Kian Peng (Marine Parade)).</p>
<p>Mr Tan Wei Ming (Ang Mo Kio).</p>
<p>Mr Ong Ye Kung (Sembawang).</p>
<p>Ms Sylvia Lim (Aljunied) (Absent).</p>
<h2>PERMISSION TO BE ABSENT</h2>
<p><strong>Ms Sylvia Lim</strong>: 1 Mar to 8 Mar</p>
<h2>BUDGET DEBATE</h2>
<p>[Mr Speaker in the Chair]</p>
<p>1.30 pm</p>
<p><strong>Mr Tan Wei-Ming</strong>: I rise in support of the Bill, Mr Speaker.</p>
<p>There are three reasons for my support.</p>
<p><strong>The Minister for Health</strong> (Mr Ong Ye Kung): I thank the Member for his support.</p>
`
}

// DocumentWithoutPTBA is SampleDocument without the
// permission-to-be-absent section, for degradation tests.
func DocumentWithoutPTBA() string {
	return `
<h2>ATTENDANCE</h2>
<p>Mr SPEAKER (Mr Seah Kian Peng (Marine Parade)).</p>
<p>Mr Tan Wei Ming (Ang Mo Kio).</p>
<h2>BUDGET DEBATE</h2>
<p>[Mr Speaker in the Chair]</p>
<p><strong>Mr Tan Wei Ming</strong>: I rise in support of the Bill.</p>
`
}
