package parse

import "testing"

func TestExtractPTBA(t *testing.T) {
	doc := `
<p><strong>Ms Sylvia Lim</strong>: 1 Mar to 8 Mar</p>
<p>Mr Tan Wei Ming: 5 Mar</p>
<p>12 Mar to 14 Mar</p>
<p>Pursuant to Standing Order No 1.</p>
`
	rows := ExtractPTBA(mustScan(t, doc))
	want := []PTBARow{
		{RawName: "Ms Sylvia Lim", WindowText: "1 Mar to 8 Mar"},
		{RawName: "Mr Tan Wei Ming", WindowText: "5 Mar"},
		{RawName: "Mr Tan Wei Ming", WindowText: "12 Mar to 14 Mar"},
	}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d: %+v", len(rows), len(want), rows)
	}
	for i, row := range rows {
		if row != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, row, want[i])
		}
	}
}

func TestExtractPTBAMalformedWindowKept(t *testing.T) {
	doc := `<p><strong>Mr Tan Wei Ming</strong>: until further notice 2024</p>`
	rows := ExtractPTBA(mustScan(t, doc))
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].WindowText != "until further notice 2024" {
		t.Errorf("window text = %q", rows[0].WindowText)
	}
	if _, _, ok := ParseWindow(rows[0].WindowText, 2024); ok {
		t.Error("malformed window parsed unexpectedly")
	}
}

func TestParseWindow(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		year     int
		wantFrom string
		wantTo   string
		wantOK   bool
	}{
		{"range", "1 Jul to 15 Jul", 2024, "2024-07-01", "2024-07-15", true},
		{"single day", "5 Mar", 2024, "2024-03-05", "2024-03-05", true},
		{"full month names", "3 January to 7 February", 2024, "2024-01-03", "2024-02-07", true},
		{"explicit years", "28 Dec 2023 to 4 Jan 2024", 2024, "2023-12-28", "2024-01-04", true},
		{"year rollover", "28 Dec to 4 Jan", 2023, "2023-12-28", "2024-01-04", true},
		{"hyphen separator", "1 Jul - 15 Jul", 2024, "2024-07-01", "2024-07-15", true},
		{"nonsense month", "1 Foo to 2 Bar", 2024, "", "", false},
		{"impossible day", "31 Feb", 2024, "", "", false},
		{"empty", "", 2024, "", "", false},
		{"prose", "until further notice", 2024, "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to, ok := ParseWindow(tt.text, tt.year)
			if from != tt.wantFrom || to != tt.wantTo || ok != tt.wantOK {
				t.Errorf("ParseWindow(%q, %d) = (%q, %q, %v), want (%q, %q, %v)",
					tt.text, tt.year, from, to, ok, tt.wantFrom, tt.wantTo, tt.wantOK)
			}
		})
	}
}
