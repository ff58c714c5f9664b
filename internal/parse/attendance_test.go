package parse

import "testing"

func TestExtractAttendance(t *testing.T) {
	doc := `
<p>Mr SPEAKER (Mr Seah Kian Peng (Marine Parade)).</p>
<p>Mr Tan Wei Ming (Ang Mo Kio).</p>
<p>Ms Sylvia Lim (Aljunied) (Absent).</p>
<p></p>
`
	rows := ExtractAttendance(mustScan(t, doc))
	want := []AttendanceRow{
		{RawName: "Mr SPEAKER (Mr Seah Kian Peng (Marine Parade))", Present: true},
		{RawName: "Mr Tan Wei Ming (Ang Mo Kio)", Present: true},
		{RawName: "Ms Sylvia Lim (Aljunied)", Present: false},
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

func TestExtractAttendanceSkipsHeadings(t *testing.T) {
	doc := `<h2>ATTENDANCE</h2><p>Mr Tan Wei Ming.</p>`
	rows := ExtractAttendance(mustScan(t, doc))
	if len(rows) != 1 || rows[0].RawName != "Mr Tan Wei Ming" {
		t.Fatalf("rows = %+v, want single Mr Tan Wei Ming", rows)
	}
}
