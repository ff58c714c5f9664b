package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hansard/internal/sitting"
)

// LoadSets returns the stored record sets for a sitting date. A date
// with no stored sitting yields empty sets, not an error.
func (s *Store) LoadSets(ctx context.Context, date string) (sitting.RecordSets, error) {
	ctx = ensureContext(ctx)
	var out sitting.RecordSets

	err := s.db.QueryRowContext(ctx,
		"SELECT sitting_date, parliament_no, source_url FROM sittings WHERE sitting_date = ?", date,
	).Scan(&out.Sitting.Date, &out.Sitting.ParliamentNo, &out.Sitting.SourceURL)
	if errors.Is(err, sql.ErrNoRows) {
		return sitting.RecordSets{}, nil
	}
	if err != nil {
		return sitting.RecordSets{}, fmt.Errorf("load sitting %s: %w", date, err)
	}

	if out.Attendance, err = s.loadAttendance(ctx, date); err != nil {
		return sitting.RecordSets{}, err
	}
	if out.PTBA, err = s.loadPTBA(ctx, date); err != nil {
		return sitting.RecordSets{}, err
	}
	if out.Speeches, err = s.loadSpeeches(ctx, date); err != nil {
		return sitting.RecordSets{}, err
	}
	return out, nil
}

func (s *Store) loadAttendance(ctx context.Context, date string) ([]sitting.Attendance, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT sitting_date, member, raw_name, resolved, present, is_speaker, is_deputy_speaker
FROM attendance WHERE sitting_date = ? ORDER BY rowid`, date)
	if err != nil {
		return nil, fmt.Errorf("load attendance %s: %w", date, err)
	}
	defer func() { _ = rows.Close() }()

	var records []sitting.Attendance
	for rows.Next() {
		var rec sitting.Attendance
		if err := rows.Scan(&rec.SittingDate, &rec.Member, &rec.RawName, &rec.Resolved,
			&rec.Present, &rec.IsSpeaker, &rec.IsDeputySpeaker); err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *Store) loadPTBA(ctx context.Context, date string) ([]sitting.PTBA, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT sitting_date, member, raw_name, resolved, window_text, date_from, date_to
FROM ptba WHERE sitting_date = ? ORDER BY rowid`, date)
	if err != nil {
		return nil, fmt.Errorf("load ptba %s: %w", date, err)
	}
	defer func() { _ = rows.Close() }()

	var records []sitting.PTBA
	for rows.Next() {
		var rec sitting.PTBA
		if err := rows.Scan(&rec.SittingDate, &rec.Member, &rec.RawName, &rec.Resolved,
			&rec.WindowText, &rec.From, &rec.To); err != nil {
			return nil, fmt.Errorf("scan ptba: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *Store) loadSpeeches(ctx context.Context, date string) ([]sitting.Speech, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT sitting_date, seq, speaker, raw_name, resolved, role, chair_name, topic, question_item, text, word_count, char_count
FROM speeches WHERE sitting_date = ? ORDER BY seq`, date)
	if err != nil {
		return nil, fmt.Errorf("load speeches %s: %w", date, err)
	}
	defer func() { _ = rows.Close() }()

	var records []sitting.Speech
	for rows.Next() {
		var rec sitting.Speech
		var role string
		if err := rows.Scan(&rec.SittingDate, &rec.Seq, &rec.Speaker, &rec.RawName, &rec.Resolved,
			&role, &rec.ChairName, &rec.Topic, &rec.QuestionItem, &rec.Text,
			&rec.WordCount, &rec.CharCount); err != nil {
			return nil, fmt.Errorf("scan speech: %w", err)
		}
		rec.Role = sitting.Role(role)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// LatestSittingDate returns the most recent stored sitting date, or ""
// when the database is empty.
func (s *Store) LatestSittingDate(ctx context.Context) (string, error) {
	ctx = ensureContext(ctx)
	var date sql.NullString
	err := s.db.QueryRowContext(ctx, "SELECT MAX(sitting_date) FROM sittings").Scan(&date)
	if err != nil {
		return "", fmt.Errorf("latest sitting date: %w", err)
	}
	return date.String, nil
}

// Members returns every canonical member name seen in confidently
// resolved records, for seeding the roster on subsequent runs.
func (s *Store) Members(ctx context.Context) ([]string, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx, `
SELECT member FROM attendance WHERE resolved = 1
UNION
SELECT member FROM ptba WHERE resolved = 1
UNION
SELECT speaker FROM speeches WHERE resolved = 1
ORDER BY 1`)
	if err != nil {
		return nil, fmt.Errorf("load members: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var members []string
	for rows.Next() {
		var member string
		if err := rows.Scan(&member); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		members = append(members, member)
	}
	return members, rows.Err()
}

// Summary describes one stored sitting for status reporting.
type Summary struct {
	Date         string
	ParliamentNo int
	Attendance   int
	PTBA         int
	Speeches     int
	Words        int
}

// Summaries returns per-sitting counts for the most recent sittings,
// newest first. A limit of 0 returns everything.
func (s *Store) Summaries(ctx context.Context, limit int) ([]Summary, error) {
	ctx = ensureContext(ctx)
	query := `
SELECT st.sitting_date,
       st.parliament_no,
       (SELECT COUNT(1) FROM attendance a WHERE a.sitting_date = st.sitting_date),
       (SELECT COUNT(1) FROM ptba p WHERE p.sitting_date = st.sitting_date),
       (SELECT COUNT(1) FROM speeches sp WHERE sp.sitting_date = st.sitting_date),
       (SELECT COALESCE(SUM(word_count), 0) FROM speeches sp WHERE sp.sitting_date = st.sitting_date)
FROM sittings st
ORDER BY st.sitting_date DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("load summaries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var summaries []Summary
	for rows.Next() {
		var sum Summary
		if err := rows.Scan(&sum.Date, &sum.ParliamentNo, &sum.Attendance, &sum.PTBA, &sum.Speeches, &sum.Words); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		summaries = append(summaries, sum)
	}
	return summaries, rows.Err()
}
