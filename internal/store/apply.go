package store

import (
	"context"
	"database/sql"
	"fmt"

	"hansard/internal/merge"
	"hansard/internal/sitting"
)

// Apply executes an upsert plan in one transaction. No-op changes are
// skipped; inserts and updates share the same conflict-target upsert so
// applying a plan twice leaves the database unchanged.
func (s *Store) Apply(ctx context.Context, plan merge.Plan) error {
	ctx = ensureContext(ctx)
	return retryOnBusy(ctx, func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin apply tx: %w", err)
		}
		defer func() { _ = tx.Rollback() }()

		if plan.SittingAction != merge.ActionNoop {
			if _, err := tx.ExecContext(ctx, `
INSERT INTO sittings (sitting_date, parliament_no, source_url)
VALUES (?, ?, ?)
ON CONFLICT(sitting_date) DO UPDATE SET
    parliament_no = excluded.parliament_no,
    source_url = excluded.source_url`,
				plan.Sitting.Date, plan.Sitting.ParliamentNo, plan.Sitting.SourceURL); err != nil {
				return fmt.Errorf("upsert sitting %s: %w", plan.Sitting.Date, err)
			}
		}

		for _, ch := range plan.Attendance {
			if ch.Action == merge.ActionNoop {
				continue
			}
			if err := upsertAttendance(ctx, tx, ch.Record); err != nil {
				return err
			}
		}
		for _, ch := range plan.PTBA {
			if ch.Action == merge.ActionNoop {
				continue
			}
			if err := upsertPTBA(ctx, tx, ch.Record); err != nil {
				return err
			}
		}
		for _, ch := range plan.Speeches {
			if ch.Action == merge.ActionNoop {
				continue
			}
			if err := upsertSpeech(ctx, tx, ch.Record); err != nil {
				return err
			}
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit apply: %w", err)
		}
		return nil
	})
}

type txLike interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func upsertAttendance(ctx context.Context, tx txLike, rec sitting.Attendance) error {
	_, err := tx.ExecContext(ctx, `
INSERT INTO attendance (sitting_date, member, raw_name, resolved, present, is_speaker, is_deputy_speaker)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(sitting_date, member) DO UPDATE SET
    raw_name = excluded.raw_name,
    resolved = excluded.resolved,
    present = excluded.present,
    is_speaker = excluded.is_speaker,
    is_deputy_speaker = excluded.is_deputy_speaker`,
		rec.SittingDate, rec.Member, rec.RawName, rec.Resolved, rec.Present, rec.IsSpeaker, rec.IsDeputySpeaker)
	if err != nil {
		return fmt.Errorf("upsert attendance %s: %w", rec.Key(), err)
	}
	return nil
}

func upsertPTBA(ctx context.Context, tx txLike, rec sitting.PTBA) error {
	_, err := tx.ExecContext(ctx, `
INSERT INTO ptba (sitting_date, member, raw_name, resolved, window_text, date_from, date_to)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(sitting_date, member, window_text) DO UPDATE SET
    raw_name = excluded.raw_name,
    resolved = excluded.resolved,
    date_from = excluded.date_from,
    date_to = excluded.date_to`,
		rec.SittingDate, rec.Member, rec.RawName, rec.Resolved, rec.WindowText, rec.From, rec.To)
	if err != nil {
		return fmt.Errorf("upsert ptba %s: %w", rec.Key(), err)
	}
	return nil
}

func upsertSpeech(ctx context.Context, tx txLike, rec sitting.Speech) error {
	_, err := tx.ExecContext(ctx, `
INSERT INTO speeches (sitting_date, seq, speaker, raw_name, resolved, role, chair_name, topic, question_item, text, word_count, char_count)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(sitting_date, seq) DO UPDATE SET
    speaker = excluded.speaker,
    raw_name = excluded.raw_name,
    resolved = excluded.resolved,
    role = excluded.role,
    chair_name = excluded.chair_name,
    topic = excluded.topic,
    question_item = excluded.question_item,
    text = excluded.text,
    word_count = excluded.word_count,
    char_count = excluded.char_count`,
		rec.SittingDate, rec.Seq, rec.Speaker, rec.RawName, rec.Resolved, string(rec.Role),
		rec.ChairName, rec.Topic, rec.QuestionItem, rec.Text, rec.WordCount, rec.CharCount)
	if err != nil {
		return fmt.Errorf("upsert speech %s: %w", rec.Key(), err)
	}
	return nil
}
