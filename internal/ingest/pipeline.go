package ingest

import (
	"hansard/internal/assemble"
	"hansard/internal/config"
	"hansard/internal/names"
	"hansard/internal/parse"
)

// Pipeline is the pure transformation core: raw document plus sitting
// date in, assembled record sets and anomalies out. It holds only
// tunables, so one pipeline serves any number of sittings.
type Pipeline struct {
	threshold float64
	margin    float64
	opts      assemble.Options
}

// NewPipeline builds the transformation pipeline from configuration.
func NewPipeline(cfg *config.Config) *Pipeline {
	return &Pipeline{
		threshold: cfg.Matching.FuzzyThreshold,
		margin:    cfg.Matching.AmbiguityMargin,
		opts: assemble.Options{
			ChairConfidence: cfg.Matching.ChairConfidence,
			LearnAliases:    cfg.Matching.LearnAliases,
		},
	}
}

// Process runs one sitting's document through sectioning, extraction,
// identity resolution, and assembly. It is a pure function of the
// document and the roster snapshot; a failed sitting can simply be
// retried from the raw document.
func (p *Pipeline) Process(doc, date, sourceURL string, roster *names.Roster) (assemble.Result, error) {
	blocks, err := parse.ScanBlocks(doc)
	if err != nil {
		return assemble.Result{}, err
	}
	sections, err := parse.Split(blocks, date)
	if err != nil {
		return assemble.Result{}, err
	}

	speeches, signals := parse.ExtractSpeeches(sections.Body)
	in := assemble.Input{
		Date:         date,
		ParliamentNo: parse.ParliamentNo(blocks),
		SourceURL:    sourceURL,
		Attendance:   parse.ExtractAttendance(sections.Attendance),
		PTBA:         parse.ExtractPTBA(sections.PTBA),
		Speeches:     speeches,
		Signals:      signals,
		Anomalies:    sections.Anomalies,
	}
	matcher := names.NewMatcher(roster, p.threshold, p.margin)
	return assemble.Build(in, matcher, p.opts), nil
}
