package domain

type ExtractionOutcome string

const (
	OutcomeSummary       ExtractionOutcome = "summary"
	OutcomeNoSummaryLink ExtractionOutcome = "no_summary_link"
	OutcomeEmptyContent  ExtractionOutcome = "empty_content"
	OutcomeNetworkError  ExtractionOutcome = "network_error"
)

type ExtractionResult struct {
	Outcome ExtractionOutcome
	Text    string
	// Detail carries the URL or transport error behind a not-found outcome.
	Detail string
}

func Summary(text string) ExtractionResult {
	return ExtractionResult{Outcome: OutcomeSummary, Text: text}
}

func NotFound(outcome ExtractionOutcome, detail string) ExtractionResult {
	return ExtractionResult{Outcome: outcome, Detail: detail}
}

func (r ExtractionResult) Found() bool {
	return r.Outcome == OutcomeSummary
}
