package domain

// Sequence names a counter that mints human-readable identifiers.
type Sequence string

const (
	SequenceMember       Sequence = "member_no_seq"
	SequenceTransaction  Sequence = "transaction_no_seq"
	SequenceIssueRequest Sequence = "issue_request_no_seq"
)

// IsValid reports whether s is one of the known counters.
func (s Sequence) IsValid() bool {
	switch s {
	case SequenceMember, SequenceTransaction, SequenceIssueRequest:
		return true
	}
	return false
}
