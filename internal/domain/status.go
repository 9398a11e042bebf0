package domain

// Status is a pipeline stage a candidate can occupy.
type Status string

const (
	StatusReceived        Status = "지원접수"
	StatusScreening       Status = "서류 심사"
	StatusFirstInterview  Status = "1차 면접"
	StatusSecondInterview Status = "2차 면접"
	StatusFinalInterview  Status = "최종 면접"
	StatusHired           Status = "합격"
	StatusRejected        Status = "불합격"
)

// PipelineStages is the ordered stage enumeration, starting with the initial
// "received" stage.
var PipelineStages = []Status{
	StatusReceived,
	StatusScreening,
	StatusFirstInterview,
	StatusSecondInterview,
	StatusFinalInterview,
	StatusHired,
	StatusRejected,
}

// AssignableStatuses returns the stages a generated candidate may hold:
// every stage except the initial one.
func AssignableStatuses() []Status {
	out := make([]Status, len(PipelineStages)-1)
	copy(out, PipelineStages[1:])
	return out
}

// String returns the string representation of Status.
func (s Status) String() string {
	return string(s)
}

// IsValid checks if the status belongs to the pipeline enumeration.
func (s Status) IsValid() bool {
	return s.Ordinal() >= 0
}

// IsInterview reports whether the status is one of the interview rounds.
func (s Status) IsInterview() bool {
	return s == StatusFirstInterview || s == StatusSecondInterview || s == StatusFinalInterview
}

// Ordinal returns the position of s in PipelineStages, or -1.
func (s Status) Ordinal() int {
	for i, st := range PipelineStages {
		if st == s {
			return i
		}
	}
	return -1
}
