package inspect

// Report is an append-only, ordered collection of verdicts. Order is the
// original input order regardless of probe completion order.
type Report struct {
	verdicts []Verdict
}

// NewReport creates a Report pre-sized for n verdicts.
func NewReport(n int) *Report {
	return &Report{verdicts: make([]Verdict, 0, n)}
}

// Append adds a verdict to the end of the report.
func (r *Report) Append(v Verdict) {
	r.verdicts = append(r.verdicts, v)
}

// Len returns the number of verdicts.
func (r *Report) Len() int {
	return len(r.verdicts)
}

// All returns every verdict in input order.
func (r *Report) All() []Verdict {
	return r.verdicts
}

// NearRenewal returns the verdicts flagged for renewal, preserving order
// of first appearance.
func (r *Report) NearRenewal() []Verdict {
	return r.filter(func(v Verdict) bool { return v.HasProblem(ProblemNearRenewal) })
}

// WithProblems returns the verdicts with at least one problem flag.
func (r *Report) WithProblems() []Verdict {
	return r.filter(func(v Verdict) bool { return !v.Healthy() })
}

// RenewalDomains returns the hostnames due for renewal, one per verdict,
// in report order.
func (r *Report) RenewalDomains() []string {
	due := r.NearRenewal()
	domains := make([]string, 0, len(due))
	for _, v := range due {
		domains = append(domains, v.Domain)
	}
	return domains
}

func (r *Report) filter(keep func(Verdict) bool) []Verdict {
	out := make([]Verdict, 0, len(r.verdicts))
	for _, v := range r.verdicts {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
