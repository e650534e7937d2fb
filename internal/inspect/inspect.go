// Package inspect derives per-endpoint verdicts from probed certificates
// and accumulates them into an ordered report.
package inspect

import (
	"time"

	"github.com/certwatch-app/certprobe/internal/domain"
	"github.com/certwatch-app/certprobe/internal/probe"
)

// Problem flags a risk condition on a probed endpoint
type Problem string

const (
	ProblemNoCertificate Problem = "no_certificate_found"
	ProblemNameMismatch  Problem = "name_mismatch"
	ProblemNearRenewal   Problem = "near_renewal"
)

// Verdict is the evaluation outcome for one endpoint. ValidUntil is the
// zero time when no certificate was found; IssuedTo and IssuedBy hold "-"
// in that case so the verdict renders directly.
type Verdict struct {
	Domain     string
	Port       int
	IssuedTo   string
	IssuedBy   string
	ValidUntil time.Time
	Problems   []Problem
}

// HasProblem reports whether the verdict carries the given flag.
func (v Verdict) HasProblem(p Problem) bool {
	for _, q := range v.Problems {
		if q == p {
			return true
		}
	}
	return false
}

// Healthy reports whether the verdict carries no problem flags.
func (v Verdict) Healthy() bool {
	return len(v.Problems) == 0
}

// Evaluate computes the verdict for one endpoint.
//
// Identity: an exact common-name match wins; otherwise literal membership
// in the SAN list counts as "<hostname> (alt)". Wildcard SAN patterns such
// as "*.example.com" are deliberately NOT expanded: comparison is string
// equality only.
//
// Expiry: the endpoint is near renewal when now advanced by renewAlertDays
// calendar days falls strictly after the certificate's notAfter. AddDate
// keeps the arithmetic correct across DST transitions; an endpoint expiring
// exactly renewAlertDays from now is not yet flagged.
func Evaluate(spec domain.Spec, cert probe.CertificateInfo, renewAlertDays int, now time.Time) Verdict {
	v := Verdict{
		Domain:   spec.Hostname,
		Port:     spec.Port(),
		IssuedTo: "-",
		IssuedBy: "-",
	}

	if !cert.Found {
		v.Problems = append(v.Problems, ProblemNoCertificate)
		return v
	}

	switch {
	case cert.SubjectCN == spec.Hostname:
		v.IssuedTo = cert.SubjectCN
	case containsName(cert.DNSNames, spec.Hostname):
		v.IssuedTo = spec.Hostname + " (alt)"
	default:
		if cert.SubjectCN != "" {
			v.IssuedTo = cert.SubjectCN
		}
		v.Problems = append(v.Problems, ProblemNameMismatch)
	}

	v.ValidUntil = cert.NotAfter
	if now.AddDate(0, 0, renewAlertDays).After(cert.NotAfter) {
		v.Problems = append(v.Problems, ProblemNearRenewal)
	}

	if cert.IssuerCN != "" {
		v.IssuedBy = cert.IssuerCN
	}

	return v
}

func containsName(names []string, host string) bool {
	for _, n := range names {
		if n == host {
			return true
		}
	}
	return false
}
