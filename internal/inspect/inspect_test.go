package inspect

import (
	"testing"
	"time"

	"github.com/certwatch-app/certprobe/internal/domain"
	"github.com/certwatch-app/certprobe/internal/probe"
)

func specFor(host string) domain.Spec {
	return domain.ParseSpec(host)
}

func TestEvaluate_NoCertificate(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	v := Evaluate(specFor("example.com"), probe.CertificateInfo{}, 30, now)

	if !v.HasProblem(ProblemNoCertificate) {
		t.Error("expected no_certificate_found flag")
	}
	if v.IssuedTo != "-" {
		t.Errorf("IssuedTo = %q, want -", v.IssuedTo)
	}
	if v.IssuedBy != "-" {
		t.Errorf("IssuedBy = %q, want -", v.IssuedBy)
	}
	if !v.ValidUntil.IsZero() {
		t.Errorf("ValidUntil = %v, want zero", v.ValidUntil)
	}
	if len(v.Problems) != 1 {
		t.Errorf("Problems = %v, want exactly one flag", v.Problems)
	}
}

func TestEvaluate_Identity(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	farFuture := now.AddDate(1, 0, 0)

	tests := []struct {
		name         string
		hostname     string
		cert         probe.CertificateInfo
		wantIssuedTo string
		wantMismatch bool
	}{
		{
			name:     "exact common name match",
			hostname: "example.com",
			cert: probe.CertificateInfo{
				SubjectCN: "example.com",
				DNSNames:  []string{"other.example.net"},
				Found:     true,
				NotAfter:  farFuture,
			},
			wantIssuedTo: "example.com",
		},
		{
			name:     "SAN fallback match",
			hostname: "www.example.com",
			cert: probe.CertificateInfo{
				SubjectCN: "example.com",
				DNSNames:  []string{"example.com", "www.example.com"},
				Found:     true,
				NotAfter:  farFuture,
			},
			wantIssuedTo: "www.example.com (alt)",
		},
		{
			name:     "mismatch keeps subject CN",
			hostname: "example.org",
			cert: probe.CertificateInfo{
				SubjectCN: "example.com",
				DNSNames:  []string{"example.com"},
				Found:     true,
				NotAfter:  farFuture,
			},
			wantIssuedTo: "example.com",
			wantMismatch: true,
		},
		{
			name:     "mismatch with empty CN renders dash",
			hostname: "example.org",
			cert: probe.CertificateInfo{
				DNSNames: []string{"example.com"},
				Found:    true,
				NotAfter: farFuture,
			},
			wantIssuedTo: "-",
			wantMismatch: true,
		},
		{
			name:     "wildcard SANs are not expanded",
			hostname: "www.example.com",
			cert: probe.CertificateInfo{
				SubjectCN: "example.com",
				DNSNames:  []string{"*.example.com"},
				Found:     true,
				NotAfter:  farFuture,
			},
			wantIssuedTo: "example.com",
			wantMismatch: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Evaluate(specFor(tt.hostname), tt.cert, 30, now)
			if v.IssuedTo != tt.wantIssuedTo {
				t.Errorf("IssuedTo = %q, want %q", v.IssuedTo, tt.wantIssuedTo)
			}
			if v.HasProblem(ProblemNameMismatch) != tt.wantMismatch {
				t.Errorf("NameMismatch = %v, want %v", v.HasProblem(ProblemNameMismatch), tt.wantMismatch)
			}
			if v.HasProblem(ProblemNoCertificate) {
				t.Error("unexpected no_certificate_found flag")
			}
		})
	}
}

func TestEvaluate_ExpiryThreshold(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		notAfter time.Time
		wantDue  bool
	}{
		{
			name:     "expires within threshold",
			notAfter: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
			wantDue:  true,
		},
		{
			name:     "expires well beyond threshold",
			notAfter: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			wantDue:  false,
		},
		{
			name:     "exact boundary is not yet due",
			notAfter: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
			wantDue:  false,
		},
		{
			name:     "one second inside the boundary is due",
			notAfter: time.Date(2024, 1, 30, 23, 59, 59, 0, time.UTC),
			wantDue:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cert := probe.CertificateInfo{
				SubjectCN: "example.com",
				NotAfter:  tt.notAfter,
				Found:     true,
			}
			v := Evaluate(specFor("example.com"), cert, 30, now)
			if v.HasProblem(ProblemNearRenewal) != tt.wantDue {
				t.Errorf("NearRenewal = %v, want %v", v.HasProblem(ProblemNearRenewal), tt.wantDue)
			}
		})
	}
}

func TestEvaluate_DSTTransition(t *testing.T) {
	// US DST starts 2024-03-10; the 30-day window from 2024-02-20 crosses
	// it. Calendar arithmetic must still land on the same wall-clock time.
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	now := time.Date(2024, 2, 20, 12, 0, 0, 0, loc)
	boundary := time.Date(2024, 3, 21, 12, 0, 0, 0, loc)

	cert := probe.CertificateInfo{SubjectCN: "example.com", NotAfter: boundary, Found: true}
	v := Evaluate(specFor("example.com"), cert, 30, now)
	if v.HasProblem(ProblemNearRenewal) {
		t.Error("exact calendar boundary across DST flagged as near renewal")
	}
}

func TestEvaluate_PortResolution(t *testing.T) {
	v := Evaluate(specFor("mail.example.com:smtp"), probe.CertificateInfo{}, 30, time.Now())
	if v.Port != 25 {
		t.Errorf("Port = %d, want 25", v.Port)
	}
	if v.Domain != "mail.example.com" {
		t.Errorf("Domain = %q, want mail.example.com", v.Domain)
	}
}
