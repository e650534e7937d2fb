// Package probe retrieves leaf certificates from TLS endpoints, with
// optional STARTTLS negotiation for mail and chat protocols.
package probe

import "time"

// CertificateInfo is the canonical parsed form of a presented leaf
// certificate. The zero value (Found == false) is the designed
// "no certificate" outcome for unreachable endpoints, failed handshakes,
// or empty certificate responses; it is consumed downstream, never
// surfaced as a run error.
type CertificateInfo struct {
	SubjectCN string
	DNSNames  []string
	IssuerCN  string
	NotAfter  time.Time
	Found     bool
}
