// Package domain parses endpoint specifications and resolves protocol
// hints to connection profiles.
package domain

import "strings"

// Spec is one endpoint to probe, as parsed from a single input line.
// Immutable once built.
type Spec struct {
	Hostname     string
	ProtocolHint string
	ExtraOptions []string
	Profile      Profile
}

// ParseSpec parses one non-comment, non-blank input line of the form
//
//	hostname[:port-or-service] [extra tokens...]
//
// No hostname syntax validation is performed; a garbage hostname simply
// fails later at the network layer. ParseSpec never fails.
func ParseSpec(line string) Spec {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) == 0 {
		return Spec{ProtocolHint: "443", Profile: LookupProfile("443")}
	}

	host := fields[0]
	hint := "443"
	if i := strings.Index(host, ":"); i >= 0 {
		hint = host[i+1:]
		host = host[:i]
	}

	spec := Spec{
		Hostname:     host,
		ProtocolHint: hint,
		Profile:      LookupProfile(hint),
	}

	// Extra tokens only matter for unrecognized hints, where they are
	// passed through verbatim as low-level connection options.
	if _, known := profiles[hint]; !known && len(fields) > 1 {
		spec.ExtraOptions = fields[1:]
	}

	return spec
}

// Port returns the resolved numeric port, or 0 for a non-numeric hint.
func (s Spec) Port() int {
	return s.Profile.PortNumber()
}
