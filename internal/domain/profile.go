package domain

import "strconv"

// StartTLSKind identifies the plaintext upgrade handshake required before
// the TLS handshake can begin on a given service.
type StartTLSKind string

const (
	StartTLSNone StartTLSKind = ""
	StartTLSFTP  StartTLSKind = "ftp"
	StartTLSIMAP StartTLSKind = "imap"
	StartTLSPOP3 StartTLSKind = "pop3"
	StartTLSSMTP StartTLSKind = "smtp"
	StartTLSXMPP StartTLSKind = "xmpp"
)

// Profile describes how to reach a TLS service: the port to dial and the
// STARTTLS flavor, if any, to negotiate first.
type Profile struct {
	Port     string
	StartTLS StartTLSKind
}

// profiles maps the known service names and their well-known ports.
// Both the name and the numeric port resolve to the same profile, so
// "smtp" and "25" are interchangeable in input files.
var profiles = map[string]Profile{
	"https": {Port: "443"},
	"443":   {Port: "443"},
	"ftp":   {Port: "21", StartTLS: StartTLSFTP},
	"21":    {Port: "21", StartTLS: StartTLSFTP},
	"ftpi":  {Port: "990"},
	"990":   {Port: "990"},
	"imap":  {Port: "143", StartTLS: StartTLSIMAP},
	"143":   {Port: "143", StartTLS: StartTLSIMAP},
	"imaps": {Port: "993"},
	"993":   {Port: "993"},
	"pop3":  {Port: "110", StartTLS: StartTLSPOP3},
	"110":   {Port: "110", StartTLS: StartTLSPOP3},
	"pop3s": {Port: "995"},
	"995":   {Port: "995"},
	"smtp":  {Port: "25", StartTLS: StartTLSSMTP},
	"25":    {Port: "25", StartTLS: StartTLSSMTP},
	"smtps": {Port: "587", StartTLS: StartTLSSMTP},
	"587":   {Port: "587", StartTLS: StartTLSSMTP},
	"xmpp":  {Port: "5222", StartTLS: StartTLSXMPP},
	"5222":  {Port: "5222", StartTLS: StartTLSXMPP},
	"xmpps": {Port: "5269"},
	"5269":  {Port: "5269"},
	"ldaps": {Port: "636"},
	"636":   {Port: "636"},
}

// LookupProfile resolves a protocol hint to a connection profile. Unknown
// hints are treated as a literal port with no STARTTLS: a numeric token
// dials that port directly, and a non-numeric token is passed through
// unchanged and fails at dial time.
func LookupProfile(hint string) Profile {
	if p, ok := profiles[hint]; ok {
		return p
	}
	return Profile{Port: hint, StartTLS: StartTLSNone}
}

// PortNumber returns the profile port as an integer, or 0 if the port is
// not numeric (possible for unknown non-numeric hints).
func (p Profile) PortNumber() int {
	n, err := strconv.Atoi(p.Port)
	if err != nil {
		return 0
	}
	return n
}
