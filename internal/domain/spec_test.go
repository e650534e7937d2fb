package domain

import (
	"reflect"
	"testing"
)

func TestParseSpec(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		hostname string
		hint     string
		port     string
		starttls StartTLSKind
		extra    []string
	}{
		{
			name:     "bare hostname defaults to 443",
			line:     "example.com",
			hostname: "example.com",
			hint:     "443",
			port:     "443",
			starttls: StartTLSNone,
		},
		{
			name:     "numeric hint",
			line:     "mail.example.com:993",
			hostname: "mail.example.com",
			hint:     "993",
			port:     "993",
			starttls: StartTLSNone,
		},
		{
			name:     "service name hint",
			line:     "mail.example.com:smtp",
			hostname: "mail.example.com",
			hint:     "smtp",
			port:     "25",
			starttls: StartTLSSMTP,
		},
		{
			name:     "unknown numeric hint passes through",
			line:     "svc.example.com:9999",
			hostname: "svc.example.com",
			hint:     "9999",
			port:     "9999",
			starttls: StartTLSNone,
		},
		{
			name:     "unknown hint keeps extra options verbatim",
			line:     "svc.example.com:9999 -flag1 -flag2",
			hostname: "svc.example.com",
			hint:     "9999",
			port:     "9999",
			starttls: StartTLSNone,
			extra:    []string{"-flag1", "-flag2"},
		},
		{
			name:     "known hint ignores extra tokens",
			line:     "example.com:https trailing junk",
			hostname: "example.com",
			hint:     "https",
			port:     "443",
			starttls: StartTLSNone,
		},
		{
			name:     "surrounding whitespace trimmed",
			line:     "  example.com:imap  ",
			hostname: "example.com",
			hint:     "imap",
			port:     "143",
			starttls: StartTLSIMAP,
		},
		{
			name:     "non-numeric unknown hint kept literally",
			line:     "example.com:bogus",
			hostname: "example.com",
			hint:     "bogus",
			port:     "bogus",
			starttls: StartTLSNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := ParseSpec(tt.line)
			if spec.Hostname != tt.hostname {
				t.Errorf("Hostname = %q, want %q", spec.Hostname, tt.hostname)
			}
			if spec.ProtocolHint != tt.hint {
				t.Errorf("ProtocolHint = %q, want %q", spec.ProtocolHint, tt.hint)
			}
			if spec.Profile.Port != tt.port {
				t.Errorf("Profile.Port = %q, want %q", spec.Profile.Port, tt.port)
			}
			if spec.Profile.StartTLS != tt.starttls {
				t.Errorf("Profile.StartTLS = %q, want %q", spec.Profile.StartTLS, tt.starttls)
			}
			if !reflect.DeepEqual(spec.ExtraOptions, tt.extra) {
				t.Errorf("ExtraOptions = %v, want %v", spec.ExtraOptions, tt.extra)
			}
		})
	}
}

func TestLookupProfile(t *testing.T) {
	tests := []struct {
		hint     string
		port     string
		starttls StartTLSKind
	}{
		{"https", "443", StartTLSNone},
		{"443", "443", StartTLSNone},
		{"ftp", "21", StartTLSFTP},
		{"ftpi", "990", StartTLSNone},
		{"imap", "143", StartTLSIMAP},
		{"imaps", "993", StartTLSNone},
		{"pop3", "110", StartTLSPOP3},
		{"pop3s", "995", StartTLSNone},
		{"smtp", "25", StartTLSSMTP},
		{"smtps", "587", StartTLSSMTP},
		{"xmpp", "5222", StartTLSXMPP},
		{"xmpps", "5269", StartTLSNone},
		{"ldaps", "636", StartTLSNone},
		{"993", "993", StartTLSNone},
		{"8443", "8443", StartTLSNone},
	}

	for _, tt := range tests {
		p := LookupProfile(tt.hint)
		if p.Port != tt.port {
			t.Errorf("LookupProfile(%q).Port = %q, want %q", tt.hint, p.Port, tt.port)
		}
		if p.StartTLS != tt.starttls {
			t.Errorf("LookupProfile(%q).StartTLS = %q, want %q", tt.hint, p.StartTLS, tt.starttls)
		}
	}
}

func TestProfilePortNumber(t *testing.T) {
	if got := LookupProfile("smtp").PortNumber(); got != 25 {
		t.Errorf("PortNumber() = %d, want 25", got)
	}
	if got := LookupProfile("bogus").PortNumber(); got != 0 {
		t.Errorf("PortNumber() for non-numeric hint = %d, want 0", got)
	}
}
