package probe

import (
	"bufio"
	"errors"
	"fmt"
	"net"
	"net/textproto"
	"strings"

	"github.com/certwatch-app/certprobe/internal/domain"
)

var errNoCertificate = errors.New("no certificate presented")

// heloName is the client identity announced in SMTP EHLO and XMPP stream
// headers. Servers only echo it back; it carries no semantics here.
const heloName = "certprobe.local"

// negotiateStartTLS performs the plaintext upgrade handshake for the given
// protocol flavor. On return the connection is ready for a TLS client
// handshake.
func negotiateStartTLS(conn net.Conn, kind domain.StartTLSKind, serverName string) error {
	switch kind {
	case domain.StartTLSFTP:
		return starttlsFTP(conn)
	case domain.StartTLSIMAP:
		return starttlsIMAP(conn)
	case domain.StartTLSPOP3:
		return starttlsPOP3(conn)
	case domain.StartTLSSMTP:
		return starttlsSMTP(conn)
	case domain.StartTLSXMPP:
		return starttlsXMPP(conn, serverName)
	default:
		return fmt.Errorf("unsupported starttls kind %q", kind)
	}
}

// RFC 4217: greeting 220, "AUTH TLS" answered with 234.
func starttlsFTP(conn net.Conn) error {
	tp := textproto.NewConn(conn)

	if _, _, err := tp.ReadResponse(220); err != nil {
		return fmt.Errorf("ftp greeting: %w", err)
	}
	if err := tp.PrintfLine("AUTH TLS"); err != nil {
		return err
	}
	if _, _, err := tp.ReadResponse(234); err != nil {
		return fmt.Errorf("ftp AUTH TLS: %w", err)
	}
	return nil
}

// RFC 3501/2595: untagged "* OK" greeting, tagged STARTTLS, tagged OK.
func starttlsIMAP(conn net.Conn) error {
	r := bufio.NewReader(conn)

	greeting, err := r.ReadString('\n')
	if err != nil {
		return fmt.Errorf("imap greeting: %w", err)
	}
	if !strings.HasPrefix(greeting, "* OK") {
		return fmt.Errorf("imap greeting: %q", strings.TrimSpace(greeting))
	}

	if _, err := fmt.Fprintf(conn, "a001 STARTTLS\r\n"); err != nil {
		return err
	}

	// The tagged response may be preceded by untagged lines.
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return fmt.Errorf("imap starttls: %w", err)
		}
		if strings.HasPrefix(line, "a001 ") {
			if !strings.HasPrefix(line, "a001 OK") {
				return fmt.Errorf("imap starttls refused: %q", strings.TrimSpace(line))
			}
			return nil
		}
	}
}

// RFC 2595: "+OK" greeting, "STLS" answered with "+OK".
func starttlsPOP3(conn net.Conn) error {
	r := bufio.NewReader(conn)

	greeting, err := r.ReadString('\n')
	if err != nil {
		return fmt.Errorf("pop3 greeting: %w", err)
	}
	if !strings.HasPrefix(greeting, "+OK") {
		return fmt.Errorf("pop3 greeting: %q", strings.TrimSpace(greeting))
	}

	if _, err := fmt.Fprintf(conn, "STLS\r\n"); err != nil {
		return err
	}

	resp, err := r.ReadString('\n')
	if err != nil {
		return fmt.Errorf("pop3 stls: %w", err)
	}
	if !strings.HasPrefix(resp, "+OK") {
		return fmt.Errorf("pop3 stls refused: %q", strings.TrimSpace(resp))
	}
	return nil
}

// RFC 3207: 220 greeting, EHLO, STARTTLS answered with 220.
func starttlsSMTP(conn net.Conn) error {
	tp := textproto.NewConn(conn)

	if _, _, err := tp.ReadResponse(220); err != nil {
		return fmt.Errorf("smtp greeting: %w", err)
	}
	if err := tp.PrintfLine("EHLO %s", heloName); err != nil {
		return err
	}
	if _, _, err := tp.ReadResponse(250); err != nil {
		return fmt.Errorf("smtp EHLO: %w", err)
	}
	if err := tp.PrintfLine("STARTTLS"); err != nil {
		return err
	}
	if _, _, err := tp.ReadResponse(220); err != nil {
		return fmt.Errorf("smtp STARTTLS: %w", err)
	}
	return nil
}

// RFC 6120 §5.4.2: open a stream, request <starttls/>, expect <proceed/>.
func starttlsXMPP(conn net.Conn, serverName string) error {
	stream := fmt.Sprintf(
		"<?xml version='1.0'?><stream:stream to='%s' xmlns='jabber:client' xmlns:stream='http://etherx.jabber.org/streams' version='1.0'>",
		serverName)
	if _, err := conn.Write([]byte(stream)); err != nil {
		return err
	}
	if err := readUntil(conn, "</stream:features>"); err != nil {
		return fmt.Errorf("xmpp stream features: %w", err)
	}

	if _, err := conn.Write([]byte("<starttls xmlns='urn:ietf:params:xml:ns:xmpp-tls'/>")); err != nil {
		return err
	}
	if err := readUntil(conn, "<proceed"); err != nil {
		return fmt.Errorf("xmpp starttls: %w", err)
	}
	return nil
}

// readUntil consumes the connection until token has been seen, reading at
// most 64KiB. XMPP responses are not line-delimited, so this scans the raw
// byte stream.
func readUntil(conn net.Conn, token string) error {
	var seen strings.Builder
	buf := make([]byte, 1024)
	for seen.Len() < 64*1024 {
		n, err := conn.Read(buf)
		if n > 0 {
			seen.Write(buf[:n])
			if strings.Contains(seen.String(), token) {
				return nil
			}
			if strings.Contains(seen.String(), "<failure") {
				return fmt.Errorf("server refused: %s", seen.String())
			}
		}
		if err != nil {
			return err
		}
	}
	return fmt.Errorf("token %q not seen in stream", token)
}
