package probe

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"net"
	"time"

	"go.uber.org/zap"

	"github.com/certwatch-app/certprobe/internal/domain"
)

// Prober fetches leaf certificates from endpoints
type Prober struct {
	logger  *zap.Logger
	timeout time.Duration
}

// New creates a new Prober
func New(timeout time.Duration, logger *zap.Logger) *Prober {
	return &Prober{
		timeout: timeout,
		logger:  logger,
	}
}

// Fetch connects to the endpoint described by spec, negotiates STARTTLS if
// the protocol profile requires it, performs a TLS handshake with SNI set
// to the endpoint hostname, and returns the parsed leaf certificate.
//
// The chain is NOT validated against a trust store: the tool reports facts
// about the presented certificate, it does not endorse it. Every failure
// mode (DNS, dial, upgrade, handshake, empty chain) degrades to the zero
// CertificateInfo.
//
// Spec.ExtraOptions is intentionally not consumed here: those tokens exist
// to pass low-level flags to an external TLS client, and the native
// crypto/tls connection has no flag surface to feed them into. They stay
// on the Spec for diagnostics only.
func (p *Prober) Fetch(ctx context.Context, spec domain.Spec) CertificateInfo {
	addr := net.JoinHostPort(spec.Hostname, spec.Profile.Port)

	// We skip verification intentionally: expired or mismatched
	// certificates are exactly what we are here to report on.
	tlsConfig := &tls.Config{
		ServerName:         spec.Hostname,
		InsecureSkipVerify: true, //nolint:gosec // leaf inspection only, see above
	}

	leaf, err := p.fetchLeaf(ctx, addr, spec.Profile.StartTLS, tlsConfig)
	if err != nil {
		p.logger.Debug("probe failed",
			zap.String("hostname", spec.Hostname),
			zap.String("port", spec.Profile.Port),
			zap.String("starttls", string(spec.Profile.StartTLS)),
			zap.Error(err),
		)
		return CertificateInfo{}
	}

	info := CertificateInfo{
		SubjectCN: leaf.Subject.CommonName,
		DNSNames:  leaf.DNSNames,
		IssuerCN:  leaf.Issuer.CommonName,
		NotAfter:  leaf.NotAfter,
		Found:     true,
	}

	p.logger.Debug("probe successful",
		zap.String("hostname", spec.Hostname),
		zap.String("port", spec.Profile.Port),
		zap.String("subject", info.SubjectCN),
		zap.Time("not_after", info.NotAfter),
	)

	return info
}

func (p *Prober) fetchLeaf(ctx context.Context, addr string, kind domain.StartTLSKind, tlsConfig *tls.Config) (*x509.Certificate, error) {
	dialer := &net.Dialer{Timeout: p.timeout}

	if kind == domain.StartTLSNone {
		conn, err := tls.DialWithDialer(dialer, "tcp", addr, tlsConfig)
		if err != nil {
			return nil, err
		}
		defer conn.Close()
		return leafCertificate(conn.ConnectionState())
	}

	// STARTTLS services begin in plaintext and upgrade mid-session.
	rawConn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	defer rawConn.Close()

	if err := rawConn.SetDeadline(time.Now().Add(p.timeout)); err != nil {
		return nil, err
	}

	if err := negotiateStartTLS(rawConn, kind, tlsConfig.ServerName); err != nil {
		return nil, err
	}

	tlsConn := tls.Client(rawConn, tlsConfig)
	if err := tlsConn.HandshakeContext(ctx); err != nil {
		return nil, err
	}

	return leafCertificate(tlsConn.ConnectionState())
}

func leafCertificate(state tls.ConnectionState) (*x509.Certificate, error) {
	if len(state.PeerCertificates) == 0 {
		return nil, errNoCertificate
	}
	return state.PeerCertificates[0], nil
}
