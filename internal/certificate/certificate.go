package certificate

import (
	"crypto/ed25519"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"devlink/internal/crypto"
	"devlink/internal/domain"
)

// Certificate errors.
var (
	ErrMissingRecipient = errors.New("certificate requires a recipient")
	ErrInvalidSignature = errors.New("certificate signature is invalid")
	ErrClaimMismatch    = errors.New("certificate claims do not match the token")
	ErrInvalidCertToken = errors.New("certificate token is invalid")
)

// deviceClaims is the JWT claim set carried by a certificate token.
type deviceClaims struct {
	jwt.RegisteredClaims
	Recipient domain.DID `json:"recipient"`
}

// Service mints and checks certificates.
type Service struct{}

// New returns a certificate service.
func New() *Service { return &Service{} }

// Issue signs a certificate naming opts.Recipient, authored by the keyring's
// DID. Zero NotBefore/Expires omit the corresponding claim.
func (s *Service) Issue(kr domain.Keyring, opts domain.CertificateOptions) (domain.Certificate, error) {
	if opts.Recipient == "" {
		return domain.Certificate{}, ErrMissingRecipient
	}

	author := kr.DID()
	claims := deviceClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:  author.String(),
			Subject: opts.Recipient.String(),
			ID:      uuid.NewString(),
		},
		Recipient: opts.Recipient,
	}

	cert := domain.Certificate{
		Recipient: opts.Recipient,
		Author:    author,
	}
	if !opts.NotBefore.IsZero() {
		claims.NotBefore = jwt.NewNumericDate(opts.NotBefore)
		cert.NotBefore = opts.NotBefore.Unix()
	}
	if !opts.Expires.IsZero() {
		claims.ExpiresAt = jwt.NewNumericDate(opts.Expires)
		cert.Expires = opts.Expires.Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	signed, err := token.SignedString(kr.Signer())
	if err != nil {
		return domain.Certificate{}, fmt.Errorf("signing certificate: %w", err)
	}
	cert.Token = signed
	return cert, nil
}

// Verify checks the certificate token's signature against the author DID's
// embedded public key, validates the nbf/exp window, and confirms the
// decoded struct fields match the signed claims.
func (s *Service) Verify(cert domain.Certificate) error {
	authorKey, err := crypto.DecodeDID(cert.Author)
	if err != nil {
		return err
	}

	token, err := jwt.ParseWithClaims(
		cert.Token,
		&deviceClaims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodEd25519); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return ed25519.PublicKey(authorKey.Slice()), nil
		},
		jwt.WithValidMethods([]string{"EdDSA"}),
		jwt.WithIssuer(cert.Author.String()),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrSignatureInvalid) {
			return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
		}
		return fmt.Errorf("%w: %v", ErrInvalidCertToken, err)
	}
	if !token.Valid {
		return ErrInvalidCertToken
	}

	claims, ok := token.Claims.(*deviceClaims)
	if !ok {
		return ErrInvalidCertToken
	}
	if claims.Recipient != cert.Recipient {
		return fmt.Errorf("%w: recipient %s vs %s", ErrClaimMismatch, claims.Recipient, cert.Recipient)
	}
	return nil
}

// Compile-time assertion that Service implements domain.CertificateIssuer.
var _ domain.CertificateIssuer = (*Service)(nil)
