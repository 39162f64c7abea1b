package certificate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devlink/internal/certificate"
	"devlink/internal/crypto"
	"devlink/internal/domain"
)

func TestIssueAndVerify(t *testing.T) {
	author, err := crypto.NewKeyring()
	require.NoError(t, err)
	recipient, err := crypto.NewKeyring()
	require.NoError(t, err)

	svc := certificate.New()
	cert, err := svc.Issue(author, domain.CertificateOptions{Recipient: recipient.DID()})
	require.NoError(t, err)

	assert.Equal(t, recipient.DID(), cert.Recipient)
	assert.Equal(t, author.DID(), cert.Author)
	assert.NotEmpty(t, cert.Token)
	assert.Zero(t, cert.NotBefore)
	assert.Zero(t, cert.Expires)

	assert.NoError(t, svc.Verify(cert))
}

func TestIssue_RequiresRecipient(t *testing.T) {
	author, err := crypto.NewKeyring()
	require.NoError(t, err)

	_, err = certificate.New().Issue(author, domain.CertificateOptions{})
	assert.ErrorIs(t, err, certificate.ErrMissingRecipient)
}

func TestVerify_TamperedRecipientFails(t *testing.T) {
	author, err := crypto.NewKeyring()
	require.NoError(t, err)
	recipient, err := crypto.NewKeyring()
	require.NoError(t, err)
	other, err := crypto.NewKeyring()
	require.NoError(t, err)

	svc := certificate.New()
	cert, err := svc.Issue(author, domain.CertificateOptions{Recipient: recipient.DID()})
	require.NoError(t, err)

	cert.Recipient = other.DID()
	assert.ErrorIs(t, svc.Verify(cert), certificate.ErrClaimMismatch)
}

func TestVerify_WrongAuthorFails(t *testing.T) {
	author, err := crypto.NewKeyring()
	require.NoError(t, err)
	recipient, err := crypto.NewKeyring()
	require.NoError(t, err)
	impostor, err := crypto.NewKeyring()
	require.NoError(t, err)

	svc := certificate.New()
	cert, err := svc.Issue(author, domain.CertificateOptions{Recipient: recipient.DID()})
	require.NoError(t, err)

	// Claiming another author changes the verification key, so the
	// signature check must fail.
	cert.Author = impostor.DID()
	assert.Error(t, svc.Verify(cert))
}

func TestVerify_ValidityWindow(t *testing.T) {
	author, err := crypto.NewKeyring()
	require.NoError(t, err)
	recipient, err := crypto.NewKeyring()
	require.NoError(t, err)

	svc := certificate.New()

	expired, err := svc.Issue(author, domain.CertificateOptions{
		Recipient: recipient.DID(),
		Expires:   time.Now().Add(-time.Hour),
	})
	require.NoError(t, err)
	assert.ErrorIs(t, svc.Verify(expired), certificate.ErrInvalidCertToken)

	notYet, err := svc.Issue(author, domain.CertificateOptions{
		Recipient: recipient.DID(),
		NotBefore: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)
	assert.ErrorIs(t, svc.Verify(notYet), certificate.ErrInvalidCertToken)

	now := time.Now()
	bounded, err := svc.Issue(author, domain.CertificateOptions{
		Recipient: recipient.DID(),
		NotBefore: now.Add(-time.Minute),
		Expires:   now.Add(time.Hour),
	})
	require.NoError(t, err)
	assert.NoError(t, svc.Verify(bounded))
	assert.Equal(t, int64(61*60), bounded.Expires-bounded.NotBefore)
}
