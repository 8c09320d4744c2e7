package auth_test

import (
	"testing"

	"github.com/restocinta/orderdesk/internal/adapter/auth"
	"github.com/restocinta/orderdesk/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasetoTokenRoundTrip(t *testing.T) {
	ts, err := auth.New()
	require.NoError(t, err)

	token, err := ts.CreateToken(&domain.Staff{ID: 42, Login: "kasir"})
	require.NoError(t, err)

	payload, err := ts.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), payload.StaffID)
}

func TestPasetoTokenRejectsGarbage(t *testing.T) {
	ts, err := auth.New()
	require.NoError(t, err)

	_, err = ts.VerifyToken("v4.local.not-a-real-token")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestPasetoTokenRejectsForeignKey(t *testing.T) {
	issuer, err := auth.New()
	require.NoError(t, err)
	verifier, err := auth.New()
	require.NoError(t, err)

	token, err := issuer.CreateToken(&domain.Staff{ID: 1, Login: "kasir"})
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
