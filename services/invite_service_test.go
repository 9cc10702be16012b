package services

import (
	"testing"

	"github.com/aditya-yaduvanshi/calorie-tracker/config"
	"github.com/aditya-yaduvanshi/calorie-tracker/models"
	"github.com/aditya-yaduvanshi/calorie-tracker/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInviteFlow(t *testing.T) {
	useTestDB(t)

	token, err := CreateInvite("Jane Doe", "jane@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	user, err := AcceptInvite(token)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.Equal(t, models.RoleGeneral, user.Role)
	assert.Empty(t, user.Password)

	// no credential set yet, sign-in must fail
	_, _, err = SignIn("jane@example.com", "Secret1!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// ledger bootstrapped at acceptance
	var buckets int64
	require.NoError(t, config.DB.Model(&models.LedgerBucket{}).Where("user_id = ?", user.ID).Count(&buckets).Error)
	assert.Equal(t, int64(1), buckets)

	// setting the password completes the flow and signs in
	signed, pair, err := SetPassword("jane@example.com", "Secret1!")
	require.NoError(t, err)
	assert.Equal(t, user.ID, signed.ID)
	require.NotEmpty(t, pair.Access)

	_, _, err = SignIn("jane@example.com", "Secret1!")
	assert.NoError(t, err)
}

func TestAcceptInviteRejectsBadToken(t *testing.T) {
	useTestDB(t)

	_, err := AcceptInvite("garbage")
	assert.ErrorIs(t, err, utils.ErrInvalidToken)
}

func TestAcceptInviteRejectsExistingEmail(t *testing.T) {
	useTestDB(t)

	_, err := RegisterUser("Jane Doe", "jane@example.com", "Secret1!")
	require.NoError(t, err)

	token, err := CreateInvite("Jane Doe", "jane@example.com")
	require.NoError(t, err)
	_, err = AcceptInvite(token)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSetPasswordRejectsAccountsWithCredential(t *testing.T) {
	useTestDB(t)

	_, err := RegisterUser("Jane Doe", "jane@example.com", "Secret1!")
	require.NoError(t, err)

	// a registered account already has a password; the invite completion
	// step must not work as a password reset for it
	_, _, err = SetPassword("jane@example.com", "Hacked1!")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, _, err = SignIn("jane@example.com", "Hacked1!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = SignIn("jane@example.com", "Secret1!")
	assert.NoError(t, err)
}

func TestSetPasswordIsSingleUse(t *testing.T) {
	useTestDB(t)

	token, err := CreateInvite("Jane Doe", "jane@example.com")
	require.NoError(t, err)
	_, err = AcceptInvite(token)
	require.NoError(t, err)

	_, _, err = SetPassword("jane@example.com", "Secret1!")
	require.NoError(t, err)

	// once a credential exists the endpoint is closed
	_, _, err = SetPassword("jane@example.com", "Hacked1!")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCreateInviteValidatesInput(t *testing.T) {
	useTestDB(t)

	_, err := CreateInvite("x", "jane@example.com")
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)

	_, err = CreateInvite("Jane Doe", "not-an-email")
	assert.ErrorAs(t, err, &ve)
}
