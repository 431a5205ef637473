package tests

import (
	"testing"
	"time"

	jwtlib "tirage/internal/lib/jwt"
	"tirage/internal/services/auth"
	tokens "tirage/internal/services/token_service"
	"tirage/tests/suite"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const passDefaultLen = 10

func TestRegisterLogin_Login_HappyPath(t *testing.T) {
	ctx, st := suite.New(t)

	username := gofakeit.Username()
	pass := randomFakePassword()

	respReg, err := st.Auth.Register(ctx, username, pass)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, respReg)

	pair, err := st.Auth.Login(ctx, username, pass)
	require.NoError(t, err)
	require.NotNil(t, pair)

	assert.Equal(t, respReg, pair.AdminID)
	assert.Equal(t, username, pair.Username)

	loginTime := time.Now()

	tokenParsed, err := jwt.Parse(pair.AccessToken, func(token *jwt.Token) (interface{}, error) {
		return []byte(suite.Secret), nil
	})
	require.NoError(t, err)

	claims, ok := tokenParsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, username, claims["username"].(string))
	assert.Equal(t, respReg.String(), claims["sub"].(string))
	assert.Equal(t, string(jwtlib.KindAccess), claims["kind"].(string))

	_, err = uuid.Parse(claims["jti"].(string))
	assert.NoError(t, err)

	const deltaSeconds = 1

	// check if exp of token is in correct range
	assert.InDelta(t, loginTime.Add(suite.AccessTTL).Unix(), claims["exp"].(float64), deltaSeconds)

	refreshParsed, err := jwt.Parse(pair.RefreshToken, func(token *jwt.Token) (interface{}, error) {
		return []byte(suite.Secret), nil
	})
	require.NoError(t, err)

	refreshClaims, ok := refreshParsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, string(jwtlib.KindRefresh), refreshClaims["kind"].(string))
	assert.NotContains(t, refreshClaims, "username")
	assert.InDelta(t, loginTime.Add(suite.RefreshTTL).Unix(), refreshClaims["exp"].(float64), deltaSeconds)

	assert.NotEqual(t, claims["jti"], refreshClaims["jti"])
}

func TestRegisterLogin_DuplicatedRegistration(t *testing.T) {
	ctx, st := suite.New(t)

	username := gofakeit.Username()
	pass := randomFakePassword()

	respReg, err := st.Auth.Register(ctx, username, pass)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, respReg)

	_, err = st.Auth.Register(ctx, username, pass)
	require.Error(t, err)
	assert.ErrorIs(t, err, auth.ErrAdminExists)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctx, st := suite.New(t)

	username := gofakeit.Username()

	_, err := st.Auth.Register(ctx, username, randomFakePassword())
	require.NoError(t, err)

	_, err = st.Auth.Login(ctx, username, randomFakePassword())
	require.Error(t, err)
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = st.Auth.Login(ctx, gofakeit.Username(), randomFakePassword())
	require.Error(t, err)
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefresh_RotatesAccessToken(t *testing.T) {
	ctx, st := suite.New(t)

	username := gofakeit.Username()
	pass := randomFakePassword()

	_, err := st.Auth.Register(ctx, username, pass)
	require.NoError(t, err)

	pair, err := st.Auth.Login(ctx, username, pass)
	require.NoError(t, err)

	access, err := st.Auth.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, access)

	claims, err := st.Tokens.Verify(ctx, access, jwtlib.KindAccess)
	require.NoError(t, err)
	assert.Equal(t, username, claims.Username)

	// an access token is not accepted at the refresh gate
	_, err = st.Auth.Refresh(ctx, pair.AccessToken)
	require.Error(t, err)
	assert.ErrorIs(t, err, tokens.ErrWrongTokenKind)
}

func TestLogout_RevokesBothTokens(t *testing.T) {
	ctx, st := suite.New(t)

	username := gofakeit.Username()
	pass := randomFakePassword()

	_, err := st.Auth.Register(ctx, username, pass)
	require.NoError(t, err)

	pair, err := st.Auth.Login(ctx, username, pass)
	require.NoError(t, err)

	require.NoError(t, st.Auth.Logout(ctx, pair.AccessToken, pair.RefreshToken))

	_, err = st.Tokens.Verify(ctx, pair.AccessToken, jwtlib.KindAccess)
	assert.ErrorIs(t, err, tokens.ErrTokenRevoked)

	_, err = st.Auth.Refresh(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, tokens.ErrTokenRevoked)

	// revoking an already revoked token stays a no-op
	require.NoError(t, st.Auth.Logout(ctx, pair.AccessToken, ""))
}

func randomFakePassword() string {
	return gofakeit.Password(true, true, true, true, false, passDefaultLen)
}
