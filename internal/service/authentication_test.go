package service

import (
	"testing"
	"time"

	"github.com/vishnupriya759285/velookara/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)
	require.NotEqual(t, "secret", hash)
	require.NoError(t, ComparePassword(hash, "secret"))
	require.Error(t, ComparePassword(hash, "other"))
}

func TestAuthenticateUser(t *testing.T) {
	hash, err := HashPassword("pw")
	require.NoError(t, err)
	u := model.User{ID: uuid.New(), PasswordHash: hash}

	got, err := AuthenticateUser(u, "pw")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	_, err = AuthenticateUser(u, "bad")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = AuthenticateUser(model.User{}, "")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestIssueAndVerifyAccessToken(t *testing.T) {
	id := uuid.New()
	_, err := IssueAccessToken(model.User{ID: id}, "", time.Minute)
	require.ErrorIs(t, err, ErrSecretNotSet)

	tok, err := IssueAccessToken(model.User{ID: id, Role: model.RoleAdmin}, "s", time.Minute)
	require.NoError(t, err)

	claims, err := VerifyAccessToken(tok, "s")
	require.NoError(t, err)
	require.Equal(t, id.String(), claims.UserID)
	require.Equal(t, id.String(), claims.Subject)
	gotID, err := ClaimsUserID(claims)
	require.NoError(t, err)
	require.Equal(t, id, gotID)

	_, err = VerifyAccessToken(tok, "other")
	require.Error(t, err)
	_, err = VerifyAccessToken(tok, "")
	require.ErrorIs(t, err, ErrSecretNotSet)
	_, err = VerifyAccessToken("garbage", "s")
	require.Error(t, err)

	expired, err := IssueAccessToken(model.User{ID: id}, "s", -time.Minute)
	require.NoError(t, err)
	_, err = VerifyAccessToken(expired, "s")
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestVerifyRejectsOtherAlgorithms(t *testing.T) {
	claims := CustomClaims{UserID: uuid.NewString()}
	tok := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	s, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = VerifyAccessToken(s, "s")
	require.Error(t, err)
}

func TestClaimsUserIDInvalid(t *testing.T) {
	_, err := ClaimsUserID(&CustomClaims{UserID: "42"})
	require.Error(t, err)
}
