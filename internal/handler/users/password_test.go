package users

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"health-tracker/internal/database"
	"health-tracker/internal/middleware"
	"health-tracker/internal/model"
	"health-tracker/internal/service"
	"health-tracker/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestChangePasswordHandler(t *testing.T) {
	e := echo.New()
	body := `{"current_password":"` + goodPassword + `","new_password":"NewSecret456!ab"}`

	withSession := func(c echo.Context) {
		c.Set(middleware.ContextSessionKey, &service.Session{UserID: 4, LoggedIn: true})
	}

	t.Run("no session in context", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newJSONCtx(e, http.MethodPost, body)
		require.NoError(t, ChangePasswordHandler(nil)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("user vanished", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByID = func(context.Context, database.DB, int) (*model.User, error) { return nil, store.ErrNotFound }
		ctx, rec := newJSONCtx(e, http.MethodPost, body)
		withSession(ctx)
		require.NoError(t, ChangePasswordHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "User not found.")
	})

	t.Run("wrong current password", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByID = func(context.Context, database.DB, int) (*model.User, error) {
			return &model.User{ID: 4, PasswordHash: "h"}, nil
		}
		comparePassword = func(string, string) error { return errors.New("mismatch") }
		ctx, rec := newJSONCtx(e, http.MethodPost, body)
		withSession(ctx)
		require.NoError(t, ChangePasswordHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "Incorrect current password.")
	})

	t.Run("weak new password", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByID = func(context.Context, database.DB, int) (*model.User, error) {
			return &model.User{ID: 4, PasswordHash: "h"}, nil
		}
		comparePassword = func(string, string) error { return nil }
		weak := `{"current_password":"` + goodPassword + `","new_password":"weak"}`
		ctx, rec := newJSONCtx(e, http.MethodPost, weak)
		withSession(ctx)
		require.NoError(t, ChangePasswordHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "password policy")
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByID = func(_ context.Context, _ database.DB, id int) (*model.User, error) {
			require.Equal(t, 4, id)
			return &model.User{ID: 4, PasswordHash: "h"}, nil
		}
		comparePassword = func(hash, pw string) error {
			require.Equal(t, "h", hash)
			require.Equal(t, goodPassword, pw)
			return nil
		}
		hashPassword = func(pw string) (string, error) {
			require.Equal(t, "NewSecret456!ab", pw)
			return "new-hash", nil
		}
		updated := false
		updateUserPassword = func(_ context.Context, _ database.DB, id int, hash string) error {
			require.Equal(t, 4, id)
			require.Equal(t, "new-hash", hash)
			updated = true
			return nil
		}
		ctx, rec := newJSONCtx(e, http.MethodPost, body)
		withSession(ctx)
		require.NoError(t, ChangePasswordHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, updated)
		require.Contains(t, rec.Body.String(), "Password changed successfully.")
	})
}
