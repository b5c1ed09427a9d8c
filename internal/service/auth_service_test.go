package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/antrhizom/stud-i-agency-check/config"
	"github.com/antrhizom/stud-i-agency-check/internal/dto"
	"github.com/antrhizom/stud-i-agency-check/internal/model"
	"github.com/antrhizom/stud-i-agency-check/pkg/jwt"
)

func newTestAuthService() (AuthService, *memStore) {
	repo, st := newTestRepo()
	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:               "test-secret",
			AccessTokenTTL:          15 * time.Minute,
			RefreshTokenTTLDefault:  24 * time.Hour,
			RefreshTokenTTLRemember: 30 * 24 * time.Hour,
		},
	}
	svc := NewAuthService(cfg, repo, jwt.NewManager(&cfg.Auth), nil, zap.NewNop())
	return svc, st
}

func TestRegisterAndLoginTeacher(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	user, err := svc.RegisterTeacher(ctx, &dto.RegisterTeacherRequest{
		Email:       "abu@schule.ch",
		Password:    "streng-geheim",
		DisplayName: "Frau Muster",
	})
	if err != nil {
		t.Fatalf("RegisterTeacher: %v", err)
	}
	if user.Role != model.RoleTeacher {
		t.Errorf("Role = %q, erwartet %q", user.Role, model.RoleTeacher)
	}

	resp, err := svc.LoginTeacher(ctx, &dto.TeacherLoginRequest{Email: "abu@schule.ch", Password: "streng-geheim"})
	if err != nil {
		t.Fatalf("LoginTeacher: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("Login ohne Token-Paar")
	}
	if resp.ExpiresIn != int64((15 * time.Minute).Seconds()) {
		t.Errorf("ExpiresIn = %d, erwartet %d", resp.ExpiresIn, int64((15*time.Minute).Seconds()))
	}
	if resp.User.UserID != user.UserID {
		t.Errorf("UserID = %q, erwartet %q", resp.User.UserID, user.UserID)
	}
}

func TestLoginTeacherWrongPassword(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	if _, err := svc.RegisterTeacher(ctx, &dto.RegisterTeacherRequest{
		Email: "abu@schule.ch", Password: "streng-geheim", DisplayName: "Frau Muster",
	}); err != nil {
		t.Fatalf("RegisterTeacher: %v", err)
	}

	_, err := svc.LoginTeacher(ctx, &dto.TeacherLoginRequest{Email: "abu@schule.ch", Password: "falsch-geraten"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, erwartet ErrInvalidCredentials", err)
	}

	_, err = svc.LoginTeacher(ctx, &dto.TeacherLoginRequest{Email: "niemand@schule.ch", Password: "egal"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unbekannte E-Mail: err = %v, erwartet ErrInvalidCredentials", err)
	}
}

func TestRegisterTeacherEmailTaken(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	req := &dto.RegisterTeacherRequest{Email: "abu@schule.ch", Password: "streng-geheim", DisplayName: "Frau Muster"}
	if _, err := svc.RegisterTeacher(ctx, req); err != nil {
		t.Fatalf("RegisterTeacher: %v", err)
	}
	if _, err := svc.RegisterTeacher(ctx, req); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("err = %v, erwartet ErrEmailTaken", err)
	}
}

func TestLoginWithCodeCreatesAndReusesAccount(t *testing.T) {
	svc, st := newTestAuthService()
	ctx := context.Background()

	teacher := seedTeacher(st, "abu@schule.ch")
	class := seedClass(st, teacher.UserID, "eba")
	st.codes["FUCHS2"] = &model.LearnerCode{
		LearnerCodeID: "lc-1", ClassID: class.ClassID,
		Code: "FUCHS2", AnimalID: "fuchs", AnimalName: "Fuchs", AnimalEmoji: "🦊",
	}

	first, err := svc.LoginWithCode(ctx, &dto.CodeLoginRequest{Code: "FUCHS2"})
	if err != nil {
		t.Fatalf("erstes Einlösen: %v", err)
	}
	if first.User.Role != model.RoleLearner {
		t.Errorf("Role = %q, erwartet %q", first.User.Role, model.RoleLearner)
	}
	if first.User.DisplayName != "Fuchs" {
		t.Errorf("DisplayName = %q, erwartet Fuchs", first.User.DisplayName)
	}
	if first.User.Variant != "eba" {
		t.Errorf("Variant = %q, erwartet eba", first.User.Variant)
	}
	if lc := st.codes["FUCHS2"]; !lc.Used || lc.UserID == nil {
		t.Fatal("Code nach dem Einlösen nicht als verwendet markiert")
	}

	// derselbe Code ist das dauerhafte Login-Merkmal
	second, err := svc.LoginWithCode(ctx, &dto.CodeLoginRequest{Code: "FUCHS2"})
	if err != nil {
		t.Fatalf("zweites Einlösen: %v", err)
	}
	if second.User.UserID != first.User.UserID {
		t.Errorf("zweiter Login legt neuen Account an: %q vs %q", second.User.UserID, first.User.UserID)
	}
}

func TestLoginWithCodeUnknown(t *testing.T) {
	svc, _ := newTestAuthService()
	_, err := svc.LoginWithCode(context.Background(), &dto.CodeLoginRequest{Code: "XXXXXX"})
	if !errors.Is(err, ErrInvalidCode) {
		t.Errorf("err = %v, erwartet ErrInvalidCode", err)
	}
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	if _, err := svc.RegisterTeacher(ctx, &dto.RegisterTeacherRequest{
		Email: "abu@schule.ch", Password: "streng-geheim", DisplayName: "Frau Muster",
	}); err != nil {
		t.Fatalf("RegisterTeacher: %v", err)
	}
	login, err := svc.LoginTeacher(ctx, &dto.TeacherLoginRequest{Email: "abu@schule.ch", Password: "streng-geheim"})
	if err != nil {
		t.Fatalf("LoginTeacher: %v", err)
	}

	if _, err := svc.Refresh(ctx, &dto.RefreshRequest{RefreshToken: login.AccessToken}); !errors.Is(err, jwt.ErrTokenInvalid) {
		t.Errorf("Access-Token als Refresh akzeptiert: err = %v", err)
	}

	renewed, err := svc.Refresh(ctx, &dto.RefreshRequest{RefreshToken: login.RefreshToken})
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if renewed.AccessToken == "" || renewed.RefreshToken == "" {
		t.Error("Refresh ohne Token-Paar")
	}
}

func TestMeUnknownUser(t *testing.T) {
	svc, _ := newTestAuthService()
	if _, err := svc.Me(context.Background(), "gibt-es-nicht"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("err = %v, erwartet ErrUserNotFound", err)
	}
}
