package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/antrhizom/stud-i-agency-check/config"
	"github.com/antrhizom/stud-i-agency-check/internal/dto"
	"github.com/antrhizom/stud-i-agency-check/internal/model"
	"github.com/antrhizom/stud-i-agency-check/internal/repository"
	"github.com/antrhizom/stud-i-agency-check/pkg/jwt"
	"github.com/antrhizom/stud-i-agency-check/pkg/redis"
)

var (
	ErrInvalidCredentials = errors.New("e-mail oder passwort falsch")
	ErrInvalidCode        = errors.New("zugangscode ungültig")
	ErrEmailTaken         = errors.New("e-mail bereits registriert")
	ErrUserNotFound       = errors.New("benutzer nicht gefunden")
	ErrTokenRevoked       = errors.New("token wurde widerrufen")
)

// AuthService Authentifizierung für Lehrpersonen und Lernende
type AuthService interface {
	RegisterTeacher(ctx context.Context, req *dto.RegisterTeacherRequest) (*dto.UserResponse, error)
	LoginTeacher(ctx context.Context, req *dto.TeacherLoginRequest) (*dto.LoginResponse, error)
	// LoginWithCode löst einen Zugangscode ein. Beim ersten Einlösen wird
	// der anonyme Lernenden-Account angelegt; danach dient derselbe Code
	// als dauerhaftes Login-Merkmal.
	LoginWithCode(ctx context.Context, req *dto.CodeLoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, accessClaims *jwt.Claims, refreshToken string) error
	Me(ctx context.Context, userID string) (*dto.UserResponse, error)
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService erzeugt eine AuthService-Instanz
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:    cfg,
		repo:   repo,
		jwtMgr: jwtMgr,
		rdb:    rdb,
		logger: logger,
	}
}

func (s *authService) RegisterTeacher(ctx context.Context, req *dto.RegisterTeacherRequest) (*dto.UserResponse, error) {
	if _, err := s.repo.User.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("benutzerabfrage fehlgeschlagen", zap.Error(err))
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	hashStr := string(hash)
	user := &model.User{
		Role:         model.RoleTeacher,
		Email:        &req.Email,
		PasswordHash: &hashStr,
		DisplayName:  req.DisplayName,
	}
	if err := s.repo.User.Create(ctx, user); err != nil {
		s.logger.Error("lehrperson anlegen fehlgeschlagen", zap.Error(err))
		return nil, err
	}

	s.logger.Info("lehrperson registriert", zap.String("user_id", user.UserID))
	resp := buildUserResponse(user, "")
	return &resp, nil
}

func (s *authService) LoginTeacher(ctx context.Context, req *dto.TeacherLoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.User.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("benutzerabfrage fehlgeschlagen", zap.Error(err))
		return nil, err
	}
	if user.Role != model.RoleTeacher || user.PasswordHash == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(user, "", "", req.RememberMe)
}

func (s *authService) LoginWithCode(ctx context.Context, req *dto.CodeLoginRequest) (*dto.LoginResponse, error) {
	var user *model.User
	var classID string

	err := s.repo.Transaction(func(tx *repository.Repository) error {
		lc, err := tx.LearnerCode.GetByCodeForUpdate(ctx, req.Code)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidCode
			}
			return err
		}
		classID = lc.ClassID

		// bereits eingelöst: bestehenden Account laden
		if lc.Used && lc.UserID != nil {
			user, err = tx.User.GetByID(ctx, *lc.UserID)
			return err
		}

		u := &model.User{
			Role:        model.RoleLearner,
			DisplayName: lc.AnimalName,
			AnimalEmoji: &lc.AnimalEmoji,
			ClassID:     &lc.ClassID,
		}
		if err := tx.User.Create(ctx, u); err != nil {
			return err
		}
		if err := tx.LearnerCode.MarkUsed(ctx, lc.LearnerCodeID, u.UserID); err != nil {
			return err
		}
		user = u
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrInvalidCode) {
			s.logger.Error("code-login fehlgeschlagen", zap.Error(err))
		}
		return nil, err
	}

	class, err := s.repo.Class.GetByID(ctx, classID)
	if err != nil {
		s.logger.Error("klassenabfrage fehlgeschlagen", zap.Error(err))
		return nil, err
	}

	return s.issueTokens(user, class.TeacherID, class.Variant, false)
}

func (s *authService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.LoginResponse, error) {
	claims, err := s.jwtMgr.ParseToken(req.RefreshToken)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != "refresh" {
		return nil, jwt.ErrTokenInvalid
	}

	if revoked, err := s.isBlacklisted(ctx, claims.ID); err == nil && revoked {
		return nil, ErrTokenRevoked
	}

	user, err := s.repo.User.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// altes Refresh-Token sperren, damit es nur einmal verwendbar ist
	s.blacklist(ctx, claims.ID, time.Until(claims.ExpiresAt.Time))

	variant := ""
	if claims.ClassID != "" {
		if class, err := s.repo.Class.GetByID(ctx, claims.ClassID); err == nil {
			variant = class.Variant
		}
	}

	return s.issueTokens(user, claims.TeacherID, variant, claims.RememberMe)
}

func (s *authService) Logout(ctx context.Context, accessClaims *jwt.Claims, refreshToken string) error {
	s.blacklist(ctx, accessClaims.ID, time.Until(accessClaims.ExpiresAt.Time))

	if refreshToken != "" {
		if claims, err := s.jwtMgr.ParseToken(refreshToken); err == nil {
			s.blacklist(ctx, claims.ID, time.Until(claims.ExpiresAt.Time))
		}
	}
	return nil
}

func (s *authService) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	variant := ""
	if user.ClassID != nil {
		if class, err := s.repo.Class.GetByID(ctx, *user.ClassID); err == nil {
			variant = class.Variant
		}
	}

	resp := buildUserResponse(user, variant)
	return &resp, nil
}

// blacklist sperrt ein Token; ohne Redis wird die Sperre übersprungen
func (s *authService) blacklist(ctx context.Context, jti string, ttl time.Duration) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.BlacklistToken(ctx, jti, ttl); err != nil {
		s.logger.Warn("token-sperre fehlgeschlagen", zap.Error(err))
	}
}

func (s *authService) isBlacklisted(ctx context.Context, jti string) (bool, error) {
	if s.rdb == nil {
		return false, nil
	}
	return s.rdb.IsTokenBlacklisted(ctx, jti)
}

func (s *authService) issueTokens(user *model.User, teacherID, variant string, rememberMe bool) (*dto.LoginResponse, error) {
	classID := ""
	if user.ClassID != nil {
		classID = *user.ClassID
	}

	accessToken, err := s.jwtMgr.GenerateAccessToken(user.UserID, user.Role, classID, teacherID)
	if err != nil {
		s.logger.Error("access-token erzeugen fehlgeschlagen", zap.Error(err))
		return nil, err
	}
	refreshToken, err := s.jwtMgr.GenerateRefreshToken(user.UserID, user.Role, classID, teacherID, rememberMe)
	if err != nil {
		s.logger.Error("refresh-token erzeugen fehlgeschlagen", zap.Error(err))
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.jwtMgr.AccessTokenTTL().Seconds()),
		User:         buildUserResponse(user, variant),
	}, nil
}

func buildUserResponse(user *model.User, variant string) dto.UserResponse {
	return dto.UserResponse{
		UserID:      user.UserID,
		Role:        user.Role,
		DisplayName: user.DisplayName,
		AnimalEmoji: user.AnimalEmoji,
		ClassID:     user.ClassID,
		Variant:     variant,
	}
}
