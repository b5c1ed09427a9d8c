package service

import (
	"go.uber.org/zap"

	"github.com/antrhizom/stud-i-agency-check/config"
	"github.com/antrhizom/stud-i-agency-check/internal/repository"
	"github.com/antrhizom/stud-i-agency-check/pkg/jwt"
	"github.com/antrhizom/stud-i-agency-check/pkg/redis"
)

// Service Sammeleinstieg für alle Services
type Service struct {
	Auth     AuthService
	Class    ClassService
	Entry    EntryService
	Progress ProgressService
	Export   ExportService
}

// NewService erzeugt das Service-Aggregat.
// rdb darf nil sein; dann entfallen Token-Blacklist und Rate-Limit.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:     NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Class:    NewClassService(repo, logger),
		Entry:    NewEntryService(repo, logger),
		Progress: NewProgressService(repo, logger),
		Export:   NewExportService(repo, logger),
	}
}
