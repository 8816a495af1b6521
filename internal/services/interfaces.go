package services

import (
	"log/slog"
	"time"

	"github.com/AniketKagathara/Complaint-tracker-companion/internal/events"
	"github.com/AniketKagathara/Complaint-tracker-companion/internal/identity"
	"github.com/AniketKagathara/Complaint-tracker-companion/internal/repositories"
	"github.com/AniketKagathara/Complaint-tracker-companion/internal/session"
	"github.com/AniketKagathara/Complaint-tracker-companion/internal/utils"
)

// ServiceManager aggregates all domain services for handler wiring
type ServiceManager interface {
	Category() CategoryService
	Complaint() ComplaintService
	StudentAuth() StudentAuthService
	AdminAuth() AdminAuthService
	Export() ExportService
}

type serviceManager struct {
	category    CategoryService
	complaint   ComplaintService
	studentAuth StudentAuthService
	adminAuth   AdminAuthService
	export      ExportService
}

type ManagerConfig struct {
	Repo                 repositories.Repository
	Provider             identity.Provider
	Sessions             session.Store
	Publisher            events.EventPublisher
	Logger               *slog.Logger
	Validator            *utils.Validator
	ReconcileGracePeriod time.Duration
}

func NewServiceManager(cfg ManagerConfig) ServiceManager {
	complaint := NewComplaintService(cfg.Repo, cfg.Publisher, cfg.Logger, cfg.Validator)
	return &serviceManager{
		category:    NewCategoryService(cfg.Repo, cfg.Publisher, cfg.Logger),
		complaint:   complaint,
		studentAuth: NewStudentAuthService(cfg.Repo, cfg.Provider, cfg.Logger, cfg.Validator, cfg.ReconcileGracePeriod),
		adminAuth:   NewAdminAuthService(cfg.Repo, cfg.Sessions, cfg.Logger),
		export:      NewExportService(complaint, cfg.Logger),
	}
}

func (m *serviceManager) Category() CategoryService       { return m.category }
func (m *serviceManager) Complaint() ComplaintService     { return m.complaint }
func (m *serviceManager) StudentAuth() StudentAuthService { return m.studentAuth }
func (m *serviceManager) AdminAuth() AdminAuthService     { return m.adminAuth }
func (m *serviceManager) Export() ExportService           { return m.export }
