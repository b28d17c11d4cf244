package submissionsfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"oksimin/internal/repositories"
	"oksimin/internal/services"
)

var Module = fx.Provide(
	provideSubmissionRepo, provideAuditRepo, provideSubmissionService)

func provideSubmissionRepo(db *gorm.DB) repositories.SubmissionRepository {
	return repositories.NewSubmissionRepository(db)
}

func provideAuditRepo(db *gorm.DB) repositories.AuditLogRepository {
	return repositories.NewAuditLogRepository(db)
}

func provideSubmissionService(
	submissionRepo repositories.SubmissionRepository,
	categoryRepo repositories.CategoryRepository,
	auditRepo repositories.AuditLogRepository) services.SubmissionServiceInterface {
	return services.NewSubmissionService(submissionRepo, categoryRepo, auditRepo)
}
