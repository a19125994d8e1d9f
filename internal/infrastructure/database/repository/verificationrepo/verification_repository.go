package verificationrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"agentsync/server/internal/domain/verification"
	"agentsync/server/internal/infrastructure/database/dbschema"
	"agentsync/server/internal/utils/apperrors"
)

type VerificationGormRepository struct {
	db *gorm.DB
}

var _ verification.Repository = (*VerificationGormRepository)(nil)

func NewVerificationGormRepository(db *gorm.DB) verification.Repository {
	return &VerificationGormRepository{db: db}
}

func (repo *VerificationGormRepository) FindByIdentifier(ctx context.Context, email string) (*verification.Code, error) {
	var entity dbschema.VerificationCode
	err := repo.db.WithContext(ctx).
		Where("identifier = ?", email).
		First(&entity).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewError(
			ctx,
			apperrors.LayerRepository,
			apperrors.ErrorTypeNotFound,
			"verification code not found",
			err,
			"43befc51-67b9-47ab-84ed-19c4b361fc51",
		)
	}
	if err != nil {
		return nil, apperrors.NewError(
			ctx,
			apperrors.LayerRepository,
			apperrors.ErrorTypeInternal,
			"failed to find verification code",
			err,
			"615e168e-8814-4f45-b42c-cd1bbd16eda5",
		)
	}
	return entity.EtoD(), nil
}

func (repo *VerificationGormRepository) DeleteByIdentifier(ctx context.Context, email string) error {
	err := repo.db.WithContext(ctx).
		Where("identifier = ?", email).
		Delete(&dbschema.VerificationCode{}).
		Error
	if err != nil {
		return apperrors.NewError(
			ctx,
			apperrors.LayerRepository,
			apperrors.ErrorTypeInternal,
			"failed to delete verification codes",
			err,
			"47fa26f6-e979-49c2-a12a-ccd6fce0d40b",
		)
	}
	return nil
}

func (repo *VerificationGormRepository) Create(ctx context.Context, code *verification.Code) error {
	entity := dbschema.NewSchemaVerificationCode(code)
	if err := repo.db.WithContext(ctx).Create(entity).Error; err != nil {
		return apperrors.NewError(
			ctx,
			apperrors.LayerRepository,
			apperrors.ErrorTypeInternal,
			"failed to create verification code",
			err,
			"a3395a19-dc6b-4463-b832-9b1dfb87bbf5",
		)
	}
	*code = *entity.EtoD()
	return nil
}

func (repo *VerificationGormRepository) Update(ctx context.Context, code *verification.Code) error {
	entity := dbschema.NewSchemaVerificationCode(code)
	if err := repo.db.WithContext(ctx).Save(entity).Error; err != nil {
		return apperrors.NewError(
			ctx,
			apperrors.LayerRepository,
			apperrors.ErrorTypeInternal,
			"failed to update verification code",
			err,
			"a503a444-807e-4587-ade1-58eeacf8ff79",
		)
	}
	*code = *entity.EtoD()
	return nil
}

func (repo *VerificationGormRepository) Delete(ctx context.Context, id uint) error {
	err := repo.db.WithContext(ctx).
		Delete(&dbschema.VerificationCode{}, id).
		Error
	if err != nil {
		return apperrors.NewError(
			ctx,
			apperrors.LayerRepository,
			apperrors.ErrorTypeInternal,
			"failed to delete verification code",
			err,
			"1c484d57-07c0-456d-ac79-664b600875ea",
		)
	}
	return nil
}

// DeleteStale removes expired unverified rows and verified rows older
// than verifiedMaxAge in one statement.
func (repo *VerificationGormRepository) DeleteStale(ctx context.Context, now time.Time, verifiedMaxAge time.Duration) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where(
			"(value NOT LIKE ? AND expires_at < ?) OR (value LIKE ? AND updated_at < ?)",
			verification.VerifiedPrefix+"%", now,
			verification.VerifiedPrefix+"%", now.Add(-verifiedMaxAge),
		).
		Delete(&dbschema.VerificationCode{})
	if result.Error != nil {
		return 0, apperrors.NewError(
			ctx,
			apperrors.LayerRepository,
			apperrors.ErrorTypeInternal,
			"failed to sweep stale verification codes",
			result.Error,
			"db2283bb-fc30-459f-babc-54db003eb899",
		)
	}
	return result.RowsAffected, nil
}
