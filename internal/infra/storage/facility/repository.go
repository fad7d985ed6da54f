package facility

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-DonationService/internal/domain"
	"github.com/m04kA/SMC-DonationService/pkg/psqlbuilder"
)

var columns = []string{"id", "name", "address", "operating_hours"}

// Repository репозиторий учреждений для сдачи крови
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория учреждений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает учреждение по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Facility, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From("facilities").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	facility, err := scanFacility(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrFacilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan facility: %v", ErrScanRow, err)
	}

	return facility, nil
}

// List получает все учреждения, отсортированные по названию
func (r *Repository) List(ctx context.Context) ([]*domain.Facility, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From("facilities").
		OrderBy("name ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	facilities := make([]*domain.Facility, 0)
	for rows.Next() {
		facility, err := scanFacility(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan facility: %v", ErrScanRow, err)
		}
		facilities = append(facilities, facility)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrExecQuery, err)
	}

	return facilities, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanFacility(row scanner) (*domain.Facility, error) {
	var facility domain.Facility
	var operatingHours sql.NullString

	if err := row.Scan(&facility.ID, &facility.Name, &facility.Address, &operatingHours); err != nil {
		return nil, err
	}

	if operatingHours.Valid {
		facility.OperatingHours = &operatingHours.String
	}

	return &facility, nil
}
