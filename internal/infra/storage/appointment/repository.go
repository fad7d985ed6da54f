package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-DonationService/internal/domain"
	"github.com/m04kA/SMC-DonationService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL для нарушения уникальности
const uniqueViolation = "23505"

// Repository репозиторий черновиков записей на донацию
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория черновиков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет черновик записи. Ответы анкеты хранятся массивом text[]
// в формате "section_id/item_id=Yes".
func (r *Repository) Create(ctx context.Context, draft *domain.AppointmentDraft) error {
	query, args, err := psqlbuilder.Insert("appointment_drafts").
		Columns(
			"id",
			"donor_id",
			"donor_name",
			"facility_id",
			"facility_name",
			"facility_address",
			"appointment_date",
			"start_time",
			"answers",
			"rule_set_version",
			"created_at",
		).
		Values(
			draft.ID.String(),
			draft.DonorID,
			draft.DonorName,
			draft.FacilityID,
			draft.FacilityName,
			draft.FacilityAddress,
			draft.Date,
			draft.StartTime,
			pq.Array(EncodeAnswers(draft.Answers)),
			draft.RuleSetVersion,
			draft.CreatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return fmt.Errorf("%w: id=%s", ErrDuplicateDraft, draft.ID)
		}
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByID получает черновик записи по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.AppointmentDraft, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"donor_id",
		"donor_name",
		"facility_id",
		"facility_name",
		"facility_address",
		"appointment_date",
		"start_time",
		"answers",
		"rule_set_version",
		"created_at",
	).
		From("appointment_drafts").
		Where(squirrel.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var draft domain.AppointmentDraft
	var rawID string
	var answers []string

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&rawID,
		&draft.DonorID,
		&draft.DonorName,
		&draft.FacilityID,
		&draft.FacilityName,
		&draft.FacilityAddress,
		&draft.Date,
		&draft.StartTime,
		pq.Array(&answers),
		&draft.RuleSetVersion,
		&draft.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan draft: %v", ErrScanRow, err)
	}

	if draft.ID, err = uuid.Parse(rawID); err != nil {
		return nil, fmt.Errorf("%w: GetByID - parse id %q: %v", ErrScanRow, rawID, err)
	}
	if draft.Answers, err = DecodeAnswers(answers); err != nil {
		return nil, err
	}

	return &draft, nil
}

// EncodeAnswers переводит ответы в строки для колонки answers
func EncodeAnswers(items []domain.AnsweredItem) []string {
	encoded := make([]string, 0, len(items))
	for _, it := range items {
		encoded = append(encoded, fmt.Sprintf("%s/%s=%s", it.SectionID, it.ItemID, it.Answer))
	}
	return encoded
}

// DecodeAnswers разбирает строки колонки answers
func DecodeAnswers(encoded []string) ([]domain.AnsweredItem, error) {
	items := make([]domain.AnsweredItem, 0, len(encoded))
	for _, raw := range encoded {
		key, value, ok := strings.Cut(raw, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAnswer, raw)
		}
		sectionID, itemID, ok := strings.Cut(key, "/")
		if !ok || sectionID == "" || itemID == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAnswer, raw)
		}
		answer, ok := domain.ParseAnswer(value)
		if !ok || !answer.IsAnswered() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAnswer, raw)
		}
		items = append(items, domain.AnsweredItem{SectionID: sectionID, ItemID: itemID, Answer: answer})
	}
	return items, nil
}
