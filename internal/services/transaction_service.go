package services

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/obiajulu/fintrack-be/internal/apperror"
	"github.com/obiajulu/fintrack-be/internal/models"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
	defaultSort  = "-occurredAt"
)

// transactionColumns is the column list every transaction query selects.
var transactionColumns = []string{
	"id", "user_id", "type", "amount", "currency",
	"description", "category", "occurred_at", "created_at", "updated_at",
}

// sortColumns whitelists the fields a caller may sort the list by.
var sortColumns = map[string]string{
	"occurredAt": "occurred_at",
	"createdAt":  "created_at",
	"amount":     "amount",
	"type":       "type",
	"category":   "category",
	"currency":   "currency",
}

// TransactionInput carries the validated fields for a create.
type TransactionInput struct {
	Type        string
	Amount      float64
	Currency    string
	Description string
	Category    string
	OccurredAt  time.Time // zero value means "now"
}

// TransactionPatch carries the fields supplied to a partial update. Nil
// fields are left untouched.
type TransactionPatch struct {
	Type        *string
	Amount      *float64
	Currency    *string
	Description *string
	Category    *string
	OccurredAt  *time.Time
}

// ListQuery carries the raw list parameters. Values stay strings up to
// here; coercion and bounding are this service's job.
type ListQuery struct {
	Page  string
	Limit string
	Sort  string
}

// TransactionServiceProvider defines the interface for transaction services.
// Every operation is scoped to the owning user.
type TransactionServiceProvider interface {
	Create(ctx context.Context, ownerID string, in TransactionInput) (models.Transaction, error)
	List(ctx context.Context, ownerID string, q ListQuery) ([]models.Transaction, models.ListMeta, error)
	Get(ctx context.Context, ownerID, id string) (models.Transaction, error)
	Update(ctx context.Context, ownerID, id string, patch TransactionPatch) (models.Transaction, error)
	Delete(ctx context.Context, ownerID, id string) (models.Transaction, error)
}

// TransactionService provides business logic for ledger entries.
type TransactionService struct {
	db *sql.DB
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(db *sql.DB) *TransactionService {
	return &TransactionService{db: db}
}

// Create persists a new transaction owned by ownerID.
func (s *TransactionService) Create(ctx context.Context, ownerID string, in TransactionInput) (models.Transaction, error) {
	now := time.Now().UTC()
	occurredAt := in.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = now
	}

	tx := models.Transaction{
		ID:          uuid.New().String(),
		UserID:      ownerID,
		Type:        in.Type,
		Amount:      in.Amount,
		Currency:    in.Currency,
		Description: in.Description,
		Category:    in.Category,
		OccurredAt:  occurredAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	query, args, err := sq.Insert("transactions").
		Columns(transactionColumns...).
		Values(tx.ID, tx.UserID, tx.Type, tx.Amount, tx.Currency,
			nullable(tx.Description), nullable(tx.Category), tx.OccurredAt, tx.CreatedAt, tx.UpdatedAt).
		ToSql()
	if err != nil {
		return models.Transaction{}, apperror.Internal(err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return models.Transaction{}, apperror.Internal(err)
	}
	return tx, nil
}

// List returns one page of the owner's transactions plus pagination
// metadata. The count and the page are read against the same filter; under
// concurrent writes the total may momentarily disagree with the page
// contents, which is accepted.
func (s *TransactionService) List(ctx context.Context, ownerID string, q ListQuery) ([]models.Transaction, models.ListMeta, error) {
	page := parseBounded(q.Page, defaultPage, 1, 0)
	limit := parseBounded(q.Limit, defaultLimit, 1, maxLimit)
	orderBy := parseSort(q.Sort)
	skip := (page - 1) * limit

	filter := sq.Eq{"user_id": ownerID}

	var total int
	countQuery, countArgs, err := sq.Select("COUNT(*)").From("transactions").Where(filter).ToSql()
	if err != nil {
		return nil, models.ListMeta{}, apperror.Internal(err)
	}
	if err := s.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, models.ListMeta{}, apperror.Internal(err)
	}

	query, args, err := sq.Select(transactionColumns...).
		From("transactions").
		Where(filter).
		OrderBy(orderBy).
		Limit(uint64(limit)).
		Offset(uint64(skip)).
		ToSql()
	if err != nil {
		return nil, models.ListMeta{}, apperror.Internal(err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, models.ListMeta{}, apperror.Internal(err)
	}
	defer rows.Close()

	items := []models.Transaction{}
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, models.ListMeta{}, apperror.Internal(err)
		}
		items = append(items, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, models.ListMeta{}, apperror.Internal(err)
	}

	pages := (total + limit - 1) / limit
	if pages < 1 {
		pages = 1
	}
	meta := models.ListMeta{Page: page, Limit: limit, Total: total, Pages: pages}
	return items, meta, nil
}

// Get returns the owner's transaction with the given id. A transaction
// owned by someone else is indistinguishable from a missing one.
func (s *TransactionService) Get(ctx context.Context, ownerID, id string) (models.Transaction, error) {
	query, args, err := sq.Select(transactionColumns...).
		From("transactions").
		Where(sq.Eq{"id": id, "user_id": ownerID}).
		ToSql()
	if err != nil {
		return models.Transaction{}, apperror.Internal(err)
	}

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Transaction{}, apperror.NotFound("Transaction not found")
		}
		return models.Transaction{}, apperror.Internal(err)
	}
	return tx, nil
}

// Update merge-patches the supplied fields onto the owner's transaction.
// The merged record is re-validated before the write.
func (s *TransactionService) Update(ctx context.Context, ownerID, id string, patch TransactionPatch) (models.Transaction, error) {
	tx, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return models.Transaction{}, err
	}

	update := sq.Update("transactions").Where(sq.Eq{"id": id, "user_id": ownerID})
	if patch.Type != nil {
		tx.Type = *patch.Type
		update = update.Set("type", tx.Type)
	}
	if patch.Amount != nil {
		tx.Amount = *patch.Amount
		update = update.Set("amount", tx.Amount)
	}
	if patch.Currency != nil {
		tx.Currency = *patch.Currency
		update = update.Set("currency", tx.Currency)
	}
	if patch.Description != nil {
		tx.Description = *patch.Description
		update = update.Set("description", nullable(tx.Description))
	}
	if patch.Category != nil {
		tx.Category = *patch.Category
		update = update.Set("category", nullable(tx.Category))
	}
	if patch.OccurredAt != nil {
		tx.OccurredAt = *patch.OccurredAt
		update = update.Set("occurred_at", tx.OccurredAt)
	}

	if problems := validateMerged(tx); len(problems) > 0 {
		return models.Transaction{}, apperror.StoreValidation(problems)
	}

	tx.UpdatedAt = time.Now().UTC()
	update = update.Set("updated_at", tx.UpdatedAt)

	query, args, err := update.ToSql()
	if err != nil {
		return models.Transaction{}, apperror.Internal(err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return models.Transaction{}, apperror.Internal(err)
	}
	return tx, nil
}

// Delete removes the owner's transaction and returns the deleted record.
func (s *TransactionService) Delete(ctx context.Context, ownerID, id string) (models.Transaction, error) {
	tx, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return models.Transaction{}, err
	}

	query, args, err := sq.Delete("transactions").
		Where(sq.Eq{"id": id, "user_id": ownerID}).
		ToSql()
	if err != nil {
		return models.Transaction{}, apperror.Internal(err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return models.Transaction{}, apperror.Internal(err)
	}
	return tx, nil
}

// validateMerged re-checks the document-level constraints after a merge.
func validateMerged(tx models.Transaction) map[string][]string {
	problems := map[string][]string{}
	if tx.Amount <= 0 {
		problems["amount"] = append(problems["amount"], "must be a positive number")
	}
	if tx.Type != models.TypeIncome && tx.Type != models.TypeExpense {
		problems["type"] = append(problems["type"], "must be one of: income, expense")
	}
	if len(tx.Currency) != 3 {
		problems["currency"] = append(problems["currency"], "must be exactly 3 characters")
	}
	return problems
}

// parseBounded coerces a raw numeric string, falling back to def and
// clamping the result to [min, max]. A max of 0 means unbounded.
func parseBounded(raw string, def, min, max int) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		n = def
	}
	if n < min {
		n = min
	}
	if max > 0 && n > max {
		n = max
	}
	return n
}

// parseSort maps a "-field" style sort expression onto a whitelisted ORDER
// BY clause. Unknown fields fall back to the default ordering.
func parseSort(sort string) string {
	if sort == "" {
		sort = defaultSort
	}
	dir := "ASC"
	if field, ok := strings.CutPrefix(sort, "-"); ok {
		sort = field
		dir = "DESC"
	}
	col, ok := sortColumns[sort]
	if !ok {
		return "occurred_at DESC"
	}
	return col + " " + dir
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (models.Transaction, error) {
	var tx models.Transaction
	var description, category sql.NullString
	err := row.Scan(&tx.ID, &tx.UserID, &tx.Type, &tx.Amount, &tx.Currency,
		&description, &category, &tx.OccurredAt, &tx.CreatedAt, &tx.UpdatedAt)
	if err != nil {
		return models.Transaction{}, err
	}
	tx.Description = description.String
	tx.Category = category.String
	return tx, nil
}

// nullable maps an empty string onto NULL so optional text columns stay
// NULL instead of "".
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
