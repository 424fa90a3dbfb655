package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"

	// postgres driver
	_ "github.com/lib/pq"
	"github.com/pkg/errors"

	"max.ks1230/expenses-ledger/internal/customerr"
	"max.ks1230/expenses-ledger/internal/entity/expense"
	"max.ks1230/expenses-ledger/internal/logger"
)

const dsnTemplate = "user=%s password=%s host=%s port=%d dbname=%s sslmode=%s"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var expenseColumns = []string{"id", "user_name", "date", "amount", "description", "created_at", "updated_at"}

type config interface {
	Host() string
	Port() int
	SSLMode() string
	Username() string
	Password() string
	Database() string
}

type PostgresStorage struct {
	db *sql.DB
}

func NewPostgresStorage(config config) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", fmt.Sprintf(dsnTemplate,
		config.Username(),
		config.Password(),
		config.Host(),
		config.Port(),
		config.Database(),
		config.SSLMode()))
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = db.Ping(); err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = Migrate(db); err != nil {
		return nil, errors.Wrap(err, "cannot migrate database")
	}
	return &PostgresStorage{db}, nil
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExpense(row rowScanner) (expense.Record, error) {
	var (
		rec    expense.Record
		user   string
		date   time.Time
		amount string
	)
	err := row.Scan(&rec.ID, &user, &date, &amount, &rec.Description, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return expense.Record{}, err
	}
	rec.User = expense.User(user)
	rec.Date = expense.NewDate(date)
	rec.Amount = expense.Amount(amount)
	return rec, nil
}

func (s *PostgresStorage) ListExpenses(ctx context.Context, user expense.User) ([]expense.Record, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "storage.listExpenses")
	defer span.Finish()

	query := psql.Select(expenseColumns...).
		From("expenses").
		OrderBy("date DESC", "created_at DESC")
	if user != "" {
		query = query.Where(sq.Eq{"user_name": string(user)})
	}

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get expenses")
	}
	defer func() {
		rowErr := rows.Close()
		if rowErr != nil {
			logger.Error("error closing rows", zap.Error(rowErr))
		}
	}()

	exps := make([]expense.Record, 0)
	for rows.Next() {
		rec, err := scanExpense(rows)
		if err != nil {
			return nil, errors.Wrap(err, "get expenses")
		}
		exps = append(exps, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "get expenses")
	}

	return exps, nil
}

func (s *PostgresStorage) CreateExpense(ctx context.Context, rec expense.Record) (expense.Record, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "storage.createExpense")
	defer span.Finish()

	rec, err := normalize(rec)
	if err != nil {
		return expense.Record{}, errors.Wrap(err, "save expense")
	}

	now := time.Now().UTC()
	query := psql.Insert("expenses").
		Columns("id", "user_name", "date", "amount", "description", "created_at", "updated_at").
		Values(uuid.New(), string(rec.User), rec.Date.String(), rec.Amount.String(), rec.Description, now, now).
		Suffix("RETURNING " + columnList())

	created, err := scanExpense(query.RunWith(s.db).QueryRowContext(ctx))
	if err != nil {
		return expense.Record{}, errors.Wrap(err, "save expense")
	}
	return created, nil
}

func (s *PostgresStorage) UpdateExpense(ctx context.Context, id string, user expense.User, patch expense.Patch) (expense.Record, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "storage.updateExpense")
	defer span.Finish()
	span.SetTag("id", id)

	if _, err := uuid.Parse(id); err != nil {
		return expense.Record{}, customerr.NewNotFound(id)
	}

	query := psql.Update("expenses").
		Set("updated_at", time.Now().UTC()).
		Where(ownedBy(id, user)).
		Suffix("RETURNING " + columnList())
	if patch.Amount != nil {
		amount, err := patch.Amount.Normalized()
		if err != nil {
			return expense.Record{}, customerr.NewValidation("amount: %s", err)
		}
		query = query.Set("amount", amount.String())
	}
	if patch.Description != nil {
		query = query.Set("description", *patch.Description)
	}

	updated, err := scanExpense(query.RunWith(s.db).QueryRowContext(ctx))
	if errors.Is(err, sql.ErrNoRows) {
		return expense.Record{}, customerr.NewNotFound(id)
	}
	if err != nil {
		return expense.Record{}, errors.Wrap(err, "update expense")
	}
	return updated, nil
}

func (s *PostgresStorage) DeleteExpense(ctx context.Context, id string, user expense.User) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "storage.deleteExpense")
	defer span.Finish()
	span.SetTag("id", id)

	if _, err := uuid.Parse(id); err != nil {
		return customerr.NewNotFound(id)
	}

	res, err := psql.Delete("expenses").
		Where(ownedBy(id, user)).
		RunWith(s.db).
		ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "delete expense")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "delete expense")
	}
	if n == 0 {
		return customerr.NewNotFound(id)
	}
	return nil
}

// ownedBy matches id, and also the owner when one is given.
func ownedBy(id string, user expense.User) sq.Eq {
	cond := sq.Eq{"id": id}
	if user != "" {
		cond["user_name"] = string(user)
	}
	return cond
}

func columnList() string {
	return strings.Join(expenseColumns, ", ")
}
