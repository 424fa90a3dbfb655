package storage

import (
	"context"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/expenses-ledger/internal/customerr"
	"max.ks1230/expenses-ledger/internal/entity/expense"
)

func Test_OnOwnedByWithoutUser_ShouldMatchIDOnly(t *testing.T) {
	assert.Equal(t, sq.Eq{"id": "42"}, ownedBy("42", ""))
}

func Test_OnOwnedByWithUser_ShouldAlsoMatchOwner(t *testing.T) {
	assert.Equal(t, sq.Eq{"id": "42", "user_name": "doremon"}, ownedBy("42", expense.Doremon))
}

func Test_OnUpdateQuery_ShouldReturnAllColumns(t *testing.T) {
	sql, args, err := psql.Update("expenses").
		Set("amount", "5.00").
		Where(ownedBy("42", expense.Nobita)).
		Suffix("RETURNING " + columnList()).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t,
		"UPDATE expenses SET amount = $1 WHERE id = $2 AND user_name = $3 "+
			"RETURNING id, user_name, date, amount, description, created_at, updated_at",
		sql)
	assert.Equal(t, []interface{}{"5.00", "42", "nobita"}, args)
}

func Test_OnNonUUIDID_ShouldReportNotFoundWithoutQuery(t *testing.T) {
	s := &PostgresStorage{}

	_, err := s.UpdateExpense(context.Background(), "not-a-uuid", "", expense.Patch{})
	assert.True(t, customerr.IsNotFound(err))

	err = s.DeleteExpense(context.Background(), "not-a-uuid", expense.Nobita)
	assert.True(t, customerr.IsNotFound(err))
}
