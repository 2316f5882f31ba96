package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/PCPJ19/boilerplate-project-exercisetracker/internal/models"
)

func TestLogFilterWithoutBounds(t *testing.T) {
	require.Equal(t, bson.M{"user_id": "u1"}, logFilter(models.LogQuery{UserID: "u1"}))
}

func TestLogFilterWithBounds(t *testing.T) {
	from := day(2023, 3, 1)
	to := day(2023, 9, 1)

	filter := logFilter(models.LogQuery{UserID: "u1", From: &from})
	require.Equal(t, bson.M{"$gte": from}, filter["date"])

	filter = logFilter(models.LogQuery{UserID: "u1", From: &from, To: &to})
	require.Equal(t, bson.M{"$gte": from, "$lte": to}, filter["date"])
}

func TestLogSQL(t *testing.T) {
	query, args := logSQL(models.LogQuery{UserID: "u1"})
	require.Equal(t, `SELECT id::text, user_id::text, description, duration, date FROM exercises WHERE user_id = $1 ORDER BY date, created_at`, query)
	require.Equal(t, []any{"u1"}, args)

	to := time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC)
	query, args = logSQL(models.LogQuery{UserID: "u1", To: &to, Limit: 5})
	require.Contains(t, query, "AND date <= $2")
	require.Contains(t, query, "LIMIT $3")
	require.NotContains(t, query, ">=")
	require.Equal(t, []any{"u1", to, 5}, args)
}
