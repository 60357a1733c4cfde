package postgres

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPgx5URL(t *testing.T) {
	cases := map[string]string{
		"postgres://u:p@localhost:5432/laramigo?sslmode=disable": "pgx5://u:p@localhost:5432/laramigo?sslmode=disable",
		"postgresql://u:p@localhost/laramigo":                    "pgx5://u:p@localhost/laramigo",
		"  pgx5://u@db/laramigo ":                                "pgx5://u@db/laramigo",
	}
	for in, want := range cases {
		got, err := pgx5URL(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := pgx5URL("host=localhost user=u dbname=laramigo")
	assert.Error(t, err)
}

func TestMigrationsEmbedded(t *testing.T) {
	names, err := fs.Glob(migrationsFS, "migrations/*.sql")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"migrations/0001_create_pets.up.sql",
		"migrations/0001_create_pets.down.sql",
	}, names)
}
