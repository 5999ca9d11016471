package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/exec-notes/pkg/database"
)

func TestNewPGX_InvalidOptions(t *testing.T) {
	cases := []struct {
		name string
		opts database.Options
	}{
		{name: "no port", opts: database.NewOptions("localhost", "user", "pass", "notes")},
		{name: "no password", opts: database.NewOptions("localhost:5432", "user", "", "notes")},
		{name: "too many conns", opts: database.NewOptions("localhost:5432", "user", "pass", "notes", database.WithMaxConns(50))},
		{name: "no attempts", opts: database.NewOptions("localhost:5432", "user", "pass", "notes", database.WithRetryAttempts(0))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := database.NewPGX(context.Background(), tc.opts)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validate options")
		})
	}
}

func TestTxContext(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, database.TxFromContext(ctx))

	ctx = database.NewTxContext(ctx, nil)
	assert.Nil(t, database.TxFromContext(ctx))
}
