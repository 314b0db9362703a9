package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

func TestNewStore(t *testing.T) {
	pool := &pgxpool.Pool{}
	s := NewStore(pool)
	assert.NotNil(t, s)
}
