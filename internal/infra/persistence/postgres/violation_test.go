package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestClassifyViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want violation
	}{
		{name: "nil", err: nil, want: violationNone},
		{name: "translated duplicate", err: errors.Wrap(gorm.ErrDuplicatedKey, "insert"), want: violationUnique},
		{name: "translated foreign key", err: gorm.ErrForeignKeyViolated, want: violationForeignKey},
		{name: "postgres unique code", err: errors.New(`ERROR: duplicate key value violates unique constraint "idx_email" (SQLSTATE 23505)`), want: violationUnique},
		{name: "sqlite unique", err: errors.New("UNIQUE constraint failed: users.email"), want: violationUnique},
		{name: "sqlite foreign key", err: errors.New("FOREIGN KEY constraint failed"), want: violationForeignKey},
		{name: "sqlite not null", err: errors.New("NOT NULL constraint failed: users.email"), want: violationNotNull},
		{name: "postgres not null code", err: errors.New("SQLSTATE 23502"), want: violationNotNull},
		{name: "unrelated", err: errors.New("connection reset by peer"), want: violationNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyViolation(tt.err))
		})
	}
}
