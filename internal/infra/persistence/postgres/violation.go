package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// violation names the integrity rule a failed write broke.
type violation int

const (
	violationNone violation = iota
	violationUnique
	violationForeignKey
	violationNotNull
)

// Markers checked when the driver hands back an untranslated error.
// Postgres reports the SQLSTATE code, sqlite only the message text.
var violationMarkers = []struct {
	kind    violation
	markers []string
}{
	{violationUnique, []string{"23505", "duplicate key", "unique constraint"}},
	{violationForeignKey, []string{"23503", "foreign key"}},
	{violationNotNull, []string{"23502", "null value", "not null"}},
}

func classifyViolation(err error) violation {
	switch {
	case err == nil:
		return violationNone
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return violationUnique
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return violationForeignKey
	}

	msg := strings.ToLower(err.Error())
	for _, entry := range violationMarkers {
		for _, marker := range entry.markers {
			if strings.Contains(msg, marker) {
				return entry.kind
			}
		}
	}

	return violationNone
}
