package slite

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindForCode(t *testing.T) {
	t.Run("PrimaryCodes", func(t *testing.T) {
		assert.Equal(t, KindBusy, kindForCode(codeBusy))
		assert.Equal(t, KindLocked, kindForCode(codeLocked))
		assert.Equal(t, KindConstraint, kindForCode(codeConstraint))
		assert.Equal(t, KindCantOpen, kindForCode(codeCantOpen))
		assert.Equal(t, KindNotADB, kindForCode(codeNotADB))
	})

	t.Run("ExtendedCodes", func(t *testing.T) {
		assert.Equal(t, KindConstraintUnique, kindForCode(codeConstraintUnique))
		assert.Equal(t, KindIOErrWrite, kindForCode(codeIOErrWrite))
		assert.Equal(t, KindIOErrFsync, kindForCode(codeIOErrFsync))
		assert.Equal(t, KindBusySnapshot, kindForCode(codeBusySnapshot))
		assert.Equal(t, KindReadOnlyDBMoved, kindForCode(codeReadOnlyDBMoved))
	})

	t.Run("ExtendedRefinesPrimary", func(t *testing.T) {
		// The low byte of every extended code is its primary code.
		for code := range kindByCode {
			if code > 0xff {
				_, ok := kindByCode[code&0xff]
				assert.True(t, ok, "extended code %d has no primary mapping", code)
			}
		}
	})

	t.Run("UnknownCodePanics", func(t *testing.T) {
		assert.Panics(t, func() {
			kindForCode(424242)
		})
	})
}

func TestError(t *testing.T) {
	t.Run("Message", func(t *testing.T) {
		err := newError(codeConstraintUnique, "UNIQUE constraint failed: users.email")
		assert.EqualError(t, err, "sqlite: constraint_unique (2067): UNIQUE constraint failed: users.email")
	})

	t.Run("NoMessage", func(t *testing.T) {
		err := newError(codeBusy, "")
		assert.EqualError(t, err, "sqlite: busy (5)")
	})

	t.Run("IsMatchesKind", func(t *testing.T) {
		err := fmt.Errorf("query failed: %w", newError(codeBusy, "database is locked"))
		assert.True(t, errors.Is(err, &Error{Kind: KindBusy}))
		assert.False(t, errors.Is(err, &Error{Kind: KindLocked}))
	})
}

func TestIsUniqueViolation(t *testing.T) {
	t.Run("UniqueKind", func(t *testing.T) {
		err := newError(codeConstraintUnique, "UNIQUE constraint failed")
		assert.True(t, IsUniqueViolation(err))
	})

	t.Run("Wrapped", func(t *testing.T) {
		err := fmt.Errorf("insert failed: %w", newError(codeConstraintUnique, ""))
		assert.True(t, IsUniqueViolation(err))
	})

	t.Run("OtherConstraints", func(t *testing.T) {
		assert.False(t, IsUniqueViolation(newError(codeConstraintNotNull, "")))
		assert.False(t, IsUniqueViolation(newError(codeConstraintCheck, "")))
		assert.False(t, IsUniqueViolation(newError(codeConstraint, "")))
	})

	t.Run("NotADriverError", func(t *testing.T) {
		assert.False(t, IsUniqueViolation(errors.New("something else")))
		assert.False(t, IsUniqueViolation(nil))
	})
}
