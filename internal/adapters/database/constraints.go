package database

import (
	"errors"
	"fmt"
	"strings"

	"photofeed/internal/core/integrity"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// reference is a foreign key value that must resolve to a row of table.
type reference struct {
	field string
	table string
	model any
	id    uint
}

// uniqueColumn is a column whose value may appear in at most one row.
type uniqueColumn struct {
	column string
	value  any
}

// dependent is a foreign key column of another table pointing at the row
// being deleted.
type dependent struct {
	table  string
	column string
	model  any
}

func exists(tx *gorm.DB, model any, id uint) (bool, error) {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func requireExists(tx *gorm.DB, entity string, model any, id uint) error {
	if id == 0 {
		return &integrity.ValidationError{Entity: entity, Field: "id", Rule: "required"}
	}
	ok, err := exists(tx, model, id)
	if err != nil {
		return err
	}
	if !ok {
		return notFound(entity, id)
	}
	return nil
}

func requireRefs(tx *gorm.DB, entity string, refs ...reference) error {
	for _, ref := range refs {
		ok, err := exists(tx, ref.model, ref.id)
		if err != nil {
			return err
		}
		if !ok {
			return &integrity.ForeignKeyViolation{Entity: entity, Field: ref.field, References: ref.table, ID: ref.id}
		}
	}
	return nil
}

// requireUnique fails when another row (id != selfID) already holds one of
// the values. selfID is zero on insert.
func requireUnique(tx *gorm.DB, entity string, model any, selfID uint, cols ...uniqueColumn) error {
	for _, col := range cols {
		var count int64
		q := tx.Model(model).Where(col.column+" = ?", col.value)
		if selfID != 0 {
			q = q.Where("id <> ?", selfID)
		}
		if err := q.Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return &integrity.UniquenessViolation{Entity: entity, Field: col.column, Value: col.value}
		}
	}
	return nil
}

// requireUnreferenced implements the restrict delete policy.
func requireUnreferenced(tx *gorm.DB, entity string, id uint, deps ...dependent) error {
	for _, dep := range deps {
		var count int64
		if err := tx.Model(dep.model).Where(dep.column+" = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return &integrity.ForeignKeyViolation{Entity: dep.table, Field: dep.column, References: entity, ID: id, Restrict: true}
		}
	}
	return nil
}

func deleteByID(tx *gorm.DB, entity string, model any, id uint) error {
	res := tx.Delete(model, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFound(entity, id)
	}
	return nil
}

func notFound(entity string, id uint) error {
	return fmt.Errorf("%s %d: %w", entity, id, integrity.ErrNotFound)
}

// translateError maps store errors onto the integrity taxonomy. Errors that
// already belong to it pass through untouched.
func translateError(entity string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, integrity.ErrValidation),
		errors.Is(err, integrity.ErrUniqueness),
		errors.Is(err, integrity.ErrForeignKey),
		errors.Is(err, integrity.ErrNotFound):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", entity, integrity.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &integrity.UniquenessViolation{Entity: entity}
	case errors.Is(err, gorm.ErrForeignKeyViolated), sqliteForeignKeyFailure(err):
		return &integrity.ForeignKeyViolation{Entity: entity}
	default:
		return fmt.Errorf("%s: %w", entity, err)
	}
}

// sqliteForeignKeyFailure catches the RESTRICT failure sqlite raises on delete,
// which the dialector hands back untranslated.
func sqliteForeignKeyFailure(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey {
		return true
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
