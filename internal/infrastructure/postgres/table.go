package postgres

import (
	"fmt"
	"strings"
)

// Table describe cómo persistir T en una tabla con clave "id" BIGSERIAL.
// Columns y Values van en el mismo orden; Select y Targets también.
type Table[T any] struct {
	Name    string
	Columns []string
	// Select expresiones de lectura (sin id); por defecto Columns.
	Select  []string
	Values  func(e *T) []any
	Targets func(e *T) []any
	ID      func(e *T) *int64
}

// tableSQL sentencias precalculadas a partir del descriptor.
type tableSQL struct {
	insert  string
	list    string
	getByID string
	update  string
	delete  string
}

func (t Table[T]) validate() error {
	if t.Name == "" || len(t.Columns) == 0 {
		return fmt.Errorf("tabla sin nombre o sin columnas")
	}
	if t.Values == nil || t.Targets == nil || t.ID == nil {
		return fmt.Errorf("tabla %s: faltan extractores", t.Name)
	}
	if len(t.Select) != 0 && len(t.Select) != len(t.Columns) {
		return fmt.Errorf("tabla %s: Select y Columns difieren en longitud", t.Name)
	}
	return nil
}

func (t Table[T]) selectList() string {
	sel := t.Select
	if len(sel) == 0 {
		sel = t.Columns
	}
	return "id, " + strings.Join(sel, ", ")
}

func (t Table[T]) build() tableSQL {
	n := len(t.Columns)
	placeholders := make([]string, n)
	sets := make([]string, n)
	for i, col := range t.Columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		sets[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}
	return tableSQL{
		insert: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
			t.Name, strings.Join(t.Columns, ", "), strings.Join(placeholders, ", ")),
		list:    fmt.Sprintf("SELECT %s FROM %s ORDER BY id", t.selectList(), t.Name),
		getByID: fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", t.selectList(), t.Name),
		update:  fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d", t.Name, strings.Join(sets, ", "), n+1),
		delete:  fmt.Sprintf("DELETE FROM %s WHERE id = $1", t.Name),
	}
}

// scanTargets antepone el id a los destinos del descriptor.
func (t Table[T]) scanTargets(e *T) []any {
	return append([]any{t.ID(e)}, t.Targets(e)...)
}
