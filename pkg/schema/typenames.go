package schema

import (
	"database/sql/driver"
	"fmt"
	"slices"
	"strings"
)

// TypeNames is a set of type names kept as a comma-separated column.
type TypeNames []string

// NewTypeNames returns a pointer to a TypeNames built from names. It is
// handy for change rows, where nil means "unchanged".
func NewTypeNames(names ...string) *TypeNames {
	res := TypeNames(names)
	if res == nil {
		res = TypeNames{}
	}
	return &res
}

// Value implements driver.Valuer.
func (tn TypeNames) Value() (driver.Value, error) {
	return strings.Join(tn, ","), nil
}

// Scan implements sql.Scanner.
func (tn *TypeNames) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case nil:
		*tn = nil
		return nil
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("cannot scan %T into TypeNames", src)
	}
	res := TypeNames{}
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			res = append(res, name)
		}
	}
	*tn = res
	return nil
}

// Has reports whether name is in the set.
func (tn TypeNames) Has(name string) bool {
	return slices.Contains(tn, name)
}

// GormDataType sets column type for GORM migrations.
func (TypeNames) GormDataType() string {
	return "text"
}
