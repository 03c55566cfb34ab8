package option

import "database/sql"

// Scan implements sql.Scanner. NULL scans as None. To write an Option as a
// query argument pass o.ToNull().
func (o *Option[T]) Scan(src any) error {
	var n sql.Null[T]
	if err := n.Scan(src); err != nil {
		return err
	}
	*o = FromNull(n)
	return nil
}
