// Package dialect defines the interfaces of the parameterized-query layer
// that consumes the clause text generated by package criteria.
//
// # Supported Dialects
//
// Each dialect is identified by a constant string matching its
// database/sql driver registration name:
//
//	dialect.Postgres = "postgres"
//	dialect.MySQL    = "mysql"
//	dialect.SQLite   = "sqlite"
//
// # Interfaces
//
// Driver is the full database surface: execution, transactions, and
// lifecycle. Tx narrows it to a single transaction. ExecQuerier is the
// subset shared by both, and is what statement-assembling code should
// accept:
//
//	func updateName(ctx context.Context, conn dialect.ExecQuerier, id, name string) error {
//	    set, err := criteria.Set([]string{"name"}, nil)
//	    ...
//	}
//
// The dialect/sql sub-package implements these interfaces over
// database/sql.
package dialect
