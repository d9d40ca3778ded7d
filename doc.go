// Package criteria assembles SQL clause fragments from structured, typed
// inputs, producing named-placeholder clause text for a parameterized-query
// layer supplied by the caller.
//
// The package generates three kinds of clauses:
//
//   - Set: the SET clause of an UPDATE statement
//   - Where: a WHERE clause built from typed conditions and raw fragments
//   - OrderBy: an ORDER BY clause built from (field, direction) pairs
//
// # Conditions
//
// Conditions pair a field name with an operator and an operator-specific
// value expression. Value expressions are expected to be bind-parameter
// references (conventionally ":name"), not literals:
//
//	clause, err := criteria.Where([]criteria.Condition{
//	    criteria.EQ("name", ":name"),
//	    criteria.Between("created_at", ":lo", ":hi"),
//	    criteria.IsNull("deleted_at"),
//	})
//	// clause: "WHERE name = :name AND created_at BETWEEN :lo AND :hi AND deleted_at IS NULL"
//
// A condition whose operator requires a value but whose value is absent
// renders nothing and is dropped from the clause. This makes it cheap to
// build condition lists from possibly-unset search criteria:
//
//	conds := []criteria.Condition{
//	    criteria.EQ("state", stateExpr), // stateExpr may be ""
//	    criteria.Like("name", nameExpr), // nameExpr may be ""
//	}
//	clause, err := criteria.Where(conds) // "" when every filter is unset
//
// # Raw fragments
//
// Expressions the condition model cannot represent, such as OR groups, are
// passed verbatim as raw fragments after the structured conditions:
//
//	criteria.Where(conds, "(state = :a OR state = :b)")
//
// Raw fragments are not validated or escaped.
//
// # SET and ORDER BY
//
//	clause, err := criteria.Set([]string{"name", "state"}, nil)
//	// clause: "SET name = :name, state = :state"
//
//	clause, err := criteria.OrderBy([]criteria.Ordering{
//	    criteria.OrderAsc("name"),
//	    criteria.OrderDesc("created_at"),
//	})
//	// clause: "ORDER BY name ASC,created_at DESC"
//
// # Execution
//
// Clause strings are meant to be concatenated after a base statement and
// handed, together with a name to value parameter map, to an external
// parameterized-query layer. The dialect and dialect/sql subpackages provide
// such a layer over database/sql:
//
//	query := "UPDATE users " + setClause + " " + whereClause
//	err := drv.Exec(ctx, query, sql.NamedArgs(map[string]any{
//	    "name": "alice",
//	    "id":   id,
//	}), nil)
//
// Every function in this package is a pure computation over its inputs and
// is safe for concurrent use.
package criteria
