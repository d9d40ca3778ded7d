// Package sql implements the dialect interfaces over database/sql, giving
// clause text generated by package criteria a place to run.
//
// # Drivers
//
// Open and OpenDB wrap a database/sql connection:
//
//	drv, err := sql.Open(dialect.SQLite, "file:app.db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer drv.Close()
//
// # Named Arguments
//
// Clause text uses ":name" placeholders. NamedArgs bridges a name to value
// map to the bound arguments the driver expects:
//
//	set, _ := criteria.Set([]string{"name", "state"}, nil)
//	where, _ := criteria.Where([]criteria.Condition{criteria.EQ("id", ":id")})
//	err := drv.Exec(ctx, "UPDATE users "+set+" "+where, sql.NamedArgs(map[string]any{
//	    "name":  "alice",
//	    "state": 1,
//	    "id":    id,
//	}), nil)
//
// Named placeholders require a driver that supports them (SQLite does;
// see sql.Named in database/sql for details).
//
// # Observability
//
// StatsDriver collects statement counts, durations, and slow-statement
// detection; DebugDriver logs every statement. Both wrap a Driver and
// implement dialect.Driver, so they are drop-in replacements.
package sql
