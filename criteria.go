package criteria

import (
	"fmt"
	"strings"
)

// Placeholder returns the named bind-parameter reference for the given
// value token, in ":name" syntax.
func Placeholder(name string) string {
	return ":" + name
}

// Set generates the SET clause of an UPDATE statement. Each field is
// rendered as "field = :value"; pairs are joined with ", ".
//
// When values is nil, every field binds a placeholder of its own name.
// When values is non-nil its length must match fields, and an empty value
// at position i falls back to the field name:
//
//	Set([]string{"name", "state"}, nil)
//	// "SET name = :name, state = :state"
//
//	Set([]string{"name", "state"}, []string{"new_name", ""})
//	// "SET name = :new_name, state = :state"
//
// Empty fields yields "", not an error, so the result can be concatenated
// unconditionally.
func Set(fields, values []string) (string, error) {
	if len(fields) == 0 {
		return "", nil
	}
	for _, f := range fields {
		if f == "" {
			return "", NewInvalidInputError("set: empty field name")
		}
	}
	if values == nil {
		values = fields
	}
	if len(values) != len(fields) {
		return "", NewInvalidInputError(fmt.Sprintf("set: %d fields but %d values", len(fields), len(values)))
	}
	pairs := make([]string, len(fields))
	for i, f := range fields {
		v := values[i]
		if v == "" {
			v = f
		}
		pairs[i] = fmt.Sprintf("%s = %s", f, Placeholder(v))
	}
	return "SET " + strings.Join(pairs, ", "), nil
}

// Where generates a WHERE clause from structured conditions followed by
// raw SQL fragments, all joined with " AND ".
//
// Every condition must carry a non-empty field and a valid operator;
// otherwise Where fails before producing any output. A condition whose
// operator requires a value but whose value is absent renders nothing and
// is dropped. Empty raw fragments are dropped; non-empty ones are included
// verbatim, unvalidated. If nothing renders, the result is "".
func Where(conds []Condition, raw ...string) (string, error) {
	parts := make([]string, 0, len(conds)+len(raw))
	for _, c := range conds {
		s, err := c.SQL()
		if err != nil {
			return "", err
		}
		if s != "" {
			parts = append(parts, s)
		}
	}
	for _, q := range raw {
		if q != "" {
			parts = append(parts, q)
		}
	}
	if len(parts) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(parts, " AND "), nil
}

// SQL renders the condition as a single WHERE fragment. A condition whose
// operator requires a value but whose value is absent renders "". A
// condition with an empty field, an invalid operator, or a value of the
// wrong shape for its operator fails with InvalidInputError.
func (c Condition) SQL() (string, error) {
	if c.Field == "" {
		return "", NewInvalidInputError("condition: empty field name")
	}
	switch c.Op {
	case OpEQ, OpNE, OpNotEQ, OpGT, OpGTE, OpLT, OpLTE, OpLike, OpNotLike:
		v, ok := c.value.(scalar)
		if !ok {
			if c.value == nil {
				return "", nil
			}
			return "", NewInvalidInputError(fmt.Sprintf("condition %s: operator %s requires a single value", c.Field, c.Op))
		}
		return fmt.Sprintf("%s %s %s", c.Field, c.Op, v), nil
	case OpBetween, OpNotBetween:
		b, ok := c.value.(bounds)
		if !ok {
			if c.value == nil {
				return "", nil
			}
			return "", NewInvalidInputError(fmt.Sprintf("condition %s: operator %s requires a pair of bounds", c.Field, c.Op))
		}
		return fmt.Sprintf("%s %s %s AND %s", c.Field, c.Op, b.lo, b.hi), nil
	case OpIsNull, OpNotNull:
		return fmt.Sprintf("%s %s", c.Field, c.Op), nil
	case OpIn, OpNotIn:
		v, ok := c.value.(scalar)
		if !ok {
			if c.value == nil {
				return "", nil
			}
			return "", NewInvalidInputError(fmt.Sprintf("condition %s: operator %s requires a value list", c.Field, c.Op))
		}
		return fmt.Sprintf("%s %s (%s)", c.Field, c.Op, v), nil
	default:
		return "", NewInvalidInputError(fmt.Sprintf("condition %s: invalid operator", c.Field))
	}
}

// OrderBy generates an ORDER BY clause. Entries with an empty field are
// dropped; the rest render "field DIRECTION" joined with ",", in input
// order:
//
//	OrderBy([]Ordering{OrderAsc("name"), OrderDesc("date")})
//	// "ORDER BY name ASC,date DESC"
//
// An entry with a non-empty field and an invalid direction fails with
// InvalidInputError. Empty or all-dropped input yields "".
func OrderBy(orderings []Ordering) (string, error) {
	parts := make([]string, 0, len(orderings))
	for _, o := range orderings {
		if o.Field == "" {
			continue
		}
		if !o.Direction.Valid() {
			return "", NewInvalidInputError(fmt.Sprintf("ordering %s: invalid direction", o.Field))
		}
		parts = append(parts, o.Field+" "+o.Direction.String())
	}
	if len(parts) == 0 {
		return "", nil
	}
	return "ORDER BY " + strings.Join(parts, ","), nil
}
