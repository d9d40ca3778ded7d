package criteria

// Op represents a condition operator. The zero value is not a valid
// operator, so an unset Op in a hand-built Condition is detectable.
type Op int

// Condition operators.
const (
	OpEQ         Op = iota + 1 // =
	OpNE                       // !=
	OpNotEQ                    // <>
	OpGT                       // >
	OpGTE                      // >=
	OpLT                       // <
	OpLTE                      // <=
	OpLike                     // LIKE
	OpNotLike                  // NOT LIKE
	OpBetween                  // BETWEEN
	OpNotBetween               // NOT BETWEEN
	OpIsNull                   // IS NULL
	OpNotNull                  // IS NOT NULL
	OpIn                       // IN
	OpNotIn                    // NOT IN
)

// Valid reports whether op is a member of the operator enumeration.
func (op Op) Valid() bool {
	return op >= OpEQ && op <= OpNotIn
}

// String returns the literal SQL token for the operator.
func (op Op) String() string {
	switch op {
	case OpEQ:
		return "="
	case OpNE:
		return "!="
	case OpNotEQ:
		return "<>"
	case OpGT:
		return ">"
	case OpGTE:
		return ">="
	case OpLT:
		return "<"
	case OpLTE:
		return "<="
	case OpLike:
		return "LIKE"
	case OpNotLike:
		return "NOT LIKE"
	case OpBetween:
		return "BETWEEN"
	case OpNotBetween:
		return "NOT BETWEEN"
	case OpIsNull:
		return "IS NULL"
	case OpNotNull:
		return "IS NOT NULL"
	case OpIn:
		return "IN"
	case OpNotIn:
		return "NOT IN"
	default:
		return "<invalid>"
	}
}

// Order represents an ordering direction. The zero value is not a valid
// direction.
type Order int

// Ordering directions.
const (
	Asc  Order = iota + 1 // ASC
	Desc                  // DESC
)

// Valid reports whether o is a member of the direction enumeration.
func (o Order) Valid() bool {
	return o == Asc || o == Desc
}

// String returns the literal SQL token for the direction.
func (o Order) String() string {
	switch o {
	case Asc:
		return "ASC"
	case Desc:
		return "DESC"
	default:
		return "<invalid>"
	}
}

// payload is the operator-specific value of a condition: a single rendered
// expression, a pair of range bounds, or absent (nil).
type payload interface {
	isPayload()
}

// scalar is a single rendered value expression, conventionally a
// bind-parameter reference such as ":name".
type scalar string

func (scalar) isPayload() {}

// bounds is the (lower, upper) pair of a range condition.
type bounds struct {
	lo, hi string
}

func (bounds) isPayload() {}

// Condition is a single comparison test contributing one fragment to a
// WHERE clause. It pairs a field name with an operator and an
// operator-specific value expression.
//
// Conditions are immutable values constructed per query and consumed once
// by Where. The rendering category is determined solely by the Op tag,
// never by the shape of the value.
type Condition struct {
	Field string
	Op    Op
	value payload
}

// Value returns the condition's value expression and whether one is set.
// Range conditions report their bounds through Bounds instead.
func (c Condition) Value() (string, bool) {
	v, ok := c.value.(scalar)
	return string(v), ok
}

// Bounds returns the condition's range bounds and whether they are set.
func (c Condition) Bounds() (lo, hi string, ok bool) {
	b, ok := c.value.(bounds)
	return b.lo, b.hi, ok
}

func newCondition(field string, op Op, value string) Condition {
	c := Condition{Field: field, Op: op}
	// An empty expression means the filter is unset. The condition is kept
	// but renders nothing, so optional search criteria can be passed as-is.
	if value != "" {
		c.value = scalar(value)
	}
	return c
}

// EQ returns a "field = value" condition.
func EQ(field, value string) Condition { return newCondition(field, OpEQ, value) }

// NE returns a "field != value" condition.
func NE(field, value string) Condition { return newCondition(field, OpNE, value) }

// NotEQ returns a "field <> value" condition.
func NotEQ(field, value string) Condition { return newCondition(field, OpNotEQ, value) }

// GT returns a "field > value" condition.
func GT(field, value string) Condition { return newCondition(field, OpGT, value) }

// GTE returns a "field >= value" condition.
func GTE(field, value string) Condition { return newCondition(field, OpGTE, value) }

// LT returns a "field < value" condition.
func LT(field, value string) Condition { return newCondition(field, OpLT, value) }

// LTE returns a "field <= value" condition.
func LTE(field, value string) Condition { return newCondition(field, OpLTE, value) }

// Like returns a "field LIKE value" condition.
func Like(field, value string) Condition { return newCondition(field, OpLike, value) }

// NotLike returns a "field NOT LIKE value" condition.
func NotLike(field, value string) Condition { return newCondition(field, OpNotLike, value) }

// Between returns a "field BETWEEN lo AND hi" condition. The condition
// renders nothing unless both bounds are set.
func Between(field, lo, hi string) Condition {
	return newRange(field, OpBetween, lo, hi)
}

// NotBetween returns a "field NOT BETWEEN lo AND hi" condition. The
// condition renders nothing unless both bounds are set.
func NotBetween(field, lo, hi string) Condition {
	return newRange(field, OpNotBetween, lo, hi)
}

func newRange(field string, op Op, lo, hi string) Condition {
	c := Condition{Field: field, Op: op}
	if lo != "" && hi != "" {
		c.value = bounds{lo: lo, hi: hi}
	}
	return c
}

// IsNull returns a "field IS NULL" condition.
func IsNull(field string) Condition { return Condition{Field: field, Op: OpIsNull} }

// NotNull returns a "field IS NOT NULL" condition.
func NotNull(field string) Condition { return Condition{Field: field, Op: OpNotNull} }

// In returns a "field IN (values)" condition. The expression is included
// as-is between the parentheses; the caller is responsible for producing
// the member list (e.g. ":a,:b,:c") or a subquery.
func In(field, values string) Condition { return newCondition(field, OpIn, values) }

// NotIn returns a "field NOT IN (values)" condition.
func NotIn(field, values string) Condition { return newCondition(field, OpNotIn, values) }

// Ordering is a single entry of an ORDER BY clause.
type Ordering struct {
	Field     string
	Direction Order
}

// OrderAsc returns an ascending ordering on field.
func OrderAsc(field string) Ordering { return Ordering{Field: field, Direction: Asc} }

// OrderDesc returns a descending ordering on field.
func OrderDesc(field string) Ordering { return Ordering{Field: field, Direction: Desc} }
