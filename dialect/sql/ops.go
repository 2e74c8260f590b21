package sql

// Integer constrains the signed integer widths with bitwise support.
type Integer interface {
	~int16 | ~int32 | ~int64
}

// Numeric constrains the arithmetic scalar types.
type Numeric interface {
	Integer | ~float64
}

// StringOps exposes the string operations of a dialect for one expression.
// Obtain it with Dialect.Strings.
type StringOps struct {
	d *Dialect
	x Expr[string]
}

// Strings returns the string operation set for x under d.
func (d *Dialect) Strings(x Expr[string]) StringOps {
	return StringOps{d: d, x: x}
}

// Concat renders string concatenation.
func (o StringOps) Concat(y Expr[string]) Expr[string] {
	return apply[string](o.d, OpConcat, o.x.f, y.f)
}

// Like renders a LIKE pattern match.
func (o StringOps) Like(pattern Expr[string]) Expr[bool] {
	return apply[bool](o.d, OpLike, o.x.f, pattern.f)
}

// Glob renders a glob-style pattern match producing an integer result.
func (o StringOps) Glob(pattern Expr[string]) Expr[int32] {
	return apply[int32](o.d, OpGlob, o.x.f, pattern.f)
}

// IndexOf renders a substring search returning the 1-based position of sub,
// or zero when absent.
func (o StringOps) IndexOf(sub Expr[string]) Expr[int32] {
	return apply[int32](o.d, OpIndexOf, o.x.f, sub.f)
}

// Lower renders a lower-case conversion.
func (o StringOps) Lower() Expr[string] {
	return apply[string](o.d, OpLower, o.x.f)
}

// Upper renders an upper-case conversion.
func (o StringOps) Upper() Expr[string] {
	return apply[string](o.d, OpUpper, o.x.f)
}

// LTrim renders a left trim removing any character in chars.
func (o StringOps) LTrim(chars Expr[string]) Expr[string] {
	return apply[string](o.d, OpLTrim, o.x.f, chars.f)
}

// RTrim renders a right trim removing any character in chars.
func (o StringOps) RTrim(chars Expr[string]) Expr[string] {
	return apply[string](o.d, OpRTrim, o.x.f, chars.f)
}

// Substr renders a substring extraction (1-based start).
func (o StringOps) Substr(start, length Expr[int32]) Expr[string] {
	return apply[string](o.d, OpSubstr, o.x.f, start.f, length.f)
}

// Length renders the string length.
func (o StringOps) Length() Expr[int32] {
	return apply[int32](o.d, OpLength, o.x.f)
}

// BoolOps exposes the boolean connectives for one expression.
type BoolOps struct {
	d *Dialect
	x Expr[bool]
}

// Bools returns the boolean operation set for x under d.
func (d *Dialect) Bools(x Expr[bool]) BoolOps {
	return BoolOps{d: d, x: x}
}

// And renders a conjunction.
func (o BoolOps) And(y Expr[bool]) Expr[bool] {
	return apply[bool](o.d, OpAnd, o.x.f, y.f)
}

// Or renders a disjunction.
func (o BoolOps) Or(y Expr[bool]) Expr[bool] {
	return apply[bool](o.d, OpOr, o.x.f, y.f)
}

// Not renders a negation.
func (o BoolOps) Not() Expr[bool] {
	return apply[bool](o.d, OpNot, o.x.f)
}

// BlobOps exposes the binary operations for one expression.
type BlobOps struct {
	d *Dialect
	x Expr[[]byte]
}

// Blobs returns the binary operation set for x under d.
func (d *Dialect) Blobs(x Expr[[]byte]) BlobOps {
	return BlobOps{d: d, x: x}
}

// Length renders the blob length in bytes.
func (o BlobOps) Length() Expr[int32] {
	return apply[int32](o.d, OpLength, o.x.f)
}

// NumericOps exposes arithmetic for one numeric expression.
// Obtain it with Numbers.
type NumericOps[T Numeric] struct {
	d *Dialect
	x Expr[T]
}

// Numbers returns the numeric operation set for x under d.
func Numbers[T Numeric](d *Dialect, x Expr[T]) NumericOps[T] {
	return NumericOps[T]{d: d, x: x}
}

// Add renders an addition.
func (o NumericOps[T]) Add(y Expr[T]) Expr[T] {
	return apply[T](o.d, OpAdd, o.x.f, y.f)
}

// Sub renders a subtraction.
func (o NumericOps[T]) Sub(y Expr[T]) Expr[T] {
	return apply[T](o.d, OpSub, o.x.f, y.f)
}

// Mul renders a multiplication.
func (o NumericOps[T]) Mul(y Expr[T]) Expr[T] {
	return apply[T](o.d, OpMul, o.x.f, y.f)
}

// Div renders a division.
func (o NumericOps[T]) Div(y Expr[T]) Expr[T] {
	return apply[T](o.d, OpDiv, o.x.f, y.f)
}

// Mod renders a modulo.
func (o NumericOps[T]) Mod(y Expr[T]) Expr[T] {
	return apply[T](o.d, OpMod, o.x.f, y.f)
}

// Neg renders a unary negation.
func (o NumericOps[T]) Neg() Expr[T] {
	return apply[T](o.d, OpNeg, o.x.f)
}

// BitOps exposes the bitwise operations for one integer expression.
// Obtain it with Bits.
type BitOps[T Integer] struct {
	d *Dialect
	x Expr[T]
}

// Bits returns the bitwise operation set for x under d.
func Bits[T Integer](d *Dialect, x Expr[T]) BitOps[T] {
	return BitOps[T]{d: d, x: x}
}

// And renders a bitwise AND.
func (o BitOps[T]) And(y Expr[T]) Expr[T] {
	return apply[T](o.d, OpBitAnd, o.x.f, y.f)
}

// Or renders a bitwise OR.
func (o BitOps[T]) Or(y Expr[T]) Expr[T] {
	return apply[T](o.d, OpBitOr, o.x.f, y.f)
}

// Xor renders a bitwise XOR.
func (o BitOps[T]) Xor(y Expr[T]) Expr[T] {
	return apply[T](o.d, OpBitXor, o.x.f, y.f)
}

// Not renders a bitwise complement.
func (o BitOps[T]) Not() Expr[T] {
	return apply[T](o.d, OpBitNot, o.x.f)
}

// CompareOps exposes the comparison operations for one expression.
// Obtain it with Compare.
type CompareOps[T any] struct {
	d *Dialect
	x Expr[T]
}

// Compare returns the comparison operation set for x under d.
func Compare[T any](d *Dialect, x Expr[T]) CompareOps[T] {
	return CompareOps[T]{d: d, x: x}
}

// EQ renders an equality comparison.
func (o CompareOps[T]) EQ(y Expr[T]) Expr[bool] {
	return apply[bool](o.d, OpEQ, o.x.f, y.f)
}

// NEQ renders an inequality comparison.
func (o CompareOps[T]) NEQ(y Expr[T]) Expr[bool] {
	return apply[bool](o.d, OpNEQ, o.x.f, y.f)
}

// GT renders a greater-than comparison.
func (o CompareOps[T]) GT(y Expr[T]) Expr[bool] {
	return apply[bool](o.d, OpGT, o.x.f, y.f)
}

// GTE renders a greater-or-equal comparison.
func (o CompareOps[T]) GTE(y Expr[T]) Expr[bool] {
	return apply[bool](o.d, OpGTE, o.x.f, y.f)
}

// LT renders a less-than comparison.
func (o CompareOps[T]) LT(y Expr[T]) Expr[bool] {
	return apply[bool](o.d, OpLT, o.x.f, y.f)
}

// LTE renders a less-or-equal comparison.
func (o CompareOps[T]) LTE(y Expr[T]) Expr[bool] {
	return apply[bool](o.d, OpLTE, o.x.f, y.f)
}

// In renders a membership test over the given values.
func (o CompareOps[T]) In(vs ...Expr[T]) Expr[bool] {
	operands := make([]frag, 0, len(vs)+1)
	operands = append(operands, o.x.f)
	for _, v := range vs {
		operands = append(operands, v.f)
	}
	return apply[bool](o.d, OpIn, operands...)
}

// Between renders an inclusive range test.
func (o CompareOps[T]) Between(lo, hi Expr[T]) Expr[bool] {
	return apply[bool](o.d, OpBetween, o.x.f, lo.f, hi.f)
}

// NullOps exposes the null-handling operations for one expression.
// Obtain it with Nullables.
type NullOps[T any] struct {
	d *Dialect
	x Expr[T]
}

// Nullables returns the null-handling operation set for x under d.
func Nullables[T any](d *Dialect, x Expr[T]) NullOps[T] {
	return NullOps[T]{d: d, x: x}
}

// IsNull renders a null test.
func (o NullOps[T]) IsNull() Expr[bool] {
	return apply[bool](o.d, OpIsNull, o.x.f)
}

// NotNull renders a not-null test.
func (o NullOps[T]) NotNull() Expr[bool] {
	return apply[bool](o.d, OpNotNull, o.x.f)
}

// Coalesce renders the expression with a fallback for NULL.
func (o NullOps[T]) Coalesce(fallback Expr[T]) Expr[T] {
	return apply[T](o.d, OpCoalesce, o.x.f, fallback.f)
}

// AggOps exposes the aggregate functions for one expression.
// Obtain it with Aggregates.
type AggOps[T any] struct {
	d *Dialect
	x Expr[T]
}

// Aggregates returns the aggregate operation set for x under d.
func Aggregates[T any](d *Dialect, x Expr[T]) AggOps[T] {
	return AggOps[T]{d: d, x: x}
}

// Count renders COUNT over the expression.
func (o AggOps[T]) Count() Expr[int64] {
	return apply[int64](o.d, OpCount, o.x.f)
}

// Sum renders SUM over the expression.
func (o AggOps[T]) Sum() Expr[T] {
	return apply[T](o.d, OpSum, o.x.f)
}

// Avg renders AVG over the expression.
func (o AggOps[T]) Avg() Expr[float64] {
	return apply[float64](o.d, OpAvg, o.x.f)
}

// Min renders MIN over the expression.
func (o AggOps[T]) Min() Expr[T] {
	return apply[T](o.d, OpMin, o.x.f)
}

// Max renders MAX over the expression.
func (o AggOps[T]) Max() Expr[T] {
	return apply[T](o.d, OpMax, o.x.f)
}
