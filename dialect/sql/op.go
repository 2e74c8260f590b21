package sql

import (
	"strconv"
	"strings"
)

// Op identifies a renderable operation whose SQL form may vary between
// database families. Dialects map every Op to a RenderFunc; variants
// substitute individual entries and inherit the rest.
type Op int

const (
	// String operations.
	OpConcat Op = iota
	OpLike
	OpGlob
	OpIndexOf
	OpLower
	OpUpper
	OpLTrim
	OpRTrim
	OpSubstr
	OpLength
	// Numeric operations.
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpNeg
	OpBitAnd
	OpBitOr
	OpBitXor
	OpBitNot
	// Boolean operations.
	OpAnd
	OpOr
	OpNot
	// Comparisons.
	OpEQ
	OpNEQ
	OpGT
	OpGTE
	OpLT
	OpLTE
	OpIn
	OpBetween
	// Null handling.
	OpIsNull
	OpNotNull
	OpCoalesce
	// Aggregates.
	OpCount
	OpSum
	OpAvg
	OpMin
	OpMax
	numOps
)

var opNames = [...]string{
	OpConcat:   "Concat",
	OpLike:     "Like",
	OpGlob:     "Glob",
	OpIndexOf:  "IndexOf",
	OpLower:    "Lower",
	OpUpper:    "Upper",
	OpLTrim:    "LTrim",
	OpRTrim:    "RTrim",
	OpSubstr:   "Substr",
	OpLength:   "Length",
	OpAdd:      "Add",
	OpSub:      "Sub",
	OpMul:      "Mul",
	OpDiv:      "Div",
	OpMod:      "Mod",
	OpNeg:      "Neg",
	OpBitAnd:   "BitAnd",
	OpBitOr:    "BitOr",
	OpBitXor:   "BitXor",
	OpBitNot:   "BitNot",
	OpAnd:      "And",
	OpOr:       "Or",
	OpNot:      "Not",
	OpEQ:       "EQ",
	OpNEQ:      "NEQ",
	OpGT:       "GT",
	OpGTE:      "GTE",
	OpLT:       "LT",
	OpLTE:      "LTE",
	OpIn:       "In",
	OpBetween:  "Between",
	OpIsNull:   "IsNull",
	OpNotNull:  "NotNull",
	OpCoalesce: "Coalesce",
	OpCount:    "Count",
	OpSum:      "Sum",
	OpAvg:      "Avg",
	OpMin:      "Min",
	OpMax:      "Max",
}

// String returns the operation name.
func (o Op) String() string {
	if o < 0 || o >= numOps {
		return "Op(" + strconv.Itoa(int(o)) + ")"
	}
	return opNames[o]
}

// RenderFunc assembles the SQL form of one operation from the fragments of
// its operands. Rendering is purely compositional: it concatenates text and
// collects bound values in textual order, nothing else.
type RenderFunc func(operands ...frag) frag

// pattern returns a RenderFunc substituting {0}, {1}, ... slots with the
// corresponding operand. Operand arguments follow the textual order of the
// slots, so patterns may reorder operands freely.
func pattern(p string) RenderFunc {
	return func(operands ...frag) frag {
		var (
			sb   strings.Builder
			args []any
		)
		for i := 0; i < len(p); {
			if p[i] != '{' {
				sb.WriteByte(p[i])
				i++
				continue
			}
			j := strings.IndexByte(p[i:], '}')
			n, err := strconv.Atoi(p[i+1 : i+j])
			if err != nil || n < 0 || n >= len(operands) {
				return frag{err: &renderError{pattern: p, operands: len(operands)}}
			}
			sb.WriteString(operands[n].sql)
			args = append(args, operands[n].args...)
			i += j + 1
		}
		return frag{sql: sb.String(), args: args}
	}
}

// infix renders "(a OP b)" keeping the operand order.
func infix(op string) RenderFunc {
	return func(operands ...frag) frag {
		var (
			sb   strings.Builder
			args []any
		)
		sb.WriteByte('(')
		for i, o := range operands {
			if i > 0 {
				sb.WriteByte(' ')
				sb.WriteString(op)
				sb.WriteByte(' ')
			}
			sb.WriteString(o.sql)
			args = append(args, o.args...)
		}
		sb.WriteByte(')')
		return frag{sql: sb.String(), args: args}
	}
}

// call renders "NAME(a, b, ...)" keeping the operand order.
func call(name string) RenderFunc {
	return func(operands ...frag) frag {
		var (
			sb   strings.Builder
			args []any
		)
		sb.WriteString(name)
		sb.WriteByte('(')
		for i, o := range operands {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(o.sql)
			args = append(args, o.args...)
		}
		sb.WriteByte(')')
		return frag{sql: sb.String(), args: args}
	}
}

// prefix renders "OP(a)" for unary prefix forms.
func prefix(op string) RenderFunc {
	return func(operands ...frag) frag {
		o := operands[0]
		return frag{sql: op + "(" + o.sql + ")", args: o.args}
	}
}

// renderIn renders "(x IN (v1, v2, ...))"; the first operand is the needle.
func renderIn(operands ...frag) frag {
	var (
		sb   strings.Builder
		args []any
	)
	sb.WriteByte('(')
	sb.WriteString(operands[0].sql)
	args = append(args, operands[0].args...)
	sb.WriteString(" IN (")
	for i, o := range operands[1:] {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(o.sql)
		args = append(args, o.args...)
	}
	sb.WriteString("))")
	return frag{sql: sb.String(), args: args}
}

// defaultOps is the complete ANSI-flavored operation table every base
// dialect starts from.
func defaultOps() map[Op]RenderFunc {
	return map[Op]RenderFunc{
		OpConcat:   infix("||"),
		OpLike:     infix("LIKE"),
		OpGlob:     infix("GLOB"),
		OpIndexOf:  pattern("POSITION({1} IN {0})"),
		OpLower:    call("LOWER"),
		OpUpper:    call("UPPER"),
		OpLTrim:    pattern("TRIM(LEADING {1} FROM {0})"),
		OpRTrim:    pattern("TRIM(TRAILING {1} FROM {0})"),
		OpSubstr:   call("SUBSTR"),
		OpLength:   call("LENGTH"),
		OpAdd:      infix("+"),
		OpSub:      infix("-"),
		OpMul:      infix("*"),
		OpDiv:      infix("/"),
		OpMod:      infix("%"),
		OpNeg:      prefix("-"),
		OpBitAnd:   infix("&"),
		OpBitOr:    infix("|"),
		OpBitXor:   infix("^"),
		OpBitNot:   prefix("~"),
		OpAnd:      infix("AND"),
		OpOr:       infix("OR"),
		OpNot:      prefix("NOT "),
		OpEQ:       infix("="),
		OpNEQ:      infix("<>"),
		OpGT:       infix(">"),
		OpGTE:      infix(">="),
		OpLT:       infix("<"),
		OpLTE:      infix("<="),
		OpIn:       renderIn,
		OpBetween:  pattern("({0} BETWEEN {1} AND {2})"),
		OpIsNull:   pattern("({0} IS NULL)"),
		OpNotNull:  pattern("({0} IS NOT NULL)"),
		OpCoalesce: call("COALESCE"),
		OpCount:    call("COUNT"),
		OpSum:      call("SUM"),
		OpAvg:      call("AVG"),
		OpMin:      call("MIN"),
		OpMax:      call("MAX"),
	}
}
