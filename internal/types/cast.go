package types

import "fmt"

// CastTag names the conversion a CastRule requires internal/ir to insert as
// an implicit-cast node. "Identity" means no node is needed (same base,
// same kind); a same-base, different-kind identity is still flagged via
// KindUpgrade so a same-base cast node is inserted (spec.md §4.3: "Kind
// upgrade... insert a same-base kind-cast... regardless of direction").
type CastTag int

const (
	NoCast CastTag = iota
	KindUpgrade
	IntegerToReal
	IntegerToComplex
	IntegerToLogical
	RealToInteger
	RealToComplex
	ComplexToComplex
	CastError
)

func (c CastTag) String() string {
	switch c {
	case NoCast:
		return "NoCast"
	case KindUpgrade:
		return "KindUpgrade"
	case IntegerToReal:
		return "IntegerToReal"
	case IntegerToComplex:
		return "IntegerToComplex"
	case IntegerToLogical:
		return "IntegerToLogical"
	case RealToInteger:
		return "RealToInteger"
	case RealToComplex:
		return "RealToComplex"
	case ComplexToComplex:
		return "ComplexToComplex"
	default:
		return "CastError"
	}
}

// Mode selects how CastRule behaves: Binary lets it pick which of two
// operands to cast (spec.md §4.3's priority table); Assignment fixes the
// source and destination and only asks whether the conversion is legal.
type Mode int

const (
	Binary Mode = iota
	Assignment
)

// priority implements spec.md §4.3's "Priority for binary-mode candidate
// selection: Integer < Real < Complex (priorities 4, 5, 6); Character,
// Logical, Derived have priority −1 (no selection)."
func priority(b Base) int {
	switch b {
	case Integer:
		return 4
	case Real:
		return 5
	case Complex:
		return 6
	default:
		return -1
	}
}

// castTable is spec.md §4.3's row/col table, src (row) -> dst (col), in the
// same order the spec gives: Int, Real, Cpx, Chr, Log, Der. Class is
// treated identically to Derived for casting purposes (both are
// user-nominal aggregate types; spec.md doesn't distinguish them here).
var castTable = map[Base]map[Base]CastTag{
	Integer: {
		Integer: NoCast, Real: IntegerToReal, Complex: IntegerToComplex,
		Character: CastError, Logical: IntegerToLogical, Derived: CastError, Class: CastError,
	},
	Real: {
		Integer: RealToInteger, Real: NoCast, Complex: RealToComplex,
		Character: NoCast, Logical: NoCast, Derived: NoCast, Class: NoCast,
	},
	Complex: {
		Integer: NoCast, Real: NoCast, Complex: ComplexToComplex,
		Character: NoCast, Logical: NoCast, Derived: NoCast, Class: NoCast,
	},
	Character: {
		Integer: NoCast, Real: NoCast, Complex: NoCast,
		Character: NoCast, Logical: NoCast, Derived: NoCast, Class: NoCast,
	},
	Logical: {
		Integer: NoCast, Real: NoCast, Complex: NoCast,
		Character: NoCast, Logical: NoCast, Derived: NoCast, Class: NoCast,
	},
	Derived: {
		Integer: NoCast, Real: NoCast, Complex: NoCast,
		Character: NoCast, Logical: NoCast, Derived: NoCast, Class: NoCast,
	},
	Class: {
		Integer: NoCast, Real: NoCast, Complex: NoCast,
		Character: NoCast, Logical: NoCast, Derived: NoCast, Class: NoCast,
	},
}

// CastTypeError is returned by Resolve when the table cell is CastError (✗).
type CastTypeError struct {
	Src, Dst Type
}

func (e *CastTypeError) Error() string {
	return fmt.Sprintf("cannot convert %s to %s", e.Src.Describe(), e.Dst.Describe())
}

// Decision is the outcome of resolving a cast between two operands: which
// side (if either) needs a cast node, and with what tag.
type Decision struct {
	CastLeft  bool
	CastRight bool
	Tag       CastTag
	Result    Type // the common/destination type after casting
}

// normalizePointer implements the pointer normalisation of spec.md §4.3:
// when src is a pointer type and dst is not, src is replaced by its value
// type (the pointer flag is cleared) before the table lookup and kind
// comparison, so reading through a pointer yields its base. The operands
// keep their positions; they are not swapped.
func normalizePointer(src, dst Type) (Type, Type) {
	if src.IsPointer() && !dst.IsPointer() {
		return src.AsValue(), dst
	}
	return src, dst
}

// Resolve implements the cast-rule engine of spec.md §4.3 for two operand
// types under mode. In Assignment mode, left is the source and right is the
// destination, and Decision.CastLeft reports whether the source needs
// wrapping to reach the destination type; Decision.Result is always the
// destination type. In Binary mode, Resolve picks the lower-priority
// operand to cast toward the higher, per the priority table.
func Resolve(mode Mode, left, right Type) (Decision, error) {
	switch mode {
	case Assignment:
		src, dst := normalizePointer(left, right)
		tag := castTable[src.base][dst.base]
		if tag == CastError {
			return Decision{}, &CastTypeError{Src: left, Dst: right}
		}
		if tag == NoCast && src.base == dst.base && src.kind != dst.kind {
			tag = KindUpgrade
		}
		return Decision{CastLeft: tag != NoCast, Tag: tag, Result: right}, nil

	case Binary:
		a, b := normalizePointer(left, right)
		if a.base == b.base {
			if a.kind != b.kind {
				// Kind upgrade casts the lower kind toward the higher one;
				// ties cast the left operand by convention.
				if a.kind < b.kind {
					return Decision{CastLeft: true, Tag: KindUpgrade, Result: b}, nil
				}
				return Decision{CastRight: true, Tag: KindUpgrade, Result: a}, nil
			}
			return Decision{Tag: NoCast, Result: a}, nil
		}
		pa, pb := priority(a.base), priority(b.base)
		if pa < 0 || pb < 0 {
			// Neither side is numeric: only an exact base match unifies.
			return Decision{}, &CastTypeError{Src: left, Dst: right}
		}
		if pa < pb {
			tag := castTable[a.base][b.base]
			if tag == CastError {
				return Decision{}, &CastTypeError{Src: left, Dst: right}
			}
			return Decision{CastLeft: true, Tag: tag, Result: b}, nil
		}
		tag := castTable[b.base][a.base]
		if tag == CastError {
			return Decision{}, &CastTypeError{Src: left, Dst: right}
		}
		return Decision{CastRight: true, Tag: tag, Result: a}, nil
	}
	panic("types: unreachable Resolve mode")
}
