package calc

import (
	"errors"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/VpkDevs/Tax-Filing-Tool/finance"
)

// denylist guards against code-execution escape attempts before any
// parsing happens. The grammar itself cannot express these, but rejecting
// them up front gives a clearer error than a parse failure.
var denylist = []string{"import", "exec", "eval", "compile", "open", "__"}

// Evaluator evaluates expressions against the catalogue. The random source
// feeds Monte Carlo simulation and is injectable for deterministic tests.
type Evaluator struct {
	rng *rand.Rand
}

// New returns an Evaluator with a time-seeded random source.
func New() *Evaluator {
	return NewWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand returns an Evaluator using the given random source.
func NewWithRand(rng *rand.Rand) *Evaluator {
	return &Evaluator{rng: rng}
}

// Evaluate parses and evaluates a single expression, returning a float64,
// bool, []any, or map[string]any. Failures are always *Error values
// classified per the taxonomy.
func (ev *Evaluator) Evaluate(expression string) (any, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, errValidation("Expression is required")
	}

	for _, keyword := range denylist {
		if strings.Contains(expression, keyword) {
			return nil, errValidation("Expression contains unsafe operations")
		}
	}

	root, err := parse(expression)
	if err != nil {
		return nil, asCalcError(err)
	}

	result, err := ev.evalNode(root)
	if err != nil {
		return nil, asCalcError(err)
	}
	return result, nil
}

// memoryOps are calculator-memory pseudo-operations accepted as bare
// expressions. The memory cell itself is client-held and travels with the
// request; nothing here is process-global.
var memoryOps = map[string]bool{"MC": true, "MR": true, "M+": true, "M-": true}

// IsMemoryOp reports whether the expression is a memory pseudo-operation.
func IsMemoryOp(expression string) bool {
	return memoryOps[strings.TrimSpace(expression)]
}

// ApplyMemoryOp executes a memory pseudo-operation against the given cell
// value and returns the displayed result (the cell as an integer string)
// plus the updated cell.
func ApplyMemoryOp(expression string, memory float64) (string, float64) {
	if strings.TrimSpace(expression) == "MC" {
		return "0", 0
	}
	return strconv.Itoa(int(memory)), memory
}

func (ev *Evaluator) evalNode(n node) (any, error) {
	switch n := n.(type) {
	case numberNode:
		return float64(n), nil
	case stringNode:
		return string(n), nil
	case boolNode:
		return bool(n), nil
	case noneNode:
		return nil, nil
	case nameNode:
		return ev.evalName(string(n))
	case unaryNode:
		return ev.evalUnary(n)
	case binaryNode:
		return ev.evalBinary(n)
	case callNode:
		return ev.evalCall(n)
	case listNode:
		elems := make([]any, len(n.elems))
		for i, e := range n.elems {
			v, err := ev.evalNode(e)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return elems, nil
	case dictNode:
		m := make(map[string]any, len(n.keys))
		for i := range n.keys {
			k, err := ev.evalNode(n.keys[i])
			if err != nil {
				return nil, err
			}
			key, ok := k.(string)
			if !ok {
				return nil, errGeneral("dict keys must be strings")
			}
			v, err := ev.evalNode(n.values[i])
			if err != nil {
				return nil, err
			}
			m[key] = v
		}
		return m, nil
	}
	return nil, errGeneral("unsupported expression")
}

func (ev *Evaluator) evalName(name string) (any, error) {
	e, ok := catalog[name]
	if !ok {
		return nil, errGeneral("name '%s' is not defined", name)
	}
	if e.constant == nil {
		return nil, errGeneral("'%s' is a function; call it with arguments", name)
	}
	return *e.constant, nil
}

func (ev *Evaluator) evalUnary(n unaryNode) (any, error) {
	v, err := ev.evalNode(n.operand)
	if err != nil {
		return nil, err
	}
	f, ok := v.(float64)
	if !ok {
		return nil, errGeneral("unsupported operand type for unary %s", n.op)
	}
	if n.op == "-" {
		return -f, nil
	}
	return f, nil
}

func (ev *Evaluator) evalBinary(n binaryNode) (any, error) {
	lv, err := ev.evalNode(n.left)
	if err != nil {
		return nil, err
	}
	rv, err := ev.evalNode(n.right)
	if err != nil {
		return nil, err
	}

	a, aok := lv.(float64)
	b, bok := rv.(float64)
	if !aok || !bok {
		return nil, errGeneral("unsupported operand type(s) for %s", n.op)
	}

	var result float64
	switch n.op {
	case "+":
		result = a + b
	case "-":
		result = a - b
	case "*":
		result = a * b
	case "/":
		if b == 0 {
			return nil, errDivisionByZero()
		}
		result = a / b
	case "//":
		if b == 0 {
			return nil, errDivisionByZero()
		}
		result = math.Floor(a / b)
	case "%":
		if b == 0 {
			return nil, errDivisionByZero()
		}
		// remainder takes the divisor's sign, consistent with // flooring
		result = math.Mod(a, b)
		if result != 0 && (result < 0) != (b < 0) {
			result += b
		}
	case "**":
		result = math.Pow(a, b)
	default:
		return nil, errGeneral("unsupported operator %s", n.op)
	}

	if math.IsInf(result, 0) {
		return nil, errOverflow()
	}
	if math.IsNaN(result) {
		return nil, errValidation("math domain error")
	}
	return result, nil
}

func (ev *Evaluator) evalCall(n callNode) (any, error) {
	e, ok := catalog[n.name]
	if !ok {
		return nil, errGeneral("name '%s' is not defined", n.name)
	}
	if e.constant != nil {
		return nil, errGeneral("'%s' is not callable", n.name)
	}
	if len(n.args) < e.min || len(n.args) > e.max {
		if e.min == e.max {
			return nil, errGeneral("%s() takes %d arguments but %d were given", n.name, e.min, len(n.args))
		}
		return nil, errGeneral("%s() takes %d to %d arguments but %d were given", n.name, e.min, e.max, len(n.args))
	}

	args := make([]any, len(n.args))
	for i, arg := range n.args {
		v, err := ev.evalNode(arg)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	result, err := e.fn(ev, args)
	if err != nil {
		return nil, asCalcError(err)
	}

	if f, ok := result.(float64); ok {
		if math.IsInf(f, 0) {
			return nil, errOverflow()
		}
		if math.IsNaN(f) {
			return nil, errValidation("math domain error")
		}
	}
	return result, nil
}

// asCalcError maps any error into the taxonomy: *Error values pass
// through, finance domain violations become validation errors, everything
// else is general.
func asCalcError(err error) *Error {
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr
	}
	var verr *finance.ValidationError
	if errors.As(err, &verr) {
		return errValidation("%s", verr.Error())
	}
	return errGeneral("%s", err.Error())
}
