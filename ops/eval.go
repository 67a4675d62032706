package ops

// EvalSigned evaluates the operator over signed arguments. It reports false
// when the operator is not closed over signed values, when the argument
// count is rejected by the registry, or when the computation would trap
// (division or modulus by zero, negative exponent).
func (op Functor) EvalSigned(args ...int32) (int32, bool) {
	if !op.IsValidArity(len(args)) {
		return 0, false
	}
	switch op {
	case Neg:
		return -args[0], true
	case BNot:
		return ^args[0], true
	case LNot:
		return b2i(args[0] == 0), true
	case Add:
		return args[0] + args[1], true
	case Sub:
		return args[0] - args[1], true
	case Mul:
		return args[0] * args[1], true
	case Div:
		if args[1] == 0 {
			return 0, false
		}
		return args[0] / args[1], true
	case Mod:
		if args[1] == 0 {
			return 0, false
		}
		return args[0] % args[1], true
	case Exp:
		return powSigned(args[0], args[1])
	case BAnd:
		return args[0] & args[1], true
	case BOr:
		return args[0] | args[1], true
	case BXor:
		return args[0] ^ args[1], true
	case LAnd:
		return b2i(args[0] != 0 && args[1] != 0), true
	case LOr:
		return b2i(args[0] != 0 || args[1] != 0), true
	case Max:
		return foldSigned(args, func(a, b int32) int32 {
			if a > b {
				return a
			}
			return b
		}), true
	case Min:
		return foldSigned(args, func(a, b int32) int32 {
			if a < b {
				return a
			}
			return b
		}), true
	}
	return 0, false
}

func powSigned(base, exp int32) (int32, bool) {
	if exp < 0 {
		return 0, false
	}
	var res int32 = 1
	for ; exp > 0; exp >>= 1 {
		if exp&1 == 1 {
			res *= base
		}
		base *= base
	}
	return res, true
}

func foldSigned(xs []int32, fn func(a, b int32) int32) int32 {
	res := xs[0]
	for _, x := range xs[1:] {
		res = fn(res, x)
	}
	return res
}

func b2i(x bool) int32 {
	if x {
		return 1
	}
	return 0
}
