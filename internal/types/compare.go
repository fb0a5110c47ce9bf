package types

// Compare orders types canonically: by kind first, then by structure.
// It returns -1, 0 or +1.
func Compare(a, b Type) int {
	if a == b {
		return 0
	}
	if ka, kb := a.Kind(), b.Kind(); ka != kb {
		if ka < kb {
			return -1
		}
		return 1
	}

	switch x := a.(type) {
	case *IntType:
		return compareInt(x.Precision, b.(*IntType).Precision)
	case *FunctionType:
		y := b.(*FunctionType)
		if c := compareLists(x.params, y.params); c != 0 {
			return c
		}
		return Compare(x.ret, y.ret)
	case *ReferenceType:
		return Compare(x.referent, b.(*ReferenceType).referent)
	default:
		// void, bool and error have no structure
		return 0
	}
}

func compareLists(a, b []Type) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return compareInt(len(a), len(b))
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
