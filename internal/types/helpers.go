package types

func IsVoid(t Type) bool  { return t != nil && t.Kind() == VoidKind }
func IsBool(t Type) bool  { return t != nil && t.Kind() == BoolKind }
func IsInt(t Type) bool   { return t != nil && t.Kind() == IntKind }
func IsError(t Type) bool { return t == nil || t.Kind() == ErrorKind }

func IsFunction(t Type) bool  { return t != nil && t.Kind() == FunctionKind }
func IsReference(t Type) bool { return t != nil && t.Kind() == ReferenceKind }

// IsObject reports whether values of t can be stored in a variable.
func IsObject(t Type) bool { return IsBool(t) || IsInt(t) }

// Decay strips one reference level: the value type of an lvalue of type t.
func Decay(t Type) Type {
	if r, ok := t.(*ReferenceType); ok {
		return r.referent
	}
	return t
}

// AnyError reports whether one of ts is the error marker.
func AnyError(ts ...Type) bool {
	for _, t := range ts {
		if IsError(t) {
			return true
		}
	}
	return false
}
