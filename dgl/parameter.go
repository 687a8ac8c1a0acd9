package dgl

import "fmt"

// ParamValue is the set of element types accepted by Parameter.
type ParamValue interface {
	int32 | float32
}

// IntegerParamValue is the set of element types accepted by
// ParameterInteger, which stores values without normalization.
type IntegerParamValue interface {
	int32 | uint32
}

// Parameterized is implemented by *Texture and *Sampler.
type Parameterized interface {
	setiv(pname Enum, v []int32)
	setfv(pname Enum, v []float32)
	setIiv(pname Enum, v []int32)
	setIuiv(pname Enum, v []uint32)
	getiv(pname Enum, out []int32)
	getfv(pname Enum, out []float32)
	getIiv(pname Enum, out []int32)
	getIuiv(pname Enum, out []uint32)
}

// Parameter sets pname on obj. The entry point is chosen by T.
func Parameter[T ParamValue](obj Parameterized, pname Enum, values ...T) {
	if len(values) == 0 {
		return
	}
	switch v := any(values).(type) {
	case []int32:
		obj.setiv(pname, v)
	case []float32:
		obj.setfv(pname, v)
	default:
		panic(fmt.Sprintf("dgl: no parameter entry point for %T", v))
	}
}

// ParameterInteger sets an integer parameter such as TextureBorderColor
// of an integer texture.
func ParameterInteger[T IntegerParamValue](obj Parameterized, pname Enum, values ...T) {
	if len(values) == 0 {
		return
	}
	switch v := any(values).(type) {
	case []int32:
		obj.setIiv(pname, v)
	case []uint32:
		obj.setIuiv(pname, v)
	default:
		panic(fmt.Sprintf("dgl: no parameter entry point for %T", v))
	}
}

// GetParameter reads n values of pname.
func GetParameter[T ParamValue](obj Parameterized, pname Enum, n int) []T {
	out := make([]T, n)
	switch v := any(out).(type) {
	case []int32:
		obj.getiv(pname, v)
	case []float32:
		obj.getfv(pname, v)
	default:
		panic(fmt.Sprintf("dgl: no parameter entry point for %T", v))
	}
	return out
}

// GetParameterInteger reads n unnormalized values of pname.
func GetParameterInteger[T IntegerParamValue](obj Parameterized, pname Enum, n int) []T {
	out := make([]T, n)
	switch v := any(out).(type) {
	case []int32:
		obj.getIiv(pname, v)
	case []uint32:
		obj.getIuiv(pname, v)
	default:
		panic(fmt.Sprintf("dgl: no parameter entry point for %T", v))
	}
	return out
}
