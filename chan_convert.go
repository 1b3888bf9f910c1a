package pcm

// Generic dispatch over the four channel encodings.
//
// Go generics cannot express per-type operator methods in a constraint, so
// arithmetic and conversion on a type parameter go through the small type
// switches below. Each switch is exhaustive over the Channel constraint;
// instantiation with any type in the constraint hits exactly one arm.

// FromFloat64 converts an amplitude in [-1, 1] into encoding C.
// Input outside [-1, 1] is clamped first.
func FromFloat64[C Channel](f float64) C {
	var c C
	switch p := any(&c).(type) {
	case *Ch16:
		*p = Ch16FromFloat(f)
	case *Ch24:
		*p = Ch24FromFloat(f)
	case *Ch32:
		*p = Ch32FromFloat(f)
	case *Ch64:
		*p = Ch64FromFloat(f)
	}
	return c
}

// ToChannel converts a sample between encodings using the exact pairwise
// conversion rules (bit replication between the integer widths, half-step
// scaling to and from float). Converting to an encoding with equal or more
// precision and back is lossless.
func ToChannel[D, S Channel](c S) D {
	var d D
	switch s := any(c).(type) {
	case Ch16:
		switch p := any(&d).(type) {
		case *Ch16:
			*p = s
		case *Ch24:
			*p = s.Ch24()
		case *Ch32:
			*p = s.Ch32()
		case *Ch64:
			*p = s.Ch64()
		}
	case Ch24:
		switch p := any(&d).(type) {
		case *Ch16:
			*p = s.Ch16()
		case *Ch24:
			*p = s
		case *Ch32:
			*p = s.Ch32()
		case *Ch64:
			*p = s.Ch64()
		}
	case Ch32:
		switch p := any(&d).(type) {
		case *Ch16:
			*p = s.Ch16()
		case *Ch24:
			*p = s.Ch24()
		case *Ch32:
			*p = s
		case *Ch64:
			*p = s.Ch64()
		}
	case Ch64:
		switch p := any(&d).(type) {
		case *Ch16:
			*p = s.Ch16()
		case *Ch24:
			*p = s.Ch24()
		case *Ch32:
			*p = s.Ch32()
		case *Ch64:
			*p = s
		}
	}
	return d
}

func chanAdd[C Channel](a, b C) C {
	switch x := any(a).(type) {
	case Ch16:
		return any(x.Add(any(b).(Ch16))).(C)
	case Ch24:
		return any(x.Add(any(b).(Ch24))).(C)
	case Ch32:
		return any(x.Add(any(b).(Ch32))).(C)
	case Ch64:
		return any(x.Add(any(b).(Ch64))).(C)
	}
	return a
}

func chanSub[C Channel](a, b C) C {
	switch x := any(a).(type) {
	case Ch16:
		return any(x.Sub(any(b).(Ch16))).(C)
	case Ch24:
		return any(x.Sub(any(b).(Ch24))).(C)
	case Ch32:
		return any(x.Sub(any(b).(Ch32))).(C)
	case Ch64:
		return any(x.Sub(any(b).(Ch64))).(C)
	}
	return a
}

func chanMul[C Channel](a, b C) C {
	switch x := any(a).(type) {
	case Ch16:
		return any(x.Mul(any(b).(Ch16))).(C)
	case Ch24:
		return any(x.Mul(any(b).(Ch24))).(C)
	case Ch32:
		return any(x.Mul(any(b).(Ch32))).(C)
	case Ch64:
		return any(x.Mul(any(b).(Ch64))).(C)
	}
	return a
}

func chanNeg[C Channel](a C) C {
	switch x := any(a).(type) {
	case Ch16:
		return any(x.Neg()).(C)
	case Ch24:
		return any(x.Neg()).(C)
	case Ch32:
		return any(x.Neg()).(C)
	case Ch64:
		return any(x.Neg()).(C)
	}
	return a
}

func chanLerp[C Channel](a, b, t C) C {
	switch x := any(a).(type) {
	case Ch16:
		return any(x.Lerp(any(b).(Ch16), any(t).(Ch16))).(C)
	case Ch24:
		return any(x.Lerp(any(b).(Ch24), any(t).(Ch24))).(C)
	case Ch32:
		return any(x.Lerp(any(b).(Ch32), any(t).(Ch32))).(C)
	case Ch64:
		return any(x.Lerp(any(b).(Ch64), any(t).(Ch64))).(C)
	}
	return a
}
