package errs

// Fault is the panic payload for unrecoverable encoding failures: precondition
// violations such as an oversized key, an unknown encoder name, or a failed
// MustCheck.
//
// A Fault unwinds the current message build. Recover converts it back into an
// error at the top of the build; any other panic value is re-raised untouched.
type Fault struct {
	Err error
}

func (f *Fault) Error() string {
	return "fatal: " + f.Err.Error()
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// Abort panics with a Fault wrapping err.
func Abort(err error) {
	panic(&Fault{Err: err})
}

// Recover stores a recovered Fault into *errp. It must be called directly by a
// deferred function:
//
//	defer errs.Recover(&err)
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}

	f, ok := r.(*Fault)
	if !ok {
		panic(r)
	}
	*errp = f.Err
}
