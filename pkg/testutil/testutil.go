package testutil

// ErrorPanicked calls fn, reporting whether it panicked rather than
// returning.
func ErrorPanicked(fn func() error) (err error, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			panicked = true
		}
	}()

	return fn(), false
}
