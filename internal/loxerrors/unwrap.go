package loxerrors

// local interfaces to be used with errors.Unwrap() and errors.Join().
// errors packake does not define separate interfaces, relies on reflection instead.
type unwrapInterface interface {
	Unwrap() error
}

type unwrapJoinInterface interface {
	Unwrap() []error
}

// Flatten expands errors created by errors.Join into their leaves, in order.
// A nil error flattens to nil; any other error flattens to itself.
func Flatten(err error) []error {
	if err == nil {
		return nil
	}

	joined, ok := err.(unwrapJoinInterface)
	if !ok {
		return []error{err}
	}

	var out []error
	for _, e := range joined.Unwrap() {
		out = append(out, Flatten(e)...)
	}
	return out
}
