package employee

const MessageUserCreated = "User created successfully!"

// Outcome is the result of a creating call. A zero Kind means success.
type Outcome struct {
	Kind    ErrorKind
	Message string
	err     error
}

// Succeeded builds a successful outcome
func Succeeded(message string) Outcome {
	return Outcome{Kind: KindNone, Message: message}
}

// Failed builds a failed outcome whose message is the caller-facing text of err
func Failed(err error) Outcome {
	return Outcome{Kind: KindOf(err), Message: err.Error(), err: err}
}

func (o Outcome) Success() bool {
	return o.Kind == KindNone
}

// Err returns the sentinel behind a failed outcome, or nil on success.
func (o Outcome) Err() error {
	return o.err
}
