package auth

// FlowError is a failure in the authorization-code flow. Exactly one of
// Status and RedirectURL is set: validation failures answer the request
// directly, upstream failures send the browser to an error destination.
// Message is safe for the client; Err carries provider detail for logs only.
type FlowError struct {
	Status      int
	RedirectURL string
	Message     string
	Err         error
}

func (e *FlowError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *FlowError) Unwrap() error {
	return e.Err
}
