package domain

// Answer is the outcome of a knowledge lookup. Failures are absorbed:
// a collaborator that breaks still produces a sendable Text, with Err
// describing the failure and AutoResolved forced to false.
type Answer struct {
	// Text is the reply to send to the user.
	Text string `json:"text"`
	// AutoResolved reports whether the answer resolved the question
	// without needing a human. False when the model deferred to support
	// or when generation failed.
	AutoResolved bool `json:"auto_resolved"`
	// Model names the backend that produced the answer.
	Model string `json:"model,omitempty"`
	// Err describes a generation failure, empty on success.
	Err string `json:"error,omitempty"`
}
