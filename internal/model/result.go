package model

// Result is the uniform outcome of a mutating operation.
// Succeeded holds if and only if Errors is empty. Forbidden is a distinct
// state from failure: it carries neither payload nor error messages.
// Consumers must check Forbidden before Succeeded/Errors.
type Result struct {
	Errors    []string `json:"errors,omitempty"`
	Forbidden bool     `json:"-"`
}

func (r Result) Succeeded() bool { return len(r.Errors) == 0 }

func OkResult() Result { return Result{} }

func FailResult(errs ...string) Result { return Result{Errors: errs} }

func ForbiddenResult() Result { return Result{Forbidden: true} }

// PayloadResult carries a payload on success.
type PayloadResult[T any] struct {
	Result
	Payload T `json:"payload,omitempty"`
}

func OkPayload[T any](payload T) PayloadResult[T] {
	return PayloadResult[T]{Payload: payload}
}

func FailPayload[T any](errs ...string) PayloadResult[T] {
	return PayloadResult[T]{Result: FailResult(errs...)}
}

func ForbiddenPayload[T any]() PayloadResult[T] {
	return PayloadResult[T]{Result: ForbiddenResult()}
}
