package errors

import "errors"

// Conflict(field,value) -> AlreadyExists.
func Conflict(field, value string) ErrorResponse {
	return AlreadyExists().WithReason("conflict").WithDetail(field, value)
}

// Precondition(reason, details) -> FailedPrecondition.
func Precondition(reason string, details map[string]string) ErrorResponse {
	return FailedPrecondition().WithReason(reason).WithDetails(details)
}

// ToErrorResponse unwraps err down to an ErrorResponse.
// Anything else becomes Internal with the original text as message.
func ToErrorResponse(err error) ErrorResponse {
	if err == nil {
		return Internal().WithReason("unexpected_error")
	}

	var e ErrorResponse
	if errors.As(err, &e) {
		return e
	}

	var ep *ErrorResponse
	if errors.As(err, &ep) && ep != nil {
		return *ep
	}

	return Internal().WithReason("unexpected_error").WithMessage(err.Error())
}

func IsValidation(err error) bool { return errors.Is(err, InvalidArgument().WithReason("")) }
func IsDuplicate(err error) bool  { return errors.Is(err, AlreadyExists().WithReason("")) }
func IsNotFound(err error) bool   { return errors.Is(err, NotFound().WithReason("")) }
