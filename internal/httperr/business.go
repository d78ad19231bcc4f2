package httperr

import "errors"

// BusinessError is a rule violation raised below the HTTP layer, such as a
// status change the waitlist lifecycle does not allow. Handlers map the code
// to a response; it never carries display copy.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// IsBusiness reports whether err is a BusinessError carrying code.
func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
