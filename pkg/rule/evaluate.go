package rule

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/guardcheck/pkg/argument"
)

const (
	reasonNoFailure  = "A failure was expected but none happened."
	reasonUnexpected = "A failure happened when none was expected. Details: "
)

// Evaluate judges the failure observed after passing InvalidValue for the
// parameter named paramName. It returns false with a reason on mismatch.
func (r Rule) Evaluate(paramName string, observed error) (bool, string) {
	switch r.kind {
	case KindSkip:
		return false, ""
	case KindNone:
		if observed == nil {
			return true, ""
		}
		return false, reasonUnexpected + observed.Error()
	}

	if observed == nil {
		return false, reasonNoFailure
	}

	if r.kind == KindNotNull {
		var nilErr *argument.NilError
		if !errors.As(observed, &nilErr) {
			return false, fmt.Sprintf("A nil-argument failure was expected however got: %v", observed)
		}
		if nilErr.ParamName() != paramName {
			return false, fmt.Sprintf("A nil-argument failure for the parameter '%s' was expected however the failure is for parameter '%s'", paramName, nilErr.ParamName())
		}
		return true, ""
	}

	var paramErr argument.ParamError
	if !errors.As(observed, &paramErr) {
		return false, fmt.Sprintf("An invalid-argument failure was expected however got: %v", observed)
	}
	if paramErr.ParamName() != paramName {
		return false, fmt.Sprintf("An invalid-argument failure for the parameter '%s' was expected however the failure is for parameter '%s'", paramName, paramErr.ParamName())
	}
	return true, ""
}
