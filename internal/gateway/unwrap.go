package gateway

import (
	"encoding/json"

	"reelops/pkg/apierrors"
)

// fallbackErrorMessage is surfaced when a failed response carried no
// server-provided message.
const fallbackErrorMessage = "something went wrong"

// Unwrap applies the service-function contract to a gateway result:
//
//   - a nil result (Access Denied short-circuit) resolves to no result
//   - a cancelled call resolves to no result, never an error
//   - any other failure becomes an error carrying the server message when
//     available, else a generic fallback
//   - on success the body is unmarshalled into out (when out is non-nil)
//
// ok reports whether out was populated.
func Unwrap(res *Result, out any) (ok bool, err error) {
	if res == nil {
		return false, nil
	}
	if res.Err != nil {
		if apierrors.IsCanceled(res.Err) {
			return false, nil
		}
		return false, apierrors.Wrap(res.Err, apierrors.CodeRequestFailed,
			apierrors.Message(res.Err, fallbackErrorMessage))
	}
	if out == nil || len(res.Data) == 0 {
		return true, nil
	}
	if err := json.Unmarshal(res.Data, out); err != nil {
		return false, apierrors.Wrap(err, apierrors.CodeRequestFailed, fallbackErrorMessage)
	}
	return true, nil
}
