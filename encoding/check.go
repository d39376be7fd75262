package encoding

import (
	"fmt"

	"github.com/arloliu/coapenc/errs"
	"github.com/arloliu/coapenc/tinycbor"
)

// CheckError reports a non-zero status returned by an encode primitive.
type CheckError struct {
	Status tinycbor.Status
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("%s: status %d (%s)", errs.ErrEncodeFailed, uint32(e.Status), e.Status)
}

func (e *CheckError) Unwrap() error {
	return errs.ErrEncodeFailed
}
