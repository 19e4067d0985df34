package cli

import "errors"

// ErrVerifyFailed indicates that --verify re-scored an alignment to a value
// other than the reported optimum.
var ErrVerifyFailed = errors.New("cli: re-scored alignment differs from the optimum")
