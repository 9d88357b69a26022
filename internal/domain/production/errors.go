package production

import "errors"

var ErrNotFound = errors.New("production entry not found")
