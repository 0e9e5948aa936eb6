package wishlist

import "errors"

var ErrNotFound = errors.New("wishlist entry not found")
