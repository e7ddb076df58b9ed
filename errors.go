package compose

import "errors"

// ErrNoWidget is returned by lookups (GetOffset, GetWidgetAt, GetWidgetRegion)
// when the requested widget is not present in the current arrangement (for
// GetWidgetAt: when no arranged widget covers the point). It is
// a normal, expected outcome of a stale or speculative query, not a
// programming error, so callers are expected to check for it with
// errors.Is rather than treat it as fatal.
var ErrNoWidget = errors.New("compose: widget not in current arrangement")
