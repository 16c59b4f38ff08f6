package timeline

import "errors"

// ErrNoRows blocks adding an event while the document has no rows.
var ErrNoRows = errors.New("no rows available to place an event")

// ErrInvalidDateRange rejects form submissions whose end date precedes
// the start date, or whose date strings cannot be parsed.
var ErrInvalidDateRange = errors.New("end date cannot be earlier than start date")
