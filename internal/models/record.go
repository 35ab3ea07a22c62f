package models

import (
	"strconv"
	"time"
)

// Record ID prefixes, one per request kind.
const (
	ComplaintIDPrefix       = "CMPT"
	EventPermissionIDPrefix = "EVNT"
	HealthCampIDPrefix      = "HCMP"
)

// StatusPending is the initial status of every submitted record.
const StatusPending = "Pending"

// NewRecordID builds the externally visible record ID: the kind prefix
// followed by the last six digits of the epoch-millisecond clock. Not
// globally unique on its own; the unique index on the ID column is the
// actual collision guard.
func NewRecordID(prefix string, now time.Time) string {
	millis := strconv.FormatInt(now.UnixMilli(), 10)
	return prefix + millis[len(millis)-6:]
}
