package utils

import (
	"fmt"
	"time"
)

// FormatIssueCode builds the human-readable issue code
// RP-YYMMDD-HHMMSS-NNNN from the allocation wall-clock time and the
// counter value. The sequence is zero-padded to 4 digits and widens
// naturally past 9999; uniqueness of the code rests on the counter,
// not on the timestamp.
func FormatIssueCode(now time.Time, seq int64) string {
	return fmt.Sprintf("RP-%s-%s-%04d", now.Format("060102"), now.Format("150405"), seq)
}
