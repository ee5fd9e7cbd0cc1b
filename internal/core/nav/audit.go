package nav

import "github.com/colonyops/agendanav/internal/core/agenda"

// Fault is a resolution that could not complete because its chain loops.
type Fault struct {
	Key        string    `json:"key"`
	Dir        Direction `json:"dir"`
	Mode       Mode      `json:"mode"`
	MeetingDay bool      `json:"meeting_day"`
	Err        error     `json:"-"`
}

// Audit resolves every item in both directions under every mode, with and
// without meeting day, and returns the resolutions that faulted.
func Audit(idx *agenda.Index, externalPrefix string) []Fault {
	var faults []Fault
	for _, key := range idx.Keys() {
		item, _ := idx.Get(key)
		for _, mode := range Modes() {
			for _, meetingDay := range []bool{false, true} {
				for _, dir := range []Direction{Prev, Next} {
					opts := Options{Mode: mode, MeetingDay: meetingDay, ExternalPrefix: externalPrefix}
					if _, err := ResolveWith(item, dir, opts, idx); err != nil {
						faults = append(faults, Fault{Key: key, Dir: dir, Mode: mode, MeetingDay: meetingDay, Err: err})
					}
				}
			}
		}
	}
	return faults
}
