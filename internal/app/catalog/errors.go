package catalog

import "fmt"

// UnknownTriggerError indicates typed text that matches no catalog key.
type UnknownTriggerError struct {
	Trigger string
}

func (e *UnknownTriggerError) Error() string {
	return fmt.Sprintf("no media mapped to trigger %q", e.Trigger)
}

// TrackNotFoundError indicates an on-demand lookup that resolved no
// matching title.
type TrackNotFoundError struct {
	TrackName string
}

func (e *TrackNotFoundError) Error() string {
	return fmt.Sprintf("track %q not found in on-demand listing", e.TrackName)
}
