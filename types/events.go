package types

import (
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	uuid "github.com/google/uuid"
)

// ArtifactEventData is the payload of every artifact lifecycle event
type ArtifactEventData struct {
	ArtifactID string        `json:"artifactId,omitempty"`
	State      ArtifactState `json:"state"`
	Zone       string        `json:"zone,omitempty"`
	Size       int64         `json:"size,omitempty"`
	Error      string        `json:"error,omitempty"`
	Removed    int           `json:"removed,omitempty"`
}

// NewArtifactEvent creates a CloudEvent describing an artifact state change.
// The artifact ID, when known, becomes the event subject.
func NewArtifactEvent(eventType, source string, data ArtifactEventData) cloudevents.Event {
	event := cloudevents.NewEvent()
	event.SetID(uuid.New().String())
	event.SetType(eventType)
	event.SetSource(source)
	event.SetTime(time.Now())
	if data.ArtifactID != "" {
		event.SetSubject(data.ArtifactID)
	}
	_ = event.SetData(cloudevents.ApplicationJSON, data)

	return event
}

// NewArtifactReadyEvent creates the event published after a successful transformation
func NewArtifactReadyEvent(source, artifactID string, size int64) cloudevents.Event {
	return NewArtifactEvent(EventArtifactReady, source, ArtifactEventData{
		ArtifactID: artifactID,
		State:      ArtifactStateReady,
		Zone:       "outbound",
		Size:       size,
	})
}

// NewArtifactFailedEvent creates the event published after a failed transformation
func NewArtifactFailedEvent(source, artifactID, reason string) cloudevents.Event {
	return NewArtifactEvent(EventArtifactFailed, source, ArtifactEventData{
		ArtifactID: artifactID,
		State:      ArtifactStateFailed,
		Error:      reason,
	})
}

// NewArtifactsExpiredEvent creates the sweep summary event for one zone
func NewArtifactsExpiredEvent(source, zone string, removed int) cloudevents.Event {
	return NewArtifactEvent(EventArtifactExpired, source, ArtifactEventData{
		State:   ArtifactStateExpired,
		Zone:    zone,
		Removed: removed,
	})
}
