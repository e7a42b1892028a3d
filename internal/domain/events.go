package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventBookmarkAdded   EventType = "BookmarkAdded"
	EventBookmarkRemoved EventType = "BookmarkRemoved"
	EventRegionSelected  EventType = "RegionSelected"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// BookmarkAddedEvent is emitted after a region is added to the bookmark store
type BookmarkAddedEvent struct {
	Region Region
}

func (e BookmarkAddedEvent) Type() EventType { return EventBookmarkAdded }

// BookmarkRemovedEvent is emitted after a region is removed from the bookmark store
type BookmarkRemovedEvent struct {
	Key string
}

func (e BookmarkRemovedEvent) Type() EventType { return EventBookmarkRemoved }

// RegionSelectedEvent is emitted when the user picks a region in the region list
type RegionSelectedEvent struct {
	Region Region
}

func (e RegionSelectedEvent) Type() EventType { return EventRegionSelected }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
