package redis

const (
	// KeyItinerary is the legacy slot name for the default itinerary,
	// kept byte-for-byte compatible with the storefront's browser-local
	// storage key.
	KeyItinerary = "itinerario"

	// KeyPrefixDestination is the prefix for cached destination keys
	KeyPrefixDestination = "brujula:destino:"
	// KeyAllDestinations is the key for the set of all cached destination IDs
	KeyAllDestinations = "brujula:destinos:all"
	// KeyContactInbox is the list of accepted contact submissions
	KeyContactInbox = "brujula:contacto"
)

// ItineraryKey returns the slot key for a session. The default (empty)
// session maps to the bare legacy key so data written by the browser
// rendition keeps working unchanged.
func ItineraryKey(session string) string {
	if session == "" {
		return KeyItinerary
	}
	return KeyItinerary + ":" + session
}

// DestinationKey returns the cache key for a destination by ID
func DestinationKey(id string) string {
	return KeyPrefixDestination + id
}

// AllDestinationsKey returns the key for the set of all cached destination IDs
func AllDestinationsKey() string {
	return KeyAllDestinations
}
