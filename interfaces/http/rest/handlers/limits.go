package handlers

// ListingLimits supplies the page size cap for list endpoints. The config
// watcher implements it, so a changed overrides file takes effect on the
// next request. A non-positive limit means unbounded.
type ListingLimits interface {
	ListingPageSize() int
}
