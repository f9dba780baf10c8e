package nav

// Page is a type-safe identifier for one navigable screen. The set of
// pages is finite and fixed by the application's UI description;
// applications define their own constants using iota.
//
// Example:
//
//	const (
//	    PageHome nav.Page = iota
//	    PageCounter
//	    PageSettings
//	)
type Page int
