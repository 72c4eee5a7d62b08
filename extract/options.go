package extract

// Options controls what the extractor emits.
type Options struct {
	// BaseIRI is the IRI prefix for all minted node identifiers.
	BaseIRI string

	// IncludeImpls enables the impl block pass.
	IncludeImpls bool

	// IncludeAttributes reserves space for attribute facts; no extractor
	// consumes it yet.
	IncludeAttributes bool

	// ExtractErrorTypes enables error type edges for Result returns.
	ExtractErrorTypes bool

	// ExtractDerives enables derive literals on structs and enums.
	ExtractDerives bool
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		BaseIRI:           "http://rust.example",
		IncludeImpls:      true,
		IncludeAttributes: true,
		ExtractErrorTypes: true,
		ExtractDerives:    true,
	}
}
