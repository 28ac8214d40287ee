package naming

import "errors"

var (
	// ErrInvalidArgument reports a caller contract violation: the node is not
	// a name where a name is required, has no parent where one is required,
	// or a declaration was passed where a reference is required.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupportedConstruct reports a syntactic position outside the closed
	// set of positions the classifier models. The wrapped message names the
	// offending parent kind and source position so the gap can be closed by
	// extending the rule tables.
	ErrUnsupportedConstruct = errors.New("unsupported construct")

	// ErrNotImplemented reports that phase-2 reclassification was required
	// but no Resolver was supplied. The syntactic position itself is
	// recognized; only the semantic disambiguation is missing.
	ErrNotImplemented = errors.New("not implemented")
)
