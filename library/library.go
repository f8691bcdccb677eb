// Package library registers the node libraries shipped with Pipedex. The
// analyze command imports it for its registration side effects; external
// node libraries can be cataloged instead by registering their own
// definitions and pointing the analyzer at their module root.
package library

import (
	// Each sub-library registers its node classes at init.
	_ "github.com/pipedex-io/pipedex/library/pandas"
	_ "github.com/pipedex-io/pipedex/library/sklearn"
	_ "github.com/pipedex-io/pipedex/library/spark"
)
