// Package catalogs provides component indexes embedded at build time.
package catalogs

import _ "embed"

// SmartHRPath is the conventional on-disk location of the SmartHR UI index,
// relative to the project root.
const SmartHRPath = "catalogs/smarthr/components.json"

// SmartHRJSON is a snapshot of the SmartHR UI index, used by serve when no
// index has been built locally.
//
//go:embed smarthr/components.json
var SmartHRJSON []byte
