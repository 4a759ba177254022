// Package metadata reads and updates the release version held in a project's
// metadata.json file.
//
// The document is kept as raw JSON. Fields are read with path queries and the
// version is updated in place, so fields this package does not know about keep
// their position and their literal encoding across a read-modify-write cycle.
package metadata
