// Package emit renders the generated glue source: fixed boilerplate, the
// legacy direct-assignment function, boolean group constants, the unified
// lookup table, and the input content checksum.
package emit
