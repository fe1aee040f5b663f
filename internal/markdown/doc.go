// Package markdown rewrites vault-flavoured markdown extensions into a
// form the target snippet renderer understands.
//
// The package is organised around a closed, ordered set of variants,
// one per syntax extension category. Order is part of the contract:
// converters run from outer/structural (links, tags) to inner/content-
// bearing (plugin blocks, comments) so an earlier rewrite cannot
// destroy a structural marker a later converter needs, while a pattern
// that only appears as a byproduct of an earlier rewrite is still
// caught because detection re-evaluates the progressively rewritten
// content.
//
// Every converter is idempotent under re-application with unchanged
// options: its rewritten form does not satisfy its own detector.
package markdown
