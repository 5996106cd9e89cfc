// Package guard provides the ConstructorGuard defensive pattern used by the
// domain model to guarantee that value objects and aggregates are only created
// through their constructor functions, never as zero values.
package guard
