// Package transient provides an expiring key/value store for session state.
//
// A reconciliation session lives for roughly an hour: the frozen identifier
// list, the selected mode and the optional date filter are all written here at
// session start and read back on every chunk request. Once the TTL elapses the
// session silently reverts to the uninitialized state, which callers treat as
// "nothing to do" rather than an error.
//
// The Store interface keeps the backing swappable; MemoryStore is the default
// single-process implementation. Entries expire lazily on read.
package transient
