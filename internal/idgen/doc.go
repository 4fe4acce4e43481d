// Package idgen wraps the UUID generator so that run and approval request
// identifiers can be stubbed in tests. Callers treat identifiers as opaque
// strings.
package idgen
