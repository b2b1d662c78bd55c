// Package mlserr is the stable error vocabulary exposed to hosts.
//
// Every failure that leaves the identity or group services is an *Error
// carrying a Kind and a human-readable message. The mapping is lossy: the
// original cause is rendered into the message and then dropped, so hosts
// match on kind with errors.Is and never on backend error types.
package mlserr
