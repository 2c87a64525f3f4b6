/* errors.go
 * Contains the error sentinels for the store package. Callers classify store
 * failures with errors.Is against these values; the HTTP layer maps them to
 * status codes without leaking driver detail.
 * Authors: Karan Kamath
 */

package store

import "errors"

var (
	// ErrNotFound is returned when a contest lookup matches no document.
	ErrNotFound = errors.New("not found")

	// ErrInvalidIdentifier is returned for a malformed contest id, or for a
	// question id that cannot be used as a collection name.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrStorageUnavailable is returned when the storage engine cannot be
	// reached or a query against it fails.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
