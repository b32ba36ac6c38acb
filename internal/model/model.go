// Package model holds the domain types and request payloads shared by the
// handler, service and repository layers. Each domain lives in its own
// subpackage.
package model

// Empty is the payload of routes that take no input.
type Empty struct{}

func (Empty) Validate() error {
	return nil
}
