// Package services contains stateless domain services that implement
// business operations spanning a single aggregate but requiring logic that
// does not belong on the aggregate itself, such as rendering a mission
// order into its printable document form.
package services
