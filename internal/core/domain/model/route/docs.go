// Package route contains the delivery route aggregate: a directed city pair
// with a measured distance used by the pricing service.
package route
