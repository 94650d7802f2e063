// Package tariff contains the pricing tier aggregate. A tariff defines the
// rates the pricing service combines into a cost quote and constrains which
// shipments (by weight and cargo type) may use it.
package tariff
