// Package services provides domain services that operate across aggregates.
//
// PricingService combines tariff rates, route distances, and shipment
// parameters into itemized cost quotes.
package services
