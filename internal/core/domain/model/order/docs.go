// Package order contains the Order aggregate and its supporting value objects.
//
// Order is the central entity of the cargotrack domain: a single shipment
// request moving through a fixed status lifecycle
// (pending -> confirmed -> pickup -> in_transit -> delivered, with cancellation
// possible from any non-terminal state). Every status transition appends an
// entry to the order's immutable status history, which drives the public
// tracking timeline.
//
// The package follows the aggregate pattern: all state is private, all
// mutation goes through validated methods, and instances can only be created
// through NewOrder or rebuilt from persistence through RestoreOrder.
package order
