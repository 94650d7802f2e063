// Package orderrepo persists order aggregates and their status history.
// Orders map to the orders table; every history entry becomes a row in
// order_status_history. Both are written in the surrounding unit of work
// transaction, so a status change and its history row commit together.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/core/domain/model/order"
)

// OrderDTO is the database representation of an order aggregate.
type OrderDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number       string     `gorm:"uniqueIndex;size:32"`
	TrackingCode string     `gorm:"uniqueIndex;size:32"`
	ClientID     uuid.UUID  `gorm:"type:uuid;index"`
	ManagerID    *uuid.UUID `gorm:"type:uuid"`
	TariffID     uuid.UUID  `gorm:"type:uuid"`
	RouteID      *uuid.UUID `gorm:"type:uuid"`

	CargoDescription string
	CargoType        string `gorm:"size:32"`
	WeightKg         float64
	VolumeM3         float64
	DeclaredValue    float64
	PiecesCount      int

	Pickup   AddressDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	Delivery AddressDTO `gorm:"embedded;embeddedPrefix:delivery_"`

	BaseCost          float64
	WeightCost        float64
	DistanceCost      float64
	VolumeCost        float64
	InsuranceCost     float64
	ExtraServicesCost float64
	Discount          float64
	TotalCost         float64

	Status             string `gorm:"size:32;index"`
	PaymentStatus      string `gorm:"size:32"`
	CurrentLocation    string
	CancellationReason string

	CreatedAt   time.Time `gorm:"index"`
	ConfirmedAt *time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
	CancelledAt *time.Time

	History []HistoryDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO is one embedded address of the order row.
type AddressDTO struct {
	City         string `gorm:"size:128"`
	Street       string
	ContactName  string
	ContactPhone string `gorm:"size:32"`
}

// HistoryDTO is one status change row of an order.
//
// Rows are append-only: the repository inserts new entries and never updates
// or deletes existing ones. The unique index keeps a replayed insert from
// duplicating a row.
type HistoryDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID  `gorm:"type:uuid;index;uniqueIndex:idx_order_history_entry"`
	Status    string     `gorm:"size:32;uniqueIndex:idx_order_history_entry"`
	Location  string
	Notes     string
	CreatedBy *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time  `gorm:"uniqueIndex:idx_order_history_entry"`
}

// TableName overrides GORM's default naming to use "order_status_history".
func (HistoryDTO) TableName() string {
	return "order_status_history"
}

func fromDomain(o *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:           o.ID().Bytes(),
		Number:       o.Number().String(),
		TrackingCode: o.TrackingCode().String(),
		ClientID:     o.ClientID().Bytes(),
		TariffID:     o.TariffID().Bytes(),

		CargoDescription: o.CargoDescription(),
		CargoType:        o.CargoType().String(),
		WeightKg:         o.WeightKg(),
		VolumeM3:         o.VolumeM3(),
		DeclaredValue:    o.DeclaredValue(),
		PiecesCount:      o.PiecesCount(),

		Pickup:   addressFromDomain(o.Pickup()),
		Delivery: addressFromDomain(o.Delivery()),

		BaseCost:          o.Cost().Base(),
		WeightCost:        o.Cost().Weight(),
		DistanceCost:      o.Cost().Distance(),
		VolumeCost:        o.Cost().Volume(),
		InsuranceCost:     o.Cost().Insurance(),
		ExtraServicesCost: o.Cost().ExtraServices(),
		Discount:          o.Cost().Discount(),
		TotalCost:         o.Cost().Total(),

		Status:             o.Status().String(),
		PaymentStatus:      o.PaymentStatus().String(),
		CurrentLocation:    o.CurrentLocation(),
		CancellationReason: o.CancellationReason(),

		CreatedAt:   o.CreatedAt(),
		ConfirmedAt: o.ConfirmedAt(),
		PickedUpAt:  o.PickedUpAt(),
		DeliveredAt: o.DeliveredAt(),
		CancelledAt: o.CancelledAt(),
	}

	if managerID := o.ManagerID(); managerID != nil {
		raw := managerID.Bytes()
		dto.ManagerID = &raw
	}
	if routeID := o.RouteID(); routeID != nil {
		raw := routeID.Bytes()
		dto.RouteID = &raw
	}

	for _, entry := range o.History() {
		dto.History = append(dto.History, historyFromDomain(o.ID().Bytes(), entry))
	}

	return dto
}

func addressFromDomain(a order.Address) AddressDTO {
	return AddressDTO{
		City:         a.City(),
		Street:       a.Street(),
		ContactName:  a.ContactName(),
		ContactPhone: a.ContactPhone(),
	}
}

func historyFromDomain(orderID uuid.UUID, entry order.HistoryEntry) HistoryDTO {
	dto := HistoryDTO{
		ID:        uuid.New(),
		OrderID:   orderID,
		Status:    entry.Status().String(),
		Location:  entry.Location(),
		Notes:     entry.Notes(),
		CreatedAt: entry.CreatedAt(),
	}
	if createdBy := entry.CreatedBy(); createdBy != nil {
		raw := createdBy.Bytes()
		dto.CreatedBy = &raw
	}
	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}
	tariffID, err := kernel.UUIDFromBytes(dto.TariffID[:])
	if err != nil {
		return nil, err
	}
	managerID, err := optionalUUID(dto.ManagerID)
	if err != nil {
		return nil, err
	}
	routeID, err := optionalUUID(dto.RouteID)
	if err != nil {
		return nil, err
	}

	number, err := kernel.OrderNumberFromString(dto.Number)
	if err != nil {
		return nil, err
	}
	trackingCode, err := kernel.TrackingCodeFromString(dto.TrackingCode)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	pickup, err := addressToDomain(dto.Pickup)
	if err != nil {
		return nil, err
	}
	delivery, err := addressToDomain(dto.Delivery)
	if err != nil {
		return nil, err
	}

	cost, err := order.RestoreCostBreakdown(
		dto.BaseCost,
		dto.WeightCost,
		dto.DistanceCost,
		dto.VolumeCost,
		dto.InsuranceCost,
		dto.ExtraServicesCost,
		dto.Discount,
		dto.TotalCost,
	)
	if err != nil {
		return nil, err
	}

	history := make([]order.HistoryEntry, 0, len(dto.History))
	for _, row := range dto.History {
		entry, historyErr := historyToDomain(row)
		if historyErr != nil {
			return nil, historyErr
		}
		history = append(history, entry)
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:                 id,
		Number:             number,
		TrackingCode:       trackingCode,
		ClientID:           clientID,
		ManagerID:          managerID,
		TariffID:           tariffID,
		RouteID:            routeID,
		CargoDescription:   dto.CargoDescription,
		CargoType:          kernel.CargoType(dto.CargoType),
		WeightKg:           dto.WeightKg,
		VolumeM3:           dto.VolumeM3,
		DeclaredValue:      dto.DeclaredValue,
		PiecesCount:        dto.PiecesCount,
		Pickup:             pickup,
		Delivery:           delivery,
		Cost:               cost,
		Status:             status,
		PaymentStatus:      paymentStatus,
		CurrentLocation:    dto.CurrentLocation,
		CancellationReason: dto.CancellationReason,
		CreatedAt:          dto.CreatedAt,
		ConfirmedAt:        dto.ConfirmedAt,
		PickedUpAt:         dto.PickedUpAt,
		DeliveredAt:        dto.DeliveredAt,
		CancelledAt:        dto.CancelledAt,
		History:            history,
	})
}

func addressToDomain(dto AddressDTO) (order.Address, error) {
	return order.NewAddress(dto.City, dto.Street, dto.ContactName, dto.ContactPhone)
}

func historyToDomain(dto HistoryDTO) (order.HistoryEntry, error) {
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return order.HistoryEntry{}, err
	}

	createdBy, err := optionalUUID(dto.CreatedBy)
	if err != nil {
		return order.HistoryEntry{}, err
	}

	return order.RestoreHistoryEntry(status, dto.Location, dto.Notes, createdBy, dto.CreatedAt)
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
