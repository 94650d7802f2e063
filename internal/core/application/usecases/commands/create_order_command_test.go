package commands_test

import (
	"testing"

	"cargotrack/internal/core/application/usecases/commands"
	"cargotrack/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

func validCreateOrderParams() commands.NewCreateOrderParams {
	return commands.NewCreateOrderParams{
		ClientID:         kernel.NewUUID(),
		TariffID:         kernel.NewUUID(),
		CargoDescription: "Коробки с документами",
		CargoType:        kernel.CargoStandard,
		WeightKg:         10,
		PiecesCount:      1,
		Pickup: commands.CreateOrderAddress{
			City: "Москва", Street: "Тверская 1",
			ContactName: "Иван Петров", ContactPhone: "+79990001122",
		},
		Delivery: commands.CreateOrderAddress{
			City: "Санкт-Петербург", Street: "Невский 10",
			ContactName: "Анна Смирнова", ContactPhone: "+79990003344",
		},
	}
}

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("should construct from valid params", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(validCreateOrderParams())

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
	})

	t.Run("should reject zero weight", func(t *testing.T) {
		p := validCreateOrderParams()
		p.WeightKg = 0

		_, err := commands.NewCreateOrderCommand(p)
		require.Error(t, err)
	})

	t.Run("should reject unknown cargo type", func(t *testing.T) {
		p := validCreateOrderParams()
		p.CargoType = kernel.CargoType("liquid")

		_, err := commands.NewCreateOrderCommand(p)
		require.Error(t, err)
	})

	t.Run("should reject missing cities", func(t *testing.T) {
		p := validCreateOrderParams()
		p.Delivery.City = ""

		_, err := commands.NewCreateOrderCommand(p)
		require.Error(t, err)
	})

	t.Run("should reject negative declared value", func(t *testing.T) {
		p := validCreateOrderParams()
		p.DeclaredValue = -1

		_, err := commands.NewCreateOrderCommand(p)
		require.Error(t, err)
	})

	t.Run("should reject zero value command in Validate", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
