package components

import (
	"car-rental/internal/handler"
	"car-rental/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCarHandler,
		api.NewCustomerHandler,
		api.NewRentHandler,
		func(cars *api.CarHandler, customers *api.CustomerHandler, rents *api.RentHandler) handler.Handlers {
			return handler.Handlers{
				Cars:      cars,
				Customers: customers,
				Rents:     rents,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
