package http

import (
	"net/http"

	"foodies/internal/core/application/usecases/commands"
	"foodies/internal/core/application/usecases/queries"
	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/core/domain/model/order"
	"foodies/internal/core/domain/model/partner"
	"foodies/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var _ servers.ServerInterface = (*Server)(nil)

// Handlers groups the use cases the HTTP API exposes.
type Handlers struct {
	// Command handlers
	CreateOrder            commands.CreateOrderCommandHandler
	UpdateOrderStatus      commands.UpdateOrderStatusCommandHandler
	AssignDeliveryPartner  commands.AssignDeliveryPartnerCommandHandler
	UpdateDeliveryPosition commands.UpdateDeliveryPositionCommandHandler
	CreatePartner          commands.CreateDeliveryPartnerCommandHandler
	UpdatePartner          commands.UpdatePartnerCommandHandler
	CreatePaymentIntent    commands.CreatePaymentIntentCommandHandler
	VerifyPayment          commands.VerifyPaymentCommandHandler
	RefundPayment          commands.RefundPaymentCommandHandler

	// Query handlers
	GetOrder            queries.GetOrderQueryHandler
	GetOrders           queries.GetOrdersQueryHandler
	GetUnassignedOrders queries.GetUnassignedOrdersQueryHandler
	GetAllPartners      queries.GetAllPartnersQueryHandler
	GetPayment          queries.GetPaymentQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	h   Handlers
	log *zap.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{h: h, log: log.Named("http")}
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	principal := principalFrom(ctx)
	draft, err := draftFrom(principal, body)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(principal, draft)
	if err != nil {
		return s.writeError(ctx, err)
	}

	created, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, created)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId servers.OrderId) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(principalFrom(ctx), id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	found, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, found)
}

// GetOrdersByCustomer handles GET /api/v1/orders/customer/{customerId}.
func (s *Server) GetOrdersByCustomer(ctx echo.Context, customerId string) error {
	query, err := queries.NewGetOrdersByCustomerQuery(principalFrom(ctx), customerId)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return s.listOrders(ctx, query)
}

// GetOrdersByRestaurant handles GET /api/v1/orders/restaurant/{restaurantId}.
func (s *Server) GetOrdersByRestaurant(ctx echo.Context, restaurantId string) error {
	query, err := queries.NewGetOrdersByRestaurantQuery(principalFrom(ctx), restaurantId)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return s.listOrders(ctx, query)
}

// GetOrdersByDeliveryPartner handles GET /api/v1/orders/delivery/{partnerId}.
func (s *Server) GetOrdersByDeliveryPartner(ctx echo.Context, partnerId servers.PartnerId) error {
	id, err := kernel.UUIDFromBytes(partnerId[:])
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetOrdersByDeliveryPartnerQuery(principalFrom(ctx), id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return s.listOrders(ctx, query)
}

func (s *Server) listOrders(ctx echo.Context, query queries.GetOrdersQuery) error {
	orders, err := s.h.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orders)
}

// GetUnassignedOrders handles GET /api/v1/orders/unassigned.
func (s *Server) GetUnassignedOrders(ctx echo.Context) error {
	query, err := queries.NewGetUnassignedOrdersQuery(principalFrom(ctx))
	if err != nil {
		return s.writeError(ctx, err)
	}

	orders, err := s.h.GetUnassignedOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus handles PUT /api/v1/orders/{orderId}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.UpdateOrderStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return s.writeError(ctx, err)
	}

	target, err := order.ParseStatus(string(body.Status))
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(principalFrom(ctx), id, target, deref(body.Note))
	if err != nil {
		return s.writeError(ctx, err)
	}

	updated, err := s.h.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, updated)
}

// AssignDeliveryPartner handles PUT /api/v1/orders/{orderId}/assign-delivery.
func (s *Server) AssignDeliveryPartner(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.AssignDeliveryPartnerJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return s.writeError(ctx, err)
	}
	partnerID, err := kernel.UUIDFromBytes(body.DeliveryPartnerId[:])
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewAssignDeliveryPartnerCommand(principalFrom(ctx), id, partnerID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	updated, err := s.h.AssignDeliveryPartner.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, updated)
}

// UpdateDeliveryLocation handles PUT /api/v1/orders/{orderId}/delivery-location.
func (s *Server) UpdateDeliveryLocation(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.UpdateDeliveryLocationJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return s.writeError(ctx, err)
	}

	location, err := commands.NewUpdateDeliveryLocationCommand(principalFrom(ctx), id, body.Latitude, body.Longitude)
	if err != nil {
		return s.writeError(ctx, err)
	}
	cmd, err := commands.NewUpdateDeliveryPositionCommand(location)
	if err != nil {
		return s.writeError(ctx, err)
	}

	updated, err := s.h.UpdateDeliveryPosition.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, updated)
}

// GetPartners handles GET /api/v1/partners.
func (s *Server) GetPartners(ctx echo.Context) error {
	query, err := queries.NewGetAllPartnersQuery(principalFrom(ctx))
	if err != nil {
		return s.writeError(ctx, err)
	}

	partners, err := s.h.GetAllPartners.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, partners)
}

// CreatePartner handles POST /api/v1/partners - registers a delivery partner.
func (s *Server) CreatePartner(ctx echo.Context) error {
	var body servers.CreatePartnerJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	vehicle, err := partner.ParseVehicle(body.Vehicle)
	if err != nil {
		return s.writeError(ctx, err)
	}
	location, err := kernel.NewLocation(body.Latitude, body.Longitude)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewCreateDeliveryPartnerCommand(principalFrom(ctx), body.Name, vehicle, location, deref(body.Approved))
	if err != nil {
		return s.writeError(ctx, err)
	}

	id, err := s.h.CreatePartner.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedPartner{Id: id.Bytes()})
}

// UpdatePartnerLocation handles PUT /api/v1/partners/{partnerId}/location.
func (s *Server) UpdatePartnerLocation(ctx echo.Context, partnerId servers.PartnerId) error {
	var body servers.UpdatePartnerLocationJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(partnerId[:])
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewUpdatePartnerLocationCommand(principalFrom(ctx), id, body.Latitude, body.Longitude)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.h.UpdatePartner.HandleLocation(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetPartnerAvailability handles PUT /api/v1/partners/{partnerId}/availability.
func (s *Server) SetPartnerAvailability(ctx echo.Context, partnerId servers.PartnerId) error {
	var body servers.SetPartnerAvailabilityJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(partnerId[:])
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewSetPartnerAvailabilityCommand(principalFrom(ctx), id, body.Available)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.h.UpdatePartner.HandleAvailability(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreatePaymentIntent handles POST /api/v1/payments/intents. Repeating the
// call for the same order returns the open intent instead of a new one.
func (s *Server) CreatePaymentIntent(ctx echo.Context) error {
	var body servers.CreatePaymentIntentJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	principal := principalFrom(ctx)
	orderID, err := kernel.UUIDFromBytes(body.OrderId[:])
	if err != nil {
		return s.writeError(ctx, err)
	}

	customerID := principal.ID()
	if body.CustomerId != nil {
		customerID = *body.CustomerId
	}

	cmd, err := commands.NewCreatePaymentIntentCommand(principal, orderID, customerID, body.Amount)
	if err != nil {
		return s.writeError(ctx, err)
	}

	intent, err := s.h.CreatePaymentIntent.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, intent)
}

// VerifyPayment handles POST /api/v1/payments/verify.
func (s *Server) VerifyPayment(ctx echo.Context) error {
	var body servers.VerifyPaymentJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewVerifyPaymentCommand(body.RazorpayOrderId, body.RazorpayPaymentId, body.RazorpaySignature)
	if err != nil {
		return s.writeError(ctx, err)
	}

	verified, err := s.h.VerifyPayment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, verified)
}

// GetPayment handles GET /api/v1/payments/{paymentId}.
func (s *Server) GetPayment(ctx echo.Context, paymentId servers.PaymentId) error {
	id, err := kernel.UUIDFromBytes(paymentId[:])
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetPaymentQuery(principalFrom(ctx), id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return s.getPayment(ctx, query)
}

// GetPaymentByOrder handles GET /api/v1/payments/order/{orderId}.
func (s *Server) GetPaymentByOrder(ctx echo.Context, orderId servers.OrderId) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetPaymentByOrderQuery(principalFrom(ctx), id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return s.getPayment(ctx, query)
}

func (s *Server) getPayment(ctx echo.Context, query queries.GetPaymentQuery) error {
	found, err := s.h.GetPayment.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, found)
}

// RefundPayment handles POST /api/v1/payments/{paymentId}/refund. Without an
// amount the whole payment is refunded.
func (s *Server) RefundPayment(ctx echo.Context, paymentId servers.PaymentId) error {
	var body servers.RefundPaymentJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(paymentId[:])
	if err != nil {
		return s.writeError(ctx, err)
	}

	var amount *decimal.Decimal
	if body.Amount != nil {
		a := *body.Amount
		amount = &a
	}

	cmd, err := commands.NewRefundPaymentCommand(principalFrom(ctx), id, amount, deref(body.Reason))
	if err != nil {
		return s.writeError(ctx, err)
	}

	refunded, err := s.h.RefundPayment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, refunded)
}

func draftFrom(principal kernel.Principal, body servers.NewOrder) (order.Draft, error) {
	customerID := principal.ID()
	if body.CustomerId != nil {
		customerID = *body.CustomerId
	}

	method, err := kernel.ParsePaymentMethod(body.PaymentMethod)
	if err != nil {
		return order.Draft{}, err
	}

	items := make([]order.Item, 0, len(body.Items))
	for _, in := range body.Items {
		item, err := order.NewItem(in.MenuItemId, in.MenuItemName, in.Quantity, in.UnitPrice,
			deref(in.Variant), deref(in.SpecialInstructions))
		if err != nil {
			return order.Draft{}, err
		}
		items = append(items, item)
	}

	amounts, err := order.NewAmounts(body.Subtotal, body.DeliveryFee, body.Tax, body.TotalAmount)
	if err != nil {
		return order.Draft{}, err
	}

	a := body.DeliveryAddress
	location, err := kernel.NewLocation(a.Latitude, a.Longitude)
	if err != nil {
		return order.Draft{}, err
	}
	address, err := order.NewAddress(order.AddressFields{
		Line1:        a.AddressLine1,
		Line2:        deref(a.AddressLine2),
		City:         a.City,
		State:        a.State,
		PostalCode:   a.Pincode,
		Country:      a.Country,
		Landmark:     deref(a.Landmark),
		Instructions: deref(a.Instructions),
		Location:     location,
	})
	if err != nil {
		return order.Draft{}, err
	}

	return order.Draft{
		CustomerID:          customerID,
		RestaurantID:        body.RestaurantId,
		Items:               items,
		Amounts:             amounts,
		PaymentMethod:       method,
		DeliveryAddress:     address,
		SpecialInstructions: deref(body.SpecialInstructions),
	}, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
