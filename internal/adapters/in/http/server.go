// Package http is the inbound HTTP adapter: an echo server translating the
// REST surface into commands and queries. Every response uses the
// success/data/message envelope; domain errors map onto status codes in
// responses.go.
package http

import (
	"net/http"
	"strconv"

	"delivr/internal/core/application/usecases/commands"
	"delivr/internal/core/application/usecases/queries"
	"delivr/internal/core/domain/model/kernel"
	"delivr/internal/core/domain/model/order"
	"delivr/internal/core/domain/model/partner"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	auth Authenticator

	defaultDeliveryFee int64
	defaultTaxes       int64

	createOrderHandler           commands.CreateOrderCommandHandler
	claimOrderHandler            commands.ClaimOrderCommandHandler
	advanceOrderStatusHandler    commands.AdvanceOrderStatusCommandHandler
	updateOrderStatusHandler     commands.UpdateOrderStatusCommandHandler
	updatePartnerLocationHandler commands.UpdatePartnerLocationCommandHandler
	updatePartnerStatusHandler   commands.UpdatePartnerStatusCommandHandler

	getOrderHandler           queries.GetOrderQueryHandler
	listOrdersHandler         queries.ListOrdersQueryHandler
	getClaimableOrdersHandler queries.GetClaimableOrdersQueryHandler
	getAssignedOrdersHandler  queries.GetAssignedOrdersQueryHandler
	getPartnerProfileHandler  queries.GetPartnerProfileQueryHandler
	listPartnersHandler       queries.ListPartnersQueryHandler
	getDashboardHandler       queries.GetDashboardQueryHandler
	getAnalyticsHandler       queries.GetAnalyticsQueryHandler
}

// NewServer creates the HTTP server with the required command and query
// handlers.
func NewServer(
	auth Authenticator,
	defaultDeliveryFee, defaultTaxes int64,
	createOrderHandler commands.CreateOrderCommandHandler,
	claimOrderHandler commands.ClaimOrderCommandHandler,
	advanceOrderStatusHandler commands.AdvanceOrderStatusCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	updatePartnerLocationHandler commands.UpdatePartnerLocationCommandHandler,
	updatePartnerStatusHandler commands.UpdatePartnerStatusCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getClaimableOrdersHandler queries.GetClaimableOrdersQueryHandler,
	getAssignedOrdersHandler queries.GetAssignedOrdersQueryHandler,
	getPartnerProfileHandler queries.GetPartnerProfileQueryHandler,
	listPartnersHandler queries.ListPartnersQueryHandler,
	getDashboardHandler queries.GetDashboardQueryHandler,
	getAnalyticsHandler queries.GetAnalyticsQueryHandler,
) *Server {
	return &Server{
		auth:                         auth,
		defaultDeliveryFee:           defaultDeliveryFee,
		defaultTaxes:                 defaultTaxes,
		createOrderHandler:           createOrderHandler,
		claimOrderHandler:            claimOrderHandler,
		advanceOrderStatusHandler:    advanceOrderStatusHandler,
		updateOrderStatusHandler:     updateOrderStatusHandler,
		updatePartnerLocationHandler: updatePartnerLocationHandler,
		updatePartnerStatusHandler:   updatePartnerStatusHandler,
		getOrderHandler:              getOrderHandler,
		listOrdersHandler:            listOrdersHandler,
		getClaimableOrdersHandler:    getClaimableOrdersHandler,
		getAssignedOrdersHandler:     getAssignedOrdersHandler,
		getPartnerProfileHandler:     getPartnerProfileHandler,
		listPartnersHandler:          listPartnersHandler,
		getDashboardHandler:          getDashboardHandler,
		getAnalyticsHandler:          getAnalyticsHandler,
	}
}

// RegisterRoutes mounts the REST surface on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api", s.auth.Middleware())

	ordersGroup := api.Group("/orders")
	ordersGroup.POST("", s.CreateOrder, RequireRole(kernel.RoleCustomer))
	ordersGroup.GET("", s.ListOwnOrders, RequireRole(kernel.RoleCustomer))
	ordersGroup.GET("/:id", s.GetOrder)
	ordersGroup.PUT("/:id/status", s.UpdateOrderStatus, RequireRole(kernel.RoleCustomer))

	delivery := api.Group("/delivery", RequireRole(kernel.RoleDeliveryPartner))
	delivery.GET("/available-orders", s.GetAvailableOrders)
	delivery.GET("/assigned-orders", s.GetAssignedOrders)
	delivery.POST("/accept-order/:id", s.AcceptOrder)
	delivery.PUT("/update-status/:id", s.UpdateDeliveryStatus)
	delivery.GET("/earnings", s.GetEarnings)
	delivery.GET("/profile", s.GetPartnerProfile)
	delivery.PUT("/update-location", s.UpdateLocation)

	admin := api.Group("/admin", RequireRole(kernel.RoleAdmin))
	admin.GET("/dashboard", s.GetDashboard)
	admin.GET("/orders", s.ListAllOrders)
	admin.PUT("/orders/:id", s.AdminUpdateOrder)
	admin.GET("/delivery-partners", s.ListPartners)
	admin.PUT("/delivery-partners/:id/status", s.UpdatePartnerStatus)
	admin.GET("/analytics", s.GetAnalytics)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return respondData(ctx, http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/orders - customer checkout.
func (s *Server) CreateOrder(ctx echo.Context) error {
	principal, err := CurrentPrincipal(ctx)
	if err != nil {
		return respondMessage(ctx, http.StatusUnauthorized, "missing bearer token")
	}

	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondMessage(ctx, http.StatusBadRequest, "invalid request body")
	}

	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return respondMessage(ctx, http.StatusBadRequest, "invalid restaurant id")
	}

	items := make([]commands.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		menuItemID, itemErr := kernel.UUIDFromString(item.MenuItemID)
		if itemErr != nil {
			return respondMessage(ctx, http.StatusBadRequest, "invalid menu item id")
		}
		items = append(items, commands.OrderItemInput{
			MenuItemID:     menuItemID,
			Quantity:       item.Quantity,
			Customizations: item.Customizations,
		})
	}

	paymentMethod, err := order.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return respondError(ctx, err)
	}

	deliveryFee := s.defaultDeliveryFee
	if req.DeliveryFee != nil {
		deliveryFee = *req.DeliveryFee
	}
	taxes := s.defaultTaxes
	if req.Taxes != nil {
		taxes = *req.Taxes
	}
	var discount int64
	if req.Discount != nil {
		discount = *req.Discount
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, principal.UserID, restaurantID, items,
		req.Address.Street, req.Address.Area, req.Address.City, req.Address.Pincode,
		paymentMethod, deliveryFee, taxes, discount,
		req.SpecialInstructions)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusCreated, map[string]string{"orderId": orderID.String()})
}

// ListOwnOrders handles GET /api/orders - the customer's order history.
func (s *Server) ListOwnOrders(ctx echo.Context) error {
	principal, err := CurrentPrincipal(ctx)
	if err != nil {
		return respondMessage(ctx, http.StatusUnauthorized, "missing bearer token")
	}

	customerID := principal.UserID
	return s.listOrders(ctx, &customerID)
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	principal, err := CurrentPrincipal(ctx)
	if err != nil {
		return respondMessage(ctx, http.StatusUnauthorized, "missing bearer token")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondMessage(ctx, http.StatusBadRequest, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID, principal.UserID, principal.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, view)
}

// UpdateOrderStatus handles PUT /api/orders/:id/status - the customer path,
// which in practice means cancellation.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	principal, err := CurrentPrincipal(ctx)
	if err != nil {
		return respondMessage(ctx, http.StatusUnauthorized, "missing bearer token")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondMessage(ctx, http.StatusBadRequest, "invalid order id")
	}

	var req updateStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return respondMessage(ctx, http.StatusBadRequest, "invalid request body")
	}

	newStatus, err := order.ParseStatus(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(
		orderID, principal.UserID, principal.Role, &newStatus, nil)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondMessage(ctx, http.StatusOK, "order updated")
}

// GetAvailableOrders handles GET /api/delivery/available-orders - the
// claimable pool.
func (s *Server) GetAvailableOrders(ctx echo.Context) error {
	limit, err := intQuery(ctx, "limit")
	if err != nil {
		return respondMessage(ctx, http.StatusBadRequest, "invalid limit")
	}

	query, err := queries.NewGetClaimableOrdersQuery(limit)
	if err != nil {
		return respondError(ctx, err)
	}

	views, err := s.getClaimableOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, views)
}

// GetAssignedOrders handles GET /api/delivery/assigned-orders - the orders
// the partner currently carries.
func (s *Server) GetAssignedOrders(ctx echo.Context) error {
	principal, err := CurrentPrincipal(ctx)
	if err != nil {
		return respondMessage(ctx, http.StatusUnauthorized, "missing bearer token")
	}

	query, err := queries.NewGetAssignedOrdersQuery(principal.UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	views, err := s.getAssignedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, views)
}

// AcceptOrder handles POST /api/delivery/accept-order/:id - the exclusive
// claim. Losing the race surfaces as 409.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	principal, err := CurrentPrincipal(ctx)
	if err != nil {
		return respondMessage(ctx, http.StatusUnauthorized, "missing bearer token")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondMessage(ctx, http.StatusBadRequest, "invalid order id")
	}

	cmd, err := commands.NewClaimOrderCommand(orderID, principal.UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.claimOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, map[string]string{
		"orderId": orderID.String(),
		"status":  order.StatusPreparing.String(),
	})
}

// UpdateDeliveryStatus handles PUT /api/delivery/update-status/:id - the
// assigned partner advancing the lifecycle.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	principal, err := CurrentPrincipal(ctx)
	if err != nil {
		return respondMessage(ctx, http.StatusUnauthorized, "missing bearer token")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondMessage(ctx, http.StatusBadRequest, "invalid order id")
	}

	var req updateStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return respondMessage(ctx, http.StatusBadRequest, "invalid request body")
	}

	newStatus, err := order.ParseStatus(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID, principal.UserID, newStatus)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.advanceOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondMessage(ctx, http.StatusOK, "order status updated")
}

// GetEarnings handles GET /api/delivery/earnings - the earnings breakdown of
// the partner's profile.
func (s *Server) GetEarnings(ctx echo.Context) error {
	view, err := s.partnerProfile(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, map[string]int64{
		"totalDeliveries": view.TotalDeliveries,
		"totalEarnings":   view.TotalEarnings,
		"dailyEarnings":   view.DailyEarnings,
		"weeklyEarnings":  view.WeeklyEarnings,
	})
}

// GetPartnerProfile handles GET /api/delivery/profile.
func (s *Server) GetPartnerProfile(ctx echo.Context) error {
	view, err := s.partnerProfile(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, view)
}

// UpdateLocation handles PUT /api/delivery/update-location.
func (s *Server) UpdateLocation(ctx echo.Context) error {
	principal, err := CurrentPrincipal(ctx)
	if err != nil {
		return respondMessage(ctx, http.StatusUnauthorized, "missing bearer token")
	}

	var req updateLocationRequest
	if err := ctx.Bind(&req); err != nil {
		return respondMessage(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewUpdatePartnerLocationCommand(principal.UserID, req.Lat, req.Lng)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updatePartnerLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondMessage(ctx, http.StatusOK, "location updated")
}

// GetDashboard handles GET /api/admin/dashboard.
func (s *Server) GetDashboard(ctx echo.Context) error {
	resp, err := s.getDashboardHandler.Handle(ctx.Request().Context(), queries.NewGetDashboardQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, resp)
}

// ListAllOrders handles GET /api/admin/orders.
func (s *Server) ListAllOrders(ctx echo.Context) error {
	return s.listOrders(ctx, nil)
}

// AdminUpdateOrder handles PUT /api/admin/orders/:id - status change,
// partner reassignment, or both.
func (s *Server) AdminUpdateOrder(ctx echo.Context) error {
	principal, err := CurrentPrincipal(ctx)
	if err != nil {
		return respondMessage(ctx, http.StatusUnauthorized, "missing bearer token")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondMessage(ctx, http.StatusBadRequest, "invalid order id")
	}

	var req adminOrderUpdateRequest
	if err := ctx.Bind(&req); err != nil {
		return respondMessage(ctx, http.StatusBadRequest, "invalid request body")
	}

	var newStatus *order.Status
	if req.Status != nil {
		parsed, parseErr := order.ParseStatus(*req.Status)
		if parseErr != nil {
			return respondError(ctx, parseErr)
		}
		newStatus = &parsed
	}

	var newPartnerID *kernel.UUID
	if req.DeliveryPartnerID != nil {
		parsed, parseErr := kernel.UUIDFromString(*req.DeliveryPartnerID)
		if parseErr != nil {
			return respondMessage(ctx, http.StatusBadRequest, "invalid delivery partner id")
		}
		newPartnerID = &parsed
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(
		orderID, principal.UserID, principal.Role, newStatus, newPartnerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondMessage(ctx, http.StatusOK, "order updated")
}

// ListPartners handles GET /api/admin/delivery-partners.
func (s *Server) ListPartners(ctx echo.Context) error {
	var status *partner.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := partner.ParseStatus(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		status = &parsed
	}

	var minRating *float64
	if raw := ctx.QueryParam("minRating"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return respondMessage(ctx, http.StatusBadRequest, "invalid minRating")
		}
		minRating = &parsed
	}

	page, err := intQuery(ctx, "page")
	if err != nil {
		return respondMessage(ctx, http.StatusBadRequest, "invalid page")
	}
	limit, err := intQuery(ctx, "limit")
	if err != nil {
		return respondMessage(ctx, http.StatusBadRequest, "invalid limit")
	}

	query, err := queries.NewListPartnersQuery(status, minRating, page, limit)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.listPartnersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, resp)
}

// UpdatePartnerStatus handles PUT /api/admin/delivery-partners/:id/status.
func (s *Server) UpdatePartnerStatus(ctx echo.Context) error {
	partnerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondMessage(ctx, http.StatusBadRequest, "invalid partner id")
	}

	var req partnerStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return respondMessage(ctx, http.StatusBadRequest, "invalid request body")
	}

	newStatus, err := partner.ParseStatus(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdatePartnerStatusCommand(partnerID, newStatus, req.IsAvailable)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updatePartnerStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondMessage(ctx, http.StatusOK, "partner updated")
}

// GetAnalytics handles GET /api/admin/analytics.
func (s *Server) GetAnalytics(ctx echo.Context) error {
	resp, err := s.getAnalyticsHandler.Handle(ctx.Request().Context(), queries.NewGetAnalyticsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, resp)
}

// listOrders serves both the customer history (customerID set) and the admin
// order list (customerID nil).
func (s *Server) listOrders(ctx echo.Context, customerID *kernel.UUID) error {
	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.ParseStatus(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		status = &parsed
	}

	todayOnly := ctx.QueryParam("today") == "true"

	page, err := intQuery(ctx, "page")
	if err != nil {
		return respondMessage(ctx, http.StatusBadRequest, "invalid page")
	}
	limit, err := intQuery(ctx, "limit")
	if err != nil {
		return respondMessage(ctx, http.StatusBadRequest, "invalid limit")
	}

	query, err := queries.NewListOrdersQuery(customerID, status, todayOnly, page, limit)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, resp)
}

func (s *Server) partnerProfile(ctx echo.Context) (queries.PartnerView, error) {
	principal, err := CurrentPrincipal(ctx)
	if err != nil {
		return queries.PartnerView{}, err
	}

	query, err := queries.NewGetPartnerProfileQuery(principal.UserID)
	if err != nil {
		return queries.PartnerView{}, err
	}

	return s.getPartnerProfileHandler.Handle(ctx.Request().Context(), query)
}

// intQuery parses an optional integer query parameter; absent means zero.
func intQuery(ctx echo.Context, name string) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
