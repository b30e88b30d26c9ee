// Package http exposes the tracking application over a JSON API.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/shipment"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

// SessionHeader carries the session identifier issued by login.
const SessionHeader = "X-Session-Token"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerUserHandler commands.RegisterUserCommandHandler
	loginHandler        commands.LoginCommandHandler
	logoutHandler       commands.LogoutCommandHandler
	extractHandler      commands.ExtractShipmentCommandHandler
	updateStatusHandler commands.UpdateShipmentStatusCommandHandler
	addTagHandler       commands.AddTagCommandHandler
	removeTagHandler    commands.RemoveTagCommandHandler

	// Query handlers
	getShipmentsHandler    queries.GetShipmentsQueryHandler
	filterByStatusHandler  queries.FilterShipmentsByStatusQueryHandler
	searchShipmentsHandler queries.SearchShipmentsQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	registerUserHandler commands.RegisterUserCommandHandler,
	loginHandler commands.LoginCommandHandler,
	logoutHandler commands.LogoutCommandHandler,
	extractHandler commands.ExtractShipmentCommandHandler,
	updateStatusHandler commands.UpdateShipmentStatusCommandHandler,
	addTagHandler commands.AddTagCommandHandler,
	removeTagHandler commands.RemoveTagCommandHandler,
	getShipmentsHandler queries.GetShipmentsQueryHandler,
	filterByStatusHandler queries.FilterShipmentsByStatusQueryHandler,
	searchShipmentsHandler queries.SearchShipmentsQueryHandler,
) *Server {
	return &Server{
		registerUserHandler:    registerUserHandler,
		loginHandler:           loginHandler,
		logoutHandler:          logoutHandler,
		extractHandler:         extractHandler,
		updateStatusHandler:    updateStatusHandler,
		addTagHandler:          addTagHandler,
		removeTagHandler:       removeTagHandler,
		getShipmentsHandler:    getShipmentsHandler,
		filterByStatusHandler:  filterByStatusHandler,
		searchShipmentsHandler: searchShipmentsHandler,
	}
}

// RegisterRoutes wires all API routes onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/users", s.RegisterUser)
	api.POST("/sessions", s.Login)
	api.DELETE("/sessions", s.Logout)
	api.POST("/shipments", s.ExtractShipment)
	api.GET("/shipments", s.GetShipments)
	api.PUT("/shipments/:trackingNumber/status", s.UpdateShipmentStatus)
	api.POST("/shipments/:trackingNumber/tags", s.AddTag)
	api.DELETE("/shipments/:trackingNumber/tags/:tag", s.RemoveTag)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// RegisterUser handles POST /api/v1/users - creates a new user account.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var req RegisterUserRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterUserCommand(req.Username, req.Email, req.Password)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// Login handles POST /api/v1/sessions - verifies credentials and opens a session.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewLoginCommand(req.Username, req.Password)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	sessionID, err := s.loginHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{SessionID: sessionID})
}

// Logout handles DELETE /api/v1/sessions - closes the caller's session.
func (s *Server) Logout(ctx echo.Context) error {
	cmd, err := commands.NewLogoutCommand(ctx.Request().Header.Get(SessionHeader))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.logoutHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ExtractShipment handles POST /api/v1/shipments - parses a notification
// message and registers the shipment it describes.
func (s *Server) ExtractShipment(ctx echo.Context) error {
	var req ExtractShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewExtractShipmentCommand(s.sessionID(ctx), req.Message)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	created, err := s.extractHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toShipment(queries.NewShipmentResponse(created)))
}

// GetShipments handles GET /api/v1/shipments. Without parameters it lists
// the caller's shipments sorted by estimated delivery; the optional "status"
// and "q" parameters switch to status filtering or free-text search.
func (s *Server) GetShipments(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	sessionID := s.sessionID(ctx)

	if statusName := ctx.QueryParam("status"); statusName != "" {
		status, err := shipment.ParseStatus(statusName)
		if err != nil {
			return badRequest(ctx, "Unknown status: "+statusName)
		}

		query, err := queries.NewFilterShipmentsByStatusQuery(sessionID, status)
		if err != nil {
			return badRequest(ctx, err.Error())
		}

		shipments, err := s.filterByStatusHandler.Handle(reqCtx, query)
		if err != nil {
			return writeError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, toShipments(shipments))
	}

	if term := ctx.QueryParam("q"); term != "" {
		query, err := queries.NewSearchShipmentsQuery(sessionID, term)
		if err != nil {
			return badRequest(ctx, err.Error())
		}

		shipments, err := s.searchShipmentsHandler.Handle(reqCtx, query)
		if err != nil {
			return writeError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, toShipments(shipments))
	}

	query, err := queries.NewGetShipmentsQuery(sessionID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	shipments, err := s.getShipmentsHandler.Handle(reqCtx, query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toShipments(shipments))
}

// UpdateShipmentStatus handles PUT /api/v1/shipments/:trackingNumber/status.
func (s *Server) UpdateShipmentStatus(ctx echo.Context) error {
	var req UpdateStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := shipment.ParseStatus(req.Status)
	if err != nil {
		return badRequest(ctx, "Unknown status: "+req.Status)
	}

	cmd, err := commands.NewUpdateShipmentStatusCommand(
		s.sessionID(ctx), ctx.Param("trackingNumber"), status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddTag handles POST /api/v1/shipments/:trackingNumber/tags.
func (s *Server) AddTag(ctx echo.Context) error {
	var req AddTagRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddTagCommand(s.sessionID(ctx), ctx.Param("trackingNumber"), req.Tag)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.addTagHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveTag handles DELETE /api/v1/shipments/:trackingNumber/tags/:tag.
func (s *Server) RemoveTag(ctx echo.Context) error {
	cmd, err := commands.NewRemoveTagCommand(
		s.sessionID(ctx), ctx.Param("trackingNumber"), ctx.Param("tag"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.removeTagHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) sessionID(ctx echo.Context) string {
	return ctx.Request().Header.Get(SessionHeader)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps use case failures onto HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, ports.ErrAuthenticationRequired),
		errors.Is(err, commands.ErrInvalidCredentials):
		code = http.StatusUnauthorized
	case errors.Is(err, ports.ErrUsernameAlreadyTaken):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, services.ErrNoShipmentDetected):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
