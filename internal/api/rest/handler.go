package rest

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/recircle/twin-ledger/internal/api/middleware"
	"github.com/recircle/twin-ledger/internal/api/rest/dto"
	"github.com/recircle/twin-ledger/internal/domain"
	"github.com/recircle/twin-ledger/internal/ledger"
	"github.com/recircle/twin-ledger/internal/logger"
	"github.com/recircle/twin-ledger/internal/metadata"
)

const (
	expandMetadata = "metadata"
	expandHistory  = "history"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// MintTwin creates a new twin (requires authentication)
	// POST /api/v1/twins
	MintTwin(c *gin.Context)

	// RetireTwin marks a twin as recycled and issues the reward (requires authentication)
	// POST /api/v1/twins/:id/retire
	RetireTwin(c *gin.Context)

	// GetTwin retrieves a single twin by token id
	// GET /api/v1/twins/:id?expand=metadata,history
	GetTwin(c *gin.Context)

	// GetTwinHistory retrieves a twin's lifecycle history in insertion order
	// GET /api/v1/twins/:id/history
	GetTwinHistory(c *gin.Context)

	// ListTwins retrieves the twins owned by an address
	// GET /api/v1/twins?owner=<address>
	ListTwins(c *gin.Context)

	// GetBalance retrieves the reward balance of an address
	// GET /api/v1/rewards/balances/:address
	GetBalance(c *gin.Context)

	// GetSupply retrieves the cumulative minted reward amount
	// GET /api/v1/rewards/supply
	GetSupply(c *gin.Context)

	// TransferReward moves rewards between addresses (requires authentication)
	// POST /api/v1/rewards/transfer
	TransferReward(c *gin.Context)

	// CheckRole reports whether an address holds a role
	// GET /api/v1/roles/:role/:address
	CheckRole(c *gin.Context)

	// GrantRole grants a role to an address (requires authentication)
	// POST /api/v1/roles/grants
	GrantRole(c *gin.Context)

	// RevokeRole removes a role grant (requires authentication)
	// DELETE /api/v1/roles/grants/:role/:address
	RevokeRole(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	coordinator ledger.Coordinator
	resolver    metadata.Resolver
}

// NewHandler creates a new REST API handler
func NewHandler(coordinator ledger.Coordinator, resolver metadata.Resolver) Handler {
	return &handler{
		coordinator: coordinator,
		resolver:    resolver,
	}
}

// MintTwin creates a new twin
func (h *handler) MintTwin(c *gin.Context) {
	var req dto.MintTwinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if !requireCallerIsSubject(c, req.Caller) {
		return
	}

	tokenID, err := h.coordinator.Mint(c.Request.Context(), req.Caller, req.To, req.MetadataURI)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.MintTwinResponse{TokenID: tokenID})
}

// RetireTwin marks a twin as recycled and issues the reward
func (h *handler) RetireTwin(c *gin.Context) {
	tokenID, ok := parseTokenID(c)
	if !ok {
		return
	}

	var req dto.RetireTwinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if !requireCallerIsSubject(c, req.Caller) {
		return
	}

	var err error
	if req.Sponsor != nil {
		err = h.coordinator.RetireAndSponsor(c.Request.Context(), req.Caller, tokenID, *req.Sponsor)
	} else {
		err = h.coordinator.Retire(c.Request.Context(), req.Caller, tokenID)
	}
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetTwin retrieves a single twin by token id
func (h *handler) GetTwin(c *gin.Context) {
	tokenID, ok := parseTokenID(c)
	if !ok {
		return
	}

	expansions, err := parseExpand(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	twin, err := h.coordinator.GetTwin(c.Request.Context(), tokenID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	response := dto.NewTwinResponse(twin)

	if expansions[expandHistory] {
		events, err := h.coordinator.GetHistory(c.Request.Context(), tokenID)
		if err != nil {
			respondDomainError(c, err)
			return
		}
		response.History = dto.NewLifecycleEventResponses(events)
	}

	if expansions[expandMetadata] && h.resolver != nil {
		doc, err := h.resolver.Resolve(c.Request.Context(), twin.MetadataURI)
		if err != nil {
			// The document lives off-platform; its absence must not hide the twin
			logger.Warn("Failed to resolve twin metadata",
				zap.Uint64("token_id", tokenID),
				zap.Error(err),
			)
		} else {
			response.Metadata = doc
		}
	}

	c.JSON(http.StatusOK, response)
}

// GetTwinHistory retrieves a twin's lifecycle history
func (h *handler) GetTwinHistory(c *gin.Context) {
	tokenID, ok := parseTokenID(c)
	if !ok {
		return
	}

	events, err := h.coordinator.GetHistory(c.Request.Context(), tokenID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.HistoryResponse{
		TokenID: tokenID,
		Events:  dto.NewLifecycleEventResponses(events),
	})
}

// ListTwins retrieves the twins owned by an address
func (h *handler) ListTwins(c *gin.Context) {
	owner := c.Query("owner")
	if owner == "" {
		respondBadRequest(c, "owner query parameter is required")
		return
	}

	twins, err := h.coordinator.TwinsOf(c.Request.Context(), owner)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	total, err := h.coordinator.CountOf(c.Request.Context(), owner)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	response := dto.TwinListResponse{
		Twins: make([]dto.TwinResponse, len(twins)),
		Total: total,
	}
	for i, twin := range twins {
		response.Twins[i] = dto.NewTwinResponse(twin)
	}

	c.JSON(http.StatusOK, response)
}

// GetBalance retrieves the reward balance of an address
func (h *handler) GetBalance(c *gin.Context) {
	address := c.Param("address")

	balance, err := h.coordinator.BalanceOf(c.Request.Context(), address)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		Address: domain.NormalizeAddress(address),
		Balance: balance,
	})
}

// GetSupply retrieves the cumulative minted reward amount
func (h *handler) GetSupply(c *gin.Context) {
	supply, err := h.coordinator.TotalSupply(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SupplyResponse{TotalSupply: supply})
}

// TransferReward moves rewards between addresses
func (h *handler) TransferReward(c *gin.Context) {
	var req dto.TransferRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if !requireCallerIsSubject(c, req.Caller) {
		return
	}

	err := h.coordinator.TransferReward(c.Request.Context(), req.Caller, req.To, req.Amount)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CheckRole reports whether an address holds a role
func (h *handler) CheckRole(c *gin.Context) {
	role := c.Param("role")
	address := c.Param("address")

	hasRole, err := h.coordinator.HasRole(c.Request.Context(), domain.Role(role), address)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RoleResponse{
		Role:    role,
		Address: domain.NormalizeAddress(address),
		HasRole: hasRole,
	})
}

// GrantRole grants a role to an address
func (h *handler) GrantRole(c *gin.Context) {
	var req dto.GrantRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	err := h.coordinator.GrantRole(c.Request.Context(), domain.Role(req.Role), req.Address)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RevokeRole removes a role grant
func (h *handler) RevokeRole(c *gin.Context) {
	role := c.Param("role")
	address := c.Param("address")

	err := h.coordinator.RevokeRole(c.Request.Context(), domain.Role(role), address)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// parseTokenID parses the :id path parameter; responds with 400 and returns
// false when it is not a positive integer
func parseTokenID(c *gin.Context) (uint64, bool) {
	raw := c.Param("id")
	tokenID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		respondBadRequest(c, "Token id must be a positive integer", raw)
		return 0, false
	}
	return tokenID, true
}

// requireCallerIsSubject rejects a request whose body caller differs from the
// authenticated JWT subject. API-key clients carry no subject and may act for
// any caller; responds with 403 and returns false on a mismatch.
func requireCallerIsSubject(c *gin.Context, caller string) bool {
	subject := c.GetString(middleware.AUTH_SUBJECT_KEY)
	if subject == "" {
		return true
	}
	if !domain.SameAddress(subject, caller) {
		respondWithError(c, http.StatusForbidden, errCodeForbidden,
			"Caller does not match the authenticated subject")
		return false
	}
	return true
}

// parseExpand parses the expand query parameter into a set
func parseExpand(c *gin.Context) (map[string]bool, error) {
	expansions := make(map[string]bool)
	raw := c.Query("expand")
	if raw == "" {
		return expansions, nil
	}

	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		switch part {
		case expandMetadata, expandHistory:
			expansions[part] = true
		default:
			return nil, fmt.Errorf("unsupported expansion: %q", part)
		}
	}
	return expansions, nil
}
