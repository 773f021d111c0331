package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iskandars/NBS-apps/internal/models"
	"github.com/iskandars/NBS-apps/internal/rbac"
	"github.com/iskandars/NBS-apps/internal/storage"
	"github.com/iskandars/NBS-apps/utils"
)

// UserHandler exposes dashboard account records. Unlike the six-pack of
// monitoring resources it enforces username uniqueness, so it gets its own
// handler instead of a generic Resource.
type UserHandler struct {
	users *storage.UserStore
}

func NewUserHandler(users *storage.UserStore) *UserHandler {
	return &UserHandler{users: users}
}

// RegisterRoutes mounts user routes. Accounts live behind the settings
// panel, so with enforcement on only sysadmin reaches them.
func (h *UserHandler) RegisterRoutes(api *gin.RouterGroup, enforce bool) {
	grp := api.Group("/users")
	if enforce {
		grp.Use(PanelGate(rbac.PanelSettings))
	}
	grp.POST("", h.Create)
	grp.GET("/:id", h.GetByID)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req models.CreateUserRequest
	if err := decodeStrict(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("INVALID_DATA", "Invalid user data"))
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("INVALID_DATA", err.Error()))
		return
	}

	user, err := h.users.Create(c.Request.Context(), req.Record())
	if errors.Is(err, storage.ErrUsernameTaken) {
		c.JSON(http.StatusConflict, utils.CreateErrorResponse("USERNAME_TAKEN", "Username already taken"))
		return
	}
	if err != nil {
		log.Printf("failed to create user: %v", err)
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("CREATE_FAILED", "Failed to create user"))
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) GetByID(c *gin.Context) {
	user, ok, err := h.users.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("failed to fetch user: %v", err)
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("FETCH_FAILED", "Failed to fetch user"))
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, utils.CreateErrorResponse("NOT_FOUND", "User not found"))
		return
	}
	c.JSON(http.StatusOK, user)
}
