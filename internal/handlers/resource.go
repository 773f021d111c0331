package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/iskandars/NBS-apps/internal/rbac"
	"github.com/iskandars/NBS-apps/internal/storage"
	"github.com/iskandars/NBS-apps/utils"
)

// CreateRequest is the insert shape for an entity kind: it validates required
// fields and builds the record to store.
type CreateRequest[E any] interface {
	Validate() error
	Record() E
}

// ResourceConfig describes one REST resource family.
type ResourceConfig struct {
	// Path is the route group under /api, e.g. "/species".
	Path string
	// Panel is the dashboard panel this resource belongs to, used by the
	// optional RBAC gate.
	Panel rbac.Panel
	// Label names the entity in error messages, lowercase singular.
	Label string
	// FilterParam is the query parameter the list endpoint filters on
	// (also the JSON field name). Empty means list has no filter.
	FilterParam string
	// WithGetByID adds GET /:id to the route group.
	WithGetByID bool
}

// Resource exposes list/filter, create and partial-update for one entity
// kind over a generic store. The same handler body serves all six kinds;
// only the config and type parameters differ.
type Resource[E storage.Record[E], P storage.Patch[E], C CreateRequest[E]] struct {
	cfg   ResourceConfig
	store storage.Store[E, P]

	// OnCreate and OnUpdate are optional hooks invoked after a successful
	// mutation, e.g. to publish alert events. They never affect the response.
	OnCreate func(ctx context.Context, created E)
	OnUpdate func(ctx context.Context, patch P, updated E)
}

func NewResource[E storage.Record[E], P storage.Patch[E], C CreateRequest[E]](cfg ResourceConfig, store storage.Store[E, P]) *Resource[E, P, C] {
	return &Resource[E, P, C]{cfg: cfg, store: store}
}

// RegisterRoutes mounts the resource under api. With enforce set, every
// route in the group runs behind the panel gate for the resource's panel.
func (r *Resource[E, P, C]) RegisterRoutes(api *gin.RouterGroup, enforce bool) {
	grp := api.Group(r.cfg.Path)
	if enforce {
		grp.Use(PanelGate(r.cfg.Panel))
	}
	grp.GET("", r.List)
	grp.POST("", r.Create)
	grp.PATCH("/:id", r.Patch)
	if r.cfg.WithGetByID {
		grp.GET("/:id", r.GetByID)
	}
}

// List responds with every record of the kind, or with the filtered subset
// when the resource's filter query parameter is present. It never 404s; no
// matches is an empty list.
func (r *Resource[E, P, C]) List(c *gin.Context) {
	var (
		recs []E
		err  error
	)
	if v := r.filterValue(c); v != "" {
		recs, err = r.store.GetByField(c.Request.Context(), r.cfg.FilterParam, v)
	} else {
		recs, err = r.store.GetAll(c.Request.Context())
	}
	if err != nil {
		log.Printf("failed to fetch %s: %v", r.cfg.Label, err)
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("FETCH_FAILED", "Failed to fetch "+r.cfg.Label))
		return
	}
	c.JSON(http.StatusOK, recs)
}

// GetByID responds with one record or 404.
func (r *Resource[E, P, C]) GetByID(c *gin.Context) {
	rec, ok, err := r.store.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("failed to fetch %s: %v", r.cfg.Label, err)
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("FETCH_FAILED", "Failed to fetch "+r.cfg.Label))
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, utils.CreateErrorResponse("NOT_FOUND", r.notFoundMessage()))
		return
	}
	c.JSON(http.StatusOK, rec)
}

// Create validates the insert shape and stores a new record. Unknown body
// fields and missing required fields are client errors; storage is not
// touched for an invalid body.
func (r *Resource[E, P, C]) Create(c *gin.Context) {
	var req C
	if err := decodeStrict(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("INVALID_DATA", "Invalid "+r.cfg.Label+" data"))
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("INVALID_DATA", err.Error()))
		return
	}

	rec, err := r.store.Create(c.Request.Context(), req.Record())
	if err != nil {
		log.Printf("failed to create %s: %v", r.cfg.Label, err)
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("CREATE_FAILED", "Failed to create "+r.cfg.Label))
		return
	}
	if r.OnCreate != nil {
		r.OnCreate(c.Request.Context(), rec)
	}
	c.JSON(http.StatusCreated, rec)
}

// Patch merges a partial update into the record for :id. Fields absent from
// the body keep their stored values; unknown fields are rejected.
func (r *Resource[E, P, C]) Patch(c *gin.Context) {
	var patch P
	if err := decodeStrict(c, &patch); err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("INVALID_DATA", "Invalid "+r.cfg.Label+" data"))
		return
	}

	rec, ok, err := r.store.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		log.Printf("failed to update %s: %v", r.cfg.Label, err)
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("UPDATE_FAILED", "Failed to update "+r.cfg.Label))
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, utils.CreateErrorResponse("NOT_FOUND", r.notFoundMessage()))
		return
	}
	if r.OnUpdate != nil {
		r.OnUpdate(c.Request.Context(), patch, rec)
	}
	c.JSON(http.StatusOK, rec)
}

func (r *Resource[E, P, C]) filterValue(c *gin.Context) string {
	if r.cfg.FilterParam == "" {
		return ""
	}
	return c.Query(r.cfg.FilterParam)
}

func (r *Resource[E, P, C]) notFoundMessage() string {
	label := r.cfg.Label
	return strings.ToUpper(label[:1]) + label[1:] + " not found"
}

// decodeStrict decodes a JSON body rejecting unknown fields, so a patch with
// a mistyped field name fails instead of being silently ignored.
func decodeStrict(c *gin.Context, dst any) error {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
