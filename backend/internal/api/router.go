package api

import (
	stderrors "errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"family-tree/backend/internal/constants"
	"family-tree/backend/internal/graph"
	"family-tree/backend/internal/tree"
	apperrors "family-tree/backend/pkg/errors"
)

// RequestIDHeader carries the per-request correlation id
const RequestIDHeader = constants.RequestIDHeader

// Handler serves the tree over HTTP. The tree itself is single-owner, so every
// handler holds mu for the whole call.
type Handler struct {
	mu     sync.Mutex
	tree   *tree.Tree
	logger *zap.Logger
}

// NewHandler wraps a tree
func NewHandler(t *tree.Tree, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{tree: t, logger: logger}
}

// NewRouter builds the gin engine with middleware and routes
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(requestID())
	router.Use(accessLogger(h.logger))
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.POST("/bootstrap", h.bootstrap)
		api.POST("/people", h.addPerson)
		api.GET("/people", h.listPeople)
		api.GET("/people/:id", h.getPerson)
		api.GET("/people/:id/options", h.options)
		api.POST("/connections", h.connect)
	}

	return router
}

type personRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Gender    string `json:"gender" binding:"required"`
	Cohort    *int   `json:"cohort" binding:"omitempty,min=0"`
}

type connectionRequest struct {
	PersonOne int    `json:"person_one" binding:"required,min=1"`
	PersonTwo int    `json:"person_two" binding:"required,min=1"`
	Relation  string `json:"relation" binding:"required"`
}

type edgeResponse struct {
	Target   int        `json:"target"`
	Name     string     `json:"name"`
	Relation graph.Kind `json:"relation"`
}

type personResponse struct {
	*graph.Person
	FullName string         `json:"full_name"`
	Edges    []edgeResponse `json:"edges,omitempty"`
}

func newPersonResponse(p *graph.Person, edges []graph.Edge) personResponse {
	resp := personResponse{Person: p, FullName: p.FullName()}
	for _, e := range edges {
		resp.Edges = append(resp.Edges, edgeResponse{
			Target:   e.Target.ID,
			Name:     e.Target.FullName(),
			Relation: e.Kind,
		})
	}
	return resp
}

func (r personRequest) options() (graph.Gender, []graph.PersonOption, error) {
	gender, err := graph.ParseGender(r.Gender)
	if err != nil {
		return gender, nil, err
	}
	var opts []graph.PersonOption
	if r.Cohort != nil {
		opts = append(opts, graph.WithCohort(*r.Cohort))
	}
	return gender, opts, nil
}

func (h *Handler) bootstrap(c *gin.Context) {
	var req personRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	gender, opts, err := req.options()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.mu.Lock()
	p, err := h.tree.Bootstrap(req.FirstName, req.LastName, gender, opts...)
	h.mu.Unlock()
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, newPersonResponse(p, nil))
}

func (h *Handler) addPerson(c *gin.Context) {
	var req personRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	gender, opts, err := req.options()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.mu.Lock()
	p := h.tree.AddPerson(req.FirstName, req.LastName, gender, opts...)
	h.mu.Unlock()

	c.JSON(http.StatusCreated, newPersonResponse(p, nil))
}

func (h *Handler) listPeople(c *gin.Context) {
	h.mu.Lock()
	people := h.tree.People()
	h.mu.Unlock()

	resp := make([]personResponse, 0, len(people))
	for _, p := range people {
		resp = append(resp, newPersonResponse(p, nil))
	}
	c.JSON(http.StatusOK, gin.H{"people": resp, "count": len(resp)})
}

func (h *Handler) getPerson(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	h.mu.Lock()
	p, found := h.tree.Person(id)
	edges, err := h.tree.Edges(id)
	h.mu.Unlock()

	if !found {
		h.fail(c, apperrors.NewMemberNotRegistered(id, "", apperrors.ScopeTree))
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}

	if c.Query("sort") == "priority" {
		edges = graph.SortEdges(edges)
	}
	c.JSON(http.StatusOK, newPersonResponse(p, edges))
}

func (h *Handler) options(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	h.mu.Lock()
	kinds, err := h.tree.Available(id)
	h.mu.Unlock()
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "relations": kinds})
}

func (h *Handler) connect(c *gin.Context) {
	var req connectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	kind, err := graph.ParseKind(req.Relation)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.mu.Lock()
	err = h.tree.ConnectByID(req.PersonOne, req.PersonTwo, kind)
	h.mu.Unlock()
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"person_one": req.PersonOne,
		"person_two": req.PersonTwo,
		"relation":   kind,
	})
}

// fail maps domain errors onto HTTP statuses with their structured fields
func (h *Handler) fail(c *gin.Context, err error) {
	var (
		missing  *apperrors.ErrMemberNotRegistered
		invalid  *apperrors.ErrInvalidRelationship
		role     *apperrors.ErrInvalidGenderRole
		notEmpty *apperrors.ErrTreeNotEmpty
	)

	switch {
	case stderrors.As(err, &missing):
		c.JSON(http.StatusNotFound, gin.H{
			"error":     missing.Message,
			"type":      missing.Type,
			"member_id": missing.MemberID,
			"scope":     missing.Scope,
		})
	case stderrors.As(err, &invalid):
		c.JSON(http.StatusConflict, gin.H{
			"error":     invalid.Message,
			"type":      invalid.Type,
			"member_id": invalid.MemberID,
			"relation":  invalid.Kind,
			"reason":    invalid.Reason,
		})
	case stderrors.As(err, &role):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":     role.Message,
			"type":      role.Type,
			"member_id": role.MemberID,
			"relation":  role.Kind,
			"expected":  role.Expected,
		})
	case stderrors.As(err, &notEmpty):
		c.JSON(http.StatusConflict, gin.H{
			"error": notEmpty.Message,
			"type":  notEmpty.Type,
			"size":  notEmpty.Size,
		})
	default:
		h.logger.Error("Unexpected tree error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
		return 0, false
	}
	return id, true
}

// requestID reuses the caller's X-Request-ID or generates one
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

// accessLogger is a custom logger middleware for Gin
func accessLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		log.Info("HTTP Request",
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Duration("latency", latency),
			zap.String("ip", c.ClientIP()),
			zap.String("request_id", c.GetString("request_id")),
		)
	}
}
