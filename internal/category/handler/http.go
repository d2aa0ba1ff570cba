package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	pb "github.com/fekuna/omnipos-catalog-service/api/catalog/v1"
	"github.com/fekuna/omnipos-catalog-service/pkg/middleware"
	"github.com/go-chi/chi/v5"
)

// HTTPHandler serves the storefront's REST routes on top of CategoryHandler, so both
// transports share validation, error mapping and localization.
type HTTPHandler struct {
	h *CategoryHandler
}

func NewHTTPHandler(h *CategoryHandler) *HTTPHandler {
	return &HTTPHandler{h: h}
}

func (x *HTTPHandler) Routes(r chi.Router) {
	r.Route("/categories", func(r chi.Router) {
		r.Get("/", x.list)
		r.Post("/", x.create)
		r.Get("/tree", x.tree)
		r.Get("/validate", x.validate)
		r.Get("/parents", x.parents)
		r.Get("/{id}", x.get)
		r.Put("/{id}", x.update)
		r.Delete("/{id}", x.delete)
		r.Get("/{id}/branch", x.branch)
	})
}

func (x *HTTPHandler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := &pb.ListCategoriesRequest{Search: q.Get("search")}
	var err error
	if req.ParentID, err = middleware.OptionalInt64(q.Get("parent_id")); err != nil {
		middleware.WriteError(w, x.h.invalidArgument(r.Context(), "parent_id"))
		return
	}
	if v := q.Get("is_active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			middleware.WriteError(w, x.h.invalidArgument(r.Context(), "is_active"))
			return
		}
		req.IsActive = &active
	}
	if req.Page, err = middleware.Int32Param(q.Get("page")); err != nil {
		middleware.WriteError(w, x.h.invalidArgument(r.Context(), "page"))
		return
	}
	if req.PageSize, err = middleware.Int32Param(q.Get("page_size")); err != nil {
		middleware.WriteError(w, x.h.invalidArgument(r.Context(), "page_size"))
		return
	}

	resp, err := x.h.ListCategories(r.Context(), req)
	middleware.Respond(w, http.StatusOK, resp, err)
}

func (x *HTTPHandler) create(w http.ResponseWriter, r *http.Request) {
	var req pb.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, x.h.invalidArgument(r.Context(), "malformed JSON body"))
		return
	}
	resp, err := x.h.CreateCategory(r.Context(), &req)
	middleware.Respond(w, http.StatusCreated, resp, err)
}

// tree serves GET /categories/tree. A matching If-None-Match yields 304.
func (x *HTTPHandler) tree(w http.ResponseWriter, r *http.Request) {
	parent, err := middleware.OptionalInt64(r.URL.Query().Get("parent_id"))
	if err != nil {
		middleware.WriteError(w, x.h.invalidArgument(r.Context(), "parent_id"))
		return
	}

	resp, err := x.h.GetCategoryTree(r.Context(), &pb.GetCategoryTreeRequest{ParentID: parent})
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	etag := strconv.Quote(resp.ETag)
	if parent != nil {
		etag = strconv.Quote(resp.ETag + "-" + strconv.FormatInt(*parent, 10))
	}
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	middleware.WriteJSON(w, http.StatusOK, resp)
}

func (x *HTTPHandler) validate(w http.ResponseWriter, r *http.Request) {
	resp, err := x.h.ValidateCategories(r.Context(), &pb.ValidateCategoriesRequest{})
	middleware.Respond(w, http.StatusOK, resp, err)
}

func (x *HTTPHandler) parents(w http.ResponseWriter, r *http.Request) {
	id, err := middleware.OptionalInt64(r.URL.Query().Get("category_id"))
	if err != nil {
		middleware.WriteError(w, x.h.invalidArgument(r.Context(), "category_id"))
		return
	}
	req := &pb.ListAvailableParentsRequest{}
	if id != nil {
		req.CategoryID = *id
	}
	resp, err := x.h.ListAvailableParents(r.Context(), req)
	middleware.Respond(w, http.StatusOK, resp, err)
}

func (x *HTTPHandler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := x.pathID(w, r)
	if !ok {
		return
	}
	resp, err := x.h.GetCategory(r.Context(), &pb.GetCategoryRequest{ID: id})
	middleware.Respond(w, http.StatusOK, resp, err)
}

func (x *HTTPHandler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := x.pathID(w, r)
	if !ok {
		return
	}
	var req pb.UpdateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, x.h.invalidArgument(r.Context(), "malformed JSON body"))
		return
	}
	req.ID = id
	resp, err := x.h.UpdateCategory(r.Context(), &req)
	middleware.Respond(w, http.StatusOK, resp, err)
}

func (x *HTTPHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := x.pathID(w, r)
	if !ok {
		return
	}
	if _, err := x.h.DeleteCategory(r.Context(), &pb.DeleteCategoryRequest{ID: id}); err != nil {
		middleware.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (x *HTTPHandler) branch(w http.ResponseWriter, r *http.Request) {
	id, ok := x.pathID(w, r)
	if !ok {
		return
	}
	resp, err := x.h.GetCategoryBranch(r.Context(), &pb.GetCategoryBranchRequest{CategoryID: id})
	middleware.Respond(w, http.StatusOK, resp, err)
}

func (x *HTTPHandler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := middleware.PathID(r, "id")
	if err != nil {
		middleware.WriteError(w, x.h.invalidArgument(r.Context(), "id must be a positive integer"))
		return 0, false
	}
	return id, true
}
