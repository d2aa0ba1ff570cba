package handler

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	pb "github.com/fekuna/omnipos-catalog-service/api/catalog/v1"
	"github.com/fekuna/omnipos-catalog-service/pkg/middleware"
	"github.com/go-chi/chi/v5"
)

// HTTPHandler serves the storefront's product routes on top of ProductHandler.
type HTTPHandler struct {
	h *ProductHandler
}

func NewHTTPHandler(h *ProductHandler) *HTTPHandler {
	return &HTTPHandler{h: h}
}

func (x *HTTPHandler) Routes(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", x.list)
		r.Post("/", x.create)
		r.Get("/search", x.search)
		r.Get("/count-all-products", x.count)
		r.Get("/category/{id}", x.byCategory)
		r.Get("/{id}", x.get)
		r.Put("/{id}", x.update)
		r.Delete("/{id}", x.delete)
	})
}

// pageQuery holds the paging, price and sort parameters shared by the list routes.
type pageQuery struct {
	minPrice  *float64
	maxPrice  *float64
	sortBy    string
	sortOrder string
	page      int32
	pageSize  int32
}

func parsePageQuery(q url.Values) (pageQuery, string, bool) {
	pq := pageQuery{sortBy: q.Get("sort_by"), sortOrder: q.Get("sort_order")}
	var err error
	if pq.minPrice, err = middleware.OptionalFloat(q.Get("min")); err != nil {
		return pq, "min", false
	}
	if pq.maxPrice, err = middleware.OptionalFloat(q.Get("max")); err != nil {
		return pq, "max", false
	}
	if pq.page, err = middleware.Int32Param(q.Get("page")); err != nil {
		return pq, "page", false
	}
	if pq.pageSize, err = middleware.Int32Param(q.Get("page_size")); err != nil {
		return pq, "page_size", false
	}
	return pq, "", true
}

func (x *HTTPHandler) list(w http.ResponseWriter, r *http.Request) {
	x.listWithSearch(w, r, r.URL.Query().Get("search"))
}

// search serves GET /products/search?name=.
func (x *HTTPHandler) search(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		middleware.WriteError(w, x.h.invalidArgument(r.Context(), "name is required"))
		return
	}
	x.listWithSearch(w, r, name)
}

func (x *HTTPHandler) listWithSearch(w http.ResponseWriter, r *http.Request, search string) {
	q := r.URL.Query()
	pq, bad, ok := parsePageQuery(q)
	if !ok {
		middleware.WriteError(w, x.h.invalidArgument(r.Context(), bad))
		return
	}

	req := &pb.ListProductsRequest{
		Search:    search,
		MinPrice:  pq.minPrice,
		MaxPrice:  pq.maxPrice,
		SortBy:    pq.sortBy,
		SortOrder: pq.sortOrder,
		Page:      pq.page,
		PageSize:  pq.pageSize,
	}
	if v := q.Get("is_active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			middleware.WriteError(w, x.h.invalidArgument(r.Context(), "is_active"))
			return
		}
		req.IsActive = &active
	}

	resp, err := x.h.ListProducts(r.Context(), req)
	middleware.Respond(w, http.StatusOK, resp, err)
}

// byCategory serves GET /products/category/{id}: active products of the category and
// all of its subcategories.
func (x *HTTPHandler) byCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := x.pathID(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	pq, bad, ok := parsePageQuery(q)
	if !ok {
		middleware.WriteError(w, x.h.invalidArgument(r.Context(), bad))
		return
	}

	resp, err := x.h.ListProductsByCategory(r.Context(), &pb.ListProductsByCategoryRequest{
		CategoryID: id,
		Search:     q.Get("search"),
		MinPrice:   pq.minPrice,
		MaxPrice:   pq.maxPrice,
		SortBy:     pq.sortBy,
		SortOrder:  pq.sortOrder,
		Page:       pq.page,
		PageSize:   pq.pageSize,
	})
	middleware.Respond(w, http.StatusOK, resp, err)
}

func (x *HTTPHandler) count(w http.ResponseWriter, r *http.Request) {
	resp, err := x.h.CountProducts(r.Context(), &pb.CountProductsRequest{})
	middleware.Respond(w, http.StatusOK, resp, err)
}

func (x *HTTPHandler) create(w http.ResponseWriter, r *http.Request) {
	var req pb.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, x.h.invalidArgument(r.Context(), "malformed JSON body"))
		return
	}
	resp, err := x.h.CreateProduct(r.Context(), &req)
	middleware.Respond(w, http.StatusCreated, resp, err)
}

func (x *HTTPHandler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := x.pathID(w, r)
	if !ok {
		return
	}
	resp, err := x.h.GetProduct(r.Context(), &pb.GetProductRequest{ID: id})
	middleware.Respond(w, http.StatusOK, resp, err)
}

func (x *HTTPHandler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := x.pathID(w, r)
	if !ok {
		return
	}
	var req pb.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, x.h.invalidArgument(r.Context(), "malformed JSON body"))
		return
	}
	req.ID = id
	resp, err := x.h.UpdateProduct(r.Context(), &req)
	middleware.Respond(w, http.StatusOK, resp, err)
}

func (x *HTTPHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := x.pathID(w, r)
	if !ok {
		return
	}
	if _, err := x.h.DeleteProduct(r.Context(), &pb.DeleteProductRequest{ID: id}); err != nil {
		middleware.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (x *HTTPHandler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := middleware.PathID(r, "id")
	if err != nil {
		middleware.WriteError(w, x.h.invalidArgument(r.Context(), "id must be a positive integer"))
		return 0, false
	}
	return id, true
}
