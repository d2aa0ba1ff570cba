package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pb "github.com/fekuna/omnipos-catalog-service/api/catalog/v1"
	"github.com/fekuna/omnipos-catalog-service/internal/categorytree"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/product"
	"github.com/fekuna/omnipos-catalog-service/internal/product/dto"
	"github.com/fekuna/omnipos-catalog-service/pkg/i18n"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"github.com/fekuna/omnipos-catalog-service/pkg/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// stubUseCase records the last filters it was asked for and answers with a fixed page.
type stubUseCase struct {
	products []model.Product
	err      error

	lastCategory int64
	lastFilters  *dto.ProductFilters
}

func (s *stubUseCase) page(f *dto.ProductFilters) (*dto.ProductPage, error) {
	s.lastFilters = f
	if s.err != nil {
		return nil, s.err
	}
	return &dto.ProductPage{Products: s.products, Total: len(s.products), Page: 1, PageSize: 20, TotalPages: 1}, nil
}

func (s *stubUseCase) CreateProduct(_ context.Context, in *dto.CreateProductInput) (*model.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &model.Product{ID: 100, CategoryID: in.CategoryID, Name: in.Name, Price: in.Price, IsActive: true}, nil
}

func (s *stubUseCase) GetProduct(_ context.Context, id int64) (*model.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, p := range s.products {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, product.ErrNotFound
}

func (s *stubUseCase) ListProducts(_ context.Context, f *dto.ProductFilters) (*dto.ProductPage, error) {
	return s.page(f)
}

func (s *stubUseCase) ListByCategory(_ context.Context, categoryID int64, f *dto.ProductFilters) (*dto.ProductPage, error) {
	s.lastCategory = categoryID
	return s.page(f)
}

func (s *stubUseCase) UpdateProduct(context.Context, *dto.UpdateProductInput) (*model.Product, error) {
	return nil, s.err
}

func (s *stubUseCase) DeleteProduct(context.Context, int64) error {
	return s.err
}

func (s *stubUseCase) CountProducts(context.Context) (*dto.ProductCounts, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &dto.ProductCounts{Total: 3, Active: 2, Inactive: 1}, nil
}

func catalog() []model.Product {
	discount := 4.5
	origin := "France"
	return []model.Product{
		{ID: 10, CategoryID: 3, Name: "Brie", Price: 5, DiscountPrice: &discount, Unit: "pc", Origin: &origin, IsActive: true},
		{ID: 11, CategoryID: 4, Name: "Cola", Price: 2, Unit: "can", IsActive: true},
	}
}

func dial(t *testing.T, uc product.UseCase) pb.ProductServiceClient {
	t.Helper()
	require.NoError(t, i18n.Init())

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(middleware.ContextInterceptor()))
	pb.RegisterProductServiceServer(srv, NewProductHandler(uc, logger.NewNop()))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return pb.NewProductServiceClient(conn)
}

func TestListProductsByCategory_OverGRPC(t *testing.T) {
	uc := &stubUseCase{products: catalog()[:1]}
	client := dial(t, uc)

	minPrice := 1.0
	resp, err := client.ListProductsByCategory(context.Background(), &pb.ListProductsByCategoryRequest{
		CategoryID: 1,
		MinPrice:   &minPrice,
		Page:       2,
		PageSize:   5,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), uc.lastCategory)
	require.NotNil(t, uc.lastFilters.MinPrice)
	assert.Equal(t, 1.0, *uc.lastFilters.MinPrice)
	assert.Equal(t, 2, uc.lastFilters.Page)
	assert.Equal(t, 5, uc.lastFilters.PageSize)

	require.Len(t, resp.Products, 1)
	brie := resp.Products[0]
	assert.Equal(t, int64(10), brie.ProductID)
	assert.Equal(t, "France", brie.Origin)
	require.NotNil(t, brie.DiscountPrice)
	assert.Equal(t, 4.5, *brie.DiscountPrice)
	assert.Equal(t, int32(1), resp.TotalPages)
}

func TestListProductsByCategory_RejectsBadRequests(t *testing.T) {
	client := dial(t, &stubUseCase{})
	ctx := context.Background()

	_, err := client.ListProductsByCategory(ctx, &pb.ListProductsByCategoryRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.ListProductsByCategory(ctx, &pb.ListProductsByCategoryRequest{CategoryID: 1, PageSize: -1})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		lang     string
		wantCode codes.Code
		wantMsg  string
	}{
		{name: "category not found", err: product.ErrCategoryNotFound, wantCode: codes.NotFound, wantMsg: "The product category does not exist."},
		{name: "category not found in vietnamese", err: product.ErrCategoryNotFound, lang: "vi", wantCode: codes.NotFound, wantMsg: "Danh mục của sản phẩm không tồn tại."},
		{name: "cycle", err: &categorytree.CycleError{ID: 2}, wantCode: codes.FailedPrecondition, wantMsg: "The category hierarchy is inconsistent (cycle at category 2)."},
		{name: "unexpected", err: errors.New("dial tcp: connection refused"), wantCode: codes.Internal, wantMsg: "Could not load products."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := dial(t, &stubUseCase{err: tt.err})
			ctx := context.Background()
			if tt.lang != "" {
				ctx = metadata.AppendToOutgoingContext(ctx, middleware.HeaderAcceptLanguage, tt.lang)
			}

			_, err := client.ListProductsByCategory(ctx, &pb.ListProductsByCategoryRequest{CategoryID: 9})
			st, ok := status.FromError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, st.Code())
			assert.Equal(t, tt.wantMsg, st.Message())
		})
	}
}

func TestCreateProduct_Validation(t *testing.T) {
	client := dial(t, &stubUseCase{err: product.ErrInvalidPrice})
	_, err := client.CreateProduct(context.Background(), &pb.CreateProductRequest{CategoryID: 3, Name: "Brie", Price: -1})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func newHTTP(t *testing.T, uc product.UseCase) http.Handler {
	t.Helper()
	require.NoError(t, i18n.Init())
	r := chi.NewRouter()
	r.Use(middleware.HTTPContext)
	NewHTTPHandler(NewProductHandler(uc, logger.NewNop())).Routes(r)
	return r
}

func TestHTTP_ProductsByCategory(t *testing.T) {
	uc := &stubUseCase{products: catalog()}
	srv := newHTTP(t, uc)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/category/1?min=1&max=9.5&page=1&page_size=20", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, int64(1), uc.lastCategory)
	require.NotNil(t, uc.lastFilters.MaxPrice)
	assert.Equal(t, 9.5, *uc.lastFilters.MaxPrice)

	var body pb.ListProductsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Products, 2)
	assert.Equal(t, "Brie", body.Products[0].Name)
}

func TestHTTP_Search(t *testing.T) {
	uc := &stubUseCase{products: catalog()}
	srv := newHTTP(t, uc)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/search?name=brie", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "brie", uc.lastFilters.SearchQuery)

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/search", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHTTP_Count(t *testing.T) {
	rec := httptest.NewRecorder()
	newHTTP(t, &stubUseCase{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/count-all-products", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total":3,"activeCount":2,"inactiveCount":1}`, rec.Body.String())
}

func TestHTTP_Errors(t *testing.T) {
	tests := []struct {
		name   string
		uc     *stubUseCase
		method string
		path   string
		body   string
		want   int
	}{
		{name: "bad id", uc: &stubUseCase{}, method: http.MethodGet, path: "/products/abc", want: http.StatusBadRequest},
		{name: "unknown product", uc: &stubUseCase{products: catalog()}, method: http.MethodGet, path: "/products/42", want: http.StatusNotFound},
		{name: "unknown category", uc: &stubUseCase{err: product.ErrCategoryNotFound}, method: http.MethodGet, path: "/products/category/77", want: http.StatusNotFound},
		{name: "bad price", uc: &stubUseCase{}, method: http.MethodGet, path: "/products/category/1?min=cheap", want: http.StatusBadRequest},
		{name: "NaN price", uc: &stubUseCase{}, method: http.MethodGet, path: "/products/category/1?min=NaN", want: http.StatusBadRequest},
		{name: "infinite price", uc: &stubUseCase{}, method: http.MethodGet, path: "/products?max=Inf", want: http.StatusBadRequest},
		{name: "malformed body", uc: &stubUseCase{}, method: http.MethodPost, path: "/products", body: "{", want: http.StatusBadRequest},
		{name: "created", uc: &stubUseCase{}, method: http.MethodPost, path: "/products", body: `{"category_id":3,"name":"Brie","price":5}`, want: http.StatusCreated},
		{name: "deleted", uc: &stubUseCase{}, method: http.MethodDelete, path: "/products/10", want: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newHTTP(t, tt.uc).ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
