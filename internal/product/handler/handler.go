package handler

import (
	"context"
	"errors"

	pb "github.com/fekuna/omnipos-catalog-service/api/catalog/v1"
	"github.com/fekuna/omnipos-catalog-service/internal/categorytree"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/product"
	"github.com/fekuna/omnipos-catalog-service/internal/product/dto"
	"github.com/fekuna/omnipos-catalog-service/pkg/i18n"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"github.com/fekuna/omnipos-catalog-service/pkg/middleware"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

var _ pb.ProductServiceServer = (*ProductHandler)(nil)

type ProductHandler struct {
	pb.UnimplementedProductServiceServer
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ProductHandler) CreateProduct(ctx context.Context, req *pb.CreateProductRequest) (*pb.CreateProductResponse, error) {
	input := &dto.CreateProductInput{
		CategoryID:    req.CategoryID,
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		DiscountPrice: req.DiscountPrice,
		Unit:          req.Unit,
		Origin:        req.Origin,
		ImageURL:      req.ImageURL,
		IsFeatured:    req.IsFeatured,
		IsNew:         req.IsNew,
	}

	p, err := h.uc.CreateProduct(ctx, input)
	if err != nil {
		return nil, h.toStatus(ctx, "create product", err)
	}

	return &pb.CreateProductResponse{Product: mapProductToProto(p)}, nil
}

func (h *ProductHandler) GetProduct(ctx context.Context, req *pb.GetProductRequest) (*pb.GetProductResponse, error) {
	p, err := h.uc.GetProduct(ctx, req.ID)
	if err != nil {
		return nil, h.toStatus(ctx, "get product", err)
	}

	return &pb.GetProductResponse{Product: mapProductToProto(p)}, nil
}

func (h *ProductHandler) ListProducts(ctx context.Context, req *pb.ListProductsRequest) (*pb.ListProductsResponse, error) {
	if req.Page < 0 || req.PageSize < 0 {
		return nil, h.invalidArgument(ctx, "page and page_size must not be negative")
	}

	filters := &dto.ProductFilters{
		IsActive:    req.IsActive,
		MinPrice:    req.MinPrice,
		MaxPrice:    req.MaxPrice,
		SearchQuery: req.Search,
		SortBy:      req.SortBy,
		SortOrder:   req.SortOrder,
		Page:        int(req.Page),
		PageSize:    int(req.PageSize),
	}

	page, err := h.uc.ListProducts(ctx, filters)
	if err != nil {
		return nil, h.toStatus(ctx, "list products", err)
	}
	return mapPageToProto(page), nil
}

func (h *ProductHandler) ListProductsByCategory(ctx context.Context, req *pb.ListProductsByCategoryRequest) (*pb.ListProductsResponse, error) {
	if req.CategoryID <= 0 {
		return nil, h.invalidArgument(ctx, "category_id must be a positive integer")
	}
	if req.Page < 0 || req.PageSize < 0 {
		return nil, h.invalidArgument(ctx, "page and page_size must not be negative")
	}

	filters := &dto.ProductFilters{
		MinPrice:    req.MinPrice,
		MaxPrice:    req.MaxPrice,
		SearchQuery: req.Search,
		SortBy:      req.SortBy,
		SortOrder:   req.SortOrder,
		Page:        int(req.Page),
		PageSize:    int(req.PageSize),
	}

	page, err := h.uc.ListByCategory(ctx, req.CategoryID, filters)
	if err != nil {
		return nil, h.toStatus(ctx, "list products by category", err)
	}
	return mapPageToProto(page), nil
}

func (h *ProductHandler) UpdateProduct(ctx context.Context, req *pb.UpdateProductRequest) (*pb.UpdateProductResponse, error) {
	input := &dto.UpdateProductInput{
		ID:            req.ID,
		CategoryID:    req.CategoryID,
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		DiscountPrice: req.DiscountPrice,
		Unit:          req.Unit,
		Origin:        req.Origin,
		ImageURL:      req.ImageURL,
		IsFeatured:    req.IsFeatured,
		IsNew:         req.IsNew,
		IsActive:      req.IsActive,
	}

	p, err := h.uc.UpdateProduct(ctx, input)
	if err != nil {
		return nil, h.toStatus(ctx, "update product", err)
	}

	return &pb.UpdateProductResponse{Product: mapProductToProto(p)}, nil
}

func (h *ProductHandler) DeleteProduct(ctx context.Context, req *pb.DeleteProductRequest) (*emptypb.Empty, error) {
	if err := h.uc.DeleteProduct(ctx, req.ID); err != nil {
		return nil, h.toStatus(ctx, "delete product", err)
	}
	return &emptypb.Empty{}, nil
}

func (h *ProductHandler) CountProducts(ctx context.Context, _ *pb.CountProductsRequest) (*pb.CountProductsResponse, error) {
	c, err := h.uc.CountProducts(ctx)
	if err != nil {
		return nil, h.toStatus(ctx, "count products", err)
	}
	return &pb.CountProductsResponse{
		Total:         int32(c.Total),
		ActiveCount:   int32(c.Active),
		InactiveCount: int32(c.Inactive),
	}, nil
}

func (h *ProductHandler) toStatus(ctx context.Context, op string, err error) error {
	lang := middleware.Locale(ctx)

	var cycle *categorytree.CycleError
	switch {
	case errors.Is(err, product.ErrNotFound):
		return status.Error(codes.NotFound, i18n.T(lang, "product.not_found", nil))
	case errors.Is(err, product.ErrCategoryNotFound):
		return status.Error(codes.NotFound, i18n.T(lang, "product.category_not_found", nil))
	case errors.Is(err, product.ErrNameRequired):
		return status.Error(codes.InvalidArgument, i18n.T(lang, "product.name_required", nil))
	case errors.Is(err, product.ErrInvalidPrice):
		return status.Error(codes.InvalidArgument, i18n.T(lang, "product.invalid_price", nil))
	case errors.As(err, &cycle):
		return status.Error(codes.FailedPrecondition, i18n.T(lang, "category.cycle", map[string]interface{}{"ID": cycle.ID}))
	}

	h.logger.Error("failed to "+op,
		zap.String("request_id", middleware.RequestID(ctx)),
		zap.Error(err),
	)
	return status.Error(codes.Internal, i18n.T(lang, "product.load_failed", nil))
}

func (h *ProductHandler) invalidArgument(ctx context.Context, detail string) error {
	msg := i18n.T(middleware.Locale(ctx), "request.invalid_argument", map[string]interface{}{"Detail": detail})
	return status.Error(codes.InvalidArgument, msg)
}

func mapPageToProto(page *dto.ProductPage) *pb.ListProductsResponse {
	out := make([]*pb.Product, len(page.Products))
	for i := range page.Products {
		out[i] = mapProductToProto(&page.Products[i])
	}
	return &pb.ListProductsResponse{
		Products:   out,
		Total:      int32(page.Total),
		Page:       int32(page.Page),
		PageSize:   int32(page.PageSize),
		TotalPages: int32(page.TotalPages),
	}
}

func mapProductToProto(p *model.Product) *pb.Product {
	if p == nil {
		return nil
	}

	return &pb.Product{
		ProductID:     p.ID,
		CategoryID:    p.CategoryID,
		Name:          p.Name,
		Description:   deref(p.Description),
		Price:         p.Price,
		DiscountPrice: p.DiscountPrice,
		Unit:          p.Unit,
		Origin:        deref(p.Origin),
		ImageURL:      deref(p.ImageURL),
		IsFeatured:    p.IsFeatured,
		IsNew:         p.IsNew,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
