package handler

import (
	"context"
	"errors"

	pb "github.com/fekuna/omnipos-catalog-service/api/catalog/v1"
	"github.com/fekuna/omnipos-catalog-service/internal/category"
	"github.com/fekuna/omnipos-catalog-service/internal/category/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/categorytree"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/pkg/i18n"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"github.com/fekuna/omnipos-catalog-service/pkg/middleware"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

var _ pb.CategoryServiceServer = (*CategoryHandler)(nil)

type CategoryHandler struct {
	pb.UnimplementedCategoryServiceServer
	uc     category.UseCase
	logger logger.ZapLogger
}

func NewCategoryHandler(uc category.UseCase, log logger.ZapLogger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *CategoryHandler) CreateCategory(ctx context.Context, req *pb.CreateCategoryRequest) (*pb.CreateCategoryResponse, error) {
	input := &dto.CreateCategoryInput{
		ParentID:    parentID(req.ParentID),
		Name:        req.Name,
		Description: req.Description,
		SortOrder:   int(req.SortOrder),
	}

	cat, err := h.uc.CreateCategory(ctx, input)
	if err != nil {
		return nil, h.toStatus(ctx, "create category", err)
	}

	return &pb.CreateCategoryResponse{
		Category: mapModelToProto(cat),
	}, nil
}

func (h *CategoryHandler) GetCategory(ctx context.Context, req *pb.GetCategoryRequest) (*pb.GetCategoryResponse, error) {
	cat, err := h.uc.GetCategory(ctx, req.ID)
	if err != nil {
		return nil, h.toStatus(ctx, "get category", err)
	}

	return &pb.GetCategoryResponse{
		Category: mapModelToProto(cat),
	}, nil
}

func (h *CategoryHandler) ListCategories(ctx context.Context, req *pb.ListCategoriesRequest) (*pb.ListCategoriesResponse, error) {
	if req.Page < 0 || req.PageSize < 0 {
		return nil, h.invalidArgument(ctx, "page and page_size must not be negative")
	}

	filters := &dto.CategoryFilters{
		ParentID: req.ParentID,
		IsActive: req.IsActive,
		Search:   req.Search,
		Page:     int(req.Page),
		PageSize: int(req.PageSize),
	}

	cats, count, err := h.uc.ListCategories(ctx, filters)
	if err != nil {
		return nil, h.toStatus(ctx, "list categories", err)
	}

	protoCats := make([]*pb.Category, len(cats))
	for i := range cats {
		protoCats[i] = mapModelToProto(&cats[i])
	}

	return &pb.ListCategoriesResponse{
		Categories: protoCats,
		Total:      int32(count),
	}, nil
}

func (h *CategoryHandler) UpdateCategory(ctx context.Context, req *pb.UpdateCategoryRequest) (*pb.UpdateCategoryResponse, error) {
	input := &dto.UpdateCategoryInput{
		ID:          req.ID,
		ParentID:    parentID(req.ParentID),
		Name:        req.Name,
		Description: req.Description,
		SortOrder:   int(req.SortOrder),
		IsActive:    req.IsActive,
	}

	cat, err := h.uc.UpdateCategory(ctx, input)
	if err != nil {
		return nil, h.toStatus(ctx, "update category", err)
	}

	return &pb.UpdateCategoryResponse{
		Category: mapModelToProto(cat),
	}, nil
}

func (h *CategoryHandler) DeleteCategory(ctx context.Context, req *pb.DeleteCategoryRequest) (*emptypb.Empty, error) {
	if err := h.uc.DeleteCategory(ctx, req.ID); err != nil {
		return nil, h.toStatus(ctx, "delete category", err)
	}
	return &emptypb.Empty{}, nil
}

func (h *CategoryHandler) GetCategoryTree(ctx context.Context, req *pb.GetCategoryTreeRequest) (*pb.GetCategoryTreeResponse, error) {
	tree, err := h.uc.GetTree(ctx, parentID(req.ParentID))
	if err != nil {
		return nil, h.toStatus(ctx, "get category tree", err)
	}

	return &pb.GetCategoryTreeResponse{
		Version: tree.Version,
		ETag:    tree.ETag,
		Nodes:   mapNodesToProto(tree.Nodes),
	}, nil
}

func (h *CategoryHandler) GetCategoryBranch(ctx context.Context, req *pb.GetCategoryBranchRequest) (*pb.GetCategoryBranchResponse, error) {
	ids, err := h.uc.GetBranch(ctx, req.CategoryID)
	if err != nil {
		return nil, h.toStatus(ctx, "get category branch", err)
	}

	return &pb.GetCategoryBranchResponse{
		CategoryID:  req.CategoryID,
		CategoryIDs: ids.Slice(),
	}, nil
}

func (h *CategoryHandler) ListAvailableParents(ctx context.Context, req *pb.ListAvailableParentsRequest) (*pb.ListAvailableParentsResponse, error) {
	options, err := h.uc.ListAvailableParents(ctx, req.CategoryID)
	if err != nil {
		return nil, h.toStatus(ctx, "list available parents", err)
	}

	out := make([]*pb.ParentOption, len(options))
	for i, o := range options {
		out[i] = &pb.ParentOption{CategoryID: o.ID, Name: o.Name, Level: int32(o.Level)}
	}
	return &pb.ListAvailableParentsResponse{Options: out}, nil
}

func (h *CategoryHandler) ValidateCategories(ctx context.Context, _ *pb.ValidateCategoriesRequest) (*pb.ValidateCategoriesResponse, error) {
	rep, err := h.uc.ValidateDirectory(ctx)
	if err != nil {
		return nil, h.toStatus(ctx, "validate categories", err)
	}

	return &pb.ValidateCategoriesResponse{
		OK:         rep.OK(),
		Duplicates: nonNil(rep.Duplicates),
		Orphans:    nonNil(rep.Orphans),
		Cycles:     nonNil(rep.Cycles),
		Detached:   nonNil(rep.Detached),
	}, nil
}

// toStatus maps a use case error to a gRPC status with a message in the caller's language.
func (h *CategoryHandler) toStatus(ctx context.Context, op string, err error) error {
	lang := middleware.Locale(ctx)

	var cycle *categorytree.CycleError
	var dup *categorytree.DuplicateIDError
	switch {
	case errors.Is(err, category.ErrNotFound):
		return status.Error(codes.NotFound, i18n.T(lang, "category.not_found", nil))
	case errors.Is(err, category.ErrParentNotFound):
		return status.Error(codes.InvalidArgument, i18n.T(lang, "category.parent_not_found", nil))
	case errors.Is(err, category.ErrInvalidParent):
		return status.Error(codes.InvalidArgument, i18n.T(lang, "category.invalid_parent", nil))
	case errors.Is(err, category.ErrNameRequired):
		return status.Error(codes.InvalidArgument, i18n.T(lang, "category.name_required", nil))
	case errors.Is(err, category.ErrInUse):
		return status.Error(codes.FailedPrecondition, i18n.T(lang, "category.in_use", nil))
	case errors.As(err, &cycle):
		return status.Error(codes.FailedPrecondition, i18n.T(lang, "category.cycle", map[string]interface{}{"ID": cycle.ID}))
	case errors.As(err, &dup):
		return status.Error(codes.FailedPrecondition, i18n.T(lang, "category.duplicate", map[string]interface{}{"ID": dup.ID}))
	}

	h.logger.Error("failed to "+op,
		zap.String("request_id", middleware.RequestID(ctx)),
		zap.Error(err),
	)
	return status.Error(codes.Internal, i18n.T(lang, "category.load_failed", nil))
}

func (h *CategoryHandler) invalidArgument(ctx context.Context, detail string) error {
	msg := i18n.T(middleware.Locale(ctx), "request.invalid_argument", map[string]interface{}{"Detail": detail})
	return status.Error(codes.InvalidArgument, msg)
}

// parentID treats 0 as "no parent", the way JSON clients send an empty selection.
func parentID(id *int64) *int64 {
	if id == nil || *id == 0 {
		return nil
	}
	v := *id
	return &v
}

func nonNil(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}

func mapModelToProto(m *model.Category) *pb.Category {
	if m == nil {
		return nil
	}

	desc := ""
	if m.Description != nil {
		desc = *m.Description
	}

	return &pb.Category{
		CategoryID:  m.ID,
		ParentID:    m.ParentID,
		Name:        m.Name,
		Description: desc,
		SortOrder:   int32(m.SortOrder),
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// mapNodesToProto copies the shared tree into response messages. It walks with an
// explicit stack so depth is bounded only by memory.
func mapNodesToProto(nodes []*categorytree.Node) []*pb.CategoryNode {
	type frame struct {
		src *categorytree.Node
		dst *pb.CategoryNode
	}

	out := make([]*pb.CategoryNode, len(nodes))
	var stack []frame
	for i, n := range nodes {
		out[i] = &pb.CategoryNode{Category: *mapModelToProto(&n.Category)}
		stack = append(stack, frame{src: n, dst: out[i]})
	}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		f.dst.Subcategories = make([]*pb.CategoryNode, len(f.src.Subcategories))
		for i, child := range f.src.Subcategories {
			f.dst.Subcategories[i] = &pb.CategoryNode{Category: *mapModelToProto(&child.Category)}
			stack = append(stack, frame{src: child, dst: f.dst.Subcategories[i]})
		}
	}
	return out
}
