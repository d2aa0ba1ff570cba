package catalogv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const (
	CategoryService_CreateCategory_FullMethodName       = "/catalog.v1.CategoryService/CreateCategory"
	CategoryService_GetCategory_FullMethodName          = "/catalog.v1.CategoryService/GetCategory"
	CategoryService_ListCategories_FullMethodName       = "/catalog.v1.CategoryService/ListCategories"
	CategoryService_UpdateCategory_FullMethodName       = "/catalog.v1.CategoryService/UpdateCategory"
	CategoryService_DeleteCategory_FullMethodName       = "/catalog.v1.CategoryService/DeleteCategory"
	CategoryService_GetCategoryTree_FullMethodName      = "/catalog.v1.CategoryService/GetCategoryTree"
	CategoryService_GetCategoryBranch_FullMethodName    = "/catalog.v1.CategoryService/GetCategoryBranch"
	CategoryService_ListAvailableParents_FullMethodName = "/catalog.v1.CategoryService/ListAvailableParents"
	CategoryService_ValidateCategories_FullMethodName   = "/catalog.v1.CategoryService/ValidateCategories"
)

type CategoryServiceServer interface {
	CreateCategory(context.Context, *CreateCategoryRequest) (*CreateCategoryResponse, error)
	GetCategory(context.Context, *GetCategoryRequest) (*GetCategoryResponse, error)
	ListCategories(context.Context, *ListCategoriesRequest) (*ListCategoriesResponse, error)
	UpdateCategory(context.Context, *UpdateCategoryRequest) (*UpdateCategoryResponse, error)
	DeleteCategory(context.Context, *DeleteCategoryRequest) (*emptypb.Empty, error)
	GetCategoryTree(context.Context, *GetCategoryTreeRequest) (*GetCategoryTreeResponse, error)
	GetCategoryBranch(context.Context, *GetCategoryBranchRequest) (*GetCategoryBranchResponse, error)
	ListAvailableParents(context.Context, *ListAvailableParentsRequest) (*ListAvailableParentsResponse, error)
	ValidateCategories(context.Context, *ValidateCategoriesRequest) (*ValidateCategoriesResponse, error)
}

// UnimplementedCategoryServiceServer can be embedded to keep a server compiling as methods are added.
type UnimplementedCategoryServiceServer struct{}

func (UnimplementedCategoryServiceServer) CreateCategory(context.Context, *CreateCategoryRequest) (*CreateCategoryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateCategory not implemented")
}
func (UnimplementedCategoryServiceServer) GetCategory(context.Context, *GetCategoryRequest) (*GetCategoryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCategory not implemented")
}
func (UnimplementedCategoryServiceServer) ListCategories(context.Context, *ListCategoriesRequest) (*ListCategoriesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListCategories not implemented")
}
func (UnimplementedCategoryServiceServer) UpdateCategory(context.Context, *UpdateCategoryRequest) (*UpdateCategoryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateCategory not implemented")
}
func (UnimplementedCategoryServiceServer) DeleteCategory(context.Context, *DeleteCategoryRequest) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteCategory not implemented")
}
func (UnimplementedCategoryServiceServer) GetCategoryTree(context.Context, *GetCategoryTreeRequest) (*GetCategoryTreeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCategoryTree not implemented")
}
func (UnimplementedCategoryServiceServer) GetCategoryBranch(context.Context, *GetCategoryBranchRequest) (*GetCategoryBranchResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCategoryBranch not implemented")
}
func (UnimplementedCategoryServiceServer) ListAvailableParents(context.Context, *ListAvailableParentsRequest) (*ListAvailableParentsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListAvailableParents not implemented")
}
func (UnimplementedCategoryServiceServer) ValidateCategories(context.Context, *ValidateCategoriesRequest) (*ValidateCategoriesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ValidateCategories not implemented")
}

var CategoryService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "catalog.v1.CategoryService",
	HandlerType: (*CategoryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateCategory", Handler: unary(CategoryService_CreateCategory_FullMethodName, CategoryServiceServer.CreateCategory)},
		{MethodName: "GetCategory", Handler: unary(CategoryService_GetCategory_FullMethodName, CategoryServiceServer.GetCategory)},
		{MethodName: "ListCategories", Handler: unary(CategoryService_ListCategories_FullMethodName, CategoryServiceServer.ListCategories)},
		{MethodName: "UpdateCategory", Handler: unary(CategoryService_UpdateCategory_FullMethodName, CategoryServiceServer.UpdateCategory)},
		{MethodName: "DeleteCategory", Handler: unary(CategoryService_DeleteCategory_FullMethodName, CategoryServiceServer.DeleteCategory)},
		{MethodName: "GetCategoryTree", Handler: unary(CategoryService_GetCategoryTree_FullMethodName, CategoryServiceServer.GetCategoryTree)},
		{MethodName: "GetCategoryBranch", Handler: unary(CategoryService_GetCategoryBranch_FullMethodName, CategoryServiceServer.GetCategoryBranch)},
		{MethodName: "ListAvailableParents", Handler: unary(CategoryService_ListAvailableParents_FullMethodName, CategoryServiceServer.ListAvailableParents)},
		{MethodName: "ValidateCategories", Handler: unary(CategoryService_ValidateCategories_FullMethodName, CategoryServiceServer.ValidateCategories)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "catalog/v1/category_service",
}

func RegisterCategoryServiceServer(s grpc.ServiceRegistrar, srv CategoryServiceServer) {
	s.RegisterService(&CategoryService_ServiceDesc, srv)
}

type CategoryServiceClient interface {
	CreateCategory(ctx context.Context, in *CreateCategoryRequest, opts ...grpc.CallOption) (*CreateCategoryResponse, error)
	GetCategory(ctx context.Context, in *GetCategoryRequest, opts ...grpc.CallOption) (*GetCategoryResponse, error)
	ListCategories(ctx context.Context, in *ListCategoriesRequest, opts ...grpc.CallOption) (*ListCategoriesResponse, error)
	UpdateCategory(ctx context.Context, in *UpdateCategoryRequest, opts ...grpc.CallOption) (*UpdateCategoryResponse, error)
	DeleteCategory(ctx context.Context, in *DeleteCategoryRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	GetCategoryTree(ctx context.Context, in *GetCategoryTreeRequest, opts ...grpc.CallOption) (*GetCategoryTreeResponse, error)
	GetCategoryBranch(ctx context.Context, in *GetCategoryBranchRequest, opts ...grpc.CallOption) (*GetCategoryBranchResponse, error)
	ListAvailableParents(ctx context.Context, in *ListAvailableParentsRequest, opts ...grpc.CallOption) (*ListAvailableParentsResponse, error)
	ValidateCategories(ctx context.Context, in *ValidateCategoriesRequest, opts ...grpc.CallOption) (*ValidateCategoriesResponse, error)
}

type categoryServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCategoryServiceClient(cc grpc.ClientConnInterface) CategoryServiceClient {
	return &categoryServiceClient{cc: cc}
}

func (c *categoryServiceClient) CreateCategory(ctx context.Context, in *CreateCategoryRequest, opts ...grpc.CallOption) (*CreateCategoryResponse, error) {
	return invoke[CreateCategoryResponse](ctx, c.cc, CategoryService_CreateCategory_FullMethodName, in, opts)
}

func (c *categoryServiceClient) GetCategory(ctx context.Context, in *GetCategoryRequest, opts ...grpc.CallOption) (*GetCategoryResponse, error) {
	return invoke[GetCategoryResponse](ctx, c.cc, CategoryService_GetCategory_FullMethodName, in, opts)
}

func (c *categoryServiceClient) ListCategories(ctx context.Context, in *ListCategoriesRequest, opts ...grpc.CallOption) (*ListCategoriesResponse, error) {
	return invoke[ListCategoriesResponse](ctx, c.cc, CategoryService_ListCategories_FullMethodName, in, opts)
}

func (c *categoryServiceClient) UpdateCategory(ctx context.Context, in *UpdateCategoryRequest, opts ...grpc.CallOption) (*UpdateCategoryResponse, error) {
	return invoke[UpdateCategoryResponse](ctx, c.cc, CategoryService_UpdateCategory_FullMethodName, in, opts)
}

func (c *categoryServiceClient) DeleteCategory(ctx context.Context, in *DeleteCategoryRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, CategoryService_DeleteCategory_FullMethodName, in, opts)
}

func (c *categoryServiceClient) GetCategoryTree(ctx context.Context, in *GetCategoryTreeRequest, opts ...grpc.CallOption) (*GetCategoryTreeResponse, error) {
	return invoke[GetCategoryTreeResponse](ctx, c.cc, CategoryService_GetCategoryTree_FullMethodName, in, opts)
}

func (c *categoryServiceClient) GetCategoryBranch(ctx context.Context, in *GetCategoryBranchRequest, opts ...grpc.CallOption) (*GetCategoryBranchResponse, error) {
	return invoke[GetCategoryBranchResponse](ctx, c.cc, CategoryService_GetCategoryBranch_FullMethodName, in, opts)
}

func (c *categoryServiceClient) ListAvailableParents(ctx context.Context, in *ListAvailableParentsRequest, opts ...grpc.CallOption) (*ListAvailableParentsResponse, error) {
	return invoke[ListAvailableParentsResponse](ctx, c.cc, CategoryService_ListAvailableParents_FullMethodName, in, opts)
}

func (c *categoryServiceClient) ValidateCategories(ctx context.Context, in *ValidateCategoriesRequest, opts ...grpc.CallOption) (*ValidateCategoriesResponse, error) {
	return invoke[ValidateCategoriesResponse](ctx, c.cc, CategoryService_ValidateCategories_FullMethodName, in, opts)
}
