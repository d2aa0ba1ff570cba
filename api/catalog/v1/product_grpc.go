package catalogv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const (
	ProductService_CreateProduct_FullMethodName          = "/catalog.v1.ProductService/CreateProduct"
	ProductService_GetProduct_FullMethodName             = "/catalog.v1.ProductService/GetProduct"
	ProductService_ListProducts_FullMethodName           = "/catalog.v1.ProductService/ListProducts"
	ProductService_ListProductsByCategory_FullMethodName = "/catalog.v1.ProductService/ListProductsByCategory"
	ProductService_UpdateProduct_FullMethodName          = "/catalog.v1.ProductService/UpdateProduct"
	ProductService_DeleteProduct_FullMethodName          = "/catalog.v1.ProductService/DeleteProduct"
	ProductService_CountProducts_FullMethodName          = "/catalog.v1.ProductService/CountProducts"
)

type ProductServiceServer interface {
	CreateProduct(context.Context, *CreateProductRequest) (*CreateProductResponse, error)
	GetProduct(context.Context, *GetProductRequest) (*GetProductResponse, error)
	ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error)
	ListProductsByCategory(context.Context, *ListProductsByCategoryRequest) (*ListProductsResponse, error)
	UpdateProduct(context.Context, *UpdateProductRequest) (*UpdateProductResponse, error)
	DeleteProduct(context.Context, *DeleteProductRequest) (*emptypb.Empty, error)
	CountProducts(context.Context, *CountProductsRequest) (*CountProductsResponse, error)
}

type UnimplementedProductServiceServer struct{}

func (UnimplementedProductServiceServer) CreateProduct(context.Context, *CreateProductRequest) (*CreateProductResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateProduct not implemented")
}
func (UnimplementedProductServiceServer) GetProduct(context.Context, *GetProductRequest) (*GetProductResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetProduct not implemented")
}
func (UnimplementedProductServiceServer) ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListProducts not implemented")
}
func (UnimplementedProductServiceServer) ListProductsByCategory(context.Context, *ListProductsByCategoryRequest) (*ListProductsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListProductsByCategory not implemented")
}
func (UnimplementedProductServiceServer) UpdateProduct(context.Context, *UpdateProductRequest) (*UpdateProductResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateProduct not implemented")
}
func (UnimplementedProductServiceServer) DeleteProduct(context.Context, *DeleteProductRequest) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteProduct not implemented")
}
func (UnimplementedProductServiceServer) CountProducts(context.Context, *CountProductsRequest) (*CountProductsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CountProducts not implemented")
}

var ProductService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "catalog.v1.ProductService",
	HandlerType: (*ProductServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateProduct", Handler: unary(ProductService_CreateProduct_FullMethodName, ProductServiceServer.CreateProduct)},
		{MethodName: "GetProduct", Handler: unary(ProductService_GetProduct_FullMethodName, ProductServiceServer.GetProduct)},
		{MethodName: "ListProducts", Handler: unary(ProductService_ListProducts_FullMethodName, ProductServiceServer.ListProducts)},
		{MethodName: "ListProductsByCategory", Handler: unary(ProductService_ListProductsByCategory_FullMethodName, ProductServiceServer.ListProductsByCategory)},
		{MethodName: "UpdateProduct", Handler: unary(ProductService_UpdateProduct_FullMethodName, ProductServiceServer.UpdateProduct)},
		{MethodName: "DeleteProduct", Handler: unary(ProductService_DeleteProduct_FullMethodName, ProductServiceServer.DeleteProduct)},
		{MethodName: "CountProducts", Handler: unary(ProductService_CountProducts_FullMethodName, ProductServiceServer.CountProducts)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "catalog/v1/product_service",
}

func RegisterProductServiceServer(s grpc.ServiceRegistrar, srv ProductServiceServer) {
	s.RegisterService(&ProductService_ServiceDesc, srv)
}

type ProductServiceClient interface {
	CreateProduct(ctx context.Context, in *CreateProductRequest, opts ...grpc.CallOption) (*CreateProductResponse, error)
	GetProduct(ctx context.Context, in *GetProductRequest, opts ...grpc.CallOption) (*GetProductResponse, error)
	ListProducts(ctx context.Context, in *ListProductsRequest, opts ...grpc.CallOption) (*ListProductsResponse, error)
	ListProductsByCategory(ctx context.Context, in *ListProductsByCategoryRequest, opts ...grpc.CallOption) (*ListProductsResponse, error)
	UpdateProduct(ctx context.Context, in *UpdateProductRequest, opts ...grpc.CallOption) (*UpdateProductResponse, error)
	DeleteProduct(ctx context.Context, in *DeleteProductRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	CountProducts(ctx context.Context, in *CountProductsRequest, opts ...grpc.CallOption) (*CountProductsResponse, error)
}

type productServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewProductServiceClient(cc grpc.ClientConnInterface) ProductServiceClient {
	return &productServiceClient{cc: cc}
}

func (c *productServiceClient) CreateProduct(ctx context.Context, in *CreateProductRequest, opts ...grpc.CallOption) (*CreateProductResponse, error) {
	return invoke[CreateProductResponse](ctx, c.cc, ProductService_CreateProduct_FullMethodName, in, opts)
}

func (c *productServiceClient) GetProduct(ctx context.Context, in *GetProductRequest, opts ...grpc.CallOption) (*GetProductResponse, error) {
	return invoke[GetProductResponse](ctx, c.cc, ProductService_GetProduct_FullMethodName, in, opts)
}

func (c *productServiceClient) ListProducts(ctx context.Context, in *ListProductsRequest, opts ...grpc.CallOption) (*ListProductsResponse, error) {
	return invoke[ListProductsResponse](ctx, c.cc, ProductService_ListProducts_FullMethodName, in, opts)
}

func (c *productServiceClient) ListProductsByCategory(ctx context.Context, in *ListProductsByCategoryRequest, opts ...grpc.CallOption) (*ListProductsResponse, error) {
	return invoke[ListProductsResponse](ctx, c.cc, ProductService_ListProductsByCategory_FullMethodName, in, opts)
}

func (c *productServiceClient) UpdateProduct(ctx context.Context, in *UpdateProductRequest, opts ...grpc.CallOption) (*UpdateProductResponse, error) {
	return invoke[UpdateProductResponse](ctx, c.cc, ProductService_UpdateProduct_FullMethodName, in, opts)
}

func (c *productServiceClient) DeleteProduct(ctx context.Context, in *DeleteProductRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, ProductService_DeleteProduct_FullMethodName, in, opts)
}

func (c *productServiceClient) CountProducts(ctx context.Context, in *CountProductsRequest, opts ...grpc.CallOption) (*CountProductsResponse, error) {
	return invoke[CountProductsResponse](ctx, c.cc, ProductService_CountProducts_FullMethodName, in, opts)
}
