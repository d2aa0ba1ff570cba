package usecase

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/category"
	"github.com/fekuna/omnipos-catalog-service/internal/categorytree"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/product"
	"github.com/fekuna/omnipos-catalog-service/internal/product/dto"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"go.uber.org/zap"
)

const (
	indexName      = "products"
	cacheKeyPrefix = "products:list:"
)

const indexMapping = `{
		"mappings": {
			"properties": {
				"product_id": { "type": "long" },
				"category_id": { "type": "long" },
				"name": { "type": "text" },
				"description": { "type": "text" },
				"origin": { "type": "text" },
				"price": { "type": "double" },
				"is_active": { "type": "boolean" },
				"createdAt": { "type": "date" }
			}
		}
	}`

type Options struct {
	CacheTTL        time.Duration
	DefaultPageSize int
	MaxPageSize     int
}

type productUseCase struct {
	repo   product.Repository
	dir    product.CategoryDirectory
	cache  product.ListCache
	es     product.SearchIndex
	opts   Options
	logger logger.ZapLogger
	now    func() time.Time
}

// NewProductUseCase wires the product catalog. cache and es may be nil.
func NewProductUseCase(repo product.Repository, dir product.CategoryDirectory, cache product.ListCache, es product.SearchIndex, opts Options, log logger.ZapLogger) product.UseCase {
	if opts.DefaultPageSize <= 0 {
		opts.DefaultPageSize = 20
	}
	if opts.MaxPageSize < opts.DefaultPageSize {
		opts.MaxPageSize = opts.DefaultPageSize
	}
	return &productUseCase{
		repo:   repo,
		dir:    dir,
		cache:  cache,
		es:     es,
		opts:   opts,
		logger: log,
		now:    time.Now,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, product.ErrNameRequired
	}
	if err := checkPrice(input.Price, input.DiscountPrice); err != nil {
		return nil, err
	}
	if err := uc.checkCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	now := uc.now()
	p := &model.Product{
		CategoryID:    input.CategoryID,
		Name:          name,
		Description:   optional(input.Description),
		Price:         input.Price,
		DiscountPrice: input.DiscountPrice,
		Unit:          strings.TrimSpace(input.Unit),
		Origin:        optional(input.Origin),
		ImageURL:      optional(input.ImageURL),
		IsFeatured:    input.IsFeatured,
		IsNew:         input.IsNew,
		IsActive:      true,
		BaseModel:     model.BaseModel{CreatedAt: now, UpdatedAt: now},
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.invalidateProductCache(ctx)
	uc.syncToElastic(ctx, p)
	return p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, product.ErrNotFound
	}
	return p, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) (*dto.ProductPage, error) {
	f := uc.normalize(filters)
	if f.SearchQuery != "" && uc.es != nil {
		page, err := uc.searchElastic(ctx, &f, nil)
		if err == nil {
			return page, nil
		}
		uc.logger.Error("ES search failed, falling back to DB", zap.Error(err))
	}
	return uc.listDB(ctx, &f)
}

func (uc *productUseCase) ListByCategory(ctx context.Context, categoryID int64, filters *dto.ProductFilters) (*dto.ProductPage, error) {
	if _, err := uc.dir.GetCategory(ctx, categoryID); err != nil {
		if errors.Is(err, category.ErrNotFound) {
			return nil, product.ErrCategoryNotFound
		}
		return nil, err
	}

	branch, err := uc.dir.GetBranch(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	f := uc.normalize(filters)
	f.CategoryIDs = branch.Slice()
	active := true
	f.IsActive = &active

	if f.SearchQuery != "" && uc.es != nil {
		page, err := uc.searchElastic(ctx, &f, branch)
		if err == nil {
			return page, nil
		}
		uc.logger.Error("ES search failed, falling back to DB", zap.Error(err))
	}

	page, err := uc.listDB(ctx, &f)
	if err != nil {
		return nil, err
	}
	page.Products = dedupe(categorytree.Filter(page.Products, branch, categoryOf))
	return page, nil
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, product.ErrNameRequired
	}
	if err := checkPrice(input.Price, input.DiscountPrice); err != nil {
		return nil, err
	}

	p, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, product.ErrNotFound
	}

	if p.CategoryID != input.CategoryID {
		if err := uc.checkCategory(ctx, input.CategoryID); err != nil {
			return nil, err
		}
	}

	p.CategoryID = input.CategoryID
	p.Name = name
	p.Description = optional(input.Description)
	p.Price = input.Price
	p.DiscountPrice = input.DiscountPrice
	p.Unit = strings.TrimSpace(input.Unit)
	p.Origin = optional(input.Origin)
	p.ImageURL = optional(input.ImageURL)
	p.IsFeatured = input.IsFeatured
	p.IsNew = input.IsNew
	p.IsActive = input.IsActive
	p.UpdatedAt = uc.now()

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	uc.invalidateProductCache(ctx)
	uc.syncToElastic(ctx, p)
	return p, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id int64) error {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return product.ErrNotFound
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.invalidateProductCache(ctx)
	if uc.es != nil {
		if err := uc.es.Delete(ctx, indexName, strconv.FormatInt(id, 10)); err != nil {
			uc.logger.Error("failed to delete product from ES", zap.Int64("product_id", id), zap.Error(err))
		}
	}
	return nil
}

func (uc *productUseCase) CountProducts(ctx context.Context) (*dto.ProductCounts, error) {
	return uc.repo.CountByStatus(ctx)
}

func (uc *productUseCase) checkCategory(ctx context.Context, id int64) error {
	if _, err := uc.dir.GetCategory(ctx, id); err != nil {
		if errors.Is(err, category.ErrNotFound) {
			return product.ErrCategoryNotFound
		}
		return err
	}
	return nil
}

// normalize applies paging defaults without touching the caller's filters.
func (uc *productUseCase) normalize(filters *dto.ProductFilters) dto.ProductFilters {
	var f dto.ProductFilters
	if filters != nil {
		f = *filters
	}
	f.SearchQuery = strings.TrimSpace(f.SearchQuery)
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = uc.opts.DefaultPageSize
	}
	if f.PageSize > uc.opts.MaxPageSize {
		f.PageSize = uc.opts.MaxPageSize
	}
	return f
}

type cachedPage struct {
	Products []model.Product
	Count    int
}

func (uc *productUseCase) listDB(ctx context.Context, f *dto.ProductFilters) (*dto.ProductPage, error) {
	cacheKey, err := uc.generateCacheKey(f)
	if err == nil && uc.cache != nil {
		if val, err := uc.cache.GetBytes(ctx, cacheKey); err == nil && val != nil {
			var hit cachedPage
			if err := json.Unmarshal(val, &hit); err == nil {
				return newPage(hit.Products, hit.Count, f), nil
			}
		}
	}

	products, count, err := uc.repo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}

	if cacheKey != "" && uc.cache != nil {
		if data, err := json.Marshal(cachedPage{Products: products, Count: count}); err == nil {
			if err := uc.cache.SetBytes(ctx, cacheKey, data, uc.opts.CacheTTL); err != nil {
				uc.logger.Warn("failed to cache product list", zap.Error(err))
			}
		}
	}

	return newPage(products, count, f), nil
}

// searchElastic runs a name search. With a branch, hits are limited to its categories
// both in the query and again on the way out.
func (uc *productUseCase) searchElastic(ctx context.Context, f *dto.ProductFilters, branch categorytree.IDSet) (*dto.ProductPage, error) {
	filter := []map[string]interface{}{}
	if len(f.CategoryIDs) > 0 {
		filter = append(filter, map[string]interface{}{
			"terms": map[string]interface{}{"category_id": f.CategoryIDs},
		})
	}
	if f.IsActive != nil {
		filter = append(filter, map[string]interface{}{
			"term": map[string]interface{}{"is_active": *f.IsActive},
		})
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		rng := map[string]interface{}{}
		if f.MinPrice != nil {
			rng["gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			rng["lte"] = *f.MaxPrice
		}
		filter = append(filter, map[string]interface{}{
			"range": map[string]interface{}{"price": rng},
		})
	}

	q := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": []map[string]interface{}{
					{
						"query_string": map[string]interface{}{
							"query":  fmt.Sprintf("*%s*", escapeQueryString(f.SearchQuery)),
							"fields": []string{"name^3", "description", "origin"},
						},
					},
				},
				"filter": filter,
			},
		},
		"from": (f.Page - 1) * f.PageSize,
		"size": f.PageSize,
	}

	res, err := uc.es.Search(ctx, indexName, q)
	if err != nil {
		return nil, err
	}

	products := make([]model.Product, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var p model.Product
		if err := json.Unmarshal(hit.Source, &p); err != nil {
			uc.logger.Warn("skipping undecodable search hit", zap.String("id", hit.ID), zap.Error(err))
			continue
		}
		products = append(products, p)
	}
	if branch != nil {
		products = categorytree.Filter(products, branch, categoryOf)
	}
	return newPage(dedupe(products), res.Hits.Total.Value, f), nil
}

func (uc *productUseCase) generateCacheKey(filters *dto.ProductFilters) (string, error) {
	data, err := json.Marshal(filters)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%x", cacheKeyPrefix, md5.Sum(data)), nil
}

func (uc *productUseCase) invalidateProductCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.DeletePattern(ctx, cacheKeyPrefix+"*"); err != nil {
		uc.logger.Error("failed to invalidate product cache", zap.Error(err))
	}
}

func (uc *productUseCase) syncToElastic(ctx context.Context, p *model.Product) {
	if uc.es == nil {
		return
	}
	if err := uc.es.CreateIndex(ctx, indexName, indexMapping); err != nil {
		uc.logger.Warn("failed to ensure product index", zap.Error(err))
	}
	if err := uc.es.Index(ctx, indexName, strconv.FormatInt(p.ID, 10), p); err != nil {
		uc.logger.Error("failed to index product", zap.Int64("product_id", p.ID), zap.Error(err))
	}
}

func newPage(products []model.Product, total int, f *dto.ProductFilters) *dto.ProductPage {
	if products == nil {
		products = []model.Product{}
	}
	pages := 0
	if f.PageSize > 0 {
		pages = (total + f.PageSize - 1) / f.PageSize
	}
	return &dto.ProductPage{
		Products:   products,
		Total:      total,
		Page:       f.Page,
		PageSize:   f.PageSize,
		TotalPages: pages,
	}
}

func categoryOf(p model.Product) int64 {
	return p.CategoryID
}

// dedupe keeps the first occurrence of every product id.
func dedupe(products []model.Product) []model.Product {
	seen := make(map[int64]struct{}, len(products))
	out := products[:0]
	for _, p := range products {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out
}

func checkPrice(price float64, discount *float64) error {
	if price < 0 {
		return product.ErrInvalidPrice
	}
	if discount != nil && (*discount < 0 || *discount > price) {
		return product.ErrInvalidPrice
	}
	return nil
}

var queryStringReplacer = strings.NewReplacer(
	`\`, `\\`, `+`, `\+`, `-`, `\-`, `=`, `\=`, `&`, `\&`, `|`, `\|`, `!`, `\!`,
	`(`, `\(`, `)`, `\)`, `{`, `\{`, `}`, `\}`, `[`, `\[`, `]`, `\]`, `^`, `\^`,
	`"`, `\"`, `~`, `\~`, `*`, `\*`, `?`, `\?`, `:`, `\:`, `/`, `\/`, `<`, ``, `>`, ``,
)

// escapeQueryString neutralizes query_string operators in user input.
func escapeQueryString(s string) string {
	return queryStringReplacer.Replace(s)
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
