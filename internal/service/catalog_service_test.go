package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/varteks/matrixorder/internal/model/entity"
)

type fakeDirectory struct {
	dealers     []entity.Dealer
	bases       []entity.ProductBase
	skus        map[string][]entity.Sku
	searchCalls int
}

func (f *fakeDirectory) List(_ context.Context) ([]entity.Dealer, error) {
	return f.dealers, nil
}

func (f *fakeDirectory) SearchByName(_ context.Context, keyword string) ([]entity.Dealer, error) {
	f.searchCalls++
	var out []entity.Dealer
	for _, d := range f.dealers {
		if containsFold(d.Name, keyword) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDirectory) ListBases(_ context.Context) ([]entity.ProductBase, error) {
	return f.bases, nil
}

func (f *fakeDirectory) SearchBases(_ context.Context, keyword string) ([]entity.ProductBase, error) {
	f.searchCalls++
	var out []entity.ProductBase
	for _, b := range f.bases {
		if containsFold(b.BaseName, keyword) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeDirectory) ListSkusByBase(_ context.Context, baseID string) ([]entity.Sku, error) {
	return f.skus[baseID], nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func TestSearchDealersShortQuerySkipsBackend(t *testing.T) {
	dir := &fakeDirectory{dealers: []entity.Dealer{{ID: "d1", Name: "Abanoz"}}}
	svc := NewCatalogService(dir, dir, nil)

	dealers, err := svc.SearchDealers(context.Background(), "ab")
	require.NoError(t, err)
	assert.Empty(t, dealers)
	assert.Zero(t, dir.searchCalls, "2-char query must not issue a backend call")

	// 空白不计入长度
	dealers, err = svc.SearchDealers(context.Background(), "  ab   ")
	require.NoError(t, err)
	assert.Empty(t, dealers)
	assert.Zero(t, dir.searchCalls)
}

func TestSearchDealersTrimsAndSearches(t *testing.T) {
	dir := &fakeDirectory{dealers: []entity.Dealer{
		{ID: "d1", Name: "Abanoz Tekstil"},
		{ID: "d2", Name: "Yildiz Corap"},
	}}
	svc := NewCatalogService(dir, dir, nil)

	dealers, err := svc.SearchDealers(context.Background(), "  aba ")
	require.NoError(t, err)
	require.Len(t, dealers, 1)
	assert.Equal(t, "d1", dealers[0].ID)
	assert.Equal(t, 1, dir.searchCalls)
}

func TestSearchProductsShortQuerySkipsBackend(t *testing.T) {
	dir := &fakeDirectory{bases: []entity.ProductBase{{ID: "p1", BaseName: "Classic"}}}
	svc := NewCatalogService(dir, dir, nil)

	bases, err := svc.SearchProducts(context.Background(), "cl")
	require.NoError(t, err)
	assert.Empty(t, bases)
	assert.Zero(t, dir.searchCalls)
}

func TestCatalogReadsWithoutCache(t *testing.T) {
	dir := &fakeDirectory{
		dealers: []entity.Dealer{{ID: "d1", Name: "Abanoz"}},
		bases:   []entity.ProductBase{{ID: "p1", BaseName: "Classic"}},
		skus: map[string][]entity.Sku{
			"p1": {{ID: "s1", BaseID: "p1", SizeLabel: "095"}},
		},
	}
	svc := NewCatalogService(dir, dir, nil)

	dealers, err := svc.Dealers(context.Background())
	require.NoError(t, err)
	assert.Len(t, dealers, 1)

	bases, err := svc.ProductBases(context.Background())
	require.NoError(t, err)
	assert.Len(t, bases, 1)

	skus, err := svc.SkusByBase(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, skus, 1)
	assert.Equal(t, "095", skus[0].SizeLabel)
}
