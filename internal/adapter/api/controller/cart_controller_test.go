package controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/quintadosovos/erp-avicola/internal/adapter/api/controller"
	"github.com/quintadosovos/erp-avicola/internal/adapter/api/dto"
	"github.com/quintadosovos/erp-avicola/internal/adapter/api/route"
	"github.com/quintadosovos/erp-avicola/internal/adapter/repository"
	"github.com/quintadosovos/erp-avicola/internal/domain/checkout"
	"github.com/quintadosovos/erp-avicola/internal/domain/invoice"
	"github.com/quintadosovos/erp-avicola/internal/domain/product"
	"github.com/quintadosovos/erp-avicola/internal/infrastructure/storage"
	"github.com/quintadosovos/erp-avicola/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoreRouter(t *testing.T) (*gin.Engine, product.Repository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := storage.NewStore(t.TempDir())
	require.NoError(t, err)

	seed := []product.Product{
		{ID: 2, Name: "Ração Postura Premium 20kg", Category: "Rações", Price: 115000, CostPrice: 80000, Stock: 25, Rating: 5},
	}
	productRepo, err := repository.NewProductRepository(store, seed)
	require.NoError(t, err)

	ledgerRepo, err := repository.NewLedgerRepository(store)
	require.NoError(t, err)

	numbers, err := repository.NewInvoiceSequence(store)
	require.NoError(t, err)

	checkoutSvc := checkout.NewService(productRepo, ledgerRepo, numbers, logger.NewNopLogger())
	cartController := controller.NewCartController(repository.NewCartRepository(), productRepo, checkoutSvc, logger.NewNopLogger())

	router := gin.New()
	api := router.Group("/api/v1")
	route.RegisterCartRoutes(api, cartController)

	return router, productRepo
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}

	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCartFlow(t *testing.T) {
	t.Run("compra online completa: carrinho, itens e fatura", func(t *testing.T) {
		router, productRepo := newStoreRouter(t)

		rec := doJSON(t, router, http.MethodPost, "/api/v1/carts", nil)
		require.Equal(t, http.StatusCreated, rec.Code)

		var created dto.CartResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		require.NotEmpty(t, created.Token)

		base := "/api/v1/carts/" + created.Token

		rec = doJSON(t, router, http.MethodPost, base+"/items", dto.CartAddRequest{ProductID: 2})
		require.Equal(t, http.StatusOK, rec.Code)
		rec = doJSON(t, router, http.MethodPost, base+"/items", dto.CartAddRequest{ProductID: 2})
		require.Equal(t, http.StatusOK, rec.Code)

		var cartState dto.CartResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cartState))
		require.Len(t, cartState.Items, 1)
		assert.Equal(t, 2, cartState.Items[0].Quantity)
		assert.Equal(t, 230000.0, cartState.Total)

		rec = doJSON(t, router, http.MethodPost, base+"/checkout", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var inv dto.InvoiceResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &inv))
		assert.Equal(t, int64(invoice.FirstNumber), inv.Number)
		assert.Equal(t, 230000.0, inv.Total)

		// Estoque abatido e carrinho esvaziado
		p, err := productRepo.FindByID(context.Background(), 2)
		require.NoError(t, err)
		assert.Equal(t, 23, p.Stock)

		rec = doJSON(t, router, http.MethodGet, base, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var emptied dto.CartResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &emptied))
		assert.Empty(t, emptied.Items)
	})

	t.Run("checkout de carrinho vazio é 400", func(t *testing.T) {
		router, _ := newStoreRouter(t)

		rec := doJSON(t, router, http.MethodPost, "/api/v1/carts", nil)
		require.Equal(t, http.StatusCreated, rec.Code)

		var created dto.CartResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

		rec = doJSON(t, router, http.MethodPost, "/api/v1/carts/"+created.Token+"/checkout", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("venda acima do estoque é 409", func(t *testing.T) {
		router, _ := newStoreRouter(t)

		rec := doJSON(t, router, http.MethodPost, "/api/v1/carts", nil)
		var created dto.CartResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

		base := "/api/v1/carts/" + created.Token
		rec = doJSON(t, router, http.MethodPost, base+"/items", dto.CartAddRequest{ProductID: 2})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, router, http.MethodPatch, fmt.Sprintf("%s/items/%d", base, 2), dto.CartQuantityRequest{Delta: 29})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, router, http.MethodPost, base+"/checkout", nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("produto inexistente no carrinho é 404", func(t *testing.T) {
		router, _ := newStoreRouter(t)

		rec := doJSON(t, router, http.MethodPost, "/api/v1/carts", nil)
		var created dto.CartResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

		rec = doJSON(t, router, http.MethodPost, "/api/v1/carts/"+created.Token+"/items", dto.CartAddRequest{ProductID: 99})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
