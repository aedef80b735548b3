package rest

import (
	"net/http"

	"github.com/abgdnv/coffeeshop/internal/product/service"
	"github.com/abgdnv/coffeeshop/pkg/apidoc"
	"github.com/go-openapi/spec"
)

const productTag = "Products"

var (
	productSchema = apidoc.Object(map[string]*spec.Schema{
		"id":    spec.Int64Property(),
		"name":  spec.StringProperty(),
		"price": spec.Float64Property(),
	})
	messageSchema = apidoc.Object(map[string]*spec.Schema{
		"message": spec.StringProperty(),
	})
	unauthorized = apidoc.Reply("Unauthorized", messageSchema)
	notFoundResp = apidoc.Reply(msgNotFound, messageSchema)
	invalidResp  = apidoc.Reply("Invalid input", nil)
)

// DocRoutes describes every product route for the API documentation.
func DocRoutes() []apidoc.Route {
	return []apidoc.Route{
		{
			Method:        http.MethodGet,
			Path:          ProductsPath,
			Summary:       "Get a list of products",
			OperationID:   "getProducts",
			Tag:           productTag,
			Authenticated: true,
			Responses: map[int]*spec.Response{
				http.StatusOK:           apidoc.Reply("A list of products", spec.ArrayProperty(productSchema)),
				http.StatusUnauthorized: unauthorized,
			},
		},
		{
			Method:        http.MethodGet,
			Path:          ProductPathTemplate,
			Summary:       "Get a product by ID",
			OperationID:   "getProduct",
			Tag:           productTag,
			PathParams:    []string{"product_id"},
			Authenticated: true,
			Responses: map[int]*spec.Response{
				http.StatusOK:           apidoc.Reply("A product", productSchema),
				http.StatusUnauthorized: unauthorized,
				http.StatusNotFound:     notFoundResp,
			},
		},
		{
			Method:        http.MethodPost,
			Path:          ProductsPath,
			Summary:       "Create a new product",
			OperationID:   "createProduct",
			Tag:           productTag,
			Authenticated: true,
			Body:          service.CreateContract,
			Responses: map[int]*spec.Response{
				http.StatusCreated:      apidoc.Reply("Product created", productSchema),
				http.StatusBadRequest:   invalidResp,
				http.StatusUnauthorized: unauthorized,
			},
		},
		{
			Method:        http.MethodPut,
			Path:          ProductPathTemplate,
			Summary:       "Update a product",
			OperationID:   "updateProduct",
			Tag:           productTag,
			PathParams:    []string{"product_id"},
			Authenticated: true,
			Body:          service.UpdateContract,
			Responses: map[int]*spec.Response{
				http.StatusOK:           apidoc.Reply("Product updated", productSchema),
				http.StatusBadRequest:   invalidResp,
				http.StatusUnauthorized: unauthorized,
				http.StatusNotFound:     notFoundResp,
			},
		},
		{
			Method:        http.MethodDelete,
			Path:          ProductPathTemplate,
			Summary:       "Delete a product",
			OperationID:   "deleteProduct",
			Tag:           productTag,
			PathParams:    []string{"product_id"},
			Authenticated: true,
			Responses: map[int]*spec.Response{
				http.StatusNoContent:    apidoc.Reply("Product deleted", nil),
				http.StatusUnauthorized: unauthorized,
				http.StatusNotFound:     notFoundResp,
			},
		},
	}
}
