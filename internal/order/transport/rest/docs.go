package rest

import (
	"net/http"

	"github.com/abgdnv/coffeeshop/pkg/apidoc"
	"github.com/go-openapi/spec"
)

var orderProductSchema = apidoc.Object(map[string]*spec.Schema{
	"id":       spec.Int64Property(),
	"name":     spec.StringProperty(),
	"quantity": spec.Int64Property(),
})

// DocRoutes describes the order routes for the API documentation.
func DocRoutes() []apidoc.Route {
	unauthorized := apidoc.Reply("Unauthorized", apidoc.Object(map[string]*spec.Schema{
		"message": spec.StringProperty(),
	}))
	return []apidoc.Route{
		{
			Method:        http.MethodGet,
			Path:          OrdersPath,
			Summary:       "Get all orders",
			OperationID:   "getOrders",
			Tag:           "Orders",
			Authenticated: true,
			Responses: map[int]*spec.Response{
				http.StatusOK: apidoc.Reply("A list of orders", spec.ArrayProperty(apidoc.Object(map[string]*spec.Schema{
					"id":          spec.Int64Property(),
					"customer_id": spec.Int64Property(),
					"products":    spec.ArrayProperty(orderProductSchema),
				}))),
				http.StatusUnauthorized: unauthorized,
			},
		},
		{
			Method:        http.MethodGet,
			Path:          OrderProductsPathTemplate,
			Summary:       "Get products of an order",
			OperationID:   "getOrderProducts",
			Tag:           "Orders",
			PathParams:    []string{"order_id"},
			Authenticated: true,
			Responses: map[int]*spec.Response{
				http.StatusOK:           apidoc.Reply("A list of products in an order", spec.ArrayProperty(orderProductSchema)),
				http.StatusUnauthorized: unauthorized,
				http.StatusNotFound:     apidoc.Reply(msgNotFound, nil),
			},
		},
	}
}
