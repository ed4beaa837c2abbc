// Package graph wires the CRM service into a GraphQL schema. Resolvers
// stay thin: argument decoding plus one service call.
package graph

import (
	"encoding/json"

	"github.com/graphql-go/graphql"

	"crm-graphql/internal/crm"
)

// decodeInput copies a GraphQL argument map into an input struct via its
// json tags; schema field names match the tags.
func decodeInput(arg any, out any) error {
	b, err := json.Marshal(arg)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

func NewSchema(svc *crm.Service) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"currentUser": &graphql.Field{
				Type: callerType,
				Args: graphql.FieldConfigArgument{
					"token": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return svc.CurrentUser(p.Args["token"].(string))
				},
			},
			"products": &graphql.Field{
				Type: graphql.NewList(productType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return svc.ListProducts(p.Context)
				},
			},
			"product": &graphql.Field{
				Type: productType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return svc.GetProduct(p.Context, p.Args["id"].(string))
				},
			},
			"searchProducts": &graphql.Field{
				Type: graphql.NewList(productType),
				Args: graphql.FieldConfigArgument{
					"text": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return svc.SearchProducts(p.Context, p.Args["text"].(string))
				},
			},
			"clients": &graphql.Field{
				Type: graphql.NewList(clientType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return svc.ListClients(p.Context)
				},
			},
			"sellerClients": &graphql.Field{
				Type: graphql.NewList(clientType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return svc.ListSellerClients(p.Context)
				},
			},
			"client": &graphql.Field{
				Type: clientType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return svc.GetClient(p.Context, p.Args["id"].(string))
				},
			},
			"orders": &graphql.Field{
				Type: graphql.NewList(orderType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return svc.ListOrders(p.Context)
				},
			},
			"sellerOrders": &graphql.Field{
				Type: graphql.NewList(orderType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return svc.ListSellerOrders(p.Context)
				},
			},
			"order": &graphql.Field{
				Type: orderType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return svc.GetOrder(p.Context, p.Args["id"].(string))
				},
			},
			"ordersByStatus": &graphql.Field{
				Type: graphql.NewList(orderType),
				Args: graphql.FieldConfigArgument{
					"status": &graphql.ArgumentConfig{Type: graphql.NewNonNull(statusEnum)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return svc.ListSellerOrdersByStatus(p.Context, crm.Status(p.Args["status"].(string)))
				},
			},
			"topClients": &graphql.Field{
				Type: graphql.NewList(topClientType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return svc.TopClients(p.Context)
				},
			},
			"topSellers": &graphql.Field{
				Type: graphql.NewList(topSellerType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return svc.TopSellers(p.Context)
				},
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"registerUser": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(userInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					var in crm.RegisterUserInput
					if err := decodeInput(p.Args["input"], &in); err != nil {
						return nil, err
					}
					return svc.RegisterUser(p.Context, in)
				},
			},
			"authenticate": &graphql.Field{
				Type: tokenType,
				Args: graphql.FieldConfigArgument{
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					token, err := svc.Authenticate(p.Context, p.Args["email"].(string), p.Args["password"].(string))
					if err != nil {
						return nil, err
					}
					return map[string]string{"token": token}, nil
				},
			},
			"createProduct": &graphql.Field{
				Type: productType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(productInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					var in crm.CreateProductInput
					if err := decodeInput(p.Args["input"], &in); err != nil {
						return nil, err
					}
					return svc.CreateProduct(p.Context, in)
				},
			},
			"updateProduct": &graphql.Field{
				Type: productType,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(productUpdateInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					var in crm.UpdateProductInput
					if err := decodeInput(p.Args["input"], &in); err != nil {
						return nil, err
					}
					return svc.UpdateProduct(p.Context, p.Args["id"].(string), in)
				},
			},
			"deleteProduct": &graphql.Field{
				Type: graphql.String,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := svc.DeleteProduct(p.Context, p.Args["id"].(string)); err != nil {
						return nil, err
					}
					return "Product deleted", nil
				},
			},
			"createClient": &graphql.Field{
				Type: clientType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(clientInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					var in crm.CreateClientInput
					if err := decodeInput(p.Args["input"], &in); err != nil {
						return nil, err
					}
					return svc.CreateClient(p.Context, in)
				},
			},
			"updateClient": &graphql.Field{
				Type: clientType,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(clientUpdateInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					var in crm.UpdateClientInput
					if err := decodeInput(p.Args["input"], &in); err != nil {
						return nil, err
					}
					return svc.UpdateClient(p.Context, p.Args["id"].(string), in)
				},
			},
			"deleteClient": &graphql.Field{
				Type: graphql.String,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := svc.DeleteClient(p.Context, p.Args["id"].(string)); err != nil {
						return nil, err
					}
					return "Client deleted", nil
				},
			},
			"createOrder": &graphql.Field{
				Type: orderType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(orderInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					var in crm.CreateOrderInput
					if err := decodeInput(p.Args["input"], &in); err != nil {
						return nil, err
					}
					return svc.CreateOrder(p.Context, in)
				},
			},
			"updateOrder": &graphql.Field{
				Type: orderType,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(orderUpdateInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					var in crm.UpdateOrderInput
					if err := decodeInput(p.Args["input"], &in); err != nil {
						return nil, err
					}
					return svc.UpdateOrder(p.Context, p.Args["id"].(string), in)
				},
			},
			"deleteOrder": &graphql.Field{
				Type: graphql.String,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := svc.DeleteOrder(p.Context, p.Args["id"].(string)); err != nil {
						return nil, err
					}
					return "Order deleted", nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query, Mutation: mutation})
}
