package graph

import "github.com/graphql-go/graphql"

// Object and input types. Field names match the json tags on the crm
// structs so the default resolver can walk them.

var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name":       &graphql.Field{Type: graphql.String},
		"surname":    &graphql.Field{Type: graphql.String},
		"email":      &graphql.Field{Type: graphql.String},
		"created_at": &graphql.Field{Type: graphql.DateTime},
	},
})

// callerType is the decoded token claim; same shape as User minus the
// timestamps, which a token does not carry.
var callerType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Caller",
	Fields: graphql.Fields{
		"id":      &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name":    &graphql.Field{Type: graphql.String},
		"surname": &graphql.Field{Type: graphql.String},
		"email":   &graphql.Field{Type: graphql.String},
	},
})

var tokenType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Token",
	Fields: graphql.Fields{
		"token": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var productType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Product",
	Fields: graphql.Fields{
		"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name":       &graphql.Field{Type: graphql.String},
		"stock":      &graphql.Field{Type: graphql.Int},
		"price":      &graphql.Field{Type: graphql.Float},
		"created_at": &graphql.Field{Type: graphql.DateTime},
		"updated_at": &graphql.Field{Type: graphql.DateTime},
	},
})

var clientType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Client",
	Fields: graphql.Fields{
		"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name":       &graphql.Field{Type: graphql.String},
		"surname":    &graphql.Field{Type: graphql.String},
		"company":    &graphql.Field{Type: graphql.String},
		"email":      &graphql.Field{Type: graphql.String},
		"phone":      &graphql.Field{Type: graphql.String},
		"seller_id":  &graphql.Field{Type: graphql.ID},
		"created_at": &graphql.Field{Type: graphql.DateTime},
		"updated_at": &graphql.Field{Type: graphql.DateTime},
	},
})

var orderItemType = graphql.NewObject(graphql.ObjectConfig{
	Name: "OrderItem",
	Fields: graphql.Fields{
		"product_id": &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"quantity":   &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
	},
})

var statusEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "OrderStatus",
	Values: graphql.EnumValueConfigMap{
		"PENDING":   &graphql.EnumValueConfig{Value: "PENDING"},
		"COMPLETED": &graphql.EnumValueConfig{Value: "COMPLETED"},
		"CANCELLED": &graphql.EnumValueConfig{Value: "CANCELLED"},
	},
})

var orderType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Order",
	Fields: graphql.Fields{
		"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"seller_id":  &graphql.Field{Type: graphql.ID},
		"client_id":  &graphql.Field{Type: graphql.ID},
		"items":      &graphql.Field{Type: graphql.NewList(orderItemType)},
		"total":      &graphql.Field{Type: graphql.Float},
		"status":     &graphql.Field{Type: statusEnum},
		"created_at": &graphql.Field{Type: graphql.DateTime},
		"updated_at": &graphql.Field{Type: graphql.DateTime},
	},
})

var topClientType = graphql.NewObject(graphql.ObjectConfig{
	Name: "TopClient",
	Fields: graphql.Fields{
		"client": &graphql.Field{Type: clientType},
		"total":  &graphql.Field{Type: graphql.Float},
	},
})

var topSellerType = graphql.NewObject(graphql.ObjectConfig{
	Name: "TopSeller",
	Fields: graphql.Fields{
		"seller": &graphql.Field{Type: userType},
		"total":  &graphql.Field{Type: graphql.Float},
	},
})

var userInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UserInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"surname":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

var productInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ProductInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"stock": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"price": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
	},
})

var productUpdateInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ProductUpdateInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"stock": &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"price": &graphql.InputObjectFieldConfig{Type: graphql.Float},
	},
})

var clientInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ClientInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"surname": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"company": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"email":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"phone":   &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var clientUpdateInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ClientUpdateInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"surname": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"company": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"email":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		"phone":   &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var orderItemInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "OrderItemInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"product_id": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
		"quantity":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
	},
})

var orderInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "OrderInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"client_id": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
		"items":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(orderItemInput)))},
		"total":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
		"status":    &graphql.InputObjectFieldConfig{Type: statusEnum},
	},
})

var orderUpdateInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "OrderUpdateInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"client_id": &graphql.InputObjectFieldConfig{Type: graphql.ID},
		"items":     &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.NewNonNull(orderItemInput))},
		"total":     &graphql.InputObjectFieldConfig{Type: graphql.Float},
		"status":    &graphql.InputObjectFieldConfig{Type: statusEnum},
	},
})
