// Project Structure Overview
/*
pos-terminal/
├── cmd/
│   └── server/
│       └── main.go
├── internal/
│   ├── config/
│   │   └── config.go
│   ├── models/
│   │   ├── product.go
│   │   ├── provider.go
│   │   ├── user.go
│   │   ├── sale.go
│   │   └── cart.go
│   ├── apperrors/
│   │   └── errors.go
│   ├── gateway/
│   │   ├── client.go
│   │   ├── products.go
│   │   ├── providers.go
│   │   ├── users.go
│   │   └── sales.go
│   ├── store/
│   │   ├── collection.go
│   │   └── store.go
│   ├── cart/
│   │   └── cart.go
│   ├── services/
│   │   ├── product_service.go
│   │   ├── provider_service.go
│   │   ├── user_service.go
│   │   └── sale_service.go
│   ├── handlers/
│   │   ├── product.go
│   │   ├── provider.go
│   │   ├── user.go
│   │   ├── sale.go
│   │   └── cart.go
│   ├── middleware/
│   │   ├── auth.go
│   │   ├── cors.go
│   │   ├── rate_limit.go
│   │   ├── request_id.go
│   │   └── logging.go
│   ├── utils/
│   │   ├── jwt.go
│   │   ├── validator.go
│   │   └── response.go
│   └── router/
│       └── router.go
├── go.mod
├── go.sum
└── README.md
*/

package posterminal

// This file shows the project structure and main entry point
// The actual implementation will be in separate files as shown in the structure above
