package web

import (
	"context"

	"example.com/fixture/store"
)

//web::controller
type PageController struct {
	Store *store.Memory
}

func (c *PageController) Index(ctx context.Context, page int) (string, error) {
	return "", nil
}

//web::controller
//web::rest_controller "/api"
type APIController struct{}

//web::get_mapping /items
func (a *APIController) List(filters ...string) []string {
	return nil
}

//web::get_mapping /items/count
func (a APIController) Count() int {
	return 0
}

func (a *APIController) reset() {}

//web::get_mapping /health
func Health() {}

// Service grouping
type (
	//stereotype::service "orders"
	OrderService struct{}

	plain struct{}
)

//stereotype::component
type Store interface {
	Get(key string) (value []byte, ok bool)
	Put(key string, value *store.Item)
}

//web::controller -oops=
type Broken struct{}

func Local() {
	//web::controller
	type hidden struct{}
	_ = hidden{}
}
