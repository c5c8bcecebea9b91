package api

import "github.com/RoyceAzure/lab/ecommerce-admin/internal/api/handler"

type Server struct {
	OrderHandler *handler.OrderHandler
	StoreHandler *handler.StoreHandler
}

func NewServer(
	orderHandler *handler.OrderHandler,
	storeHandler *handler.StoreHandler,
) *Server {
	return &Server{
		OrderHandler: orderHandler,
		StoreHandler: storeHandler,
	}
}
