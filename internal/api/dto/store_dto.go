package dto

type CreateStoreDTO struct {
	Name string `json:"name"`
}
