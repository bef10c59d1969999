package httpresp

import "github.com/gin-gonic/gin"

// ListResponse é o envelope de toda listagem da API; as telas usam o
// total para os contadores sem percorrer o array.
type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(200, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}
