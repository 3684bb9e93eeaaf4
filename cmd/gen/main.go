package main

import (
	"sellbase/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.AuthenticationModel{},
		model.CustomerModel{},
		model.ProductCategoryModel{},
		model.ProductModel{},
		model.SaleModel{},
		model.SaleLineItemModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
