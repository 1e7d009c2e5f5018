package main

import (
	"unify/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.CreatorSubscriptionModel{},
		model.ContentInteractionModel{},
		model.MergeOperationModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
