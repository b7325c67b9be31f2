package catalog

import "github.com/energyservice/backend/internal/domain/shared"

var ErrProductNotFound = shared.NewNotFoundError("PRODUCT_NOT_FOUND", "Product not found/inactive.")
