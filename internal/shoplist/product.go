package shoplist

import (
	"github.com/google/uuid"

	"github.com/Makepad-fr/shoplist/internal/model"
)

// Product is re-exported so callers of the store need only this package.
type Product = model.Product

func newID() string { return uuid.NewString() }
