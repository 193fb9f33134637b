package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/lunchcontrol-api/internal/application/dto"
	"github.com/jhoicas/lunchcontrol-api/internal/application/ports"
	"github.com/jhoicas/lunchcontrol-api/internal/application/state"
	"github.com/jhoicas/lunchcontrol-api/internal/application/view"
	"github.com/jhoicas/lunchcontrol-api/internal/domain"
	"github.com/jhoicas/lunchcontrol-api/internal/domain/entity"
)

// ProductUseCase casos de uso del catálogo. Stock y Sales se manejan vía transiciones de pedidos.
type ProductUseCase struct {
	store *state.Store
	notifier
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(store *state.Store, n ports.Notifier) *ProductUseCase {
	return &ProductUseCase{store: store, notifier: newNotifier(n)}
}

// List devuelve el catálogo en orden de inserción.
func (uc *ProductUseCase) List(ctx context.Context) (*dto.ProductListResponse, error) {
	var out *dto.ProductListResponse
	err := uc.store.View(func(st *state.State) error {
		if _, err := st.RequireSession(); err != nil {
			return err
		}
		rows := view.ProductRows(st.Products)
		out = &dto.ProductListResponse{Items: rows, Total: len(rows)}
		return nil
	})
	return out, err
}

// GetByID obtiene un producto. domain.ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductRow, error) {
	var out *dto.ProductRow
	err := uc.store.View(func(st *state.State) error {
		if _, err := st.RequireSession(); err != nil {
			return err
		}
		p := entity.FindProduct(st.Products, entity.ID(id))
		if p == nil {
			return domain.ErrNotFound
		}
		row := view.ProductRow(*p)
		out = &row
		return nil
	})
	return out, err
}

// Options opciones del selector de productos del formulario de pedido.
func (uc *ProductUseCase) Options(ctx context.Context) ([]dto.ProductOption, error) {
	var out []dto.ProductOption
	err := uc.store.View(func(st *state.State) error {
		if _, err := st.RequireSession(); err != nil {
			return err
		}
		out = view.ProductOptions(st.Products)
		return nil
	})
	return out, err
}

// Save crea (existingID vacío) o reemplaza un producto. Al editar conserva Sales; al crear Sales = 0.
// Ante un error de validación el catálogo no cambia.
func (uc *ProductUseCase) Save(ctx context.Context, in dto.SaveProductRequest, existingID string) (*dto.ProductRow, error) {
	if err := uc.store.RequireSession(); err != nil {
		return nil, err
	}
	fields, err := validateProduct(in)
	if err != nil {
		return nil, uc.fail(ctx, err)
	}
	var saved entity.Product
	err = uc.store.Run(ctx, func(st *state.State) error {
		if _, err := st.RequireSession(); err != nil {
			return err
		}
		if existingID == "" {
			fields.ID = entity.NewID()
			fields.Sales = 0
			st.Products = append(st.Products, fields)
			saved = fields
			return nil
		}
		p := entity.FindProduct(st.Products, entity.ID(existingID))
		if p == nil {
			return domain.ErrNotFound
		}
		fields.ID = p.ID
		fields.Sales = p.Sales
		*p = fields
		saved = fields
		return nil
	})
	if err != nil {
		return nil, err
	}
	if existingID == "" {
		uc.success(ctx, "Produto criado com sucesso!")
	} else {
		uc.success(ctx, "Produto atualizado com sucesso!")
	}
	row := view.ProductRow(saved)
	return &row, nil
}

// Delete elimina el producto. Los pedidos que lo referencian quedan con referencias colgantes.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	err := uc.store.Run(ctx, func(st *state.State) error {
		if _, err := st.RequireSession(); err != nil {
			return err
		}
		for i := range st.Products {
			if st.Products[i].ID == entity.ID(id) {
				st.Products = append(st.Products[:i], st.Products[i+1:]...)
				return nil
			}
		}
		return domain.ErrNotFound
	})
	if err != nil {
		return err
	}
	uc.success(ctx, "Produto excluído com sucesso!")
	return nil
}

func validateProduct(in dto.SaveProductRequest) (entity.Product, error) {
	if err := required("name", "Informe o nome do produto!", in.Name); err != nil {
		return entity.Product{}, err
	}
	if err := required("category", "Informe a categoria do produto!", in.Category); err != nil {
		return entity.Product{}, err
	}
	price, err := parseMoney("price", "Preço inválido!", in.Price)
	if err != nil {
		return entity.Product{}, err
	}
	stock, err := parseCount("stock", "Estoque inválido!", in.Stock)
	if err != nil {
		return entity.Product{}, err
	}
	if err := required("description", "Informe a descrição do produto!", in.Description); err != nil {
		return entity.Product{}, err
	}
	return entity.Product{
		Name:        strings.TrimSpace(in.Name),
		Category:    strings.TrimSpace(in.Category),
		Price:       price,
		Stock:       stock,
		Description: strings.TrimSpace(in.Description),
	}, nil
}
